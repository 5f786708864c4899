package db

import (
	"database/sql"
	"fmt"

	"github.com/golang/glog"
	_ "github.com/lib/pq"
	mocket "github.com/selvatico/go-mocket"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type ConnectionFactory struct {
	Config *DatabaseConfig
	DB     *gorm.DB
}

var gormConfig = &gorm.Config{
	PrepareStmt:       false,
	AllowGlobalUpdate: false,
	QueryFields:       true,
	Logger:            logger.Default.LogMode(logger.Silent),
}

// NewConnectionFactory opens the pool shared by every service. gorm's *DB is safe for concurrent use,
// so callers take it from New() instead of opening their own connections. The returned func closes the pool.
func NewConnectionFactory(config *DatabaseConfig) (*ConnectionFactory, func()) {
	if config.Dialect != "postgres" {
		panic(fmt.Sprintf("Unsupported DB dialect: %s", config.Dialect))
	}

	db, err := gorm.Open(postgres.Open(config.ConnectionString()), gormConfig)
	if err != nil {
		panic(fmt.Sprintf(
			"failed to connect to %s database %s with connection string: %s\nError: %s",
			config.Dialect,
			config.Name,
			config.LogSafeConnectionString(),
			err.Error(),
		))
	}
	sqlDB, err := db.DB()
	if err != nil {
		panic(fmt.Errorf("unexpected connection error: %s", err))
	}
	sqlDB.SetMaxOpenConns(config.MaxOpenConnections)

	factory := &ConnectionFactory{Config: config, DB: db}
	return factory, func() {
		if err := factory.Close(); err != nil {
			glog.Errorf("failed to close database connection: %v", err)
		}
	}
}

// NewMockConnectionFactory should only be used for defining mock database drivers
// This uses mocket under the hood, use the global mocket.Catcher to change how the database should respond to SQL
// queries
func NewMockConnectionFactory(dbConfig *DatabaseConfig) *ConnectionFactory {
	if dbConfig == nil {
		dbConfig = &DatabaseConfig{}
	}
	mocket.Catcher.Register()
	mocket.Catcher.Logging = false
	sqlDB, err := sql.Open(mocket.DriverName, "connection_string")
	if err != nil {
		panic(err)
	}
	mocketDB, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic(err)
	}
	return &ConnectionFactory{Config: dbConfig, DB: mocketDB}
}

// New returns a new database connection
func (f *ConnectionFactory) New() *gorm.DB {
	if f.Config.Debug {
		return f.DB.Debug()
	}
	return f.DB
}

// CheckConnection ensures a connection is present
func (f *ConnectionFactory) CheckConnection() error {
	return f.DB.Exec("SELECT 1").Error
}

// Close will close the connection to the database.
// It must only be called once, when the process is exiting.
func (f *ConnectionFactory) Close() error {
	sqlDB, err := f.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

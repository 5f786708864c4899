package db

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type Migration struct {
	DbFactory   *ConnectionFactory
	Gormigrate  *gormigrate.Gormigrate
	GormOptions *gormigrate.Options
}

func NewMigration(dbConfig *DatabaseConfig, gormOptions *gormigrate.Options, migrations []*gormigrate.Migration) (*Migration, func(), error) {
	if err := dbConfig.ReadFiles(); err != nil {
		return nil, nil, err
	}
	dbFactory, cleanup := NewConnectionFactory(dbConfig)

	return &Migration{
		DbFactory:   dbFactory,
		GormOptions: gormOptions,
		Gormigrate:  gormigrate.New(dbFactory.New(), gormOptions, migrations),
	}, cleanup, nil
}

func (m *Migration) Migrate() {
	if err := m.Gormigrate.Migrate(); err != nil {
		glog.Fatalf("Could not migrate: %v", err)
	}
}

func (m *Migration) RollbackLast() {
	if err := m.Gormigrate.RollbackLast(); err != nil {
		glog.Fatalf("Could not rollback last migration: %v", err)
	}
	m.deleteMigrationTableIfEmpty(m.DbFactory.New())
}

// RollbackAll rolls back every applied migration, newest first.
func (m *Migration) RollbackAll() {
	db := m.DbFactory.New()
	for m.CountMigrationsApplied() > 0 {
		if err := m.Gormigrate.RollbackLast(); err != nil {
			glog.Fatalf("Could not rollback last migration: %v", err)
		}
	}
	m.deleteMigrationTableIfEmpty(db)
}

func (m *Migration) deleteMigrationTableIfEmpty(db *gorm.DB) {
	if !db.Migrator().HasTable(m.GormOptions.TableName) {
		return
	}
	if m.CountMigrationsApplied() == 0 {
		if err := db.Migrator().DropTable(m.GormOptions.TableName); err != nil {
			glog.Fatalf("Could not drop migration table: %v", err)
		}
	}
}

func (m *Migration) CountMigrationsApplied() int {
	db := m.DbFactory.New()
	if !db.Migrator().HasTable(m.GormOptions.TableName) {
		return 0
	}
	sql := fmt.Sprintf("SELECT count(%s) AS id FROM %s", m.GormOptions.IDColumnName, m.GormOptions.TableName)
	var count int
	if err := db.Raw(sql).Scan(&count).Error; err != nil {
		glog.Fatalf("Could not get migration count: %v", err)
	}
	return count
}

// Model represents the base model struct. All entities will have this struct embedded.
type Model struct {
	ID        string `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type MigrationAction func(tx *gorm.DB, apply bool) error

func caller() string {
	if _, file, no, ok := runtime.Caller(2); ok {
		return fmt.Sprintf("[ %s:%d ]", file, no)
	}
	return ""
}

// CreateTableAction creates table on apply and drops it on rollback.
func CreateTableAction(table interface{}) MigrationAction {
	at := caller()
	return func(tx *gorm.DB, apply bool) error {
		var err error
		if apply {
			err = tx.AutoMigrate(table)
		} else {
			err = tx.Migrator().DropTable(table)
		}
		return errors.Wrap(err, at)
	}
}

func ExecAction(applySql string, unapplySql string) MigrationAction {
	at := caller()
	return func(tx *gorm.DB, apply bool) error {
		statement := unapplySql
		if apply {
			statement = applySql
		}
		if statement == "" {
			return nil
		}
		return errors.Wrap(tx.Exec(statement).Error, at)
	}
}

func CreateMigrationFromActions(id string, actions ...MigrationAction) *gormigrate.Migration {
	return &gormigrate.Migration{
		ID: id,
		Migrate: func(tx *gorm.DB) error {
			for _, action := range actions {
				if err := action(tx, true); err != nil {
					return err
				}
			}
			return nil
		},
		Rollback: func(tx *gorm.DB) error {
			for i := len(actions) - 1; i >= 0; i-- {
				if err := actions[i](tx, false); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

package db

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/shared"
)

type DatabaseConfig struct {
	Dialect            string `json:"dialect"`
	SSLMode            string `json:"sslmode"`
	Debug              bool   `json:"debug"`
	MaxOpenConnections int    `json:"max_connections"`

	Host     string `json:"host"`
	Port     int    `json:"port"`
	Name     string `json:"name"`
	Username string `json:"username"`
	Password string `json:"password"`

	DatabaseCaCertFile string `json:"db_ca_cert_file"`
	HostFile           string `json:"host_file"`
	PortFile           string `json:"port_file"`
	NameFile           string `json:"name_file"`
	UsernameFile       string `json:"username_file"`
	PasswordFile       string `json:"password_file"`
}

func NewDatabaseConfig() *DatabaseConfig {
	return &DatabaseConfig{
		Dialect:            "postgres",
		SSLMode:            "disable",
		Debug:              false,
		MaxOpenConnections: 20,

		HostFile:           "secrets/db.host",
		PortFile:           "secrets/db.port",
		UsernameFile:       "secrets/db.user",
		PasswordFile:       "secrets/db.password",
		NameFile:           "secrets/db.name",
		DatabaseCaCertFile: "secrets/db.ca_cert",
	}
}

func (c *DatabaseConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.DatabaseCaCertFile, "db-ssl-certificate-file", c.DatabaseCaCertFile, "Database ssl cert string file")
	fs.StringVar(&c.HostFile, "db-host-file", c.HostFile, "Database host string file")
	fs.StringVar(&c.PortFile, "db-port-file", c.PortFile, "Database port file")
	fs.StringVar(&c.UsernameFile, "db-user-file", c.UsernameFile, "Database username file")
	fs.StringVar(&c.PasswordFile, "db-password-file", c.PasswordFile, "Database password file")
	fs.StringVar(&c.NameFile, "db-name-file", c.NameFile, "Database name file")
	fs.StringVar(&c.SSLMode, "db-sslmode", c.SSLMode, "Database ssl mode (disable | require | verify-ca | verify-full)")
	fs.BoolVar(&c.Debug, "enable-db-debug", c.Debug, "Log every SQL statement")
	fs.IntVar(&c.MaxOpenConnections, "db-max-open-connections", c.MaxOpenConnections, "Maximum open DB connections for this instance")
}

func (c *DatabaseConfig) ReadFiles() error {
	if err := shared.ReadFileValueString(c.HostFile, &c.Host); err != nil {
		return err
	}
	if err := shared.ReadFileValueInt(c.PortFile, &c.Port); err != nil {
		return err
	}
	if err := shared.ReadFileValueString(c.UsernameFile, &c.Username); err != nil {
		return err
	}
	if err := shared.ReadFileValueString(c.PasswordFile, &c.Password); err != nil {
		return err
	}
	return shared.ReadFileValueString(c.NameFile, &c.Name)
}

func (c *DatabaseConfig) ConnectionString() string {
	return c.connectionString(c.Password, shared.BuildFullFilePath(c.DatabaseCaCertFile))
}

func (c *DatabaseConfig) LogSafeConnectionString() string {
	return c.connectionString("<REDACTED>", "<REDACTED>")
}

func (c *DatabaseConfig) connectionString(password, caCert string) string {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password='%s' dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, password, c.Name, c.SSLMode,
	)
	if c.SSLMode != "disable" {
		dsn += fmt.Sprintf(" sslrootcert=%s", caCert)
	}
	return dsn
}

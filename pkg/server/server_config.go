package server

import (
	"crypto/tls"
	"time"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/shared"
	"github.com/spf13/pflag"
)

// ServerConfig holds the TLS material shared by the metrics and health check servers.
type ServerConfig struct {
	HTTPSCertFile string `json:"https_cert_file"`
	HTTPSKeyFile  string `json:"https_key_file"`
}

func NewServerConfig() *ServerConfig {
	return &ServerConfig{}
}

func (s *ServerConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&s.HTTPSCertFile, "https-cert-file", s.HTTPSCertFile, "The path to the tls.crt file.")
	fs.StringVar(&s.HTTPSKeyFile, "https-key-file", s.HTTPSKeyFile, "The path to the tls.key file.")
}

func (s *ServerConfig) ReadFiles() error {
	if s.HTTPSCertFile != "" {
		s.HTTPSCertFile = shared.BuildFullFilePath(s.HTTPSCertFile)
	}
	if s.HTTPSKeyFile != "" {
		s.HTTPSKeyFile = shared.BuildFullFilePath(s.HTTPSKeyFile)
	}
	return nil
}

// listenerConfig is the part common to every endpoint this process exposes
type listenerConfig struct {
	BindAddress string `json:"bind_address"`
	EnableHTTPS bool   `json:"enable_https"`
	// Only used when EnableHTTPS is set. Values are the tls.VersionTLS* constants.
	MinTLSVersion uint16
}

type MetricsConfig struct {
	listenerConfig
}

func NewMetricsConfig() *MetricsConfig {
	return &MetricsConfig{listenerConfig{BindAddress: "localhost:8080", MinTLSVersion: tls.VersionTLS12}}
}

func (c *MetricsConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.BindAddress, "metrics-server-bindaddress", c.BindAddress, "Metrics server bind address")
	fs.BoolVar(&c.EnableHTTPS, "enable-metrics-https", c.EnableHTTPS, "Enable HTTPS for metrics server")
}

func (c *MetricsConfig) ReadFiles() error {
	return nil
}

type HealthCheckConfig struct {
	listenerConfig
	// Period of the database connectivity check
	DatabaseCheckInterval time.Duration `json:"database_check_interval"`
}

func NewHealthCheckConfig() *HealthCheckConfig {
	return &HealthCheckConfig{
		listenerConfig:        listenerConfig{BindAddress: "localhost:8083", MinTLSVersion: tls.VersionTLS12},
		DatabaseCheckInterval: 10 * time.Second,
	}
}

func (c *HealthCheckConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.BindAddress, "health-check-server-bindaddress", c.BindAddress, "Health check server bind address")
	fs.BoolVar(&c.EnableHTTPS, "enable-health-check-https", c.EnableHTTPS, "Enable HTTPS for health check server")
	fs.DurationVar(&c.DatabaseCheckInterval, "health-check-database-interval", c.DatabaseCheckInterval, "Interval between database connectivity checks")
}

func (c *HealthCheckConfig) ReadFiles() error {
	return nil
}

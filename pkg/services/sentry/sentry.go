package sentry

import (
	"fmt"
	"os"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/environments"
	"github.com/getsentry/sentry-go"
	"github.com/goava/di"
	"github.com/golang/glog"
)

func ConfigProviders() di.Option {
	return di.Options(
		di.Provide(NewConfig, di.As(new(environments.ConfigModule))),
		di.ProvideValue(environments.AfterCreateServicesHook{
			Func: Initialize,
		}),
	)
}

// dsn is empty when reporting is disabled, which turns the sentry client into a no-op
func dsn(c *Config) string {
	if !c.Enabled {
		return ""
	}
	return fmt.Sprintf("https://%s@%s/%s", c.Key, c.URL, c.Project)
}

// Initialize configures the global sentry hub used by pkg/logger to capture reconciliation failures.
func Initialize(envName environments.EnvName, c *Config) error {
	if c.Enabled {
		glog.Infof("Sentry error reporting enabled to %s on project %s", c.URL, c.Project)
	} else {
		glog.Infof("Sentry error reporting disabled")
	}

	options := sentry.ClientOptions{
		Dsn:              dsn(c),
		Transport:        &sentry.HTTPTransport{Timeout: c.Timeout},
		Debug:            c.Debug,
		AttachStacktrace: true,
		Environment:      string(envName),
	}
	if hostname, err := os.Hostname(); err == nil && hostname != "" {
		options.ServerName = hostname
	}

	if err := sentry.Init(options); err != nil {
		glog.Errorf("Unable to initialize sentry integration: %s", err.Error())
		return err
	}
	return nil
}

package environments

import (
	"github.com/goava/di"
	"github.com/spf13/pflag"
)

// ConfigModule values can load configuration from flags and files
type ConfigModule interface {
	AddFlags(fs *pflag.FlagSet)
	ReadFiles() error
}

type ServiceValidator interface {
	Validate() error
}

// BootService are services that get started on application boot.
type BootService interface {
	Start()
	Stop()
}

type EnvHook struct {
	Func di.Invocation
}
type BeforeCreateServicesHook EnvHook
type AfterCreateServicesHook EnvHook

// EnvLoader supplies the flag defaults of a named environment and may adjust the resolved configuration
type EnvLoader interface {
	Defaults() map[string]string
	ModifyConfiguration(env *Env) error
}

// SimpleEnvLoader is an EnvLoader made only of flag defaults
type SimpleEnvLoader map[string]string

var _ EnvLoader = SimpleEnvLoader{}

func (l SimpleEnvLoader) Defaults() map[string]string {
	return l
}

func (l SimpleEnvLoader) ModifyConfiguration(env *Env) error {
	return nil
}

// ServiceProvider registers the services created by Env.CreateServices
type ServiceProvider interface {
	Providers() di.Option
}

// Func turns an options function into a ServiceProvider constructor
func Func(f func() di.Option) func() ServiceProvider {
	return func() ServiceProvider {
		return providerFunc(f)
	}
}

type providerFunc func() di.Option

func (f providerFunc) Providers() di.Option {
	return f()
}

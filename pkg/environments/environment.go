package environments

import (
	"context"
	goerrors "errors"
	"flag"
	"os"

	sentryGo "github.com/getsentry/sentry-go"
	"github.com/goava/di"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

const (
	TestingEnv     string = "testing"
	DevelopmentEnv string = "development"
	ProductionEnv  string = "production"

	EnvironmentStringKey string = "KTM_ENV"
	EnvironmentDefault          = DevelopmentEnv
)

// EnvName is the name of the environment the process was started in.
type EnvName string

// Env is a modular application built with dependency injection. It owns two containers:
// the ConfigContainer, available right after New, and the ServiceContainer, built by CreateServices.
type Env struct {
	Name             string
	ConfigContainer  *di.Container
	ServiceContainer *di.Container
}

// New creates an Env with the provided name and injection options. Types in
// Env.ConfigContainer can be resolved as soon as it returns.
func New(name string, options ...di.Option) (env *Env, err error) {
	env = &Env{
		Name: name,
	}

	env.ConfigContainer, err = di.New(append(options, di.ProvideValue(env))...)
	if err != nil {
		return nil, err
	}

	return env, nil
}

func GetEnvironmentStrFromEnv() string {
	envStr, specified := os.LookupEnv(EnvironmentStringKey)
	if !specified || envStr == "" {
		glog.Infof("Environment variable %q not specified, using default %q", EnvironmentStringKey, EnvironmentDefault)
		envStr = EnvironmentDefault
	}
	return envStr
}

// AddFlags registers the flags of every ConfigModule in the ConfigContainer and then applies
// the defaults of the EnvLoader tagged with the environment name.
func (env *Env) AddFlags(flags *pflag.FlagSet) error {
	flags.AddGoFlagSet(flag.CommandLine)

	var namedEnv EnvLoader
	if err := env.ConfigContainer.Resolve(&namedEnv, di.Tags{"env": env.Name}); err != nil {
		return errors.Errorf("unsupported environment %q", env.Name)
	}

	var modules []ConfigModule
	if err := env.ConfigContainer.Resolve(&modules); err != nil && !goerrors.Is(err, di.ErrTypeNotExists) {
		return err
	}
	for i := range modules {
		modules[i].AddFlags(flags)
	}

	return setConfigDefaults(flags, namedEnv.Defaults())
}

// CreateServices loads, creates, and validates the application services. It must be called after
// the flags have been parsed. The steps, in order:
//  1. ConfigModule.ReadFiles on every config module
//  2. EnvLoader.ModifyConfiguration of the named environment
//  3. every BeforeCreateServicesHook
//  4. build the ServiceContainer from every ServiceProvider
//  5. ServiceValidator.Validate on every validator
//  6. every AfterCreateServicesHook
func (env *Env) CreateServices() error {
	glog.Infof("Initializing %s environment", env.Name)

	var modules []ConfigModule
	if err := env.ConfigContainer.Resolve(&modules); err != nil && !goerrors.Is(err, di.ErrTypeNotExists) {
		return err
	}
	for i := range modules {
		if err := modules[i].ReadFiles(); err != nil {
			err = errors.Errorf("unable to read configuration files: %s", err)
			glog.Error(err)
			sentryGo.CaptureException(err)
			return err
		}
	}

	var namedEnv EnvLoader
	if err := env.ConfigContainer.Resolve(&namedEnv, di.Tags{"env": env.Name}); err != nil {
		return errors.Errorf("unsupported environment %q", env.Name)
	}
	if err := namedEnv.ModifyConfiguration(env); err != nil {
		return err
	}

	type injections struct {
		di.Inject
		ServiceInjections         []ServiceProvider
		BeforeCreateServicesHooks []BeforeCreateServicesHook `optional:"true"`
		AfterCreateServicesHooks  []AfterCreateServicesHook  `optional:"true"`
	}
	in := injections{}
	if err := env.ConfigContainer.Resolve(&in); err != nil {
		return err
	}

	for _, hook := range in.BeforeCreateServicesHooks {
		env.MustInvoke(hook.Func)
	}

	var serviceProviders []di.Option
	for _, s := range in.ServiceInjections {
		serviceProviders = append(serviceProviders, s.Providers())
	}
	var err error
	env.ServiceContainer, err = di.New(serviceProviders...)
	if err != nil {
		return err
	}

	// the ServiceContainer resolves config types through its parent
	if err := env.ServiceContainer.AddParent(env.ConfigContainer); err != nil {
		return err
	}

	var validators []ServiceValidator
	if err := env.ServiceContainer.Resolve(&validators); err != nil {
		if !goerrors.Is(err, di.ErrTypeNotExists) {
			return err
		}
	}
	for _, validator := range validators {
		if err := validator.Validate(); err != nil {
			return err
		}
	}

	for _, hook := range in.AfterCreateServicesHooks {
		env.MustInvoke(hook.Func)
	}

	return nil
}

func (env *Env) container() (*di.Container, string) {
	if env.ServiceContainer != nil {
		return env.ServiceContainer, "service container"
	}
	return env.ConfigContainer, "config container"
}

func (env *Env) MustInvoke(invocation di.Invocation, options ...di.InvokeOption) {
	container, name := env.container()
	if err := container.Invoke(invocation, options...); err != nil {
		glog.Fatalf("%s di failure: %v", name, err)
	}
}

func (env *Env) MustResolve(ptr di.Pointer, options ...di.ResolveOption) {
	container, name := env.container()
	if err := container.Resolve(ptr, options...); err != nil {
		glog.Fatalf("%s di failure: %v", name, err)
	}
}

func (env *Env) MustResolveAll(ptrs ...di.Pointer) {
	for _, ptr := range ptrs {
		env.MustResolve(ptr)
	}
}

// Run starts the Env, waits for the context to be canceled and then stops the Env.
func (env *Env) Run(ctx context.Context) {
	env.Start()
	<-ctx.Done()
	env.Stop()
}

// Start calls all the BootService.Start functions found in the container.
func (env *Env) Start() {
	env.MustInvoke(func(services []BootService) {
		for i := range services {
			services[i].Start()
		}
	})
}

// Stop calls the BootService.Stop functions in reverse start order.
func (env *Env) Stop() {
	env.MustInvoke(func(services []BootService) {
		for i := len(services) - 1; i >= 0; i-- {
			services[i].Stop()
		}
	})
}

// Cleanup calls all the cleanup functions registered with the dependency injection containers.
func (env *Env) Cleanup() {
	if env.ServiceContainer != nil {
		env.ServiceContainer.Cleanup()
	}
	env.ConfigContainer.Cleanup()
}

func setConfigDefaults(flags *pflag.FlagSet, defaults map[string]string) error {
	for name, value := range defaults {
		if err := flags.Set(name, value); err != nil {
			glog.Errorf("Error setting flag %s: %v", name, err)
			return err
		}
	}
	return nil
}

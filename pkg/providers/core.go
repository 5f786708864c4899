package providers

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/cmd/migrate"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/cmd/serve"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/environments"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/server"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/services/sentry"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/workers"
	"github.com/goava/di"
)

func CoreConfigProviders() di.Option {
	return di.Options(
		di.Provide(func(env *environments.Env) environments.EnvName {
			return environments.EnvName(env.Name)
		}),

		// Add config types
		di.Provide(server.NewHealthCheckConfig, di.As(new(environments.ConfigModule))),
		di.Provide(db.NewDatabaseConfig, di.As(new(environments.ConfigModule))),
		di.Provide(server.NewServerConfig, di.As(new(environments.ConfigModule))),
		di.Provide(server.NewMetricsConfig, di.As(new(environments.ConfigModule))),
		di.Provide(workers.NewReconcilerConfig, di.As(new(environments.ConfigModule)), di.As(new(environments.ServiceValidator))),

		// Add common CLI sub commands
		di.Provide(serve.NewServeCommand),
		di.Provide(migrate.NewMigrateCommand),

		sentry.ConfigProviders(),

		di.Provide(environments.Func(ServiceProviders)),
	)
}

func ServiceProviders() di.Option {
	return di.Options(
		di.Provide(db.NewConnectionFactory),

		// Types registered as a BootService are started when the env is started
		di.Provide(server.NewMetricsServer, di.As(new(environments.BootService))),
		di.Provide(server.NewHealthCheckServer, di.As(new(environments.BootService))),
		di.Provide(workers.NewLeaderElectionManager, di.As(new(environments.BootService))),
	)
}

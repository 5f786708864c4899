package tenancy

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/config"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/environments"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/migrations"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/reconcilers"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/registry"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/services"
	tenancyWorkers "github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/workers"
	environments2 "github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/environments"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/providers"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/workers"
	"github.com/goava/di"
)

func EnvConfigProviders() di.Option {
	return di.Options(
		di.Provide(environments.NewDevelopmentEnvLoader, di.Tags{"env": environments2.DevelopmentEnv}),
		di.Provide(environments.NewProductionEnvLoader, di.Tags{"env": environments2.ProductionEnv}),
		di.Provide(environments.NewTestingEnvLoader, di.Tags{"env": environments2.TestingEnv}),
	)
}

func ConfigProviders() di.Option {
	return di.Options(

		EnvConfigProviders(),
		providers.CoreConfigProviders(),

		// Configuration for the managed Kafka clusters...
		di.Provide(config.NewManagedClustersConfig, di.As(new(environments2.ConfigModule)), di.As(new(environments2.ServiceValidator))),

		di.Provide(environments2.Func(ServiceProviders)),
		di.Provide(migrations.New),
	)
}

func ServiceProviders() di.Option {
	return di.Options(
		di.Provide(services.NewNamespaceService, di.As(new(services.NamespaceService))),
		di.Provide(services.NewTopicService, di.As(new(services.TopicService))),
		di.Provide(services.NewAccessControlEntryService, di.As(new(services.AccessControlEntryService))),
		di.Provide(services.NewStreamingAppService, di.As(new(services.StreamingAppService))),
		di.Provide(services.NewConnectClusterService, di.As(new(services.ConnectClusterService))),
		di.Provide(services.NewConnectorService, di.As(new(services.ConnectorService))),
		di.Provide(registry.NewRegistry),
		di.Provide(reconcilers.NewClusterSets),
		di.Provide(tenancyWorkers.NewClusterResourcesManager, di.As(new(workers.Worker))),
		di.Provide(tenancyWorkers.NewConnectHealthManager, di.As(new(workers.Worker))),
		di.Provide(tenancyWorkers.NewConnectorManager, di.As(new(workers.Worker))),
	)
}

package reconcilers

import (
	"context"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/catalog"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/kafka"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/config"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/registry"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/services"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

const testCluster = "local"

var allFeatures = config.FeaturesConfig{
	ManageTopics:          true,
	ManageAcls:            true,
	ManageConnectors:      true,
	ManageUsers:           true,
	ManagedPrincipalsOnly: true,
}

func newTestCluster(features config.FeaturesConfig, admin kafka.AdminClient, catalogClient catalog.Client) *registry.ManagedCluster {
	return newTestClusterWithConfig(config.ManagedClusterConfig{
		Name:     testCluster,
		Provider: config.ProviderKindSelfManaged,
		Features: features,
	}, admin, catalogClient)
}

func newTestClusterWithConfig(cfg config.ManagedClusterConfig, admin kafka.AdminClient, catalogClient catalog.Client) *registry.ManagedCluster {
	return registry.NewManagedCluster(cfg, func(*config.ManagedClusterConfig) (kafka.AdminClient, error) {
		return admin, nil
	}, catalogClient)
}

func ownerAce(namespace string, resourceType dbapi.ResourceType, patternType dbapi.PatternType, resource string) *dbapi.AccessControlEntry {
	return &dbapi.AccessControlEntry{
		Name:         namespace + "-owner-" + resource,
		Cluster:      testCluster,
		Namespace:    namespace,
		ResourceType: resourceType,
		PatternType:  patternType,
		Permission:   dbapi.PermissionOwner,
		Resource:     resource,
		GrantedTo:    namespace,
		Generation:   1,
	}
}

func namespace(name string) *dbapi.Namespace {
	return &dbapi.Namespace{Name: name, Cluster: testCluster, KafkaUser: name + "-user"}
}

func acesService(aces ...*dbapi.AccessControlEntry) *services.AccessControlEntryServiceMock {
	return &services.AccessControlEntryServiceMock{
		FindAllForClusterFunc: func(ctx context.Context, cluster string) (dbapi.AccessControlEntryList, *errors.ServiceError) {
			return aces, nil
		},
		UpdateFunc: func(ctx context.Context, ace *dbapi.AccessControlEntry) *errors.ServiceError {
			return nil
		},
		DeleteFunc: func(ctx context.Context, ace *dbapi.AccessControlEntry) *errors.ServiceError {
			return nil
		},
	}
}

func namespacesService(namespaces ...*dbapi.Namespace) *services.NamespaceServiceMock {
	return &services.NamespaceServiceMock{
		FindAllForClusterFunc: func(ctx context.Context, cluster string) (dbapi.NamespaceList, *errors.ServiceError) {
			return namespaces, nil
		},
		FindByNameFunc: func(ctx context.Context, cluster string, name string) (*dbapi.Namespace, *errors.ServiceError) {
			for _, ns := range namespaces {
				if ns.Name == name {
					return ns, nil
				}
			}
			return nil, errors.NotFound("namespace %q not found", name)
		},
	}
}

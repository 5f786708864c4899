package registry

import (
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/catalog"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/kafka"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/config"
)

// Registry holds one ManagedCluster per configured cluster, in configuration order
type Registry struct {
	clusters []*ManagedCluster
	byName   map[string]*ManagedCluster
}

// NewRegistry builds the handles once at start up. The returned cleanup closes every connected admin client.
func NewRegistry(managedClustersConfig *config.ManagedClustersConfig) (*Registry, func()) {
	return newRegistry(managedClustersConfig.ManagedClusters, kafka.NewAdminClient)
}

func newRegistry(clusters []config.ManagedClusterConfig, newAdmin AdminClientFactory) (*Registry, func()) {
	handles := make([]*ManagedCluster, 0, len(clusters))
	for _, cfg := range clusters {
		var catalogClient catalog.Client
		if cfg.Catalog.Enabled {
			catalogClient = catalog.NewClient(cfg.Catalog, cfg.Timeouts.Topic.Duration())
		}
		handles = append(handles, NewManagedCluster(cfg, newAdmin, catalogClient))
	}
	r := New(handles...)
	return r, r.close
}

// New indexes already built cluster handles
func New(clusters ...*ManagedCluster) *Registry {
	r := &Registry{byName: map[string]*ManagedCluster{}}
	for _, cluster := range clusters {
		r.clusters = append(r.clusters, cluster)
		r.byName[cluster.Name()] = cluster
	}
	return r
}

func (r *Registry) All() []*ManagedCluster {
	return r.clusters
}

func (r *Registry) Get(name string) (*ManagedCluster, bool) {
	cluster, ok := r.byName[name]
	return cluster, ok
}

func (r *Registry) close() {
	for _, cluster := range r.clusters {
		cluster.close()
	}
}

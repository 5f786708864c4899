package registry

import (
	"sync"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/catalog"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/kafka"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/config"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/logger"
)

type AdminClientFactory func(cluster *config.ManagedClusterConfig) (kafka.AdminClient, error)

// ManagedCluster is the process-lifetime handle on one managed cluster. The admin client is
// connected on first use and shared by every reconciler of the cluster.
type ManagedCluster struct {
	config   config.ManagedClusterConfig
	newAdmin AdminClientFactory
	catalog  catalog.Client

	mu    sync.Mutex
	admin kafka.AdminClient
}

func NewManagedCluster(cfg config.ManagedClusterConfig, newAdmin AdminClientFactory, catalogClient catalog.Client) *ManagedCluster {
	return &ManagedCluster{
		config:   cfg,
		newAdmin: newAdmin,
		catalog:  catalogClient,
	}
}

func (m *ManagedCluster) Name() string {
	return m.config.Name
}

func (m *ManagedCluster) Config() *config.ManagedClusterConfig {
	return &m.config
}

func (m *ManagedCluster) Features() config.FeaturesConfig {
	return m.config.Features
}

// Admin returns the shared admin client, connecting it if needed. A failed connection is retried on the next call.
func (m *ManagedCluster) Admin() (kafka.AdminClient, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.admin != nil {
		return m.admin, nil
	}
	admin, err := m.newAdmin(&m.config)
	if err != nil {
		return nil, errors.NewWithCause(errors.ErrorBroker, err, "cluster %q is unreachable: %v", m.config.Name, err)
	}
	m.admin = admin
	return admin, nil
}

// Catalog returns nil when catalog synchronisation is disabled for the cluster
func (m *ManagedCluster) Catalog() catalog.Client {
	return m.catalog
}

func (m *ManagedCluster) close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.admin == nil {
		return
	}
	if err := m.admin.Close(); err != nil {
		logger.Logger.Warningf("failed to close admin client of cluster %q: %v", m.config.Name, err)
	}
	m.admin = nil
}

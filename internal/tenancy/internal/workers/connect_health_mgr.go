package workers

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/reconcilers"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/workers"
)

// ConnectHealthManager refreshes the healthy and idle Connect clusters of every managed cluster
type ConnectHealthManager struct {
	workers.BaseWorker
	clusterSets *reconcilers.ClusterSets
}

func NewConnectHealthManager(clusterSets *reconcilers.ClusterSets, reconcilerConfig *workers.ReconcilerConfig) *ConnectHealthManager {
	return &ConnectHealthManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "connect_health",
			Reconciler: workers.Reconciler{Schedule: reconcilerConfig.ConnectHealthSchedule()},
		},
		clusterSets: clusterSets,
	}
}

func (m *ConnectHealthManager) Start() {
	m.StartWorker(m)
}

func (m *ConnectHealthManager) Stop() {
	m.StopWorker(m)
}

func (m *ConnectHealthManager) Reconcile(ctx context.Context) []error {
	var encounteredErrors []error
	for _, set := range m.clusterSets.All() {
		for _, err := range set.Connectors.HealthCheck(ctx) {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to check Connect clusters of cluster %s", set.Cluster.Name()))
		}
	}
	return encounteredErrors
}

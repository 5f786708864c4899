package workers

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/reconcilers"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/workers"
)

// ConnectorManager deploys connectors on the healthy Connect clusters of every managed cluster
type ConnectorManager struct {
	workers.BaseWorker
	clusterSets *reconcilers.ClusterSets
}

func NewConnectorManager(clusterSets *reconcilers.ClusterSets, reconcilerConfig *workers.ReconcilerConfig) *ConnectorManager {
	return &ConnectorManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "connector",
			Reconciler: workers.Reconciler{Schedule: reconcilerConfig.ConnectorSchedule()},
		},
		clusterSets: clusterSets,
	}
}

func (m *ConnectorManager) Start() {
	m.StartWorker(m)
}

func (m *ConnectorManager) Stop() {
	m.StopWorker(m)
}

func (m *ConnectorManager) Reconcile(ctx context.Context) []error {
	var encounteredErrors []error
	for _, set := range m.clusterSets.All() {
		for _, err := range set.Connectors.Reconcile(ctx) {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile connectors of cluster %s", set.Cluster.Name()))
		}
	}
	return encounteredErrors
}

package workers

import (
	"context"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/reconcilers"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/logger"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/workers"
)

// ClusterResourcesManager converges the topics, ACLs and quotas of every managed cluster, one cluster after the other
type ClusterResourcesManager struct {
	workers.BaseWorker
	clusterSets *reconcilers.ClusterSets
}

func NewClusterResourcesManager(clusterSets *reconcilers.ClusterSets, reconcilerConfig *workers.ReconcilerConfig) *ClusterResourcesManager {
	return &ClusterResourcesManager{
		BaseWorker: workers.BaseWorker{
			Id:         uuid.New().String(),
			WorkerType: "cluster_resources",
			Reconciler: workers.Reconciler{Schedule: reconcilerConfig.ResourcesSchedule()},
		},
		clusterSets: clusterSets,
	}
}

func (m *ClusterResourcesManager) Start() {
	m.StartWorker(m)
}

func (m *ClusterResourcesManager) Stop() {
	m.StopWorker(m)
}

func (m *ClusterResourcesManager) Reconcile(ctx context.Context) []error {
	var encounteredErrors []error
	for _, set := range m.clusterSets.All() {
		if ctx.Err() != nil {
			break
		}
		name := set.Cluster.Name()
		logger.NewUHCLogger(ctx).V(5).Infof("reconciling resources of cluster %q", name)
		for _, err := range set.Topics.Reconcile(ctx) {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile topics of cluster %s", name))
		}
		for _, err := range set.Acls.Reconcile(ctx) {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile ACLs of cluster %s", name))
		}
		for _, err := range set.Users.ReconcileQuotas(ctx) {
			encounteredErrors = append(encounteredErrors, errors.Wrapf(err, "failed to reconcile quotas of cluster %s", name))
		}
	}
	return encounteredErrors
}

package reconcilers

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/connect"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/registry"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/services"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/logger"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/metrics"
)

const (
	// health entries not refreshed by a health check within this window are forgotten
	connectHealthExpiration = 5 * time.Minute
	connectClientExpiration = 30 * time.Minute

	connectorClassKey = "connector.class"
	connectorNameKey  = "name"
	deployedMessage   = "Connector deployed"
)

type ConnectClientFactory func(name string, baseURL string, username string, password string, timeout time.Duration) connect.Client

type ConnectorReconciler struct {
	cluster         *registry.ManagedCluster
	connectors      services.ConnectorService
	connectClusters services.ConnectClusterService
	newClient       ConnectClientFactory

	clients *cache.Cache
	healthy *cache.Cache
	idle    *cache.Cache
}

func NewConnectorReconciler(cluster *registry.ManagedCluster, connectors services.ConnectorService, connectClusters services.ConnectClusterService) *ConnectorReconciler {
	return newConnectorReconciler(cluster, connectors, connectClusters, connect.NewClient)
}

func newConnectorReconciler(cluster *registry.ManagedCluster, connectors services.ConnectorService, connectClusters services.ConnectClusterService, newClient ConnectClientFactory) *ConnectorReconciler {
	return &ConnectorReconciler{
		cluster:         cluster,
		connectors:      connectors,
		connectClusters: connectClusters,
		newClient:       newClient,
		clients:         cache.New(connectClientExpiration, connectClientExpiration),
		healthy:         cache.New(connectHealthExpiration, connectHealthExpiration),
		idle:            cache.New(connectHealthExpiration, connectHealthExpiration),
	}
}

// visibleConnectClusters merges the Connect clusters declared by namespaces with the ones of the cluster configuration
func (r *ConnectorReconciler) visibleConnectClusters(ctx context.Context) (dbapi.ConnectClusterList, error) {
	declared, svcErr := r.connectClusters.FindAllForCluster(ctx, r.cluster.Name())
	if svcErr != nil {
		return nil, svcErr
	}
	// static entries come first so they win over a declared cluster of the same name
	var visible dbapi.ConnectClusterList
	for _, static := range r.cluster.Config().ConnectClusters {
		visible = append(visible, &dbapi.ConnectCluster{
			Name:     static.Name,
			Cluster:  r.cluster.Name(),
			URL:      static.URL,
			Username: static.Username,
			Password: static.Password,
		})
	}
	visible = append(visible, declared...)
	return lo.UniqBy(visible, func(cc *dbapi.ConnectCluster) string {
		return cc.Name
	}), nil
}

func (r *ConnectorReconciler) clientFor(cc *dbapi.ConnectCluster) connect.Client {
	key := cc.Name + "|" + cc.URL + "|" + cc.Username
	if c, found := r.clients.Get(key); found {
		return c.(connect.Client)
	}
	c := r.newClient(cc.Name, cc.URL, cc.Username, cc.Password, r.cluster.Config().Timeouts.Connect.Duration())
	r.clients.SetDefault(key, c)
	return c
}

// HealthCheck checks every visible Connect cluster concurrently. A reachable cluster of a supported version
// becomes healthy, any other outcome marks it idle with the failure message.
func (r *ConnectorReconciler) HealthCheck(ctx context.Context) []error {
	if !r.cluster.Features().ManageConnectors {
		return nil
	}
	ctx = logger.WithCluster(ctx, r.cluster.Name())
	visible, err := r.visibleConnectClusters(ctx)
	if err != nil {
		return []error{err}
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, cc := range visible {
		cc := cc
		g.Go(func() error {
			r.checkCluster(gctx, cc)
			return nil
		})
	}
	_ = g.Wait()
	return nil
}

func (r *ConnectorReconciler) checkCluster(ctx context.Context, cc *dbapi.ConnectCluster) {
	info, err := r.clientFor(cc).ServerInfo(ctx)
	if err == nil {
		err = info.CheckVersion()
	}
	if err != nil {
		if _, wasHealthy := r.healthy.Get(cc.Name); wasHealthy {
			logger.NewUHCLogger(ctx).Warningf("Connect cluster %q is now idle: %v", cc.Name, err)
		}
		r.healthy.Delete(cc.Name)
		r.idle.SetDefault(cc.Name, err.Error())
		metrics.UpdateConnectClusterHealthMetric(r.cluster.Name(), cc.Name, false)
		return
	}
	if _, wasIdle := r.idle.Get(cc.Name); wasIdle {
		logger.NewUHCLogger(ctx).Infof("Connect cluster %q is healthy, version %s", cc.Name, info.Version)
	}
	r.idle.Delete(cc.Name)
	r.healthy.SetDefault(cc.Name, cc)
	metrics.UpdateConnectClusterHealthMetric(r.cluster.Name(), cc.Name, true)
}

// ConnectClusterStatus returns the health of a Connect cluster and, when idle, the last failure message.
// Clusters never checked are reported idle.
func (r *ConnectorReconciler) ConnectClusterStatus(name string) (dbapi.ConnectClusterStatus, string) {
	if _, found := r.healthy.Get(name); found {
		return dbapi.ConnectClusterHealthy, ""
	}
	if message, found := r.idle.Get(name); found {
		return dbapi.ConnectClusterIdle, message.(string)
	}
	return dbapi.ConnectClusterIdle, "health not checked yet"
}

func (r *ConnectorReconciler) healthyConnectClusters() []*dbapi.ConnectCluster {
	var clusters []*dbapi.ConnectCluster
	for _, item := range r.healthy.Items() {
		clusters = append(clusters, item.Object.(*dbapi.ConnectCluster))
	}
	sort.Slice(clusters, func(i, j int) bool {
		return clusters[i].Name < clusters[j].Name
	})
	return clusters
}

// desiredConfig is the configuration as Connect reports it back, which always carries the connector name
func desiredConfig(connector *dbapi.Connector) api.NullableStringMap {
	config := api.NullableStringMap{}
	for k, v := range connector.Config {
		config[k] = v
	}
	name := connector.Name
	config[connectorNameKey] = &name
	return config
}

// diffConnectors compares configurations only, deployed metadata such as status or type is ignored
func diffConnectors(desired dbapi.ConnectorList, deployed map[string]connect.Connector) (toCreate dbapi.ConnectorList, toUpdate dbapi.ConnectorList, inSync dbapi.ConnectorList) {
	for _, connector := range desired {
		current, ok := deployed[connector.Name]
		switch {
		case !ok:
			toCreate = append(toCreate, connector)
		case !desiredConfig(connector).Equal(current.Info.Config):
			toUpdate = append(toUpdate, connector)
		default:
			inSync = append(inSync, connector)
		}
	}
	return toCreate, toUpdate, inSync
}

// Reconcile deploys the missing and drifted connectors of every healthy Connect cluster. Connect clusters
// are processed concurrently and idle ones are skipped until a health check sees them again.
func (r *ConnectorReconciler) Reconcile(ctx context.Context) []error {
	if !r.cluster.Features().ManageConnectors {
		return nil
	}
	ctx = logger.WithCluster(ctx, r.cluster.Name())
	desired, svcErr := r.connectors.FindAllForCluster(ctx, r.cluster.Name())
	if svcErr != nil {
		return []error{svcErr}
	}

	var mu sync.Mutex
	var errs errors.ErrorList
	collect := func(failures ...error) {
		mu.Lock()
		defer mu.Unlock()
		errs.AddErrors(failures...)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, cc := range r.healthyConnectClusters() {
		cc := cc
		connectors := desired.ForConnectCluster(cc.Name)
		g.Go(func() error {
			collect(r.reconcileConnectCluster(gctx, cc, connectors)...)
			return nil
		})
	}
	_ = g.Wait()
	return errs.ToErrorSlice()
}

func (r *ConnectorReconciler) reconcileConnectCluster(ctx context.Context, cc *dbapi.ConnectCluster, desired dbapi.ConnectorList) []error {
	client := r.clientFor(cc)
	deployed, err := client.ListConnectors(ctx)
	if err != nil {
		return []error{err}
	}
	toCreate, toUpdate, inSync := diffConnectors(desired, deployed)
	metrics.UpdateResourcesPendingMetric(r.cluster.Name(), metrics.ResourceKindConnector, len(toCreate)+len(toUpdate))

	var errs errors.ErrorList
	deploy := func(connector *dbapi.Connector, operation metrics.ResourceOperation) {
		err := client.Upsert(ctx, connector.Name, desiredConfig(connector))
		metrics.IncreaseResourceOperationMetrics(r.cluster.Name(), metrics.ResourceKindConnector, operation, err)
		if err != nil {
			logger.NewUHCLogger(ctx).Errorf("failed to deploy connector %q on Connect cluster %q: %v", connector.Name, cc.Name, err)
			errs.AddErrors(err)
			connector.Status = dbapi.FailedStatus(err.Error())
		} else {
			logger.NewUHCLogger(ctx).Infof("deployed connector %q on Connect cluster %q", connector.Name, cc.Name)
			connector.Status = dbapi.SuccessStatus(deployedMessage)
			connector.Generation++
		}
		errs.AddErrors(asError(r.connectors.Update(ctx, connector)))
	}
	for _, connector := range toCreate {
		deploy(connector, metrics.ResourceOperationCreate)
	}
	for _, connector := range toUpdate {
		deploy(connector, metrics.ResourceOperationUpdate)
	}
	for _, connector := range inSync {
		status := deployedStatus(deployed[connector.Name].Status)
		if connector.Status == status {
			continue
		}
		connector.Status = status
		errs.AddErrors(asError(r.connectors.Update(ctx, connector)))
	}
	return errs.ToErrorSlice()
}

// deployedStatus mirrors the runtime state reported by Connect, with the failure trace when the connector or a task failed
func deployedStatus(status connect.ConnectorStatus) dbapi.ResourceStatus {
	if trace, failed := status.Failure(); failed {
		if trace == "" {
			trace = connect.StateFailed
		}
		return dbapi.FailedStatus(trace)
	}
	return dbapi.SuccessStatus(status.Connector.State)
}

func (r *ConnectorReconciler) connectClusterFor(ctx context.Context, connector *dbapi.Connector) (*dbapi.ConnectCluster, error) {
	visible, err := r.visibleConnectClusters(ctx)
	if err != nil {
		return nil, err
	}
	cc, found := lo.Find(visible, func(cc *dbapi.ConnectCluster) bool {
		return cc.Name == connector.ConnectCluster
	})
	if !found {
		return nil, errors.NotFound("Connect cluster %q not found on cluster %q", connector.ConnectCluster, r.cluster.Name())
	}
	return cc, nil
}

// DeleteConnector removes the connector from its Connect cluster and from the desired state
func (r *ConnectorReconciler) DeleteConnector(ctx context.Context, connector *dbapi.Connector) error {
	cc, err := r.connectClusterFor(ctx, connector)
	if err != nil {
		return err
	}
	err = r.clientFor(cc).Delete(ctx, connector.Name)
	metrics.IncreaseResourceOperationMetrics(r.cluster.Name(), metrics.ResourceKindConnector, metrics.ResourceOperationDelete, err)
	if err != nil {
		return err
	}
	return asError(r.connectors.Delete(ctx, connector))
}

func (r *ConnectorReconciler) RestartConnector(ctx context.Context, connector *dbapi.Connector) error {
	cc, err := r.connectClusterFor(ctx, connector)
	if err != nil {
		return err
	}
	return r.clientFor(cc).Restart(ctx, connector.Name)
}

// ValidateConnector checks the configuration against the plugins installed on the Connect cluster
// and returns one message per invalid entry
func (r *ConnectorReconciler) ValidateConnector(ctx context.Context, connector *dbapi.Connector) ([]string, error) {
	class, ok := connector.Config[connectorClassKey]
	if !ok || class == nil || *class == "" {
		return nil, errors.Validation("connector %q has no %s", connector.Name, connectorClassKey)
	}
	cc, err := r.connectClusterFor(ctx, connector)
	if err != nil {
		return nil, err
	}
	result, err := r.clientFor(cc).Validate(ctx, *class, desiredConfig(connector))
	if err != nil {
		return nil, err
	}
	return result.Errors(), nil
}

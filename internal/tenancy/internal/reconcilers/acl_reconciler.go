package reconcilers

import (
	"context"
	"sort"

	"github.com/IBM/sarama"
	"github.com/samber/lo"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/authz"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/kafka"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/registry"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/services"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/logger"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/metrics"
)

const (
	publicPrincipal    = "User:*"
	anyHost            = "*"
	connectGroupPrefix = "connect-"
)

var ownerOperations = map[dbapi.ResourceType][]sarama.AclOperation{
	dbapi.ResourceTypeTopic:           {sarama.AclOperationWrite, sarama.AclOperationRead, sarama.AclOperationDescribeConfigs},
	dbapi.ResourceTypeGroup:           {sarama.AclOperationRead},
	dbapi.ResourceTypeTransactionalID: {sarama.AclOperationDescribe, sarama.AclOperationWrite},
}

var brokerResourceTypes = map[dbapi.ResourceType]sarama.AclResourceType{
	dbapi.ResourceTypeTopic:           sarama.AclResourceTopic,
	dbapi.ResourceTypeGroup:           sarama.AclResourceGroup,
	dbapi.ResourceTypeTransactionalID: sarama.AclResourceTransactionalID,
}

var brokerPatternTypes = map[dbapi.PatternType]sarama.AclResourcePatternType{
	dbapi.PatternTypeLiteral:  sarama.AclPatternLiteral,
	dbapi.PatternTypePrefixed: sarama.AclPatternPrefixed,
}

type bindingSet map[kafka.AclBinding]bool

func (s bindingSet) add(bindings ...kafka.AclBinding) {
	for _, b := range bindings {
		s[b] = true
	}
}

// sorted gives a stable apply order
func (s bindingSet) sorted() []kafka.AclBinding {
	bindings := lo.Keys(s)
	sort.Slice(bindings, func(i, j int) bool {
		return bindings[i].String() < bindings[j].String()
	})
	return bindings
}

// principals resolves namespace names to broker principals, the public grantee included
type principals map[string]string

func newPrincipals(namespaces dbapi.NamespaceList) principals {
	p := principals{dbapi.PublicGrantee: publicPrincipal}
	for _, ns := range namespaces {
		if ns.KafkaUser != "" {
			p[ns.Name] = ns.Principal()
		}
	}
	return p
}

func allow(resourceType sarama.AclResourceType, resource string, patternType sarama.AclResourcePatternType, principal string, operation sarama.AclOperation) kafka.AclBinding {
	return kafka.AclBinding{
		ResourceType: resourceType,
		ResourceName: resource,
		PatternType:  patternType,
		Principal:    principal,
		Host:         anyHost,
		Operation:    operation,
		Permission:   sarama.AclPermissionAllow,
	}
}

// expandAce returns the broker bindings of one access control entry. Entries on resource types
// without broker bindings, or granted to a namespace without broker user, expand to nothing.
func expandAce(ace *dbapi.AccessControlEntry, p principals) []kafka.AclBinding {
	principal, ok := p[ace.GrantedTo]
	if !ok {
		return nil
	}
	patternType := brokerPatternTypes[ace.PatternType]

	if ace.ResourceType == dbapi.ResourceTypeConnect {
		if ace.Permission != dbapi.PermissionOwner {
			return nil
		}
		return []kafka.AclBinding{allow(sarama.AclResourceGroup, connectGroupPrefix+ace.Resource, patternType, principal, sarama.AclOperationRead)}
	}

	resourceType, ok := brokerResourceTypes[ace.ResourceType]
	if !ok {
		return nil
	}
	var operations []sarama.AclOperation
	switch ace.Permission {
	case dbapi.PermissionOwner:
		operations = ownerOperations[ace.ResourceType]
	case dbapi.PermissionRead:
		operations = []sarama.AclOperation{sarama.AclOperationRead}
	case dbapi.PermissionWrite:
		operations = []sarama.AclOperation{sarama.AclOperationWrite}
	}
	return lo.Map(operations, func(op sarama.AclOperation, _ int) kafka.AclBinding {
		return allow(resourceType, ace.Resource, patternType, principal, op)
	})
}

// expandStreamingApp lets the application manage its internal topics and transactions
func expandStreamingApp(app *dbapi.StreamingApp, p principals) []kafka.AclBinding {
	principal, ok := p[app.Namespace]
	if !ok {
		return nil
	}
	return []kafka.AclBinding{
		allow(sarama.AclResourceTopic, app.Name, sarama.AclPatternPrefixed, principal, sarama.AclOperationCreate),
		allow(sarama.AclResourceTopic, app.Name, sarama.AclPatternPrefixed, principal, sarama.AclOperationDelete),
		allow(sarama.AclResourceTransactionalID, app.Name, sarama.AclPatternPrefixed, principal, sarama.AclOperationWrite),
	}
}

func desiredBindings(aces dbapi.AccessControlEntryList, apps dbapi.StreamingAppList, p principals) bindingSet {
	desired := bindingSet{}
	for _, ace := range aces {
		desired.add(expandAce(ace, p)...)
	}
	for _, app := range apps {
		desired.add(expandStreamingApp(app, p)...)
	}
	return desired
}

func dbapiResourceType(t sarama.AclResourceType) dbapi.ResourceType {
	for k, v := range brokerResourceTypes {
		if v == t {
			return k
		}
	}
	return ""
}

// managedFilter keeps the observed bindings the control plane may delete
func managedFilter(enabled bool, p principals, index *authz.OwnershipIndex) func(kafka.AclBinding) bool {
	known := lo.SliceToMap(lo.Values(p), func(principal string) (string, bool) {
		return principal, true
	})
	return func(b kafka.AclBinding) bool {
		if !enabled {
			return true
		}
		if b.Principal == publicPrincipal {
			_, owned := index.OwnerOf(dbapiResourceType(b.ResourceType), b.ResourceName)
			return owned
		}
		return known[b.Principal]
	}
}

// diffBindings creates what is desired but absent from the broker, and deletes the managed broker bindings no longer desired
func diffBindings(desired bindingSet, observed []kafka.AclBinding, managed func(kafka.AclBinding) bool) (toCreate []kafka.AclBinding, toDelete []kafka.AclBinding) {
	present := bindingSet{}
	present.add(observed...)
	for _, b := range desired.sorted() {
		if !present[b] {
			toCreate = append(toCreate, b)
		}
	}
	for _, b := range present.sorted() {
		if !desired[b] && managed(b) {
			toDelete = append(toDelete, b)
		}
	}
	return toCreate, toDelete
}

type AclReconciler struct {
	cluster       *registry.ManagedCluster
	namespaces    services.NamespaceService
	aces          services.AccessControlEntryService
	streamingApps services.StreamingAppService
}

func NewAclReconciler(cluster *registry.ManagedCluster, namespaces services.NamespaceService, aces services.AccessControlEntryService, streamingApps services.StreamingAppService) *AclReconciler {
	return &AclReconciler{
		cluster:       cluster,
		namespaces:    namespaces,
		aces:          aces,
		streamingApps: streamingApps,
	}
}

// Reconcile applies every missing binding, then removes the unsynchronised ones when the cluster allows it
func (r *AclReconciler) Reconcile(ctx context.Context) []error {
	if !r.cluster.Features().ManageAcls {
		return nil
	}
	ctx = logger.WithCluster(ctx, r.cluster.Name())
	admin, err := r.cluster.Admin()
	if err != nil {
		return []error{err}
	}
	namespaces, aces, apps, err := r.desiredState(ctx)
	if err != nil {
		return []error{err}
	}
	observed, err := admin.ListAcls(ctx)
	if err != nil {
		return []error{err}
	}

	p := newPrincipals(namespaces)
	desired := desiredBindings(aces, apps, p)
	managed := managedFilter(r.cluster.Features().ManagedPrincipalsOnly, p, authz.NewOwnershipIndex(aces))
	toCreate, toDelete := diffBindings(desired, observed, managed)
	metrics.UpdateResourcesPendingMetric(r.cluster.Name(), metrics.ResourceKindAcl, len(toCreate)+len(toDelete))

	var errs errors.ErrorList
	created := r.createBindings(ctx, admin, toCreate)
	if err := interrupted(ctx); err != nil {
		return append(errs, err)
	}
	errs.AddErrors(r.markApplied(ctx, aces, p, observed, created)...)

	if len(toDelete) > 0 {
		if r.cluster.Features().DropUnsyncedAcls {
			r.deleteBindings(ctx, admin, toDelete)
		} else {
			logger.NewUHCLogger(ctx).Infof("%d unsynchronised broker ACLs kept, dropping them is disabled", len(toDelete))
			for _, b := range toDelete {
				logger.NewUHCLogger(ctx).V(5).Infof("unsynchronised broker ACL %s", b)
			}
		}
	}
	return errs.ToErrorSlice()
}

func (r *AclReconciler) desiredState(ctx context.Context) (dbapi.NamespaceList, dbapi.AccessControlEntryList, dbapi.StreamingAppList, error) {
	namespaces, svcErr := r.namespaces.FindAllForCluster(ctx, r.cluster.Name())
	if svcErr != nil {
		return nil, nil, nil, svcErr
	}
	aces, svcErr := r.aces.FindAllForCluster(ctx, r.cluster.Name())
	if svcErr != nil {
		return nil, nil, nil, svcErr
	}
	apps, svcErr := r.streamingApps.FindAllForCluster(ctx, r.cluster.Name())
	if svcErr != nil {
		return nil, nil, nil, svcErr
	}
	return namespaces, aces, apps, nil
}

// createBindings logs failures per binding and returns the bindings now present on the broker
func (r *AclReconciler) createBindings(ctx context.Context, admin kafka.AdminClient, bindings []kafka.AclBinding) bindingSet {
	created := bindingSet{}
	for _, b := range bindings {
		if ctx.Err() != nil {
			return created
		}
		err := admin.CreateAcl(ctx, b)
		metrics.IncreaseResourceOperationMetrics(r.cluster.Name(), metrics.ResourceKindAcl, metrics.ResourceOperationCreate, err)
		if err != nil {
			logger.NewUHCLogger(ctx).Errorf("failed to create ACL %s: %v", b, err)
			continue
		}
		logger.NewUHCLogger(ctx).Infof("created ACL %s", b)
		created[b] = true
	}
	return created
}

func (r *AclReconciler) deleteBindings(ctx context.Context, admin kafka.AdminClient, bindings []kafka.AclBinding) {
	for _, b := range bindings {
		if ctx.Err() != nil {
			return
		}
		err := admin.DeleteAcl(ctx, b)
		metrics.IncreaseResourceOperationMetrics(r.cluster.Name(), metrics.ResourceKindAcl, metrics.ResourceOperationDelete, err)
		if err != nil {
			logger.NewUHCLogger(ctx).Errorf("failed to delete ACL %s: %v", b, err)
			continue
		}
		logger.NewUHCLogger(ctx).Infof("deleted ACL %s", b)
	}
}

// markApplied sets the first generation of entries whose bindings are all on the broker
func (r *AclReconciler) markApplied(ctx context.Context, aces dbapi.AccessControlEntryList, p principals, observed []kafka.AclBinding, created bindingSet) []error {
	present := bindingSet{}
	present.add(observed...)
	present.add(lo.Keys(created)...)

	var errs errors.ErrorList
	for _, ace := range aces {
		if ace.Generation > 0 {
			continue
		}
		bindings := expandAce(ace, p)
		if len(bindings) == 0 || !lo.EveryBy(bindings, func(b kafka.AclBinding) bool { return present[b] }) {
			continue
		}
		ace.Generation = 1
		errs.AddErrors(asError(r.aces.Update(ctx, ace)))
	}
	return errs.ToErrorSlice()
}

// DeleteForAce removes the bindings of ace that no other entry or streaming application still needs, then the entry itself
func (r *AclReconciler) DeleteForAce(ctx context.Context, namespace string, ace *dbapi.AccessControlEntry) error {
	if ace.Namespace != namespace {
		return errors.Forbidden("namespace %q is not the grantor of access control entry %q", namespace, ace.Name)
	}
	ctx = logger.WithCluster(ctx, r.cluster.Name())
	namespaces, aces, apps, err := r.desiredState(ctx)
	if err != nil {
		return err
	}
	p := newPrincipals(namespaces)
	remaining := desiredBindings(aces.Filter(func(other *dbapi.AccessControlEntry) bool {
		return other.ID != ace.ID
	}), apps, p)
	if err := r.deleteUnneeded(ctx, expandAce(ace, p), remaining); err != nil {
		return err
	}
	return asError(r.aces.Delete(ctx, ace))
}

// DeleteForStreamingApp removes the bindings derived from app that nothing else still needs, then the application itself
func (r *AclReconciler) DeleteForStreamingApp(ctx context.Context, namespace string, app *dbapi.StreamingApp) error {
	if app.Namespace != namespace {
		return errors.Forbidden("streaming application %q does not belong to namespace %q", app.Name, namespace)
	}
	ctx = logger.WithCluster(ctx, r.cluster.Name())
	namespaces, aces, apps, err := r.desiredState(ctx)
	if err != nil {
		return err
	}
	p := newPrincipals(namespaces)
	others := dbapi.StreamingAppList(lo.Filter(apps, func(other *dbapi.StreamingApp, _ int) bool {
		return other.ID != app.ID
	}))
	if err := r.deleteUnneeded(ctx, expandStreamingApp(app, p), desiredBindings(aces, others, p)); err != nil {
		return err
	}
	return asError(r.streamingApps.Delete(ctx, app))
}

func (r *AclReconciler) deleteUnneeded(ctx context.Context, bindings []kafka.AclBinding, stillNeeded bindingSet) error {
	if len(bindings) == 0 {
		return nil
	}
	admin, err := r.cluster.Admin()
	if err != nil {
		return err
	}
	var errs errors.ErrorList
	for _, b := range bindings {
		if stillNeeded[b] {
			continue
		}
		err := admin.DeleteAcl(ctx, b)
		metrics.IncreaseResourceOperationMetrics(r.cluster.Name(), metrics.ResourceKindAcl, metrics.ResourceOperationDelete, err)
		errs.AddErrors(err)
	}
	return errs.AsError()
}

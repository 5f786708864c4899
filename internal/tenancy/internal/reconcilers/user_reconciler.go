package reconcilers

import (
	"context"
	"sort"

	"github.com/samber/lo"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/registry"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/services"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/logger"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/metrics"
)

const (
	ProducerByteRateQuota = "producer_byte_rate"
	ConsumerByteRateQuota = "consumer_byte_rate"

	DefaultByteRate = float64(102400)
)

type UserReconciler struct {
	cluster    *registry.ManagedCluster
	namespaces services.NamespaceService
	strategy   UserStrategy
}

func NewUserReconciler(cluster *registry.ManagedCluster, namespaces services.NamespaceService) *UserReconciler {
	return &UserReconciler{
		cluster:    cluster,
		namespaces: namespaces,
		strategy:   NewUserStrategy(cluster),
	}
}

func (r *UserReconciler) CanSynchronizeQuotas() bool {
	return r.strategy.CanSynchronizeQuotas()
}

func (r *UserReconciler) CanResetPassword() bool {
	return r.strategy.CanResetPassword()
}

func byteRate(rate *float64) float64 {
	if rate == nil {
		return DefaultByteRate
	}
	return *rate
}

// desiredQuotas keys the byte rates of every namespace with a broker user by user name
func desiredQuotas(namespaces dbapi.NamespaceList) map[string]map[string]float64 {
	quotas := map[string]map[string]float64{}
	for _, ns := range namespaces {
		if ns.KafkaUser == "" {
			continue
		}
		quotas[ns.KafkaUser] = map[string]float64{
			ProducerByteRateQuota: byteRate(ns.ProducerByteRate),
			ConsumerByteRateQuota: byteRate(ns.ConsumerByteRate),
		}
	}
	return quotas
}

func quotasEqual(a map[string]float64, b map[string]float64) bool {
	if len(a) != len(b) {
		return false
	}
	for k, v := range a {
		if o, ok := b[k]; !ok || o != v {
			return false
		}
	}
	return true
}

func diffQuotas(desired map[string]map[string]float64, observed map[string]map[string]float64) (toCreate []string, toUpdate []string) {
	users := lo.Keys(desired)
	sort.Strings(users)
	for _, user := range users {
		current, ok := observed[user]
		switch {
		case !ok || len(current) == 0:
			toCreate = append(toCreate, user)
		case !quotasEqual(desired[user], current):
			toUpdate = append(toUpdate, user)
		}
	}
	return toCreate, toUpdate
}

// ReconcileQuotas applies the byte rates of every namespace. Clusters whose provider manages quotas itself are skipped.
func (r *UserReconciler) ReconcileQuotas(ctx context.Context) []error {
	if !r.cluster.Features().ManageUsers || !r.strategy.CanSynchronizeQuotas() {
		return nil
	}
	ctx = logger.WithCluster(ctx, r.cluster.Name())
	namespaces, svcErr := r.namespaces.FindAllForCluster(ctx, r.cluster.Name())
	if svcErr != nil {
		return []error{svcErr}
	}
	observed, err := r.strategy.DescribeQuotas(ctx)
	if err != nil {
		return []error{err}
	}

	desired := desiredQuotas(namespaces)
	toCreate, toUpdate := diffQuotas(desired, observed)
	metrics.UpdateResourcesPendingMetric(r.cluster.Name(), metrics.ResourceKindQuota, len(toCreate)+len(toUpdate))

	var errs errors.ErrorList
	apply := func(user string, operation metrics.ResourceOperation) {
		err := r.strategy.AlterQuotas(ctx, user, desired[user])
		metrics.IncreaseResourceOperationMetrics(r.cluster.Name(), metrics.ResourceKindQuota, operation, err)
		if err != nil {
			logger.NewUHCLogger(ctx).Errorf("failed to alter quotas of user %q: %v", user, err)
			errs.AddErrors(err)
			return
		}
		logger.NewUHCLogger(ctx).Infof("applied quotas %v to user %q", desired[user], user)
	}
	for _, user := range toCreate {
		apply(user, metrics.ResourceOperationCreate)
	}
	for _, user := range toUpdate {
		apply(user, metrics.ResourceOperationUpdate)
	}
	return errs.ToErrorSlice()
}

// ResetPassword returns the generated password, which is never stored
func (r *UserReconciler) ResetPassword(ctx context.Context, user string) (string, error) {
	password, err := r.strategy.ResetPassword(ctx, user)
	metrics.IncreaseResourceOperationMetrics(r.cluster.Name(), metrics.ResourceKindUser, metrics.ResourceOperationUpdate, err)
	return password, err
}

func (r *UserReconciler) SetPassword(ctx context.Context, user string, password string) error {
	err := r.strategy.SetPassword(ctx, user, password)
	metrics.IncreaseResourceOperationMetrics(r.cluster.Name(), metrics.ResourceKindUser, metrics.ResourceOperationUpdate, err)
	return err
}

func (r *UserReconciler) CheckPassword(ctx context.Context, user string, password string) (bool, error) {
	return r.strategy.CheckPassword(ctx, user, password)
}

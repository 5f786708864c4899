package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	// KafkaTenantManager - metrics prefix
	KafkaTenantManager = "kafka_tenant_manager"

	// ResourceOperationsSuccessCount - name of the metric for successful cluster resource operations
	ResourceOperationsSuccessCount = "resource_operations_success_count"
	// ResourceOperationsTotalCount - name of the metric for all cluster resource operations
	ResourceOperationsTotalCount = "resource_operations_total_count"
	// ResourcesPendingCount - resources diffed but not yet converged in the last pass
	ResourcesPendingCount = "resources_pending_count"

	ConnectClusterHealthy = "connect_cluster_healthy"

	labelCluster        = "cluster"
	labelResourceKind   = "kind"
	labelOperation      = "operation"
	labelConnectCluster = "connect_cluster"

	ReconcilerDuration     = "reconciler_duration_in_seconds"
	ReconcilerSuccessCount = "reconciler_success_count"
	ReconcilerFailureCount = "reconciler_failure_count"
	ReconcilerErrorsCount  = "reconciler_errors_count"
	ReconcilerDroppedTicks = "reconciler_dropped_ticks_count"
	labelReconcilerType    = "worker_type"
)

// ResourceKind of a reconciled cluster resource
type ResourceKind string

const (
	ResourceKindTopic     ResourceKind = "topic"
	ResourceKindAcl       ResourceKind = "acl"
	ResourceKindConnector ResourceKind = "connector"
	ResourceKindQuota     ResourceKind = "quota"
	ResourceKindUser      ResourceKind = "user"
)

// ResourceOperation applied against a cluster resource
type ResourceOperation string

const (
	ResourceOperationImport ResourceOperation = "import"
	ResourceOperationCreate ResourceOperation = "create"
	ResourceOperationUpdate ResourceOperation = "update"
	ResourceOperationDelete ResourceOperation = "delete"
)

var resourceOperationsCountMetricsLabels = []string{
	labelCluster,
	labelResourceKind,
	labelOperation,
}

var resourcesPendingMetricsLabels = []string{
	labelCluster,
	labelResourceKind,
}

var connectClusterMetricsLabels = []string{
	labelCluster,
	labelConnectCluster,
}

var ReconcilerMetricsLabels = []string{
	labelReconcilerType,
}

var resourceOperationsSuccessCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: KafkaTenantManager,
		Name:      ResourceOperationsSuccessCount,
		Help:      "number of successful operations applied to cluster resources",
	},
	resourceOperationsCountMetricsLabels,
)

var resourceOperationsTotalCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: KafkaTenantManager,
		Name:      ResourceOperationsTotalCount,
		Help:      "number of operations attempted against cluster resources",
	},
	resourceOperationsCountMetricsLabels,
)

// IncreaseResourceOperationMetrics counts one attempt, and one success when err is nil.
func IncreaseResourceOperationMetrics(cluster string, kind ResourceKind, operation ResourceOperation, err error) {
	labels := prometheus.Labels{
		labelCluster:      cluster,
		labelResourceKind: string(kind),
		labelOperation:    string(operation),
	}
	resourceOperationsTotalCountMetric.With(labels).Inc()
	if err == nil {
		resourceOperationsSuccessCountMetric.With(labels).Inc()
	}
}

var resourcesPendingCountMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: KafkaTenantManager,
		Name:      ResourcesPendingCount,
		Help:      "number of resources that needed a change in the last reconcile pass",
	},
	resourcesPendingMetricsLabels,
)

func UpdateResourcesPendingMetric(cluster string, kind ResourceKind, count int) {
	labels := prometheus.Labels{
		labelCluster:      cluster,
		labelResourceKind: string(kind),
	}
	resourcesPendingCountMetric.With(labels).Set(float64(count))
}

var connectClusterHealthyMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: KafkaTenantManager,
		Name:      ConnectClusterHealthy,
		Help:      "1 when the Kafka Connect cluster answered the last health check, 0 when it is idle",
	},
	connectClusterMetricsLabels,
)

func UpdateConnectClusterHealthMetric(cluster string, connectCluster string, healthy bool) {
	labels := prometheus.Labels{
		labelCluster:        cluster,
		labelConnectCluster: connectCluster,
	}
	value := 0.0
	if healthy {
		value = 1.0
	}
	connectClusterHealthyMetric.With(labels).Set(value)
}

// create a new gaugeVec for reconciler duration
var reconcilerDurationMetric = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Subsystem: KafkaTenantManager,
		Name:      ReconcilerDuration,
		Help:      "Duration of each background reconcile in seconds.",
	},
	ReconcilerMetricsLabels,
)

func UpdateReconcilerDurationMetric(reconcilerType string, elapsed time.Duration) {
	labels := prometheus.Labels{
		labelReconcilerType: reconcilerType,
	}
	reconcilerDurationMetric.With(labels).Set(elapsed.Seconds())
}

var reconcilerSuccessCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: KafkaTenantManager,
		Name:      ReconcilerSuccessCount,
		Help:      "count of success operations of the background reconcilers",
	}, ReconcilerMetricsLabels)

func IncreaseReconcilerSuccessCount(reconcilerType string) {
	labels := prometheus.Labels{
		labelReconcilerType: reconcilerType,
	}
	reconcilerSuccessCountMetric.With(labels).Inc()
}

var reconcilerFailureCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: KafkaTenantManager,
		Name:      ReconcilerFailureCount,
		Help:      "count of failed operations of the background reconcilers",
	}, ReconcilerMetricsLabels)

func IncreaseReconcilerFailureCount(reconcilerType string) {
	labels := prometheus.Labels{
		labelReconcilerType: reconcilerType,
	}
	reconcilerFailureCountMetric.With(labels).Inc()
}

var reconcilerErrorsCountMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: KafkaTenantManager,
		Name:      ReconcilerErrorsCount,
		Help:      "count of errors occurred during background reconciler runs",
	}, ReconcilerMetricsLabels)

func IncreaseReconcilerErrorsCount(reconcilerType string, numOfErr int) {
	labels := prometheus.Labels{
		labelReconcilerType: reconcilerType,
	}
	reconcilerErrorsCountMetric.With(labels).Add(float64(numOfErr))
}

var reconcilerDroppedTicksMetric = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Subsystem: KafkaTenantManager,
		Name:      ReconcilerDroppedTicks,
		Help:      "count of ticks skipped because the previous run was still in flight",
	}, ReconcilerMetricsLabels)

func IncreaseReconcilerDroppedTicks(reconcilerType string) {
	labels := prometheus.Labels{
		labelReconcilerType: reconcilerType,
	}
	reconcilerDroppedTicksMetric.With(labels).Inc()
}

// register the metric(s)
func init() {
	prometheus.MustRegister(resourceOperationsSuccessCountMetric)
	prometheus.MustRegister(resourceOperationsTotalCountMetric)
	prometheus.MustRegister(resourcesPendingCountMetric)
	prometheus.MustRegister(connectClusterHealthyMetric)
	prometheus.MustRegister(reconcilerDurationMetric)
	prometheus.MustRegister(reconcilerSuccessCountMetric)
	prometheus.MustRegister(reconcilerFailureCountMetric)
	prometheus.MustRegister(reconcilerErrorsCountMetric)
	prometheus.MustRegister(reconcilerDroppedTicksMetric)
}

// Reset the metrics we have defined. It is mainly used for testing.
func Reset() {
	resourceOperationsSuccessCountMetric.Reset()
	resourceOperationsTotalCountMetric.Reset()
	resourcesPendingCountMetric.Reset()
	connectClusterHealthyMetric.Reset()
	reconcilerDurationMetric.Reset()
	reconcilerSuccessCountMetric.Reset()
	reconcilerFailureCountMetric.Reset()
	reconcilerErrorsCountMetric.Reset()
	reconcilerDroppedTicksMetric.Reset()
}

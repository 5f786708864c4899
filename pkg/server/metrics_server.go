package server

import (
	"net/http"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/services/sentry"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsServer exposes the prometheus registry, reconciler metrics included, on /metrics.
type MetricsServer struct {
	*endpoint
}

var _ Server = &MetricsServer{}

func NewMetricsServer(metricsConfig *MetricsConfig, serverConfig *ServerConfig, sentryConfig *sentry.Config) *MetricsServer {
	router := mux.NewRouter()
	router.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)
	return &MetricsServer{newEndpoint("Metrics", router, metricsConfig.listenerConfig, serverConfig, sentryConfig.Timeout)}
}

package server

import (
	"fmt"
	"net/http"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/services/sentry"
	health "github.com/docker/go-healthcheck"
	"github.com/gorilla/mux"
)

// maintenance is toggled through /healthcheck/down and /healthcheck/up
var maintenance = health.NewStatusUpdater()

type HealthCheckServer struct {
	*endpoint
}

var _ Server = &HealthCheckServer{}

func NewHealthCheckServer(healthCheckConfig *HealthCheckConfig, serverConfig *ServerConfig, sentryConfig *sentry.Config, connectionFactory *db.ConnectionFactory) *HealthCheckServer {
	health.DefaultRegistry = health.NewRegistry()
	health.Register("maintenance_status", maintenance)
	health.Register("database", health.PeriodicChecker(health.CheckFunc(connectionFactory.CheckConnection), healthCheckConfig.DatabaseCheckInterval))

	router := mux.NewRouter()
	router.HandleFunc("/healthcheck", health.StatusHandler).Methods(http.MethodGet)
	router.HandleFunc("/healthcheck/down", enterMaintenance).Methods(http.MethodPost)
	router.HandleFunc("/healthcheck/up", leaveMaintenance).Methods(http.MethodPost)
	return &HealthCheckServer{newEndpoint("HealthCheck", router, healthCheckConfig.listenerConfig, serverConfig, sentryConfig.Timeout)}
}

func enterMaintenance(w http.ResponseWriter, r *http.Request) {
	maintenance.Update(fmt.Errorf("maintenance mode"))
}

func leaveMaintenance(w http.ResponseWriter, r *http.Request) {
	maintenance.Update(nil)
}

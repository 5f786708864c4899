package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	health "github.com/docker/go-healthcheck"
	"github.com/onsi/gomega"
)

func Test_maintenanceHandlers(t *testing.T) {
	g := gomega.NewWithT(t)
	health.DefaultRegistry = health.NewRegistry()
	health.Register("maintenance_status", maintenance)

	status := func() int {
		rec := httptest.NewRecorder()
		health.StatusHandler(rec, httptest.NewRequest(http.MethodGet, "/healthcheck", nil))
		return rec.Code
	}

	enterMaintenance(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/healthcheck/down", nil))
	g.Expect(status()).To(gomega.Equal(http.StatusServiceUnavailable))

	leaveMaintenance(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/healthcheck/up", nil))
	g.Expect(status()).To(gomega.Equal(http.StatusOK))
}

func Test_newEndpoint(t *testing.T) {
	g := gomega.NewWithT(t)
	config := NewMetricsConfig()
	config.BindAddress = "localhost:9191"
	e := newEndpoint("Metrics", http.NotFoundHandler(), config.listenerConfig, NewServerConfig(), 0)

	g.Expect(e.httpServer.Addr).To(gomega.Equal("localhost:9191"))
	g.Expect(e.httpServer.TLSConfig.MinVersion).To(gomega.Equal(config.MinTLSVersion))

	var s Server = &MetricsServer{e}
	g.Expect(func() { s.Stop() }).ToNot(gomega.Panic())
}

package connect

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/onsi/gomega"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

func strPtr(s string) *string {
	return &s
}

func newTestServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, Client) {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server, NewClient("local-connect", server.URL, "user", "password", 5*time.Second)
}

func TestClient_ServerInfo(t *testing.T) {
	g := gomega.NewWithT(t)
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		user, password, ok := r.BasicAuth()
		if !ok || user != "user" || password != "password" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"version":"3.4.0","commit":"2e1947d240607d53","kafka_cluster_id":"J8KRtXKYQ0ep8YfGqUu7Ew"}`))
	})

	info, err := c.ServerInfo(context.Background())
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(info.Version).To(gomega.Equal("3.4.0"))
	g.Expect(info.KafkaClusterID).To(gomega.Equal("J8KRtXKYQ0ep8YfGqUu7Ew"))
}

func TestClient_ListConnectors(t *testing.T) {
	g := gomega.NewWithT(t)
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/connectors" || len(r.URL.Query()["expand"]) != 2 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"project1.sink": {
				"info": {"name": "project1.sink", "config": {"connector.class": "FileStreamSink", "file": null}, "type": "sink"},
				"status": {"name": "project1.sink", "connector": {"state": "RUNNING", "worker_id": "10.0.0.1:8083"}, "tasks": [{"id": 0, "state": "FAILED", "worker_id": "10.0.0.1:8083", "trace": "boom"}], "type": "sink"}
			}
		}`))
	})

	connectors, err := c.ListConnectors(context.Background())
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(connectors).To(gomega.HaveKey("project1.sink"))
	connector := connectors["project1.sink"]
	g.Expect(connector.Info.Config).To(gomega.HaveLen(2))
	g.Expect(connector.Info.Config["file"]).To(gomega.BeNil())
	g.Expect(*connector.Info.Config["connector.class"]).To(gomega.Equal("FileStreamSink"))
	g.Expect(connector.Status.Connector.State).To(gomega.Equal("RUNNING"))
	g.Expect(connector.Status.Tasks[0].State.State).To(gomega.Equal("FAILED"))
	g.Expect(connector.Status.Tasks[0].Trace).To(gomega.Equal("boom"))
}

func TestClient_Upsert(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		response string
		wantErr  bool
	}{
		{
			name:     "deploys the configuration",
			status:   http.StatusCreated,
			response: `{"name":"project1.sink","config":{},"tasks":[]}`,
		},
		{
			name:     "reports the Connect error message",
			status:   http.StatusConflict,
			response: `{"error_code":409,"message":"Cannot complete request because of a conflicting operation"}`,
			wantErr:  true,
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			var gotPath string
			var gotBody map[string]*string
			_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.Method + " " + r.URL.Path
				body, _ := io.ReadAll(r.Body)
				_ = json.Unmarshal(body, &gotBody)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.response))
			})

			err := c.Upsert(context.Background(), "project1.sink", map[string]*string{"connector.class": strPtr("FileStreamSink")})
			g.Expect(gotPath).To(gomega.Equal("PUT /connectors/project1.sink/config"))
			g.Expect(*gotBody["connector.class"]).To(gomega.Equal("FileStreamSink"))
			g.Expect(err != nil).To(gomega.Equal(tt.wantErr))
			if tt.wantErr {
				g.Expect(errors.HasCode(err, errors.ErrorConnect)).To(gomega.BeTrue())
				g.Expect(err.Error()).To(gomega.ContainSubstring("conflicting operation"))
			}
		})
	}
}

func TestClient_Delete(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{name: "deleted", status: http.StatusNoContent},
		{name: "already gone", status: http.StatusNotFound},
		{name: "server failure", status: http.StatusInternalServerError, wantErr: true},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
			})
			err := c.Delete(context.Background(), "project1.sink")
			g.Expect(err != nil).To(gomega.Equal(tt.wantErr))
		})
	}
}

func TestClient_Validate(t *testing.T) {
	g := gomega.NewWithT(t)
	_, c := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/connector-plugins/FileStreamSink/config/validate" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"name":"FileStreamSink","error_count":1,"configs":[
			{"value":{"name":"topics","value":null,"errors":["Must configure one of topics or topics.regex"]}},
			{"value":{"name":"file","value":"/tmp/out","errors":[]}}
		]}`))
	})

	result, err := c.Validate(context.Background(), "FileStreamSink", map[string]*string{"file": strPtr("/tmp/out")})
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(result.ErrorCount).To(gomega.Equal(1))
	g.Expect(result.Errors()).To(gomega.ConsistOf("topics: Must configure one of topics or topics.regex"))
}

func TestClient_Unreachable(t *testing.T) {
	g := gomega.NewWithT(t)
	c := NewClient("down", "http://127.0.0.1:1", "", "", time.Second)
	_, err := c.ServerInfo(context.Background())
	g.Expect(errors.HasCode(err, errors.ErrorConnect)).To(gomega.BeTrue())
}

func TestServerInfo_CheckVersion(t *testing.T) {
	tests := []struct {
		version string
		wantErr bool
	}{
		{version: "3.4.0"},
		{version: "2.3.0"},
		{version: "7.4.0-ccs"},
		{version: "2.3.0-SNAPSHOT"},
		{version: "2.2.1", wantErr: true},
		{version: "unknown", wantErr: true},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.version, func(t *testing.T) {
			g := gomega.NewWithT(t)
			info := &ServerInfo{Version: tt.version}
			g.Expect(info.CheckVersion() != nil).To(gomega.Equal(tt.wantErr))
		})
	}
}

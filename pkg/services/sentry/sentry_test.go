package sentry

import (
	"testing"
	"time"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/environments"
	"github.com/getsentry/sentry-go"
	"github.com/onsi/gomega"
)

func Test_dsn(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(dsn(&Config{Enabled: false, Key: "abc", URL: "sentry.example.com", Project: "3"})).To(gomega.BeEmpty())
	g.Expect(dsn(&Config{Enabled: true, Key: "abc", URL: "sentry.example.com", Project: "3"})).To(gomega.Equal("https://abc@sentry.example.com/3"))
}

func TestInitialize(t *testing.T) {
	tests := []struct {
		name    string
		config  *Config
		wantErr error
	}{
		{
			name:   "disabled reporting initializes a no-op client",
			config: &Config{Enabled: false},
		},
		{
			name:   "enabled reporting with a valid project",
			config: &Config{Enabled: true, Key: "1234", URL: "sentry.example.com", Project: "3", Timeout: time.Second},
		},
		{
			name:    "enabled reporting without a project",
			config:  &Config{Enabled: true, Key: "1234", URL: "sentry.example.com", Timeout: time.Second},
			wantErr: &sentry.DsnParseError{Message: "empty project id"},
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			err := Initialize(environments.EnvName(environments.TestingEnv), tt.config)
			if tt.wantErr == nil {
				g.Expect(err).ToNot(gomega.HaveOccurred())
				return
			}
			g.Expect(err).To(gomega.Equal(tt.wantErr))
		})
	}
}

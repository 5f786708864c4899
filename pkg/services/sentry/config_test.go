package sentry

import (
	"os"
	"testing"

	"github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/shared"
)

func Test_Config_ReadFiles(t *testing.T) {
	keyFile, err := shared.CreateTempFileFromStringData("sentry.key", "abc123\n")
	if err != nil {
		t.Fatal(err)
	}
	defer os.Remove(keyFile)

	tests := []struct {
		name    string
		config  *Config
		wantKey string
		wantErr bool
	}{
		{
			name: "does not read the key file when sentry is disabled",
			config: &Config{
				Enabled: false,
				KeyFile: "/does/not/exist",
			},
			wantKey: "",
		},
		{
			name: "reads and trims the key when sentry is enabled",
			config: &Config{
				Enabled: true,
				KeyFile: keyFile,
			},
			wantKey: "abc123",
		},
		{
			name: "returns an error when the key file is missing",
			config: &Config{
				Enabled: true,
				KeyFile: "/does/not/exist",
			},
			wantErr: true,
		},
	}

	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			err := tt.config.ReadFiles()
			g.Expect(err != nil).To(gomega.Equal(tt.wantErr))
			if !tt.wantErr {
				g.Expect(tt.config.Key).To(gomega.Equal(tt.wantKey))
			}
		})
	}
}

func Test_Config_AddFlags(t *testing.T) {
	g := gomega.NewWithT(t)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c := NewConfig()
	c.AddFlags(fs)

	g.Expect(fs.Parse([]string{"--enable-sentry", "--sentry-project=42"})).To(gomega.Succeed())
	g.Expect(c.Enabled).To(gomega.BeTrue())
	g.Expect(c.Project).To(gomega.Equal("42"))
}

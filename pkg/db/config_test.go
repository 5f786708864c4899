package db

import (
	"os"
	"testing"

	"github.com/onsi/gomega"
	"github.com/spf13/pflag"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/shared"
)

func Test_AddFlags(t *testing.T) {
	g := gomega.NewWithT(t)
	fs := &pflag.FlagSet{}
	config := NewDatabaseConfig()
	config.AddFlags(fs)

	flag, err := fs.GetString("db-ssl-certificate-file")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(flag).To(gomega.Equal("secrets/db.ca_cert"))
}

func Test_ReadFiles(t *testing.T) {
	g := gomega.NewWithT(t)

	hostFile, err := shared.CreateTempFileFromStringData("db.host", "localhost\n")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	defer os.Remove(hostFile)
	portFile, err := shared.CreateTempFileFromStringData("db.port", "5432")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	defer os.Remove(portFile)

	config := NewDatabaseConfig()
	config.HostFile = hostFile
	config.PortFile = portFile
	config.UsernameFile = ""
	config.PasswordFile = ""
	config.NameFile = ""
	config.Name = "tenants"

	g.Expect(config.ReadFiles()).To(gomega.Succeed())
	g.Expect(config.Host).To(gomega.Equal("localhost"))
	g.Expect(config.Port).To(gomega.Equal(5432))
	g.Expect(config.Name).To(gomega.Equal("tenants"))
}

func Test_ReadFiles_InvalidPath(t *testing.T) {
	g := gomega.NewWithT(t)
	config := NewDatabaseConfig()
	config.HostFile = "/invalid/db.host"
	g.Expect(config.ReadFiles()).ToNot(gomega.Succeed())
}

func Test_ConnectionStrings(t *testing.T) {
	tests := []struct {
		name        string
		sslMode     string
		want        string
		wantLogSafe string
	}{
		{
			name:        "ssl disabled",
			sslMode:     "disable",
			want:        "host=db port=5432 user=admin password='secret' dbname=tenants sslmode=disable",
			wantLogSafe: "host=db port=5432 user=admin password='<REDACTED>' dbname=tenants sslmode=disable",
		},
		{
			name:        "ssl enabled",
			sslMode:     "verify-full",
			want:        "host=db port=5432 user=admin password='secret' dbname=tenants sslmode=verify-full sslrootcert=/certs/ca.pem",
			wantLogSafe: "host=db port=5432 user=admin password='<REDACTED>' dbname=tenants sslmode=verify-full sslrootcert=<REDACTED>",
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			c := &DatabaseConfig{
				Host:               "db",
				Port:               5432,
				Username:           "admin",
				Password:           "secret",
				Name:               "tenants",
				SSLMode:            tt.sslMode,
				DatabaseCaCertFile: "/certs/ca.pem",
			}
			g.Expect(c.ConnectionString()).To(gomega.Equal(tt.want))
			g.Expect(c.LogSafeConnectionString()).To(gomega.Equal(tt.wantLogSafe))
		})
	}
}

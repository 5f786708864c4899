package registry

import (
	goerrors "errors"
	"testing"

	"github.com/onsi/gomega"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/kafka"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/config"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

func TestRegistry_BuildsOneHandlePerCluster(t *testing.T) {
	g := gomega.NewWithT(t)
	r, cleanup := newRegistry([]config.ManagedClusterConfig{
		{Name: "local"},
		{Name: "cloud", Catalog: config.CatalogConfig{Enabled: true, URL: "https://catalog.example.com", KafkaClusterID: "lkc-1"}},
	}, nil)
	defer cleanup()

	g.Expect(r.All()).To(gomega.HaveLen(2))
	g.Expect(r.All()[0].Name()).To(gomega.Equal("local"))

	local, ok := r.Get("local")
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(local.Catalog()).To(gomega.BeNil())

	cloud, ok := r.Get("cloud")
	g.Expect(ok).To(gomega.BeTrue())
	g.Expect(cloud.Catalog()).ToNot(gomega.BeNil())

	_, ok = r.Get("unknown")
	g.Expect(ok).To(gomega.BeFalse())
}

func TestManagedCluster_Admin(t *testing.T) {
	g := gomega.NewWithT(t)
	attempts := 0
	closed := 0
	admin := &kafka.AdminClientMock{
		CloseFunc: func() error {
			closed++
			return nil
		},
	}
	r, cleanup := newRegistry([]config.ManagedClusterConfig{{Name: "local"}}, func(cluster *config.ManagedClusterConfig) (kafka.AdminClient, error) {
		attempts++
		if attempts == 1 {
			return nil, goerrors.New("connection refused")
		}
		return admin, nil
	})
	cluster := r.All()[0]

	_, err := cluster.Admin()
	g.Expect(errors.HasCode(err, errors.ErrorBroker)).To(gomega.BeTrue())

	got, err := cluster.Admin()
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(got).To(gomega.BeIdenticalTo(admin))

	got, err = cluster.Admin()
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(got).To(gomega.BeIdenticalTo(admin))
	g.Expect(attempts).To(gomega.Equal(2))

	cleanup()
	g.Expect(closed).To(gomega.Equal(1))
}

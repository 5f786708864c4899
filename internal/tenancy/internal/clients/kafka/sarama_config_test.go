package kafka

import (
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/onsi/gomega"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/config"
)

func Test_newSaramaConfig(t *testing.T) {
	cluster := func() *config.ManagedClusterConfig {
		return &config.ManagedClusterConfig{
			Name:             "local",
			KafkaVersion:     "3.4.0",
			BootstrapServers: []string{"localhost:9092"},
			Timeouts: config.TimeoutsConfig{
				Topic: config.Duration(30 * time.Second),
			},
		}
	}

	tests := []struct {
		name    string
		modify  func(c *config.ManagedClusterConfig)
		verify  func(g *gomega.WithT, sc *sarama.Config)
		wantErr bool
	}{
		{
			name:   "plain connection",
			modify: func(c *config.ManagedClusterConfig) {},
			verify: func(g *gomega.WithT, sc *sarama.Config) {
				g.Expect(sc.ClientID).To(gomega.Equal(clientID))
				g.Expect(sc.Version).To(gomega.Equal(sarama.V3_4_0_0))
				g.Expect(sc.Admin.Timeout).To(gomega.Equal(30 * time.Second))
				g.Expect(sc.Net.SASL.Enable).To(gomega.BeFalse())
				g.Expect(sc.Net.TLS.Enable).To(gomega.BeFalse())
				g.Expect(sc.Consumer.Return.Errors).To(gomega.BeTrue())
				g.Expect(sc.Consumer.Offsets.AutoCommit.Enable).To(gomega.BeFalse())
			},
		},
		{
			name: "scram sha 512",
			modify: func(c *config.ManagedClusterConfig) {
				c.SASL = config.SASLConfig{Enabled: true, Mechanism: "SCRAM-SHA-512", Username: "admin", Password: "secret"}
			},
			verify: func(g *gomega.WithT, sc *sarama.Config) {
				g.Expect(sc.Net.SASL.Enable).To(gomega.BeTrue())
				g.Expect(sc.Net.SASL.Mechanism).To(gomega.Equal(sarama.SASLMechanism(sarama.SASLTypeSCRAMSHA512)))
				g.Expect(sc.Net.SASL.User).To(gomega.Equal("admin"))
				g.Expect(sc.Net.SASL.Password).To(gomega.Equal("secret"))
				g.Expect(sc.Net.SASL.SCRAMClientGeneratorFunc).ToNot(gomega.BeNil())
				g.Expect(sc.Net.SASL.SCRAMClientGeneratorFunc()).To(gomega.BeAssignableToTypeOf(&scramClient{}))
			},
		},
		{
			name: "plain sasl",
			modify: func(c *config.ManagedClusterConfig) {
				c.SASL = config.SASLConfig{Enabled: true, Mechanism: "PLAIN", Username: "admin", Password: "secret"}
			},
			verify: func(g *gomega.WithT, sc *sarama.Config) {
				g.Expect(sc.Net.SASL.Mechanism).To(gomega.Equal(sarama.SASLMechanism(sarama.SASLTypePlaintext)))
				g.Expect(sc.Net.SASL.SCRAMClientGeneratorFunc).To(gomega.BeNil())
			},
		},
		{
			name: "tls without client certificate",
			modify: func(c *config.ManagedClusterConfig) {
				c.TLS = config.TLSConfig{Enabled: true}
			},
			verify: func(g *gomega.WithT, sc *sarama.Config) {
				g.Expect(sc.Net.TLS.Enable).To(gomega.BeTrue())
				g.Expect(sc.Net.TLS.Config.Certificates).To(gomega.BeEmpty())
			},
		},
		{
			name: "missing CA file",
			modify: func(c *config.ManagedClusterConfig) {
				c.TLS = config.TLSConfig{Enabled: true, CAFile: "does-not-exist.pem"}
			},
			wantErr: true,
		},
		{
			name: "invalid kafka version",
			modify: func(c *config.ManagedClusterConfig) {
				c.KafkaVersion = "latest"
			},
			wantErr: true,
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			c := cluster()
			tt.modify(c)
			sc, err := newSaramaConfig(c)
			g.Expect(err != nil).To(gomega.Equal(tt.wantErr))
			if !tt.wantErr {
				tt.verify(g, sc)
			}
		})
	}
}

func Test_scramClient_Begin(t *testing.T) {
	g := gomega.NewWithT(t)
	sc := sarama.NewConfig()
	setSASL(sc, sarama.SASLTypeSCRAMSHA256, "user", "password")

	client := sc.Net.SASL.SCRAMClientGeneratorFunc()
	g.Expect(client.Begin("user", "password", "")).To(gomega.Succeed())
	first, err := client.Step("")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(first).To(gomega.HavePrefix("n,,n=user,r="))
	g.Expect(client.Done()).To(gomega.BeFalse())
}

func Test_IsInternalTopic(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(IsInternalTopic(ConsumerOffsetsTopic)).To(gomega.BeTrue())
	g.Expect(IsInternalTopic("__transaction_state")).To(gomega.BeTrue())
	g.Expect(IsInternalTopic("project1_topic")).To(gomega.BeFalse())
	g.Expect(IsInternalTopic("_schemas")).To(gomega.BeFalse())
}

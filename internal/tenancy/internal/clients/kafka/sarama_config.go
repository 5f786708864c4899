package kafka

import (
	"crypto/tls"
	"crypto/x509"
	"os"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/xdg-go/scram"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/config"
)

const clientID = "kafka-tenant-manager"

func newSaramaConfig(cluster *config.ManagedClusterConfig) (*sarama.Config, error) {
	version, err := cluster.SaramaVersion()
	if err != nil {
		return nil, errors.Wrapf(err, "invalid kafka version of cluster %q", cluster.Name)
	}

	sc := sarama.NewConfig()
	sc.ClientID = clientID
	sc.Version = version
	sc.Admin.Timeout = cluster.Timeouts.Topic.Duration()
	sc.Metadata.Full = false
	// offsets are only committed explicitly, by AlterConsumerGroupOffsets, which reads the commit errors back
	sc.Consumer.Offsets.AutoCommit.Enable = false
	sc.Consumer.Return.Errors = true

	if cluster.TLS.Enabled {
		tlsConfig, err := newTLSConfig(cluster.TLS)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid tls settings of cluster %q", cluster.Name)
		}
		sc.Net.TLS.Enable = true
		sc.Net.TLS.Config = tlsConfig
	}

	if cluster.SASL.Enabled {
		setSASL(sc, sarama.SASLMechanism(cluster.SASL.Mechanism), cluster.SASL.Username, cluster.SASL.Password)
	}

	return sc, nil
}

func newTLSConfig(settings config.TLSConfig) (*tls.Config, error) {
	tlsConfig := &tls.Config{MinVersion: tls.VersionTLS12}

	if settings.CertFile != "" {
		cert, err := tls.LoadX509KeyPair(settings.CertFile, settings.KeyFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed loading x509 key pair")
		}
		tlsConfig.Certificates = []tls.Certificate{cert}
	}

	if settings.CAFile != "" {
		rootCAPEM, err := os.ReadFile(settings.CAFile)
		if err != nil {
			return nil, errors.Wrap(err, "failed loading root CA PEM file")
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(rootCAPEM) {
			return nil, errors.Errorf("no certificate found in %q", settings.CAFile)
		}
		tlsConfig.RootCAs = pool
	}

	return tlsConfig, nil
}

func setSASL(sc *sarama.Config, mechanism sarama.SASLMechanism, user string, password string) {
	sc.Net.SASL.Enable = true
	sc.Net.SASL.Handshake = true
	sc.Net.SASL.User = user
	sc.Net.SASL.Password = password

	switch mechanism {
	case sarama.SASLTypeSCRAMSHA256:
		sc.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA256
		sc.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
			return &scramClient{HashGeneratorFcn: scram.SHA256}
		}
	case sarama.SASLTypeSCRAMSHA512:
		sc.Net.SASL.Mechanism = sarama.SASLTypeSCRAMSHA512
		sc.Net.SASL.SCRAMClientGeneratorFunc = func() sarama.SCRAMClient {
			return &scramClient{HashGeneratorFcn: scram.SHA512}
		}
	default:
		sc.Net.SASL.Mechanism = sarama.SASLTypePlaintext
	}
}

// scramClient implements sarama.SCRAMClient
type scramClient struct {
	*scram.Client
	*scram.ClientConversation
	scram.HashGeneratorFcn
}

func (c *scramClient) Begin(userName, password, authzID string) error {
	client, err := c.HashGeneratorFcn.NewClient(userName, password, authzID)
	if err != nil {
		return err
	}
	c.Client = client
	c.ClientConversation = client.NewConversation()
	return nil
}

func (c *scramClient) Step(challenge string) (string, error) {
	return c.ClientConversation.Step(challenge)
}

func (c *scramClient) Done() bool {
	return c.ClientConversation.Done()
}

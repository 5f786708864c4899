package config

import (
	"fmt"
	"time"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/shared"
	"github.com/IBM/sarama"
	"github.com/pkg/errors"
	"github.com/spf13/pflag"
)

type ProviderKind string

const (
	ProviderKindSelfManaged  ProviderKind = "SELF_MANAGED"
	ProviderKindManagedCloud ProviderKind = "MANAGED_CLOUD"
)

const (
	defaultKafkaVersion   = "3.4.0"
	defaultTopicTimeout   = Duration(30 * time.Second)
	defaultAclTimeout     = Duration(30 * time.Second)
	defaultUserTimeout    = Duration(10 * time.Second)
	defaultGroupTimeout   = Duration(10 * time.Second)
	defaultConnectTimeout = Duration(15 * time.Second)
)

type ManagedClustersConfig struct {
	ConfigFile      string
	ManagedClusters []ManagedClusterConfig
}

type managedClustersFile struct {
	ManagedClusters []ManagedClusterConfig `yaml:"managed_clusters" validate:"unique=Name,dive"`
}

// ManagedClusterConfig describes one Kafka cluster under management
type ManagedClusterConfig struct {
	Name             string                 `yaml:"name" validate:"required"`
	Provider         ProviderKind           `yaml:"provider" validate:"provider_kind"`
	KafkaVersion     string                 `yaml:"kafka_version"`
	BootstrapServers []string               `yaml:"bootstrap_servers" validate:"required,min=1,dive,hostname_port"`
	SASL             SASLConfig             `yaml:"sasl"`
	TLS              TLSConfig              `yaml:"tls"`
	Features         FeaturesConfig         `yaml:"features"`
	Timeouts         TimeoutsConfig         `yaml:"timeouts"`
	ConnectClusters  []ConnectClusterConfig `yaml:"connect_clusters" validate:"dive"`
	Catalog          CatalogConfig          `yaml:"catalog"`
}

type SASLConfig struct {
	Enabled      bool   `yaml:"enabled"`
	Mechanism    string `yaml:"mechanism" validate:"required_if=Enabled true,omitempty,oneof=PLAIN SCRAM-SHA-256 SCRAM-SHA-512"`
	Username     string `yaml:"username" validate:"required_if=Enabled true"`
	PasswordFile string `yaml:"password_file"`
	Password     string `yaml:"-"`
}

type TLSConfig struct {
	Enabled  bool   `yaml:"enabled"`
	CAFile   string `yaml:"ca_file"`
	CertFile string `yaml:"cert_file" validate:"required_with=KeyFile"`
	KeyFile  string `yaml:"key_file" validate:"required_with=CertFile"`
}

type FeaturesConfig struct {
	ManageTopics     bool `yaml:"manage_topics"`
	ManageAcls       bool `yaml:"manage_acls"`
	ManageConnectors bool `yaml:"manage_connectors"`
	ManageUsers      bool `yaml:"manage_users"`
	DropUnsyncedAcls bool `yaml:"drop_unsynced_acls"`
	// Only touch broker ACLs whose principal belongs to a namespace of the cluster
	ManagedPrincipalsOnly bool `yaml:"managed_principals_only"`
}

// TimeoutsConfig bounds each class of blocking cluster operation
type TimeoutsConfig struct {
	Topic         Duration `yaml:"topic" validate:"positive_duration"`
	Acl           Duration `yaml:"acl" validate:"positive_duration"`
	User          Duration `yaml:"user" validate:"positive_duration"`
	ConsumerGroup Duration `yaml:"consumer_group" validate:"positive_duration"`
	Connect       Duration `yaml:"connect" validate:"positive_duration"`
}

type ConnectClusterConfig struct {
	Name         string `yaml:"name" validate:"required"`
	URL          string `yaml:"url" validate:"required,url"`
	Username     string `yaml:"username"`
	PasswordFile string `yaml:"password_file"`
	Password     string `yaml:"-"`
}

// CatalogConfig enables tag and description synchronisation of topics with an external metadata catalog
type CatalogConfig struct {
	Enabled        bool   `yaml:"enabled"`
	URL            string `yaml:"url" validate:"required_if=Enabled true,omitempty,url"`
	KafkaClusterID string `yaml:"kafka_cluster_id" validate:"required_if=Enabled true"`
	APIKeyFile     string `yaml:"api_key_file"`
	APISecretFile  string `yaml:"api_secret_file"`
	APIKey         string `yaml:"-"`
	APISecret      string `yaml:"-"`
}

// UnmarshalYAML applies the defaults before decoding the cluster
func (c *ManagedClusterConfig) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type rawManagedCluster ManagedClusterConfig
	raw := rawManagedCluster{
		Provider:     ProviderKindSelfManaged,
		KafkaVersion: defaultKafkaVersion,
		Features: FeaturesConfig{
			ManageTopics:          true,
			ManageAcls:            true,
			ManageConnectors:      true,
			ManageUsers:           true,
			ManagedPrincipalsOnly: true,
		},
		Timeouts: TimeoutsConfig{
			Topic:         defaultTopicTimeout,
			Acl:           defaultAclTimeout,
			User:          defaultUserTimeout,
			ConsumerGroup: defaultGroupTimeout,
			Connect:       defaultConnectTimeout,
		},
	}
	if err := unmarshal(&raw); err != nil {
		return err
	}
	*c = ManagedClusterConfig(raw)
	return nil
}

// SaramaVersion parses KafkaVersion
func (c *ManagedClusterConfig) SaramaVersion() (sarama.KafkaVersion, error) {
	return sarama.ParseKafkaVersion(c.KafkaVersion)
}

func NewManagedClustersConfig() *ManagedClustersConfig {
	return &ManagedClustersConfig{
		ConfigFile: "config/managed-clusters.yaml",
	}
}

func (c *ManagedClustersConfig) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&c.ConfigFile, "managed-clusters-config-file", c.ConfigFile, "Path to the yaml file describing the managed Kafka clusters")
}

func (c *ManagedClustersConfig) ReadFiles() error {
	var file managedClustersFile
	if err := shared.ReadYamlFile(c.ConfigFile, &file); err != nil {
		return errors.Wrapf(err, "failed to read managed clusters file %q", c.ConfigFile)
	}
	for i := range file.ManagedClusters {
		if err := file.ManagedClusters[i].readSecrets(); err != nil {
			return err
		}
	}
	c.ManagedClusters = file.ManagedClusters
	return nil
}

func (c *ManagedClusterConfig) readSecrets() error {
	secrets := []struct {
		file string
		val  *string
	}{
		{c.SASL.PasswordFile, &c.SASL.Password},
		{c.Catalog.APIKeyFile, &c.Catalog.APIKey},
		{c.Catalog.APISecretFile, &c.Catalog.APISecret},
	}
	for i := range c.ConnectClusters {
		secrets = append(secrets, struct {
			file string
			val  *string
		}{c.ConnectClusters[i].PasswordFile, &c.ConnectClusters[i].Password})
	}
	for _, s := range secrets {
		if err := shared.ReadFileValueString(s.file, s.val); err != nil {
			return errors.Wrapf(err, "failed to read secret of managed cluster %q", c.Name)
		}
	}
	return nil
}

func (c *ManagedClustersConfig) Validate() error {
	if err := validate.Struct(managedClustersFile{ManagedClusters: c.ManagedClusters}); err != nil {
		return fmt.Errorf("invalid managed clusters configuration: %v", err)
	}
	for i := range c.ManagedClusters {
		if _, err := c.ManagedClusters[i].SaramaVersion(); err != nil {
			return fmt.Errorf("invalid kafka_version of managed cluster %q: %v", c.ManagedClusters[i].Name, err)
		}
	}
	return nil
}

// GetByName returns the configuration of the named cluster
func (c *ManagedClustersConfig) GetByName(name string) (ManagedClusterConfig, bool) {
	for _, cluster := range c.ManagedClusters {
		if cluster.Name == name {
			return cluster, true
		}
	}
	return ManagedClusterConfig{}, false
}

package kafka

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/config"
)

const (
	// ConsumerOffsetsTopic exists on every cluster and is used to verify credentials
	ConsumerOffsetsTopic = "__consumer_offsets"
	internalTopicPrefix  = "__"

	// OffsetEarliest and OffsetLatest are the offset specs accepted by ListOffsets besides a timestamp in milliseconds
	OffsetEarliest = sarama.OffsetOldest
	OffsetLatest   = sarama.OffsetNewest

	scramIterations = 4096
)

// IsInternalTopic reports whether the broker owns the topic
func IsInternalTopic(name string) bool {
	return strings.HasPrefix(name, internalTopicPrefix)
}

type TopicDescription struct {
	Name              string
	Partitions        int32
	ReplicationFactor int16
}

type TopicPartition struct {
	Topic     string
	Partition int32
}

// AclBinding is one atomic broker ACL. It is comparable and can be used as a map key.
type AclBinding struct {
	ResourceType sarama.AclResourceType
	ResourceName string
	PatternType  sarama.AclResourcePatternType
	Principal    string
	Host         string
	Operation    sarama.AclOperation
	Permission   sarama.AclPermissionType
}

func (b AclBinding) String() string {
	return fmt.Sprintf("%s %s %s(%s:%s) for %s", b.Permission.String(), b.Operation.String(),
		b.ResourceType.String(), b.PatternType.String(), b.ResourceName, b.Principal)
}

// AdminClient is the handle on one managed cluster, shared by every reconciler of that cluster.
// Each call is bounded by the timeout of its operation class and errors are classified as
// Timeout, Interrupted or Broker service errors.
//
//go:generate moq -out admin_client_moq.go . AdminClient
type AdminClient interface {
	ListTopics(ctx context.Context) ([]TopicDescription, error)
	DescribeTopicConfigs(ctx context.Context, topic string) (map[string]string, error)
	AlterTopicConfigs(ctx context.Context, topic string, entries map[string]sarama.IncrementalAlterConfigsEntry) error
	CreateTopic(ctx context.Context, topic string, partitions int32, replicationFactor int16, configs map[string]string) error
	DeleteTopic(ctx context.Context, topic string) error
	DeleteRecords(ctx context.Context, topic string, offsets map[int32]int64) error
	TopicPartitions(ctx context.Context, topic string) ([]int32, error)
	ListOffsets(ctx context.Context, partitions []TopicPartition, spec int64) (map[TopicPartition]int64, error)

	ListAcls(ctx context.Context) ([]AclBinding, error)
	CreateAcl(ctx context.Context, binding AclBinding) error
	DeleteAcl(ctx context.Context, binding AclBinding) error

	DescribeUserQuotas(ctx context.Context) (map[string]map[string]float64, error)
	AlterUserQuotas(ctx context.Context, user string, quotas map[string]float64) error
	UpsertScramCredential(ctx context.Context, user string, password string) error
	// CheckCredentials connects as user and fetches the metadata of ConsumerOffsetsTopic. The error is returned unclassified.
	CheckCredentials(ctx context.Context, user string, password string) error

	ListConsumerGroupOffsets(ctx context.Context, group string) (map[TopicPartition]int64, error)
	DescribeConsumerGroupState(ctx context.Context, group string) (string, error)
	AlterConsumerGroupOffsets(ctx context.Context, group string, offsets map[TopicPartition]int64) error
	DeleteConsumerGroup(ctx context.Context, group string) error

	Close() error
}

var _ AdminClient = &adminClient{}

type adminClient struct {
	cluster  *config.ManagedClusterConfig
	client   sarama.Client
	admin    sarama.ClusterAdmin
	timeouts config.TimeoutsConfig
}

// NewAdminClient connects to the bootstrap servers of the cluster
func NewAdminClient(cluster *config.ManagedClusterConfig) (AdminClient, error) {
	sc, err := newSaramaConfig(cluster)
	if err != nil {
		return nil, err
	}
	client, err := sarama.NewClient(cluster.BootstrapServers, sc)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to connect to cluster %q", cluster.Name)
	}
	admin, err := sarama.NewClusterAdminFromClient(client)
	if err != nil {
		_ = client.Close()
		return nil, errors.Wrapf(err, "failed to create admin client of cluster %q", cluster.Name)
	}
	return &adminClient{
		cluster:  cluster,
		client:   client,
		admin:    admin,
		timeouts: cluster.Timeouts,
	}, nil
}

func (c *adminClient) ListTopics(ctx context.Context) ([]TopicDescription, error) {
	details, err := call(ctx, c.timeouts.Topic.Duration(), c.admin.ListTopics)
	if err != nil {
		return nil, classify(err, "failed to list topics of cluster %q", c.cluster.Name)
	}
	topics := make([]TopicDescription, 0, len(details))
	for name, detail := range details {
		if IsInternalTopic(name) {
			continue
		}
		topics = append(topics, TopicDescription{
			Name:              name,
			Partitions:        detail.NumPartitions,
			ReplicationFactor: detail.ReplicationFactor,
		})
	}
	sort.Slice(topics, func(i, j int) bool {
		return topics[i].Name < topics[j].Name
	})
	return topics, nil
}

// DescribeTopicConfigs returns the configs set directly on the topic, cluster defaults excluded
func (c *adminClient) DescribeTopicConfigs(ctx context.Context, topic string) (map[string]string, error) {
	entries, err := call(ctx, c.timeouts.Topic.Duration(), func() ([]sarama.ConfigEntry, error) {
		return c.admin.DescribeConfig(sarama.ConfigResource{Type: sarama.TopicResource, Name: topic})
	})
	if err != nil {
		return nil, classify(err, "failed to describe configs of topic %q", topic)
	}
	configs := map[string]string{}
	for _, entry := range entries {
		if entry.Source == sarama.SourceTopic {
			configs[entry.Name] = entry.Value
		}
	}
	return configs, nil
}

func (c *adminClient) AlterTopicConfigs(ctx context.Context, topic string, entries map[string]sarama.IncrementalAlterConfigsEntry) error {
	err := run(ctx, c.timeouts.Topic.Duration(), func() error {
		return c.admin.IncrementalAlterConfig(sarama.TopicResource, topic, entries, false)
	})
	return classify(err, "failed to alter configs of topic %q", topic)
}

func (c *adminClient) CreateTopic(ctx context.Context, topic string, partitions int32, replicationFactor int16, configs map[string]string) error {
	entries := make(map[string]*string, len(configs))
	for k := range configs {
		v := configs[k]
		entries[k] = &v
	}
	err := run(ctx, c.timeouts.Topic.Duration(), func() error {
		return c.admin.CreateTopic(topic, &sarama.TopicDetail{
			NumPartitions:     partitions,
			ReplicationFactor: replicationFactor,
			ConfigEntries:     entries,
		}, false)
	})
	return classify(err, "failed to create topic %q", topic)
}

func (c *adminClient) DeleteTopic(ctx context.Context, topic string) error {
	err := run(ctx, c.timeouts.Topic.Duration(), func() error {
		return c.admin.DeleteTopic(topic)
	})
	return classify(err, "failed to delete topic %q", topic)
}

// DeleteRecords removes the records of each partition before the given offset
func (c *adminClient) DeleteRecords(ctx context.Context, topic string, offsets map[int32]int64) error {
	err := run(ctx, c.timeouts.Topic.Duration(), func() error {
		return c.admin.DeleteRecords(topic, offsets)
	})
	return classify(err, "failed to delete records of topic %q", topic)
}

func (c *adminClient) TopicPartitions(ctx context.Context, topic string) ([]int32, error) {
	partitions, err := call(ctx, c.timeouts.ConsumerGroup.Duration(), func() ([]int32, error) {
		return c.client.Partitions(topic)
	})
	if err != nil {
		return nil, classify(err, "failed to list partitions of topic %q", topic)
	}
	return partitions, nil
}

// ListOffsets looks up the offset of each partition for spec, which is OffsetEarliest, OffsetLatest
// or a timestamp in milliseconds. A timestamp past the last record yields -1.
func (c *adminClient) ListOffsets(ctx context.Context, partitions []TopicPartition, spec int64) (map[TopicPartition]int64, error) {
	offsets, err := call(ctx, c.timeouts.ConsumerGroup.Duration(), func() (map[TopicPartition]int64, error) {
		result := make(map[TopicPartition]int64, len(partitions))
		for _, tp := range partitions {
			offset, err := c.client.GetOffset(tp.Topic, tp.Partition, spec)
			if err != nil {
				return nil, err
			}
			result[tp] = offset
		}
		return result, nil
	})
	if err != nil {
		return nil, classify(err, "failed to list offsets")
	}
	return offsets, nil
}

var aclResourceTypes = []sarama.AclResourceType{
	sarama.AclResourceTopic,
	sarama.AclResourceGroup,
	sarama.AclResourceTransactionalID,
}

// ListAcls returns the bindings of topics, groups and transactional ids
func (c *adminClient) ListAcls(ctx context.Context) ([]AclBinding, error) {
	bindings, err := call(ctx, c.timeouts.Acl.Duration(), func() ([]AclBinding, error) {
		var result []AclBinding
		for _, resourceType := range aclResourceTypes {
			resourceAcls, err := c.admin.ListAcls(sarama.AclFilter{
				ResourceType:              resourceType,
				ResourcePatternTypeFilter: sarama.AclPatternAny,
				Operation:                 sarama.AclOperationAny,
				PermissionType:            sarama.AclPermissionAny,
			})
			if err != nil {
				return nil, err
			}
			for _, ra := range resourceAcls {
				for _, acl := range ra.Acls {
					result = append(result, AclBinding{
						ResourceType: ra.ResourceType,
						ResourceName: ra.ResourceName,
						PatternType:  ra.ResourcePatternType,
						Principal:    acl.Principal,
						Host:         acl.Host,
						Operation:    acl.Operation,
						Permission:   acl.PermissionType,
					})
				}
			}
		}
		return result, nil
	})
	if err != nil {
		return nil, classify(err, "failed to list acls of cluster %q", c.cluster.Name)
	}
	return bindings, nil
}

func (c *adminClient) CreateAcl(ctx context.Context, binding AclBinding) error {
	err := run(ctx, c.timeouts.Acl.Duration(), func() error {
		return c.admin.CreateACL(sarama.Resource{
			ResourceType:        binding.ResourceType,
			ResourceName:        binding.ResourceName,
			ResourcePatternType: binding.PatternType,
		}, sarama.Acl{
			Principal:      binding.Principal,
			Host:           binding.Host,
			Operation:      binding.Operation,
			PermissionType: binding.Permission,
		})
	})
	return classify(err, "failed to create acl %s", binding)
}

func (c *adminClient) DeleteAcl(ctx context.Context, binding AclBinding) error {
	err := run(ctx, c.timeouts.Acl.Duration(), func() error {
		_, err := c.admin.DeleteACL(sarama.AclFilter{
			ResourceType:              binding.ResourceType,
			ResourceName:              &binding.ResourceName,
			ResourcePatternTypeFilter: binding.PatternType,
			Principal:                 &binding.Principal,
			Host:                      &binding.Host,
			Operation:                 binding.Operation,
			PermissionType:            binding.Permission,
		}, false)
		return err
	})
	return classify(err, "failed to delete acl %s", binding)
}

// DescribeUserQuotas returns the quotas of every user entity, keyed by user name
func (c *adminClient) DescribeUserQuotas(ctx context.Context) (map[string]map[string]float64, error) {
	entries, err := call(ctx, c.timeouts.User.Duration(), func() ([]sarama.DescribeClientQuotasEntry, error) {
		return c.admin.DescribeClientQuotas([]sarama.QuotaFilterComponent{{
			EntityType: sarama.QuotaEntityUser,
			MatchType:  sarama.QuotaMatchAny,
		}}, false)
	})
	if err != nil {
		return nil, classify(err, "failed to describe quotas of cluster %q", c.cluster.Name)
	}
	return userQuotas(entries), nil
}

// userQuotas keys quota values by user name. The default user entity has no name and is skipped.
func userQuotas(entries []sarama.DescribeClientQuotasEntry) map[string]map[string]float64 {
	quotas := map[string]map[string]float64{}
	for _, entry := range entries {
		for _, component := range entry.Entity {
			if component.EntityType == sarama.QuotaEntityUser && component.Name != "" {
				quotas[component.Name] = entry.Values
			}
		}
	}
	return quotas
}

func (c *adminClient) AlterUserQuotas(ctx context.Context, user string, quotas map[string]float64) error {
	keys := make([]string, 0, len(quotas))
	for k := range quotas {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	entity := []sarama.QuotaEntityComponent{{
		EntityType: sarama.QuotaEntityUser,
		MatchType:  sarama.QuotaMatchExact,
		Name:       user,
	}}
	err := run(ctx, c.timeouts.User.Duration(), func() error {
		for _, k := range keys {
			op := sarama.ClientQuotasOp{Key: k, Value: quotas[k]}
			if err := c.admin.AlterClientQuotas(entity, op, false); err != nil {
				return err
			}
		}
		return nil
	})
	return classify(err, "failed to alter quotas of user %q", user)
}

// UpsertScramCredential stores a SCRAM-SHA-512 credential for user
func (c *adminClient) UpsertScramCredential(ctx context.Context, user string, password string) error {
	err := run(ctx, c.timeouts.User.Duration(), func() error {
		results, err := c.admin.UpsertUserScramCredentials([]sarama.AlterUserScramCredentialsUpsert{{
			Name:       user,
			Mechanism:  sarama.SCRAM_MECHANISM_SHA_512,
			Iterations: scramIterations,
			Password:   []byte(password),
		}})
		if err != nil {
			return err
		}
		for _, result := range results {
			if result.ErrorCode != sarama.ErrNoError {
				return result.ErrorCode
			}
		}
		return nil
	})
	return classify(err, "failed to upsert credential of user %q", user)
}

func (c *adminClient) CheckCredentials(ctx context.Context, user string, password string) error {
	return run(ctx, c.timeouts.User.Duration(), func() error {
		sc, err := newSaramaConfig(c.cluster)
		if err != nil {
			return err
		}
		setSASL(sc, sarama.SASLTypeSCRAMSHA512, user, password)
		sc.Metadata.Retry.Max = 0

		userClient, err := sarama.NewClient(c.cluster.BootstrapServers, sc)
		if err != nil {
			return err
		}
		defer func() { _ = userClient.Close() }()
		return userClient.RefreshMetadata(ConsumerOffsetsTopic)
	})
}

// ListConsumerGroupOffsets returns the committed offsets of the group. Partitions without a commit are omitted.
func (c *adminClient) ListConsumerGroupOffsets(ctx context.Context, group string) (map[TopicPartition]int64, error) {
	response, err := call(ctx, c.timeouts.ConsumerGroup.Duration(), func() (*sarama.OffsetFetchResponse, error) {
		return c.admin.ListConsumerGroupOffsets(group, nil)
	})
	if err != nil {
		return nil, classify(err, "failed to list offsets of group %q", group)
	}
	if response.Err != sarama.ErrNoError {
		return nil, classify(response.Err, "failed to list offsets of group %q", group)
	}
	offsets := map[TopicPartition]int64{}
	for topic, partitions := range response.Blocks {
		for partition, block := range partitions {
			if block.Err != sarama.ErrNoError {
				return nil, classify(block.Err, "failed to list offsets of group %q", group)
			}
			if block.Offset < 0 {
				continue
			}
			offsets[TopicPartition{Topic: topic, Partition: partition}] = block.Offset
		}
	}
	return offsets, nil
}

func (c *adminClient) DescribeConsumerGroupState(ctx context.Context, group string) (string, error) {
	groups, err := call(ctx, c.timeouts.ConsumerGroup.Duration(), func() ([]*sarama.GroupDescription, error) {
		return c.admin.DescribeConsumerGroups([]string{group})
	})
	if err != nil {
		return "", classify(err, "failed to describe group %q", group)
	}
	if len(groups) == 0 {
		return "", classify(sarama.ErrGroupIDNotFound, "failed to describe group %q", group)
	}
	if groups[0].Err != sarama.ErrNoError {
		return "", classify(groups[0].Err, "failed to describe group %q", group)
	}
	return groups[0].State, nil
}

// AlterConsumerGroupOffsets commits the given offsets on behalf of the group, which should have no active member
func (c *adminClient) AlterConsumerGroupOffsets(ctx context.Context, group string, offsets map[TopicPartition]int64) error {
	err := run(ctx, c.timeouts.ConsumerGroup.Duration(), func() error {
		manager, err := sarama.NewOffsetManagerFromClient(group, c.client)
		if err != nil {
			return err
		}

		poms := make([]sarama.PartitionOffsetManager, 0, len(offsets))
		for tp, offset := range offsets {
			pom, err := manager.ManagePartition(tp.Topic, tp.Partition)
			if err != nil {
				_ = manager.Close()
				return err
			}
			// ResetOffset only moves backwards, MarkOffset only forwards
			pom.ResetOffset(offset, "")
			pom.MarkOffset(offset, "")
			pom.AsyncClose()
			poms = append(poms, pom)
		}
		manager.Commit()
		if err := manager.Close(); err != nil {
			return err
		}
		return firstCommitError(poms)
	})
	return classify(err, "failed to alter offsets of group %q", group)
}

// firstCommitError drains the error channels of closed partition offset managers.
// Commit failures only reach them when Consumer.Return.Errors is set.
func firstCommitError(poms []sarama.PartitionOffsetManager) error {
	var first error
	for _, pom := range poms {
		for cErr := range pom.Errors() {
			if first == nil {
				first = cErr
			}
		}
	}
	return first
}

func (c *adminClient) DeleteConsumerGroup(ctx context.Context, group string) error {
	err := run(ctx, c.timeouts.ConsumerGroup.Duration(), func() error {
		return c.admin.DeleteConsumerGroup(group)
	})
	return classify(err, "failed to delete group %q", group)
}

// Close releases the admin handle and its client
func (c *adminClient) Close() error {
	return c.admin.Close()
}

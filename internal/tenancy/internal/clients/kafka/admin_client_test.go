package kafka

import (
	"context"
	"testing"
	"time"

	"github.com/IBM/sarama"
	"github.com/onsi/gomega"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/config"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

func Test_userQuotas(t *testing.T) {
	g := gomega.NewWithT(t)
	entries := []sarama.DescribeClientQuotasEntry{
		{
			Entity: []sarama.QuotaEntityComponent{{EntityType: sarama.QuotaEntityUser, MatchType: sarama.QuotaMatchExact, Name: "project1-user"}},
			Values: map[string]float64{"producer_byte_rate": 2048, "consumer_byte_rate": 4096},
		},
		{
			Entity: []sarama.QuotaEntityComponent{
				{EntityType: sarama.QuotaEntityUser, MatchType: sarama.QuotaMatchExact, Name: "project2-user"},
				{EntityType: sarama.QuotaEntityClientID, MatchType: sarama.QuotaMatchExact, Name: "producer-1"},
			},
			Values: map[string]float64{"producer_byte_rate": 1024},
		},
		{
			Entity: []sarama.QuotaEntityComponent{{EntityType: sarama.QuotaEntityUser, MatchType: sarama.QuotaMatchDefault}},
			Values: map[string]float64{"producer_byte_rate": 100},
		},
		{
			Entity: []sarama.QuotaEntityComponent{{EntityType: sarama.QuotaEntityClientID, MatchType: sarama.QuotaMatchExact, Name: "producer-2"}},
			Values: map[string]float64{"producer_byte_rate": 10},
		},
	}

	g.Expect(userQuotas(entries)).To(gomega.Equal(map[string]map[string]float64{
		"project1-user": {"producer_byte_rate": 2048, "consumer_byte_rate": 4096},
		"project2-user": {"producer_byte_rate": 1024},
	}))
	g.Expect(userQuotas(nil)).To(gomega.BeEmpty())
}

const (
	testGroup = "project1-consumers"
	testTopic = "project1.orders"
)

// newMockedAdminClient talks to a single sarama mock broker acting as controller and group coordinator
func newMockedAdminClient(t *testing.T, commitErr sarama.KError) (*adminClient, *sarama.MockBroker) {
	broker := sarama.NewMockBroker(t, 1)
	broker.SetHandlerByMap(map[string]sarama.MockResponse{
		"MetadataRequest": sarama.NewMockMetadataResponse(t).
			SetBroker(broker.Addr(), broker.BrokerID()).
			SetController(broker.BrokerID()).
			SetLeader(testTopic, 0, broker.BrokerID()),
		"FindCoordinatorRequest": sarama.NewMockFindCoordinatorResponse(t).
			SetCoordinator(sarama.CoordinatorGroup, testGroup, broker),
		"OffsetFetchRequest": sarama.NewMockOffsetFetchResponse(t).
			SetOffset(testGroup, testTopic, 0, 50, "", sarama.ErrNoError),
		"OffsetCommitRequest": sarama.NewMockOffsetCommitResponse(t).
			SetError(testGroup, testTopic, 0, commitErr),
	})

	cluster := &config.ManagedClusterConfig{
		Name:             "local",
		KafkaVersion:     "2.1.0",
		BootstrapServers: []string{broker.Addr()},
		Timeouts:         config.TimeoutsConfig{ConsumerGroup: config.Duration(10 * time.Second)},
	}
	sc, err := newSaramaConfig(cluster)
	if err != nil {
		t.Fatal(err)
	}
	sc.Metadata.Retry.Max = 0
	client, err := sarama.NewClient(cluster.BootstrapServers, sc)
	if err != nil {
		t.Fatal(err)
	}
	admin, err := sarama.NewClusterAdminFromClient(client)
	if err != nil {
		t.Fatal(err)
	}
	return &adminClient{cluster: cluster, client: client, admin: admin, timeouts: cluster.Timeouts}, broker
}

func TestAdminClient_AlterConsumerGroupOffsets(t *testing.T) {
	tests := []struct {
		name      string
		commitErr sarama.KError
		wantErr   bool
	}{
		{
			name:      "commit accepted by the coordinator",
			commitErr: sarama.ErrNoError,
		},
		{
			name:      "commit rejected while the group rebalances",
			commitErr: sarama.ErrRebalanceInProgress,
			wantErr:   true,
		},
		{
			name:      "commit rejected by authorization",
			commitErr: sarama.ErrGroupAuthorizationFailed,
			wantErr:   true,
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			c, broker := newMockedAdminClient(t, tt.commitErr)
			defer broker.Close()
			defer func() { _ = c.Close() }()

			err := c.AlterConsumerGroupOffsets(context.Background(), testGroup, map[TopicPartition]int64{
				{Topic: testTopic, Partition: 0}: 10,
			})
			if !tt.wantErr {
				g.Expect(err).ToNot(gomega.HaveOccurred())
				return
			}
			g.Expect(err).To(gomega.HaveOccurred())
			g.Expect(errors.HasCode(err, errors.ErrorBroker)).To(gomega.BeTrue())
			g.Expect(err.Error()).To(gomega.ContainSubstring(tt.commitErr.Error()))
		})
	}
}

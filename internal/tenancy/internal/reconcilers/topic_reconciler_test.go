package reconcilers

import (
	"context"
	"testing"

	"github.com/IBM/sarama"
	"github.com/onsi/gomega"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/catalog"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/kafka"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/config"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/services"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

func strPtr(s string) *string {
	return &s
}

func Test_diffTopicConfigs(t *testing.T) {
	tests := []struct {
		name     string
		desired  map[string]string
		observed map[string]string
		want     map[string]sarama.IncrementalAlterConfigsEntry
	}{
		{
			name:     "converged configs produce no entry",
			desired:  map[string]string{"retention.ms": "1000", "cleanup.policy": "compact"},
			observed: map[string]string{"cleanup.policy": "compact", "retention.ms": "1000"},
			want:     map[string]sarama.IncrementalAlterConfigsEntry{},
		},
		{
			name:     "new and changed keys are set",
			desired:  map[string]string{"retention.ms": "2000", "min.insync.replicas": "2"},
			observed: map[string]string{"retention.ms": "1000"},
			want: map[string]sarama.IncrementalAlterConfigsEntry{
				"retention.ms":        {Operation: sarama.IncrementalAlterConfigsOperationSet, Value: strPtr("2000")},
				"min.insync.replicas": {Operation: sarama.IncrementalAlterConfigsOperationSet, Value: strPtr("2")},
			},
		},
		{
			name:     "keys only set on the broker are deleted",
			desired:  map[string]string{},
			observed: map[string]string{"segment.bytes": "1024"},
			want: map[string]sarama.IncrementalAlterConfigsEntry{
				"segment.bytes": {Operation: sarama.IncrementalAlterConfigsOperationDelete},
			},
		},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			g.Expect(diffTopicConfigs(tt.desired, tt.observed)).To(gomega.Equal(tt.want))
		})
	}
}

func Test_isStreamingInternalTopic(t *testing.T) {
	g := gomega.NewWithT(t)
	g.Expect(isStreamingInternalTopic("project1-app-store-changelog")).To(gomega.BeTrue())
	g.Expect(isStreamingInternalTopic("project1-app-KSTREAM-repartition")).To(gomega.BeTrue())
	g.Expect(isStreamingInternalTopic("project1.orders")).To(gomega.BeFalse())
}

type topicFixture struct {
	admin   *kafka.AdminClientMock
	topics  *services.TopicServiceMock
	updates []dbapi.Topic
	events  []string
}

func newTopicFixture(desired dbapi.TopicList, broker map[string]map[string]string) *topicFixture {
	f := &topicFixture{}
	f.admin = &kafka.AdminClientMock{
		ListTopicsFunc: func(ctx context.Context) ([]kafka.TopicDescription, error) {
			var topics []kafka.TopicDescription
			for name := range broker {
				topics = append(topics, kafka.TopicDescription{Name: name, Partitions: 3, ReplicationFactor: 1})
			}
			return topics, nil
		},
		DescribeTopicConfigsFunc: func(ctx context.Context, topic string) (map[string]string, error) {
			return broker[topic], nil
		},
		CreateTopicFunc: func(ctx context.Context, topic string, partitions int32, replicationFactor int16, configs map[string]string) error {
			f.events = append(f.events, "create "+topic)
			return nil
		},
		AlterTopicConfigsFunc: func(ctx context.Context, topic string, entries map[string]sarama.IncrementalAlterConfigsEntry) error {
			f.events = append(f.events, "alter "+topic)
			return nil
		},
		DeleteTopicFunc: func(ctx context.Context, topic string) error {
			return nil
		},
	}
	f.topics = &services.TopicServiceMock{
		FindAllForClusterFunc: func(ctx context.Context, cluster string) (dbapi.TopicList, *errors.ServiceError) {
			return desired, nil
		},
		CreateFunc: func(ctx context.Context, topic *dbapi.Topic) *errors.ServiceError {
			f.events = append(f.events, "import "+topic.Name)
			return nil
		},
		UpdateFunc: func(ctx context.Context, topic *dbapi.Topic) *errors.ServiceError {
			f.updates = append(f.updates, *topic)
			return nil
		},
		DeleteFunc: func(ctx context.Context, topic *dbapi.Topic) *errors.ServiceError {
			return nil
		},
	}
	return f
}

func desiredTopic(name string, configs map[string]string, status dbapi.ResourceStatus, generation int64) *dbapi.Topic {
	return &dbapi.Topic{
		Name:              name,
		Cluster:           testCluster,
		Namespace:         "project1",
		Partitions:        3,
		ReplicationFactor: 1,
		Configs:           configs,
		Status:            status,
		Generation:        generation,
	}
}

func TestTopicReconciler_Reconcile_ConvergedIsIdempotent(t *testing.T) {
	g := gomega.NewWithT(t)
	desired := dbapi.TopicList{
		desiredTopic("project1.orders", map[string]string{"retention.ms": "1000"}, dbapi.SuccessStatus(createdTopicMessage), 1),
	}
	f := newTopicFixture(desired, map[string]map[string]string{
		"project1.orders": {"retention.ms": "1000"},
	})
	aces := acesService(ownerAce("project1", dbapi.ResourceTypeTopic, dbapi.PatternTypePrefixed, "project1"))
	r := NewTopicReconciler(newTestCluster(allFeatures, f.admin, nil), f.topics, aces)

	plan, errs := r.plan(context.Background(), f.admin, desired, []kafka.TopicDescription{{Name: "project1.orders"}}, nil)
	g.Expect(errs).To(gomega.BeEmpty())
	g.Expect(plan.toImport).To(gomega.BeEmpty())
	g.Expect(plan.toCreate).To(gomega.BeEmpty())
	g.Expect(plan.toUpdate).To(gomega.BeEmpty())

	g.Expect(r.Reconcile(context.Background())).To(gomega.BeEmpty())
	g.Expect(f.events).To(gomega.BeEmpty())
	g.Expect(f.updates).To(gomega.BeEmpty())
}

func TestTopicReconciler_Reconcile(t *testing.T) {
	g := gomega.NewWithT(t)
	desired := dbapi.TopicList{
		desiredTopic("project1.new", nil, dbapi.PendingStatus(), 0),
		desiredTopic("project1.drift", map[string]string{"retention.ms": "2000"}, dbapi.SuccessStatus(createdTopicMessage), 1),
	}
	f := newTopicFixture(desired, map[string]map[string]string{
		"project1.drift":                 {"retention.ms": "1000"},
		"project1-app-store-changelog":   {"cleanup.policy": "compact"},
		"external-app-store-changelog":   {},
		"project1.created-out-of-band-x": {},
	})
	aces := acesService(ownerAce("project1", dbapi.ResourceTypeTopic, dbapi.PatternTypePrefixed, "project1"))
	r := NewTopicReconciler(newTestCluster(allFeatures, f.admin, nil), f.topics, aces)

	g.Expect(r.Reconcile(context.Background())).To(gomega.BeEmpty())
	g.Expect(f.events).To(gomega.Equal([]string{
		"import project1-app-store-changelog",
		"create project1.new",
		"alter project1.drift",
	}))

	imported := f.topics.CreateCalls()[0].Topic
	g.Expect(imported.Namespace).To(gomega.Equal("project1"))
	g.Expect(imported.Status).To(gomega.Equal(dbapi.SuccessStatus("Imported from cluster")))
	g.Expect(imported.Generation).To(gomega.Equal(int64(1)))
	g.Expect(map[string]string(imported.Configs)).To(gomega.Equal(map[string]string{"cleanup.policy": "compact"}))

	g.Expect(f.updates).To(gomega.HaveLen(2))
	g.Expect(f.updates[0].Name).To(gomega.Equal("project1.new"))
	g.Expect(f.updates[0].Status.Phase).To(gomega.Equal(dbapi.StatusPhaseSuccess))
	g.Expect(f.updates[0].Generation).To(gomega.Equal(int64(1)))
	g.Expect(f.updates[1].Name).To(gomega.Equal("project1.drift"))
	g.Expect(f.updates[1].Generation).To(gomega.Equal(int64(2)))

	alter := f.admin.AlterTopicConfigsCalls()[0]
	g.Expect(*alter.Entries["retention.ms"].Value).To(gomega.Equal("2000"))
}

func TestTopicReconciler_Reconcile_FailuresDoNotBlockSiblings(t *testing.T) {
	g := gomega.NewWithT(t)
	desired := dbapi.TopicList{
		desiredTopic("project1.broken", nil, dbapi.PendingStatus(), 0),
		desiredTopic("project1.fine", nil, dbapi.PendingStatus(), 0),
	}
	f := newTopicFixture(desired, map[string]map[string]string{})
	f.admin.CreateTopicFunc = func(ctx context.Context, topic string, partitions int32, replicationFactor int16, configs map[string]string) error {
		if topic == "project1.broken" {
			return errors.Broker("replication factor larger than available brokers")
		}
		return nil
	}
	r := NewTopicReconciler(newTestCluster(allFeatures, f.admin, nil), f.topics, acesService())

	errs := r.Reconcile(context.Background())
	g.Expect(errs).To(gomega.HaveLen(1))
	g.Expect(errors.HasCode(errs[0], errors.ErrorBroker)).To(gomega.BeTrue())
	g.Expect(f.admin.CreateTopicCalls()).To(gomega.HaveLen(2))

	g.Expect(f.updates).To(gomega.HaveLen(2))
	g.Expect(f.updates[0].Status.Phase).To(gomega.Equal(dbapi.StatusPhaseFailed))
	g.Expect(f.updates[0].Status.Message).To(gomega.ContainSubstring("replication factor larger than available brokers"))
	g.Expect(f.updates[0].Generation).To(gomega.Equal(int64(0)))
	g.Expect(f.updates[1].Status.Phase).To(gomega.Equal(dbapi.StatusPhaseSuccess))
}

func TestTopicReconciler_Reconcile_DescribeFailureMarksTopicFailed(t *testing.T) {
	g := gomega.NewWithT(t)
	desired := dbapi.TopicList{
		desiredTopic("project1.drift", map[string]string{"retention.ms": "2000"}, dbapi.SuccessStatus(createdTopicMessage), 1),
		desiredTopic("project1.paused", nil, dbapi.SuccessStatus(createdTopicMessage), 1),
	}
	f := newTopicFixture(desired, map[string]map[string]string{
		"project1.drift":  {"retention.ms": "1000"},
		"project1.paused": {},
	})
	f.admin.DescribeTopicConfigsFunc = func(ctx context.Context, topic string) (map[string]string, error) {
		if topic == "project1.paused" {
			return nil, errors.Interrupted("describing configs of %s interrupted", topic)
		}
		return nil, errors.Timeout("timeout describing configs of %s", topic)
	}
	r := NewTopicReconciler(newTestCluster(allFeatures, f.admin, nil), f.topics, acesService())

	errs := r.Reconcile(context.Background())
	g.Expect(errs).To(gomega.HaveLen(2))
	g.Expect(f.admin.AlterTopicConfigsCalls()).To(gomega.BeEmpty())

	g.Expect(f.updates).To(gomega.HaveLen(1))
	g.Expect(f.updates[0].Name).To(gomega.Equal("project1.drift"))
	g.Expect(f.updates[0].Status.Phase).To(gomega.Equal(dbapi.StatusPhaseFailed))
	g.Expect(f.updates[0].Status.Message).To(gomega.ContainSubstring("timeout describing configs of project1.drift"))
	g.Expect(f.updates[0].Generation).To(gomega.Equal(int64(1)))
}

func TestTopicReconciler_Reconcile_CollidingName(t *testing.T) {
	g := gomega.NewWithT(t)
	desired := dbapi.TopicList{desiredTopic("project1.topic", nil, dbapi.PendingStatus(), 0)}
	f := newTopicFixture(desired, map[string]map[string]string{"project1_topic": {}})
	r := NewTopicReconciler(newTestCluster(allFeatures, f.admin, nil), f.topics, acesService())

	errs := r.Reconcile(context.Background())
	g.Expect(errs).To(gomega.HaveLen(1))
	g.Expect(errors.HasCode(errs[0], errors.ErrorConflict)).To(gomega.BeTrue())
	g.Expect(f.admin.CreateTopicCalls()).To(gomega.BeEmpty())
	g.Expect(f.updates[0].Status.Phase).To(gomega.Equal(dbapi.StatusPhaseFailed))
}

func TestTopicReconciler_Reconcile_MarksOutOfBandConvergenceInSync(t *testing.T) {
	g := gomega.NewWithT(t)
	desired := dbapi.TopicList{desiredTopic("project1.orders", nil, dbapi.FailedStatus("timeout"), 1)}
	f := newTopicFixture(desired, map[string]map[string]string{"project1.orders": {}})
	r := NewTopicReconciler(newTestCluster(allFeatures, f.admin, nil), f.topics, acesService())

	g.Expect(r.Reconcile(context.Background())).To(gomega.BeEmpty())
	g.Expect(f.updates).To(gomega.HaveLen(1))
	g.Expect(f.updates[0].Status).To(gomega.Equal(dbapi.SuccessStatus(syncedTopicMessage)))
	g.Expect(f.updates[0].Generation).To(gomega.Equal(int64(1)))
}

func TestTopicReconciler_Reconcile_Disabled(t *testing.T) {
	g := gomega.NewWithT(t)
	f := newTopicFixture(nil, nil)
	r := NewTopicReconciler(newTestCluster(config.FeaturesConfig{}, f.admin, nil), f.topics, acesService())

	g.Expect(r.Reconcile(context.Background())).To(gomega.BeEmpty())
	g.Expect(f.admin.ListTopicsCalls()).To(gomega.BeEmpty())
}

func TestTopicReconciler_Reconcile_CatalogSync(t *testing.T) {
	g := gomega.NewWithT(t)
	orders := desiredTopic("project1.orders", nil, dbapi.SuccessStatus(createdTopicMessage), 1)
	orders.Tags = []string{"PII", "GDPR"}
	orders.Description = "orders of project1"
	unchanged := desiredTopic("project1.audit", nil, dbapi.SuccessStatus(createdTopicMessage), 1)
	unchanged.Tags = []string{"AUDIT"}
	desired := dbapi.TopicList{orders, unchanged}

	f := newTopicFixture(desired, map[string]map[string]string{"project1.orders": {}, "project1.audit": {}})
	catalogClient := &catalog.ClientMock{
		ListTopicsFunc: func(ctx context.Context) ([]catalog.TopicMetadata, error) {
			return []catalog.TopicMetadata{
				{Name: "project1.orders", Tags: []string{"PII", "OBSOLETE"}},
				{Name: "project1.audit", Tags: []string{"AUDIT"}},
			}, nil
		},
		ListTagDefsFunc: func(ctx context.Context) ([]string, error) {
			return []string{"PII", "OBSOLETE", "AUDIT"}, nil
		},
		CreateTagDefsFunc: func(ctx context.Context, tags []string) error {
			return nil
		},
		TagTopicFunc: func(ctx context.Context, topic string, tags []string) error {
			return nil
		},
		UntagTopicFunc: func(ctx context.Context, topic string, tag string) error {
			return nil
		},
		SetTopicDescriptionFunc: func(ctx context.Context, topic string, description string) error {
			return nil
		},
	}
	r := NewTopicReconciler(newTestCluster(allFeatures, f.admin, catalogClient), f.topics, acesService())

	g.Expect(r.Reconcile(context.Background())).To(gomega.BeEmpty())
	g.Expect(catalogClient.CreateTagDefsCalls()).To(gomega.HaveLen(1))
	g.Expect(catalogClient.CreateTagDefsCalls()[0].Tags).To(gomega.Equal([]string{"GDPR"}))
	g.Expect(catalogClient.TagTopicCalls()[0].Tags).To(gomega.Equal([]string{"GDPR"}))
	g.Expect(catalogClient.UntagTopicCalls()[0].Tag).To(gomega.Equal("OBSOLETE"))
	g.Expect(catalogClient.SetTopicDescriptionCalls()).To(gomega.HaveLen(1))
	g.Expect(catalogClient.SetTopicDescriptionCalls()[0].Topic).To(gomega.Equal("project1.orders"))

	g.Expect(f.updates).To(gomega.HaveLen(1))
	g.Expect(f.updates[0].Name).To(gomega.Equal("project1.orders"))
	g.Expect(f.updates[0].Generation).To(gomega.Equal(int64(2)))
}

func TestTopicReconciler_ListUnsynchronizedTopics(t *testing.T) {
	g := gomega.NewWithT(t)
	desired := dbapi.TopicList{desiredTopic("project1.orders", nil, dbapi.SuccessStatus(createdTopicMessage), 1)}
	f := newTopicFixture(desired, map[string]map[string]string{
		"project1.orders":  {},
		"project1.manual":  {"retention.ms": "5"},
		"project2.foreign": {},
	})
	aces := acesService(
		ownerAce("project1", dbapi.ResourceTypeTopic, dbapi.PatternTypePrefixed, "project1"),
		ownerAce("project2", dbapi.ResourceTypeTopic, dbapi.PatternTypePrefixed, "project2"),
	)
	r := NewTopicReconciler(newTestCluster(allFeatures, f.admin, nil), f.topics, aces)

	topics, err := r.ListUnsynchronizedTopics(context.Background(), "project1")
	g.Expect(err).ToNot(gomega.HaveOccurred())
	g.Expect(topics).To(gomega.HaveLen(1))
	g.Expect(topics[0].Name).To(gomega.Equal("project1.manual"))
	g.Expect(map[string]string(topics[0].Configs)).To(gomega.Equal(map[string]string{"retention.ms": "5"}))
}

func TestTopicReconciler_ValidateNewTopic(t *testing.T) {
	tests := []struct {
		name      string
		namespace string
		topic     string
		wantCodes []errors.ServiceErrorCode
	}{
		{name: "owned and free", namespace: "project1", topic: "project1.payments"},
		{name: "not owned", namespace: "project2", topic: "project1.payments", wantCodes: []errors.ServiceErrorCode{errors.ErrorForbidden}},
		{name: "colliding", namespace: "project1", topic: "project1_orders", wantCodes: []errors.ServiceErrorCode{errors.ErrorConflict}},
	}
	for _, testcase := range tests {
		tt := testcase
		t.Run(tt.name, func(t *testing.T) {
			g := gomega.NewWithT(t)
			f := newTopicFixture(nil, map[string]map[string]string{"project1.orders": {}})
			aces := acesService(ownerAce("project1", dbapi.ResourceTypeTopic, dbapi.PatternTypePrefixed, "project1"))
			r := NewTopicReconciler(newTestCluster(allFeatures, f.admin, nil), f.topics, aces)

			errs := r.ValidateNewTopic(context.Background(), tt.namespace, tt.topic)
			g.Expect(errs).To(gomega.HaveLen(len(tt.wantCodes)))
			for i, code := range tt.wantCodes {
				g.Expect(errors.HasCode(errs[i], code)).To(gomega.BeTrue())
			}
		})
	}
}

func TestTopicReconciler_DeleteTopic(t *testing.T) {
	g := gomega.NewWithT(t)
	f := newTopicFixture(nil, nil)
	r := NewTopicReconciler(newTestCluster(allFeatures, f.admin, nil), f.topics, acesService())
	topic := desiredTopic("project1.orders", nil, dbapi.SuccessStatus(createdTopicMessage), 1)

	g.Expect(r.DeleteTopic(context.Background(), topic)).To(gomega.Succeed())
	g.Expect(f.admin.DeleteTopicCalls()[0].Topic).To(gomega.Equal("project1.orders"))
	g.Expect(f.topics.DeleteCalls()[0].Topic).To(gomega.BeIdenticalTo(topic))
}

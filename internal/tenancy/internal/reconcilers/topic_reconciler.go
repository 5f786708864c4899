package reconcilers

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/IBM/sarama"
	"github.com/samber/lo"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/authz"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/catalog"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/kafka"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/registry"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/services"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/logger"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/metrics"
)

const (
	importedTopicMessage = "Imported from cluster"
	createdTopicMessage  = "Topic created"
	updatedTopicMessage  = "Topic configs updated"
	syncedTopicMessage   = "Topic in sync"
)

// streaming applications create these topics on their own
var streamingInternalTopicSuffixes = []string{"-changelog", "-repartition"}

func isStreamingInternalTopic(name string) bool {
	for _, suffix := range streamingInternalTopicSuffixes {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}

type topicUpdate struct {
	topic   *dbapi.Topic
	entries map[string]sarama.IncrementalAlterConfigsEntry
}

type topicPlan struct {
	toImport []*dbapi.Topic
	toCreate []*dbapi.Topic
	toUpdate []topicUpdate
	inSync   []*dbapi.Topic
	// existing topics whose configs could not be described
	failed map[*dbapi.Topic]error
}

type TopicReconciler struct {
	cluster *registry.ManagedCluster
	topics  services.TopicService
	aces    services.AccessControlEntryService
}

func NewTopicReconciler(cluster *registry.ManagedCluster, topics services.TopicService, aces services.AccessControlEntryService) *TopicReconciler {
	return &TopicReconciler{
		cluster: cluster,
		topics:  topics,
		aces:    aces,
	}
}

// Reconcile converges the topics of the cluster: streaming internal topics are imported first,
// missing topics are created and drifted configs are altered. The catalog is synchronised last.
func (r *TopicReconciler) Reconcile(ctx context.Context) []error {
	if !r.cluster.Features().ManageTopics {
		return nil
	}
	ctx = logger.WithCluster(ctx, r.cluster.Name())
	admin, err := r.cluster.Admin()
	if err != nil {
		return []error{err}
	}

	desired, svcErr := r.topics.FindAllForCluster(ctx, r.cluster.Name())
	if svcErr != nil {
		return []error{svcErr}
	}
	aces, svcErr := r.aces.FindAllForCluster(ctx, r.cluster.Name())
	if svcErr != nil {
		return []error{svcErr}
	}
	observed, err := admin.ListTopics(ctx)
	if err != nil {
		return []error{err}
	}

	var errs errors.ErrorList
	plan, planErrs := r.plan(ctx, admin, desired, observed, authz.NewOwnershipIndex(aces))
	errs.AddErrors(planErrs...)
	metrics.UpdateResourcesPendingMetric(r.cluster.Name(), metrics.ResourceKindTopic, len(plan.toCreate)+len(plan.toUpdate))

	errs.AddErrors(r.importTopics(ctx, plan.toImport)...)
	errs.AddErrors(r.createTopics(ctx, admin, plan.toCreate, observed)...)
	errs.AddErrors(r.updateTopics(ctx, admin, plan.toUpdate)...)
	errs.AddErrors(r.markInSync(ctx, plan.inSync)...)
	errs.AddErrors(r.markFailed(ctx, plan.failed)...)
	if r.cluster.Catalog() != nil {
		errs.AddErrors(r.syncCatalog(ctx, desired, observed)...)
	}
	return errs.ToErrorSlice()
}

func (r *TopicReconciler) plan(ctx context.Context, admin kafka.AdminClient, desired dbapi.TopicList, observed []kafka.TopicDescription, index *authz.OwnershipIndex) (topicPlan, []error) {
	var plan topicPlan
	var errs errors.ErrorList
	desiredByName := desired.ByName()
	observedNames := lo.SliceToMap(observed, func(t kafka.TopicDescription) (string, bool) {
		return t.Name, true
	})

	for _, topic := range desired {
		if !observedNames[topic.Name] {
			plan.toCreate = append(plan.toCreate, topic)
			continue
		}
		configs, err := admin.DescribeTopicConfigs(ctx, topic.Name)
		if err != nil {
			errs.AddErrors(err)
			if plan.failed == nil {
				plan.failed = map[*dbapi.Topic]error{}
			}
			plan.failed[topic] = err
			continue
		}
		if entries := diffTopicConfigs(topic.Configs, configs); len(entries) > 0 {
			plan.toUpdate = append(plan.toUpdate, topicUpdate{topic: topic, entries: entries})
		} else {
			plan.inSync = append(plan.inSync, topic)
		}
	}

	for _, t := range observed {
		if desiredByName[t.Name] != nil || !isStreamingInternalTopic(t.Name) {
			continue
		}
		namespace, owned := index.OwnerOf(dbapi.ResourceTypeTopic, t.Name)
		if !owned {
			continue
		}
		configs, err := admin.DescribeTopicConfigs(ctx, t.Name)
		if err != nil {
			errs.AddErrors(err)
			continue
		}
		plan.toImport = append(plan.toImport, observedTopic(r.cluster.Name(), namespace, t, configs))
	}
	return plan, errs.ToErrorSlice()
}

func observedTopic(cluster string, namespace string, t kafka.TopicDescription, configs map[string]string) *dbapi.Topic {
	return &dbapi.Topic{
		Name:              t.Name,
		Cluster:           cluster,
		Namespace:         namespace,
		Partitions:        t.Partitions,
		ReplicationFactor: t.ReplicationFactor,
		Configs:           configs,
		Status:            dbapi.SuccessStatus(importedTopicMessage),
		Generation:        1,
	}
}

// diffTopicConfigs sets the desired keys that are new or changed and deletes the keys only set on the broker
func diffTopicConfigs(desired map[string]string, observed map[string]string) map[string]sarama.IncrementalAlterConfigsEntry {
	entries := map[string]sarama.IncrementalAlterConfigsEntry{}
	for k := range desired {
		v := desired[k]
		if current, ok := observed[k]; ok && current == v {
			continue
		}
		entries[k] = sarama.IncrementalAlterConfigsEntry{
			Operation: sarama.IncrementalAlterConfigsOperationSet,
			Value:     &v,
		}
	}
	for k := range observed {
		if _, ok := desired[k]; !ok {
			entries[k] = sarama.IncrementalAlterConfigsEntry{Operation: sarama.IncrementalAlterConfigsOperationDelete}
		}
	}
	return entries
}

func (r *TopicReconciler) importTopics(ctx context.Context, topics []*dbapi.Topic) []error {
	var errs errors.ErrorList
	for _, topic := range topics {
		svcErr := r.topics.Create(ctx, topic)
		metrics.IncreaseResourceOperationMetrics(r.cluster.Name(), metrics.ResourceKindTopic, metrics.ResourceOperationImport, asError(svcErr))
		if svcErr != nil {
			errs.AddErrors(svcErr)
			continue
		}
		logger.NewUHCLogger(ctx).Infof("imported streaming internal topic %q into namespace %q", topic.Name, topic.Namespace)
	}
	return errs.ToErrorSlice()
}

func (r *TopicReconciler) createTopics(ctx context.Context, admin kafka.AdminClient, topics []*dbapi.Topic, observed []kafka.TopicDescription) []error {
	var errs errors.ErrorList
	observedNames := lo.Map(observed, func(t kafka.TopicDescription, _ int) string {
		return t.Name
	})
	for _, topic := range topics {
		if err := interrupted(ctx); err != nil {
			return append(errs, err)
		}
		err := checkTopicCollisions(topic.Name, observedNames)
		if err == nil {
			err = admin.CreateTopic(ctx, topic.Name, topic.Partitions, topic.ReplicationFactor, topic.Configs)
		}
		metrics.IncreaseResourceOperationMetrics(r.cluster.Name(), metrics.ResourceKindTopic, metrics.ResourceOperationCreate, err)
		if err != nil {
			errs.AddErrors(err)
			errs.AddErrors(r.saveStatus(ctx, topic, dbapi.FailedStatus(err.Error()), 0))
			continue
		}
		logger.NewUHCLogger(ctx).Infof("created topic %q", topic.Name)
		topic.Generation = 0
		errs.AddErrors(r.saveStatus(ctx, topic, dbapi.SuccessStatus(createdTopicMessage), 1))
	}
	return errs.ToErrorSlice()
}

func (r *TopicReconciler) updateTopics(ctx context.Context, admin kafka.AdminClient, updates []topicUpdate) []error {
	var errs errors.ErrorList
	for _, u := range updates {
		if err := interrupted(ctx); err != nil {
			return append(errs, err)
		}
		err := admin.AlterTopicConfigs(ctx, u.topic.Name, u.entries)
		metrics.IncreaseResourceOperationMetrics(r.cluster.Name(), metrics.ResourceKindTopic, metrics.ResourceOperationUpdate, err)
		if err != nil {
			errs.AddErrors(err)
			errs.AddErrors(r.saveStatus(ctx, u.topic, dbapi.FailedStatus(err.Error()), 0))
			continue
		}
		logger.NewUHCLogger(ctx).Infof("altered %d configs of topic %q", len(u.entries), u.topic.Name)
		errs.AddErrors(r.saveStatus(ctx, u.topic, dbapi.SuccessStatus(updatedTopicMessage), 1))
	}
	return errs.ToErrorSlice()
}

// markInSync clears the status of topics converged by an earlier pass or out of band
func (r *TopicReconciler) markInSync(ctx context.Context, topics []*dbapi.Topic) []error {
	var errs errors.ErrorList
	for _, topic := range topics {
		if topic.Status.Phase == dbapi.StatusPhaseSuccess {
			continue
		}
		errs.AddErrors(r.saveStatus(ctx, topic, dbapi.SuccessStatus(syncedTopicMessage), 0))
	}
	return errs.ToErrorSlice()
}

// markFailed records the failure of topics the plan could not inspect. Interrupted lookups leave the status untouched.
func (r *TopicReconciler) markFailed(ctx context.Context, failed map[*dbapi.Topic]error) []error {
	var errs errors.ErrorList
	for topic, err := range failed {
		if errors.HasCode(err, errors.ErrorInterrupted) {
			continue
		}
		errs.AddErrors(r.saveStatus(ctx, topic, dbapi.FailedStatus(err.Error()), 0))
	}
	return errs.ToErrorSlice()
}

func (r *TopicReconciler) saveStatus(ctx context.Context, topic *dbapi.Topic, status dbapi.ResourceStatus, generationIncrement int64) error {
	topic.Status = status
	topic.Generation += generationIncrement
	return asError(r.topics.Update(ctx, topic))
}

func checkTopicCollisions(name string, existing []string) error {
	if collisions := authz.TopicNameCollisions(name, existing); len(collisions) > 0 {
		return errors.Conflict("topic %q collides with existing topics %s, '.' and '_' are interchangeable in topic names", name, strings.Join(collisions, ", "))
	}
	return nil
}

// ValidateNewTopic checks that namespace owns the topic name and that it does not collide with a broker topic
func (r *TopicReconciler) ValidateNewTopic(ctx context.Context, namespace string, name string) []error {
	var errs errors.ErrorList
	aces, svcErr := r.aces.FindAllForCluster(ctx, r.cluster.Name())
	if svcErr != nil {
		return []error{svcErr}
	}
	if !authz.NewOwnershipIndex(aces).IsOwnedBy(namespace, dbapi.ResourceTypeTopic, name) {
		errs.AddErrors(errors.Forbidden("namespace %q is not owner of topic %q", namespace, name))
	}
	admin, err := r.cluster.Admin()
	if err != nil {
		return append(errs, err)
	}
	observed, err := admin.ListTopics(ctx)
	if err != nil {
		return append(errs, err)
	}
	errs.AddErrors(checkTopicCollisions(name, lo.Map(observed, func(t kafka.TopicDescription, _ int) string {
		return t.Name
	})))
	return errs.ToErrorSlice()
}

// DeleteTopic removes the topic from the broker and from the desired state
func (r *TopicReconciler) DeleteTopic(ctx context.Context, topic *dbapi.Topic) error {
	admin, err := r.cluster.Admin()
	if err != nil {
		return err
	}
	err = admin.DeleteTopic(ctx, topic.Name)
	metrics.IncreaseResourceOperationMetrics(r.cluster.Name(), metrics.ResourceKindTopic, metrics.ResourceOperationDelete, err)
	if err != nil {
		return err
	}
	return asError(r.topics.Delete(ctx, topic))
}

// ListUnsynchronizedTopics returns the broker topics owned by namespace that are not in the desired state
func (r *TopicReconciler) ListUnsynchronizedTopics(ctx context.Context, namespace string) ([]*dbapi.Topic, error) {
	admin, err := r.cluster.Admin()
	if err != nil {
		return nil, err
	}
	desired, svcErr := r.topics.FindAllForCluster(ctx, r.cluster.Name())
	if svcErr != nil {
		return nil, svcErr
	}
	aces, svcErr := r.aces.FindAllForCluster(ctx, r.cluster.Name())
	if svcErr != nil {
		return nil, svcErr
	}
	observed, err := admin.ListTopics(ctx)
	if err != nil {
		return nil, err
	}

	index := authz.NewOwnershipIndex(aces)
	desiredByName := desired.ByName()
	var topics []*dbapi.Topic
	for _, t := range observed {
		if desiredByName[t.Name] != nil || !index.IsOwnedBy(namespace, dbapi.ResourceTypeTopic, t.Name) {
			continue
		}
		configs, err := admin.DescribeTopicConfigs(ctx, t.Name)
		if err != nil {
			return nil, err
		}
		topics = append(topics, observedTopic(r.cluster.Name(), namespace, t, configs))
	}
	return topics, nil
}

// syncCatalog pushes the tags and description of every topic present on the broker to the catalog
func (r *TopicReconciler) syncCatalog(ctx context.Context, desired dbapi.TopicList, observed []kafka.TopicDescription) []error {
	catalogClient := r.cluster.Catalog()
	entries, err := catalogClient.ListTopics(ctx)
	if err != nil {
		return []error{err}
	}
	byName := lo.KeyBy(entries, func(e catalog.TopicMetadata) string {
		return e.Name
	})
	tagDefs, err := catalogClient.ListTagDefs(ctx)
	if err != nil {
		return []error{err}
	}
	knownTags := lo.SliceToMap(tagDefs, func(t string) (string, bool) {
		return t, true
	})
	onBroker := lo.SliceToMap(observed, func(t kafka.TopicDescription) (string, bool) {
		return t.Name, true
	})

	var errs errors.ErrorList
	for _, topic := range desired {
		if !onBroker[topic.Name] {
			continue
		}
		current, ok := byName[topic.Name]
		if !ok {
			// the catalog indexes new topics asynchronously
			continue
		}
		changed, err := r.syncTopicMetadata(ctx, topic, current, knownTags)
		if err != nil {
			errs.AddErrors(fmt.Errorf("failed to synchronise catalog metadata of topic %q: %w", topic.Name, err))
			continue
		}
		if changed {
			topic.Generation++
			errs.AddErrors(asError(r.topics.Update(ctx, topic)))
		}
	}
	return errs.ToErrorSlice()
}

func (r *TopicReconciler) syncTopicMetadata(ctx context.Context, topic *dbapi.Topic, current catalog.TopicMetadata, knownTags map[string]bool) (bool, error) {
	catalogClient := r.cluster.Catalog()
	toAdd, toRemove := lo.Difference([]string(topic.Tags), current.Tags)
	sort.Strings(toAdd)
	sort.Strings(toRemove)

	if missing := lo.Filter(toAdd, func(t string, _ int) bool { return !knownTags[t] }); len(missing) > 0 {
		if err := catalogClient.CreateTagDefs(ctx, missing); err != nil {
			return false, err
		}
		for _, t := range missing {
			knownTags[t] = true
		}
	}
	if len(toAdd) > 0 {
		if err := catalogClient.TagTopic(ctx, topic.Name, toAdd); err != nil {
			return false, err
		}
	}
	for _, tag := range toRemove {
		if err := catalogClient.UntagTopic(ctx, topic.Name, tag); err != nil {
			return false, err
		}
	}
	descriptionChanged := topic.Description != current.Description
	if descriptionChanged {
		if err := catalogClient.SetTopicDescription(ctx, topic.Name, topic.Description); err != nil {
			return false, err
		}
	}
	return len(toAdd) > 0 || len(toRemove) > 0 || descriptionChanged, nil
}

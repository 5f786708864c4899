package reconcilers

import (
	"context"
	"time"

	"github.com/samber/lo"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/clients/kafka"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/registry"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/logger"
)

// returned by the broker when no record has a timestamp at or after the requested one
const noOffset = int64(-1)

const (
	groupStateEmpty = "Empty"
	groupStateDead  = "Dead"
)

// ConsumerGroupOperations reads and rewinds the committed offsets of consumer groups
type ConsumerGroupOperations struct {
	cluster *registry.ManagedCluster
}

func NewConsumerGroupOperations(cluster *registry.ManagedCluster) *ConsumerGroupOperations {
	return &ConsumerGroupOperations{cluster: cluster}
}

func (o *ConsumerGroupOperations) CommittedOffsets(ctx context.Context, group string) (map[kafka.TopicPartition]int64, error) {
	admin, err := o.cluster.Admin()
	if err != nil {
		return nil, err
	}
	return admin.ListConsumerGroupOffsets(ctx, group)
}

func (o *ConsumerGroupOperations) TopicPartitions(ctx context.Context, topic string) ([]kafka.TopicPartition, error) {
	admin, err := o.cluster.Admin()
	if err != nil {
		return nil, err
	}
	partitions, err := admin.TopicPartitions(ctx, topic)
	if err != nil {
		return nil, err
	}
	return lo.Map(partitions, func(p int32, _ int) kafka.TopicPartition {
		return kafka.TopicPartition{Topic: topic, Partition: p}
	}), nil
}

func (o *ConsumerGroupOperations) LogStartOffsets(ctx context.Context, partitions []kafka.TopicPartition) (map[kafka.TopicPartition]int64, error) {
	return o.listOffsets(ctx, partitions, kafka.OffsetEarliest)
}

func (o *ConsumerGroupOperations) LogEndOffsets(ctx context.Context, partitions []kafka.TopicPartition) (map[kafka.TopicPartition]int64, error) {
	return o.listOffsets(ctx, partitions, kafka.OffsetLatest)
}

// OffsetsAtTimestamp returns the first offset at or after ts, or the log end offset of partitions without such a record
func (o *ConsumerGroupOperations) OffsetsAtTimestamp(ctx context.Context, partitions []kafka.TopicPartition, ts time.Time) (map[kafka.TopicPartition]int64, error) {
	offsets, err := o.listOffsets(ctx, partitions, ts.UnixMilli())
	if err != nil {
		return nil, err
	}
	missing := lo.Filter(partitions, func(p kafka.TopicPartition, _ int) bool {
		offset, ok := offsets[p]
		return !ok || offset == noOffset
	})
	if len(missing) == 0 {
		return offsets, nil
	}
	ends, err := o.LogEndOffsets(ctx, missing)
	if err != nil {
		return nil, err
	}
	for p, offset := range ends {
		offsets[p] = offset
	}
	return offsets, nil
}

func (o *ConsumerGroupOperations) listOffsets(ctx context.Context, partitions []kafka.TopicPartition, spec int64) (map[kafka.TopicPartition]int64, error) {
	admin, err := o.cluster.Admin()
	if err != nil {
		return nil, err
	}
	return admin.ListOffsets(ctx, partitions, spec)
}

// ClampToRange replaces every requested offset outside the log of its partition by the nearest bound
func (o *ConsumerGroupOperations) ClampToRange(ctx context.Context, requested map[kafka.TopicPartition]int64) (map[kafka.TopicPartition]int64, error) {
	partitions := lo.Keys(requested)
	starts, err := o.LogStartOffsets(ctx, partitions)
	if err != nil {
		return nil, err
	}
	ends, err := o.LogEndOffsets(ctx, partitions)
	if err != nil {
		return nil, err
	}
	return clampOffsets(requested, starts, ends), nil
}

func clampOffsets(requested map[kafka.TopicPartition]int64, starts map[kafka.TopicPartition]int64, ends map[kafka.TopicPartition]int64) map[kafka.TopicPartition]int64 {
	clamped := make(map[kafka.TopicPartition]int64, len(requested))
	for p, offset := range requested {
		if start, ok := starts[p]; ok && offset < start {
			offset = start
		}
		if end, ok := ends[p]; ok && offset > end {
			offset = end
		}
		clamped[p] = offset
	}
	return clamped
}

func (o *ConsumerGroupOperations) DescribeGroupState(ctx context.Context, group string) (string, error) {
	admin, err := o.cluster.Admin()
	if err != nil {
		return "", err
	}
	return admin.DescribeConsumerGroupState(ctx, group)
}

// AlterCommittedOffsets rewinds or advances a group with no active member. Offsets are clamped to the log first.
func (o *ConsumerGroupOperations) AlterCommittedOffsets(ctx context.Context, group string, offsets map[kafka.TopicPartition]int64) (map[kafka.TopicPartition]int64, error) {
	state, err := o.DescribeGroupState(ctx, group)
	if err != nil {
		return nil, err
	}
	if state != groupStateEmpty && state != groupStateDead {
		return nil, errors.Conflict("consumer group %q is %s, offsets can only be altered when it has no active member", group, state)
	}
	clamped, err := o.ClampToRange(ctx, offsets)
	if err != nil {
		return nil, err
	}
	admin, err := o.cluster.Admin()
	if err != nil {
		return nil, err
	}
	if err := admin.AlterConsumerGroupOffsets(ctx, group, clamped); err != nil {
		return nil, err
	}
	logger.NewUHCLogger(logger.WithCluster(ctx, o.cluster.Name())).Infof("altered %d committed offsets of consumer group %q", len(clamped), group)
	return clamped, nil
}

func (o *ConsumerGroupOperations) DeleteGroup(ctx context.Context, group string) error {
	admin, err := o.cluster.Admin()
	if err != nil {
		return err
	}
	return admin.DeleteConsumerGroup(ctx, group)
}

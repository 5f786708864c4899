package services

import (
	"context"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

//go:generate moq -out topics_moq.go . TopicService
type TopicService interface {
	FindAll(ctx context.Context) (dbapi.TopicList, *errors.ServiceError)
	FindAllForCluster(ctx context.Context, cluster string) (dbapi.TopicList, *errors.ServiceError)
	Create(ctx context.Context, topic *dbapi.Topic) *errors.ServiceError
	Update(ctx context.Context, topic *dbapi.Topic) *errors.ServiceError
	Delete(ctx context.Context, topic *dbapi.Topic) *errors.ServiceError
}

var _ TopicService = &topicService{}

type topicService struct {
	store resourceStore[dbapi.Topic]
}

func NewTopicService(connectionFactory *db.ConnectionFactory) *topicService {
	return &topicService{
		store: resourceStore[dbapi.Topic]{connectionFactory: connectionFactory, kind: "topic"},
	}
}

func (s *topicService) FindAll(ctx context.Context) (dbapi.TopicList, *errors.ServiceError) {
	return s.store.findAll(ctx)
}

func (s *topicService) FindAllForCluster(ctx context.Context, cluster string) (dbapi.TopicList, *errors.ServiceError) {
	return s.store.findAllForCluster(ctx, cluster)
}

func (s *topicService) Create(ctx context.Context, topic *dbapi.Topic) *errors.ServiceError {
	return s.store.create(ctx, &topic.Model, topic)
}

// Update saves the topic, status and generation included
func (s *topicService) Update(ctx context.Context, topic *dbapi.Topic) *errors.ServiceError {
	return s.store.update(ctx, topic)
}

func (s *topicService) Delete(ctx context.Context, topic *dbapi.Topic) *errors.ServiceError {
	return s.store.delete(ctx, topic.ID)
}

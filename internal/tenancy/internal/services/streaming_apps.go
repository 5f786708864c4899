package services

import (
	"context"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

//go:generate moq -out streaming_apps_moq.go . StreamingAppService
type StreamingAppService interface {
	FindAllForCluster(ctx context.Context, cluster string) (dbapi.StreamingAppList, *errors.ServiceError)
	FindAllForNamespace(ctx context.Context, cluster string, namespace string) (dbapi.StreamingAppList, *errors.ServiceError)
	Create(ctx context.Context, app *dbapi.StreamingApp) *errors.ServiceError
	Delete(ctx context.Context, app *dbapi.StreamingApp) *errors.ServiceError
}

var _ StreamingAppService = &streamingAppService{}

type streamingAppService struct {
	store resourceStore[dbapi.StreamingApp]
}

func NewStreamingAppService(connectionFactory *db.ConnectionFactory) *streamingAppService {
	return &streamingAppService{
		store: resourceStore[dbapi.StreamingApp]{connectionFactory: connectionFactory, kind: "streaming app"},
	}
}

func (s *streamingAppService) FindAllForCluster(ctx context.Context, cluster string) (dbapi.StreamingAppList, *errors.ServiceError) {
	return s.store.findAllForCluster(ctx, cluster)
}

func (s *streamingAppService) FindAllForNamespace(ctx context.Context, cluster string, namespace string) (dbapi.StreamingAppList, *errors.ServiceError) {
	return s.store.findAllForNamespace(ctx, cluster, namespace)
}

func (s *streamingAppService) Create(ctx context.Context, app *dbapi.StreamingApp) *errors.ServiceError {
	return s.store.create(ctx, &app.Model, app)
}

func (s *streamingAppService) Delete(ctx context.Context, app *dbapi.StreamingApp) *errors.ServiceError {
	return s.store.delete(ctx, app.ID)
}

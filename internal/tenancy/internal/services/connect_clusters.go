package services

import (
	"context"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

//go:generate moq -out connect_clusters_moq.go . ConnectClusterService
type ConnectClusterService interface {
	FindAllForCluster(ctx context.Context, cluster string) (dbapi.ConnectClusterList, *errors.ServiceError)
	Create(ctx context.Context, connectCluster *dbapi.ConnectCluster) *errors.ServiceError
	Delete(ctx context.Context, connectCluster *dbapi.ConnectCluster) *errors.ServiceError
}

var _ ConnectClusterService = &connectClusterService{}

type connectClusterService struct {
	store resourceStore[dbapi.ConnectCluster]
}

func NewConnectClusterService(connectionFactory *db.ConnectionFactory) *connectClusterService {
	return &connectClusterService{
		store: resourceStore[dbapi.ConnectCluster]{connectionFactory: connectionFactory, kind: "connect cluster"},
	}
}

func (s *connectClusterService) FindAllForCluster(ctx context.Context, cluster string) (dbapi.ConnectClusterList, *errors.ServiceError) {
	return s.store.findAllForCluster(ctx, cluster)
}

func (s *connectClusterService) Create(ctx context.Context, connectCluster *dbapi.ConnectCluster) *errors.ServiceError {
	return s.store.create(ctx, &connectCluster.Model, connectCluster)
}

func (s *connectClusterService) Delete(ctx context.Context, connectCluster *dbapi.ConnectCluster) *errors.ServiceError {
	return s.store.delete(ctx, connectCluster.ID)
}

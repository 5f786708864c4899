package services

import (
	"context"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

//go:generate moq -out namespaces_moq.go . NamespaceService
type NamespaceService interface {
	FindAllForCluster(ctx context.Context, cluster string) (dbapi.NamespaceList, *errors.ServiceError)
	FindByName(ctx context.Context, cluster string, name string) (*dbapi.Namespace, *errors.ServiceError)
}

var _ NamespaceService = &namespaceService{}

type namespaceService struct {
	store resourceStore[dbapi.Namespace]
}

func NewNamespaceService(connectionFactory *db.ConnectionFactory) *namespaceService {
	return &namespaceService{
		store: resourceStore[dbapi.Namespace]{connectionFactory: connectionFactory, kind: "namespace"},
	}
}

func (s *namespaceService) FindAllForCluster(ctx context.Context, cluster string) (dbapi.NamespaceList, *errors.ServiceError) {
	return s.store.findAllForCluster(ctx, cluster)
}

func (s *namespaceService) FindByName(ctx context.Context, cluster string, name string) (*dbapi.Namespace, *errors.ServiceError) {
	return s.store.findByName(ctx, cluster, name)
}

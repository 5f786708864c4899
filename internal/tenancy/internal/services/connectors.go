package services

import (
	"context"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

//go:generate moq -out connectors_moq.go . ConnectorService
type ConnectorService interface {
	FindAllForCluster(ctx context.Context, cluster string) (dbapi.ConnectorList, *errors.ServiceError)
	Create(ctx context.Context, connector *dbapi.Connector) *errors.ServiceError
	Update(ctx context.Context, connector *dbapi.Connector) *errors.ServiceError
	Delete(ctx context.Context, connector *dbapi.Connector) *errors.ServiceError
}

var _ ConnectorService = &connectorService{}

type connectorService struct {
	store resourceStore[dbapi.Connector]
}

func NewConnectorService(connectionFactory *db.ConnectionFactory) *connectorService {
	return &connectorService{
		store: resourceStore[dbapi.Connector]{connectionFactory: connectionFactory, kind: "connector"},
	}
}

func (s *connectorService) FindAllForCluster(ctx context.Context, cluster string) (dbapi.ConnectorList, *errors.ServiceError) {
	return s.store.findAllForCluster(ctx, cluster)
}

func (s *connectorService) Create(ctx context.Context, connector *dbapi.Connector) *errors.ServiceError {
	return s.store.create(ctx, &connector.Model, connector)
}

func (s *connectorService) Update(ctx context.Context, connector *dbapi.Connector) *errors.ServiceError {
	return s.store.update(ctx, connector)
}

func (s *connectorService) Delete(ctx context.Context, connector *dbapi.Connector) *errors.ServiceError {
	return s.store.delete(ctx, connector.ID)
}

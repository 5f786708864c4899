package services

import (
	"context"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/internal/tenancy/internal/api/dbapi"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

//go:generate moq -out access_control_entries_moq.go . AccessControlEntryService
type AccessControlEntryService interface {
	FindAll(ctx context.Context) (dbapi.AccessControlEntryList, *errors.ServiceError)
	FindAllForCluster(ctx context.Context, cluster string) (dbapi.AccessControlEntryList, *errors.ServiceError)
	Create(ctx context.Context, ace *dbapi.AccessControlEntry) *errors.ServiceError
	Update(ctx context.Context, ace *dbapi.AccessControlEntry) *errors.ServiceError
	Delete(ctx context.Context, ace *dbapi.AccessControlEntry) *errors.ServiceError
}

var _ AccessControlEntryService = &accessControlEntryService{}

type accessControlEntryService struct {
	store resourceStore[dbapi.AccessControlEntry]
}

func NewAccessControlEntryService(connectionFactory *db.ConnectionFactory) *accessControlEntryService {
	return &accessControlEntryService{
		store: resourceStore[dbapi.AccessControlEntry]{connectionFactory: connectionFactory, kind: "access control entry"},
	}
}

func (s *accessControlEntryService) FindAll(ctx context.Context) (dbapi.AccessControlEntryList, *errors.ServiceError) {
	return s.store.findAll(ctx)
}

func (s *accessControlEntryService) FindAllForCluster(ctx context.Context, cluster string) (dbapi.AccessControlEntryList, *errors.ServiceError) {
	return s.store.findAllForCluster(ctx, cluster)
}

func (s *accessControlEntryService) Create(ctx context.Context, ace *dbapi.AccessControlEntry) *errors.ServiceError {
	return s.store.create(ctx, &ace.Model, ace)
}

// Update saves the generation, the grant itself is immutable
func (s *accessControlEntryService) Update(ctx context.Context, ace *dbapi.AccessControlEntry) *errors.ServiceError {
	return s.store.update(ctx, ace)
}

func (s *accessControlEntryService) Delete(ctx context.Context, ace *dbapi.AccessControlEntry) *errors.ServiceError {
	return s.store.delete(ctx, ace.ID)
}

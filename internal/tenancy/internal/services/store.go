package services

import (
	"context"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/api"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/db"
	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
	goerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// resourceStore holds the queries every desired-state resource shares. T is a gorm model embedding db.Model.
type resourceStore[T any] struct {
	connectionFactory *db.ConnectionFactory
	kind              string
}

func (s *resourceStore[T]) findAll(ctx context.Context) ([]*T, *errors.ServiceError) {
	var resources []*T
	if err := s.connectionFactory.New().WithContext(ctx).Order("created_at").Find(&resources).Error; err != nil {
		return nil, errors.GeneralError("failed to list %s: %v", s.kind, err)
	}
	return resources, nil
}

func (s *resourceStore[T]) findAllForCluster(ctx context.Context, cluster string) ([]*T, *errors.ServiceError) {
	var resources []*T
	if err := s.connectionFactory.New().WithContext(ctx).
		Where("cluster = ?", cluster).
		Order("created_at").
		Find(&resources).Error; err != nil {
		return nil, errors.GeneralError("failed to list %s of cluster %q: %v", s.kind, cluster, err)
	}
	return resources, nil
}

func (s *resourceStore[T]) findAllForNamespace(ctx context.Context, cluster string, namespace string) ([]*T, *errors.ServiceError) {
	var resources []*T
	if err := s.connectionFactory.New().WithContext(ctx).
		Where("cluster = ? AND namespace = ?", cluster, namespace).
		Order("created_at").
		Find(&resources).Error; err != nil {
		return nil, errors.GeneralError("failed to list %s of namespace %q: %v", s.kind, namespace, err)
	}
	return resources, nil
}

func (s *resourceStore[T]) findByName(ctx context.Context, cluster string, name string) (*T, *errors.ServiceError) {
	var resource T
	err := s.connectionFactory.New().WithContext(ctx).
		Where("cluster = ? AND name = ?", cluster, name).
		Take(&resource).Error
	if goerrors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errors.NotFound("%s %q not found in cluster %q", s.kind, name, cluster)
	}
	if err != nil {
		return nil, errors.GeneralError("failed to get %s %q: %v", s.kind, name, err)
	}
	return &resource, nil
}

func (s *resourceStore[T]) create(ctx context.Context, model *db.Model, resource *T) *errors.ServiceError {
	if model.ID == "" {
		model.ID = api.NewID()
	}
	if err := s.connectionFactory.New().WithContext(ctx).Create(resource).Error; err != nil {
		return errors.GeneralError("failed to create %s: %v", s.kind, err)
	}
	return nil
}

func (s *resourceStore[T]) update(ctx context.Context, resource *T) *errors.ServiceError {
	if err := s.connectionFactory.New().WithContext(ctx).Save(resource).Error; err != nil {
		return errors.GeneralError("failed to update %s: %v", s.kind, err)
	}
	return nil
}

func (s *resourceStore[T]) delete(ctx context.Context, id string) *errors.ServiceError {
	if id == "" {
		return errors.Validation("%s id is undefined", s.kind)
	}
	var resource T
	if err := s.connectionFactory.New().WithContext(ctx).Where("id = ?", id).Delete(&resource).Error; err != nil {
		return errors.GeneralError("failed to delete %s %q: %v", s.kind, id, err)
	}
	return nil
}

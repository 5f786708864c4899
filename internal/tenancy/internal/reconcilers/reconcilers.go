package reconcilers

import (
	"context"

	"github.com/bf2fc6cc711aee1a0c2a/kafka-tenant-manager/pkg/errors"
)

// asError keeps a nil *ServiceError from becoming a non-nil error
func asError(err *errors.ServiceError) error {
	if err == nil {
		return nil
	}
	return err
}

// interrupted is checked between apply phases so a cancelled pass stops early
func interrupted(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return errors.FromOperationError(err, "reconciliation pass stopped")
	}
	return nil
}

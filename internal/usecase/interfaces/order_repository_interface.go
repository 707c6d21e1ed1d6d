package interfaces

import (
	"context"

	"campo_direto/internal/domain/entities"
)

// IOrderRepository abstracts DynamoDB persistence for the Order aggregate.
//
// Contract:
//   - the aggregate (order + embedded items) is read and written as a unit
//   - Create also claims the one-open-cart-per-(producer, supplier) guard and
//     fails with ErrAlreadyExists when the pair already holds an open cart
//   - UpdateWithVersion performs a compare-and-swap on the version token and
//     fails with ErrVersionConflict on mismatch; on success the stored version
//     is expectedVersion+1
//   - reads return a zero-value Order when the id does not exist
type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	UpdateWithVersion(ctx context.Context, o entities.Order, expectedVersion int64) (entities.Order, error)
}

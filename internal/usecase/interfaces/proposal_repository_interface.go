package interfaces

import (
	"context"

	"campo_direto/internal/domain/entities"
)

// IProposalRepository abstracts DynamoDB persistence for the append-only
// negotiation log.
//
// Append writes the proposal and the updated order in one transaction: the
// order write carries the version compare-and-swap, so a stale cart status can
// never be observed by a concurrent append (ErrVersionConflict on mismatch).
// When the updated order has reached a terminal status the transaction also
// releases the open-cart guard for the (producer, supplier) pair.
type IProposalRepository interface {
	Append(ctx context.Context, p entities.Proposal, updatedOrder entities.Order, expectedVersion int64) (entities.Proposal, error)
	ListByOrderID(ctx context.Context, orderID string, newestFirst bool, limit, offset int) ([]entities.Proposal, error)
	GetLatestByOrderID(ctx context.Context, orderID string) (entities.Proposal, error)
}

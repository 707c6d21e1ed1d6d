package interfaces

import (
	"context"
	"time"

	"campo_direto/internal/domain/entities"
)

// IBookingRepository abstracts DynamoDB persistence for transport bookings.
//
// Create runs the overcommit guard atomically with the insert: a per-item
// commitment counter is incremented under the condition that the new active
// total stays within itemCap, in the same transaction as the booking put.
// ErrOvercommitted when the guard rejects. Cancel is a soft-cancel that
// decrements the counter in the same transaction.
//
// Reads return a zero-value booking when the id does not exist. Conditional
// updates and Cancel fail with ErrNotFound when the row has vanished since
// the caller's read.
type IBookingRepository interface {
	Create(ctx context.Context, b entities.TransportBooking, itemCap int) (entities.TransportBooking, error)
	GetByID(ctx context.Context, id string) (entities.TransportBooking, error)
	ListByItemID(ctx context.Context, itemID string) ([]entities.TransportBooking, error)
	CommittedQuantity(ctx context.Context, itemID string) (int, error)
	UpdateScheduledDate(ctx context.Context, id string, newDate time.Time) (entities.TransportBooking, error)
	UpdateFreightValue(ctx context.Context, id string, newValue float64) (entities.TransportBooking, error)
	Cancel(ctx context.Context, id string, reason string) (entities.TransportBooking, error)
}

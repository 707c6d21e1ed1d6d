package interfaces

import "context"

// NotificationEvent is an outbound event for the notification collaborator.
type NotificationEvent struct {
	Type    string         `json:"type"`
	OrderID string         `json:"order_id"`
	Detail  map[string]any `json:"detail,omitempty"`
}

// INotifier abstracts the outbound notification service. Delivery failures
// are never fatal to the originating operation.
type INotifier interface {
	Notify(ctx context.Context, event NotificationEvent) error
}

package notifications

import (
	"context"

	"campo_direto/internal/usecase/interfaces"
	"campo_direto/pkg/logger"
)

// LogNotifier writes outbound events to the application log. It stands in
// for the notification collaborator until the async channel is provisioned.
type LogNotifier struct{}

var _ interfaces.INotifier = (*LogNotifier)(nil)

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Notify(_ context.Context, event interfaces.NotificationEvent) error {
	logger.S().Infow("notification dispatched",
		"type", event.Type,
		"order_id", event.OrderID,
		"detail", event.Detail,
	)
	return nil
}

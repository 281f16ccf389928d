package interfaces

import (
	"context"
	"payment_gateway/internal/domain/entities"
)

//go:generate mockgen -source=event_publisher_interface.go -destination=mocks/event_publisher_interface_mock.go -package=mock_interfaces

// IOrderEventPublisher publishes order lifecycle events (e.g. Kafka).
type IOrderEventPublisher interface {
	PublishOrderPaid(ctx context.Context, event entities.OrderPaidEvent) error
}

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ridloal/dyfn-shop/internal/order/domain"
	"github.com/ridloal/dyfn-shop/internal/order/repository"
	"github.com/ridloal/dyfn-shop/internal/platform/logger"
)

// EventPublisher announces stored orders to other systems.
type EventPublisher interface {
	PublishOrderReceived(ctx context.Context, evt domain.OrderReceived) error
}

type OrderService interface {
	CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.CreateOrderResponse, error)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
	publisher EventPublisher
	now       func() time.Time
}

// NewOrderService wires the service. publisher may be nil, in which case no
// events are sent.
func NewOrderService(or repository.OrderRepository, publisher EventPublisher) OrderService {
	return &orderServiceImpl{
		orderRepo: or,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

func (s *orderServiceImpl) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.CreateOrderResponse, error) {
	order, err := req.ToOrder()
	if err != nil {
		return nil, err
	}

	id, err := s.orderRepo.CreateOrder(ctx, order)
	if err != nil {
		return nil, fmt.Errorf("could not save order: %w", err)
	}
	logger.Info("CreateOrder: order received", "order_id", id, "items", len(order.Items))

	// The order is already stored; a failed publish is reported but does
	// not fail the request.
	if s.publisher != nil {
		evt := domain.NewOrderReceived(id, order, s.now())
		if err := s.publisher.PublishOrderReceived(ctx, evt); err != nil {
			logger.Error("CreateOrder: failed to publish order event", err, "order_id", id)
		}
	}

	return &domain.CreateOrderResponse{ID: id, Status: order.Status}, nil
}

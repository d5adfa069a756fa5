package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/dyfn-shop/internal/order/domain"
)

type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) CreateOrder(ctx context.Context, req domain.CreateOrderRequest) (*domain.CreateOrderResponse, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*domain.CreateOrderResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

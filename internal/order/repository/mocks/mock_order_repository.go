package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/dyfn-shop/internal/order/domain"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) CreateOrder(ctx context.Context, o domain.Order) (string, error) {
	args := m.Called(ctx, o)
	return args.String(0), args.Error(1)
}

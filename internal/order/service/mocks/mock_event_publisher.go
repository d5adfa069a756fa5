package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/dyfn-shop/internal/order/domain"
)

type MockEventPublisher struct {
	mock.Mock
}

func (m *MockEventPublisher) PublishOrderReceived(ctx context.Context, evt domain.OrderReceived) error {
	return m.Called(ctx, evt).Error(0)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/dyfn-shop/internal/system/domain"
)

type MockDiagnosticsService struct {
	mock.Mock
}

func (m *MockDiagnosticsService) Check(ctx context.Context) domain.Report {
	return m.Called(ctx).Get(0).(domain.Report)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ridloal/dyfn-shop/internal/platform/docstore"
)

type MockStore struct {
	mock.Mock
}

func (m *MockStore) Name() string {
	return m.Called().String(0)
}

func (m *MockStore) CreateDocument(ctx context.Context, collection string, record any) (string, error) {
	args := m.Called(ctx, collection, record)
	return args.String(0), args.Error(1)
}

func (m *MockStore) GetDocuments(ctx context.Context, collection string, filter docstore.Filter, limit int64) ([]docstore.Document, error) {
	args := m.Called(ctx, collection, filter, limit)
	if res := args.Get(0); res != nil {
		return res.([]docstore.Document), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) CountDocuments(ctx context.Context, collection string, filter docstore.Filter) (int64, error) {
	args := m.Called(ctx, collection, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockStore) ListCollectionNames(ctx context.Context, limit int) ([]string, error) {
	args := m.Called(ctx, limit)
	if res := args.Get(0); res != nil {
		return res.([]string), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStore) Close(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

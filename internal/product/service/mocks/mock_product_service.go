package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	pDomain "github.com/ridloal/dyfn-shop/internal/product/domain"
)

type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) ListProducts(ctx context.Context, q pDomain.ProductQuery) ([]pDomain.Product, error) {
	args := m.Called(ctx, q)
	if res := args.Get(0); res != nil {
		return res.([]pDomain.Product), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) CreateProduct(ctx context.Context, req pDomain.CreateProductRequest) (*pDomain.CreateProductResponse, error) {
	args := m.Called(ctx, req)
	if res := args.Get(0); res != nil {
		return res.(*pDomain.CreateProductResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProductService) SeedProducts(ctx context.Context) (*pDomain.SeedResult, error) {
	args := m.Called(ctx)
	if res := args.Get(0); res != nil {
		return res.(*pDomain.SeedResult), args.Error(1)
	}
	return nil, args.Error(1)
}

package service

import (
	"context"
	"fmt"

	"github.com/ridloal/dyfn-shop/internal/platform/logger"
	"github.com/ridloal/dyfn-shop/internal/product/domain"
	"github.com/ridloal/dyfn-shop/internal/product/repository"
)

const alreadySeededMessage = "Products already exist"

type ProductService interface {
	ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.CreateProductResponse, error)
	// SeedProducts writes the demo catalogue unless any product exists.
	SeedProducts(ctx context.Context) (*domain.SeedResult, error)
}

type productServiceImpl struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) ProductService {
	return &productServiceImpl{repo: repo}
}

func (s *productServiceImpl) ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	if q.Limit < 0 {
		return nil, fmt.Errorf("%w: limit must not be negative", domain.ErrInvalidQuery)
	}
	return s.repo.ListProducts(ctx, q)
}

func (s *productServiceImpl) CreateProduct(ctx context.Context, req domain.CreateProductRequest) (*domain.CreateProductResponse, error) {
	product, err := req.ToProduct()
	if err != nil {
		return nil, err
	}

	id, err := s.repo.CreateProduct(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("could not save product: %w", err)
	}
	return &domain.CreateProductResponse{ID: id}, nil
}

func (s *productServiceImpl) SeedProducts(ctx context.Context) (*domain.SeedResult, error) {
	count, err := s.repo.CountProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not count products: %w", err)
	}
	if count > 0 {
		logger.Info("SeedProducts: skipped, products already exist", "count", count)
		return &domain.SeedResult{Seeded: false, Message: alreadySeededMessage}, nil
	}

	demo := domain.DemoProducts()
	for _, p := range demo {
		if _, err := s.repo.CreateProduct(ctx, p); err != nil {
			return nil, fmt.Errorf("could not seed product %q: %w", p.Title, err)
		}
	}
	logger.Info("SeedProducts: demo catalogue written", "count", len(demo))
	return &domain.SeedResult{Seeded: true, Count: len(demo)}, nil
}

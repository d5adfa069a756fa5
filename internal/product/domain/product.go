package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultListLimit is used when a listing does not ask for a limit.
const DefaultListLimit int64 = 100

var (
	ErrInvalidProduct = errors.New("invalid product")
	ErrInvalidQuery   = errors.New("invalid product query")
)

type Product struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	InStock     bool            `json:"in_stock"`
	Sizes       []string        `json:"sizes"`
}

// Untuk request pembuatan produk
type CreateProductRequest struct {
	Title       string           `json:"title" binding:"required"`
	Description string           `json:"description"`
	Price       *decimal.Decimal `json:"price" binding:"required"`
	Category    string           `json:"category" binding:"required"`
	Image       string           `json:"image" binding:"omitempty,url"`
	InStock     *bool            `json:"in_stock"`
	Sizes       []string         `json:"sizes" binding:"omitempty,dive,required"`
}

// ToProduct applies the field defaults: in stock, no sizes.
func (r CreateProductRequest) ToProduct() (Product, error) {
	if r.Price == nil {
		return Product{}, fmt.Errorf("%w: price is required", ErrInvalidProduct)
	}
	if r.Price.IsNegative() {
		return Product{}, fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}

	p := Product{
		Title:       r.Title,
		Description: r.Description,
		Price:       *r.Price,
		Category:    r.Category,
		Image:       r.Image,
		InStock:     true,
		Sizes:       []string{},
	}
	if r.InStock != nil {
		p.InStock = *r.InStock
	}
	if r.Sizes != nil {
		p.Sizes = append(p.Sizes, r.Sizes...)
	}
	return p, nil
}

// ProductQuery selects products for a listing. Empty strings mean "any".
// Limit is passed to the store as is; zero means no limit.
type ProductQuery struct {
	Category string
	Search   string
	Limit    int64
}

type CreateProductResponse struct {
	ID string `json:"id"`
}

type SeedResult struct {
	Seeded  bool   `json:"seeded"`
	Count   int    `json:"count,omitempty"`
	Message string `json:"message,omitempty"`
}

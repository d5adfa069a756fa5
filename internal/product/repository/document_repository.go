package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/ridloal/dyfn-shop/internal/platform/docstore"
	"github.com/ridloal/dyfn-shop/internal/platform/logger"
	"github.com/ridloal/dyfn-shop/internal/product/domain"
)

const CollectionName = "product"

// Fields searched by a free-text product query.
var searchFields = []string{"title", "description"}

type ProductRepository interface {
	ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) (string, error)
	CountProducts(ctx context.Context) (int64, error)
}

// productDocument is the stored shape of a product. Prices are kept as
// plain numbers so existing documents stay readable by other clients.
type productDocument struct {
	Title       string    `bson:"title" json:"title"`
	Description string    `bson:"description" json:"description"`
	Price       float64   `bson:"price" json:"price"`
	Category    string    `bson:"category" json:"category"`
	Image       string    `bson:"image" json:"image"`
	InStock     bool      `bson:"in_stock" json:"in_stock"`
	Sizes       []string  `bson:"sizes" json:"sizes"`
	CreatedAt   time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time `bson:"updated_at" json:"updated_at"`
}

type documentProductRepository struct {
	store docstore.Store
	now   func() time.Time
}

// NewDocumentProductRepository returns a repository over store. A nil store
// is allowed; every call then fails with docstore.ErrNotConfigured.
func NewDocumentProductRepository(store docstore.Store) ProductRepository {
	return &documentProductRepository{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *documentProductRepository) ListProducts(ctx context.Context, q domain.ProductQuery) ([]domain.Product, error) {
	if r.store == nil {
		return nil, docstore.ErrNotConfigured
	}

	docs, err := r.store.GetDocuments(ctx, CollectionName, productFilter(q), q.Limit)
	if err != nil {
		logger.Error("ListProducts: query failed", err)
		return nil, err
	}

	products := make([]domain.Product, 0, len(docs))
	for _, d := range docs {
		var pd productDocument
		if err := d.Decode(&pd); err != nil {
			logger.Error("ListProducts: decode failed", err, "id", d.ID)
			return nil, fmt.Errorf("decode product %s: %w", d.ID, err)
		}
		products = append(products, toDomain(d.ID, pd))
	}
	return products, nil
}

func (r *documentProductRepository) CreateProduct(ctx context.Context, p domain.Product) (string, error) {
	if r.store == nil {
		return "", docstore.ErrNotConfigured
	}

	id, err := r.store.CreateDocument(ctx, CollectionName, r.toDocument(p))
	if err != nil {
		logger.Error("CreateProduct: insert failed", err, "title", p.Title)
		return "", err
	}
	return id, nil
}

func (r *documentProductRepository) CountProducts(ctx context.Context) (int64, error) {
	if r.store == nil {
		return 0, docstore.ErrNotConfigured
	}

	n, err := r.store.CountDocuments(ctx, CollectionName, docstore.Filter{})
	if err != nil {
		logger.Error("CountProducts: count failed", err)
		return 0, err
	}
	return n, nil
}

// productFilter: category is an exact match, search a case-insensitive
// substring of title or description. Both together must hold.
func productFilter(q domain.ProductQuery) docstore.Filter {
	f := docstore.Filter{}
	if q.Category != "" {
		f = f.Where("category", q.Category)
	}
	if q.Search != "" {
		f = f.Contains(q.Search, searchFields...)
	}
	return f
}

func (r *documentProductRepository) toDocument(p domain.Product) productDocument {
	now := r.now()
	sizes := p.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	return productDocument{
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Category:    p.Category,
		Image:       p.Image,
		InStock:     p.InStock,
		Sizes:       sizes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func toDomain(id string, d productDocument) domain.Product {
	sizes := d.Sizes
	if sizes == nil {
		sizes = []string{}
	}
	return domain.Product{
		ID:          id,
		Title:       d.Title,
		Description: d.Description,
		Price:       decimal.NewFromFloat(d.Price),
		Category:    d.Category,
		Image:       d.Image,
		InStock:     d.InStock,
		Sizes:       sizes,
	}
}

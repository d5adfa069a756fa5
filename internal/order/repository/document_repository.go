package repository

import (
	"context"
	"time"

	"github.com/ridloal/dyfn-shop/internal/order/domain"
	"github.com/ridloal/dyfn-shop/internal/platform/docstore"
	"github.com/ridloal/dyfn-shop/internal/platform/logger"
)

const CollectionName = "order"

type OrderRepository interface {
	// CreateOrder stores o and returns the store-assigned id.
	CreateOrder(ctx context.Context, o domain.Order) (string, error)
}

type orderItemDocument struct {
	ProductID string  `bson:"product_id" json:"product_id"`
	Title     string  `bson:"title" json:"title"`
	Size      string  `bson:"size,omitempty" json:"size,omitempty"`
	Quantity  int     `bson:"quantity" json:"quantity"`
	Price     float64 `bson:"price" json:"price"`
}

type orderDocument struct {
	CustomerName string              `bson:"customer_name" json:"customer_name"`
	Email        string              `bson:"email" json:"email"`
	Address      string              `bson:"address" json:"address"`
	Items        []orderItemDocument `bson:"items" json:"items"`
	Total        float64             `bson:"total" json:"total"`
	Notes        string              `bson:"notes,omitempty" json:"notes,omitempty"`
	Status       string              `bson:"status" json:"status"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}

type documentOrderRepository struct {
	store docstore.Store
	now   func() time.Time
}

func NewDocumentOrderRepository(store docstore.Store) OrderRepository {
	return &documentOrderRepository{
		store: store,
		now:   func() time.Time { return time.Now().UTC() },
	}
}

func (r *documentOrderRepository) CreateOrder(ctx context.Context, o domain.Order) (string, error) {
	if r.store == nil {
		return "", docstore.ErrNotConfigured
	}

	id, err := r.store.CreateDocument(ctx, CollectionName, r.toDocument(o))
	if err != nil {
		logger.Error("CreateOrder: insert failed", err, "email", o.Email)
		return "", err
	}
	return id, nil
}

func (r *documentOrderRepository) toDocument(o domain.Order) orderDocument {
	items := make([]orderItemDocument, len(o.Items))
	for i, it := range o.Items {
		items[i] = orderItemDocument{
			ProductID: it.ProductID,
			Title:     it.Title,
			Size:      it.Size,
			Quantity:  it.Quantity,
			Price:     it.Price.InexactFloat64(),
		}
	}
	now := r.now()
	return orderDocument{
		CustomerName: o.CustomerName,
		Email:        o.Email,
		Address:      o.Address,
		Items:        items,
		Total:        o.Total.InexactFloat64(),
		Notes:        o.Notes,
		Status:       string(o.Status),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

// Orders are only ever created in this service, so received is the single
// status it assigns.
const StatusReceived OrderStatus = "received"

var ErrInvalidOrder = errors.New("invalid order")

type Order struct {
	ID           string          `json:"id"`
	CustomerName string          `json:"customer_name"`
	Email        string          `json:"email"`
	Address      string          `json:"address"`
	Items        []OrderItem     `json:"items"`
	Total        decimal.Decimal `json:"total"`
	Notes        string          `json:"notes,omitempty"`
	Status       OrderStatus     `json:"status"`
}

type OrderItem struct {
	ProductID string          `json:"product_id"`
	Title     string          `json:"title"`
	Size      string          `json:"size,omitempty"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Untuk request pembuatan order
type CreateOrderItemRequest struct {
	ProductID string           `json:"product_id" binding:"required"`
	Title     string           `json:"title" binding:"required"`
	Size      string           `json:"size"`
	Quantity  int              `json:"quantity" binding:"required,gt=0"`
	Price     *decimal.Decimal `json:"price" binding:"required"` // Harga satuan produk
}

type CreateOrderRequest struct {
	CustomerName string                   `json:"customer_name" binding:"required"`
	Email        string                   `json:"email" binding:"required,email"`
	Address      string                   `json:"address" binding:"required"`
	Items        []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
	Total        *decimal.Decimal         `json:"total" binding:"required"`
	Notes        string                   `json:"notes"`
}

// ToOrder checks the amounts the binding tags cannot and returns a received
// order without id.
func (r CreateOrderRequest) ToOrder() (Order, error) {
	if len(r.Items) == 0 {
		return Order{}, fmt.Errorf("%w: order must contain at least one item", ErrInvalidOrder)
	}
	if r.Total == nil || r.Total.IsNegative() {
		return Order{}, fmt.Errorf("%w: total must be a non-negative amount", ErrInvalidOrder)
	}

	items := make([]OrderItem, len(r.Items))
	for i, it := range r.Items {
		if it.Price == nil || it.Price.IsNegative() {
			return Order{}, fmt.Errorf("%w: item %d price must be a non-negative amount", ErrInvalidOrder, i)
		}
		if it.Quantity <= 0 {
			return Order{}, fmt.Errorf("%w: item %d quantity must be positive", ErrInvalidOrder, i)
		}
		items[i] = OrderItem{
			ProductID: it.ProductID,
			Title:     it.Title,
			Size:      it.Size,
			Quantity:  it.Quantity,
			Price:     *it.Price,
		}
	}

	return Order{
		CustomerName: r.CustomerName,
		Email:        r.Email,
		Address:      r.Address,
		Items:        items,
		Total:        *r.Total,
		Notes:        r.Notes,
		Status:       StatusReceived,
	}, nil
}

type CreateOrderResponse struct {
	ID     string      `json:"id"`
	Status OrderStatus `json:"status"`
}

// OrderReceived is published after an order is stored.
type OrderReceived struct {
	OrderID       string    `json:"order_id"`
	CustomerEmail string    `json:"customer_email"`
	ItemCount     int       `json:"item_count"`
	Total         string    `json:"total"`
	ReceivedAt    time.Time `json:"received_at"`
}

func NewOrderReceived(id string, o Order, at time.Time) OrderReceived {
	count := 0
	for _, it := range o.Items {
		count += it.Quantity
	}
	return OrderReceived{
		OrderID:       id,
		CustomerEmail: o.Email,
		ItemCount:     count,
		Total:         o.Total.StringFixed(2),
		ReceivedAt:    at,
	}
}

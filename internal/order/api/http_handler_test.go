package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/dyfn-shop/internal/order/domain"
	"github.com/ridloal/dyfn-shop/internal/order/repository"
	"github.com/ridloal/dyfn-shop/internal/order/service"
	"github.com/ridloal/dyfn-shop/internal/order/service/mocks"
	"github.com/ridloal/dyfn-shop/internal/platform/docstore"
	"github.com/ridloal/dyfn-shop/internal/platform/docstore/docstoretest"
	"github.com/ridloal/dyfn-shop/internal/platform/httpserver"
)

const validOrder = `{
	"customer_name": "Ana",
	"email": "ana@example.com",
	"address": "1 Main St",
	"items": [{"product_id": "p1", "title": "Classic DYFN Tee", "size": "M", "quantity": 2, "price": 24.99}],
	"total": 49.98
}`

func newTestRouter(svc service.OrderService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	NewOrderHandler(svc).RegisterRoutes(r.Group("/api"))
	return r
}

func postOrder(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	t.Run("Successful order", func(t *testing.T) {
		mockSvc := new(mocks.MockOrderService)
		r := newTestRouter(mockSvc)
		mockSvc.On("CreateOrder", mock.Anything, mock.MatchedBy(func(req domain.CreateOrderRequest) bool {
			return req.Email == "ana@example.com" && len(req.Items) == 1 && req.Items[0].Quantity == 2
		})).Return(&domain.CreateOrderResponse{ID: "ord-1", Status: domain.StatusReceived}, nil).Once()

		w := postOrder(r, validOrder)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"ord-1","status":"received"}`, w.Body.String())
		mockSvc.AssertExpectations(t)
	})

	for name, body := range map[string]string{
		"Unknown field": `{"customer_name":"Ana","email":"ana@example.com","address":"x","items":[{"product_id":"p","title":"t","quantity":1,"price":1}],"total":1,"coupon":"FREE"}`,
		"Bad email":     `{"customer_name":"Ana","email":"nope","address":"x","items":[{"product_id":"p","title":"t","quantity":1,"price":1}],"total":1}`,
		"No items":      `{"customer_name":"Ana","email":"ana@example.com","address":"x","items":[],"total":1}`,
		"Zero quantity": `{"customer_name":"Ana","email":"ana@example.com","address":"x","items":[{"product_id":"p","title":"t","quantity":0,"price":1}],"total":1}`,
		"Missing total": `{"customer_name":"Ana","email":"ana@example.com","address":"x","items":[{"product_id":"p","title":"t","quantity":1,"price":1}]}`,
		"Not an object": `[1,2,3]`,
	} {
		t.Run("Validation: "+name, func(t *testing.T) {
			mockSvc := new(mocks.MockOrderService)
			r := newTestRouter(mockSvc)

			w := postOrder(r, body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			mockSvc.AssertNotCalled(t, "CreateOrder", mock.Anything, mock.Anything)
		})
	}

	t.Run("Store failure", func(t *testing.T) {
		mockSvc := new(mocks.MockOrderService)
		r := newTestRouter(mockSvc)
		mockSvc.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, errors.New("could not save order: timeout")).Once()

		w := postOrder(r, validOrder)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"detail":"could not save order: timeout"}`, w.Body.String())
	})

	t.Run("Store not configured", func(t *testing.T) {
		mockSvc := new(mocks.MockOrderService)
		r := newTestRouter(mockSvc)
		mockSvc.On("CreateOrder", mock.Anything, mock.Anything).Return(nil, docstore.ErrNotConfigured).Once()

		w := postOrder(r, validOrder)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.JSONEq(t, `{"detail":"Database not configured"}`, w.Body.String())
	})
}

func TestOrderHandler_StoresOrders(t *testing.T) {
	store := docstoretest.NewMemoryStore("dyfn")
	r := newTestRouter(service.NewOrderService(repository.NewDocumentOrderRepository(store), nil))

	w := postOrder(r, validOrder)
	require.Equal(t, http.StatusOK, w.Code)
	var resp domain.CreateOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, domain.StatusReceived, resp.Status)

	docs, err := store.GetDocuments(context.Background(), "order", docstore.Filter{}, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, resp.ID, docs[0].ID)

	var stored map[string]any
	require.NoError(t, docs[0].Decode(&stored))
	assert.Equal(t, "received", stored["status"])
	assert.Equal(t, 49.98, stored["total"])
	assert.Contains(t, stored, "created_at")

	var errBody httpserver.ErrorResponse
	w = postOrder(r, `{}`)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &errBody))
	assert.NotEmpty(t, errBody.Detail)
}

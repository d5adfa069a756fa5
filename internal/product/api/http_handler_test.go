package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ridloal/dyfn-shop/internal/platform/docstore"
	"github.com/ridloal/dyfn-shop/internal/platform/httpserver"
	pDomain "github.com/ridloal/dyfn-shop/internal/product/domain"
	"github.com/ridloal/dyfn-shop/internal/product/service/mocks"
)

func newTestRouter(h *ProductHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r.Group("/api"))
	return r
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func detailOf(t *testing.T, w *httptest.ResponseRecorder) string {
	var body httpserver.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Detail
}

func TestProductHandler_ListProducts(t *testing.T) {
	t.Run("Defaults and response shape", func(t *testing.T) {
		mockSvc := new(mocks.MockProductService)
		r := newTestRouter(NewProductHandler(mockSvc))
		mockSvc.On("ListProducts", mock.Anything, pDomain.ProductQuery{Limit: 100}).Return([]pDomain.Product{
			{ID: "65f0", Title: "Classic DYFN Tee", Price: decimal.RequireFromString("24.99"), Category: "tshirt", InStock: true, Sizes: []string{"S"}},
		}, nil).Once()

		w := do(r, http.MethodGet, "/api/products", "")

		require.Equal(t, http.StatusOK, w.Code)
		var got []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 1)
		assert.Equal(t, "65f0", got[0]["id"])
		assert.Equal(t, 24.99, got[0]["price"])
		assert.NotContains(t, got[0], "_id")
		mockSvc.AssertExpectations(t)
	})

	t.Run("Query parameters", func(t *testing.T) {
		mockSvc := new(mocks.MockProductService)
		r := newTestRouter(NewProductHandler(mockSvc))
		want := pDomain.ProductQuery{Category: "hoodie", Search: "Fleece", Limit: 2}
		mockSvc.On("ListProducts", mock.Anything, want).Return([]pDomain.Product{}, nil).Once()

		w := do(r, http.MethodGet, "/api/products?category=hoodie&search=Fleece&limit=2", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
		mockSvc.AssertExpectations(t)
	})

	t.Run("Malformed limit", func(t *testing.T) {
		mockSvc := new(mocks.MockProductService)
		r := newTestRouter(NewProductHandler(mockSvc))

		assert.Equal(t, http.StatusUnprocessableEntity, do(r, http.MethodGet, "/api/products?limit=ten", "").Code)
		assert.Equal(t, http.StatusUnprocessableEntity, do(r, http.MethodGet, "/api/products?limit=-1", "").Code)
		mockSvc.AssertNotCalled(t, "ListProducts", mock.Anything, mock.Anything)
	})

	t.Run("Store not configured", func(t *testing.T) {
		mockSvc := new(mocks.MockProductService)
		r := newTestRouter(NewProductHandler(mockSvc))
		mockSvc.On("ListProducts", mock.Anything, mock.Anything).Return(nil, docstore.ErrNotConfigured).Once()

		w := do(r, http.MethodGet, "/api/products", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Database not configured", detailOf(t, w))
	})

	t.Run("Store failure", func(t *testing.T) {
		mockSvc := new(mocks.MockProductService)
		r := newTestRouter(NewProductHandler(mockSvc))
		mockSvc.On("ListProducts", mock.Anything, mock.Anything).Return(nil, errors.New("server selection error")).Once()

		w := do(r, http.MethodGet, "/api/products", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "server selection error", detailOf(t, w))
	})
}

func TestProductHandler_CreateProduct(t *testing.T) {
	t.Run("Successful creation", func(t *testing.T) {
		mockSvc := new(mocks.MockProductService)
		r := newTestRouter(NewProductHandler(mockSvc))
		mockSvc.On("CreateProduct", mock.Anything, mock.MatchedBy(func(req pDomain.CreateProductRequest) bool {
			return req.Title == "Cap" && req.Price != nil && req.Price.Equal(decimal.RequireFromString("12.5"))
		})).Return(&pDomain.CreateProductResponse{ID: "new-id"}, nil).Once()

		w := do(r, http.MethodPost, "/api/products", `{"title":"Cap","price":12.5,"category":"hat"}`)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"id":"new-id"}`, w.Body.String())
		mockSvc.AssertExpectations(t)
	})

	for name, body := range map[string]string{
		"Unknown field":    `{"title":"Cap","price":1,"category":"hat","colour":"red"}`,
		"Missing title":    `{"price":1,"category":"hat"}`,
		"Missing price":    `{"title":"Cap","category":"hat"}`,
		"Bad image url":    `{"title":"Cap","price":1,"category":"hat","image":"not a url"}`,
		"Price not number": `{"title":"Cap","price":"cheap","category":"hat"}`,
		"Empty body":       ``,
	} {
		t.Run("Validation: "+name, func(t *testing.T) {
			mockSvc := new(mocks.MockProductService)
			r := newTestRouter(NewProductHandler(mockSvc))

			w := do(r, http.MethodPost, "/api/products", body)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
			mockSvc.AssertNotCalled(t, "CreateProduct", mock.Anything, mock.Anything)
		})
	}

	t.Run("Domain validation", func(t *testing.T) {
		mockSvc := new(mocks.MockProductService)
		r := newTestRouter(NewProductHandler(mockSvc))
		mockSvc.On("CreateProduct", mock.Anything, mock.Anything).Return(nil, pDomain.ErrInvalidProduct).Once()

		w := do(r, http.MethodPost, "/api/products", `{"title":"Cap","price":-1,"category":"hat"}`)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Store failure carries the message", func(t *testing.T) {
		mockSvc := new(mocks.MockProductService)
		r := newTestRouter(NewProductHandler(mockSvc))
		mockSvc.On("CreateProduct", mock.Anything, mock.Anything).Return(nil, errors.New("could not save product: write rejected")).Once()

		w := do(r, http.MethodPost, "/api/products", `{"title":"Cap","price":1,"category":"hat"}`)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "could not save product: write rejected", detailOf(t, w))
	})
}

func TestProductHandler_SeedProducts(t *testing.T) {
	t.Run("Seeded", func(t *testing.T) {
		mockSvc := new(mocks.MockProductService)
		r := newTestRouter(NewProductHandler(mockSvc))
		mockSvc.On("SeedProducts", mock.Anything).Return(&pDomain.SeedResult{Seeded: true, Count: 4}, nil).Once()

		w := do(r, http.MethodPost, "/api/seed", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"seeded":true,"count":4}`, w.Body.String())
	})

	t.Run("Already seeded", func(t *testing.T) {
		mockSvc := new(mocks.MockProductService)
		r := newTestRouter(NewProductHandler(mockSvc))
		mockSvc.On("SeedProducts", mock.Anything).Return(&pDomain.SeedResult{Seeded: false, Message: "Products already exist"}, nil).Once()

		w := do(r, http.MethodPost, "/api/seed", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"seeded":false,"message":"Products already exist"}`, w.Body.String())
	})

	t.Run("Store not configured", func(t *testing.T) {
		mockSvc := new(mocks.MockProductService)
		r := newTestRouter(NewProductHandler(mockSvc))
		mockSvc.On("SeedProducts", mock.Anything).Return(nil, errors.Join(errors.New("could not count products"), docstore.ErrNotConfigured)).Once()

		w := do(r, http.MethodPost, "/api/seed", "")

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Database not configured", detailOf(t, w))
	})
}

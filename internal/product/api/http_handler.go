package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/dyfn-shop/internal/platform/docstore"
	"github.com/ridloal/dyfn-shop/internal/platform/httpserver"
	"github.com/ridloal/dyfn-shop/internal/platform/logger"
	"github.com/ridloal/dyfn-shop/internal/product/domain"
	"github.com/ridloal/dyfn-shop/internal/product/service"
)

const storeNotConfigured = "Database not configured"

type ProductHandler struct {
	productService service.ProductService
}

func NewProductHandler(ps service.ProductService) *ProductHandler {
	return &ProductHandler{productService: ps}
}

func (h *ProductHandler) RegisterRoutes(router *gin.RouterGroup) {
	productRoutes := router.Group("/products")
	{
		productRoutes.GET("", h.ListProducts)
		productRoutes.POST("", h.CreateProduct)
	}
	router.POST("/seed", h.SeedProducts)
}

type listProductsQuery struct {
	Category string `form:"category"`
	Search   string `form:"search"`
	Limit    *int64 `form:"limit" binding:"omitempty,min=0"`
}

// productResponse is the wire shape of a product: text id, numeric price.
type productResponse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Image       string   `json:"image"`
	InStock     bool     `json:"in_stock"`
	Sizes       []string `json:"sizes"`
}

func toResponse(p domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price.InexactFloat64(),
		Category:    p.Category,
		Image:       p.Image,
		InStock:     p.InStock,
		Sizes:       p.Sizes,
	}
}

// ListProducts serves GET /products?category=&search=&limit=. limit
// defaults to 100 and has no upper bound; 0 returns every match and a
// negative value is rejected with 422 before the store is queried.
func (h *ProductHandler) ListProducts(c *gin.Context) {
	var query listProductsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		httpserver.FailValidation(c, err)
		return
	}

	q := domain.ProductQuery{
		Category: query.Category,
		Search:   query.Search,
		Limit:    domain.DefaultListLimit,
	}
	if query.Limit != nil {
		q.Limit = *query.Limit
	}

	products, err := h.productService.ListProducts(c.Request.Context(), q)
	if err != nil {
		h.fail(c, "ListProducts", err)
		return
	}

	resp := make([]productResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, toResponse(p))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req domain.CreateProductRequest
	if err := httpserver.BindJSON(c, &req); err != nil {
		httpserver.FailValidation(c, err)
		return
	}

	resp, err := h.productService.CreateProduct(c.Request.Context(), req)
	if err != nil {
		h.fail(c, "CreateProduct", err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ProductHandler) SeedProducts(c *gin.Context) {
	res, err := h.productService.SeedProducts(c.Request.Context())
	if err != nil {
		h.fail(c, "SeedProducts", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ProductHandler) fail(c *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidProduct), errors.Is(err, domain.ErrInvalidQuery):
		httpserver.FailValidation(c, err)
	case errors.Is(err, docstore.ErrNotConfigured):
		httpserver.Fail(c, http.StatusInternalServerError, storeNotConfigured)
	default:
		logger.Error(op+": service error", err)
		httpserver.Fail(c, http.StatusInternalServerError, err.Error())
	}
}

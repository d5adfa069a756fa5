package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/dyfn-shop/internal/order/domain"
	"github.com/ridloal/dyfn-shop/internal/order/service"
	"github.com/ridloal/dyfn-shop/internal/platform/docstore"
	"github.com/ridloal/dyfn-shop/internal/platform/httpserver"
	"github.com/ridloal/dyfn-shop/internal/platform/logger"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(os service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: os}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orderRoutes := router.Group("/orders")
	{
		orderRoutes.POST("", h.CreateOrder)
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req domain.CreateOrderRequest
	if err := httpserver.BindJSON(c, &req); err != nil {
		httpserver.FailValidation(c, err)
		return
	}

	resp, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidOrder):
			httpserver.FailValidation(c, err)
		case errors.Is(err, docstore.ErrNotConfigured):
			httpserver.Fail(c, http.StatusInternalServerError, "Database not configured")
		default:
			logger.Error("CreateOrder Hdl: service error", err)
			httpserver.Fail(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}

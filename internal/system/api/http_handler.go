package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ridloal/dyfn-shop/internal/system/domain"
	"github.com/ridloal/dyfn-shop/internal/system/service"
)

const (
	rootMessage  = "dyfn backend is running"
	helloMessage = "Hello from dyfn backend!"
)

type SystemHandler struct {
	diagnostics service.DiagnosticsService
}

func NewSystemHandler(ds service.DiagnosticsService) *SystemHandler {
	return &SystemHandler{diagnostics: ds}
}

// RegisterRoutes mounts the liveness and diagnostics endpoints. router is
// expected to be the engine root, not the /api group.
func (h *SystemHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", h.Root)
	router.GET("/test", h.Test)
	router.GET("/api/hello", h.Hello)
}

func (h *SystemHandler) Root(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Message{Message: rootMessage})
}

func (h *SystemHandler) Hello(c *gin.Context) {
	c.JSON(http.StatusOK, domain.Message{Message: helloMessage})
}

// Test always answers 200; store problems are reported in the body.
func (h *SystemHandler) Test(c *gin.Context) {
	c.JSON(http.StatusOK, h.diagnostics.Check(c.Request.Context()))
}

package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ridloal/dyfn-shop/internal/platform/logger"
	"github.com/ridloal/dyfn-shop/internal/platform/metrics"
)

const (
	RequestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

// NewRouter returns an engine with recovery, request ids, access logging,
// permissive CORS and, when m is not nil, request metrics on /metrics.
func NewRouter(m *metrics.ServerMetrics) *gin.Engine {
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.Use(gin.Recovery(), RequestID(), AccessLog(), EchoRequestedHeaders(), cors.New(CORSConfig()))

	if m != nil {
		r.Use(m.Middleware())
		r.GET("/metrics", gin.WrapH(m.Handler()))
	}
	return r
}

// CORSConfig allows every origin, method and header. The origin is echoed
// back so credentialed requests work; see EchoRequestedHeaders for headers.
func CORSConfig() cors.Config {
	return cors.Config{
		AllowOriginFunc: func(string) bool { return true },
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowHeaders:     []string{"*"},
		ExposeHeaders:    []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// EchoRequestedHeaders answers a preflight's Access-Control-Request-Headers
// in place of the "*" wildcard, which browsers take literally on
// credentialed requests. It must run before the cors middleware.
func EchoRequestedHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		requested := c.GetHeader("Access-Control-Request-Headers")
		if c.Request.Method == http.MethodOptions && requested != "" {
			c.Writer = &preflightWriter{ResponseWriter: c.Writer, requested: requested}
		}
		c.Next()
	}
}

// preflightWriter rewrites the allowed headers just before they are sent.
type preflightWriter struct {
	gin.ResponseWriter
	requested string
	done      bool
}

func (w *preflightWriter) rewrite() {
	if w.done {
		return
	}
	w.done = true
	h := w.Header()
	if h.Get("Access-Control-Allow-Headers") == "*" {
		h.Set("Access-Control-Allow-Headers", w.requested)
		h.Add("Vary", "Access-Control-Request-Headers")
	}
}

func (w *preflightWriter) WriteHeader(code int) {
	w.rewrite()
	w.ResponseWriter.WriteHeader(code)
}

func (w *preflightWriter) WriteHeaderNow() {
	w.rewrite()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *preflightWriter) Write(b []byte) (int, error) {
	w.rewrite()
	return w.ResponseWriter.Write(b)
}

func (w *preflightWriter) WriteString(s string) (int, error) {
	w.rewrite()
	return w.ResponseWriter.WriteString(s)
}

func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start).Round(time.Microsecond),
			"request_id", c.GetString(requestIDKey),
		)
		for _, e := range c.Errors {
			logger.Error("request error", e.Err, "request_id", c.GetString(requestIDKey))
		}
	}
}

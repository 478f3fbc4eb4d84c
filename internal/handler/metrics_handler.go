package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	appErrors "github.com/noah-isme/training-enrollment-api/pkg/errors"
	"github.com/noah-isme/training-enrollment-api/pkg/response"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// MetricsHandler exposes observability endpoints.
type MetricsHandler struct {
	metrics http.Handler
	store   Pinger
	timeout time.Duration
}

// NewMetricsHandler constructs a metrics handler. store may be nil when no
// readiness check is wanted.
func NewMetricsHandler(metrics http.Handler, store Pinger) *MetricsHandler {
	return &MetricsHandler{metrics: metrics, store: store, timeout: 2 * time.Second}
}

// Prometheus serves the Prometheus metrics endpoint.
func (h *MetricsHandler) Prometheus(c *gin.Context) {
	if h.metrics == nil {
		c.Status(http.StatusServiceUnavailable)
		return
	}
	h.metrics.ServeHTTP(c.Writer, c.Request)
}

// Health responds with a generic OK payload for liveness probes.
func (h *MetricsHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready reports whether the record store answers a ping.
func (h *MetricsHandler) Ready(c *gin.Context) {
	if h.store != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
		defer cancel()
		if err := h.store.PingContext(ctx); err != nil {
			response.Error(c, appErrors.Wrap(err, appErrors.ErrStoreUnavailable.Code, http.StatusServiceUnavailable, "record store not reachable"))
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

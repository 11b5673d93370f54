package http

import (
	"runtime"
	"sync/atomic"
	"time"

	"github.com/gofiber/fiber/v2"
)

// MetricsHandler expone un snapshot del runtime para el panel de estado
// (solo admin). Los valores son reales, no simulados.
type MetricsHandler struct {
	startedAt time.Time
	requests  atomic.Int64
}

// NewMetricsHandler construye el handler. startedAt marca el arranque del proceso.
func NewMetricsHandler(startedAt time.Time) *MetricsHandler {
	return &MetricsHandler{startedAt: startedAt}
}

// CountRequests middleware que incrementa el contador global de requests.
func (h *MetricsHandler) CountRequests(c *fiber.Ctx) error {
	h.requests.Add(1)
	return c.Next()
}

// Get godoc
// @Summary      Métricas del runtime
// @Tags         metrics
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Router       /api/metrics [get]
func (h *MetricsHandler) Get(c *fiber.Ctx) error {
	var mem runtime.MemStats
	runtime.ReadMemStats(&mem)

	return c.JSON(fiber.Map{
		"uptime_seconds":   int64(time.Since(h.startedAt).Seconds()),
		"started_at":       h.startedAt.UTC().Format(time.RFC3339),
		"goroutines":       runtime.NumGoroutine(),
		"heap_alloc_bytes": mem.HeapAlloc,
		"heap_sys_bytes":   mem.HeapSys,
		"gc_runs":          mem.NumGC,
		"requests_total":   h.requests.Load(),
		"go_version":       runtime.Version(),
	})
}

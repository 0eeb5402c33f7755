package handler

import (
	"net/http"

	"storeadmin/internal/app/admin/service"
	"storeadmin/pkg/metrics"

	"github.com/gin-gonic/gin"
)

// DashboardHandler обрабатывает запросы главного экрана
type DashboardHandler struct {
	dashboard service.DashboardLoader
}

func NewDashboardHandler(dashboard service.DashboardLoader) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard}
}

// GetDashboard обрабатывает GET /api/dashboard
// Снапшот всегда собирается заново: главный экран показывает живые данные,
// прогретая фоновая копия используется только как fallback при сбое
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	snapshot, err := h.dashboard.Load(c.Request.Context())
	metrics.RecordDashboardRefresh("storeadmin", "request", err)
	if err != nil {
		if stale, ok := h.dashboard.Snapshot(); ok {
			c.Header("X-Snapshot-Stale", "true")
			c.JSON(http.StatusOK, stale)
			return
		}
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, snapshot)
}

package reporting

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register wires the dashboard endpoints under the given group.
func (h *Handler) Register(api gin.IRouter) {
	dashboard := api.Group("/dashboard")
	dashboard.GET("/stats", h.getStats)
	dashboard.POST("/stats/refresh", h.refreshStats)
}

func (h *Handler) getStats(c *gin.Context) {
	stats, err := h.service.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to load stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": stats})
}

func (h *Handler) refreshStats(c *gin.Context) {
	stats, err := h.service.Refresh(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": "failed to refresh stats"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "stats": stats})
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/service"
)

type recordStatusReq struct {
	Status    string `json:"status" binding:"required"`
	UpdatedBy string `json:"updated_by"`
	Comments  string `json:"comments"`
}

func (h *Handler) recordProjectStatus(c *gin.Context) {
	projectID, ok := pathProjectID(c)
	if !ok {
		return
	}
	var req recordStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	e, err := h.statusHistory.Record(c.Request.Context(), service.StatusEntryCreate{
		ProjectID: projectID,
		Status:    domain.ProjectStatus(req.Status),
		UpdatedBy: req.UpdatedBy,
		Comments:  req.Comments,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "status_entry": e})
}

func (h *Handler) listProjectStatusHistory(c *gin.Context) {
	projectID, ok := pathProjectID(c)
	if !ok {
		return
	}
	items, err := h.statusHistory.History(c.Request.Context(), projectID,
		queryInt(c, "skip", 0), queryInt(c, "limit", 100))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "status_history": items})
}

func (h *Handler) latestProjectStatus(c *gin.Context) {
	projectID, ok := pathProjectID(c)
	if !ok {
		return
	}
	e, err := h.statusHistory.Latest(c.Request.Context(), projectID)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "status_entry": e})
}

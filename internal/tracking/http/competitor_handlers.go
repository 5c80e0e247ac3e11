package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/service"
)

type createCompetitorReq struct {
	Payor       string `json:"payor" binding:"required"`
	Product     string `json:"product"`
	ProductCode string `json:"product_code"`
	EI          bool   `json:"ei"`
	CS          bool   `json:"cs"`
	MR          bool   `json:"mr"`
	EditedBy    string `json:"edited_by"`
}

func (h *Handler) createCompetitor(c *gin.Context) {
	projectID, ok := pathProjectID(c)
	if !ok {
		return
	}
	var req createCompetitorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	m, err := h.competitors.Create(c.Request.Context(), service.CompetitorCreate{
		ProjectID:    projectID,
		Payor:        req.Payor,
		Product:      req.Product,
		ProductCode:  req.ProductCode,
		EI:           req.EI,
		CS:           req.CS,
		MR:           req.MR,
		LastEditedBy: req.EditedBy,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "competitor": m})
}

func (h *Handler) listCompetitors(c *gin.Context) {
	projectID, ok := pathProjectID(c)
	if !ok {
		return
	}
	items, err := h.competitors.ListByProject(c.Request.Context(), projectID,
		queryInt(c, "skip", 0), queryInt(c, "limit", 100))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "competitors": items})
}

func (h *Handler) getCompetitor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.competitors.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "competitor": m})
}

type updateCompetitorReq struct {
	Payor       *string `json:"payor"`
	Product     *string `json:"product"`
	ProductCode *string `json:"product_code"`
	EI          *bool   `json:"ei"`
	CS          *bool   `json:"cs"`
	MR          *bool   `json:"mr"`
	EditedBy    *string `json:"edited_by"`
}

func (h *Handler) updateCompetitor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateCompetitorReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	m, err := h.competitors.Update(c.Request.Context(), id, domain.CompetitorPatch{
		Payor:        req.Payor,
		Product:      req.Product,
		ProductCode:  req.ProductCode,
		EI:           req.EI,
		CS:           req.CS,
		MR:           req.MR,
		LastEditedBy: req.EditedBy,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "competitor": m})
}

func (h *Handler) deleteCompetitor(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.competitors.Delete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "competitor not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

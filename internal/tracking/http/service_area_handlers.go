package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/service"
)

type createServiceAreaReq struct {
	Region        string `json:"region"`
	State         string `json:"state"`
	County        string `json:"county"`
	ReportInclude bool   `json:"report_include"`
	MaxMileage    *int   `json:"max_mileage"`
}

func (h *Handler) createServiceArea(c *gin.Context) {
	projectID, ok := pathProjectID(c)
	if !ok {
		return
	}
	var req createServiceAreaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	a, err := h.serviceAreas.Create(c.Request.Context(), service.ServiceAreaCreate{
		ProjectID:     projectID,
		Region:        req.Region,
		State:         req.State,
		County:        req.County,
		ReportInclude: req.ReportInclude,
		MaxMileage:    req.MaxMileage,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "service_area": a})
}

func (h *Handler) listServiceAreas(c *gin.Context) {
	projectID, ok := pathProjectID(c)
	if !ok {
		return
	}
	items, err := h.serviceAreas.ListByProject(c.Request.Context(), projectID,
		queryInt(c, "skip", 0), queryInt(c, "limit", 100))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "service_areas": items})
}

func (h *Handler) getServiceArea(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := h.serviceAreas.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "service_area": a})
}

type updateServiceAreaReq struct {
	Region        *string `json:"region"`
	State         *string `json:"state"`
	County        *string `json:"county"`
	ReportInclude *bool   `json:"report_include"`
	MaxMileage    *int    `json:"max_mileage"`
}

func (h *Handler) updateServiceArea(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateServiceAreaReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	a, err := h.serviceAreas.Update(c.Request.Context(), id, domain.ServiceAreaPatch{
		Region:        req.Region,
		State:         req.State,
		County:        req.County,
		ReportInclude: req.ReportInclude,
		MaxMileage:    req.MaxMileage,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "service_area": a})
}

func (h *Handler) deleteServiceArea(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.serviceAreas.Delete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "service area not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

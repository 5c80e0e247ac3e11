package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/repository"
	"github.com/cs-exp/tracker-backend/internal/tracking/service"
)

type createProjectReq struct {
	Code        string `json:"code"`
	Type        string `json:"type" binding:"required"`
	Description string `json:"description"`
	Analyst     string `json:"analyst"`
	Manager     string `json:"manager"`
	Status      string `json:"status"`
	EditedBy    string `json:"edited_by"`
}

func (h *Handler) createProject(c *gin.Context) {
	var req createProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	p, err := h.projects.Create(c.Request.Context(), service.ProjectCreate{
		Code:         req.Code,
		Type:         domain.ProjectType(req.Type),
		Description:  req.Description,
		Analyst:      req.Analyst,
		Manager:      req.Manager,
		Status:       domain.ProjectStatus(req.Status),
		LastEditedBy: req.EditedBy,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) getProject(c *gin.Context) {
	id, ok := pathProjectID(c)
	if !ok {
		return
	}
	p, err := h.projects.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) listProjects(c *gin.Context) {
	f := repository.ProjectFilter{
		Search: c.Query("search"),
		Skip:   queryInt(c, "skip", 0),
		Limit:  queryInt(c, "limit", 100),
	}
	if v := c.Query("status"); v != "" {
		status, err := domain.ParseProjectStatus(v)
		if err != nil {
			respondErr(c, err)
			return
		}
		f.Status = &status
	}
	if v := c.Query("analyst"); v != "" {
		f.Analyst = &v
	}

	items, err := h.projects.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

type updateProjectReq struct {
	Type        *string `json:"type"`
	Description *string `json:"description"`
	Analyst     *string `json:"analyst"`
	Manager     *string `json:"manager"`
	Status      *string `json:"status"`
	EditedBy    *string `json:"edited_by"`
}

func (h *Handler) updateProject(c *gin.Context) {
	id, ok := pathProjectID(c)
	if !ok {
		return
	}
	var req updateProjectReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	patch := domain.ProjectPatch{
		Description:  req.Description,
		Analyst:      req.Analyst,
		Manager:      req.Manager,
		LastEditedBy: req.EditedBy,
	}
	if req.Type != nil {
		t := domain.ProjectType(*req.Type)
		patch.Type = &t
	}
	if req.Status != nil {
		s := domain.ProjectStatus(*req.Status)
		patch.Status = &s
	}

	p, err := h.projects.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) deleteProject(c *gin.Context) {
	id, ok := pathProjectID(c)
	if !ok {
		return
	}
	deleted, err := h.projects.Delete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

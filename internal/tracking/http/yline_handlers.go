package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/repository"
	"github.com/cs-exp/tracker-backend/internal/tracking/service"
)

type createYLineReq struct {
	IPANumber       string   `json:"ipa_number" binding:"required"`
	ProductCode     string   `json:"product_code" binding:"required"`
	Description     string   `json:"description"`
	PreAwardStatus  string   `json:"pre_award_status"`
	PostAwardStatus string   `json:"post_award_status"`
	EstimatedValue  *float64 `json:"estimated_value"`
	ActualValue     *float64 `json:"actual_value"`
	Status          string   `json:"status"`
}

func (r createYLineReq) toCreate() service.YLineCreate {
	return service.YLineCreate{
		IPANumber:       r.IPANumber,
		ProductCode:     r.ProductCode,
		Description:     r.Description,
		PreAwardStatus:  r.PreAwardStatus,
		PostAwardStatus: r.PostAwardStatus,
		EstimatedValue:  r.EstimatedValue,
		ActualValue:     r.ActualValue,
		Status:          domain.YLineStatus(r.Status),
	}
}

func (h *Handler) createYLine(c *gin.Context) {
	projectID, ok := pathProjectID(c)
	if !ok {
		return
	}
	var req createYLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	y, err := h.yLines.Create(c.Request.Context(), projectID, req.toCreate())
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "y_line": y})
}

type bulkCreateYLinesReq struct {
	Rows []createYLineReq `json:"rows" binding:"required"`
}

// bulkCreateYLines is the all-or-nothing pathway: the whole batch commits
// or none of it does.
func (h *Handler) bulkCreateYLines(c *gin.Context) {
	projectID, ok := pathProjectID(c)
	if !ok {
		return
	}
	var req bulkCreateYLinesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	payloads := make([]service.YLineCreate, 0, len(req.Rows))
	for _, r := range req.Rows {
		payloads = append(payloads, r.toCreate())
	}

	out, err := h.yLines.BulkCreate(c.Request.Context(), projectID, payloads)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "y_lines": out})
}

type importYLinesReq struct {
	Rows []struct {
		createYLineReq
		PreAward  bool `json:"pre_award"`
		PostAward bool `json:"post_award"`
	} `json:"rows" binding:"required"`
}

// importYLines is the best-effort pathway for legacy flag-style payloads.
func (h *Handler) importYLines(c *gin.Context) {
	projectID, ok := pathProjectID(c)
	if !ok {
		return
	}
	var req importYLinesReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	rows := make([]service.YLineImportRow, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, service.YLineImportRow{
			YLineCreate: r.toCreate(),
			PreAward:    r.PreAward,
			PostAward:   r.PostAward,
		})
	}

	report, err := h.imports.ImportYLines(c.Request.Context(), projectID, rows)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "report": report})
}

type bulkUpdateStatusReq struct {
	IDs    []int64 `json:"ids" binding:"required"`
	Status string  `json:"status" binding:"required"`
}

func (h *Handler) bulkUpdateYLineStatus(c *gin.Context) {
	var req bulkUpdateStatusReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	out, err := h.yLines.BulkUpdateStatus(c.Request.Context(), req.IDs, domain.YLineStatus(req.Status))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "y_lines": out})
}

func (h *Handler) getYLine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	y, err := h.yLines.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "y_line": y})
}

func (h *Handler) listYLines(c *gin.Context) {
	f := repository.YLineFilter{
		MinValue: queryFloat(c, "min_value"),
		MaxValue: queryFloat(c, "max_value"),
		Search:   c.Query("search"),
		Skip:     queryInt(c, "skip", 0),
		Limit:    queryInt(c, "limit", 100),
	}
	pid, ok := queryID(c, "project_id")
	if !ok {
		return
	}
	f.ProjectID = pid
	if v := c.Query("status"); v != "" {
		status, err := domain.ParseYLineStatus(v)
		if err != nil {
			respondErr(c, err)
			return
		}
		f.Status = &status
	}

	items, err := h.yLines.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "y_lines": items})
}

type updateYLineReq struct {
	ProductCode     *string  `json:"product_code"`
	Description     *string  `json:"description"`
	PreAwardStatus  *string  `json:"pre_award_status"`
	PostAwardStatus *string  `json:"post_award_status"`
	EstimatedValue  *float64 `json:"estimated_value"`
	ActualValue     *float64 `json:"actual_value"`
	Status          *string  `json:"status"`
}

func (h *Handler) updateYLine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateYLineReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	patch := domain.YLinePatch{
		ProductCode:     req.ProductCode,
		Description:     req.Description,
		PreAwardStatus:  req.PreAwardStatus,
		PostAwardStatus: req.PostAwardStatus,
		EstimatedValue:  req.EstimatedValue,
		ActualValue:     req.ActualValue,
	}
	if req.Status != nil {
		s := domain.YLineStatus(*req.Status)
		patch.Status = &s
	}

	y, err := h.yLines.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "y_line": y})
}

func (h *Handler) deleteYLine(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.yLines.Delete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "y_line not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/repository"
	"github.com/cs-exp/tracker-backend/internal/tracking/service"
)

type createCSPLOBReq struct {
	ProjectID       int64      `json:"project_id" binding:"required"`
	CSPCode         string     `json:"csp_code" binding:"required"`
	LOBType         string     `json:"lob_type" binding:"required"`
	Description     string     `json:"description"`
	Status          string     `json:"status"`
	EffectiveDate   time.Time  `json:"effective_date" binding:"required"`
	TerminationDate *time.Time `json:"termination_date"`
}

func (h *Handler) createCSPLOB(c *gin.Context) {
	var req createCSPLOBReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	m, err := h.cspLOBs.Create(c.Request.Context(), service.CSPLOBCreate{
		ProjectID:       req.ProjectID,
		CSPCode:         req.CSPCode,
		LOBType:         domain.LOBType(req.LOBType),
		Description:     req.Description,
		Status:          domain.CSPStatus(req.Status),
		EffectiveDate:   req.EffectiveDate,
		TerminationDate: req.TerminationDate,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "csp_lob": m})
}

func (h *Handler) getCSPLOB(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	m, err := h.cspLOBs.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "csp_lob": m})
}

func (h *Handler) listCSPLOBs(c *gin.Context) {
	f := repository.CSPLOBFilter{
		Skip:  queryInt(c, "skip", 0),
		Limit: queryInt(c, "limit", 100),
	}
	pid, ok := queryID(c, "project_id")
	if !ok {
		return
	}
	f.ProjectID = pid
	if v := c.Query("lob_type"); v != "" {
		lob, err := domain.ParseLOBType(v)
		if err != nil {
			respondErr(c, err)
			return
		}
		f.LOBType = &lob
	}
	if v := c.Query("status"); v != "" {
		status, err := domain.ParseCSPStatus(v)
		if err != nil {
			respondErr(c, err)
			return
		}
		f.Status = &status
	}

	items, err := h.cspLOBs.List(c.Request.Context(), f)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "csp_lobs": items})
}

type updateCSPLOBReq struct {
	CSPCode         *string    `json:"csp_code"`
	LOBType         *string    `json:"lob_type"`
	Description     *string    `json:"description"`
	Status          *string    `json:"status"`
	EffectiveDate   *time.Time `json:"effective_date"`
	TerminationDate *time.Time `json:"termination_date"`
}

func (h *Handler) updateCSPLOB(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateCSPLOBReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	patch := domain.CSPLOBPatch{
		Description:   req.Description,
		EffectiveDate: req.EffectiveDate,
	}
	if req.CSPCode != nil {
		patch.CSPCode = req.CSPCode
	}
	if req.LOBType != nil {
		lob := domain.LOBType(*req.LOBType)
		patch.LOBType = &lob
	}
	if req.Status != nil {
		s := domain.CSPStatus(*req.Status)
		patch.Status = &s
	}
	if req.TerminationDate != nil {
		patch.TerminationDate = &req.TerminationDate
	}

	m, err := h.cspLOBs.Update(c.Request.Context(), id, patch)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "csp_lob": m})
}

func (h *Handler) deleteCSPLOB(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.cspLOBs.Delete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "csp_lob not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

type importCSPLOBReq struct {
	Rows []createCSPLOBReq `json:"rows" binding:"required"`
}

// importCSPLOBs is the best-effort pathway: every row is attempted and a
// per-row report comes back with 200 regardless of individual failures.
func (h *Handler) importCSPLOBs(c *gin.Context) {
	var req importCSPLOBReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	rows := make([]service.CSPLOBCreate, 0, len(req.Rows))
	for _, r := range req.Rows {
		rows = append(rows, service.CSPLOBCreate{
			ProjectID:       r.ProjectID,
			CSPCode:         r.CSPCode,
			LOBType:         domain.LOBType(r.LOBType),
			Description:     r.Description,
			Status:          domain.CSPStatus(r.Status),
			EffectiveDate:   r.EffectiveDate,
			TerminationDate: r.TerminationDate,
		})
	}

	report, err := h.imports.ImportCSPLOBs(c.Request.Context(), rows)
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "report": report})
}

package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
	"github.com/cs-exp/tracker-backend/internal/tracking/service"
)

type createNoteReq struct {
	Note       string `json:"note" binding:"required"`
	ActionItem bool   `json:"action_item"`
	Category   string `json:"category"`
	AuthoredBy string `json:"authored_by"`
}

func (h *Handler) createNote(c *gin.Context) {
	projectID, ok := pathProjectID(c)
	if !ok {
		return
	}
	var req createNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	n, err := h.notes.Create(c.Request.Context(), service.NoteCreate{
		ProjectID:  projectID,
		Note:       req.Note,
		ActionItem: req.ActionItem,
		Category:   req.Category,
		AuthoredBy: req.AuthoredBy,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "note": n})
}

func (h *Handler) listNotes(c *gin.Context) {
	projectID, ok := pathProjectID(c)
	if !ok {
		return
	}
	items, err := h.notes.ListByProject(c.Request.Context(), projectID,
		queryInt(c, "skip", 0), queryInt(c, "limit", 100))
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "notes": items})
}

type updateNoteReq struct {
	Note       *string `json:"note"`
	ActionItem *bool   `json:"action_item"`
	Category   *string `json:"category"`
}

func (h *Handler) updateNote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req updateNoteReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	n, err := h.notes.Update(c.Request.Context(), id, domain.ProjectNotePatch{
		Note:       req.Note,
		ActionItem: req.ActionItem,
		Category:   req.Category,
	})
	if err != nil {
		respondErr(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "note": n})
}

func (h *Handler) deleteNote(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	deleted, err := h.notes.Delete(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "note not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

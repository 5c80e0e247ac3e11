package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cs-exp/tracker-backend/internal/tracking/domain"
)

// respondErr maps the core's typed errors onto HTTP statuses. The core never
// renders; this is the only place outcomes become status codes.
func respondErr(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{
			"ok": false, "error": ve.Message, "field": ve.Field, "reason": ve.Reason,
		})
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": err.Error()})
		return
	}
	var ce *domain.ConflictError
	if errors.As(err, &ce) {
		c.JSON(http.StatusConflict, gin.H{"ok": false, "error": ce.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid id"})
		return 0, false
	}
	return id, true
}

func pathProjectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("project_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid project id"})
		return 0, false
	}
	return id, true
}

// queryInt falls back to the default on missing, malformed, or negative
// values; a negative skip or limit would otherwise surface as a store error.
func queryInt(c *gin.Context, key string, def int) int {
	v := c.Query(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return n
}

// queryID parses an optional positive id predicate. Malformed or
// non-positive values are rejected with 400 rather than silently widening
// the listing.
func queryID(c *gin.Context, key string) (*int64, bool) {
	v := c.Query(key)
	if v == "" {
		return nil, true
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid " + key})
		return nil, false
	}
	return &id, true
}

func queryFloat(c *gin.Context, key string) *float64 {
	v := c.Query(key)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return nil
	}
	return &f
}

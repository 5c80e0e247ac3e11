package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestQueryIntFallsBackOnBadValues(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/?skip=-5&limit=-1&junk=abc", nil)

	// Negative or malformed values never reach OFFSET/LIMIT clauses.
	assert.Equal(t, 0, queryInt(c, "skip", 0))
	assert.Equal(t, 100, queryInt(c, "limit", 100))
	assert.Equal(t, 0, queryInt(c, "junk", 0))
	assert.Equal(t, 25, queryInt(c, "absent", 25))
}

func TestListingsRejectBadProjectIDFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// Handlers bail on the bad predicate before any service call, so wiring
	// real services is unnecessary here.
	h := New(nil, nil, nil, nil, nil, nil, nil, nil)
	router := gin.New()
	h.Register(router.Group("/api/v1"))

	for _, target := range []string{
		"/api/v1/y-lines?project_id=abc",
		"/api/v1/y-lines?project_id=0",
		"/api/v1/y-lines?project_id=-3",
		"/api/v1/csp-lobs?project_id=abc",
		"/api/v1/csp-lobs?project_id=0",
	} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, target, nil))
		assert.Equal(t, http.StatusBadRequest, rr.Code, target)
	}
}

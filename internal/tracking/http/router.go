package http

import "github.com/gin-gonic/gin"

// Register wires the tracking endpoints under the given group.
func (h *Handler) Register(api gin.IRouter) {
	projects := api.Group("/projects")
	projects.POST("", h.createProject)
	projects.GET("", h.listProjects)
	projects.GET("/:project_id", h.getProject)
	projects.PATCH("/:project_id", h.updateProject)
	projects.DELETE("/:project_id", h.deleteProject)

	projects.POST("/:project_id/y-lines", h.createYLine)
	projects.POST("/:project_id/y-lines/bulk", h.bulkCreateYLines)
	projects.POST("/:project_id/y-lines/import", h.importYLines)

	projects.POST("/:project_id/notes", h.createNote)
	projects.GET("/:project_id/notes", h.listNotes)

	projects.POST("/:project_id/competitors", h.createCompetitor)
	projects.GET("/:project_id/competitors", h.listCompetitors)

	projects.POST("/:project_id/service-areas", h.createServiceArea)
	projects.GET("/:project_id/service-areas", h.listServiceAreas)

	projects.POST("/:project_id/status-history", h.recordProjectStatus)
	projects.GET("/:project_id/status-history", h.listProjectStatusHistory)
	projects.GET("/:project_id/status-history/latest", h.latestProjectStatus)

	cspLOBs := api.Group("/csp-lobs")
	cspLOBs.POST("", h.createCSPLOB)
	cspLOBs.GET("", h.listCSPLOBs)
	cspLOBs.GET("/:id", h.getCSPLOB)
	cspLOBs.PATCH("/:id", h.updateCSPLOB)
	cspLOBs.DELETE("/:id", h.deleteCSPLOB)
	cspLOBs.POST("/import", h.importCSPLOBs)

	yLines := api.Group("/y-lines")
	yLines.GET("", h.listYLines)
	yLines.GET("/:id", h.getYLine)
	yLines.PATCH("/:id", h.updateYLine)
	yLines.DELETE("/:id", h.deleteYLine)
	yLines.POST("/status", h.bulkUpdateYLineStatus)

	notes := api.Group("/notes")
	notes.PATCH("/:id", h.updateNote)
	notes.DELETE("/:id", h.deleteNote)

	competitors := api.Group("/competitors")
	competitors.GET("/:id", h.getCompetitor)
	competitors.PATCH("/:id", h.updateCompetitor)
	competitors.DELETE("/:id", h.deleteCompetitor)

	serviceAreas := api.Group("/service-areas")
	serviceAreas.GET("/:id", h.getServiceArea)
	serviceAreas.PATCH("/:id", h.updateServiceArea)
	serviceAreas.DELETE("/:id", h.deleteServiceArea)
}

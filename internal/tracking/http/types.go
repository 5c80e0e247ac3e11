package http

import "github.com/cs-exp/tracker-backend/internal/tracking/service"

// Handler bundles the dependencies for tracking HTTP endpoints.
type Handler struct {
	projects      *service.ProjectService
	cspLOBs       *service.CSPLOBService
	yLines        *service.YLineService
	notes         *service.NoteService
	imports       *service.ImportService
	competitors   *service.CompetitorService
	serviceAreas  *service.ServiceAreaService
	statusHistory *service.StatusHistoryService
}

func New(
	projects *service.ProjectService,
	cspLOBs *service.CSPLOBService,
	yLines *service.YLineService,
	notes *service.NoteService,
	imports *service.ImportService,
	competitors *service.CompetitorService,
	serviceAreas *service.ServiceAreaService,
	statusHistory *service.StatusHistoryService,
) *Handler {
	return &Handler{
		projects:      projects,
		cspLOBs:       cspLOBs,
		yLines:        yLines,
		notes:         notes,
		imports:       imports,
		competitors:   competitors,
		serviceAreas:  serviceAreas,
		statusHistory: statusHistory,
	}
}

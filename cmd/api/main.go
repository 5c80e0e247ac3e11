package main

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cs-exp/tracker-backend/config"
	"github.com/cs-exp/tracker-backend/internal/bootstrap"
	"github.com/cs-exp/tracker-backend/internal/reporting"
	"github.com/cs-exp/tracker-backend/internal/storage/postgres"
	trackinghttp "github.com/cs-exp/tracker-backend/internal/tracking/http"
	"github.com/cs-exp/tracker-backend/internal/tracking/repository"
	"github.com/cs-exp/tracker-backend/internal/tracking/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	bootstrap.SetGinMode(cfg.App.Environment)

	db, err := postgres.NewConnection(&cfg.Database)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		log.Fatalf("schema: %v", err)
	}

	pool, err := bootstrap.OpenPool(ctx, bootstrap.DBOptions{DSN: cfg.Database.DSN()})
	if err != nil {
		log.Fatalf("report pool: %v", err)
	}
	defer pool.Close()

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	projectRepo := repository.NewProjectRepository(db)
	cspLOBRepo := repository.NewCSPLOBRepository(db)
	yLineRepo := repository.NewYLineRepository(db)
	noteRepo := repository.NewNoteRepository(db)
	competitorRepo := repository.NewCompetitorRepository(db)
	serviceAreaRepo := repository.NewServiceAreaRepository(db)
	statusHistoryRepo := repository.NewStatusHistoryRepository(db)

	projectSvc := service.NewProjectService(projectRepo)
	cspLOBSvc := service.NewCSPLOBService(cspLOBRepo, projectRepo)
	yLineSvc := service.NewYLineService(yLineRepo, projectRepo)
	noteSvc := service.NewNoteService(noteRepo, projectRepo)
	importSvc := service.NewImportService(cspLOBSvc, yLineSvc)
	competitorSvc := service.NewCompetitorService(competitorRepo, projectRepo)
	serviceAreaSvc := service.NewServiceAreaService(serviceAreaRepo, projectRepo)
	statusHistorySvc := service.NewStatusHistoryService(statusHistoryRepo, projectRepo)

	statsSvc := reporting.NewService(reporting.NewPostgresSource(pool), rdb, 5*time.Minute)

	router := bootstrap.BuildRouter(bootstrap.RouterDeps{
		ServiceName: "tracker-backend",
		Version:     cfg.App.Version,
		DB:          db,
		Redis:       rdb,
		Tracking: trackinghttp.New(projectSvc, cspLOBSvc, yLineSvc, noteSvc, importSvc,
			competitorSvc, serviceAreaSvc, statusHistorySvc),
		Reporting: reporting.NewHandler(statsSvc),
	})

	addr := ":" + cfg.Server.Port
	log.Printf("listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("server: %v", err)
	}
}

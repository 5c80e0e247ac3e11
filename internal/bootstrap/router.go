package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	httpapi "github.com/cs-exp/tracker-backend/internal/api/http"
	"github.com/cs-exp/tracker-backend/internal/api/http/middleware"
	"github.com/cs-exp/tracker-backend/internal/reporting"
	trackinghttp "github.com/cs-exp/tracker-backend/internal/tracking/http"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *sql.DB
	Redis       *redis.Client
	Tracking    *trackinghttp.Handler
	Reporting   *reporting.Handler
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization", "X-Request-Id"}
	r.Use(cors.New(corsConfig))

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	api := r.Group("/api/v1")
	api.Use(middleware.RequestID())
	api.Use(middleware.RateLimit(rate.Limit(50), 100))

	dep.Tracking.Register(api)
	if dep.Reporting != nil {
		dep.Reporting.Register(api)
	}

	return r
}

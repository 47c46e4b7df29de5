package router

import (
	"net/http"
	"path/filepath"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/alexanderciuffreda/mannheim-planner/internal/config"
	"github.com/alexanderciuffreda/mannheim-planner/internal/handler"
	"github.com/alexanderciuffreda/mannheim-planner/internal/middleware"
	"github.com/alexanderciuffreda/mannheim-planner/internal/response"
)

// appVersion is reported by the health endpoint for container orchestration.
const appVersion = "1.0.0"

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Catalog *handler.CatalogHandler
	Export  *handler.ExportHandler
}

// SetupRouter configures the Gin engine with all middlewares and routes.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", response.HeaderRequestID}
	corsConfig.ExposeHeaders = []string{response.HeaderRequestID, "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Apply brotli middleware globally.
	router.Use(middleware.Brotli())

	// ─── Planner Page ──────────────────────────────────────────────────
	// The page shell and its assets; the planner itself runs client-side.
	// A missing web directory only disables the page, never the API.
	pages := filepath.Join(cfg.WebDir, "templates", "*.html")
	if matches, _ := filepath.Glob(pages); len(matches) > 0 {
		router.LoadHTMLGlob(pages)
		router.GET("/", func(c *gin.Context) {
			c.HTML(http.StatusOK, "index.html", nil)
		})
	}

	staticGroup := router.Group("/static")
	staticGroup.Use(middleware.CacheControl(365 * 24 * time.Hour))
	{
		staticGroup.Static("/", filepath.Join(cfg.WebDir, "static"))
	}

	// ─── API ───────────────────────────────────────────────────────────
	// Rate limiter for the export route; rendering is cheap but open.
	exportLimiter := middleware.NewRateLimiter(cfg.ExportRatePerMinute, time.Minute)

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			response.Success(c, http.StatusOK, gin.H{
				"status":  "healthy",
				"version": appVersion,
			})
		})

		api.GET("/catalog", handlers.Catalog.GetCatalog)
		api.POST("/export/:format", exportLimiter.Middleware(), handlers.Export.ExportPlan)
	}

	router.NoRoute(func(c *gin.Context) {
		response.Fail(c, http.StatusNotFound, response.ErrNotFound)
	})

	return router
}

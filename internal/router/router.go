package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/eligify/eligify-backend/internal/config"
	"github.com/eligify/eligify-backend/internal/handler"
	"github.com/eligify/eligify-backend/internal/middleware"
	"github.com/eligify/eligify-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Exam        *handler.ExamHandler
	Eligibility *handler.EligibilityHandler
	Marksheet   *handler.MarksheetHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
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
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	router.Use(response.RequestIDMiddleware())
	router.Use(middleware.SecurityHeaders())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for the parse endpoint (50 requests per minute per IP).
	parseLimiter := middleware.NewRateLimiter(50, time.Minute)

	api := router.Group("/api/v1")
	{
		// Catalog is read-only and changes rarely; let clients cache briefly.
		api.GET("/exams", middleware.CacheControl(60), handlers.Exam.ListExams)
		api.GET("/exams/:id", middleware.CacheControl(60), handlers.Exam.GetExam)

		api.POST("/eligibility/check", handlers.Eligibility.CheckEligibility)

		api.POST("/marksheets/parse", parseLimiter.Middleware(), handlers.Marksheet.ParseMarksheet)
	}

	return router
}

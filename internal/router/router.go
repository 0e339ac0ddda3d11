package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/hireloop/intervu-backend/internal/config"
	"github.com/hireloop/intervu-backend/internal/handler"
	"github.com/hireloop/intervu-backend/internal/middleware"
	"github.com/hireloop/intervu-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Interview *handler.InterviewHandler
	Candidate *handler.CandidateHandler
	Resume    *handler.ResumeHandler
}

// SetupRouter configures the Gin engine with middlewares and routes.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()
	router.HandleMethodNotAllowed = true

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

	// Apply request ID middleware globally so responses are traceable.
	router.Use(response.RequestIDMiddleware())

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"ok": true})
	})

	// Rate limiter for the LLM-backed routes (30 requests per minute per
	// IP); the Gemini API is the expensive resource behind them.
	aiLimiter := middleware.NewRateLimiter(30, time.Minute)

	// ─── Candidate-facing flow ─────────────────────────────────────────
	router.POST("/upload-resume", handlers.Resume.Upload)
	router.POST("/start-interview", aiLimiter.Middleware(), handlers.Interview.StartInterview)
	router.POST("/submit-answer", handlers.Interview.SubmitAnswer)
	router.POST("/update-candidate-info", handlers.Interview.UpdateCandidateInfo)
	router.POST("/pause-interview", handlers.Interview.PauseInterview)
	router.POST("/resume-interview", handlers.Interview.ResumeInterview)
	router.POST("/finish-interview", handlers.Interview.FinishInterview)
	router.POST("/discard-interview", handlers.Interview.DiscardInterview)
	router.POST("/generate-options", aiLimiter.Middleware(), handlers.Interview.GenerateOptions)

	// ─── Interviewer dashboard ─────────────────────────────────────────
	router.GET("/candidates", handlers.Candidate.List)
	router.GET("/candidate/:id", handlers.Candidate.Detail)

	return router
}

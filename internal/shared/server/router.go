package server

import (
	"context"
	"database/sql"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"talentmatch-backend/internal/analyses"
	"talentmatch-backend/internal/comms"
	"talentmatch-backend/internal/lexicon"
	"talentmatch-backend/internal/match"
	"talentmatch-backend/internal/profile"
	"talentmatch-backend/internal/shared/config"
	"talentmatch-backend/internal/shared/server/middleware"
	"talentmatch-backend/internal/shared/server/respond"
	"talentmatch-backend/internal/shared/storage/db"
	"talentmatch-backend/internal/shared/telemetry"
)

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(cfg config.Config) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(
		middleware.RequestID(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowOrigin),
		middleware.RateLimit(middleware.RateLimitConfig{
			GroupFor: rateLimitGroup,
			Rules: map[string]middleware.RateLimitRule{
				"DEFAULT": {Rate: 2, Burst: 10},
				"POLLING": {Rate: 10, Burst: 30},
			},
		}),
	)

	// Dependencies
	store := lexicon.NewStore(cfg.LexiconDir)
	for _, warning := range store.Warnings() {
		telemetry.Warn("lexicon.load", map[string]any{"warning": warning})
	}
	classifier := lexicon.NewClassifier(store)
	extractor := profile.NewExtractor(store, classifier, profile.NewEstimator())
	scorer := comms.NewScorer(store)
	engine := match.NewEngine(store)

	var sqlDB *sql.DB
	if cfg.DatabaseURL != "" {
		dbConn, err := db.Connect(context.Background(), cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
		if err != nil {
			log.Printf("failed to connect database, falling back to memory: %v", err)
		} else {
			if err := db.RunMigrations(context.Background(), dbConn); err != nil {
				log.Printf("failed to run migrations, falling back to memory: %v", err)
				dbConn = nil
			}
		}
		sqlDB = dbConn
	}

	var repo analyses.Repo
	if sqlDB != nil {
		repo = &analyses.PGRepo{DB: sqlDB}
	} else {
		repo = analyses.NewMemoryRepo()
	}
	svc := &analyses.Service{
		Repo:      repo,
		Extractor: extractor,
		Scorer:    scorer,
		Engine:    engine,
	}
	analysisHandler := analyses.NewHandler(svc)
	lexiconHandler := lexicon.NewHandler(store, classifier)

	api := r.Group("/api/v1")
	api.GET("/health", func(c *gin.Context) {
		respond.JSON(c, http.StatusOK, gin.H{"ok": true})
	})
	analysisHandler.RegisterRoutes(api)
	lexiconHandler.RegisterRoutes(api)

	return r
}

// rateLimitGroup gives status polling more headroom than mutations.
func rateLimitGroup(c *gin.Context) string {
	if c.Request.Method == http.MethodGet {
		return "POLLING"
	}
	return "DEFAULT"
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}

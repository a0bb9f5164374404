package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xyz-asif/voiceup/internal/config"
	"github.com/xyz-asif/voiceup/internal/database"
	"github.com/xyz-asif/voiceup/internal/features/admin"
	"github.com/xyz-asif/voiceup/internal/features/auth"
	"github.com/xyz-asif/voiceup/internal/features/comments"
	"github.com/xyz-asif/voiceup/internal/features/feed"
	"github.com/xyz-asif/voiceup/internal/features/live"
	"github.com/xyz-asif/voiceup/internal/features/media"
	"github.com/xyz-asif/voiceup/internal/features/reports"
	"github.com/xyz-asif/voiceup/internal/features/votes"
	"github.com/xyz-asif/voiceup/internal/middleware"
	"github.com/xyz-asif/voiceup/internal/pkg/cloudinary"
	"github.com/xyz-asif/voiceup/internal/pkg/jwt"
	"github.com/xyz-asif/voiceup/internal/pkg/ratelimit"
)

// Dependencies are the external services the API is built on. Cloudinary is
// optional: without it uploads answer 503 and deleted reports keep their
// hosted files.
type Dependencies struct {
	DB         *database.MongoDB
	Identity   auth.IdentityProvider
	Cloudinary *cloudinary.Service
	Limiter    *ratelimit.RateLimiter
}

func SetupRoutes(router *gin.Engine, cfg *config.Config, deps Dependencies) {
	// API v1 group
	api := router.Group("/api/v1")
	db := deps.DB.Database

	// Repositories
	usersRepo := auth.NewRepository(db)
	reportsRepo := reports.NewRepository(db)
	commentsRepo := comments.NewRepository(db)
	votesRepo := votes.NewRepository(db, deps.DB)

	// Services. Votes only need the report store, so they are built first and
	// feed the viewer's vote into report details.
	votesService := votes.NewService(votesRepo, reportsRepo)
	reportsService := reports.NewService(reportsRepo, commentsRepo, votesService)
	commentsService := comments.NewService(commentsRepo, reportsService)
	feedService := feed.NewService(reportsRepo, reportsService)
	adminService := admin.NewService(reportsRepo, reportsService, usersRepo, deps.Identity)

	var uploader media.Uploader
	if deps.Cloudinary != nil {
		uploader = deps.Cloudinary
		reportsService.WithAssets(deps.Cloudinary)
	}

	jwtCfg := jwt.DefaultConfig(cfg.JWTSecret, cfg.JWTExpire)
	mw := auth.NewMiddlewares(usersRepo, jwtCfg)

	liveHandler := live.NewHandler(
		database.NewChangeStreams(db),
		reportsRepo,
		feedService,
		reportsService,
		commentsService,
		checkOrigin(cfg),
	)

	// Register feature routes
	auth.RegisterRoutes(api, auth.NewHandler(usersRepo, deps.Identity, jwtCfg), mw.Required, deps.Limiter)
	reports.RegisterRoutes(api, reports.NewHandler(reportsService), mw, deps.Limiter)
	feed.RegisterRoutes(api, feed.NewHandler(feedService), mw.Optional)
	votes.RegisterRoutes(api, votes.NewHandler(votesService), mw.Required, deps.Limiter)
	comments.RegisterRoutes(api, comments.NewHandler(commentsService), mw, deps.Limiter)
	media.RegisterRoutes(api, media.NewHandler(uploader, media.NewScraper(cfg.PreviewTTL())), mw.Required, deps.Limiter)
	admin.RegisterRoutes(api, admin.NewHandler(adminService), mw)
	live.RegisterRoutes(api, liveHandler, mw.Optional)
}

// checkOrigin accepts any browser origin during development
func checkOrigin(cfg *config.Config) func(r *http.Request) bool {
	if !cfg.IsProduction() {
		return func(*http.Request) bool { return true }
	}
	return middleware.ParseOrigins(cfg.FrontendURL).CheckOrigin
}

// ================== cmd/api/main.go ==================
//
// @title VoiceUp API
// @version 1.0
// @description Citizen corruption reporting: reports, feed, votes, comments, moderation and live updates
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer <token>"
package main

import (
	"context"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/xyz-asif/voiceup/internal/config"
	"github.com/xyz-asif/voiceup/internal/database"
	"github.com/xyz-asif/voiceup/internal/features/auth"
	"github.com/xyz-asif/voiceup/internal/middleware"
	"github.com/xyz-asif/voiceup/internal/pkg/cloudinary"
	"github.com/xyz-asif/voiceup/internal/pkg/logger"
	"github.com/xyz-asif/voiceup/internal/pkg/ratelimit"
	"github.com/xyz-asif/voiceup/internal/pkg/response"
	"github.com/xyz-asif/voiceup/internal/routes"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	docs "github.com/xyz-asif/voiceup/docs"
)

func main() {
	// Load config
	cfg := config.Load()
	logger.SetGlobalLevel(logger.ParseLevel(cfg.LogLevel))
	log := logger.Default().With("main")

	// Configure Swagger metadata at runtime
	docs.SwaggerInfo.Host = "localhost:" + cfg.Port
	docs.SwaggerInfo.BasePath = "/api/v1"

	// Connect to MongoDB. Transactions and change streams need a replica set.
	db, err := database.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB: %v", err)
	}
	defer db.Disconnect(context.Background())

	fbClient, err := auth.InitFirebase(cfg)
	if err != nil {
		log.Fatal("Failed to initialize Firebase: %v", err)
	}

	cld, err := cloudinary.NewService(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, cfg.CloudinaryUploadFolder)
	if err != nil {
		log.Warn("Evidence uploads disabled: %v", err)
	}

	ctx, stop := context.WithCancel(context.Background())
	defer stop()

	limiter := ratelimit.New(cfg.RateLimitPerMinute, time.Minute)
	limiter.StartCleanup(ctx, 5*time.Minute)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(middleware.ParseOrigins(cfg.FrontendURL)))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(pingCtx); err != nil {
			response.ServiceUnavailable(c, "Database unreachable", "DB_UNAVAILABLE")
			return
		}
		response.Success(c, map[string]interface{}{
			"status": "ok",
			"time":   time.Now().Unix(),
		})
	})

	router.GET(
		"/swagger/*any",
		ginSwagger.WrapHandler(
			swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DeepLinking(true),
			ginSwagger.DefaultModelsExpandDepth(-1),
			ginSwagger.DocExpansion("none"),
			ginSwagger.PersistAuthorization(true),
		),
	)

	routes.SetupRoutes(router, cfg, routes.Dependencies{
		DB:         db,
		Identity:   auth.NewFirebaseIdentity(fbClient),
		Cloudinary: cld,
		Limiter:    limiter,
	})

	// Request contexts derive from ctx so live connections end with it
	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     router,
		BaseContext: func(net.Listener) context.Context { return ctx },
	}
	go func() {
		log.Info("Server starting on port %s", cfg.Port)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}
	// Hijacked live connections are not tracked by Shutdown
	stop()

	log.Info("Server exited")
}

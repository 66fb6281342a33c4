package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"chairai-backend/internal/config"
	"chairai-backend/internal/database"
	"chairai-backend/internal/handlers"
	"chairai-backend/internal/logger"
	"chairai-backend/internal/middleware"
	"chairai-backend/internal/services"
	"chairai-backend/internal/supabase"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := logger.Init(cfg.LogLevel, cfg.LogFormat); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	dbClient, err := supabase.NewDatabaseClient(cfg.DatabaseURL)
	if err != nil {
		logger.L().Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbClient.Close()

	migrator, err := database.NewMigrator(cfg.DatabaseURL)
	if err != nil {
		logger.L().Fatal("failed to initialize migrator", zap.Error(err))
	}
	if err := migrator.Run(); err != nil {
		migrator.Close()
		logger.L().Fatal("migration failed", zap.Error(err))
	}
	migrator.Close()

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
	if err != nil {
		logger.L().Fatal("failed to initialize storage client", zap.Error(err))
	}

	authClient, err := supabase.NewAuthClient(cfg.SupabaseURL, cfg.SupabaseServiceKey)
	if err != nil {
		logger.L().Fatal("failed to initialize auth client", zap.Error(err))
	}

	imageService := services.NewImageService(dbClient, cfg.DailyImageQuota)
	projectService := services.NewProjectService(dbClient)
	proposalService := services.NewProposalService(dbClient)
	reviewService := services.NewReviewService(dbClient, authClient)
	profileService := services.NewProfileService(dbClient, storageClient)

	imagesHandler := handlers.NewImagesHandler(imageService)
	projectsHandler := handlers.NewProjectsHandler(projectService)
	proposalsHandler := handlers.NewProposalsHandler(proposalService)
	reviewsHandler := handlers.NewReviewsHandler(reviewService)
	profilesHandler := handlers.NewProfilesHandler(profileService)
	catalogHandler := handlers.NewCatalogHandler(dbClient)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Health check (no auth)
	router.GET("/health", handlers.HealthHandler)

	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	// Generated images
	api.POST("/images", imagesHandler.RegisterImage)
	api.GET("/images", imagesHandler.ListMyImages)

	// Projects
	api.POST("/projects", projectsHandler.CreateProject)
	api.GET("/projects", projectsHandler.ListProjects)
	api.GET("/projects/my", projectsHandler.ListMyProjects)
	api.GET("/projects/:project_id", projectsHandler.GetProject)
	api.PATCH("/projects/:project_id/status", projectsHandler.UpdateStatus)
	api.POST("/projects/:project_id/proposals/:proposal_id/accept", projectsHandler.AcceptProposal)

	// Proposals
	api.POST("/projects/:project_id/proposals", proposalsHandler.CreateProposal)
	api.GET("/projects/:project_id/proposals", proposalsHandler.ListProjectProposals)
	api.GET("/proposals/my", proposalsHandler.ListMyProposals)

	// Reviews
	api.POST("/projects/:project_id/reviews", reviewsHandler.CreateReview)
	api.GET("/projects/:project_id/reviews", reviewsHandler.ListProjectReviews)

	// Artisan profiles
	api.PUT("/profile", profilesHandler.UpsertProfile)
	api.GET("/profiles/:user_id", profilesHandler.GetProfile)
	api.POST("/profile/specializations", profilesHandler.AddSpecializations)
	api.DELETE("/profile/specializations/:specialization_id", profilesHandler.RemoveSpecialization)
	api.POST("/profile/portfolio", profilesHandler.UploadPortfolioImage)
	api.DELETE("/profile/portfolio/:image_id", profilesHandler.DeletePortfolioImage)

	// Catalog
	api.GET("/categories", catalogHandler.ListCategories)
	api.GET("/materials", catalogHandler.ListMaterials)
	api.GET("/specializations", catalogHandler.ListSpecializations)

	logger.L().Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.L().Fatal("server exited", zap.Error(err))
	}
}

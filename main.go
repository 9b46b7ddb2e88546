package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/mdowais-techno/team-hub-server/config"
	"github.com/mdowais-techno/team-hub-server/database"
	"github.com/mdowais-techno/team-hub-server/handlers"
	"github.com/mdowais-techno/team-hub-server/logger"
	"github.com/mdowais-techno/team-hub-server/middleware"
	"github.com/mdowais-techno/team-hub-server/models"
	"github.com/mdowais-techno/team-hub-server/repositories"
	"github.com/mdowais-techno/team-hub-server/services"
	"github.com/mdowais-techno/team-hub-server/storage"

	"github.com/gin-gonic/gin"
)

func main() {
	log.Println("starting team hub service")

	cfg, err := config.LoadConfig("config.yaml")
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}
	logger.SetLevel(cfg.Log.Level)

	if err := database.InitMySQL(&cfg.Database); err != nil {
		log.Fatalf("init mysql failed: %v", err)
	}

	database.DB.AutoMigrate(
		&models.User{},
		&models.Department{},
		&models.JobProfile{},
		&models.Employee{},
		&models.Onboarding{},
		&models.OnboardingTask{},
		&models.OnboardingTemplate{},
		&models.TemplateTask{},
		&models.Folder{},
		&models.FileRecord{},
		&models.ExternalLink{},
		&models.ShareGrant{},
	)
	log.Println("database migration completed")

	if err := database.InitRedis(&cfg.Redis); err != nil {
		log.Fatalf("init redis failed: %v", err)
	}

	store, err := storage.NewS3Store(context.Background(), &cfg.Storage)
	if err != nil {
		log.Fatalf("init object store failed: %v", err)
	}

	locker := services.NewRedisPathLocker(
		database.RedisClient,
		time.Duration(cfg.Redis.PathLockTTLSeconds)*time.Second,
	)

	repoContainer := repositories.NewGormRepositories(database.DB).BuildContainer()
	serviceContainer := services.NewContainer(&repoContainer, store, locker, cfg)
	handlers.SetServices(serviceContainer)

	if cfg.Admin.Password != "" {
		err := serviceContainer.Auth.EnsureAdminUser(context.Background(), cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			log.Fatalf("seed admin user failed: %v", err)
		}
		log.Println("admin user ensured")
	}

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	setupRoutes(r)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("server listening on http://%s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server start failed: %v", err)
	}
}

func setupRoutes(r *gin.Engine) {
	api := r.Group("/api")

	api.GET("/health", handlers.HealthCheck)

	auth := api.Group("/auth")
	{
		auth.POST("/register", handlers.Register)
		auth.POST("/login", handlers.Login)
	}

	// Signed-URL issuance stays open: upload clients hit these before any
	// metadata is recorded.
	documents := api.Group("/documents")
	{
		documents.GET("/file-upload-url", handlers.GetFileUploadURL)
		documents.GET("/file-view-url", handlers.GetFileViewURL)
	}

	protected := api.Group("")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/auth/profile", handlers.GetProfile)
		protected.PUT("/auth/profile", handlers.UpdateProfile)
		protected.PUT("/auth/change-password", handlers.ChangePassword)

		protected.GET("/users", handlers.ListUsers)
		protected.GET("/users/:id", handlers.GetUser)
		protected.PUT("/users/:id/role", middleware.RequireRoles(models.RoleAdmin), handlers.UpdateUserRole)
		protected.PUT("/users/:id/status", middleware.RequireRoles(models.RoleAdmin, models.RoleHR), handlers.UpdateUserStatus)

		protected.GET("/departments", handlers.ListDepartments)
		protected.GET("/departments/:id", handlers.GetDepartment)
		protected.POST("/departments", middleware.RequireRoles(models.RoleAdmin, models.RoleHR), handlers.CreateDepartment)
		protected.PUT("/departments/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleHR), handlers.UpdateDepartment)
		protected.DELETE("/departments/:id", middleware.RequireRoles(models.RoleAdmin), handlers.DeleteDepartment)

		protected.GET("/job-profiles", handlers.ListJobProfiles)
		protected.GET("/job-profiles/:id", handlers.GetJobProfile)
		protected.POST("/job-profiles", middleware.RequireRoles(models.RoleAdmin, models.RoleHR, models.RoleManager), handlers.CreateJobProfile)
		protected.PUT("/job-profiles/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleHR, models.RoleManager), handlers.UpdateJobProfile)
		protected.DELETE("/job-profiles/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleHR), handlers.DeleteJobProfile)

		protected.GET("/employees", handlers.ListEmployees)
		protected.GET("/employees/stats", handlers.GetEmployeeStats)
		protected.GET("/employees/:id", handlers.GetEmployee)
		protected.POST("/employees", middleware.RequireRoles(models.RoleAdmin, models.RoleHR), handlers.CreateEmployee)
		protected.PUT("/employees/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleHR), handlers.UpdateEmployee)
		protected.DELETE("/employees/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleHR), handlers.DeleteEmployee)

		protected.GET("/onboardings", handlers.ListOnboardings)
		protected.GET("/onboardings/:id", handlers.GetOnboarding)
		protected.POST("/onboardings", middleware.RequireRoles(models.RoleAdmin, models.RoleHR, models.RoleManager), handlers.CreateOnboarding)
		protected.PUT("/onboardings/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleHR, models.RoleManager), handlers.UpdateOnboarding)
		protected.PUT("/onboardings/:id/tasks/:taskId", handlers.UpdateOnboardingTaskStatus)
		protected.DELETE("/onboardings/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleHR), handlers.DeleteOnboarding)

		protected.GET("/onboarding-templates", handlers.ListOnboardingTemplates)
		protected.GET("/onboarding-templates/:id", handlers.GetOnboardingTemplate)
		protected.POST("/onboarding-templates", middleware.RequireRoles(models.RoleAdmin, models.RoleHR), handlers.CreateOnboardingTemplate)
		protected.PUT("/onboarding-templates/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleHR), handlers.UpdateOnboardingTemplate)
		protected.DELETE("/onboarding-templates/:id", middleware.RequireRoles(models.RoleAdmin, models.RoleHR), handlers.DeleteOnboardingTemplate)

		docs := protected.Group("/documents")
		{
			docs.GET("", handlers.ListDocuments)
			docs.POST("/folder", handlers.CreateFolder)
			docs.POST("/file-upload", handlers.RecordFileUpload)
			docs.POST("/folder-upload", handlers.UploadFolderStructure)
			docs.POST("/external-link", handlers.CreateExternalLink)
			docs.PUT("/rename", handlers.RenameDocument)
			docs.PUT("/move", handlers.MoveDocument)
			docs.DELETE("/remove", handlers.RemoveDocument)
			docs.POST("/save-edited-image", handlers.SaveEditedImage)

			docs.POST("/share-user", handlers.ShareWithUser)
			docs.POST("/share-department", handlers.ShareWithDepartment)
			docs.POST("/share-job-profile", handlers.ShareWithJobProfile)
			docs.GET("/shared-with-me", handlers.SharedWithMe)
			docs.GET("/shared-with/*key", handlers.SharedWithKey)
			docs.DELETE("/remove-share", handlers.RemoveShare)
		}
	}
}

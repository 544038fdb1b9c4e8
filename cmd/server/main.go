package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/lshigami/admission/config"
	"github.com/lshigami/admission/database"
	_ "github.com/lshigami/admission/docs"
	"github.com/lshigami/admission/internal/cache"
	"github.com/lshigami/admission/internal/controller"
	adminctrl "github.com/lshigami/admission/internal/controller/admin"
	userctrl "github.com/lshigami/admission/internal/controller/user"
	"github.com/lshigami/admission/internal/logger"
	"github.com/lshigami/admission/internal/model"
	"github.com/lshigami/admission/internal/repository"
	"github.com/lshigami/admission/internal/service"
	"github.com/lshigami/admission/internal/storage"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Student Admission API
// @version 1.0
// @description Applicant accounts, the qualifications page, document uploads and preview.
// @host localhost:8080
// @BasePath /api
// @schemes http https
// @securityDefinitions.apikey TokenAuth
// @in header
// @name Authorization
// @description "Token <jwt>"
func main() {
	logger.Init(os.Getenv("LOG_LEVEL"))

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
			storage.NewObjectStore,
			cache.NewPreviewCache,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewUserRepository,
			repository.NewApplicationRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewTokenIssuer,
			service.NewAuthService,
			service.NewProfileService,
			service.NewApplicationService,
			service.NewUploadService,
			service.NewPreviewService,
			service.NewAdminApplicationService,
		),

		// API Controllers Layer
		fx.Provide(
			userctrl.NewAuthController,
			userctrl.NewProfileController,
			userctrl.NewApplicationController,
			userctrl.NewUploadController,
			adminctrl.NewApplicationController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedAdmin),
		fx.Invoke(RegisterRoutesAndStartServer),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		log.Error().Err(err).Msg("Failed to stop application cleanly")
	}
}

func NewGinEngine(cfg *config.Config) *gin.Engine {
	logger.SetLevel(cfg.LogLevel)
	if cfg.Server.GinMode != "" {
		gin.SetMode(cfg.Server.GinMode)
	}

	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("user_agent", param.Request.UserAgent()).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.MaxMultipartMemory = 32 << 20

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	store storage.ObjectStore,
	tokens service.TokenIssuer,
	authCtrl *userctrl.AuthController,
	profileCtrl *userctrl.ProfileController,
	appCtrl *userctrl.ApplicationController,
	uploadCtrl *userctrl.UploadController,
	adminAppCtrl *adminctrl.ApplicationController,
) {
	if local, ok := store.(*storage.LocalStore); ok {
		router.Static("/uploads", local.Root())
	}

	api := router.Group("/api")
	{
		api.POST("/signup/", authCtrl.Signup)
		api.POST("/login/", authCtrl.Login)
	}

	authed := api.Group("", controller.TokenAuth(tokens))
	{
		authed.GET("/current-user-email/", profileCtrl.CurrentUserEmail)
		authed.GET("/user-profile/", profileCtrl.UserProfile)
		authed.GET("/get-autofill-application/", profileCtrl.Autofill)

		authed.GET("/application/page3/", appCtrl.GetPage3)
		authed.POST("/application/page3/", appCtrl.SubmitPage3)
		authed.GET("/application/preview/", profileCtrl.Preview)

		authed.POST("/upload-marksheet/", uploadCtrl.UploadMarksheet)
		authed.POST("/upload-documents/", uploadCtrl.UploadDocuments)
	}

	adminGroup := authed.Group("/admin", controller.RequireRole(model.RoleAdmin))
	{
		adminGroup.GET("/applications", adminAppCtrl.ListApplications)
		adminGroup.GET("/applications/:id", adminAppCtrl.GetApplication)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Admission API server starting on port %s", cfg.Server.Port)
			log.Info().Msgf("Swagger UI available at http://localhost:%s/swagger/index.html", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.User{},
		&model.Application{},
		&model.Qualification{},
		&model.Document{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}

func SeedAdmin(cfg *config.Config, auth service.AuthService) error {
	if err := auth.EnsureAdmin(cfg.Admin.Email, cfg.Admin.Password); err != nil {
		log.Error().Err(err).Msg("Failed to seed admin account")
		return err
	}
	return nil
}

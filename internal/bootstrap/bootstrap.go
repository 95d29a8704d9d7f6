package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/peerconnect/peerconnect/internal/app/controllers"
	appMigrations "github.com/peerconnect/peerconnect/internal/app/migrations"
	appRepos "github.com/peerconnect/peerconnect/internal/app/repositories"
	appRoutes "github.com/peerconnect/peerconnect/internal/app/routes"
	appServices "github.com/peerconnect/peerconnect/internal/app/services"
	"github.com/peerconnect/peerconnect/internal/config"
	"github.com/peerconnect/peerconnect/internal/db"
	appMiddleware "github.com/peerconnect/peerconnect/internal/middleware"
	pkgAuth "github.com/peerconnect/peerconnect/internal/pkg/auth"
	"github.com/peerconnect/peerconnect/internal/pkg/chatbot"
	"github.com/peerconnect/peerconnect/internal/pkg/email"
	"github.com/peerconnect/peerconnect/internal/pkg/filestorage"
	"github.com/peerconnect/peerconnect/internal/pkg/helpers"
	"github.com/peerconnect/peerconnect/internal/pkg/logger"
	"github.com/peerconnect/peerconnect/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService            appServices.AuthService
	UserService            appServices.UserService
	MentorshipService      appServices.MentorshipService
	GroupService           appServices.GroupService
	ForumService           appServices.ForumService
	AnnouncementService    appServices.AnnouncementService
	LogService             appServices.LogService
	ChatbotService         appServices.ChatbotService
	AuthController         *appControllers.AuthController
	UserController         *appControllers.UserController
	MentorshipController   *appControllers.MentorshipController
	GroupController        *appControllers.GroupController
	ForumController        *appControllers.ForumController
	AnnouncementController *appControllers.AnnouncementController
	LogController          *appControllers.LogController
	ChatbotController      *appControllers.ChatbotController
	AuthMiddleware         *appMiddleware.AuthMiddleware
	Repos                  *appRepos.Repositories
	JWTService             *pkgAuth.JWTService
	Logger                 zerolog.Logger
	FileStorage            *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
		File: logger.FileConfig{
			Path:       cfg.Logging.File,
			MaxSizeMB:  cfg.Logging.MaxSizeMB,
			MaxBackups: cfg.Logging.MaxBackups,
			MaxAgeDays: cfg.Logging.MaxAgeDays,
		},
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	// The storage base URL must match the static file serving path.
	fileStorageBaseURL := cfg.Server.BaseURL + "/uploads"
	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath, fileStorageBaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	notifier := email.NewSMTPNotifier(email.SMTPConfig{
		Host:      cfg.SMTP.Host,
		Port:      cfg.SMTP.Port,
		Username:  cfg.SMTP.Username,
		Password:  cfg.SMTP.Password,
		FromName:  cfg.SMTP.FromName,
		FromEmail: cfg.SMTP.FromEmail,
		UseTLS:    cfg.SMTP.UseTLS,
		BaseURL:   cfg.Server.FrontendOrigin,
	}, lgr)

	chatClient := chatbot.NewClient(chatbot.Config{
		Endpoint: cfg.Chatbot.Endpoint,
		APIKey:   cfg.Chatbot.APIKey,
		Timeout:  helpers.ParseDuration(cfg.Chatbot.Timeout, 30*time.Second),
	})

	deps.AuthService = appServices.NewAuthService(deps.Repos.UserRepository, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(deps.Repos.UserRepository, deps.FileStorage, notifier, lgr)
	deps.MentorshipService = appServices.NewMentorshipService(deps.Repos.MentorshipRepository, lgr)
	deps.GroupService = appServices.NewGroupService(
		deps.Repos.GroupRepository,
		deps.Repos.GroupMemberRepository,
		deps.Repos.GroupMessageRepository,
		deps.Repos.GroupFileRepository,
		deps.Repos.SessionRepository,
		deps.Repos.UserRepository,
		deps.FileStorage,
		cfg.Sessions.DefaultMeetingLink,
		lgr,
	)
	deps.ForumService = appServices.NewForumService(deps.Repos.ForumRepository, lgr)
	deps.AnnouncementService = appServices.NewAnnouncementService(
		deps.Repos.AnnouncementRepository,
		deps.Repos.UserRepository,
		notifier,
		lgr,
	)
	deps.LogService = appServices.NewLogService(deps.Repos.LogRepository, lgr)
	deps.ChatbotService = appServices.NewChatbotService(chatClient, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.LogService)
	deps.UserController = appControllers.NewUserController(deps.UserService, deps.LogService)
	deps.MentorshipController = appControllers.NewMentorshipController(deps.MentorshipService)
	deps.GroupController = appControllers.NewGroupController(deps.GroupService, deps.LogService)
	deps.ForumController = appControllers.NewForumController(deps.ForumService)
	deps.AnnouncementController = appControllers.NewAnnouncementController(deps.AnnouncementService)
	deps.LogController = appControllers.NewLogController(deps.LogService)
	deps.ChatbotController = appControllers.NewChatbotController(deps.ChatbotService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	// CORS is handled once at the edge rather than per handler.
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.FrontendOrigin},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.UserController,
		deps.MentorshipController,
		deps.GroupController,
		deps.ForumController,
		deps.AnnouncementController,
		deps.LogController,
		deps.ChatbotController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

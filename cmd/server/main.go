package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"pikxora.backend/internal/config"
	"pikxora.backend/internal/infrastructure/jobs"
	"pikxora.backend/internal/infrastructure/media"
	"pikxora.backend/internal/infrastructure/models"
	"pikxora.backend/internal/infrastructure/repositories"
	"pikxora.backend/internal/interfaces/http/handlers"
	"pikxora.backend/internal/interfaces/http/middleware"
	"pikxora.backend/internal/usecases"
	"pikxora.backend/pkg/jwt"
	"pikxora.backend/pkg/logger"
	"pikxora.backend/pkg/redis"
)

var (
	loadDotenv = godotenv.Load
	loadCfg    = config.Load
	initLog    = logger.Init
	initRedis  = redis.Init
	openDB     = func(dsn string) (*gorm.DB, error) {
		return gorm.Open(postgres.New(postgres.Config{
			DSN:                  dsn,
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
	}
	runServer = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
	getStdDB  = func(db *gorm.DB) (*sql.DB, error) { return db.DB() }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	// Initialize Redis. The wall cache and idempotency layer degrade to
	// passthrough without it, so a missing redis only costs performance.
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Warn(context.Background(), "Redis unavailable, caching and idempotency disabled", zap.Error(err))
	} else {
		logger.Info(context.Background(), "Redis initialized")
	}

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database using GORM
	dsn := cfg.Database.URL()
	db, err := openDB(dsn)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := getStdDB(db)
	if err != nil {
		return fmt.Errorf("failed to get generic database object: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		log.Printf("⚠️ Database not available: %v (endpoints will return errors)", err)
	} else {
		log.Println("✅ Connected to PostgreSQL via GORM")
		if err := db.AutoMigrate(
			&models.User{},
			&models.Profile{},
			&models.Wall{},
			&models.Project{},
			&models.TeamMember{},
			&models.Connection{},
		); err != nil {
			return fmt.Errorf("failed to migrate database: %w", err)
		}
	}

	// Initialize JWT service
	jwtService := jwt.NewJWTService(
		cfg.JWT.Secret,
		cfg.JWT.AccessExpiry,
		cfg.JWT.RefreshExpiry,
	)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	profileRepo := repositories.NewProfileRepository(db)
	wallRepo := repositories.NewWallRepository(db)
	projectRepo := repositories.NewProjectRepository(db)
	teamRepo := repositories.NewTeamMemberRepository(db)
	connRepo := repositories.NewConnectionRepository(db)
	uow := repositories.NewUnitOfWork(db)

	// Initialize media codec over the upload root
	codec := media.NewCodec(cfg.Media.UploadRoot)

	// Initialize usecases
	authUsecase := usecases.NewAuthUsecase(userRepo, profileRepo, uow, jwtService)
	profileUsecase := usecases.NewProfileUsecase(profileRepo)
	wallUsecase := usecases.NewWallUsecase(wallRepo, profileRepo, userRepo, projectRepo, teamRepo, uow, codec, cfg.Media.MaxImageMB)
	projectUsecase := usecases.NewProjectUsecase(projectRepo, wallRepo, codec, cfg.Media.MaxImageMB)
	teamUsecase := usecases.NewTeamUsecase(teamRepo, wallRepo, profileRepo, userRepo)
	connectionUsecase := usecases.NewConnectionUsecase(connRepo, profileRepo)
	adminUsecase := usecases.NewAdminUsecase(profileRepo, userRepo, wallRepo)
	mediaUsecase := usecases.NewMediaUsecase(codec, cfg.Media.MaxImageMB)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authUsecase)
	profileHandler := handlers.NewProfileHandler(profileUsecase)
	wallHandler := handlers.NewWallHandler(wallUsecase)
	projectHandler := handlers.NewProjectHandler(projectUsecase)
	teamHandler := handlers.NewTeamHandler(teamUsecase)
	connectionHandler := handlers.NewConnectionHandler(connectionUsecase)
	adminHandler := handlers.NewAdminHandler(adminUsecase)
	mediaHandler := handlers.NewMediaHandler(mediaUsecase)

	authMiddleware := middleware.AuthMiddleware(jwtService)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sweeper := jobs.NewUploadSweeperJob(codec.Root(), cfg.Media.SweepInterval, cfg.Media.SweepGrace, wallRepo, projectRepo)
	go sweeper.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())
	r.Use(middleware.MetricsMiddleware())
	r.Use(middleware.BodyLimitMiddleware(int64(cfg.Media.MaxBodyMB) << 20))

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerMetricsRoute(r)
	registerUploadRoute(r, codec.Root())
	registerAPIV1Routes(r, routeDeps{
		authHandler:       authHandler,
		profileHandler:    profileHandler,
		wallHandler:       wallHandler,
		projectHandler:    projectHandler,
		teamHandler:       teamHandler,
		connectionHandler: connectionHandler,
		adminHandler:      adminHandler,
		mediaHandler:      mediaHandler,
		authMiddleware:    authMiddleware,
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		sweeper.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 PIKXORA Backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

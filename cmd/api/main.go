package main

import (
	"context"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"jobdesk/internal/cache"
	"jobdesk/internal/config"
	"jobdesk/internal/database"
	"jobdesk/internal/handlers"
	"jobdesk/internal/logger"
	"jobdesk/internal/scheduler"
	"jobdesk/internal/services"
	"jobdesk/internal/source"
)

func main() {
	// Environment variables; a missing .env is fine in deployed setups.
	_ = godotenv.Load()

	logger.Init()
	log := logger.Get()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("database connection failed")
	}
	log.Info().Msg("database connection established")

	ctx := context.Background()

	// The cache is optional: without REDIS_URL every read goes to Postgres.
	jobCache := cache.New(nil, cfg.CacheTTL, log)
	if cfg.RedisURL != "" {
		rdb, err := cache.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			log.Warn().Err(err).Msg("redis unavailable, job cache disabled")
		} else {
			jobCache = cache.New(rdb, cfg.CacheTTL, log)
			log.Info().Msg("redis job cache enabled")
		}
	}

	src := source.NewClient(cfg.PostsURL, cfg.JobPostsURL)
	jobService := services.NewJobService(db, src, jobCache, log)
	userService := services.NewUserService(db)

	if cfg.RefreshIntervalHours > 0 {
		sched := scheduler.New(jobService, cfg.RefreshIntervalHours, log)
		if err := sched.Start(ctx); err != nil {
			log.Fatal().Err(err).Msg("scheduler failed to start")
		}
		defer sched.Stop()
	}

	jobHandler := handlers.NewJobHandler(jobService)
	userHandler := handlers.NewUserHandler(userService)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.GET("/jobs", jobHandler.ListJobs)
		api.GET("/jobs/fetch-and-store", jobHandler.FetchAndStore)
		api.GET("/jobs/fetch-from-jsonfakery", jobHandler.FetchFromJSONFakery)

		api.POST("/users", userHandler.StoreUser)
	}

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}

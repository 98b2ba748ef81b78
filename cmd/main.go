package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/testhub/config"
	"github.com/lshigami/testhub/database"
	_ "github.com/lshigami/testhub/docs" // Swagger docs
	adminctrl "github.com/lshigami/testhub/internal/controller/admin"
	userctrl "github.com/lshigami/testhub/internal/controller/user"
	"github.com/lshigami/testhub/internal/cache"
	"github.com/lshigami/testhub/internal/event"
	"github.com/lshigami/testhub/internal/logger"
	"github.com/lshigami/testhub/internal/repository"
	"github.com/lshigami/testhub/internal/router"
	"github.com/lshigami/testhub/internal/service"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Test Hub API
// @version 1.0
// @description Multiple-choice test hub: participants log in, take tests and get scored. Admins create and delete tests.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /api
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			router.NewGinEngine,
			cache.NewTestCache,
			event.NewPublisher,
		),

		// Repositories Layer
		fx.Provide(
			repository.NewTestRepository,
			repository.NewQuestionRepository,
			repository.NewAnswerRepository,
			repository.NewTestResultRepository,
			repository.NewUserRepository,
		),

		// Services Layer
		fx.Provide(
			service.NewTestIDAllocator,
			service.NewScoringService,
			service.NewAdminTestService,
			service.NewUserTestService,
			service.NewTestSubmissionService,
			service.NewUserService,
			service.NewResultService,
		),

		// API Controllers Layer
		fx.Provide(
			adminctrl.NewAdminTestController,
			userctrl.NewUserTestController,
			userctrl.NewAuthController,
			userctrl.NewResultController,
		),

		// Invokers - executed in order by Fx
		fx.Invoke(logger.Configure),
		fx.Invoke(AutoMigrateDB),
		fx.Invoke(router.RegisterRoutes),
		fx.Invoke(StartServer),
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

// StartServer manages the HTTP server and event publisher lifecycle.
func StartServer(lc fx.Lifecycle, router *gin.Engine, cfg *config.Config, publisher event.Publisher) {
	server := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Test Hub API server starting on port %s", cfg.Server.Port)
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
			if err := server.Shutdown(shutdownCtx); err != nil {
				return err
			}
			return publisher.Close()
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	return database.Migrate(db)
}

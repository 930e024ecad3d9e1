package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-event-planner/config"
	"go-event-planner/internal/cache"
	"go-event-planner/internal/database"
	"go-event-planner/internal/handler"
	"go-event-planner/internal/middleware"
	"go-event-planner/internal/repository"
	"go-event-planner/internal/service"
	"go-event-planner/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	_ = godotenv.Load()
	defer logger.Sync()

	log := logger.WithComponent("main")
	cfg := config.LoadConfig()

	pool, err := database.InitDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		log.Fatal("Failed to initialize redis", zap.Error(err))
	}
	defer rdb.Close()

	// repositories
	userRepo := repository.NewUserRepository(pool)
	eventRepo := repository.NewEventRepository(pool)
	rsvpRepo := repository.NewRSVPRepository(pool)

	// session store
	sessionTTL := time.Duration(cfg.Auth.SessionTTLMinutes) * time.Minute
	sessions := cache.NewRedisSessionStore(rdb, sessionTTL)

	// services
	authService := service.NewAuthService(userRepo, sessions, cfg.Auth.BcryptCost)
	eventService := service.NewEventService(eventRepo, rsvpRepo)
	rsvpService := service.NewRSVPService(rsvpRepo, eventRepo)

	router := gin.Default()
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	auth := middleware.Auth(sessions)
	handler.NewAuthHandler(authService).RegisterRoutes(router, auth)
	handler.NewEventHandler(eventService).RegisterRoutes(router, auth)
	handler.NewRSVPHandler(rsvpService).RegisterRoutes(router, auth)

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	go func() {
		log.Info("Server listening", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server error", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Forced shutdown", zap.Error(err))
	}
	log.Info("Server exited")
}

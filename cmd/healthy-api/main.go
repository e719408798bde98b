package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/addsmd/healthy-api/internal/config"
	"github.com/addsmd/healthy-api/internal/database"
	"github.com/addsmd/healthy-api/internal/handlers"
	authmw "github.com/addsmd/healthy-api/internal/middleware"
	"github.com/addsmd/healthy-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Migrate(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	jwtService := services.NewJWTService(cfg.JWTSecret, cfg.SessionExpiry)
	userService := services.NewUserService(db)
	activityService := services.NewActivityService(db)
	eventService := services.NewEventService(db)
	engagementService := services.NewEngagementService(db)

	authHandler := handlers.NewAuthHandler(cfg, userService, jwtService)
	activityHandler := handlers.NewActivityHandler(activityService)
	eventHandler := handlers.NewEventHandler(eventService, engagementService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	app.Get("/login/:provider", authHandler.Login)
	app.Get("/auth/:provider", authHandler.Callback)

	app.Get("/activities", activityHandler.List)
	app.Get("/event/participation", eventHandler.Participants)

	listing := app.Group("")
	listing.Use(authmw.OptionalAuth(jwtService))
	listing.Get("/event", eventHandler.List)

	protected := app.Group("")
	protected.Use(authmw.Auth(jwtService))
	protected.Post("/event", eventHandler.Create)
	protected.Post("/event/participation", eventHandler.Participate)
	protected.Delete("/event/participation", eventHandler.Unparticipate)
	protected.Post("/event/like", eventHandler.Like)
	protected.Delete("/event/like", eventHandler.Unlike)

	app.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}

package main

import (
	"context"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/arnold/weeklygoals-api/internal/config"
	"github.com/arnold/weeklygoals-api/internal/database"
	"github.com/arnold/weeklygoals-api/internal/handlers"
	"github.com/arnold/weeklygoals-api/internal/routes"
	"github.com/arnold/weeklygoals-api/internal/services"
	"github.com/arnold/weeklygoals-api/internal/store"
)

func main() {
	cfg := config.Load()

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if err := database.Migrate(database.DB); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	var st store.Store
	switch cfg.StoreDriver {
	case "memory":
		log.Println("Store: using in-memory documents, data is lost on restart")
		st = store.NewMemoryStore()
	default:
		st = store.NewGormStore(database.DB)
	}

	activity := services.NewActivityService(database.DB)
	push := services.InitPush(context.Background(), cfg.FCMServiceAccount, st)
	goals := services.NewGoalService(st, activity, nil)
	streaks := services.NewStreakService(st, activity, push, nil, cfg.Location())

	h := &handlers.Handler{
		Goals:        goals,
		Streaks:      streaks,
		Settings:     services.NewSettingsService(goals, streaks, activity),
		Activity:     activity,
		Push:         push,
		Hub:          handlers.NewHub(),
		JWTSecret:    cfg.JWTSecret,
		PasscodeHash: cfg.PasscodeHash,
	}

	if !cfg.AuthEnabled() {
		log.Println("Auth: PASSCODE_HASH not set, API is open")
	}

	app := fiber.New(fiber.Config{
		AppName: "weeklygoals-api",
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	routes.Setup(app, h, cfg.AuthEnabled())

	log.Fatal(app.Listen(":" + cfg.Port))
}

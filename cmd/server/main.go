package main

import (
	"crm/internal/app"
	"crm/internal/handlers"
	"crm/internal/logger"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	log := logger.New("main")

	application, err := app.New()
	if err != nil {
		log.Er("failed to initialize application", err)
		os.Exit(1)
	}
	defer func() {
		if err := application.Close(); err != nil {
			log.Er("failed to close application", err)
		}
	}()

	if _, err := application.Database.Migrate(); err != nil {
		log.Er("failed to run migrations", err)
		os.Exit(1)
	}

	// Dev restarts usually follow schema or seed changes; stale cache
	// entries must not outlive them.
	if application.Config.IsDevelopment() {
		if err := application.Database.FlushAllCaches(); err != nil {
			log.Er("failed to flush caches", err)
		}
	}

	server := fiber.New(fiber.Config{
		AppName: "recruiting-crm",
	})

	server.Use(recover.New())
	server.Use(compress.New())
	server.Use(cors.New(cors.Config{
		AllowOrigins: application.Config.CorsAllowOrigins,
	}))
	server.Use(application.Middleware.RequestID())
	server.Use(application.Middleware.Metrics())

	if err := handlers.Router(server, application); err != nil {
		log.Er("failed to register routes", err)
		os.Exit(1)
	}

	go func() {
		addr := fmt.Sprintf(":%d", application.Config.ServerPort)
		log.Info("starting server", "addr", addr)
		if err := server.Listen(addr); err != nil {
			log.Er("server stopped", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server")
	if err := server.Shutdown(); err != nil {
		log.Er("failed to shut down server", err)
	}
}

package api

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewApp builds the fiber application with every route under /api/v1.
func NewApp(handler SchedulerHandler, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "cpu-scheduler",
		DisableStartupMessage: true,
	})
	app.Use(requestLogger(logger))

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srt", handler.ShortestRemainingTime)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/priority-rr", handler.PriorityRoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/runs", handler.ListRuns)
		v1.Get("/runs/:id", handler.GetRun)
	}

	return app
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	logger = logger.With("component", "http")
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		logger.Debug("request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"duration", time.Since(start))
		return err
	}
}

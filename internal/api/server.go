package api

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"github.com/aalvaropc/recordsort/internal/domain"
	"github.com/aalvaropc/recordsort/internal/infra/logger"
	"github.com/aalvaropc/recordsort/internal/infra/metrics"
	"github.com/aalvaropc/recordsort/internal/ports"
	"github.com/aalvaropc/recordsort/internal/usecase"
)

const requestIDKey = "requestid"

// Deps wires the HTTP layer to its collaborators.
type Deps struct {
	Store       ports.RecordStore
	Metrics     *metrics.Registry // optional
	Logger      *slog.Logger
	CORSOrigins string
}

// NewApp builds the fiber application with every route registered.
func NewApp(deps Deps) *fiber.App {
	log := deps.Logger
	if log == nil {
		log = logger.L()
	}

	app := fiber.New(fiber.Config{
		AppName:               "recordsort",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: requestIDKey,
	}))

	origins := deps.CORSOrigins
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))
	app.Use(accessLog(log, deps.Metrics))

	var ingestOpts []usecase.IngestOption
	ingestOpts = append(ingestOpts, usecase.WithLogger(log))
	if deps.Metrics != nil {
		ingestOpts = append(ingestOpts, usecase.WithObserver(deps.Metrics))
	}
	h := NewRecordHandler(
		usecase.NewIngestRecord(deps.Store, ingestOpts...),
		usecase.NewListRecords(deps.Store),
		log,
	)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.SendString("OK")
	})
	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics.Handler()))
	}

	records := app.Group("/records")
	records.Post("/", h.Create)
	records.Get("/", h.List)
	records.Get("/gender", h.ListBy(domain.SortByGender))
	records.Get("/birthdate", h.ListBy(domain.SortByDateOfBirth))
	records.Get("/name", h.ListBy(domain.SortByLastName))

	return app
}

func accessLog(log *slog.Logger, reg *metrics.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		elapsed := time.Since(start)

		status := c.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}
		route := c.Route().Path

		if reg != nil {
			reg.ObserveRequest(c.Method(), route, status, elapsed.Seconds())
		}
		log.Info("http.request",
			"request_id", requestID(c),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"duration_ms", elapsed.Milliseconds(),
		)
		return err
	}
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully.
func Serve(ctx context.Context, app *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() { errCh <- app.Listen(addr) }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return app.ShutdownWithContext(shutdownCtx)
	}
}

package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// Dependencies are the stores read by the HTTP API. Metrics, Requests and DB
// may be nil.
type Dependencies struct {
	Bills      BillReader
	Subjects   SubjectReader
	Actions    ActionReader
	Cosponsors CosponsorReader
	SyncStates SyncStateReader
	APILogs    APILogReader
	DB         Pinger
	Metrics    http.Handler
	Requests   RequestObserver
	Service    string
}

func NewApp(deps Dependencies) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "billsync",
		ErrorHandler: ErrorHandler,
	})

	app.Use(logger.New())
	if deps.Requests != nil {
		app.Use(observeRequests(deps.Requests))
	}

	app.Get("/health", HealthHandler(deps.DB))

	api := app.Group("/api")
	api.Get("/bills", BillsHandler(deps.Bills))
	api.Get("/bills/:congress/:type/:number", BillDetailHandler(deps.Bills, deps.Subjects, deps.Actions, deps.Cosponsors))
	api.Get("/sync-state/:congress", SyncStateHandler(deps.SyncStates))
	if deps.APILogs != nil {
		api.Get("/api-logs", APILogsHandler(deps.APILogs, deps.Service))
	}

	if deps.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(deps.Metrics))
	}

	return app
}

func observeRequests(obs RequestObserver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		code := c.Response().StatusCode()
		if err != nil {
			code = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
		}

		obs.ObserveRequest(c.Method(), c.Route().Path, code, time.Since(start))
		return err
	}
}

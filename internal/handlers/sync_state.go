package handlers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"billsync/internal/domain"
)

func SyncStateHandler(states SyncStateReader) fiber.Handler {
	return func(c *fiber.Ctx) error {
		congress, err := c.ParamsInt("congress")
		if err != nil || congress <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid congress")
		}

		state, err := states.Get(c.UserContext(), domain.SyncSourceID(congress))
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error loading sync state")
		}
		if state == nil || state.LastSyncedAt.IsZero() {
			return fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("No sync recorded for congress %d", congress))
		}

		return c.JSON(state)
	}
}

func APILogsHandler(logs APILogReader, service string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		limit := c.QueryInt("limit", defaultPageSize)
		if limit <= 0 || limit > maxPageSize {
			limit = defaultPageSize
		}

		calls, err := logs.Recent(c.UserContext(), c.Query("service", service), limit)
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Error loading api logs")
		}

		return c.JSON(fiber.Map{"calls": calls, "count": len(calls)})
	}
}

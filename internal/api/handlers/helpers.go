package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/screenline/console-api/internal/transfer"
)

func GetSessionID(c *fiber.Ctx) string {
	sessionID, _ := c.Locals("session_id").(string)
	return sessionID
}

// outcomeStatus maps an outcome category onto the HTTP status the
// console API reports to its own client.
func outcomeStatus(o *transfer.Outcome) int {
	switch o.Category {
	case transfer.OutcomeAccepted:
		return fiber.StatusAccepted
	case transfer.OutcomeSuccess:
		return fiber.StatusOK
	case transfer.OutcomeValidation, transfer.OutcomeValidationError:
		return fiber.StatusBadRequest
	case transfer.OutcomeAuthError:
		return fiber.StatusUnauthorized
	case transfer.OutcomeCapacityError:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusBadGateway
	}
}

func sendOutcome(c *fiber.Ctx, o *transfer.Outcome) error {
	return c.Status(outcomeStatus(o)).JSON(o)
}

func probeDelay(intervalSeconds int) time.Duration {
	return time.Duration(intervalSeconds) * time.Second
}

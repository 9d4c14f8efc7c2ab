package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/screenline/console-api/internal/service"
	"github.com/screenline/console-api/internal/transfer"
)

type DeviceHandler struct {
	s service.DeviceService
}

func NewDeviceHandler(s service.DeviceService) *DeviceHandler {
	return &DeviceHandler{s: s}
}

func (h *DeviceHandler) ListDevices(c *fiber.Ctx) error {
	devices, err := h.s.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Unable to list devices",
		})
	}
	return c.Status(fiber.StatusOK).JSON(devices)
}

func (h *DeviceHandler) CreateDevice(c *fiber.Ctx) error {
	var payload transfer.DeviceCreate
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	return sendOutcome(c, h.s.Create(c.UserContext(), &payload))
}

func (h *DeviceHandler) UpdateDevice(c *fiber.Ctx) error {
	var payload transfer.DeviceUpdate
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	return sendOutcome(c, h.s.Update(c.UserContext(), c.Params("id"), &payload))
}

func (h *DeviceHandler) DeleteDevice(c *fiber.Ctx) error {
	return sendOutcome(c, h.s.Remove(c.UserContext(), c.Params("id")))
}

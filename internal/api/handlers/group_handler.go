package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/screenline/console-api/internal/service"
	"github.com/screenline/console-api/internal/transfer"
)

type GroupHandler struct {
	s service.GroupService
}

func NewGroupHandler(s service.GroupService) *GroupHandler {
	return &GroupHandler{s: s}
}

func (h *GroupHandler) ListGroups(c *fiber.Ctx) error {
	groups, err := h.s.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Unable to list groups",
		})
	}
	return c.Status(fiber.StatusOK).JSON(groups)
}

func (h *GroupHandler) CreateGroup(c *fiber.Ctx) error {
	var payload transfer.GroupPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	return sendOutcome(c, h.s.Create(c.UserContext(), &payload))
}

func (h *GroupHandler) UpdateGroup(c *fiber.Ctx) error {
	var payload transfer.GroupPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}
	return sendOutcome(c, h.s.Update(c.UserContext(), c.Params("id"), &payload))
}

func (h *GroupHandler) DeleteGroup(c *fiber.Ctx) error {
	return sendOutcome(c, h.s.Remove(c.UserContext(), c.Params("id")))
}

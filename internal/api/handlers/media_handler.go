package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/hibiken/asynq"
	"github.com/screenline/console-api/internal/models"
	"github.com/screenline/console-api/internal/queue"
	"github.com/screenline/console-api/internal/service"
	"github.com/screenline/console-api/internal/transfer"
)

type MediaHandler struct {
	s             service.MediaService
	AsynqClient   *asynq.Client
	ProbeInterval int // seconds
}

func NewMediaHandler(s service.MediaService, asynqClient *asynq.Client, probeIntervalSeconds int) *MediaHandler {
	return &MediaHandler{s: s, AsynqClient: asynqClient, ProbeInterval: probeIntervalSeconds}
}

func (h *MediaHandler) ListMedia(c *fiber.Ctx) error {
	items, err := h.s.List(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "Unable to list media",
		})
	}
	return c.Status(fiber.StatusOK).JSON(items)
}

// CreateMedia handles URL-reference creation.
func (h *MediaHandler) CreateMedia(c *fiber.Ctx) error {
	var payload transfer.MediaPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	sub := &transfer.URLCreation{
		Groups: models.NewAssignmentSet(payload.GroupIDs...),
		Name:   nameOf(payload.Name),
		URL:    payload.URL,
	}

	outcome := h.s.Submit(c.UserContext(), sub)
	return sendOutcome(c, outcome)
}

// UpdateMedia handles URL-reference edits. There is no upload edit path;
// an existing item is only ever repointed at new URL content.
func (h *MediaHandler) UpdateMedia(c *fiber.Ctx) error {
	var payload transfer.MediaPayload
	if err := c.BodyParser(&payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	sub := &transfer.URLEdit{
		MediaID: c.Params("id"),
		Groups:  models.NewAssignmentSet(payload.GroupIDs...),
		Name:    nameOf(payload.Name),
		URL:     payload.URL,
	}

	outcome := h.s.Submit(c.UserContext(), sub)
	return sendOutcome(c, outcome)
}

// UploadMedia handles binary creation via the upload-intake endpoint.
func (h *MediaHandler) UploadMedia(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		slog.Error(err.Error())
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse form",
		})
	}

	groupIDs := form.Value["groupIds[]"]
	if len(groupIDs) == 0 {
		groupIDs = form.Value["groupIds"]
	}

	sub := &transfer.UploadCreation{
		Groups: models.NewAssignmentSet(groupIDs...),
		Name:   c.FormValue("name"),
	}
	if files := form.File["file"]; len(files) > 0 {
		sub.File = files[0]
	}

	outcome := h.s.Submit(c.UserContext(), sub)

	if outcome.Category == transfer.OutcomeAccepted && outcome.MediaID != "" {
		err := queue.EnqueueStatusProbe(h.AsynqClient, queue.StatusProbePayload{
			MediaID:   outcome.MediaID,
			SessionID: GetSessionID(c),
		}, probeDelay(h.ProbeInterval))
		if err != nil {
			slog.Info(err.Error())
		}
	}

	return sendOutcome(c, outcome)
}

func (h *MediaHandler) DeleteMedia(c *fiber.Ctx) error {
	outcome := h.s.Remove(c.UserContext(), c.Params("id"))
	return sendOutcome(c, outcome)
}

// RetryMedia re-submits the archived payload of a previously accepted
// upload as a new item.
func (h *MediaHandler) RetryMedia(c *fiber.Ctx) error {
	outcome := h.s.Retry(c.UserContext(), c.Params("id"))

	if outcome.Category == transfer.OutcomeAccepted && outcome.MediaID != "" {
		err := queue.EnqueueStatusProbe(h.AsynqClient, queue.StatusProbePayload{
			MediaID:   outcome.MediaID,
			SessionID: GetSessionID(c),
		}, probeDelay(h.ProbeInterval))
		if err != nil {
			slog.Info(err.Error())
		}
	}

	return sendOutcome(c, outcome)
}

func nameOf(name *string) string {
	if name == nil {
		return ""
	}
	return *name
}

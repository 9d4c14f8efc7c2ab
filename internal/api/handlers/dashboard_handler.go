package handlers

import (
	"context"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/screenline/console-api/internal/service"
	"github.com/screenline/console-api/internal/transfer"
)

type DashboardHandler struct {
	devices service.DeviceService
	groups  service.GroupService
	media   service.MediaService
}

func NewDashboardHandler(devices service.DeviceService, groups service.GroupService, media service.MediaService) *DashboardHandler {
	return &DashboardHandler{devices: devices, groups: groups, media: media}
}

// GetStats fetches the three counters concurrently. A failing fetch
// simply contributes zero; the dashboard is informational.
func (h *DashboardHandler) GetStats(c *fiber.Ctx) error {
	ctx := c.UserContext()
	var stats transfer.DashboardStats

	var wg sync.WaitGroup
	wg.Add(3)

	go func(ctx context.Context) {
		defer wg.Done()
		if devices, err := h.devices.List(ctx); err == nil {
			stats.Devices = len(devices)
		}
	}(ctx)

	go func(ctx context.Context) {
		defer wg.Done()
		if groups, err := h.groups.List(ctx); err == nil {
			stats.Groups = len(groups)
		}
	}(ctx)

	go func(ctx context.Context) {
		defer wg.Done()
		if media, err := h.media.List(ctx); err == nil {
			stats.Media = len(media)
		}
	}(ctx)

	wg.Wait()
	return c.Status(fiber.StatusOK).JSON(stats)
}

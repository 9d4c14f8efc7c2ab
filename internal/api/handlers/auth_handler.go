package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	config "github.com/screenline/console-api/configs"
	"github.com/screenline/console-api/internal/service"
	"github.com/screenline/console-api/internal/transfer"
)

type AuthHandler struct {
	s   service.AuthService
	cfg config.Config
}

func NewAuthHandler(cfg config.Config, s service.AuthService) *AuthHandler {
	return &AuthHandler{s: s, cfg: cfg}
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req transfer.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	sessionToken, outcome := h.s.Login(c.UserContext(), req.Username, req.Password)
	if !outcome.OK() {
		return sendOutcome(c, outcome)
	}

	c.Cookie(&fiber.Cookie{
		Name:     h.cfg.CookieName,
		Value:    sessionToken,
		HTTPOnly: true,
		Secure:   false,
		SameSite: fiber.CookieSameSiteLaxMode,
		Path:     "/",
		Expires:  time.Now().Add(h.cfg.SessionTTL),
	})

	return sendOutcome(c, outcome)
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.s.Logout(c.UserContext())

	c.Cookie(&fiber.Cookie{
		Name:   h.cfg.CookieName,
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})

	return c.SendStatus(fiber.StatusOK)
}

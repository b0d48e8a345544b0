package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-console/internal/api/dto"
	"github.com/spec-kit/rental-console/internal/service"
	apperrors "github.com/spec-kit/rental-console/pkg/util/errorutil"
)

// SessionHandler exposes login, registration and the session itself.
type SessionHandler struct {
	auth *service.AuthService
}

// NewSessionHandler constructs handler.
func NewSessionHandler(authService *service.AuthService) *SessionHandler {
	return &SessionHandler{auth: authService}
}

// Login handles POST /auth/login.
func (h *SessionHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	user, err := h.auth.Login(c.UserContext(), req.Account, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user":    user,
			"session": h.auth.State(),
		},
	})
}

// Register handles POST /auth/register.
func (h *SessionHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	id, err := h.auth.Register(c.UserContext(), req.ToDomain())
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{"id": id},
	})
}

// Logout handles POST /auth/logout.
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	if err := h.auth.Logout(c.UserContext()); err != nil {
		return apperrors.NewInternalError(err)
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{"session": h.auth.State()},
	})
}

// Session handles GET /auth/session.
func (h *SessionHandler) Session(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.auth.State()})
}

// Refresh handles POST /auth/refresh.
func (h *SessionHandler) Refresh(c *fiber.Ctx) error {
	user, err := h.auth.Refresh(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"user":    user,
			"session": h.auth.State(),
		},
	})
}

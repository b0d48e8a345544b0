package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/rental-console/internal/notify"
)

// NotificationsHandler hands pending notices to the UI.
type NotificationsHandler struct {
	inbox *notify.Inbox
}

// NewNotificationsHandler constructs handler.
func NewNotificationsHandler(inbox *notify.Inbox) *NotificationsHandler {
	return &NotificationsHandler{inbox: inbox}
}

// List handles GET /notifications. Notices are returned once.
func (h *NotificationsHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.inbox.Drain()})
}

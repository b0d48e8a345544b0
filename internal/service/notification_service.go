package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/rental-console/internal/events"
	"github.com/spec-kit/rental-console/internal/notify"
)

// NotificationService turns session and request events into operator notices.
type NotificationService struct {
	dispatcher events.Dispatcher
	inbox      *notify.Inbox
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, inbox *notify.Inbox, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &NotificationService{
		dispatcher: dispatcher,
		inbox:      inbox,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventRequestFailed, n.handleRequestFailed)
	n.dispatcher.Subscribe(events.EventSessionEstablished, n.handleSessionEstablished)
	n.dispatcher.Subscribe(events.EventSessionCleared, n.handleSessionCleared)
	n.dispatcher.Subscribe(events.EventCredentialRotated, n.handleCredentialRotated)
}

func (n *NotificationService) handleRequestFailed(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.RequestFailedPayload)
	if !ok {
		return fmt.Errorf("request_failed: unexpected payload %T", event.Payload)
	}
	n.logger.Info("RequestFailed",
		zap.String("code", payload.Code),
		zap.String("path", payload.Path),
		zap.Int("status", payload.Status))
	n.push(event, notify.LevelError, payload.Code, payload.Message)
	return nil
}

func (n *NotificationService) handleSessionEstablished(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.SessionEstablishedPayload)
	if !ok {
		return fmt.Errorf("session_established: unexpected payload %T", event.Payload)
	}
	n.logger.Info("SessionEstablished", zap.Int64("user_id", payload.UserID), zap.Bool("admin", payload.Admin))
	n.push(event, notify.LevelInfo, "", fmt.Sprintf("welcome, %s", payload.DisplayName))
	return nil
}

func (n *NotificationService) handleSessionCleared(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.SessionClearedPayload)
	n.logger.Info("SessionCleared", zap.String("reason", payload.Reason))
	return nil
}

func (n *NotificationService) handleCredentialRotated(_ context.Context, event events.Event) error {
	payload, _ := event.Payload.(events.CredentialRotatedPayload)
	n.logger.Debug("CredentialRotated", zap.String("credential_name", payload.CredentialName))
	return nil
}

func (n *NotificationService) push(event events.Event, level notify.Level, code, message string) {
	if n.inbox == nil || message == "" {
		return
	}
	n.inbox.Push(notify.Notice{
		ID:        event.ID,
		Level:     level,
		Code:      code,
		Message:   message,
		CreatedAt: event.Timestamp,
	})
}

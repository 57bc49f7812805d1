package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/spec-kit/employee-service/internal/config"
	"github.com/spec-kit/employee-service/internal/events"
)

// AuditService records account lifecycle events and emits notification
// stubs for them.
type AuditService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewAuditService creates the service.
func NewAuditService(dispatcher events.Dispatcher, logger *zap.Logger, cfg config.NotificationConfig) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventEmployeeSignedUp, a.handleEmployeeSignedUp)
	a.dispatcher.Subscribe(events.EventEmployeeUpdated, a.handleEmployeeUpdated)
	a.dispatcher.Subscribe(events.EventEmployeeDeleted, a.handleEmployeeDeleted)
}

func (a *AuditService) handleEmployeeSignedUp(ctx context.Context, event events.Event) error {
	a.logger.Info("EmployeeSignedUp", zap.String("employee_id", event.EmployeeID), zap.Any("payload", event.Payload))
	a.sendEmailNotificationStub(ctx, event)
	a.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (a *AuditService) handleEmployeeUpdated(ctx context.Context, event events.Event) error {
	a.logger.Info("EmployeeUpdated",
		zap.String("employee_id", event.EmployeeID),
		zap.String("actor_id", event.Actor.EmpID),
		zap.Any("payload", event.Payload))
	a.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (a *AuditService) handleEmployeeDeleted(ctx context.Context, event events.Event) error {
	a.logger.Info("EmployeeDeleted",
		zap.String("employee_id", event.EmployeeID),
		zap.String("actor_id", event.Actor.EmpID))
	a.sendWebhookNotificationStub(ctx, event)
	return nil
}

func (a *AuditService) sendEmailNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(a.cfg.EmailFrom) == "" {
		return
	}
	a.logger.Debug("sendEmailNotificationStub",
		zap.String("from", a.cfg.EmailFrom),
		zap.String("employee_id", event.EmployeeID),
		zap.String("event_type", string(event.Type)))
}

func (a *AuditService) sendWebhookNotificationStub(ctx context.Context, event events.Event) {
	if strings.TrimSpace(a.cfg.WebhookURL) == "" {
		return
	}
	a.logger.Debug("sendWebhookNotificationStub",
		zap.String("url", a.cfg.WebhookURL),
		zap.String("employee_id", event.EmployeeID),
		zap.String("event_type", string(event.Type)))
}

package notification

import (
	"context"
	"fmt"

	"go-workforce/internal/events"
	notificationerrors "go-workforce/internal/notification/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	RecordLifecycleEvent(ctx context.Context, event events.SheetLifecycleEvent) error
	ListForEmployee(ctx context.Context, employeeID int64) ([]Notification, error)
	MarkRead(ctx context.Context, id, employeeID int64) error
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

// RecordLifecycleEvent materializes one inbox row per lifecycle event.
func (s *service) RecordLifecycleEvent(ctx context.Context, event events.SheetLifecycleEvent) error {
	n := &Notification{
		EmployeeID: event.EmployeeID,
		SheetType:  event.SheetType,
		SheetID:    event.SheetID,
		EventType:  event.EventType,
		Period:     event.Period,
		Message:    lifecycleMessage(event),
	}

	if err := s.repo.Create(ctx, n); err != nil {
		s.logger.Error("record notification failed",
			zap.String("event_type", event.EventType),
			zap.Int64("sheet_id", event.SheetID),
			zap.Error(err),
		)
		return err
	}

	s.logger.Info("notification recorded",
		zap.String("event_type", event.EventType),
		zap.Int64("employee_id", event.EmployeeID),
	)
	return nil
}

func (s *service) ListForEmployee(ctx context.Context, employeeID int64) ([]Notification, error) {
	notifications, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list notifications failed", zap.Int64("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return notifications, nil
}

func (s *service) MarkRead(ctx context.Context, id, employeeID int64) error {
	affected, err := s.repo.MarkRead(ctx, id, employeeID)
	if err != nil {
		s.logger.Error("mark notification read failed", zap.Int64("notification_id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		return notificationerrors.ErrNotificationNotFound
	}
	return nil
}

func lifecycleMessage(event events.SheetLifecycleEvent) string {
	switch event.EventType {
	case events.EventTimesheetSaved:
		return fmt.Sprintf("Timesheet for week ending %s was saved", event.Period)
	case events.EventTimesheetProcessed:
		return fmt.Sprintf("Timesheet for week ending %s was processed", event.Period)
	case events.EventExpenseSaved:
		return fmt.Sprintf("Expense sheet for %s was saved", event.Period)
	case events.EventExpensePaid:
		return fmt.Sprintf("Expense sheet for %s was paid", event.Period)
	default:
		return fmt.Sprintf("%s %s was updated", event.SheetType, event.Period)
	}
}

package approval

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	approvalerrors "go-workforce/internal/approval/errors"
	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=approval_service.go -destination=mock/approval_service_mock.go -package=mock
type Service interface {
	SaveTimesheetStatuses(ctx context.Context, changes []TimesheetStatusChange) ([]StatusChangeResult, error)
	SaveExpenseStatuses(ctx context.Context, changes []ExpenseStatusChange) ([]StatusChangeResult, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("approval.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("approval.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

// SaveTimesheetStatuses applies a batch of status changes in one transaction.
// Marking a sheet processed stamps date_processed and queues the lifecycle
// event; a missing id anywhere in the batch fails the whole batch.
func (s *service) SaveTimesheetStatuses(ctx context.Context, changes []TimesheetStatusChange) ([]StatusChangeResult, error) {
	if len(changes) == 0 {
		return nil, approvalerrors.ErrNoTimesheetData
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("timesheet status change begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	results := make([]StatusChangeResult, 0, len(changes))
	for _, change := range changes {
		id := change.ID.Value()
		if id == 0 {
			return nil, approvalerrors.ErrMissingTimesheetID
		}

		sheet, err := qtx.FindTimesheet(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				results = append(results, StatusChangeResult{ID: id, Updated: 0})
				continue
			}
			return nil, err
		}

		var dateProcessed *time.Time
		if change.Processed {
			now := time.Now().UTC()
			dateProcessed = &now
		}

		updated, err := qtx.UpdateTimesheetStatus(ctx, id, map[string]interface{}{
			"approved":       change.Approved,
			"approved_by":    change.ApprovedBy,
			"processed":      change.Processed,
			"processed_by":   change.ProcessedBy,
			"signed":         change.Signed,
			"submitted_by":   change.SubmittedBy,
			"message":        change.Message,
			"date_processed": dateProcessed,
		})
		if err != nil {
			s.logger.Error("timesheet status update failed", zap.Int64("timesheet_id", id), zap.Error(err))
			return nil, err
		}

		if change.Processed && !sheet.Processed {
			if err := s.queueEvent(ctx, tx, events.SheetTypeTimesheet, events.EventTimesheetProcessed,
				sheet.ID, sheet.EmployeeID, sheet.WeekEnding.Format("2006-01-02")); err != nil {
				return nil, err
			}
		}

		results = append(results, StatusChangeResult{ID: id, Updated: updated})
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("timesheet status change commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("timesheet statuses updated", zap.Int("count", len(results)))
	return results, nil
}

// SaveExpenseStatuses is the expense counterpart: paid takes the place of
// processed and stamps date_processed.
func (s *service) SaveExpenseStatuses(ctx context.Context, changes []ExpenseStatusChange) ([]StatusChangeResult, error) {
	if len(changes) == 0 {
		return nil, approvalerrors.ErrNoExpenseData
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("expense status change begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	results := make([]StatusChangeResult, 0, len(changes))
	for _, change := range changes {
		id := change.ID.Value()
		if id == 0 {
			return nil, approvalerrors.ErrMissingExpenseID
		}

		sheet, err := qtx.FindExpense(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				results = append(results, StatusChangeResult{ID: id, Updated: 0})
				continue
			}
			return nil, err
		}

		var dateProcessed *time.Time
		if change.Paid {
			now := time.Now().UTC()
			dateProcessed = &now
		}

		updated, err := qtx.UpdateExpenseStatus(ctx, id, map[string]interface{}{
			"approved":       change.Approved,
			"approved_by":    change.ApprovedBy,
			"paid":           change.Paid,
			"processed_by":   change.ProcessedBy,
			"signed":         change.Signed,
			"submitted_by":   change.SubmittedBy,
			"message":        change.Message,
			"date_processed": dateProcessed,
		})
		if err != nil {
			s.logger.Error("expense status update failed", zap.Int64("expense_id", id), zap.Error(err))
			return nil, err
		}

		if change.Paid && !sheet.Paid {
			if err := s.queueEvent(ctx, tx, events.SheetTypeExpense, events.EventExpensePaid,
				sheet.ID, sheet.EmployeeID, sheet.DateStart.Format("2006-01-02")); err != nil {
				return nil, err
			}
		}

		results = append(results, StatusChangeResult{ID: id, Updated: updated})
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("expense status change commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("expense statuses updated", zap.Int("count", len(results)))
	return results, nil
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, sheetType, eventType string, sheetID, employeeID int64, period string) error {
	if s.outbox == nil {
		return nil
	}

	event := events.SheetLifecycleEvent{
		EventType:  eventType,
		SheetType:  sheetType,
		SheetID:    sheetID,
		EmployeeID: employeeID,
		Period:     period,
		OccurredAt: time.Now().UTC(),
	}

	outboxEvent, err := kafka.NewOutboxEvent(
		ctx, sheetType, strconv.FormatInt(sheetID, 10),
		eventType, events.SheetLifecycleTopic, event,
	)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("queue status change event failed",
			zap.String("sheet_type", sheetType),
			zap.Int64("sheet_id", sheetID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

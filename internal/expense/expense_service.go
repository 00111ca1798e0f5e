package expense

import (
	"context"
	"database/sql"
	"errors"
	"math"
	"strconv"
	"time"

	"go-workforce/internal/events"
	expenseerrors "go-workforce/internal/expense/errors"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=expense_service.go -destination=mock/expense_service_mock.go -package=mock
type Service interface {
	Save(ctx context.Context, req SaveExpenseRequest) (SaveExpenseResult, error)
	GetByEmployee(ctx context.Context, requesterID, employeeID int64) ([]Expense, error)
	GetEntries(ctx context.Context, expenseID int64) ([]ExpenseEntry, error)
	Delete(ctx context.Context, id int64) error
	DeleteEntry(ctx context.Context, id int64) (*Expense, error)
	DeleteFile(ctx context.Context, fileID int64) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	files  FileStore
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	files FileStore,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("expense.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("expense.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		files:  files,
		outbox: outboxRepo,
		logger: l,
	}
}

// Save creates or updates an expense sheet with its entries and receipt rows
// in one transaction. Duplicate (employee, date_start) pairs are a business
// conflict; a sheet that has been paid no longer accepts saves.
func (s *service) Save(ctx context.Context, req SaveExpenseRequest) (SaveExpenseResult, error) {
	rid := contextutil.GetRequestID(ctx)

	dateStart, err := parseDateOnly(req.ExpenseData.DateStart)
	if err != nil {
		return SaveExpenseResult{}, expenseerrors.ErrInvalidDateStart
	}
	employeeID := req.ExpenseData.EmployeeID.Value()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("save expense begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SaveExpenseResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	var sheet *Expense
	if id := req.ExpenseData.ID.Value(); id != 0 {
		sheet, err = qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return SaveExpenseResult{}, expenseerrors.ErrExpenseNotFound
			}
			return SaveExpenseResult{}, err
		}
		if sheet.Paid {
			s.logger.Warn("save rejected, expense already paid", zap.Int64("expense_id", id))
			return SaveExpenseResult{}, expenseerrors.ErrAlreadyPaid
		}

		applyExpenseData(sheet, req.ExpenseData, dateStart)
		if err := qtx.Update(ctx, sheet); err != nil {
			s.logger.Error("save expense update failed", zap.Int64("expense_id", id), zap.Error(err))
			return SaveExpenseResult{}, err
		}
	} else {
		_, err := qtx.FindByEmployeeAndStart(ctx, employeeID, dateStart)
		if err == nil {
			s.logger.Info("save rejected, duplicate date_start",
				zap.Int64("employee_id", employeeID),
				zap.Time("date_start", dateStart),
			)
			return SaveExpenseResult{}, expenseerrors.ErrDuplicateDateStart
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return SaveExpenseResult{}, err
		}

		sheet = &Expense{}
		applyExpenseData(sheet, req.ExpenseData, dateStart)
		if err := qtx.Create(ctx, sheet); err != nil {
			s.logger.Error("save expense create failed", zap.Error(err))
			return SaveExpenseResult{}, mapRepositoryError(err)
		}
	}

	savedEntries := make([]ExpenseEntry, 0, len(req.ExpenseEntriesData))
	for _, data := range req.ExpenseEntriesData {
		entry, err := s.saveEntry(ctx, qtx, sheet.ID, data)
		if err != nil {
			return SaveExpenseResult{}, err
		}
		if entry != nil {
			savedEntries = append(savedEntries, *entry)
		}
	}

	for _, receipt := range req.Receipts {
		if err := qtx.CreateFile(ctx, &ExpenseFile{
			ExpenseID:  sheet.ID,
			URL:        receipt.StoredPath,
			UploadDate: time.Now(),
		}); err != nil {
			s.logger.Error("save expense receipt row failed",
				zap.Int64("expense_id", sheet.ID),
				zap.String("path", receipt.StoredPath),
				zap.Error(err),
			)
			return SaveExpenseResult{}, err
		}
	}

	if err := s.queueLifecycleEvent(ctx, tx, sheet); err != nil {
		return SaveExpenseResult{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("save expense commit failed", zap.String("request_id", rid), zap.Error(err))
		return SaveExpenseResult{}, err
	}

	s.logger.Info("expense saved",
		zap.String("request_id", rid),
		zap.Int64("expense_id", sheet.ID),
		zap.Int64("employee_id", sheet.EmployeeID),
		zap.Int("entries", len(savedEntries)),
		zap.Int("receipts", len(req.Receipts)),
	)

	return SaveExpenseResult{Expense: sheet, Entries: savedEntries}, nil
}

func (s *service) saveEntry(ctx context.Context, qtx Repository, expenseID int64, data ExpenseEntryData) (*ExpenseEntry, error) {
	filled := data.meaningfullyFilled()

	if id := data.ID.Value(); id != 0 {
		existing, err := qtx.FindEntryByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Warn("save expense entry not found", zap.Int64("entry_id", id))
				return nil, expenseerrors.ErrEntryNotFound
			}
			return nil, err
		}

		if !filled {
			if err := qtx.DeleteEntry(ctx, id); err != nil {
				return nil, err
			}
			return nil, nil
		}

		applyEntryData(existing, data)
		if err := qtx.UpdateEntry(ctx, existing); err != nil {
			return nil, err
		}
		return existing, nil
	}

	if !filled {
		return nil, nil
	}

	entry := &ExpenseEntry{ExpenseID: expenseID}
	applyEntryData(entry, data)
	if err := qtx.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

func (s *service) GetByEmployee(ctx context.Context, requesterID, employeeID int64) ([]Expense, error) {
	if requesterID != employeeID {
		return nil, expenseerrors.ErrNotSheetOwner
	}

	sheets, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("get expenses failed", zap.Int64("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return sheets, nil
}

func (s *service) GetEntries(ctx context.Context, expenseID int64) ([]ExpenseEntry, error) {
	entries, err := s.repo.FindEntriesByExpenseID(ctx, expenseID)
	if err != nil {
		s.logger.Error("get expense entries failed", zap.Int64("expense_id", expenseID), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Delete removes a sheet and all of its entries.
func (s *service) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete expense begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteEntriesByExpenseID(ctx, id); err != nil {
		return err
	}

	affected, err := qtx.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return expenseerrors.ErrExpenseNotFound
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete expense commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("expense deleted", zap.Int64("expense_id", id))
	return nil
}

// DeleteEntry removes one entry and recomputes the parent sheet total from
// the remaining entries, atomically.
func (s *service) DeleteEntry(ctx context.Context, id int64) (*Expense, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete expense entry begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	entry, err := qtx.FindEntryByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, expenseerrors.ErrEntryNotFound
		}
		return nil, err
	}

	if err := qtx.DeleteEntry(ctx, id); err != nil {
		return nil, err
	}

	remaining, err := qtx.FindEntriesByExpenseID(ctx, entry.ExpenseID)
	if err != nil {
		return nil, err
	}

	var total float64
	for _, e := range remaining {
		total += e.entryTotal()
	}
	total = math.Round(total*100) / 100

	sheet, err := qtx.FindByID(ctx, entry.ExpenseID)
	if err != nil {
		return nil, err
	}
	sheet.Total = total
	if err := qtx.Update(ctx, sheet); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete expense entry commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("expense entry deleted",
		zap.Int64("entry_id", id),
		zap.Int64("expense_id", entry.ExpenseID),
		zap.Float64("new_total", total),
	)
	return sheet, nil
}

// DeleteFile removes the receipt row and its file on disk. A file already
// missing from disk is logged, not fatal.
func (s *service) DeleteFile(ctx context.Context, fileID int64) error {
	file, err := s.repo.FindFileByID(ctx, fileID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return expenseerrors.ErrFileNotFound
		}
		return err
	}

	if s.files != nil {
		if err := s.files.Remove(file.URL); err != nil {
			s.logger.Error("delete receipt from disk failed",
				zap.Int64("file_id", fileID),
				zap.String("path", file.URL),
				zap.Error(err),
			)
			return err
		}
	}

	if err := s.repo.DeleteFile(ctx, fileID); err != nil {
		return err
	}

	s.logger.Info("expense file deleted", zap.Int64("file_id", fileID))
	return nil
}

func (s *service) queueLifecycleEvent(ctx context.Context, tx *sql.Tx, sheet *Expense) error {
	if s.outbox == nil {
		return nil
	}

	eventType := events.EventExpenseSaved
	if sheet.Paid {
		eventType = events.EventExpensePaid
	}

	event := events.SheetLifecycleEvent{
		EventType:  eventType,
		SheetType:  events.SheetTypeExpense,
		SheetID:    sheet.ID,
		EmployeeID: sheet.EmployeeID,
		Period:     sheet.DateStart.Format("2006-01-02"),
		OccurredAt: time.Now().UTC(),
	}

	outboxEvent, err := kafka.NewOutboxEvent(
		ctx, events.SheetTypeExpense, strconv.FormatInt(sheet.ID, 10),
		eventType, events.SheetLifecycleTopic, event,
	)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("queue expense lifecycle event failed",
			zap.Int64("expense_id", sheet.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func applyExpenseData(sheet *Expense, data ExpenseData, dateStart time.Time) {
	sheet.EmployeeID = data.EmployeeID.Value()
	sheet.DateStart = dateStart
	sheet.NumOfDays = int(data.NumOfDays.Value())
	sheet.Signed = data.Signed
	sheet.Approved = data.Approved
	sheet.Paid = data.Paid
	sheet.Total = data.Total.Value()
	sheet.ApprovedBy = orNone(data.ApprovedBy)
	sheet.ProcessedBy = orNone(data.ProcessedBy)
	sheet.SubmittedBy = orNone(data.SubmittedBy)
	sheet.Message = orNone(data.Message)

	if data.DatePaid != "" {
		if paid, err := parseDateOnly(data.DatePaid); err == nil {
			sheet.DatePaid = &paid
		}
	} else {
		sheet.DatePaid = nil
	}
}

func applyEntryData(entry *ExpenseEntry, data ExpenseEntryData) {
	entry.ProjectID = data.ProjectID.OrDefault(2)
	entry.Purpose = orNothing(data.Purpose)
	if day := data.Day.Value(); day != 0 {
		d := int(day)
		entry.Day = &d
	} else {
		entry.Day = nil
	}
	entry.DestinationName = data.DestinationName
	entry.DestinationCost = data.DestinationCost.Value()
	entry.LodgingCost = data.LodgingCost.Value()
	entry.OtherExpenseCost = data.OtherExpenseCost.Value()
	entry.CarRentalCost = data.CarRentalCost.Value()
	entry.Miles = data.Miles.Value()
	entry.MilesCost = data.MilesCost.Value()
	entry.PerdiemCost = data.PerdiemCost.Value()
	entry.EntertainmentCost = data.EntertainmentCost.Value()
	entry.MiscellaneousDescriptionID = data.MiscellaneousDescriptionID.OrDefault(1)
	entry.MiscellaneousAmount = data.MiscellaneousAmount.Value()
}

func orNone(v string) string {
	if v == "" {
		return "None"
	}
	return v
}

func orNothing(v string) string {
	if v == "" {
		return defaultPurpose
	}
	return v
}

func parseDateOnly(v string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

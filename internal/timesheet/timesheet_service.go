package timesheet

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"go-workforce/internal/events"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/shared/contextutil"
	timesheeterrors "go-workforce/internal/timesheet/errors"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

//go:generate mockgen -source=timesheet_service.go -destination=mock/timesheet_service_mock.go -package=mock
type Service interface {
	Save(ctx context.Context, req SaveTimesheetRequest) (SaveTimesheetResult, error)
	EditEntries(ctx context.Context, req EditEntriesRequest) ([]TimesheetEntry, error)
	Sign(ctx context.Context, id int64, signed bool, signedBy string) (*Timesheet, error)
	GetByEmployee(ctx context.Context, requesterID, employeeID int64) ([]Timesheet, error)
	GetEntries(ctx context.Context, timesheetID int64) ([]TimesheetEntry, error)
	Delete(ctx context.Context, id int64) error
	DeleteEntry(ctx context.Context, id int64) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("timesheet.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("timesheet.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		outbox: outboxRepo,
		logger: l,
	}
}

// Save creates or updates a weekly sheet with its entries in one transaction.
// A new sheet for an (employee, week_ending) pair that already exists is a
// business conflict, not an error status. Entries referencing an unknown id
// fail the whole save; entries with no meaningful data are skipped or, when
// they already exist, deleted.
func (s *service) Save(ctx context.Context, req SaveTimesheetRequest) (SaveTimesheetResult, error) {
	rid := contextutil.GetRequestID(ctx)

	weekEnding, err := parseDateOnly(req.TimesheetData.WeekEnding)
	if err != nil {
		return SaveTimesheetResult{}, timesheeterrors.ErrInvalidWeekEnding
	}
	employeeID := req.TimesheetData.EmployeeID.Value()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("save timesheet begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return SaveTimesheetResult{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	var sheet *Timesheet
	if id := req.TimesheetData.ID.Value(); id != 0 {
		sheet, err = qtx.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return SaveTimesheetResult{}, timesheeterrors.ErrTimesheetNotFound
			}
			return SaveTimesheetResult{}, err
		}
		if sheet.Processed {
			s.logger.Warn("save rejected, timesheet already processed",
				zap.Int64("timesheet_id", id),
			)
			return SaveTimesheetResult{}, timesheeterrors.ErrAlreadyProcessed
		}

		applyTimesheetData(sheet, req.TimesheetData, weekEnding)
		if err := qtx.Update(ctx, sheet); err != nil {
			s.logger.Error("save timesheet update failed", zap.Int64("timesheet_id", id), zap.Error(err))
			return SaveTimesheetResult{}, err
		}
	} else {
		_, err := qtx.FindByEmployeeAndWeek(ctx, employeeID, weekEnding)
		if err == nil {
			s.logger.Info("save rejected, duplicate week",
				zap.Int64("employee_id", employeeID),
				zap.Time("week_ending", weekEnding),
			)
			return SaveTimesheetResult{}, timesheeterrors.ErrDuplicateWeek
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return SaveTimesheetResult{}, err
		}

		sheet = &Timesheet{}
		applyTimesheetData(sheet, req.TimesheetData, weekEnding)
		if err := qtx.Create(ctx, sheet); err != nil {
			s.logger.Error("save timesheet create failed", zap.Error(err))
			return SaveTimesheetResult{}, mapRepositoryError(err)
		}
	}

	savedEntries := make([]TimesheetEntry, 0, len(req.TimesheetEntryData))
	for _, data := range req.TimesheetEntryData {
		entry, err := s.saveEntry(ctx, qtx, sheet.ID, data)
		if err != nil {
			return SaveTimesheetResult{}, err
		}
		if entry != nil {
			savedEntries = append(savedEntries, *entry)
		}
	}

	if err := s.queueLifecycleEvent(ctx, tx, sheet); err != nil {
		return SaveTimesheetResult{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("save timesheet commit failed", zap.String("request_id", rid), zap.Error(err))
		return SaveTimesheetResult{}, err
	}

	s.logger.Info("timesheet saved",
		zap.String("request_id", rid),
		zap.Int64("timesheet_id", sheet.ID),
		zap.Int64("employee_id", sheet.EmployeeID),
		zap.Int("entries", len(savedEntries)),
	)

	return SaveTimesheetResult{Timesheet: sheet, Entries: savedEntries}, nil
}

// saveEntry applies the meaningful-fill rules to a single entry row. A nil
// entry with nil error means the row was skipped or deleted.
func (s *service) saveEntry(ctx context.Context, qtx Repository, timesheetID int64, data TimesheetEntryData) (*TimesheetEntry, error) {
	filled := data.meaningfullyFilled()

	if id := data.ID.Value(); id != 0 {
		existing, err := qtx.FindEntryByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				s.logger.Warn("save timesheet entry not found", zap.Int64("entry_id", id))
				return nil, timesheeterrors.ErrEntryNotFound
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

	entry := &TimesheetEntry{TimesheetID: timesheetID}
	applyEntryData(entry, data)
	if err := qtx.CreateEntry(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// EditEntries upserts entry rows for an existing sheet. Rows carrying an id
// update the matching row scoped to the sheet; anything else is inserted.
func (s *service) EditEntries(ctx context.Context, req EditEntriesRequest) ([]TimesheetEntry, error) {
	timesheetID := req.TimesheetID.Value()
	if timesheetID == 0 || req.Entries == nil {
		return nil, timesheeterrors.ErrInvalidRequestData
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("edit entries begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	saved := make([]TimesheetEntry, 0, len(req.Entries))
	for _, data := range req.Entries {
		var entry *TimesheetEntry

		if id := data.ID.Value(); id != 0 {
			existing, err := qtx.FindEntryByID(ctx, id)
			switch {
			case err == nil && existing.TimesheetID == timesheetID:
				applyEntryData(existing, data)
				if err := qtx.UpdateEntry(ctx, existing); err != nil {
					return nil, err
				}
				entry = existing
			case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
				return nil, err
			}
		}

		if entry == nil {
			entry = &TimesheetEntry{TimesheetID: timesheetID}
			applyEntryData(entry, data)
			if err := qtx.CreateEntry(ctx, entry); err != nil {
				return nil, err
			}
		}

		saved = append(saved, *entry)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("edit entries commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("timesheet entries saved",
		zap.Int64("timesheet_id", timesheetID),
		zap.Int("entries", len(saved)),
	)
	return saved, nil
}

func (s *service) Sign(ctx context.Context, id int64, signed bool, signedBy string) (*Timesheet, error) {
	sheet, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, timesheeterrors.ErrTimesheetNotFound
		}
		return nil, err
	}

	sheet.Signed = signed
	sheet.SubmittedBy = signedBy
	if err := s.repo.Update(ctx, sheet); err != nil {
		s.logger.Error("sign timesheet failed", zap.Int64("timesheet_id", id), zap.Error(err))
		return nil, err
	}

	s.logger.Info("timesheet signed",
		zap.Int64("timesheet_id", id),
		zap.Bool("signed", signed),
	)
	return sheet, nil
}

func (s *service) GetByEmployee(ctx context.Context, requesterID, employeeID int64) ([]Timesheet, error) {
	if requesterID != employeeID {
		return nil, timesheeterrors.ErrNotSheetOwner
	}

	sheets, err := s.repo.FindAllByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("get timesheets failed", zap.Int64("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return sheets, nil
}

func (s *service) GetEntries(ctx context.Context, timesheetID int64) ([]TimesheetEntry, error) {
	entries, err := s.repo.FindEntriesByTimesheetID(ctx, timesheetID)
	if err != nil {
		s.logger.Error("get timesheet entries failed", zap.Int64("timesheet_id", timesheetID), zap.Error(err))
		return nil, err
	}
	return entries, nil
}

// Delete removes a sheet and all of its entries.
func (s *service) Delete(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete timesheet begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.DeleteEntriesByTimesheetID(ctx, id); err != nil {
		return err
	}

	affected, err := qtx.Delete(ctx, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return timesheeterrors.ErrTimesheetNotFound
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete timesheet commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("timesheet deleted", zap.Int64("timesheet_id", id))
	return nil
}

func (s *service) DeleteEntry(ctx context.Context, id int64) error {
	if err := s.repo.DeleteEntry(ctx, id); err != nil {
		s.logger.Error("delete timesheet entry failed", zap.Int64("entry_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("timesheet entry deleted", zap.Int64("entry_id", id))
	return nil
}

func (s *service) queueLifecycleEvent(ctx context.Context, tx *sql.Tx, sheet *Timesheet) error {
	if s.outbox == nil {
		return nil
	}

	eventType := events.EventTimesheetSaved
	if sheet.Processed {
		eventType = events.EventTimesheetProcessed
	}

	event := events.SheetLifecycleEvent{
		EventType:  eventType,
		SheetType:  events.SheetTypeTimesheet,
		SheetID:    sheet.ID,
		EmployeeID: sheet.EmployeeID,
		Period:     sheet.WeekEnding.Format("2006-01-02"),
		OccurredAt: time.Now().UTC(),
	}

	outboxEvent, err := kafka.NewOutboxEvent(
		ctx, events.SheetTypeTimesheet, strconv.FormatInt(sheet.ID, 10),
		eventType, events.SheetLifecycleTopic, event,
	)
	if err != nil {
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, outboxEvent); err != nil {
		s.logger.Error("queue timesheet lifecycle event failed",
			zap.Int64("timesheet_id", sheet.ID),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func applyTimesheetData(sheet *Timesheet, data TimesheetData, weekEnding time.Time) {
	sheet.EmployeeID = data.EmployeeID.Value()
	sheet.WeekEnding = weekEnding
	sheet.TotalRegHours = data.TotalRegHours.Value()
	sheet.TotalOvertime = data.TotalOvertime.Value()
	sheet.Approved = data.Approved
	sheet.Signed = data.Signed
	sheet.Processed = data.Processed
	sheet.ApprovedBy = orNone(data.ApprovedBy)
	sheet.ProcessedBy = orNone(data.ProcessedBy)
	sheet.SubmittedBy = orNone(data.SubmittedBy)
	sheet.Message = orNone(data.Message)
}

func applyEntryData(entry *TimesheetEntry, data TimesheetEntryData) {
	entry.ProjectID = data.ProjectID.Value()
	entry.PhaseID = data.PhaseID.Value()
	entry.CostCodeID = data.CostCodeID.Value()
	if v := data.RowIndex.Value(); v != 0 || entry.RowIndex == nil {
		idx := int(v)
		entry.RowIndex = &idx
	}
	entry.Description = data.Description
	entry.MonReg = data.MonReg.Value()
	entry.TueReg = data.TueReg.Value()
	entry.WedReg = data.WedReg.Value()
	entry.ThuReg = data.ThuReg.Value()
	entry.FriReg = data.FriReg.Value()
	entry.SatReg = data.SatReg.Value()
	entry.SunReg = data.SunReg.Value()
	entry.MonOT = data.MonOT.Value()
	entry.TueOT = data.TueOT.Value()
	entry.WedOT = data.WedOT.Value()
	entry.ThuOT = data.ThuOT.Value()
	entry.FriOT = data.FriOT.Value()
	entry.SatOT = data.SatOT.Value()
	entry.SunOT = data.SunOT.Value()
	entry.TotalHours = data.TotalHours.Value()
}

func orNone(v string) string {
	if v == "" {
		return "None"
	}
	return v
}

// parseDateOnly accepts a plain date or a full timestamp and keeps the date
// part.
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

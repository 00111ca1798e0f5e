package timesheet

import (
	"context"
	"database/sql"
	"testing"
	"time"

	kafkamock "go-workforce/internal/messaging/kafka/mock"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/numeric"
	timesheeterrors "go-workforce/internal/timesheet/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type fakeRepo struct {
	sheets  map[int64]*Timesheet
	entries map[int64]*TimesheetEntry

	nextSheetID int64
	nextEntryID int64

	createdEntries int
	updatedEntries int
	deletedEntries []int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		sheets:      map[int64]*Timesheet{},
		entries:     map[int64]*TimesheetEntry{},
		nextSheetID: 1,
		nextEntryID: 100,
	}
}

func (f *fakeRepo) WithTx(_ *sql.Tx) Repository { return f }

func (f *fakeRepo) Create(_ context.Context, sheet *Timesheet) error {
	sheet.ID = f.nextSheetID
	f.nextSheetID++
	f.sheets[sheet.ID] = sheet
	return nil
}

func (f *fakeRepo) Update(_ context.Context, sheet *Timesheet) error {
	f.sheets[sheet.ID] = sheet
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*Timesheet, error) {
	sheet, ok := f.sheets[id]
	if !ok {
		return &Timesheet{}, gorm.ErrRecordNotFound
	}
	cp := *sheet
	return &cp, nil
}

func (f *fakeRepo) FindByEmployeeAndWeek(_ context.Context, employeeID int64, weekEnding time.Time) (*Timesheet, error) {
	for _, sheet := range f.sheets {
		if sheet.EmployeeID == employeeID && sheet.WeekEnding.Equal(weekEnding) {
			cp := *sheet
			return &cp, nil
		}
	}
	return &Timesheet{}, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindAllByEmployee(_ context.Context, employeeID int64) ([]Timesheet, error) {
	var out []Timesheet
	for _, sheet := range f.sheets {
		if sheet.EmployeeID == employeeID {
			out = append(out, *sheet)
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := f.sheets[id]; !ok {
		return 0, nil
	}
	delete(f.sheets, id)
	return 1, nil
}

func (f *fakeRepo) CreateEntry(_ context.Context, entry *TimesheetEntry) error {
	entry.ID = f.nextEntryID
	f.nextEntryID++
	f.entries[entry.ID] = entry
	f.createdEntries++
	return nil
}

func (f *fakeRepo) UpdateEntry(_ context.Context, entry *TimesheetEntry) error {
	f.entries[entry.ID] = entry
	f.updatedEntries++
	return nil
}

func (f *fakeRepo) FindEntryByID(_ context.Context, id int64) (*TimesheetEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return &TimesheetEntry{}, gorm.ErrRecordNotFound
	}
	cp := *entry
	return &cp, nil
}

func (f *fakeRepo) FindEntriesByTimesheetID(_ context.Context, timesheetID int64) ([]TimesheetEntry, error) {
	var out []TimesheetEntry
	for _, entry := range f.entries {
		if entry.TimesheetID == timesheetID {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteEntry(_ context.Context, id int64) error {
	delete(f.entries, id)
	f.deletedEntries = append(f.deletedEntries, id)
	return nil
}

func (f *fakeRepo) DeleteEntriesByTimesheetID(_ context.Context, timesheetID int64) error {
	for id, entry := range f.entries {
		if entry.TimesheetID == timesheetID {
			delete(f.entries, id)
		}
	}
	return nil
}

func newTestService(t *testing.T, repo Repository) (Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(db, repo, nil), mock
}

func filledEntry() TimesheetEntryData {
	return TimesheetEntryData{
		ProjectID:  numeric.Int(2),
		PhaseID:    numeric.Int(1),
		CostCodeID: numeric.Int(3),
		MonReg:     numeric.Float(8),
		TotalHours: numeric.Float(8),
	}
}

func TestSave_NewSheetSkipsEmptyEntry(t *testing.T) {
	repo := newFakeRepo()
	svc, mock := newTestService(t, repo)
	mock.ExpectBegin()
	mock.ExpectCommit()

	result, err := svc.Save(context.Background(), SaveTimesheetRequest{
		TimesheetData: TimesheetData{
			EmployeeID: numeric.Int(1),
			WeekEnding: "2025-01-05",
		},
		TimesheetEntryData: []TimesheetEntryData{
			filledEntry(),
			{TotalHours: numeric.Float(8)},
			{Description: "site visit"},
			{}, // all zero, no description
		},
	})
	require.NoError(t, err)

	assert.Len(t, result.Entries, 3)
	assert.Equal(t, 3, repo.createdEntries)
	assert.False(t, result.Timesheet.Processed)
	assert.Equal(t, "None", result.Timesheet.ApprovedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_DuplicateWeekIsBusinessConflict(t *testing.T) {
	repo := newFakeRepo()
	week, _ := time.Parse("2006-01-02", "2025-01-05")
	repo.sheets[1] = &Timesheet{ID: 1, EmployeeID: 1, WeekEnding: week}
	repo.nextSheetID = 2

	svc, mock := newTestService(t, repo)
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Save(context.Background(), SaveTimesheetRequest{
		TimesheetData: TimesheetData{
			EmployeeID: numeric.Int(1),
			WeekEnding: "2025-01-05",
		},
		TimesheetEntryData: []TimesheetEntryData{filledEntry()},
	})

	assert.ErrorIs(t, err, timesheeterrors.ErrDuplicateWeek)
	assert.True(t, apperror.IsConflict(err))
	assert.Zero(t, repo.createdEntries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_UnknownEntryIDRollsBack(t *testing.T) {
	repo := newFakeRepo()
	week, _ := time.Parse("2006-01-02", "2025-01-05")
	repo.sheets[1] = &Timesheet{ID: 1, EmployeeID: 1, WeekEnding: week}

	svc, mock := newTestService(t, repo)
	mock.ExpectBegin()
	mock.ExpectRollback()

	unknown := filledEntry()
	unknown.ID = numeric.Int(9999)

	_, err := svc.Save(context.Background(), SaveTimesheetRequest{
		TimesheetData: TimesheetData{
			ID:         numeric.Int(1),
			EmployeeID: numeric.Int(1),
			WeekEnding: "2025-01-05",
		},
		TimesheetEntryData: []TimesheetEntryData{filledEntry(), unknown},
	})

	assert.ErrorIs(t, err, timesheeterrors.ErrEntryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_ZeroReducedEntryDeleted(t *testing.T) {
	repo := newFakeRepo()
	week, _ := time.Parse("2006-01-02", "2025-01-05")
	repo.sheets[1] = &Timesheet{ID: 1, EmployeeID: 1, WeekEnding: week}
	repo.entries[5] = &TimesheetEntry{ID: 5, TimesheetID: 1, MonReg: 8}

	svc, mock := newTestService(t, repo)
	mock.ExpectBegin()
	mock.ExpectCommit()

	zeroed := TimesheetEntryData{ID: numeric.Int(5)}

	result, err := svc.Save(context.Background(), SaveTimesheetRequest{
		TimesheetData: TimesheetData{
			ID:         numeric.Int(1),
			EmployeeID: numeric.Int(1),
			WeekEnding: "2025-01-05",
		},
		TimesheetEntryData: []TimesheetEntryData{zeroed},
	})
	require.NoError(t, err)

	assert.Empty(t, result.Entries)
	assert.Contains(t, repo.deletedEntries, int64(5))
	_, exists := repo.entries[5]
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_ProcessedSheetRejected(t *testing.T) {
	repo := newFakeRepo()
	week, _ := time.Parse("2006-01-02", "2025-01-05")
	repo.sheets[1] = &Timesheet{ID: 1, EmployeeID: 1, WeekEnding: week, Processed: true}

	svc, mock := newTestService(t, repo)
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Save(context.Background(), SaveTimesheetRequest{
		TimesheetData: TimesheetData{
			ID:         numeric.Int(1),
			EmployeeID: numeric.Int(1),
			WeekEnding: "2025-01-05",
		},
	})

	assert.ErrorIs(t, err, timesheeterrors.ErrAlreadyProcessed)
	assert.True(t, apperror.IsConflict(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_QueuesLifecycleEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	outbox := kafkamock.NewMockOutboxRepository(ctrl)
	outbox.EXPECT().WithTx(gomock.Any()).Return(outbox)
	outbox.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)

	repo := newFakeRepo()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	mock.ExpectBegin()
	mock.ExpectCommit()

	svc := NewService(db, repo, outbox)

	_, err = svc.Save(context.Background(), SaveTimesheetRequest{
		TimesheetData: TimesheetData{
			EmployeeID: numeric.Int(1),
			WeekEnding: "2025-01-05",
		},
		TimesheetEntryData: []TimesheetEntryData{filledEntry()},
	})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_CoercesStringNumerics(t *testing.T) {
	repo := newFakeRepo()
	svc, mock := newTestService(t, repo)
	mock.ExpectBegin()
	mock.ExpectCommit()

	result, err := svc.Save(context.Background(), SaveTimesheetRequest{
		TimesheetData: TimesheetData{
			EmployeeID:    numeric.Int(1),
			WeekEnding:    "2025-01-05",
			TotalRegHours: numeric.Float(40),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, 40.0, result.Timesheet.TotalRegHours)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSign(t *testing.T) {
	repo := newFakeRepo()
	repo.sheets[3] = &Timesheet{ID: 3, EmployeeID: 1, SubmittedBy: "None"}

	svc, _ := newTestService(t, repo)

	sheet, err := svc.Sign(context.Background(), 3, true, "John Doe")
	require.NoError(t, err)
	assert.True(t, sheet.Signed)
	assert.Equal(t, "John Doe", sheet.SubmittedBy)
}

func TestSign_NotFound(t *testing.T) {
	svc, _ := newTestService(t, newFakeRepo())

	_, err := svc.Sign(context.Background(), 42, true, "John Doe")
	assert.ErrorIs(t, err, timesheeterrors.ErrTimesheetNotFound)
}

func TestGetByEmployee_OwnershipEnforced(t *testing.T) {
	svc, _ := newTestService(t, newFakeRepo())

	_, err := svc.GetByEmployee(context.Background(), 3, 7)
	assert.ErrorIs(t, err, timesheeterrors.ErrNotSheetOwner)
}

func TestDelete_NotFound(t *testing.T) {
	repo := newFakeRepo()
	svc, mock := newTestService(t, repo)
	mock.ExpectBegin()
	mock.ExpectRollback()

	err := svc.Delete(context.Background(), 42)
	assert.ErrorIs(t, err, timesheeterrors.ErrTimesheetNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDelete_RemovesEntries(t *testing.T) {
	repo := newFakeRepo()
	repo.sheets[1] = &Timesheet{ID: 1, EmployeeID: 1}
	repo.entries[10] = &TimesheetEntry{ID: 10, TimesheetID: 1}
	repo.entries[11] = &TimesheetEntry{ID: 11, TimesheetID: 1}

	svc, mock := newTestService(t, repo)
	mock.ExpectBegin()
	mock.ExpectCommit()

	require.NoError(t, svc.Delete(context.Background(), 1))
	assert.Empty(t, repo.entries)
	assert.Empty(t, repo.sheets)
	assert.NoError(t, mock.ExpectationsWereMet())
}

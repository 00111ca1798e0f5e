package expense

import (
	"context"
	"database/sql"
	"io"
	"testing"
	"time"

	expenseerrors "go-workforce/internal/expense/errors"
	"go-workforce/internal/shared/apperror"
	"go-workforce/internal/shared/numeric"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeRepo struct {
	sheets  map[int64]*Expense
	entries map[int64]*ExpenseEntry
	files   map[int64]*ExpenseFile

	nextSheetID int64
	nextEntryID int64
	nextFileID  int64

	createdEntries int
	deletedFiles   []int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		sheets:      map[int64]*Expense{},
		entries:     map[int64]*ExpenseEntry{},
		files:       map[int64]*ExpenseFile{},
		nextSheetID: 1,
		nextEntryID: 100,
		nextFileID:  500,
	}
}

func (f *fakeRepo) WithTx(_ *sql.Tx) Repository { return f }

func (f *fakeRepo) Create(_ context.Context, sheet *Expense) error {
	sheet.ID = f.nextSheetID
	f.nextSheetID++
	f.sheets[sheet.ID] = sheet
	return nil
}

func (f *fakeRepo) Update(_ context.Context, sheet *Expense) error {
	f.sheets[sheet.ID] = sheet
	return nil
}

func (f *fakeRepo) FindByID(_ context.Context, id int64) (*Expense, error) {
	sheet, ok := f.sheets[id]
	if !ok {
		return &Expense{}, gorm.ErrRecordNotFound
	}
	cp := *sheet
	return &cp, nil
}

func (f *fakeRepo) FindByEmployeeAndStart(_ context.Context, employeeID int64, dateStart time.Time) (*Expense, error) {
	for _, sheet := range f.sheets {
		if sheet.EmployeeID == employeeID && sheet.DateStart.Equal(dateStart) {
			cp := *sheet
			return &cp, nil
		}
	}
	return &Expense{}, gorm.ErrRecordNotFound
}

func (f *fakeRepo) FindAllByEmployee(_ context.Context, employeeID int64) ([]Expense, error) {
	var out []Expense
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

func (f *fakeRepo) CreateEntry(_ context.Context, entry *ExpenseEntry) error {
	entry.ID = f.nextEntryID
	f.nextEntryID++
	f.entries[entry.ID] = entry
	f.createdEntries++
	return nil
}

func (f *fakeRepo) UpdateEntry(_ context.Context, entry *ExpenseEntry) error {
	f.entries[entry.ID] = entry
	return nil
}

func (f *fakeRepo) FindEntryByID(_ context.Context, id int64) (*ExpenseEntry, error) {
	entry, ok := f.entries[id]
	if !ok {
		return &ExpenseEntry{}, gorm.ErrRecordNotFound
	}
	cp := *entry
	return &cp, nil
}

func (f *fakeRepo) FindEntriesByExpenseID(_ context.Context, expenseID int64) ([]ExpenseEntry, error) {
	var out []ExpenseEntry
	for _, entry := range f.entries {
		if entry.ExpenseID == expenseID {
			out = append(out, *entry)
		}
	}
	return out, nil
}

func (f *fakeRepo) DeleteEntry(_ context.Context, id int64) error {
	delete(f.entries, id)
	return nil
}

func (f *fakeRepo) DeleteEntriesByExpenseID(_ context.Context, expenseID int64) error {
	for id, entry := range f.entries {
		if entry.ExpenseID == expenseID {
			delete(f.entries, id)
		}
	}
	return nil
}

func (f *fakeRepo) CreateFile(_ context.Context, file *ExpenseFile) error {
	file.ID = f.nextFileID
	f.nextFileID++
	f.files[file.ID] = file
	return nil
}

func (f *fakeRepo) FindFileByID(_ context.Context, id int64) (*ExpenseFile, error) {
	file, ok := f.files[id]
	if !ok {
		return &ExpenseFile{}, gorm.ErrRecordNotFound
	}
	cp := *file
	return &cp, nil
}

func (f *fakeRepo) DeleteFile(_ context.Context, id int64) error {
	delete(f.files, id)
	f.deletedFiles = append(f.deletedFiles, id)
	return nil
}

type fakeFileStore struct {
	removed []string
}

func (f *fakeFileStore) Save(filename string, _ io.Reader) (string, error) {
	return "uploads/receipts/" + filename, nil
}

func (f *fakeFileStore) Remove(path string) error {
	f.removed = append(f.removed, path)
	return nil
}

func newTestService(t *testing.T, repo Repository, files FileStore) (Service, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewService(db, repo, files, nil), mock
}

func TestSave_AppliesEntryDefaults(t *testing.T) {
	repo := newFakeRepo()
	svc, mock := newTestService(t, repo, nil)
	mock.ExpectBegin()
	mock.ExpectCommit()

	result, err := svc.Save(context.Background(), SaveExpenseRequest{
		ExpenseData: ExpenseData{
			EmployeeID: numeric.Int(1),
			DateStart:  "2025-03-01",
			NumOfDays:  numeric.Int(5),
		},
		ExpenseEntriesData: []ExpenseEntryData{
			{LodgingCost: numeric.Float(120.50)},
		},
	})
	require.NoError(t, err)
	require.Len(t, result.Entries, 1)

	entry := result.Entries[0]
	assert.Equal(t, int64(2), entry.ProjectID)
	assert.Equal(t, "Nothing", entry.Purpose)
	assert.Equal(t, int64(1), entry.MiscellaneousDescriptionID)
	assert.Equal(t, 120.50, entry.LodgingCost)
	assert.Equal(t, "None", result.Expense.ApprovedBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_PurposeOnlyEntryKept(t *testing.T) {
	repo := newFakeRepo()
	svc, mock := newTestService(t, repo, nil)
	mock.ExpectBegin()
	mock.ExpectCommit()

	result, err := svc.Save(context.Background(), SaveExpenseRequest{
		ExpenseData: ExpenseData{
			EmployeeID: numeric.Int(1),
			DateStart:  "2025-03-01",
		},
		ExpenseEntriesData: []ExpenseEntryData{
			{Purpose: "Taxi to client site"},
			{Purpose: "Nothing"}, // the stored default, not real data
			{},                   // all zero, no purpose or destination
		},
	})
	require.NoError(t, err)

	require.Len(t, result.Entries, 1)
	assert.Equal(t, "Taxi to client site", result.Entries[0].Purpose)
	assert.Equal(t, 1, repo.createdEntries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_DuplicateDateStartIsBusinessConflict(t *testing.T) {
	repo := newFakeRepo()
	start, _ := time.Parse("2006-01-02", "2025-03-01")
	repo.sheets[1] = &Expense{ID: 1, EmployeeID: 1, DateStart: start}
	repo.nextSheetID = 2

	svc, mock := newTestService(t, repo, nil)
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Save(context.Background(), SaveExpenseRequest{
		ExpenseData: ExpenseData{
			EmployeeID: numeric.Int(1),
			DateStart:  "2025-03-01",
		},
	})

	assert.ErrorIs(t, err, expenseerrors.ErrDuplicateDateStart)
	assert.True(t, apperror.IsConflict(err))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_PaidSheetRejected(t *testing.T) {
	repo := newFakeRepo()
	start, _ := time.Parse("2006-01-02", "2025-03-01")
	repo.sheets[1] = &Expense{ID: 1, EmployeeID: 1, DateStart: start, Paid: true}

	svc, mock := newTestService(t, repo, nil)
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Save(context.Background(), SaveExpenseRequest{
		ExpenseData: ExpenseData{
			ID:         numeric.Int(1),
			EmployeeID: numeric.Int(1),
			DateStart:  "2025-03-01",
		},
	})

	assert.ErrorIs(t, err, expenseerrors.ErrAlreadyPaid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_UnknownEntryIDRollsBack(t *testing.T) {
	repo := newFakeRepo()
	start, _ := time.Parse("2006-01-02", "2025-03-01")
	repo.sheets[1] = &Expense{ID: 1, EmployeeID: 1, DateStart: start}

	svc, mock := newTestService(t, repo, nil)
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.Save(context.Background(), SaveExpenseRequest{
		ExpenseData: ExpenseData{
			ID:         numeric.Int(1),
			EmployeeID: numeric.Int(1),
			DateStart:  "2025-03-01",
		},
		ExpenseEntriesData: []ExpenseEntryData{
			{ID: numeric.Int(9999), LodgingCost: numeric.Float(10)},
		},
	})

	assert.ErrorIs(t, err, expenseerrors.ErrEntryNotFound)
	assert.Zero(t, repo.createdEntries)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSave_AttachesReceiptRows(t *testing.T) {
	repo := newFakeRepo()
	svc, mock := newTestService(t, repo, nil)
	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err := svc.Save(context.Background(), SaveExpenseRequest{
		ExpenseData: ExpenseData{
			EmployeeID: numeric.Int(1),
			DateStart:  "2025-03-01",
		},
		Receipts: []ReceiptUpload{
			{StoredPath: "uploads/receipts/a.pdf"},
			{StoredPath: "uploads/receipts/b.pdf", EntryID: 3},
		},
	})
	require.NoError(t, err)
	assert.Len(t, repo.files, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEntry_RecomputesTotal(t *testing.T) {
	repo := newFakeRepo()
	repo.sheets[1] = &Expense{ID: 1, EmployeeID: 1, Total: 300}
	repo.entries[10] = &ExpenseEntry{ID: 10, ExpenseID: 1, LodgingCost: 100.10}
	repo.entries[11] = &ExpenseEntry{ID: 11, ExpenseID: 1, MilesCost: 100.105, PerdiemCost: 50}
	repo.entries[12] = &ExpenseEntry{ID: 12, ExpenseID: 1, MiscellaneousAmount: 49.795}

	svc, mock := newTestService(t, repo, nil)
	mock.ExpectBegin()
	mock.ExpectCommit()

	sheet, err := svc.DeleteEntry(context.Background(), 10)
	require.NoError(t, err)

	// 100.105 + 50 + 49.795 = 199.9, rounded to 2dp
	assert.InDelta(t, 199.9, sheet.Total, 1e-9)
	_, exists := repo.entries[10]
	assert.False(t, exists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteEntry_NotFound(t *testing.T) {
	svc, mock := newTestService(t, newFakeRepo(), nil)
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.DeleteEntry(context.Background(), 42)
	assert.ErrorIs(t, err, expenseerrors.ErrEntryNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteFile_RemovesDiskAndRow(t *testing.T) {
	repo := newFakeRepo()
	repo.files[7] = &ExpenseFile{ID: 7, ExpenseID: 1, URL: "uploads/receipts/x.pdf"}
	store := &fakeFileStore{}

	svc, _ := newTestService(t, repo, store)

	require.NoError(t, svc.DeleteFile(context.Background(), 7))
	assert.Equal(t, []string{"uploads/receipts/x.pdf"}, store.removed)
	assert.Contains(t, repo.deletedFiles, int64(7))
}

func TestDeleteFile_NotFound(t *testing.T) {
	svc, _ := newTestService(t, newFakeRepo(), &fakeFileStore{})

	err := svc.DeleteFile(context.Background(), 99)
	assert.ErrorIs(t, err, expenseerrors.ErrFileNotFound)
}

func TestGetByEmployee_OwnershipEnforced(t *testing.T) {
	svc, _ := newTestService(t, newFakeRepo(), nil)

	_, err := svc.GetByEmployee(context.Background(), 3, 7)
	assert.ErrorIs(t, err, expenseerrors.ErrNotSheetOwner)
}

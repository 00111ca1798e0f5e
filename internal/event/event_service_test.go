package event

import (
	"context"
	"testing"

	eventerrors "go-workforce/internal/event/errors"
	"go-workforce/internal/shared/numeric"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	events map[int64]*Event
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{events: map[int64]*Event{}, nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, evt *Event) error {
	evt.ID = f.nextID
	f.nextID++
	f.events[evt.ID] = evt
	return nil
}

func (f *fakeRepo) Update(_ context.Context, id int64, evt *Event) (int64, error) {
	existing, ok := f.events[id]
	if !ok {
		return 0, nil
	}
	evt.ID = id
	*existing = *evt
	return 1, nil
}

func (f *fakeRepo) FindByMonth(_ context.Context, formattedMonth string) ([]EventWithEmployee, error) {
	var out []EventWithEmployee
	for _, evt := range f.events {
		if evt.FormattedMonth == formattedMonth {
			out = append(out, EventWithEmployee{Event: *evt, FirstName: "Ada", LastName: "Byron"})
		}
	}
	return out, nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) (int64, error) {
	if _, ok := f.events[id]; !ok {
		return 0, nil
	}
	delete(f.events, id)
	return 1, nil
}

func validRequest() SaveEventRequest {
	return SaveEventRequest{
		EmployeeID:     numeric.Int(1),
		Start:          "2025-06-02",
		EndDate:        "2025-06-04",
		Title:          "Site visit",
		FormattedMonth: "2025-06-01",
	}
}

func TestSave_CreatesWhenNoID(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Save(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, created)
	assert.Len(t, repo.events, 1)
}

func TestSave_MissingFieldsRejected(t *testing.T) {
	svc := NewService(newFakeRepo())

	req := validRequest()
	req.Title = ""

	_, err := svc.Save(context.Background(), req)
	assert.ErrorIs(t, err, eventerrors.ErrMissingFields)
}

func TestSave_UpdateUnknownIDIsNotFound(t *testing.T) {
	svc := NewService(newFakeRepo())

	req := validRequest()
	req.ID = numeric.Int(42)

	_, err := svc.Save(context.Background(), req)
	assert.ErrorIs(t, err, eventerrors.ErrEventNotFound)
}

func TestSave_UpdatesExisting(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	created, err := svc.Save(context.Background(), validRequest())
	require.NoError(t, err)
	require.True(t, created)

	req := validRequest()
	req.ID = numeric.Int(1)
	req.Title = "Rescheduled site visit"

	created, err = svc.Save(context.Background(), req)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "Rescheduled site visit", repo.events[1].Title)
}

func TestGetByMonth(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Save(context.Background(), validRequest())
	require.NoError(t, err)

	events, err := svc.GetByMonth(context.Background(), "2025-06-01")
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "Ada", events[0].FirstName)

	events, err = svc.GetByMonth(context.Background(), "2025-07-01")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestGetByMonth_MissingDate(t *testing.T) {
	svc := NewService(newFakeRepo())

	_, err := svc.GetByMonth(context.Background(), "")
	assert.ErrorIs(t, err, eventerrors.ErrMissingDate)
}

func TestDelete(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	_, err := svc.Save(context.Background(), validRequest())
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	deleted, err = svc.Delete(context.Background(), 1)
	require.NoError(t, err)
	assert.Zero(t, deleted)
}

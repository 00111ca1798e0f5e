package notification

import (
	"context"
	"testing"
	"time"

	"go-workforce/internal/events"
	notificationerrors "go-workforce/internal/notification/errors"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRepo struct {
	notifications []Notification
}

func (f *fakeRepo) Create(_ context.Context, n *Notification) error {
	n.ID = int64(len(f.notifications) + 1)
	f.notifications = append(f.notifications, *n)
	return nil
}

func (f *fakeRepo) FindByEmployee(_ context.Context, employeeID int64) ([]Notification, error) {
	var out []Notification
	for _, n := range f.notifications {
		if n.EmployeeID == employeeID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeRepo) MarkRead(_ context.Context, id, employeeID int64) (int64, error) {
	for i, n := range f.notifications {
		if n.ID == id && n.EmployeeID == employeeID {
			f.notifications[i].Read = true
			return 1, nil
		}
	}
	return 0, nil
}

func TestRecordLifecycleEvent_BuildsMessage(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	err := svc.RecordLifecycleEvent(context.Background(), events.SheetLifecycleEvent{
		EventType:  events.EventTimesheetProcessed,
		SheetType:  events.SheetTypeTimesheet,
		SheetID:    10,
		EmployeeID: 5,
		Period:     "2025-01-05",
		OccurredAt: time.Now().UTC(),
	})
	require.NoError(t, err)

	require.Len(t, repo.notifications, 1)
	n := repo.notifications[0]
	assert.Equal(t, int64(5), n.EmployeeID)
	assert.Equal(t, "Timesheet for week ending 2025-01-05 was processed", n.Message)
	assert.False(t, n.Read)
}

func TestMarkRead(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo)

	require.NoError(t, svc.RecordLifecycleEvent(context.Background(), events.SheetLifecycleEvent{
		EventType:  events.EventExpensePaid,
		SheetType:  events.SheetTypeExpense,
		EmployeeID: 5,
		Period:     "2025-08-01",
	}))

	require.NoError(t, svc.MarkRead(context.Background(), 1, 5))
	assert.True(t, repo.notifications[0].Read)

	err := svc.MarkRead(context.Background(), 1, 6)
	assert.ErrorIs(t, err, notificationerrors.ErrNotificationNotFound)
}

func TestLifecycleHandler_RecordsEvent(t *testing.T) {
	repo := &fakeRepo{}
	handler := NewLifecycleHandler(NewService(repo), zap.NewNop())

	msg := kafkago.Message{
		Topic: events.SheetLifecycleTopic,
		Value: []byte(`{"event_type":"expense.paid","sheet_type":"expense","sheet_id":3,"employee_id":5,"period":"2025-08-01"}`),
	}
	require.NoError(t, handler(context.Background(), msg))

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, "Expense sheet for 2025-08-01 was paid", repo.notifications[0].Message)
}

func TestLifecycleHandler_MalformedPayloadSkipped(t *testing.T) {
	repo := &fakeRepo{}
	handler := NewLifecycleHandler(NewService(repo), zap.NewNop())

	msg := kafkago.Message{Value: []byte("not json")}
	require.NoError(t, handler(context.Background(), msg))
	assert.Empty(t, repo.notifications)
}

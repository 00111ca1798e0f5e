package event

import (
	"context"
	"time"

	eventerrors "go-workforce/internal/event/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=event_service.go -destination=mock/event_service_mock.go -package=mock
type Service interface {
	Save(ctx context.Context, req SaveEventRequest) (created bool, err error)
	Edit(ctx context.Context, id int64, req SaveEventRequest) error
	GetByMonth(ctx context.Context, formattedMonth string) ([]EventWithEmployee, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("event.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("event.service")
	}
	return &service{repo: repo, logger: l}
}

// Save creates the event when no id is given, otherwise updates it. Updating
// an id that matches no row is a not-found error.
func (s *service) Save(ctx context.Context, req SaveEventRequest) (bool, error) {
	if req.EmployeeID.Value() == 0 || req.Start == "" || req.EndDate == "" || req.Title == "" {
		return false, eventerrors.ErrMissingFields
	}

	evt, err := eventFromRequest(req)
	if err != nil {
		return false, err
	}

	if id := req.ID.Value(); id != 0 {
		affected, err := s.repo.Update(ctx, id, evt)
		if err != nil {
			s.logger.Error("update event failed", zap.Int64("event_id", id), zap.Error(err))
			return false, err
		}
		if affected == 0 {
			return false, eventerrors.ErrEventNotFound
		}
		s.logger.Info("event updated", zap.Int64("event_id", id))
		return false, nil
	}

	if err := s.repo.Create(ctx, evt); err != nil {
		s.logger.Error("create event failed", zap.Error(err))
		return false, err
	}
	s.logger.Info("event created",
		zap.Int64("event_id", evt.ID),
		zap.Int64("employee_id", evt.EmployeeID),
	)
	return true, nil
}

func (s *service) Edit(ctx context.Context, id int64, req SaveEventRequest) error {
	evt, err := eventFromRequest(req)
	if err != nil {
		return err
	}

	if _, err := s.repo.Update(ctx, id, evt); err != nil {
		s.logger.Error("edit event failed", zap.Int64("event_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("event edited", zap.Int64("event_id", id))
	return nil
}

func (s *service) GetByMonth(ctx context.Context, formattedMonth string) ([]EventWithEmployee, error) {
	if formattedMonth == "" {
		return nil, eventerrors.ErrMissingDate
	}

	events, err := s.repo.FindByMonth(ctx, formattedMonth)
	if err != nil {
		s.logger.Error("fetch events failed", zap.String("month", formattedMonth), zap.Error(err))
		return nil, err
	}
	return events, nil
}

func (s *service) Delete(ctx context.Context, id int64) (int64, error) {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete event failed", zap.Int64("event_id", id), zap.Error(err))
		return 0, err
	}
	s.logger.Info("event deleted", zap.Int64("event_id", id))
	return affected, nil
}

func eventFromRequest(req SaveEventRequest) (*Event, error) {
	start, err := parseDateOnly(req.Start)
	if err != nil {
		return nil, eventerrors.ErrInvalidDate
	}
	end, err := parseDateOnly(req.EndDate)
	if err != nil {
		return nil, eventerrors.ErrInvalidDate
	}

	return &Event{
		EmployeeID:      req.EmployeeID.Value(),
		Start:           start,
		EndDate:         end,
		Title:           req.Title,
		LongDescription: req.LongDescription,
		BackColorID:     req.BackColorID,
		ForeColorID:     req.ForeColorID,
		FormattedMonth:  req.FormattedMonth,
	}, nil
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

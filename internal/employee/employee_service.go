package employee

import (
	"context"
	"encoding/json"
	"time"

	employeeerrors "go-workforce/internal/employee/errors"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const employeeNamesCacheKey = "employees:names"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	GetByID(ctx context.Context, requesterID, id int64) (*Employee, error)
	GetAllNames(ctx context.Context) ([]EmployeeName, error)
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		repo:   repo,
		rdb:    rdb,
		sf:     &singleflight.Group{},
		logger: l,
	}
}

// GetByID returns an employee profile. Profiles are private: only the
// employee themselves may read their record.
func (s *service) GetByID(ctx context.Context, requesterID, id int64) (*Employee, error) {
	if requesterID != id {
		s.logger.Warn("profile access denied",
			zap.Int64("requester_id", requesterID),
			zap.Int64("employee_id", id),
		)
		return nil, employeeerrors.ErrNotProfileOwner
	}

	empl, err := s.repo.FindByID(ctx, id)
	if err != nil {
		s.logger.Error("get employee by id failed", zap.Int64("employee_id", id), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return empl, nil
}

func (s *service) GetAllNames(ctx context.Context) ([]EmployeeName, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, employeeNamesCacheKey).Result(); err == nil {
			var names []EmployeeName
			if json.Unmarshal([]byte(cached), &names) == nil {
				return names, nil
			}
		}
	}

	v, err, _ := s.sf.Do(employeeNamesCacheKey, func() (interface{}, error) {
		names, err := s.repo.FindAllNames(ctx)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		if s.rdb != nil {
			if data, err := json.Marshal(names); err == nil {
				s.rdb.Set(ctx, employeeNamesCacheKey, data, 15*time.Minute)
			}
		}
		return names, nil
	})
	if err != nil {
		s.logger.Error("get all employee names failed", zap.Error(err))
		return nil, err
	}

	return v.([]EmployeeName), nil
}

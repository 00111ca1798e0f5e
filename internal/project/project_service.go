package project

import (
	"context"
	"database/sql"
	"time"

	projecterrors "go-workforce/internal/project/errors"

	"go.uber.org/zap"
)

//go:generate mockgen -source=project_service.go -destination=mock/project_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req SaveProjectRequest) (*Project, error)
	Edit(ctx context.Context, id int64, req SaveProjectRequest) error
	Delete(ctx context.Context, id int64) error
	GetAll(ctx context.Context) ([]ProjectWithCustomer, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// Create inserts a project and, when no customer id is given, creates the
// customer from the request in the same transaction.
func (s *service) Create(ctx context.Context, req SaveProjectRequest) (*Project, error) {
	if req.Number == "" {
		return nil, projecterrors.ErrMissingProjectData
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create project begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	customerID := req.CustomerID.Value()
	if customerID == 0 {
		customer := &Customer{
			Name:    req.CustomerName,
			Contact: req.CustomerContact,
		}
		if err := qtx.CreateCustomer(ctx, customer); err != nil {
			s.logger.Error("create customer failed", zap.String("customer_name", req.CustomerName), zap.Error(err))
			return nil, err
		}
		customerID = customer.ID
	}

	p := &Project{
		Number:      req.Number,
		Description: req.Description,
		ShortName:   req.ShortName,
		Comment:     req.Comment,
		Overtime:    req.Overtime,
		SgaFlag:     req.SgaFlag,
		IsActive:    true,
		CustomerID:  customerID,
		StartDate:   dateOrNow(req.StartDate),
		EndDate:     dateOrNow(req.EndDate),
	}
	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("create project failed", zap.String("number", req.Number), zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create project commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("project created",
		zap.Int64("project_id", p.ID),
		zap.Int64("customer_id", customerID),
	)
	return p, nil
}

func (s *service) Edit(ctx context.Context, id int64, req SaveProjectRequest) error {
	p := &Project{
		Number:      req.Number,
		Description: req.Description,
		ShortName:   req.ShortName,
		Comment:     req.Comment,
		Overtime:    req.Overtime,
		SgaFlag:     req.SgaFlag,
		CustomerID:  req.CustomerID.Value(),
	}

	if _, err := s.repo.Update(ctx, id, p); err != nil {
		s.logger.Error("edit project failed", zap.Int64("project_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("project edited", zap.Int64("project_id", id))
	return nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	affected, err := s.repo.Delete(ctx, id)
	if err != nil {
		s.logger.Error("delete project failed", zap.Int64("project_id", id), zap.Error(err))
		return err
	}
	if affected == 0 {
		return projecterrors.ErrProjectNotFound
	}
	s.logger.Info("project deleted", zap.Int64("project_id", id))
	return nil
}

// GetAll lists every project with its customer attached. Projects whose
// customer row is gone read "Unknown" for both name and contact.
func (s *service) GetAll(ctx context.Context) ([]ProjectWithCustomer, error) {
	projects, err := s.repo.FindAllWithCustomer(ctx)
	if err != nil {
		s.logger.Error("get all projects failed", zap.Error(err))
		return nil, err
	}

	for i := range projects {
		if projects[i].CustomerName == "" {
			projects[i].CustomerName = "Unknown"
		}
		if projects[i].CustomerContact == "" {
			projects[i].CustomerContact = "Unknown"
		}
	}
	return projects, nil
}

func dateOrNow(v string) time.Time {
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	}
	return time.Now().UTC()
}

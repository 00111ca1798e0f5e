package timesheet

import (
	"errors"

	timesheeterrors "go-workforce/internal/timesheet/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError folds driver-level failures into domain errors. A unique
// violation on (employee_id, week_ending) is the duplicate-week conflict even
// when two saves race past the pre-check.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return timesheeterrors.ErrTimesheetNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return timesheeterrors.ErrDuplicateWeek
	}

	return err
}

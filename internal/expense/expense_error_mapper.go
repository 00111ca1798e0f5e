package expense

import (
	"errors"

	expenseerrors "go-workforce/internal/expense/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// mapRepositoryError folds driver-level failures into domain errors. A unique
// violation on (employee_id, date_start) is the duplicate conflict even when
// two saves race past the pre-check.
func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return expenseerrors.ErrExpenseNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return expenseerrors.ErrDuplicateDateStart
	}

	return err
}

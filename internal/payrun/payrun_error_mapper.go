package payrun

import (
	"errors"
	"strings"

	payrunerrors "github.com/shilpmis/saral-payroll/internal/payrun/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrunerrors.ErrPayRunNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_staff_pay_run_period" {
			return payrunerrors.ErrPayRunAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_staff_pay_run_period") {
		return payrunerrors.ErrPayRunAlreadyExists
	}

	return err
}

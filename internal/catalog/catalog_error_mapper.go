package catalog

import (
	"errors"
	"strings"

	catalogerrors "github.com/shilpmis/saral-payroll/internal/catalog/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return catalogerrors.ErrComponentNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_component_name" {
			return catalogerrors.ErrDuplicateComponentName
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_component_name") {
		return catalogerrors.ErrDuplicateComponentName
	}

	return err
}

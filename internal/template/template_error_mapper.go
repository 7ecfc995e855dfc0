package template

import (
	"errors"
	"strings"

	templateerrors "github.com/shilpmis/saral-payroll/internal/template/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return templateerrors.ErrTemplateNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == "uq_salary_template_code" {
			return templateerrors.ErrDuplicateTemplateCode
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_salary_template_code") {
		return templateerrors.ErrDuplicateTemplateCode
	}

	return err
}

func mapStaffLookupError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return templateerrors.ErrTemplateNotAssigned
	}
	return mapRepositoryError(err)
}

package templateerrors

import (
	"net/http"

	"github.com/shilpmis/saral-payroll/internal/shared/apperror"
)

var (
	ErrTemplateNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary template not found",
		http.StatusNotFound,
	)
	ErrTemplateNotAssigned = apperror.New(
		apperror.CodeNotFound,
		"no salary template assigned to this staff member",
		http.StatusNotFound,
	)
	ErrUnknownCatalogComponent = apperror.New(
		apperror.CodeInvalidInput,
		"template references a salary component that does not exist",
		http.StatusBadRequest,
	)
	ErrInactiveCatalogComponent = apperror.New(
		apperror.CodeInvalidInput,
		"inactive salary components cannot be assigned to a template",
		http.StatusBadRequest,
	)
	ErrComponentValueMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"template component value does not match the component's calculation method",
		http.StatusBadRequest,
	)
	ErrDuplicateTemplateCode = apperror.New(
		apperror.CodeConflict,
		"a salary template with this code already exists",
		http.StatusConflict,
	)
)

package catalogerrors

import (
	"net/http"

	"github.com/shilpmis/saral-payroll/internal/shared/apperror"
)

var (
	ErrComponentNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary component not found",
		http.StatusNotFound,
	)
	ErrComponentMandatory = apperror.New(
		apperror.CodeInvalidState,
		"mandatory salary components cannot be deleted",
		http.StatusBadRequest,
	)
	ErrComponentInUse = apperror.New(
		apperror.CodeConflict,
		"salary component is referenced by existing templates",
		http.StatusConflict,
	)
	ErrAmountRequired = apperror.New(
		apperror.CodeInvalidInput,
		"amount is required for flat_amount components and must not carry a percentage",
		http.StatusBadRequest,
	)
	ErrPercentageRequired = apperror.New(
		apperror.CodeInvalidInput,
		"percentage is required for percentage components and must not carry an amount",
		http.StatusBadRequest,
	)
	ErrPercentageOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"percentage must be between 0 and 100",
		http.StatusBadRequest,
	)
	ErrDuplicateComponentName = apperror.New(
		apperror.CodeConflict,
		"a salary component with this name already exists",
		http.StatusConflict,
	)
)

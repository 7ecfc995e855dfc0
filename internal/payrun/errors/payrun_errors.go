package payrunerrors

import (
	"net/http"

	"github.com/shilpmis/saral-payroll/internal/shared/apperror"
)

var (
	ErrPayRunNotFound = apperror.New(
		apperror.CodeNotFound,
		"pay run not found",
		http.StatusNotFound,
	)
	// A paid pay run is immutable; the check runs before any repository
	// write so a rejected update never touches the database.
	ErrPayRunPaidImmutable = apperror.New(
		apperror.CodeInvalidState,
		"a paid pay run cannot be modified",
		http.StatusBadRequest,
	)
	ErrPayRunAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"a pay run already exists for this staff member and period",
		http.StatusConflict,
	)
	ErrInvalidPayrollMonth = apperror.New(
		apperror.CodeInvalidInput,
		"payroll_month must be a two-digit month between 01 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidPayrollYear = apperror.New(
		apperror.CodeInvalidInput,
		"payroll_year must be a four-digit year",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"invalid pay run status",
		http.StatusBadRequest,
	)
	ErrInvalidSchoolID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid school id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrDeleteOnlyDraft = apperror.New(
		apperror.CodeInvalidState,
		"pay run can only be deleted while status is draft",
		http.StatusBadRequest,
	)
	ErrPayslipNotGenerated = apperror.New(
		apperror.CodeNotFound,
		"payslip is not generated yet",
		http.StatusNotFound,
	)
)

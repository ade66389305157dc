package seederrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrSeedFileNotFound = apperror.New(
		apperror.CodeNotFound,
		"seed file not found",
		http.StatusNotFound,
	)
	ErrInvalidDocument = apperror.New(
		apperror.CodeInvalidInput,
		"seed document is not valid JSON",
		http.StatusBadRequest,
	)
	ErrMissingDocumentKey = apperror.New(
		apperror.CodeInvalidInput,
		"seed document is missing a required array",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrMissingEmployeeName = apperror.New(
		apperror.CodeInvalidInput,
		"employee name is required",
		http.StatusBadRequest,
	)
	ErrMissingBaseSalary = apperror.New(
		apperror.CodeInvalidInput,
		"employee base_salary is required",
		http.StatusBadRequest,
	)
)

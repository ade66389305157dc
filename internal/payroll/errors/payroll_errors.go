package payrollerrors

import (
	"net/http"

	"go-payroll/internal/shared/apperror"
)

var (
	ErrSchemaNotInitialized = apperror.New(
		apperror.CodeInvalidState,
		"payroll tables do not exist, run the schema reset first",
		http.StatusConflict,
	)
	ErrResetNotConfirmed = apperror.New(
		apperror.CodeInvalidInput,
		"schema reset destroys all payroll data and must be confirmed",
		http.StatusBadRequest,
	)
)

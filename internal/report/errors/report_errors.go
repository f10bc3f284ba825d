package reporterrors

import (
	"net/http"

	"hr-portal/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound  = apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)
	ErrInvalidEmployeeID = apperror.New(apperror.CodeInvalidInput, "Invalid employee ID", http.StatusBadRequest)
)

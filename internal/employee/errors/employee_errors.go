package employeeerrors

import (
	"net/http"

	"hr-portal/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Employee with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid employee ID",
		http.StatusBadRequest,
	)
	ErrInvalidHRID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid HR ID",
		http.StatusBadRequest,
	)
	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must not be negative",
		http.StatusBadRequest,
	)
	ErrSalaryOutOfRange = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must have at most 8 integer digits and 2 decimals",
		http.StatusBadRequest,
	)
	ErrEmptyUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"No updatable fields provided",
		http.StatusBadRequest,
	)
	ErrOldPasswordIncorrect = apperror.New(
		apperror.CodeInvalidInput,
		"Old password is incorrect",
		http.StatusBadRequest,
	)
	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"New password and confirm password do not match",
		http.StatusBadRequest,
	)
	ErrPasswordUnchanged = apperror.New(
		apperror.CodeInvalidInput,
		"New password must be different from old password",
		http.StatusBadRequest,
	)
)

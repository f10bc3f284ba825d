package hrerrors

import (
	"net/http"

	"hr-portal/internal/shared/apperror"
)

var (
	ErrHRNotFound = apperror.New(
		apperror.CodeNotFound,
		"HR not found",
		http.StatusNotFound,
	)
	ErrHRAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"HR with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidSeed = apperror.New(
		apperror.CodeInvalidInput,
		"HR seed requires name, email and password",
		http.StatusBadRequest,
	)
)

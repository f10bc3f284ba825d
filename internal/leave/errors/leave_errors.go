package leaveerrors

import (
	"net/http"

	"hr-portal/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format. Use YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrPastDate = apperror.New(
		apperror.CodePastDateRejected,
		"Cannot request leave for past dates",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidRange,
		"start_date cannot be after end_date",
		http.StatusBadRequest,
	)
	ErrOverlap = apperror.New(
		apperror.CodeOverlapConflict,
		"An approved leave already exists for the requested date range",
		http.StatusBadRequest,
	)
	ErrInvalidAction = apperror.New(
		apperror.CodeInvalidAction,
		"Invalid action",
		http.StatusBadRequest,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"Leave not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Leave belongs to an employee of another HR",
		http.StatusForbidden,
	)
	ErrInvalidLeaveID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid leave ID",
		http.StatusBadRequest,
	)
)

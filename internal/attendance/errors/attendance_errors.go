package attendanceerrors

import (
	"net/http"

	"hr-portal/internal/shared/apperror"
)

var (
	ErrLeaveConflict = apperror.New(
		apperror.CodeLeaveConflict,
		"Leave approved for today; cannot mark Present",
		http.StatusBadRequest,
	)
	ErrNoAttendanceRecord = apperror.New(
		apperror.CodeNoAttendanceRecord,
		"No attendance record for today",
		http.StatusNotFound,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"Attendance not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrForbidden = apperror.New(
		apperror.CodeForbidden,
		"Attendance belongs to an employee of another HR",
		http.StatusForbidden,
	)
	ErrDateTaken = apperror.New(
		apperror.CodeInvalidInput,
		"Employee already has an attendance record on that date",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date format. Use YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTime = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid time, expected RFC3339",
		http.StatusBadRequest,
	)
	ErrInvalidOrdering = apperror.New(
		apperror.CodeInvalidInput,
		"Unsupported ordering",
		http.StatusBadRequest,
	)
	ErrEmptyUpdate = apperror.New(
		apperror.CodeInvalidInput,
		"No updatable fields provided",
		http.StatusBadRequest,
	)
	ErrInvalidAttendanceID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid attendance ID",
		http.StatusBadRequest,
	)
)

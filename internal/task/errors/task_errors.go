package taskerrors

import (
	"net/http"

	"hr-portal/internal/shared/apperror"
)

var (
	ErrTaskNotFound     = apperror.New(apperror.CodeNotFound, "Task not found", http.StatusNotFound)
	ErrEmployeeNotFound = apperror.New(apperror.CodeNotFound, "Employee not found", http.StatusNotFound)
	ErrForbidden        = apperror.New(apperror.CodeForbidden, "Task is not assigned to you", http.StatusForbidden)
	ErrNotYourEmployee  = apperror.New(apperror.CodeForbidden, "Employee belongs to another HR", http.StatusForbidden)
	ErrEmptyUpdate      = apperror.New(apperror.CodeInvalidInput, "There is nothing to update", http.StatusBadRequest)
	ErrInvalidStatus    = apperror.New(apperror.CodeInvalidInput, "Status must be one of: Pending, In Progress, Completed", http.StatusBadRequest)
	ErrInvalidPriority  = apperror.New(apperror.CodeInvalidInput, "Priority must be one of: Low, Medium, High", http.StatusBadRequest)
	ErrInvalidDueDate   = apperror.New(apperror.CodeInvalidInput, "Invalid due_date. Use YYYY-MM-DD", http.StatusBadRequest)
	ErrInvalidTaskID    = apperror.New(apperror.CodeInvalidInput, "Invalid task ID", http.StatusBadRequest)
)

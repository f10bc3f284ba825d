package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput       = "INVALID_INPUT"
	CodeValidation         = "VALIDATION_ERROR"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeNotFound           = "NOT_FOUND"
	CodeConflict           = "CONFLICT"
	CodeInvalidState       = "INVALID_STATE"
	CodePastDateRejected   = "PAST_DATE_REJECTED"
	CodeInvalidRange       = "INVALID_RANGE"
	CodeOverlapConflict    = "OVERLAP_CONFLICT"
	CodeInvalidAction      = "INVALID_ACTION"
	CodeLeaveConflict      = "LEAVE_CONFLICT"
	CodeNoAttendanceRecord = "NO_ATTENDANCE_RECORD"
	CodeTooManyRequests    = "TOO_MANY_REQUESTS"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

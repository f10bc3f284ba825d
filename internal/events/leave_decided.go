package events

import "time"

const (
	LeaveDecidedTopic     = "hr.leave.decided.v1"
	LeaveDecidedEventType = "leave.decided"
	LeaveAggregateType    = "leave"
)

// LeaveDecidedEvent is emitted once per approve or reject, written to the
// outbox in the same transaction as the status change.
type LeaveDecidedEvent struct {
	EventType     string    `json:"event_type"`
	LeaveID       string    `json:"leave_id"`
	EmployeeID    string    `json:"employee_id"`
	EmployeeName  string    `json:"employee_name"`
	EmployeeEmail string    `json:"employee_email"`
	Status        string    `json:"status"`
	StartDate     string    `json:"start_date"`
	EndDate       string    `json:"end_date"`
	DecidedBy     string    `json:"decided_by"`
	OccurredAt    time.Time `json:"occurred_at"`
}

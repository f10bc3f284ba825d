package attendance

// CorrectAttendanceRequest is the HR correction patch. Instants are RFC3339,
// the date is YYYY-MM-DD.
type CorrectAttendanceRequest struct {
	Status   *string `json:"status" binding:"omitempty,oneof=Present Absent Leave"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Date     *string `json:"date"`
}

type ListQuery struct {
	Date       string `form:"date"`
	Range      string `form:"range"`
	EmployeeID string `form:"employee"`
	Q          string `form:"q"`
	Department string `form:"department"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	Ordering   string `form:"ordering"`
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	EmployeeID   string  `json:"employee_id"`
	EmployeeName string  `json:"employee_name,omitempty"`
	Department   string  `json:"department,omitempty"`
	Date         string  `json:"date"`
	Status       string  `json:"status"`
	CheckIn      *string `json:"check_in"`
	CheckOut     *string `json:"check_out"`
}

type EmployeeStatsResponse struct {
	TotalLeaves       int64   `json:"total_leaves"`
	PendingLeaves     int64   `json:"pending_leaves"`
	AttendancePercent float64 `json:"attendance_percent"`
}

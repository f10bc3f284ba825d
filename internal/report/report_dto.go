package report

type CountsResponse struct {
	EmployeesCount   int64 `json:"employees_count"`
	DepartmentsCount int64 `json:"departments_count"`
}

type LeaveStatusResponse struct {
	Pending  int64 `json:"pending"`
	Approved int64 `json:"approved"`
	Rejected int64 `json:"rejected"`
}

type DepartmentCountResponse struct {
	Department string `json:"department"`
	Count      int64  `json:"count"`
}

type EmployeeAttendanceResponse struct {
	EmployeeID           string  `json:"employee_id"`
	EmployeeName         string  `json:"employee_name"`
	TotalDays            int64   `json:"total_days"`
	PresentDays          int64   `json:"present_days"`
	AttendancePercentage float64 `json:"attendance_percentage"`
}

type DepartmentAttendanceResponse struct {
	Department        string  `json:"department"`
	AttendancePercent float64 `json:"attendance_percent"`
}

type PunctualEmployeeResponse struct {
	EmployeeID     string `json:"employee_id"`
	EmployeeName   string `json:"employee_name"`
	AverageCheckIn string `json:"average_check_in"`
}

type PresenceResponse struct {
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name"`
	Present      int64  `json:"present"`
	Total        int64  `json:"total"`
}

type AttendanceStatsResponse struct {
	Departments []DepartmentAttendanceResponse `json:"departments"`
	TopPunctual []PunctualEmployeeResponse     `json:"top_punctual"`
	LeastActive []PresenceResponse             `json:"least_active"`
}

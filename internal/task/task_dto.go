package task

type CreateTaskRequest struct {
	EmployeeID  string  `json:"employee_id" binding:"required,uuid"`
	Title       string  `json:"title" binding:"required,max=255"`
	Description string  `json:"description"`
	DueDate     string  `json:"due_date" binding:"required"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
}

// StatusPatch is the only change an employee may make to an assigned task.
type StatusPatch struct {
	Status *string `json:"status"`
}

type TaskResponse struct {
	ID           string `json:"id"`
	HRID         string `json:"hr_id"`
	EmployeeID   string `json:"employee_id"`
	EmployeeName string `json:"employee_name,omitempty"`
	Title        string `json:"title"`
	Description  string `json:"description"`
	DueDate      string `json:"due_date"`
	Priority     string `json:"priority"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

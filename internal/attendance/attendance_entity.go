package attendance

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
	StatusLeave   = "Leave"
)

type Attendance struct {
	ID         uuid.UUID    `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID    `gorm:"column:employee_id;type:uuid;not null;uniqueIndex:uq_attendance_employee_date"`
	Date       time.Time    `gorm:"column:date;type:date;not null;uniqueIndex:uq_attendance_employee_date"`
	Status     string       `gorm:"column:status;type:varchar(20);not null"`
	CheckIn    *time.Time   `gorm:"column:check_in;type:timestamptz"`
	CheckOut   *time.Time   `gorm:"column:check_out;type:timestamptz"`
	CreatedAt  time.Time    `gorm:"column:created_at"`
	UpdatedAt  time.Time    `gorm:"column:updated_at"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type EmployeeRef struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	HRID       uuid.UUID `gorm:"column:hr_id"`
	Name       string    `gorm:"column:name"`
	Department string    `gorm:"column:department"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

// ListFilter is the resolved form of ListQuery handed to the repository.
type ListFilter struct {
	Date       *time.Time
	From       *time.Time
	To         *time.Time
	EmployeeID string
	NameLike   string
	Department string
	OrderBy    string
}

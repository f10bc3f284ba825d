package leave

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"

	ActionApprove = "approve"
	ActionReject  = "reject"
)

type Leave struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EmployeeID uuid.UUID    `gorm:"type:uuid;not null;index:idx_leaves_employee_status"`
	StartDate  time.Time    `gorm:"type:date;not null"`
	EndDate    time.Time    `gorm:"type:date;not null"`
	Reason     string       `gorm:"type:text;not null"`
	Status     string       `gorm:"type:varchar(10);not null;default:'Pending';index:idx_leaves_employee_status"`
	DecidedBy  *uuid.UUID   `gorm:"type:uuid"`
	DecidedAt  *time.Time   `gorm:"type:timestamptz"`
	CreatedAt  time.Time    `gorm:"index"`
	UpdatedAt  time.Time
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Leave) TableName() string {
	return "leaves"
}

type EmployeeRef struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	HRID  uuid.UUID `gorm:"column:hr_id"`
	Name  string    `gorm:"column:name"`
	Email string    `gorm:"column:email"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

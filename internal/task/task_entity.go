package task

import (
	"time"

	"github.com/google/uuid"
)

const (
	PriorityLow    = "Low"
	PriorityMedium = "Medium"
	PriorityHigh   = "High"

	StatusPending    = "Pending"
	StatusInProgress = "In Progress"
	StatusCompleted  = "Completed"
)

var (
	priorities = map[string]bool{PriorityLow: true, PriorityMedium: true, PriorityHigh: true}
	statuses   = map[string]bool{StatusPending: true, StatusInProgress: true, StatusCompleted: true}
)

type Task struct {
	ID          uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HRID        uuid.UUID    `gorm:"column:hr_id;type:uuid;not null;index"`
	EmployeeID  uuid.UUID    `gorm:"type:uuid;not null;index"`
	Title       string       `gorm:"type:varchar(255);not null"`
	Description string       `gorm:"type:text"`
	DueDate     time.Time    `gorm:"type:date;not null"`
	Priority    string       `gorm:"type:varchar(10);not null;default:'Medium'"`
	Status      string       `gorm:"type:varchar(20);not null;default:'Pending'"`
	CreatedAt   time.Time    `gorm:"index"`
	UpdatedAt   time.Time
	Employee    *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Task) TableName() string {
	return "tasks"
}

type EmployeeRef struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	HRID uuid.UUID `gorm:"column:hr_id"`
	Name string    `gorm:"column:name"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

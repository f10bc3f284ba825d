package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Employee struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	HRID         uuid.UUID       `gorm:"column:hr_id;type:uuid;not null;index:idx_employees_hr_department"`
	Name         string          `gorm:"type:varchar(100);not null"`
	Email        string          `gorm:"type:varchar(255);not null;uniqueIndex:uq_employee_email"`
	PasswordHash string          `gorm:"column:password_hash;type:varchar(255);not null"`
	Department   string          `gorm:"type:varchar(100);not null;index:idx_employees_hr_department"`
	Designation  string          `gorm:"type:varchar(100);not null"`
	Salary       decimal.Decimal `gorm:"type:numeric(10,2);not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (Employee) TableName() string {
	return "employees"
}

// ListFilter narrows FindAllByHR. Department matches case-insensitively;
// Search is a case-insensitive substring of name or email.
type ListFilter struct {
	Department string
	Search     string
}

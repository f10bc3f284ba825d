package employee

import "github.com/shopspring/decimal"

type CreateEmployeeRequest struct {
	Name        string           `json:"name" binding:"required,max=100"`
	Email       string           `json:"email" binding:"required,email"`
	Password    string           `json:"password" binding:"required,min=6"`
	Department  string           `json:"department" binding:"required,max=100"`
	Designation string           `json:"designation" binding:"required,max=100"`
	Salary      *decimal.Decimal `json:"salary" binding:"required"`
}

// UpdateEmployeeRequest is a partial update; nil fields are left untouched.
type UpdateEmployeeRequest struct {
	Name        *string          `json:"name" binding:"omitempty,max=100"`
	Email       *string          `json:"email" binding:"omitempty,email"`
	Password    *string          `json:"password" binding:"omitempty,min=6"`
	Department  *string          `json:"department" binding:"omitempty,max=100"`
	Designation *string          `json:"designation" binding:"omitempty,max=100"`
	Salary      *decimal.Decimal `json:"salary"`
}

type ChangePasswordRequest struct {
	OldPassword     string `json:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type EmployeeResponse struct {
	ID          string          `json:"id"`
	HRID        string          `json:"hr_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Department  string          `json:"department"`
	Designation string          `json:"designation"`
	Salary      decimal.Decimal `json:"salary"`
	CreatedAt   string          `json:"created_at"`
}

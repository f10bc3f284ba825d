package employee

import (
	"errors"

	employeeerrors "hr-portal/internal/employee/errors"
	"hr-portal/internal/shared/dbtx"

	"gorm.io/gorm"
)

const emailConstraint = "uq_employee_email"

func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case dbtx.IsUniqueViolation(err, emailConstraint):
		return employeeerrors.ErrEmployeeAlreadyExists
	}
	return err
}

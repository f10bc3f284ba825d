// Package tenant scopes queries to the HR account that owns the rows. Every
// HR sees only its own employees and, through them, their records.
package tenant

import "gorm.io/gorm"

// Scope limits a query on a table carrying hr_id.
func Scope(hrID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("hr_id = ?", hrID)
	}
}

// EmployeeScope limits a query on a table carrying employee_id to employees
// owned by hrID.
func EmployeeScope(hrID string) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("employee_id IN (?)",
			db.Session(&gorm.Session{NewDB: true}).Table("employees").Select("id").Where("hr_id = ?", hrID),
		)
	}
}

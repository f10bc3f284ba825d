package report

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=report_repo.go -destination=mock/report_repo_mock.go -package=mock
type Repository interface {
	CountEmployees(ctx context.Context, hrID string) (int64, error)
	CountDepartments(ctx context.Context, hrID string) (int64, error)
	LeaveStatusCounts(ctx context.Context, hrID string) ([]StatusCount, error)
	DepartmentCounts(ctx context.Context, hrID string) ([]DepartmentCount, error)
	// EmployeeAttendance returns gorm.ErrRecordNotFound when the employee is
	// not one of hrID's.
	EmployeeAttendance(ctx context.Context, hrID, employeeID string) (EmployeeAttendance, error)
	DepartmentAttendance(ctx context.Context, hrID string) ([]DepartmentAttendance, error)
	CheckIns(ctx context.Context, hrID string) ([]CheckIn, error)
	LeastPresent(ctx context.Context, hrID string, limit int) ([]EmployeeAttendance, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) employees(ctx context.Context, hrID string) *gorm.DB {
	return r.db.WithContext(ctx).Table("employees").Where("employees.hr_id = ?", hrID)
}

func (r *repository) CountEmployees(ctx context.Context, hrID string) (int64, error) {
	var n int64
	err := r.employees(ctx, hrID).Count(&n).Error
	return n, err
}

func (r *repository) CountDepartments(ctx context.Context, hrID string) (int64, error) {
	var n int64
	err := r.employees(ctx, hrID).Distinct("department").Count(&n).Error
	return n, err
}

func (r *repository) LeaveStatusCounts(ctx context.Context, hrID string) ([]StatusCount, error) {
	var rows []StatusCount
	err := r.db.WithContext(ctx).
		Table("leaves").
		Select("leaves.status AS status, COUNT(*) AS count").
		Joins("JOIN employees ON employees.id = leaves.employee_id").
		Where("employees.hr_id = ?", hrID).
		Group("leaves.status").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) DepartmentCounts(ctx context.Context, hrID string) ([]DepartmentCount, error) {
	var rows []DepartmentCount
	err := r.employees(ctx, hrID).
		Select("department, COUNT(*) AS count").
		Group("department").
		Order("department ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) EmployeeAttendance(ctx context.Context, hrID, employeeID string) (EmployeeAttendance, error) {
	var row EmployeeAttendance
	res := r.employees(ctx, hrID).
		Select(`employees.id AS employee_id, employees.name AS name,
			COUNT(attendances.id) AS total,
			COUNT(attendances.id) FILTER (WHERE attendances.status = 'Present') AS present`).
		Joins("LEFT JOIN attendances ON attendances.employee_id = employees.id").
		Where("employees.id = ?", employeeID).
		Group("employees.id, employees.name").
		Scan(&row)
	if res.Error != nil {
		return row, res.Error
	}
	if res.RowsAffected == 0 {
		return row, gorm.ErrRecordNotFound
	}
	return row, nil
}

func (r *repository) DepartmentAttendance(ctx context.Context, hrID string) ([]DepartmentAttendance, error) {
	var rows []DepartmentAttendance
	err := r.employees(ctx, hrID).
		Select(`employees.department AS department,
			COUNT(attendances.id) AS total,
			COUNT(attendances.id) FILTER (WHERE attendances.status = 'Present') AS present`).
		Joins("LEFT JOIN attendances ON attendances.employee_id = employees.id").
		Group("employees.department").
		Order("employees.department ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) CheckIns(ctx context.Context, hrID string) ([]CheckIn, error) {
	var rows []CheckIn
	err := r.employees(ctx, hrID).
		Select("employees.id AS employee_id, employees.name AS name, attendances.check_in AS check_in").
		Joins("JOIN attendances ON attendances.employee_id = employees.id").
		Where("attendances.check_in IS NOT NULL").
		Scan(&rows).Error
	return rows, err
}

func (r *repository) LeastPresent(ctx context.Context, hrID string, limit int) ([]EmployeeAttendance, error) {
	var rows []EmployeeAttendance
	err := r.employees(ctx, hrID).
		Select(`employees.id AS employee_id, employees.name AS name,
			COUNT(attendances.id) AS total,
			COUNT(attendances.id) FILTER (WHERE attendances.status = 'Present') AS present`).
		Joins("LEFT JOIN attendances ON attendances.employee_id = employees.id").
		Group("employees.id, employees.name").
		Order("present ASC, employees.name ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

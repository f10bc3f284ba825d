package employee

import (
	"context"
	"database/sql"
	"strings"

	"hr-portal/internal/shared/dbtx"
	"hr-portal/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *Employee) error
	FindAllByHR(ctx context.Context, hrID string, filter ListFilter) ([]Employee, error)
	FindIDsByHR(ctx context.Context, hrID string) ([]string, error)
	FindByIDAndHR(ctx context.Context, hrID, id string) (*Employee, error)
	FindByID(ctx context.Context, id string) (*Employee, error)
	Update(ctx context.Context, e *Employee) error
	Delete(ctx context.Context, id string) error
	DeleteTasksByEmployee(ctx context.Context, employeeID string) (int64, error)
	DeleteAttendancesByEmployee(ctx context.Context, employeeID string) (int64, error)
	DeleteLeavesByEmployee(ctx context.Context, employeeID string) (int64, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: dbtx.Bind(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Create(e).Error
}

func (r *repository) FindAllByHR(ctx context.Context, hrID string, filter ListFilter) ([]Employee, error) {
	var rows []Employee
	q := r.db.WithContext(ctx).Scopes(tenant.Scope(hrID))
	if d := strings.TrimSpace(filter.Department); d != "" {
		q = q.Where("LOWER(department) = LOWER(?)", d)
	}
	if s := strings.TrimSpace(filter.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", like, like)
	}
	err := q.Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindIDsByHR(ctx context.Context, hrID string) ([]string, error) {
	var ids []string
	err := r.db.WithContext(ctx).
		Model(&Employee{}).
		Scopes(tenant.Scope(hrID)).
		Pluck("id", &ids).Error
	return ids, err
}

func (r *repository) FindByIDAndHR(ctx context.Context, hrID, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(hrID)).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	var e Employee
	err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *Employee) error {
	return r.db.WithContext(ctx).Save(e).Error
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&Employee{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// The owned tables are addressed by name so this package does not import the
// task, attendance and leave packages.

func (r *repository) DeleteTasksByEmployee(ctx context.Context, employeeID string) (int64, error) {
	res := r.db.WithContext(ctx).Exec("DELETE FROM tasks WHERE employee_id = ?", employeeID)
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteAttendancesByEmployee(ctx context.Context, employeeID string) (int64, error) {
	res := r.db.WithContext(ctx).Exec("DELETE FROM attendances WHERE employee_id = ?", employeeID)
	return res.RowsAffected, res.Error
}

func (r *repository) DeleteLeavesByEmployee(ctx context.Context, employeeID string) (int64, error) {
	res := r.db.WithContext(ctx).Exec("DELETE FROM leaves WHERE employee_id = ?", employeeID)
	return res.RowsAffected, res.Error
}

package task

import (
	"context"
	"database/sql"

	"hr-portal/internal/shared/dbtx"
	"hr-portal/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=task_repo.go -destination=mock/task_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, t *Task) error
	FindByID(ctx context.Context, id string) (*Task, error)
	ListByHR(ctx context.Context, hrID string) ([]Task, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Task, error)
	UpdateStatus(ctx context.Context, id, status string) error
	// EmployeeOwner returns the HR owning the employee, or
	// gorm.ErrRecordNotFound.
	EmployeeOwner(ctx context.Context, employeeID string) (uuid.UUID, error)
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

func (r *repository) Create(ctx context.Context, t *Task) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(t).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Task, error) {
	var t Task
	err := r.db.WithContext(ctx).First(&t, "id = ?", id).Error
	return &t, err
}

func (r *repository) ListByHR(ctx context.Context, hrID string) ([]Task, error) {
	var rows []Task
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(tenant.Scope(hrID)).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]Task, error) {
	var rows []Task
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) UpdateStatus(ctx context.Context, id, status string) error {
	res := r.db.WithContext(ctx).
		Model(&Task{}).
		Where("id = ?", id).
		Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) EmployeeOwner(ctx context.Context, employeeID string) (uuid.UUID, error) {
	var ref EmployeeRef
	err := r.db.WithContext(ctx).
		Select("id", "hr_id").
		First(&ref, "id = ?", employeeID).Error
	return ref.HRID, err
}

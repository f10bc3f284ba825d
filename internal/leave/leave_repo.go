package leave

import (
	"context"
	"database/sql"
	"time"

	"hr-portal/internal/shared/dateutil"
	"hr-portal/internal/shared/dbtx"
	"hr-portal/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	FindByID(ctx context.Context, id string) (*Leave, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error)
	ListPendingByHR(ctx context.Context, hrID string) ([]Leave, error)
	Update(ctx context.Context, l *Leave) error
	// HasApprovedOverlap reports an Approved leave of the employee sharing at
	// least one day with [start, end]. excludeID, when set, is ignored.
	HasApprovedOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	CountByStatus(ctx context.Context, employeeID string) (approved, pending int64, err error)
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

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(l).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Leave, error) {
	var l Leave
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&l, "id = ?", id).Error
	return &l, err
}

func (r *repository) ListByEmployee(ctx context.Context, employeeID string) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) ListPendingByHR(ctx context.Context, hrID string) ([]Leave, error) {
	var rows []Leave
	err := r.db.WithContext(ctx).
		Preload("Employee").
		Scopes(tenant.EmployeeScope(hrID)).
		Where("status = ?", StatusPending).
		Order("created_at DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) Update(ctx context.Context, l *Leave) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(l).Error
}

func (r *repository) HasApprovedOverlap(ctx context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	q := r.db.WithContext(ctx).
		Model(&Leave{}).
		Where("employee_id = ?", employeeID).
		Where("status = ?", StatusApproved).
		Where("start_date <= ? AND end_date >= ?", dateutil.Format(end), dateutil.Format(start))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}

	var count int64
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CountByStatus(ctx context.Context, employeeID string) (int64, int64, error) {
	var out struct {
		Approved int64
		Pending  int64
	}
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Select("COUNT(*) FILTER (WHERE status = ?) AS approved, COUNT(*) FILTER (WHERE status = ?) AS pending",
			StatusApproved, StatusPending).
		Where("employee_id = ?", employeeID).
		Scan(&out).Error
	return out.Approved, out.Pending, err
}

package attendance

import (
	"context"
	"database/sql"
	"time"

	"hr-portal/internal/shared/dateutil"
	"hr-portal/internal/shared/dbtx"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	FindByID(ctx context.Context, id string) (*Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error)
	Update(ctx context.Context, a *Attendance) error
	// UpsertLeaveDays writes a "Leave" row with cleared check-in/out for
	// every date, replacing whatever row the employee had on that date.
	UpsertLeaveDays(ctx context.Context, employeeID uuid.UUID, dates []time.Time) (int64, error)
	List(ctx context.Context, hrID string, filter ListFilter) ([]Attendance, error)
	DateTaken(ctx context.Context, employeeID string, date time.Time, excludeID string) (bool, error)
	EmployeeExists(ctx context.Context, employeeID string) (bool, error)
	HasApprovedLeaveOn(ctx context.Context, employeeID string, day time.Time) (bool, error)
	CountByEmployee(ctx context.Context, employeeID string) (total, present int64, err error)
	CountLeaves(ctx context.Context, employeeID string) (approved, pending int64, err error)
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

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Omit("Employee").Create(a).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Preload("Employee").
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("employee_id = ?", employeeID).
		Where("date = ?", dateutil.Format(date)).
		First(&a).Error
	return &a, err
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Omit("Employee").Save(a).Error
}

func (r *repository) UpsertLeaveDays(ctx context.Context, employeeID uuid.UUID, dates []time.Time) (int64, error) {
	if len(dates) == 0 {
		return 0, nil
	}
	rows := make([]Attendance, len(dates))
	for i, d := range dates {
		rows[i] = Attendance{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			Date:       d,
			Status:     StatusLeave,
		}
	}
	res := r.db.WithContext(ctx).
		Omit("Employee").
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "employee_id"}, {Name: "date"}},
			DoUpdates: clause.AssignmentColumns([]string{"status", "check_in", "check_out", "updated_at"}),
		}).
		Create(&rows)
	return res.RowsAffected, res.Error
}

func (r *repository) List(ctx context.Context, hrID string, f ListFilter) ([]Attendance, error) {
	q := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Joins("JOIN employees ON employees.id = attendances.employee_id").
		Where("employees.hr_id = ?", hrID).
		Preload("Employee")

	if f.Date != nil {
		q = q.Where("attendances.date = ?", dateutil.Format(*f.Date))
	}
	if f.From != nil {
		q = q.Where("attendances.date >= ?", dateutil.Format(*f.From))
	}
	if f.To != nil {
		q = q.Where("attendances.date <= ?", dateutil.Format(*f.To))
	}
	if f.EmployeeID != "" {
		q = q.Where("attendances.employee_id = ?", f.EmployeeID)
	}
	if f.NameLike != "" {
		q = q.Where("LOWER(employees.name) LIKE ?", "%"+f.NameLike+"%")
	}
	if f.Department != "" {
		q = q.Where("LOWER(employees.department) = LOWER(?)", f.Department)
	}

	order := f.OrderBy
	if order == "" {
		order = "attendances.date DESC"
	}

	var rows []Attendance
	err := q.Order(order).Find(&rows).Error
	return rows, err
}

func (r *repository) DateTaken(ctx context.Context, employeeID string, date time.Time, excludeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Where("employee_id = ?", employeeID).
		Where("date = ?", dateutil.Format(date)).
		Where("id <> ?", excludeID).
		Count(&count).Error
	return count > 0, err
}

// Employees and leaves are read by table name so this package does not
// depend on the employee and leave packages.

func (r *repository) EmployeeExists(ctx context.Context, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) HasApprovedLeaveOn(ctx context.Context, employeeID string, day time.Time) (bool, error) {
	d := dateutil.Format(day)
	var count int64
	err := r.db.WithContext(ctx).
		Table("leaves").
		Where("employee_id = ?", employeeID).
		Where("status = ?", "Approved").
		Where("start_date <= ? AND end_date >= ?", d, d).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CountByEmployee(ctx context.Context, employeeID string) (int64, int64, error) {
	var out struct {
		Total   int64
		Present int64
	}
	err := r.db.WithContext(ctx).
		Model(&Attendance{}).
		Select("COUNT(*) AS total, COUNT(*) FILTER (WHERE status = ?) AS present", StatusPresent).
		Where("employee_id = ?", employeeID).
		Scan(&out).Error
	return out.Total, out.Present, err
}

func (r *repository) CountLeaves(ctx context.Context, employeeID string) (int64, int64, error) {
	var out struct {
		Approved int64
		Pending  int64
	}
	err := r.db.WithContext(ctx).
		Table("leaves").
		Select("COUNT(*) FILTER (WHERE status = 'Approved') AS approved, COUNT(*) FILTER (WHERE status = 'Pending') AS pending").
		Where("employee_id = ?", employeeID).
		Scan(&out).Error
	return out.Approved, out.Pending, err
}

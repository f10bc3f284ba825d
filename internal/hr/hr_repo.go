package hr

import (
	"context"
	"database/sql"
	"errors"

	hrerrors "hr-portal/internal/hr/errors"
	"hr-portal/internal/shared/dbtx"

	"gorm.io/gorm"
)

//go:generate mockgen -source=hr_repo.go -destination=mock/hr_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, h *HR) error
	FindByID(ctx context.Context, id string) (*HR, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Delete(ctx context.Context, id string) error
	DeleteTasksByHR(ctx context.Context, hrID string) (int64, error)
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

func (r *repository) Create(ctx context.Context, h *HR) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *repository) FindByID(ctx context.Context, id string) (*HR, error) {
	var h HR
	err := r.db.WithContext(ctx).First(&h, "id = ?", id).Error
	return &h, err
}

func (r *repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&HR{}).
		Where("LOWER(email) = LOWER(?)", email).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&HR{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) DeleteTasksByHR(ctx context.Context, hrID string) (int64, error) {
	res := r.db.WithContext(ctx).Exec("DELETE FROM tasks WHERE hr_id = ?", hrID)
	return res.RowsAffected, res.Error
}

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return hrerrors.ErrHRNotFound
	}
	if dbtx.IsUniqueViolation(err, "uq_hr_email") {
		return hrerrors.ErrHRAlreadyExists
	}
	return err
}

package auth

import (
	"context"
	"errors"
	"strings"

	"hr-portal/internal/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	// FindByEmail looks in HR accounts first, then employees.
	FindByEmail(ctx context.Context, email string) (*Account, error)
	FindByID(ctx context.Context, id, role string) (*Account, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

type accountRow struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Department   string
}

func tableFor(role string) string {
	if role == domain.RoleHR {
		return "hrs"
	}
	return "employees"
}

func (r *repository) find(ctx context.Context, role, column, value string) (*Account, error) {
	var row accountRow
	err := r.db.WithContext(ctx).
		Table(tableFor(role)).
		Select("id", "name", "email", "password_hash", "department").
		Where(column+" = ?", value).
		Take(&row).Error
	if err != nil {
		return nil, err
	}
	return &Account{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		Department:   row.Department,
		Role:         role,
	}, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	acc, err := r.find(ctx, domain.RoleHR, "LOWER(email)", email)
	if err == nil {
		return acc, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return r.find(ctx, domain.RoleEmployee, "LOWER(email)", email)
}

func (r *repository) FindByID(ctx context.Context, id, role string) (*Account, error) {
	if role != domain.RoleHR && role != domain.RoleEmployee {
		return nil, gorm.ErrRecordNotFound
	}
	return r.find(ctx, role, "id", id)
}

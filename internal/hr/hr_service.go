package hr

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"hr-portal/internal/auth"
	"hr-portal/internal/employee"
	hrerrors "hr-portal/internal/hr/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service interface {
	GetMe(ctx context.Context, hrID string) (HRResponse, error)
	// Delete removes the HR account with every employee it owns (and their
	// leaves, attendances and tasks) plus the tasks it assigned.
	Delete(ctx context.Context, hrID string) error
	// Seed creates the account unless the email is already registered.
	Seed(ctx context.Context, in SeedInput) (bool, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	hasher       auth.PasswordHasher
	logger       *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository, hasher auth.PasswordHasher, logger ...*zap.Logger) Service {
	l := zap.L().Named("hr.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("hr.service")
	}
	return &service{
		db:           db,
		repo:         repo,
		employeeRepo: employeeRepo,
		hasher:       hasher,
		logger:       l,
	}
}

func (s *service) GetMe(ctx context.Context, hrID string) (HRResponse, error) {
	h, err := s.repo.FindByID(ctx, hrID)
	if err != nil {
		return HRResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*h), nil
}

func (s *service) Delete(ctx context.Context, hrID string) error {
	s.logger.Debug("delete hr requested", zap.String("hr_id", hrID))

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete hr begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	etx := s.employeeRepo.WithTx(tx)

	if _, err := qtx.FindByID(ctx, hrID); err != nil {
		return mapRepositoryError(err)
	}

	tasks, err := qtx.DeleteTasksByHR(ctx, hrID)
	if err != nil {
		s.logger.Error("delete hr tasks failed", zap.Error(err))
		return err
	}

	ids, err := etx.FindIDsByHR(ctx, hrID)
	if err != nil {
		s.logger.Error("delete hr list employees failed", zap.Error(err))
		return err
	}
	for _, id := range ids {
		if err := employee.CascadeDelete(ctx, etx, id, s.logger); err != nil {
			s.logger.Error("delete hr employee cascade failed",
				zap.String("employee_id", id),
				zap.Error(err),
			)
			return err
		}
	}

	if err := qtx.Delete(ctx, hrID); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete hr commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete hr success",
		zap.String("hr_id", hrID),
		zap.Int("employees", len(ids)),
		zap.Int64("tasks", tasks),
	)
	return nil
}

func (s *service) Seed(ctx context.Context, in SeedInput) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || in.Password == "" || strings.TrimSpace(in.Name) == "" {
		return false, hrerrors.ErrInvalidSeed
	}

	exists, err := s.repo.ExistsByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	if exists {
		s.logger.Debug("hr seed skipped, email registered", zap.String("email", email))
		return false, nil
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return false, err
	}

	h := &HR{
		ID:           uuid.New(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hash,
		Department:   strings.TrimSpace(in.Department),
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return false, mapRepositoryError(err)
	}

	s.logger.Info("hr seeded", zap.String("hr_id", h.ID.String()), zap.String("email", email))
	return true, nil
}

func mapToResponse(h HR) HRResponse {
	return HRResponse{
		ID:         h.ID.String(),
		Name:       h.Name,
		Email:      h.Email,
		Department: h.Department,
		CreatedAt:  h.CreatedAt.Format(time.RFC3339),
	}
}

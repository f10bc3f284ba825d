package employee

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"hr-portal/internal/auth"
	employeeerrors "hr-portal/internal/employee/errors"
	"hr-portal/internal/notification"
	"hr-portal/internal/shared/apperror"
	"hr-portal/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var maxSalary = decimal.New(1, 8)

// Notifier is satisfied by *notification.Dispatcher.
type Notifier interface {
	Dispatch(msg notification.Message) bool
}

type Service interface {
	Create(ctx context.Context, hrID string, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context, hrID string, filter ListFilter) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, hrID, id string) (EmployeeResponse, error)
	Update(ctx context.Context, hrID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, hrID, id string) error
	ChangePassword(ctx context.Context, employeeID string, req ChangePasswordRequest) error
}

type service struct {
	db       *sql.DB
	repo     Repository
	hasher   auth.PasswordHasher
	notifier Notifier
	logger   *zap.Logger
}

func NewService(db *sql.DB, repo Repository, hasher auth.PasswordHasher, notifier Notifier, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		db:       db,
		repo:     repo,
		hasher:   hasher,
		notifier: notifier,
		logger:   l,
	}
}

func (s *service) Create(ctx context.Context, hrID string, req CreateEmployeeRequest) (EmployeeResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create employee requested",
		zap.String("request_id", rid),
		zap.String("hr_id", hrID),
		zap.String("email", req.Email),
	)

	hrUUID, err := uuid.Parse(hrID)
	if err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidHRID
	}
	if req.Salary == nil {
		return EmployeeResponse{}, apperror.RequiredField("Salary")
	}
	if err := validateSalary(*req.Salary); err != nil {
		return EmployeeResponse{}, err
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("create employee hash password failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create employee begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl := &Employee{
		ID:           uuid.New(),
		HRID:         hrUUID,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash: hash,
		Department:   strings.TrimSpace(req.Department),
		Designation:  strings.TrimSpace(req.Designation),
		Salary:       *req.Salary,
	}

	if err := qtx.Create(ctx, empl); err != nil {
		s.logger.Error("create employee persist failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create employee commit failed", zap.String("request_id", rid), zap.Error(err))
		return EmployeeResponse{}, err
	}

	if s.notifier != nil {
		if !s.notifier.Dispatch(notification.WelcomeMessage(empl.Name, empl.Email, req.Password)) {
			s.logger.Warn("create employee welcome notification not queued",
				zap.String("request_id", rid),
				zap.String("employee_id", empl.ID.String()),
			)
		}
	}

	s.logger.Info("create employee success",
		zap.String("request_id", rid),
		zap.String("employee_id", empl.ID.String()),
	)

	return mapToResponse(*empl), nil
}

func (s *service) GetAll(ctx context.Context, hrID string, filter ListFilter) ([]EmployeeResponse, error) {
	s.logger.Debug("get all employees requested",
		zap.String("hr_id", hrID),
		zap.String("department", filter.Department),
		zap.String("search", filter.Search),
	)
	if _, err := uuid.Parse(hrID); err != nil {
		return nil, employeeerrors.ErrInvalidHRID
	}

	rows, err := s.repo.FindAllByHR(ctx, hrID, filter)
	if err != nil {
		s.logger.Error("get all employees failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, hrID, id string) (EmployeeResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	empl, err := s.repo.FindByIDAndHR(ctx, hrID, id)
	if err != nil {
		s.logger.Warn("get employee by id failed",
			zap.String("hr_id", hrID),
			zap.String("employee_id", id),
			zap.Error(err),
		)
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*empl), nil
}

func (s *service) Update(ctx context.Context, hrID, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("update employee requested",
		zap.String("hr_id", hrID),
		zap.String("employee_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return EmployeeResponse{}, employeeerrors.ErrInvalidEmployeeID
	}
	if isEmptyUpdate(req) {
		return EmployeeResponse{}, employeeerrors.ErrEmptyUpdate
	}
	if req.Salary != nil {
		if err := validateSalary(*req.Salary); err != nil {
			return EmployeeResponse{}, err
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update employee begin tx failed", zap.Error(err))
		return EmployeeResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	empl, err := qtx.FindByIDAndHR(ctx, hrID, id)
	if err != nil {
		s.logger.Warn("update employee fetch existing failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if req.Name != nil {
		empl.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		empl.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Department != nil {
		empl.Department = strings.TrimSpace(*req.Department)
	}
	if req.Designation != nil {
		empl.Designation = strings.TrimSpace(*req.Designation)
	}
	if req.Salary != nil {
		empl.Salary = *req.Salary
	}
	if req.Password != nil {
		hash, err := s.hasher.Hash(*req.Password)
		if err != nil {
			return EmployeeResponse{}, err
		}
		empl.PasswordHash = hash
	}

	if err := qtx.Update(ctx, empl); err != nil {
		s.logger.Error("update employee persist failed", zap.Error(err))
		return EmployeeResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update employee commit failed", zap.Error(err))
		return EmployeeResponse{}, err
	}

	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*empl), nil
}

func (s *service) Delete(ctx context.Context, hrID, id string) error {
	s.logger.Debug("delete employee requested",
		zap.String("hr_id", hrID),
		zap.String("employee_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return employeeerrors.ErrInvalidEmployeeID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete employee begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndHR(ctx, hrID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := CascadeDelete(ctx, qtx, id, s.logger); err != nil {
		s.logger.Error("delete employee failed", zap.String("employee_id", id), zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete employee commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) ChangePassword(ctx context.Context, employeeID string, req ChangePasswordRequest) error {
	switch {
	case req.OldPassword == "":
		return apperror.RequiredField("Old Password")
	case req.NewPassword == "":
		return apperror.RequiredField("New Password")
	case req.ConfirmPassword == "":
		return apperror.RequiredField("Confirm Password")
	}

	empl, err := s.repo.FindByID(ctx, employeeID)
	if err != nil {
		return mapRepositoryError(err)
	}

	if !s.hasher.Verify(req.OldPassword, empl.PasswordHash) {
		s.logger.Warn("change password old password mismatch", zap.String("employee_id", employeeID))
		return employeeerrors.ErrOldPasswordIncorrect
	}
	if req.NewPassword != req.ConfirmPassword {
		return employeeerrors.ErrPasswordMismatch
	}
	if req.NewPassword == req.OldPassword {
		return employeeerrors.ErrPasswordUnchanged
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	empl.PasswordHash = hash

	if err := s.repo.Update(ctx, empl); err != nil {
		s.logger.Error("change password persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return mapRepositoryError(err)
	}

	s.logger.Info("change password success", zap.String("employee_id", employeeID))
	return nil
}

func validateSalary(v decimal.Decimal) error {
	if v.IsNegative() {
		return employeeerrors.ErrNegativeSalary
	}
	if v.GreaterThanOrEqual(maxSalary) || !v.Round(2).Equal(v) {
		return employeeerrors.ErrSalaryOutOfRange
	}
	return nil
}

func isEmptyUpdate(req UpdateEmployeeRequest) bool {
	return req.Name == nil && req.Email == nil && req.Password == nil &&
		req.Department == nil && req.Designation == nil && req.Salary == nil
}

func mapToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:          e.ID.String(),
		HRID:        e.HRID.String(),
		Name:        e.Name,
		Email:       e.Email,
		Department:  e.Department,
		Designation: e.Designation,
		Salary:      e.Salary,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(rows []Employee) []EmployeeResponse {
	res := make([]EmployeeResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res
}

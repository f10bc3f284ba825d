package task

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"hr-portal/internal/shared/contextutil"
	"hr-portal/internal/shared/dateutil"
	taskerrors "hr-portal/internal/task/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Create(ctx context.Context, hrID string, req CreateTaskRequest) (TaskResponse, error)
	ListByHR(ctx context.Context, hrID string) ([]TaskResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]TaskResponse, error)
	UpdateStatus(ctx context.Context, employeeID, id string, patch StatusPatch) (TaskResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("task.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("task.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, hrID string, req CreateTaskRequest) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	hrUUID, err := uuid.Parse(hrID)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrNotYourEmployee
	}
	empUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrEmployeeNotFound
	}
	due, err := dateutil.Parse(req.DueDate)
	if err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidDueDate
	}

	priority := PriorityMedium
	if req.Priority != nil {
		priority = *req.Priority
	}
	if !priorities[priority] {
		return TaskResponse{}, taskerrors.ErrInvalidPriority
	}
	status := StatusPending
	if req.Status != nil {
		status = *req.Status
	}
	if !statuses[status] {
		return TaskResponse{}, taskerrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create task begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	owner, err := qtx.EmployeeOwner(ctx, req.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskResponse{}, taskerrors.ErrEmployeeNotFound
		}
		return TaskResponse{}, err
	}
	if owner != hrUUID {
		s.logger.Warn("task assignment outside hr scope",
			zap.String("request_id", rid),
			zap.String("hr_id", hrID),
			zap.String("employee_id", req.EmployeeID),
		)
		return TaskResponse{}, taskerrors.ErrNotYourEmployee
	}

	t := &Task{
		ID:          uuid.New(),
		HRID:        hrUUID,
		EmployeeID:  empUUID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		DueDate:     due,
		Priority:    priority,
		Status:      status,
	}
	if err := qtx.Create(ctx, t); err != nil {
		s.logger.Error("create task failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create task commit failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}

	s.logger.Info("task created",
		zap.String("request_id", rid),
		zap.String("task_id", t.ID.String()),
		zap.String("employee_id", req.EmployeeID),
	)
	return mapToResponse(*t), nil
}

func (s *service) ListByHR(ctx context.Context, hrID string) ([]TaskResponse, error) {
	rows, err := s.repo.ListByHR(ctx, hrID)
	if err != nil {
		s.logger.Error("list tasks failed", zap.String("hr_id", hrID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]TaskResponse, error) {
	rows, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list own tasks failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) UpdateStatus(ctx context.Context, employeeID, id string, patch StatusPatch) (TaskResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return TaskResponse{}, taskerrors.ErrInvalidTaskID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update task status begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return TaskResponse{}, taskerrors.ErrTaskNotFound
		}
		return TaskResponse{}, err
	}
	if t.EmployeeID.String() != employeeID {
		s.logger.Warn("task status update by non assignee",
			zap.String("request_id", rid),
			zap.String("task_id", id),
			zap.String("employee_id", employeeID),
		)
		return TaskResponse{}, taskerrors.ErrForbidden
	}
	if patch.Status == nil {
		return TaskResponse{}, taskerrors.ErrEmptyUpdate
	}
	if !statuses[*patch.Status] {
		return TaskResponse{}, taskerrors.ErrInvalidStatus
	}

	if err := qtx.UpdateStatus(ctx, id, *patch.Status); err != nil {
		s.logger.Error("update task status failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}
	if err := tx.Commit(); err != nil {
		s.logger.Error("update task status commit failed", zap.String("request_id", rid), zap.Error(err))
		return TaskResponse{}, err
	}

	s.logger.Info("task status updated",
		zap.String("request_id", rid),
		zap.String("task_id", id),
		zap.String("from", t.Status),
		zap.String("to", *patch.Status),
	)
	t.Status = *patch.Status
	return mapToResponse(*t), nil
}

func mapToResponse(t Task) TaskResponse {
	resp := TaskResponse{
		ID:          t.ID.String(),
		HRID:        t.HRID.String(),
		EmployeeID:  t.EmployeeID.String(),
		Title:       t.Title,
		Description: t.Description,
		DueDate:     dateutil.Format(t.DueDate),
		Priority:    t.Priority,
		Status:      t.Status,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
	}
	if t.Employee != nil {
		resp.EmployeeName = t.Employee.Name
	}
	return resp
}

func mapToListResponse(rows []Task) []TaskResponse {
	out := make([]TaskResponse, 0, len(rows))
	for _, t := range rows {
		out = append(out, mapToResponse(t))
	}
	return out
}

package leave

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"hr-portal/internal/attendance"
	"hr-portal/internal/events"
	leaveerrors "hr-portal/internal/leave/errors"
	"hr-portal/internal/messaging/kafka"
	"hr-portal/internal/shared/clock"
	"hr-portal/internal/shared/contextutil"
	"hr-portal/internal/shared/dateutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service interface {
	Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error)
	Decide(ctx context.Context, hrID, id, action string) (LeaveResponse, error)
	ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error)
	ListPending(ctx context.Context, hrID string) ([]LeaveResponse, error)
	GetByID(ctx context.Context, hrID, id string) (LeaveResponse, error)
	Summary(ctx context.Context, employeeID string) (SummaryResponse, error)
}

type service struct {
	db             *sql.DB
	repo           Repository
	attendanceRepo attendance.Repository
	outbox         kafka.OutboxRepository
	clock          clock.Clock
	logger         *zap.Logger
}

func NewService(
	db *sql.DB,
	repo Repository,
	attendanceRepo attendance.Repository,
	outbox kafka.OutboxRepository,
	clk clock.Clock,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	if clk == nil {
		clk = clock.New(nil)
	}
	return &service{
		db:             db,
		repo:           repo,
		attendanceRepo: attendanceRepo,
		outbox:         outbox,
		clock:          clk,
		logger:         l,
	}
}

func (s *service) Submit(ctx context.Context, employeeID string, req SubmitLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("submit leave requested",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	start, err := dateutil.Parse(req.StartDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}
	end, err := dateutil.Parse(req.EndDate)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidDateFormat
	}

	today := dateutil.Civil(s.clock.Now())
	if start.Before(today) || end.Before(today) {
		return LeaveResponse{}, leaveerrors.ErrPastDate
	}
	if start.After(end) {
		return LeaveResponse{}, leaveerrors.ErrInvalidRange
	}

	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("submit leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, employeeID)
	if err != nil {
		return LeaveResponse{}, err
	}
	if !exists {
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotFound
	}

	overlap, err := qtx.HasApprovedOverlap(ctx, employeeID, start, end, "")
	if err != nil {
		s.logger.Error("submit leave overlap check failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		return LeaveResponse{}, leaveerrors.ErrOverlap
	}

	l := &Leave{
		ID:         uuid.New(),
		EmployeeID: empUUID,
		StartDate:  start,
		EndDate:    end,
		Reason:     strings.TrimSpace(req.Reason),
		Status:     StatusPending,
	}
	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("submit leave create failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("submit leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave submitted",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("employee_id", employeeID),
	)
	return mapToResponse(*l), nil
}

func (s *service) Decide(ctx context.Context, hrID, id, action string) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
	}
	hrUUID, err := uuid.Parse(hrID)
	if err != nil {
		return LeaveResponse{}, leaveerrors.ErrForbidden
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("decide leave begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}

	var newStatus string
	switch action {
	case ActionApprove:
		newStatus = StatusApproved
	case ActionReject:
		newStatus = StatusRejected
	default:
		return LeaveResponse{}, leaveerrors.ErrInvalidAction
	}

	if l.Employee == nil || l.Employee.HRID != hrUUID {
		s.logger.Warn("decide leave outside hr scope",
			zap.String("request_id", rid),
			zap.String("hr_id", hrID),
			zap.String("leave_id", id),
		)
		return LeaveResponse{}, leaveerrors.ErrForbidden
	}

	if l.Status != StatusPending {
		s.logger.Warn("leave decided again",
			zap.String("request_id", rid),
			zap.String("leave_id", id),
			zap.String("from", l.Status),
			zap.String("to", newStatus),
		)
	}

	if newStatus == StatusApproved {
		overlap, err := qtx.HasApprovedOverlap(ctx, l.EmployeeID.String(), l.StartDate, l.EndDate, id)
		if err != nil {
			return LeaveResponse{}, err
		}
		if overlap {
			return LeaveResponse{}, leaveerrors.ErrOverlap
		}
	}

	now := s.clock.Now()
	l.Status = newStatus
	l.DecidedBy = &hrUUID
	l.DecidedAt = &now
	if err := qtx.Update(ctx, l); err != nil {
		s.logger.Error("decide leave update failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	if newStatus == StatusApproved {
		days := dateutil.Range(l.StartDate, l.EndDate)
		n, err := s.attendanceRepo.WithTx(tx).UpsertLeaveDays(ctx, l.EmployeeID, days)
		if err != nil {
			s.logger.Error("leave attendance backfill failed",
				zap.String("request_id", rid),
				zap.String("leave_id", id),
				zap.Error(err),
			)
			return LeaveResponse{}, err
		}
		s.logger.Debug("leave attendance backfilled", zap.String("leave_id", id), zap.Int64("rows", n))
	}

	if err := s.enqueueDecision(ctx, tx, rid, *l, now); err != nil {
		s.logger.Error("decide leave outbox insert failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("decide leave commit failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	s.logger.Info("leave decided",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", newStatus),
		zap.String("hr_id", hrID),
	)
	return mapToResponse(*l), nil
}

func (s *service) enqueueDecision(ctx context.Context, tx *sql.Tx, rid string, l Leave, at time.Time) error {
	if s.outbox == nil {
		return nil
	}
	payload := events.LeaveDecidedEvent{
		EventType:  events.LeaveDecidedEventType,
		LeaveID:    l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		Status:     l.Status,
		StartDate:  dateutil.Format(l.StartDate),
		EndDate:    dateutil.Format(l.EndDate),
		OccurredAt: at.UTC(),
	}
	if l.DecidedBy != nil {
		payload.DecidedBy = l.DecidedBy.String()
	}
	if l.Employee != nil {
		payload.EmployeeName = l.Employee.Name
		payload.EmployeeEmail = l.Employee.Email
	}

	event, err := kafka.NewOutboxEvent(
		rid,
		events.LeaveAggregateType,
		l.ID.String(),
		events.LeaveDecidedEventType,
		events.LeaveDecidedTopic,
		payload,
	)
	if err != nil {
		return err
	}
	return s.outbox.WithTx(tx).Create(ctx, event)
}

func (s *service) ListMine(ctx context.Context, employeeID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, leaveerrors.ErrEmployeeNotFound
	}
	rows, err := s.repo.ListByEmployee(ctx, employeeID)
	if err != nil {
		s.logger.Error("list own leaves failed", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) ListPending(ctx context.Context, hrID string) ([]LeaveResponse, error) {
	if _, err := uuid.Parse(hrID); err != nil {
		return nil, leaveerrors.ErrForbidden
	}
	rows, err := s.repo.ListPendingByHR(ctx, hrID)
	if err != nil {
		s.logger.Error("list pending leaves failed", zap.String("hr_id", hrID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(rows), nil
}

func (s *service) GetByID(ctx context.Context, hrID, id string) (LeaveResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return LeaveResponse{}, leaveerrors.ErrInvalidLeaveID
	}
	l, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		return LeaveResponse{}, err
	}
	if l.Employee == nil || l.Employee.HRID.String() != hrID {
		return LeaveResponse{}, leaveerrors.ErrForbidden
	}
	return mapToResponse(*l), nil
}

func (s *service) Summary(ctx context.Context, employeeID string) (SummaryResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return SummaryResponse{}, leaveerrors.ErrEmployeeNotFound
	}
	approved, pending, err := s.repo.CountByStatus(ctx, employeeID)
	if err != nil {
		return SummaryResponse{}, err
	}
	return SummaryResponse{TotalTaken: approved, Pending: pending}, nil
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:         l.ID.String(),
		EmployeeID: l.EmployeeID.String(),
		StartDate:  dateutil.Format(l.StartDate),
		EndDate:    dateutil.Format(l.EndDate),
		Reason:     l.Reason,
		Status:     l.Status,
		CreatedAt:  l.CreatedAt.Format(time.RFC3339),
	}
	if l.Employee != nil {
		resp.EmployeeName = l.Employee.Name
	}
	if l.DecidedBy != nil {
		v := l.DecidedBy.String()
		resp.DecidedBy = &v
	}
	if l.DecidedAt != nil {
		v := l.DecidedAt.Format(time.RFC3339)
		resp.DecidedAt = &v
	}
	return resp
}

func mapToListResponse(rows []Leave) []LeaveResponse {
	out := make([]LeaveResponse, 0, len(rows))
	for _, l := range rows {
		out = append(out, mapToResponse(l))
	}
	return out
}

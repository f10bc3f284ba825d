package attendance

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	attendanceerrors "hr-portal/internal/attendance/errors"
	"hr-portal/internal/shared/clock"
	"hr-portal/internal/shared/contextutil"
	"hr-portal/internal/shared/dateutil"
	"hr-portal/internal/shared/dbtx"
	"hr-portal/internal/shared/percent"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var orderings = map[string]string{
	"date":      "attendances.date ASC",
	"-date":     "attendances.date DESC",
	"check_in":  "attendances.check_in ASC",
	"-check_in": "attendances.check_in DESC",
	"status":    "attendances.status ASC",
	"-status":   "attendances.status DESC",
}

type Service interface {
	CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error)
	CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error)
	Correct(ctx context.Context, hrID, id string, req CorrectAttendanceRequest) (AttendanceResponse, error)
	List(ctx context.Context, hrID string, q ListQuery) ([]AttendanceResponse, error)
	EmployeeStats(ctx context.Context, employeeID string) (EmployeeStatsResponse, error)
}

type service struct {
	db     *sql.DB
	repo   Repository
	clock  clock.Clock
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, clk clock.Clock, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if clk == nil {
		clk = clock.New(nil)
	}
	return &service{db: db, repo: repo, clock: clk, logger: l}
}

func (s *service) CheckIn(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	empUUID, err := uuid.Parse(employeeID)
	if err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}

	now := s.clock.Now()
	today := dateutil.Civil(now)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("check in begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	exists, err := qtx.EmployeeExists(ctx, employeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if !exists {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}

	onLeave, err := qtx.HasApprovedLeaveOn(ctx, employeeID, today)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if onLeave {
		s.logger.Info("check in blocked by approved leave",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
			zap.String("date", dateutil.Format(today)),
		)
		return AttendanceResponse{}, attendanceerrors.ErrLeaveConflict
	}

	row, err := qtx.FindByEmployeeAndDate(ctx, employeeID, today)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row = &Attendance{
			ID:         uuid.New(),
			EmployeeID: empUUID,
			Date:       today,
			Status:     StatusPresent,
			CheckIn:    &now,
		}
		if err := qtx.Create(ctx, row); err != nil {
			if dbtx.IsUniqueViolation(err, "uq_attendance_employee_date") {
				// a concurrent check-in won the insert; its row is the answer
				return s.currentRow(ctx, employeeID, today)
			}
			s.logger.Error("check in create failed", zap.String("request_id", rid), zap.Error(err))
			return AttendanceResponse{}, err
		}
	case err != nil:
		return AttendanceResponse{}, err
	case row.CheckIn == nil:
		row.CheckIn = &now
		row.Status = StatusPresent
		if err := qtx.Update(ctx, row); err != nil {
			return AttendanceResponse{}, err
		}
	default:
		s.logger.Debug("check in already recorded",
			zap.String("request_id", rid),
			zap.String("employee_id", employeeID),
		)
		return mapToResponse(*row), nil
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("check in commit failed", zap.String("request_id", rid), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("check in success",
		zap.String("request_id", rid),
		zap.String("employee_id", employeeID),
		zap.String("attendance_id", row.ID.String()),
	)
	return mapToResponse(*row), nil
}

func (s *service) currentRow(ctx context.Context, employeeID string, day time.Time) (AttendanceResponse, error) {
	row, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, day)
	if err != nil {
		return AttendanceResponse{}, err
	}
	return mapToResponse(*row), nil
}

func (s *service) CheckOut(ctx context.Context, employeeID string) (AttendanceResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}

	now := s.clock.Now()
	today := dateutil.Civil(now)

	exists, err := s.repo.EmployeeExists(ctx, employeeID)
	if err != nil {
		return AttendanceResponse{}, err
	}
	if !exists {
		return AttendanceResponse{}, attendanceerrors.ErrEmployeeNotFound
	}

	row, err := s.repo.FindByEmployeeAndDate(ctx, employeeID, today)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrNoAttendanceRecord
		}
		return AttendanceResponse{}, err
	}

	row.CheckOut = &now
	if err := s.repo.Update(ctx, row); err != nil {
		s.logger.Error("check out persist failed", zap.String("employee_id", employeeID), zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("check out success", zap.String("employee_id", employeeID))
	return mapToResponse(*row), nil
}

func (s *service) Correct(ctx context.Context, hrID, id string, req CorrectAttendanceRequest) (AttendanceResponse, error) {
	s.logger.Debug("correct attendance requested",
		zap.String("hr_id", hrID),
		zap.String("attendance_id", id),
	)

	if _, err := uuid.Parse(id); err != nil {
		return AttendanceResponse{}, attendanceerrors.ErrInvalidAttendanceID
	}
	if req.Status == nil && req.CheckIn == nil && req.CheckOut == nil && req.Date == nil {
		return AttendanceResponse{}, attendanceerrors.ErrEmptyUpdate
	}

	var (
		newDate           *time.Time
		checkIn, checkOut *time.Time
	)
	if req.Date != nil {
		d, err := dateutil.Parse(*req.Date)
		if err != nil {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidDate
		}
		newDate = &d
	}
	if req.CheckIn != nil {
		t, err := time.Parse(time.RFC3339, *req.CheckIn)
		if err != nil {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidTime
		}
		checkIn = &t
	}
	if req.CheckOut != nil {
		t, err := time.Parse(time.RFC3339, *req.CheckOut)
		if err != nil {
			return AttendanceResponse{}, attendanceerrors.ErrInvalidTime
		}
		checkOut = &t
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AttendanceResponse{}, attendanceerrors.ErrAttendanceNotFound
		}
		return AttendanceResponse{}, err
	}
	if row.Employee == nil || row.Employee.HRID.String() != hrID {
		return AttendanceResponse{}, attendanceerrors.ErrForbidden
	}

	employeeID := row.EmployeeID.String()
	if newDate != nil && !newDate.Equal(row.Date) {
		taken, err := qtx.DateTaken(ctx, employeeID, *newDate, id)
		if err != nil {
			return AttendanceResponse{}, err
		}
		if taken {
			return AttendanceResponse{}, attendanceerrors.ErrDateTaken
		}
		row.Date = *newDate
	}
	if req.Status != nil {
		row.Status = *req.Status
	}
	if checkIn != nil {
		row.CheckIn = checkIn
	}
	if checkOut != nil {
		row.CheckOut = checkOut
	}

	if err := qtx.Update(ctx, row); err != nil {
		if dbtx.IsUniqueViolation(err, "uq_attendance_employee_date") {
			return AttendanceResponse{}, attendanceerrors.ErrDateTaken
		}
		s.logger.Error("correct attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	if row.Status == StatusPresent {
		onLeave, err := qtx.HasApprovedLeaveOn(ctx, employeeID, row.Date)
		if err != nil {
			return AttendanceResponse{}, err
		}
		if onLeave {
			s.logger.Warn("attendance corrected to Present on approved leave date",
				zap.String("hr_id", hrID),
				zap.String("attendance_id", id),
				zap.String("employee_id", employeeID),
				zap.String("date", dateutil.Format(row.Date)),
			)
		}
	}

	if err := tx.Commit(); err != nil {
		return AttendanceResponse{}, err
	}

	s.logger.Info("correct attendance success", zap.String("attendance_id", id))
	return mapToResponse(*row), nil
}

func (s *service) List(ctx context.Context, hrID string, q ListQuery) ([]AttendanceResponse, error) {
	filter, err := s.resolveFilter(q)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.List(ctx, hrID, filter)
	if err != nil {
		s.logger.Error("list attendance failed", zap.String("hr_id", hrID), zap.Error(err))
		return nil, err
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) resolveFilter(q ListQuery) (ListFilter, error) {
	var f ListFilter
	today := dateutil.Civil(s.clock.Now())

	if q.Date != "" {
		d, err := dateutil.Parse(q.Date)
		if err != nil {
			return f, attendanceerrors.ErrInvalidDate
		}
		f.Date = &d
	}

	switch strings.ToLower(q.Range) {
	case "weekly":
		from := dateutil.StartOfWeek(today)
		f.From = &from
	case "monthly":
		from := dateutil.StartOfMonth(today)
		to := from.AddDate(0, 1, -1)
		f.From, f.To = &from, &to
	}

	if q.StartDate != "" && q.EndDate != "" {
		start, err := dateutil.Parse(q.StartDate)
		if err != nil {
			return f, attendanceerrors.ErrInvalidDate
		}
		end, err := dateutil.Parse(q.EndDate)
		if err != nil {
			return f, attendanceerrors.ErrInvalidDate
		}
		f.From = laterOf(f.From, start)
		f.To = earlierOf(f.To, end)
	}

	f.EmployeeID = strings.TrimSpace(q.EmployeeID)
	if needle := strings.TrimSpace(q.Q); needle != "" {
		if _, err := uuid.Parse(needle); err == nil {
			f.EmployeeID = needle
		} else {
			f.NameLike = strings.ToLower(needle)
		}
	}
	f.Department = strings.TrimSpace(q.Department)

	if q.Ordering != "" {
		order, ok := orderings[q.Ordering]
		if !ok {
			return f, attendanceerrors.ErrInvalidOrdering
		}
		f.OrderBy = order
	}
	return f, nil
}

func laterOf(cur *time.Time, t time.Time) *time.Time {
	if cur != nil && cur.After(t) {
		return cur
	}
	return &t
}

func earlierOf(cur *time.Time, t time.Time) *time.Time {
	if cur != nil && cur.Before(t) {
		return cur
	}
	return &t
}

func (s *service) EmployeeStats(ctx context.Context, employeeID string) (EmployeeStatsResponse, error) {
	approved, pending, err := s.repo.CountLeaves(ctx, employeeID)
	if err != nil {
		return EmployeeStatsResponse{}, err
	}
	total, present, err := s.repo.CountByEmployee(ctx, employeeID)
	if err != nil {
		return EmployeeStatsResponse{}, err
	}

	return EmployeeStatsResponse{
		TotalLeaves:       approved,
		PendingLeaves:     pending,
		AttendancePercent: percent.Of(present, total),
	}, nil
}

func formatInstant(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func mapToResponse(a Attendance) AttendanceResponse {
	res := AttendanceResponse{
		ID:         a.ID.String(),
		EmployeeID: a.EmployeeID.String(),
		Date:       dateutil.Format(a.Date),
		Status:     a.Status,
		CheckIn:    formatInstant(a.CheckIn),
		CheckOut:   formatInstant(a.CheckOut),
	}
	if a.Employee != nil {
		res.EmployeeName = a.Employee.Name
		res.Department = a.Employee.Department
	}
	return res
}

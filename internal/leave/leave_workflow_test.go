package leave_test

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"hr-portal/internal/attendance"
	attendanceerrors "hr-portal/internal/attendance/errors"
	"hr-portal/internal/leave"
	"hr-portal/internal/messaging/kafka"
	"hr-portal/internal/shared/clock"
	"hr-portal/internal/shared/dateutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type attendanceKey struct {
	employeeID uuid.UUID
	date       string
}

// memStore backs both repositories so an approval and a later check-in see
// the same rows.
type memStore struct {
	employees  map[uuid.UUID]leave.EmployeeRef
	leaves     map[uuid.UUID]*leave.Leave
	attendance map[attendanceKey]*attendance.Attendance
}

func newMemStore() *memStore {
	return &memStore{
		employees:  map[uuid.UUID]leave.EmployeeRef{},
		leaves:     map[uuid.UUID]*leave.Leave{},
		attendance: map[attendanceKey]*attendance.Attendance{},
	}
}

type memLeaveRepo struct{ s *memStore }

func (r memLeaveRepo) WithTx(*sql.Tx) leave.Repository { return r }

func (r memLeaveRepo) Create(_ context.Context, l *leave.Leave) error {
	l.CreatedAt = time.Now()
	cp := *l
	r.s.leaves[l.ID] = &cp
	return nil
}

func (r memLeaveRepo) FindByID(_ context.Context, id string) (*leave.Leave, error) {
	l, ok := r.s.leaves[uuid.MustParse(id)]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *l
	emp := r.s.employees[l.EmployeeID]
	cp.Employee = &emp
	return &cp, nil
}

func (r memLeaveRepo) ListByEmployee(_ context.Context, employeeID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.s.leaves {
		if l.EmployeeID.String() == employeeID {
			out = append(out, *l)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r memLeaveRepo) ListPendingByHR(_ context.Context, hrID string) ([]leave.Leave, error) {
	var out []leave.Leave
	for _, l := range r.s.leaves {
		if l.Status == leave.StatusPending && r.s.employees[l.EmployeeID].HRID.String() == hrID {
			out = append(out, *l)
		}
	}
	return out, nil
}

func (r memLeaveRepo) Update(_ context.Context, l *leave.Leave) error {
	cp := *l
	cp.Employee = nil
	r.s.leaves[l.ID] = &cp
	return nil
}

func (r memLeaveRepo) HasApprovedOverlap(_ context.Context, employeeID string, start, end time.Time, excludeID string) (bool, error) {
	for _, l := range r.s.leaves {
		if l.EmployeeID.String() != employeeID || l.Status != leave.StatusApproved || l.ID.String() == excludeID {
			continue
		}
		if dateutil.Overlaps(l.StartDate, l.EndDate, start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (r memLeaveRepo) EmployeeExists(_ context.Context, employeeID string) (bool, error) {
	_, ok := r.s.employees[uuid.MustParse(employeeID)]
	return ok, nil
}

func (r memLeaveRepo) CountByStatus(_ context.Context, employeeID string) (int64, int64, error) {
	var approved, pending int64
	for _, l := range r.s.leaves {
		if l.EmployeeID.String() != employeeID {
			continue
		}
		switch l.Status {
		case leave.StatusApproved:
			approved++
		case leave.StatusPending:
			pending++
		}
	}
	return approved, pending, nil
}

// memAttendanceRepo implements the calls check-in and the approval backfill
// make; the embedded interface is nil.
type memAttendanceRepo struct {
	attendance.Repository
	s *memStore
}

func (r memAttendanceRepo) WithTx(*sql.Tx) attendance.Repository { return r }

func (r memAttendanceRepo) Create(_ context.Context, a *attendance.Attendance) error {
	cp := *a
	r.s.attendance[attendanceKey{a.EmployeeID, dateutil.Format(a.Date)}] = &cp
	return nil
}

func (r memAttendanceRepo) Update(ctx context.Context, a *attendance.Attendance) error {
	return r.Create(ctx, a)
}

func (r memAttendanceRepo) FindByEmployeeAndDate(_ context.Context, employeeID string, date time.Time) (*attendance.Attendance, error) {
	a, ok := r.s.attendance[attendanceKey{uuid.MustParse(employeeID), dateutil.Format(date)}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *a
	return &cp, nil
}

func (r memAttendanceRepo) UpsertLeaveDays(_ context.Context, employeeID uuid.UUID, dates []time.Time) (int64, error) {
	for _, d := range dates {
		r.s.attendance[attendanceKey{employeeID, dateutil.Format(d)}] = &attendance.Attendance{
			ID:         uuid.New(),
			EmployeeID: employeeID,
			Date:       d,
			Status:     attendance.StatusLeave,
		}
	}
	return int64(len(dates)), nil
}

func (r memAttendanceRepo) EmployeeExists(_ context.Context, employeeID string) (bool, error) {
	_, ok := r.s.employees[uuid.MustParse(employeeID)]
	return ok, nil
}

func (r memAttendanceRepo) HasApprovedLeaveOn(_ context.Context, employeeID string, day time.Time) (bool, error) {
	for _, l := range r.s.leaves {
		if l.EmployeeID.String() == employeeID && l.Status == leave.StatusApproved &&
			dateutil.Covers(l.StartDate, l.EndDate, day) {
			return true, nil
		}
	}
	return false, nil
}

type recordingOutbox struct {
	kafka.OutboxRepository
	events []kafka.OutboxEvent
}

func (o *recordingOutbox) WithTx(*sql.Tx) kafka.OutboxRepository { return o }

func (o *recordingOutbox) Create(_ context.Context, ev kafka.OutboxEvent) error {
	o.events = append(o.events, ev)
	return nil
}

func TestLeaveWorkflow_ApprovalBlocksCheckIn(t *testing.T) {
	ctx := context.Background()
	db, sqlMock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	store := newMemStore()
	hrID := uuid.New()
	employeeID := uuid.New()
	store.employees[employeeID] = leave.EmployeeRef{ID: employeeID, HRID: hrID, Name: "Ravi", Email: "ravi@example.com"}

	clk := clock.NewFixed(time.Date(2025, 6, 20, 9, 0, 0, 0, time.UTC))
	outbox := &recordingOutbox{}
	leaveSvc := leave.NewService(db, memLeaveRepo{store}, memAttendanceRepo{s: store}, outbox, clk, zap.NewNop())
	attendanceSvc := attendance.NewService(db, memAttendanceRepo{s: store}, clk, zap.NewNop())

	expectTx(sqlMock, true)
	submitted, err := leaveSvc.Submit(ctx, employeeID.String(), leave.SubmitLeaveRequest{
		StartDate: "2025-07-01",
		EndDate:   "2025-07-03",
		Reason:    "wedding",
	})
	require.NoError(t, err)
	assert.Equal(t, "Pending", submitted.Status)

	expectTx(sqlMock, true)
	decided, err := leaveSvc.Decide(ctx, hrID.String(), submitted.ID, leave.ActionApprove)
	require.NoError(t, err)
	assert.Equal(t, "Approved", decided.Status)
	assert.Len(t, outbox.events, 1)

	for _, day := range []string{"2025-07-01", "2025-07-02", "2025-07-03"} {
		row, ok := store.attendance[attendanceKey{employeeID, day}]
		if assert.True(t, ok, day) {
			assert.Equal(t, attendance.StatusLeave, row.Status)
			assert.Nil(t, row.CheckIn)
		}
	}
	assert.Len(t, store.attendance, 3)

	clk.Set(time.Date(2025, 7, 2, 9, 30, 0, 0, time.UTC))
	expectTx(sqlMock, false)
	_, err = attendanceSvc.CheckIn(ctx, employeeID.String())
	assert.ErrorIs(t, err, attendanceerrors.ErrLeaveConflict)
	assert.Equal(t, attendance.StatusLeave, store.attendance[attendanceKey{employeeID, "2025-07-02"}].Status)

	expectTx(sqlMock, false)
	_, err = leaveSvc.Submit(ctx, employeeID.String(), leave.SubmitLeaveRequest{
		StartDate: "2025-07-03",
		EndDate:   "2025-07-05",
		Reason:    "extend",
	})
	assert.Error(t, err)

	assert.NoError(t, sqlMock.ExpectationsWereMet())
}

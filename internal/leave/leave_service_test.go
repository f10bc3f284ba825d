package leave_test

import (
	"context"
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	attendanceMock "hr-portal/internal/attendance/mock"
	"hr-portal/internal/events"
	"hr-portal/internal/leave"
	leaveerrors "hr-portal/internal/leave/errors"
	leaveMock "hr-portal/internal/leave/mock"
	"hr-portal/internal/messaging/kafka"
	kafkaMock "hr-portal/internal/messaging/kafka/mock"
	"hr-portal/internal/shared/clock"
	"hr-portal/internal/shared/dateutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock    sqlmock.Sqlmock
	repo       *leaveMock.MockRepository
	attendance *attendanceMock.MockRepository
	outbox     *kafkaMock.MockOutboxRepository
	logs       *observer.ObservedLogs
	service    leave.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	core, logs := observer.New(zapcore.DebugLevel)
	repo := leaveMock.NewMockRepository(ctrl)
	attendanceRepo := attendanceMock.NewMockRepository(ctrl)
	outbox := kafkaMock.NewMockOutboxRepository(ctrl)
	clk := clock.NewFixed(time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC))

	return &serviceDeps{
		sqlMock:    sqlMock,
		repo:       repo,
		attendance: attendanceRepo,
		outbox:     outbox,
		logs:       logs,
		service:    leave.NewService(db, repo, attendanceRepo, outbox, clk, zap.New(core)),
	}
}

func expectTx(mock sqlmock.Sqlmock, commit bool) {
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func mustDate(s string) time.Time {
	d, err := dateutil.Parse(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestLeaveService_Submit(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New().String()

	t.Run("creates pending leave", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, employeeID).Return(true, nil)
		deps.repo.EXPECT().
			HasApprovedOverlap(ctx, employeeID, mustDate("2025-06-10"), mustDate("2025-06-12"), "").
			Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, l *leave.Leave) error {
			assert.Equal(t, leave.StatusPending, l.Status)
			assert.Equal(t, "family trip", l.Reason)
			return nil
		})

		resp, err := deps.service.Submit(ctx, employeeID, leave.SubmitLeaveRequest{
			StartDate: "2025-06-10",
			EndDate:   "2025-06-12",
			Reason:    " family trip ",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Pending", resp.Status)
		assert.Equal(t, "2025-06-10", resp.StartDate)
		assert.Equal(t, "2025-06-12", resp.EndDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("today is accepted", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, employeeID).Return(true, nil)
		deps.repo.EXPECT().HasApprovedOverlap(ctx, employeeID, gomock.Any(), gomock.Any(), "").Return(false, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		_, err := deps.service.Submit(ctx, employeeID, leave.SubmitLeaveRequest{
			StartDate: "2025-06-09", EndDate: "2025-06-09", Reason: "doctor",
		})
		assert.NoError(t, err)
	})

	t.Run("overlap with approved leave", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, employeeID).Return(true, nil)
		deps.repo.EXPECT().
			HasApprovedOverlap(ctx, employeeID, mustDate("2025-06-12"), mustDate("2025-06-14"), "").
			Return(true, nil)

		_, err := deps.service.Submit(ctx, employeeID, leave.SubmitLeaveRequest{
			StartDate: "2025-06-12", EndDate: "2025-06-14", Reason: "again",
		})

		assert.ErrorIs(t, err, leaveerrors.ErrOverlap)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeExists(ctx, employeeID).Return(false, nil)

		_, err := deps.service.Submit(ctx, employeeID, leave.SubmitLeaveRequest{
			StartDate: "2025-06-10", EndDate: "2025-06-10", Reason: "x",
		})
		assert.ErrorIs(t, err, leaveerrors.ErrEmployeeNotFound)
	})

	rejections := []struct {
		name    string
		start   string
		end     string
		wantErr error
	}{
		{"bad start format", "10-06-2025", "2025-06-12", leaveerrors.ErrInvalidDateFormat},
		{"bad end format", "2025-06-10", "2025/06/12", leaveerrors.ErrInvalidDateFormat},
		{"past start", "2025-06-08", "2025-06-12", leaveerrors.ErrPastDate},
		{"past end", "2025-06-08", "2025-06-08", leaveerrors.ErrPastDate},
		{"inverted range", "2025-06-12", "2025-06-10", leaveerrors.ErrInvalidRange},
	}
	for _, tc := range rejections {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupServiceTest(t)

			_, err := deps.service.Submit(ctx, employeeID, leave.SubmitLeaveRequest{
				StartDate: tc.start, EndDate: tc.end, Reason: "r",
			})

			assert.ErrorIs(t, err, tc.wantErr)
			assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		})
	}
}

func pendingLeave(hrID uuid.UUID) *leave.Leave {
	employeeID := uuid.New()
	return &leave.Leave{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		StartDate:  mustDate("2025-06-10"),
		EndDate:    mustDate("2025-06-12"),
		Reason:     "family trip",
		Status:     leave.StatusPending,
		Employee: &leave.EmployeeRef{
			ID:    employeeID,
			HRID:  hrID,
			Name:  "Asha",
			Email: "asha@example.com",
		},
	}
}

func TestLeaveService_Decide(t *testing.T) {
	ctx := context.Background()
	hrID := uuid.New()

	t.Run("approve backfills every date and writes the outbox event", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, true)
		l := pendingLeave(hrID)
		id := l.ID.String()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(l, nil)
		deps.repo.EXPECT().HasApprovedOverlap(ctx, l.EmployeeID.String(), l.StartDate, l.EndDate, id).Return(false, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, got *leave.Leave) error {
			assert.Equal(t, leave.StatusApproved, got.Status)
			assert.Equal(t, hrID, *got.DecidedBy)
			return nil
		})
		deps.attendance.EXPECT().WithTx(gomock.Any()).Return(deps.attendance)
		deps.attendance.EXPECT().
			UpsertLeaveDays(ctx, l.EmployeeID, []time.Time{
				mustDate("2025-06-10"),
				mustDate("2025-06-11"),
				mustDate("2025-06-12"),
			}).
			Return(int64(3), nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, ev kafka.OutboxEvent) error {
			assert.Equal(t, events.LeaveDecidedTopic, ev.Topic)
			assert.Equal(t, id, ev.AggregateID)

			var payload events.LeaveDecidedEvent
			assert.NoError(t, json.Unmarshal(ev.Payload, &payload))
			assert.Equal(t, "Approved", payload.Status)
			assert.Equal(t, "asha@example.com", payload.EmployeeEmail)
			return nil
		})

		resp, err := deps.service.Decide(ctx, hrID.String(), id, leave.ActionApprove)

		assert.NoError(t, err)
		assert.Equal(t, "Approved", resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("reject has no attendance side effect", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, true)
		l := pendingLeave(hrID)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Decide(ctx, hrID.String(), l.ID.String(), leave.ActionReject)

		assert.NoError(t, err)
		assert.Equal(t, "Rejected", resp.Status)
	})

	t.Run("unknown action after lookup", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		l := pendingLeave(hrID)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, l.ID.String()).Return(l, nil)

		_, err := deps.service.Decide(ctx, hrID.String(), l.ID.String(), "cancel")
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidAction)
	})

	t.Run("missing leave", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		id := uuid.New().String()

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, id).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Decide(ctx, hrID.String(), id, "cancel")
		assert.ErrorIs(t, err, leaveerrors.ErrLeaveNotFound)
	})

	t.Run("leave of another hr", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		l := pendingLeave(uuid.New())

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, l.ID.String()).Return(l, nil)

		_, err := deps.service.Decide(ctx, hrID.String(), l.ID.String(), leave.ActionApprove)
		assert.ErrorIs(t, err, leaveerrors.ErrForbidden)
	})

	t.Run("approve blocked by another approved leave", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		l := pendingLeave(hrID)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().HasApprovedOverlap(ctx, gomock.Any(), gomock.Any(), gomock.Any(), l.ID.String()).Return(true, nil)

		_, err := deps.service.Decide(ctx, hrID.String(), l.ID.String(), leave.ActionApprove)
		assert.ErrorIs(t, err, leaveerrors.ErrOverlap)
	})

	t.Run("backfill failure rolls back", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		l := pendingLeave(hrID)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().HasApprovedOverlap(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.attendance.EXPECT().WithTx(gomock.Any()).Return(deps.attendance)
		deps.attendance.EXPECT().UpsertLeaveDays(ctx, gomock.Any(), gomock.Any()).Return(int64(0), sql.ErrConnDone)

		_, err := deps.service.Decide(ctx, hrID.String(), l.ID.String(), leave.ActionApprove)

		assert.ErrorIs(t, err, sql.ErrConnDone)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("re-deciding is allowed and logged", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, true)
		l := pendingLeave(hrID)
		l.Status = leave.StatusApproved

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, l.ID.String()).Return(l, nil)
		deps.repo.EXPECT().Update(ctx, gomock.Any()).Return(nil)
		deps.outbox.EXPECT().WithTx(gomock.Any()).Return(deps.outbox)
		deps.outbox.EXPECT().Create(ctx, gomock.Any()).Return(nil)

		resp, err := deps.service.Decide(ctx, hrID.String(), l.ID.String(), leave.ActionReject)

		assert.NoError(t, err)
		assert.Equal(t, "Rejected", resp.Status)
		assert.Equal(t, 1, deps.logs.FilterMessage("leave decided again").Len())
	})
}

func TestLeaveService_Summary(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()
	employeeID := uuid.New().String()

	deps.repo.EXPECT().CountByStatus(ctx, employeeID).Return(int64(4), int64(1), nil)

	resp, err := deps.service.Summary(ctx, employeeID)

	assert.NoError(t, err)
	assert.Equal(t, leave.SummaryResponse{TotalTaken: 4, Pending: 1}, resp)
}

func TestLeaveService_GetByID(t *testing.T) {
	ctx := context.Background()
	hrID := uuid.New()

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.GetByID(ctx, hrID.String(), "nope")
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidLeaveID)
	})

	t.Run("other hr", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := pendingLeave(uuid.New())
		deps.repo.EXPECT().FindByID(ctx, l.ID.String()).Return(l, nil)

		_, err := deps.service.GetByID(ctx, hrID.String(), l.ID.String())
		assert.ErrorIs(t, err, leaveerrors.ErrForbidden)
	})

	t.Run("own employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		l := pendingLeave(hrID)
		deps.repo.EXPECT().FindByID(ctx, l.ID.String()).Return(l, nil)

		resp, err := deps.service.GetByID(ctx, hrID.String(), l.ID.String())
		assert.NoError(t, err)
		assert.Equal(t, "Asha", resp.EmployeeName)
	})
}

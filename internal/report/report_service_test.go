package report_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"hr-portal/internal/report"
	reporterrors "hr-portal/internal/report/errors"
	reportMock "hr-portal/internal/report/mock"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	repo      *reportMock.MockRepository
	redismock redismock.ClientMock
	service   report.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	repo := reportMock.NewMockRepository(ctrl)
	rdb, redisMock := redismock.NewClientMock()

	return &serviceDeps{
		repo:      repo,
		redismock: redisMock,
		service:   report.NewService(repo, rdb, time.UTC, zap.NewNop()),
	}
}

func TestReportService_Counts(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().CountEmployees(ctx, "hr-1").Return(int64(12), nil)
	deps.repo.EXPECT().CountDepartments(ctx, "hr-1").Return(int64(3), nil)

	resp, err := deps.service.Counts(ctx, "hr-1")

	assert.NoError(t, err)
	assert.Equal(t, report.CountsResponse{EmployeesCount: 12, DepartmentsCount: 3}, resp)
}

func TestReportService_LeaveStatus_MissingGroupsAreZero(t *testing.T) {
	deps := setupServiceTest(t)
	ctx := context.Background()

	deps.repo.EXPECT().LeaveStatusCounts(ctx, "hr-1").Return([]report.StatusCount{
		{Status: "Pending", Count: 2},
	}, nil)

	resp, err := deps.service.LeaveStatus(ctx, "hr-1")

	assert.NoError(t, err)
	assert.Equal(t, report.LeaveStatusResponse{Pending: 2}, resp)
}

func TestReportService_EmployeeAttendance(t *testing.T) {
	ctx := context.Background()
	employeeID := uuid.New()

	t.Run("rounds to two decimals", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().EmployeeAttendance(ctx, "hr-1", employeeID.String()).Return(report.EmployeeAttendance{
			EmployeeID: employeeID, Name: "Meera", Total: 3, Present: 2,
		}, nil)

		resp, err := deps.service.EmployeeAttendance(ctx, "hr-1", employeeID.String())

		assert.NoError(t, err)
		assert.Equal(t, 66.67, resp.AttendancePercentage)
		assert.Equal(t, "Meera", resp.EmployeeName)
	})

	t.Run("no rows gives zero", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().EmployeeAttendance(ctx, "hr-1", employeeID.String()).Return(report.EmployeeAttendance{
			EmployeeID: employeeID, Name: "Meera",
		}, nil)

		resp, err := deps.service.EmployeeAttendance(ctx, "hr-1", employeeID.String())

		assert.NoError(t, err)
		assert.Equal(t, float64(0), resp.AttendancePercentage)
	})

	t.Run("employee of another hr", func(t *testing.T) {
		deps := setupServiceTest(t)
		deps.repo.EXPECT().EmployeeAttendance(ctx, "hr-1", employeeID.String()).
			Return(report.EmployeeAttendance{}, gorm.ErrRecordNotFound)

		_, err := deps.service.EmployeeAttendance(ctx, "hr-1", employeeID.String())
		assert.ErrorIs(t, err, reporterrors.ErrEmployeeNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		deps := setupServiceTest(t)
		_, err := deps.service.EmployeeAttendance(ctx, "hr-1", "7")
		assert.ErrorIs(t, err, reporterrors.ErrInvalidEmployeeID)
	})
}

func TestReportService_AttendanceStats(t *testing.T) {
	ctx := context.Background()

	early := uuid.New()
	late := uuid.New()
	at := func(h, m int) time.Time { return time.Date(2025, 6, 10, h, m, 0, 0, time.UTC) }

	expected := report.AttendanceStatsResponse{
		Departments: []report.DepartmentAttendanceResponse{
			{Department: "Engineering", AttendancePercent: 75},
			{Department: "Sales", AttendancePercent: 0},
		},
		TopPunctual: []report.PunctualEmployeeResponse{
			{EmployeeID: early.String(), EmployeeName: "Bala", AverageCheckIn: "08:50"},
			{EmployeeID: late.String(), EmployeeName: "Anu", AverageCheckIn: "09:05"},
		},
		LeastActive: []report.PresenceResponse{
			{EmployeeID: late.String(), EmployeeName: "Anu", Present: 1, Total: 4},
		},
	}

	t.Run("cache hit skips the database", func(t *testing.T) {
		deps := setupServiceTest(t)
		hrID := uuid.NewString()
		cached, _ := json.Marshal(expected)
		deps.redismock.ExpectGet(report.GetAttendanceStatsKey(hrID)).SetVal(string(cached))

		resp, err := deps.service.AttendanceStats(ctx, hrID)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss builds and stores for a minute", func(t *testing.T) {
		deps := setupServiceTest(t)
		hrID := uuid.NewString()
		key := report.GetAttendanceStatsKey(hrID)

		deps.redismock.ExpectGet(key).RedisNil()
		deps.repo.EXPECT().DepartmentAttendance(gomock.Any(), hrID).Return([]report.DepartmentAttendance{
			{Department: "Engineering", Total: 4, Present: 3},
			{Department: "Sales"},
		}, nil)
		deps.repo.EXPECT().CheckIns(gomock.Any(), hrID).Return([]report.CheckIn{
			{EmployeeID: late, Name: "Anu", CheckIn: at(9, 0)},
			{EmployeeID: early, Name: "Bala", CheckIn: at(8, 50)},
			{EmployeeID: late, Name: "Anu", CheckIn: at(9, 10)},
		}, nil)
		deps.repo.EXPECT().LeastPresent(gomock.Any(), hrID, 5).Return([]report.EmployeeAttendance{
			{EmployeeID: late, Name: "Anu", Present: 1, Total: 4},
		}, nil)
		stored, _ := json.Marshal(expected)
		deps.redismock.ExpectSet(key, stored, report.AttendanceStatsTTL).SetVal("OK")

		resp, err := deps.service.AttendanceStats(ctx, hrID)

		assert.NoError(t, err)
		assert.Equal(t, expected, resp)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("database error is returned and nothing is cached", func(t *testing.T) {
		deps := setupServiceTest(t)
		hrID := uuid.NewString()

		deps.redismock.ExpectGet(report.GetAttendanceStatsKey(hrID)).RedisNil()
		deps.repo.EXPECT().DepartmentAttendance(gomock.Any(), hrID).Return(nil, errors.New("database connection lost"))

		_, err := deps.service.AttendanceStats(ctx, hrID)

		assert.Error(t, err)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})
}

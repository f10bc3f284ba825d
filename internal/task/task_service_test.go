package task_test

import (
	"context"
	"errors"
	"testing"

	"hr-portal/internal/task"
	taskerrors "hr-portal/internal/task/errors"
	taskMock "hr-portal/internal/task/mock"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type serviceDeps struct {
	sqlMock sqlmock.Sqlmock
	repo    *taskMock.MockRepository
	service task.Service
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)
	db, sqlMock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	repo := taskMock.NewMockRepository(ctrl)
	return &serviceDeps{
		sqlMock: sqlMock,
		repo:    repo,
		service: task.NewService(db, repo, zap.NewNop()),
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

func strPtr(s string) *string { return &s }

func TestTaskService_Create(t *testing.T) {
	ctx := context.Background()
	hrID := uuid.New()
	employeeID := uuid.New()

	base := task.CreateTaskRequest{
		EmployeeID: employeeID.String(),
		Title:      "Quarterly report",
		DueDate:    "2025-07-15",
	}

	t.Run("defaults priority and status", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeOwner(ctx, employeeID.String()).Return(hrID, nil)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, got *task.Task) error {
			assert.Equal(t, hrID, got.HRID)
			assert.Equal(t, task.PriorityMedium, got.Priority)
			assert.Equal(t, task.StatusPending, got.Status)
			return nil
		})

		resp, err := deps.service.Create(ctx, hrID.String(), base)

		assert.NoError(t, err)
		assert.Equal(t, "2025-07-15", resp.DueDate)
		assert.Equal(t, "Medium", resp.Priority)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("employee of another hr", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeOwner(ctx, employeeID.String()).Return(uuid.New(), nil)

		_, err := deps.service.Create(ctx, hrID.String(), base)
		assert.ErrorIs(t, err, taskerrors.ErrNotYourEmployee)
	})

	t.Run("unknown employee", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().EmployeeOwner(ctx, employeeID.String()).Return(uuid.Nil, gorm.ErrRecordNotFound)

		_, err := deps.service.Create(ctx, hrID.String(), base)
		assert.ErrorIs(t, err, taskerrors.ErrEmployeeNotFound)
	})

	invalid := []struct {
		name    string
		mutate  func(r *task.CreateTaskRequest)
		wantErr error
	}{
		{"bad due date", func(r *task.CreateTaskRequest) { r.DueDate = "15/07/2025" }, taskerrors.ErrInvalidDueDate},
		{"bad priority", func(r *task.CreateTaskRequest) { r.Priority = strPtr("Urgent") }, taskerrors.ErrInvalidPriority},
		{"bad status", func(r *task.CreateTaskRequest) { r.Status = strPtr("Done") }, taskerrors.ErrInvalidStatus},
	}
	for _, tc := range invalid {
		t.Run(tc.name, func(t *testing.T) {
			deps := setupServiceTest(t)
			req := base
			tc.mutate(&req)

			_, err := deps.service.Create(ctx, hrID.String(), req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestTaskService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	assignee := uuid.New()
	other := uuid.New()
	taskID := uuid.New()

	pending := func() *task.Task {
		return &task.Task{ID: taskID, HRID: uuid.New(), EmployeeID: assignee, Title: "t", Status: task.StatusPending}
	}

	t.Run("assignee completes the task", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, taskID.String()).Return(pending(), nil)
		deps.repo.EXPECT().UpdateStatus(ctx, taskID.String(), task.StatusCompleted).Return(nil)

		resp, err := deps.service.UpdateStatus(ctx, assignee.String(), taskID.String(),
			task.StatusPatch{Status: strPtr("Completed")})

		assert.NoError(t, err)
		assert.Equal(t, "Completed", resp.Status)
	})

	t.Run("another employee is forbidden", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, taskID.String()).Return(pending(), nil)

		_, err := deps.service.UpdateStatus(ctx, other.String(), taskID.String(),
			task.StatusPatch{Status: strPtr("Completed")})

		assert.ErrorIs(t, err, taskerrors.ErrForbidden)
	})

	t.Run("empty patch", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, taskID.String()).Return(pending(), nil)

		_, err := deps.service.UpdateStatus(ctx, assignee.String(), taskID.String(), task.StatusPatch{})
		assert.ErrorIs(t, err, taskerrors.ErrEmptyUpdate)
	})

	t.Run("missing task", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, taskID.String()).Return(nil, gorm.ErrRecordNotFound)

		_, err := deps.service.UpdateStatus(ctx, assignee.String(), taskID.String(),
			task.StatusPatch{Status: strPtr("Completed")})
		assert.ErrorIs(t, err, taskerrors.ErrTaskNotFound)
	})

	t.Run("store failure surfaces", func(t *testing.T) {
		deps := setupServiceTest(t)
		expectTx(deps.sqlMock, false)
		boom := errors.New("boom")

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().FindByID(ctx, taskID.String()).Return(pending(), nil)
		deps.repo.EXPECT().UpdateStatus(ctx, taskID.String(), task.StatusInProgress).Return(boom)

		_, err := deps.service.UpdateStatus(ctx, assignee.String(), taskID.String(),
			task.StatusPatch{Status: strPtr("In Progress")})
		assert.ErrorIs(t, err, boom)
	})
}

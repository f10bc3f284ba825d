package task_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-portal/internal/task"
	taskerrors "hr-portal/internal/task/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeTaskService struct {
	task.Service
	createFn       func(ctx context.Context, hrID string, req task.CreateTaskRequest) (task.TaskResponse, error)
	updateStatusFn func(ctx context.Context, employeeID, id string, patch task.StatusPatch) (task.TaskResponse, error)
}

func (f *fakeTaskService) Create(ctx context.Context, hrID string, req task.CreateTaskRequest) (task.TaskResponse, error) {
	return f.createFn(ctx, hrID, req)
}
func (f *fakeTaskService) UpdateStatus(ctx context.Context, employeeID, id string, patch task.StatusPatch) (task.TaskResponse, error) {
	return f.updateStatusFn(ctx, employeeID, id, patch)
}

func errorCode(t *testing.T, body []byte) string {
	t.Helper()
	var env struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(body, &env))
	return env.Error.Code
}

func serve(h *task.Handler, method, target, body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("hr_id", "hr-1")
		c.Set("employee_id", "emp-8")
		c.Next()
	})
	r.POST("/tasks", h.Create)
	r.PATCH("/tasks/:id", h.UpdateStatus)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestTaskHandler_Create_RequiresTitle(t *testing.T) {
	h := task.NewHandler(&fakeTaskService{})

	w := serve(h, http.MethodPost, "/tasks",
		`{"employee_id":"6f1c1a55-4a35-4a53-9a40-1b2b0f1b9d11","due_date":"2025-07-15"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", errorCode(t, w.Body.Bytes()))
}

func TestTaskHandler_UpdateStatus_Forbidden(t *testing.T) {
	h := task.NewHandler(&fakeTaskService{
		updateStatusFn: func(_ context.Context, employeeID, id string, patch task.StatusPatch) (task.TaskResponse, error) {
			assert.Equal(t, "emp-8", employeeID)
			assert.Equal(t, "t-1", id)
			if assert.NotNil(t, patch.Status) {
				assert.Equal(t, "Completed", *patch.Status)
			}
			return task.TaskResponse{}, taskerrors.ErrForbidden
		},
	})

	w := serve(h, http.MethodPatch, "/tasks/t-1", `{"status":"Completed","title":"ignored"}`)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "FORBIDDEN", errorCode(t, w.Body.Bytes()))
}

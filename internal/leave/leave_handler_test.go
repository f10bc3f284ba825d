package leave_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hr-portal/internal/leave"
	leaveerrors "hr-portal/internal/leave/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	return env
}

type fakeLeaveService struct {
	leave.Service
	submitFn   func(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error)
	decideFn   func(ctx context.Context, hrID, id, action string) (leave.LeaveResponse, error)
	listMineFn func(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error)
	summaryFn  func(ctx context.Context, employeeID string) (leave.SummaryResponse, error)
}

func (f *fakeLeaveService) Submit(ctx context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
	return f.submitFn(ctx, employeeID, req)
}
func (f *fakeLeaveService) Decide(ctx context.Context, hrID, id, action string) (leave.LeaveResponse, error) {
	return f.decideFn(ctx, hrID, id, action)
}
func (f *fakeLeaveService) ListMine(ctx context.Context, employeeID string) ([]leave.LeaveResponse, error) {
	return f.listMineFn(ctx, employeeID)
}
func (f *fakeLeaveService) Summary(ctx context.Context, employeeID string) (leave.SummaryResponse, error) {
	return f.summaryFn(ctx, employeeID)
}

func newRouter(h *leave.Handler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("hr_id", "hr-1")
		c.Set("employee_id", "emp-1")
		c.Next()
	})
	r.POST("/leaves", h.Submit)
	r.GET("/leaves/mine", h.ListMine)
	r.GET("/leaves/summary", h.Summary)
	r.POST("/leaves/:id/action", h.Decide)
	return r
}

func TestLeaveHandler_Submit(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{
			submitFn: func(_ context.Context, employeeID string, req leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, "emp-1", employeeID)
				assert.Equal(t, "2025-07-01", req.StartDate)
				return leave.LeaveResponse{ID: uuid.NewString(), Status: "Pending"}, nil
			},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves",
			strings.NewReader(`{"start_date":"2025-07-01","end_date":"2025-07-03","reason":"trip"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.True(t, decodeEnvelope(t, w.Body.Bytes()).Ok)
	})

	t.Run("missing reason", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves",
			strings.NewReader(`{"start_date":"2025-07-01","end_date":"2025-07-03"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "VALIDATION_ERROR", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})

	errorCases := []struct {
		name string
		err  error
		code string
	}{
		{"past date", leaveerrors.ErrPastDate, "PAST_DATE_REJECTED"},
		{"range", leaveerrors.ErrInvalidRange, "INVALID_RANGE"},
		{"overlap", leaveerrors.ErrOverlap, "OVERLAP_CONFLICT"},
	}
	for _, tc := range errorCases {
		t.Run(tc.name, func(t *testing.T) {
			h := leave.NewHandler(&fakeLeaveService{
				submitFn: func(context.Context, string, leave.SubmitLeaveRequest) (leave.LeaveResponse, error) {
					return leave.LeaveResponse{}, tc.err
				},
			}, nil)

			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/leaves",
				strings.NewReader(`{"start_date":"2025-07-01","end_date":"2025-07-03","reason":"trip"}`))
			req.Header.Set("Content-Type", "application/json")
			newRouter(h).ServeHTTP(w, req)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, tc.code, decodeEnvelope(t, w.Body.Bytes()).Error.Code)
		})
	}
}

func TestLeaveHandler_Decide(t *testing.T) {
	id := uuid.NewString()

	t.Run("approve", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{
			decideFn: func(_ context.Context, hrID, gotID, action string) (leave.LeaveResponse, error) {
				assert.Equal(t, "hr-1", hrID)
				assert.Equal(t, id, gotID)
				assert.Equal(t, "approve", action)
				return leave.LeaveResponse{ID: id, Status: "Approved"}, nil
			},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves/"+id+"/action", strings.NewReader(`{"action":"approve"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		var got leave.LeaveResponse
		assert.NoError(t, json.Unmarshal(decodeEnvelope(t, w.Body.Bytes()).Data, &got))
		assert.Equal(t, "Approved", got.Status)
	})

	t.Run("forbidden", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{
			decideFn: func(context.Context, string, string, string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrForbidden
			},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves/"+id+"/action", strings.NewReader(`{"action":"reject"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
		assert.Equal(t, "FORBIDDEN", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})

	t.Run("invalid action", func(t *testing.T) {
		h := leave.NewHandler(&fakeLeaveService{
			decideFn: func(context.Context, string, string, string) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrInvalidAction
			},
		}, nil)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/leaves/"+id+"/action", strings.NewReader(`{"action":"cancel"}`))
		req.Header.Set("Content-Type", "application/json")
		newRouter(h).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_ACTION", decodeEnvelope(t, w.Body.Bytes()).Error.Code)
	})
}

func TestLeaveHandler_ListMine_Paginates(t *testing.T) {
	h := leave.NewHandler(&fakeLeaveService{
		listMineFn: func(context.Context, string) ([]leave.LeaveResponse, error) {
			out := make([]leave.LeaveResponse, 25)
			for i := range out {
				out[i] = leave.LeaveResponse{ID: uuid.NewString()}
			}
			return out, nil
		},
	}, nil)

	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves/mine?page=2", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	env := decodeEnvelope(t, w.Body.Bytes())
	var items []leave.LeaveResponse
	assert.NoError(t, json.Unmarshal(env.Data, &items))
	assert.Len(t, items, 5)
}

func TestLeaveHandler_Summary(t *testing.T) {
	h := leave.NewHandler(&fakeLeaveService{
		summaryFn: func(context.Context, string) (leave.SummaryResponse, error) {
			return leave.SummaryResponse{TotalTaken: 2, Pending: 1}, nil
		},
	}, nil)

	w := httptest.NewRecorder()
	newRouter(h).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/leaves/summary", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"total_taken":2,"pending":1}`, string(decodeEnvelope(t, w.Body.Bytes()).Data))
}

package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hr-portal/internal/auth"
	"hr-portal/internal/config"
	"hr-portal/internal/notification"
	"hr-portal/internal/shared/clock"
	"hr-portal/internal/shared/token"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{})
	require.NoError(t, err)

	clk := clock.NewFixed(time.Date(2025, 6, 9, 8, 0, 0, 0, time.UTC))
	dispatcher := notification.NewDispatcher(notification.NewLogSender(zap.NewNop()), 1, time.Second, zap.NewNop())

	r := gin.New()
	_, err = registerModules(r, modules{
		db:         db,
		gormDB:     gormDB,
		clock:      clk,
		tokens:     token.NewManager("secret", time.Minute, time.Hour, clk),
		hasher:     auth.NewBcryptHasher(4),
		dispatcher: dispatcher,
		location:   time.UTC,
		logger:     zap.NewNop(),
	})
	require.NoError(t, err)
	return r
}

func TestRegisterModules_Routes(t *testing.T) {
	r := newTestRouter(t)

	registered := map[string]bool{}
	for _, route := range r.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"GET /api/v1/auth/me",
		"GET /api/v1/hrs/me",
		"POST /api/v1/employees",
		"POST /api/v1/attendances/check-in",
		"POST /api/v1/leaves",
		"POST /api/v1/leaves/:id/action",
		"GET /api/v1/tasks/mine",
		"GET /api/v1/reports/attendance",
		"GET /api/v1/rbac/permissions",
	} {
		assert.True(t, registered[want], "missing route %s", want)
	}
}

func TestRegisterModules_ProtectedWithoutToken(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/api/v1/leaves/mine", "/api/v1/rbac/permissions", "/api/v1/reports/counts"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"), path)
	}
}

func TestNotificationSettings(t *testing.T) {
	cfg := config.Config{
		SMTPHost:             "smtp.example.com",
		SMTPPort:             2525,
		SMTPFrom:             "HR <hr@example.com>",
		MailerURL:            "http://mailer:4000",
		NotifyTimeoutSeconds: 3,
	}

	s := notificationSettings(cfg)

	assert.Equal(t, "smtp.example.com", s.SMTP.Host)
	assert.Equal(t, 2525, s.SMTP.Port)
	assert.Equal(t, "http://mailer:4000", s.MailerURL)
	assert.Equal(t, 3*time.Second, s.Timeout)
}

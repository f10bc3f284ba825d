package rbac

import (
	"testing"

	"hr-portal/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestRBACService_Enforce(t *testing.T) {
	service, err := NewDefaultService()
	assert.NoError(t, err)

	cases := []struct {
		name     string
		role     string
		resource string
		action   string
		want     bool
	}{
		{"hr decides leave", domain.RoleHR, "leave", "decide", true},
		{"hr cannot mark attendance", domain.RoleHR, "attendance", "mark", false},
		{"employee submits leave", domain.RoleEmployee, "leave", "create", true},
		{"employee cannot decide leave", domain.RoleEmployee, "leave", "decide", false},
		{"employee patches task status", domain.RoleEmployee, "task", "update_status", true},
		{"employee cannot create task", domain.RoleEmployee, "task", "create", false},
		{"unknown role", "guest", "report", "read", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			allowed, err := service.Enforce(domain.EnforceRequest{
				Role:     tc.role,
				Resource: tc.resource,
				Action:   tc.action,
			})
			assert.NoError(t, err)
			assert.Equal(t, tc.want, allowed)
		})
	}
}

func TestRBACService_Permissions(t *testing.T) {
	e, err := NewEnforcer([]PolicyRule{
		{domain.RoleEmployee, "task", "update_status"},
		{domain.RoleEmployee, "leave", "create"},
		{domain.RoleHR, "report", "read"},
	})
	assert.NoError(t, err)
	service := NewService(e)

	perms := service.Permissions(domain.RoleEmployee)
	assert.Equal(t, []domain.PermissionResponse{
		{Resource: "leave", Action: "create"},
		{Resource: "task", Action: "update_status"},
	}, perms)

	assert.Empty(t, service.Permissions("guest"))
}

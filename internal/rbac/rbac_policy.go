package rbac

import "hr-portal/internal/domain"

const modelText = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

type PolicyRule struct {
	Role     string
	Resource string
	Action   string
}

// DefaultPolicy grants each role the operations the API exposes to it.
// HR accounts never act as employees and vice versa.
var DefaultPolicy = []PolicyRule{
	{domain.RoleHR, "hr", "read"},
	{domain.RoleHR, "hr", "delete"},
	{domain.RoleHR, "employee", "read"},
	{domain.RoleHR, "employee", "create"},
	{domain.RoleHR, "employee", "update"},
	{domain.RoleHR, "employee", "delete"},
	{domain.RoleHR, "leave", "read"},
	{domain.RoleHR, "leave", "decide"},
	{domain.RoleHR, "attendance", "read"},
	{domain.RoleHR, "attendance", "correct"},
	{domain.RoleHR, "task", "read"},
	{domain.RoleHR, "task", "create"},
	{domain.RoleHR, "report", "read"},

	{domain.RoleEmployee, "profile", "update"},
	{domain.RoleEmployee, "leave", "create"},
	{domain.RoleEmployee, "leave", "read_own"},
	{domain.RoleEmployee, "attendance", "mark"},
	{domain.RoleEmployee, "attendance", "read_own"},
	{domain.RoleEmployee, "task", "read_own"},
	{domain.RoleEmployee, "task", "update_status"},
}

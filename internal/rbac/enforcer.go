package rbac

import (
	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
)

const modelText = `
[request_definition]
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

const (
	RoleEmployee = "employee"
	RoleManager  = "manager"
	RoleAdmin    = "admin"
)

// NewEnforcer builds the static role model: employees own their sheets,
// managers add the reporting and approval surface, admins add project and
// reference management. Roles inherit downward (admin > manager > employee).
func NewEnforcer() (*casbin.Enforcer, error) {
	m, err := model.NewModelFromString(modelText)
	if err != nil {
		return nil, err
	}

	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	policies := [][]string{
		{RoleEmployee, "timesheets", "write"},
		{RoleEmployee, "expenses", "write"},
		{RoleEmployee, "events", "write"},
		{RoleEmployee, "reference", "read"},
		{RoleManager, "reports", "read"},
		{RoleManager, "approvals", "write"},
		{RoleManager, "projects", "write"},
		{RoleAdmin, "admin-reports", "read"},
		{RoleAdmin, "admin-projects", "write"},
	}
	if _, err := e.AddPolicies(policies); err != nil {
		return nil, err
	}

	groupings := [][]string{
		{RoleManager, RoleEmployee},
		{RoleAdmin, RoleManager},
	}
	if _, err := e.AddGroupingPolicies(groupings); err != nil {
		return nil, err
	}

	return e, nil
}

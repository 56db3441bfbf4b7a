// Package auth decides which roles may reach which admin routes.
package auth

import (
	"fmt"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"github.com/casbin/casbin/v2/util"

	"github.com/devbook/internal/db"
)

// rbacModel matches request paths with keyMatch2 so "/admin/*" covers every
// admin route. Methods are matched literally or by "*".
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// Policy is one allow rule.
type Policy struct {
	Role   db.Role
	Path   string
	Method string
}

// DefaultPolicies grants the admin area to admins and editors. Viewers get nothing.
var DefaultPolicies = []Policy{
	{Role: db.RoleAdmin, Path: "/admin", Method: "*"},
	{Role: db.RoleAdmin, Path: "/admin/*", Method: "*"},
	{Role: db.RoleEditor, Path: "/admin", Method: "*"},
	{Role: db.RoleEditor, Path: "/admin/*", Method: "*"},
}

// Enforcer wraps a casbin enforcer loaded with an in-memory policy set.
type Enforcer struct {
	e *casbin.Enforcer
}

// NewEnforcer builds the enforcer and loads policies. With no policies
// DefaultPolicies is used.
func NewEnforcer(policies ...Policy) (*Enforcer, error) {
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load rbac model: %w", err)
	}
	e, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, fmt.Errorf("create enforcer: %w", err)
	}
	e.AddFunction("keyMatch2", util.KeyMatch2Func)

	if len(policies) == 0 {
		policies = DefaultPolicies
	}
	for _, p := range policies {
		if _, err := e.AddPolicy(string(p.Role), p.Path, p.Method); err != nil {
			return nil, fmt.Errorf("add policy %v: %w", p, err)
		}
	}
	return &Enforcer{e: e}, nil
}

// Allow reports whether role may call method on path.
func (a *Enforcer) Allow(role db.Role, path, method string) (bool, error) {
	if role == "" {
		return false, nil
	}
	return a.e.Enforce(string(role), path, method)
}

package auth

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devbook/internal/db"
)

func TestDefaultPolicies(t *testing.T) {
	e, err := NewEnforcer()
	require.NoError(t, err)

	cases := []struct {
		role   db.Role
		path   string
		method string
		want   bool
	}{
		{db.RoleAdmin, "/admin/api/technologies", http.MethodGet, true},
		{db.RoleAdmin, "/admin/api/posts/3", http.MethodDelete, true},
		{db.RoleEditor, "/admin/api/posts", http.MethodPost, true},
		{db.RoleEditor, "/admin/api/editor/apply", http.MethodPost, true},
		{db.RoleEditor, "/admin", http.MethodGet, true},
		{db.RoleViewer, "/admin", http.MethodGet, false},
		{db.RoleViewer, "/admin/api/technologies", http.MethodGet, false},
		{db.RoleAdmin, "/api/auth/me", http.MethodGet, false},
		{"", "/admin/api/technologies", http.MethodGet, false},
	}

	for _, tc := range cases {
		got, err := e.Allow(tc.role, tc.path, tc.method)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s %s %s", tc.role, tc.method, tc.path)
	}
}

func TestCustomPolicies(t *testing.T) {
	e, err := NewEnforcer(Policy{Role: db.RoleViewer, Path: "/admin/api/technologies", Method: http.MethodGet})
	require.NoError(t, err)

	ok, err := e.Allow(db.RoleViewer, "/admin/api/technologies", http.MethodGet)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = e.Allow(db.RoleViewer, "/admin/api/technologies", http.MethodPost)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = e.Allow(db.RoleAdmin, "/admin/api/technologies", http.MethodGet)
	require.NoError(t, err)
	assert.False(t, ok)
}

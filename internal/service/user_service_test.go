package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devbook/internal/db"
)

func TestUserServiceAuthenticate(t *testing.T) {
	gdb := setupServiceTestDB(t)
	ctx := context.Background()
	_, err := db.EnsureUser(ctx, gdb, "editor@devbook.com", "senha-forte", "Editor", db.RoleEditor)
	require.NoError(t, err)

	svc := NewUserService(gdb)
	user, err := svc.Authenticate(ctx, " Editor@DevBook.com", "senha-forte")
	require.NoError(t, err)
	assert.Equal(t, db.RoleEditor, user.Role)

	_, err = svc.Authenticate(ctx, "editor@devbook.com", "errada")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Authenticate(ctx, "ninguem@devbook.com", "senha-forte")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	found, err := svc.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, found.Email)

	_, err = svc.Get(ctx, 999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

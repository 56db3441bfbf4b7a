package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/devbook/internal/content"
	"github.com/devbook/internal/db"
)

func setupServiceTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:service-%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := db.Open(dsn, nil)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func requireFieldErrors(t *testing.T, err error) *content.ValidationError {
	t.Helper()
	var verr *content.ValidationError
	require.True(t, errors.As(err, &verr), "expected field errors, got %v", err)
	return verr
}

// seedModule creates a technology and one module under it.
func seedModule(t *testing.T, gdb *gorm.DB) (*db.Technology, *db.Module) {
	t.Helper()
	ctx := context.Background()
	tech, err := NewTechnologyService(gdb).Create(ctx, TechnologyInput{
		Name:        "PHP",
		Category:    "Linguagens",
		Description: "Linguagem de servidor",
	})
	require.NoError(t, err)
	module, err := NewModuleService(gdb).Create(ctx, tech.ID, ModuleInput{Title: "Fundamentos"})
	require.NoError(t, err)
	return tech, module
}

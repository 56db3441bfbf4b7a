package db

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/devbook/internal/content"
	"github.com/devbook/internal/publish"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:db-%s?mode=memory&cache=shared", uuid.NewString())
	gdb, err := Open(dsn, nil)
	require.NoError(t, err)
	require.NoError(t, Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return gdb
}

func samplePost(moduleID uint, slug string) Post {
	now := time.Now()
	return Post{
		ModuleID: moduleID,
		Title:    "Variáveis",
		Slug:     slug,
		Concept:  "Conceito de variáveis",
		Summary:  "Resumo sobre variáveis",
		Content: content.PostContent{Blocks: []content.Block{
			content.Paragraph{Text: "Olá"},
		}},
		IsPublic:    true,
		Status:      publish.StatusPublished,
		PublishedAt: &now,
	}
}

func TestWithForeignKeys(t *testing.T) {
	assert.Equal(t, "devbook.db?_foreign_keys=on", withForeignKeys("devbook.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", withForeignKeys("file:x?mode=memory"))
	assert.Equal(t, "x.db?_fk=1", withForeignKeys("x.db?_fk=1"))
}

func TestPostContentRoundTrip(t *testing.T) {
	gdb := setupTestDB(t)
	tech := Technology{Name: "PHP", Slug: "php", Category: "Linguagens", Description: "Linguagem"}
	require.NoError(t, gdb.Create(&tech).Error)
	module := Module{TechnologyID: tech.ID, Title: "Básico", Slug: "basico"}
	require.NoError(t, gdb.Create(&module).Error)

	post := samplePost(module.ID, "variaveis")
	require.NoError(t, gdb.Create(&post).Error)

	var loaded Post
	require.NoError(t, gdb.First(&loaded, post.ID).Error)
	assert.Equal(t, post.Content, loaded.Content)
	assert.Equal(t, publish.StatusPublished, loaded.Status)
	assert.True(t, loaded.Visible())
}

func TestUniqueSlugsTranslateToDuplicatedKey(t *testing.T) {
	gdb := setupTestDB(t)
	tech := Technology{Name: "Go", Slug: "go", Category: "Linguagens", Description: "Linguagem"}
	require.NoError(t, gdb.Create(&tech).Error)

	err := gdb.Create(&Technology{Name: "Go 2", Slug: "go", Category: "Linguagens", Description: "Outra"}).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)

	module := Module{TechnologyID: tech.ID, Title: "Básico", Slug: "basico"}
	require.NoError(t, gdb.Create(&module).Error)
	require.NoError(t, gdb.Create(&Module{TechnologyID: tech.ID, Title: "Avançado", Slug: "avancado"}).Error)

	require.NoError(t, gdb.Create(ptr(samplePost(module.ID, "canais"))).Error)
	err = gdb.Create(ptr(samplePost(module.ID, "canais"))).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func TestDeleteTechnologyCascades(t *testing.T) {
	gdb := setupTestDB(t)
	tech := Technology{Name: "Docker", Slug: "docker", Category: "Infra & DevOps", Description: "Containers"}
	require.NoError(t, gdb.Create(&tech).Error)
	module := Module{TechnologyID: tech.ID, Title: "Imagens", Slug: "imagens"}
	require.NoError(t, gdb.Create(&module).Error)
	require.NoError(t, gdb.Create(ptr(samplePost(module.ID, "dockerfile"))).Error)

	require.NoError(t, gdb.Delete(&Technology{}, tech.ID).Error)

	var modules, posts int64
	require.NoError(t, gdb.Model(&Module{}).Count(&modules).Error)
	require.NoError(t, gdb.Model(&Post{}).Count(&posts).Error)
	assert.Zero(t, modules)
	assert.Zero(t, posts)
}

func TestForeignKeyViolation(t *testing.T) {
	gdb := setupTestDB(t)
	err := gdb.Create(&Module{TechnologyID: 999, Title: "Órfão", Slug: "orfao"}).Error
	assert.True(t, errors.Is(err, gorm.ErrForeignKeyViolated), "got %v", err)
}

func TestEnsureUser(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()

	created, err := EnsureUser(ctx, gdb, " Admin@DevBook.com ", "s3cret", "Admin", RoleAdmin)
	require.NoError(t, err)
	assert.True(t, created)

	created, err = EnsureUser(ctx, gdb, "admin@devbook.com", "other", "Admin", RoleAdmin)
	require.NoError(t, err)
	assert.False(t, created)

	created, err = EnsureUser(ctx, gdb, "", "x", "", RoleAdmin)
	require.NoError(t, err)
	assert.False(t, created)

	var user User
	require.NoError(t, gdb.Where("email = ?", "admin@devbook.com").First(&user).Error)
	assert.Equal(t, RoleAdmin, user.Role)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cret")))
}

func ptr[T any](v T) *T {
	return &v
}

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devbook/internal/publish"
)

const validBody = `{"blocks":[
	{"type":"heading","level":2,"text":"Introdução"},
	{"type":"paragraph","text":"Variáveis guardam <b>valores</b>."},
	{"type":"code","language":"php","code":"<?php $x = 1;"}
]}`

func postInput(moduleID uint) PostInput {
	return PostInput{
		ModuleID: moduleID,
		Title:    "Introdução à POO em PHP",
		Concept:  "Classes e objetos em PHP",
		Summary:  "Uma visão geral de POO",
		IsPublic: Bool(true),
		Status:   "DRAFT",
		Content:  []byte(validBody),
	}
}

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func TestPostServiceCreateNormalizesSlug(t *testing.T) {
	gdb := setupServiceTestDB(t)
	_, module := seedModule(t, gdb)
	svc := NewPostService(gdb)

	post, err := svc.Create(context.Background(), postInput(module.ID))
	require.NoError(t, err)
	assert.Equal(t, "introducao-poo-php", post.Slug)
	assert.Equal(t, publish.StatusDraft, post.Status)
	assert.Nil(t, post.PublishedAt)
	assert.Equal(t, 3, post.Content.Len())

	in := postInput(module.ID)
	in.Slug = "  Meu Slug Próprio "
	in.Title = "Outro título"
	post, err = svc.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "meu-slug-proprio", post.Slug)
}

func TestPostServicePublishTimestamps(t *testing.T) {
	gdb := setupServiceTestDB(t)
	_, module := seedModule(t, gdb)
	clock := &fakeClock{now: time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)}
	svc := NewPostService(gdb)
	svc.now = clock.Now
	ctx := context.Background()

	post, err := svc.Create(ctx, postInput(module.ID))
	require.NoError(t, err)
	assert.Nil(t, post.PublishedAt)

	in := postInput(module.ID)
	in.Status = "PUBLISHED"
	post, err = svc.Update(ctx, post.ID, in)
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	first := *post.PublishedAt
	assert.True(t, first.Equal(clock.now))

	clock.now = clock.now.Add(48 * time.Hour)
	in.Title = "Introdução à POO em PHP revisada"
	post, err = svc.Update(ctx, post.ID, in)
	require.NoError(t, err)
	require.NotNil(t, post.PublishedAt)
	assert.True(t, post.PublishedAt.Equal(first), "republishing keeps the first timestamp")

	reloaded, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	require.NotNil(t, reloaded.PublishedAt)
	assert.True(t, reloaded.PublishedAt.Equal(first))

	in.Status = "ARCHIVED"
	post, err = svc.Update(ctx, post.ID, in)
	require.NoError(t, err)
	assert.Nil(t, post.PublishedAt)
}

func TestPostServiceValidation(t *testing.T) {
	gdb := setupServiceTestDB(t)
	svc := NewPostService(gdb)

	_, err := svc.Create(context.Background(), PostInput{
		Title:   "ab",
		Concept: "curto",
		Summary: "curto",
		Status:  "DELETED",
		Content: []byte(`{"blocks":[{"type":"paragraph","text":""}]}`),
	})
	verr := requireFieldErrors(t, err)
	assert.Equal(t, []string{
		"concept",
		"content.blocks[0].text",
		"isPublic",
		"moduleId",
		"slug",
		"status",
		"summary",
		"title",
	}, verr.Paths())

	_, err = svc.Create(context.Background(), PostInput{ModuleID: 1, Title: "Título válido", Concept: "Conceito longo o bastante", Summary: "Resumo longo o bastante"})
	verr = requireFieldErrors(t, err)
	assert.Equal(t, []string{"content", "isPublic"}, verr.Paths())
}

func TestPostServiceStatusRules(t *testing.T) {
	gdb := setupServiceTestDB(t)
	_, module := seedModule(t, gdb)
	svc := NewPostService(gdb)
	ctx := context.Background()

	in := postInput(module.ID)
	in.Status = ""
	post, err := svc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, publish.StatusDraft, post.Status)

	in = postInput(module.ID)
	in.Status = "PUBLISHED"
	_, err = svc.Update(ctx, post.ID, in)
	require.NoError(t, err)

	missing := postInput(module.ID)
	missing.Status = ""
	missing.IsPublic = nil
	_, err = svc.Update(ctx, post.ID, missing)
	verr := requireFieldErrors(t, err)
	assert.Equal(t, []string{"Campo obrigatório."}, verr.Messages("status"))
	assert.Equal(t, []string{"Campo obrigatório."}, verr.Messages("isPublic"))

	lower := postInput(module.ID)
	lower.Status = "published"
	_, err = svc.Update(ctx, post.ID, lower)
	verr = requireFieldErrors(t, err)
	assert.True(t, verr.Has("status"))

	stored, err := svc.Get(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, publish.StatusPublished, stored.Status)
	require.NotNil(t, stored.PublishedAt)
	assert.True(t, stored.IsPublic)
}

func TestPostServiceReferenceErrors(t *testing.T) {
	gdb := setupServiceTestDB(t)
	_, module := seedModule(t, gdb)
	svc := NewPostService(gdb)
	ctx := context.Background()

	_, err := svc.Create(ctx, postInput(999))
	assert.ErrorIs(t, err, ErrModuleNotFound)

	_, err = svc.Update(ctx, 999, postInput(module.ID))
	assert.ErrorIs(t, err, ErrPostNotFound)

	assert.ErrorIs(t, svc.Delete(ctx, 999), ErrPostNotFound)

	_, err = svc.ListByModule(ctx, 999)
	assert.ErrorIs(t, err, ErrModuleNotFound)
}

func TestPostServiceSlugConflict(t *testing.T) {
	gdb := setupServiceTestDB(t)
	_, module := seedModule(t, gdb)
	svc := NewPostService(gdb)
	ctx := context.Background()

	_, err := svc.Create(ctx, postInput(module.ID))
	require.NoError(t, err)
	_, err = svc.Create(ctx, postInput(module.ID))
	assert.ErrorIs(t, err, ErrSlugConflict)
}

func TestPostServicePublicVisibility(t *testing.T) {
	gdb := setupServiceTestDB(t)
	tech, module := seedModule(t, gdb)
	svc := NewPostService(gdb)
	ctx := context.Background()

	cases := []struct {
		title    string
		status   string
		isPublic bool
		visible  bool
	}{
		{title: "Publicado e público", status: "PUBLISHED", isPublic: true, visible: true},
		{title: "Publicado e privado", status: "PUBLISHED", isPublic: false},
		{title: "Rascunho público", status: "DRAFT", isPublic: true},
		{title: "Arquivado público", status: "ARCHIVED", isPublic: true},
	}

	for _, tc := range cases {
		in := postInput(module.ID)
		in.Title = tc.title
		in.Status = tc.status
		in.IsPublic = Bool(tc.isPublic)
		post, err := svc.Create(ctx, in)
		require.NoError(t, err)

		found, err := svc.PublicPost(ctx, tech.Slug, module.Slug, post.Slug)
		if tc.visible {
			require.NoError(t, err, tc.title)
			assert.Equal(t, post.ID, found.ID)
			assert.Equal(t, tech.Slug, found.Module.Technology.Slug)
			continue
		}
		assert.ErrorIs(t, err, ErrPostNotFound, tc.title)
	}

	_, err := svc.PublicPost(ctx, "nao-existe", module.Slug, "x")
	assert.ErrorIs(t, err, ErrPostNotFound)

	loaded, err := svc.PublicTechnology(ctx, tech.Slug)
	require.NoError(t, err)
	require.Len(t, loaded.Modules, 1)
	require.Len(t, loaded.Modules[0].Posts, 1)
	assert.Equal(t, "Publicado e público", loaded.Modules[0].Posts[0].Title)

	_, err = svc.PublicTechnology(ctx, "nao-existe")
	assert.ErrorIs(t, err, ErrTechnologyNotFound)
}

package e2e

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/textproto"
	"strconv"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devbook/internal/config"
	"github.com/devbook/internal/db"
	"github.com/devbook/internal/logger"
	"github.com/devbook/internal/router"
	"github.com/devbook/internal/service"
)

const (
	adminEmail    = "admin@devbook.test"
	viewerEmail   = "viewer@devbook.test"
	adminPassword = "e2e-secret"
)

type e2eSuite struct {
	handler   http.Handler
	public    httpClient
	admin     httpClient
	baseURL   string
	uploadDir string
	tech      *db.Technology
	module    *db.Module
	published *db.Post
	draft     *db.Post
}

type httpClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type localClient struct {
	handler http.Handler
	jar     http.CookieJar
}

func newLocalClient(handler http.Handler, withJar bool) *localClient {
	var jar http.CookieJar
	if withJar {
		if j, err := cookiejar.New(nil); err == nil {
			jar = j
		}
	}
	return &localClient{handler: handler, jar: jar}
}

func (c *localClient) Do(req *http.Request) (*http.Response, error) {
	if c.jar != nil {
		for _, cookie := range c.jar.Cookies(req.URL) {
			req.AddCookie(cookie)
		}
	}
	w := httptest.NewRecorder()
	c.handler.ServeHTTP(w, req)
	resp := w.Result()
	if c.jar != nil {
		c.jar.SetCookies(req.URL, resp.Cookies())
	}
	return resp, nil
}

func TestE2E_AllInterfaces(t *testing.T) {
	suite := newE2ESuite(t)

	t.Run("public endpoints", suite.testPublicEndpoints)
	t.Run("authentication", suite.testAuthentication)
	suite.login(t, suite.admin, adminEmail)
	t.Run("admin pages", suite.testAdminPages)
	t.Run("admin apis", suite.testAdminAPIs)
	t.Run("editor apis", suite.testEditorAPIs)
	t.Run("cascade delete", suite.testCascadeDelete)
}

func newE2ESuite(t *testing.T) *e2eSuite {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gdb, err := db.Open(fmt.Sprintf("file:e2e-%s?mode=memory&cache=shared", uuid.NewString()), nil)
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	ctx := context.Background()
	_, err = db.EnsureUser(ctx, gdb, adminEmail, adminPassword, "Admin", db.RoleAdmin)
	require.NoError(t, err)
	_, err = db.EnsureUser(ctx, gdb, viewerEmail, adminPassword, "Viewer", db.RoleViewer)
	require.NoError(t, err)

	tech, err := service.NewTechnologyService(gdb).Create(ctx, service.TechnologyInput{
		Name:        "PHP",
		Category:    "Linguagens",
		Description: "Linguagem **popular** para web.",
	})
	require.NoError(t, err)
	module, err := service.NewModuleService(gdb).Create(ctx, tech.ID, service.ModuleInput{Title: "Orientação a Objetos"})
	require.NoError(t, err)

	posts := service.NewPostService(gdb)
	published, err := posts.Create(ctx, service.PostInput{
		ModuleID: module.ID,
		Title:    "Introdução à POO em PHP",
		Concept:  "Classes agrupam estado e comportamento.",
		Summary:  "Resumo sobre classes em PHP.",
		IsPublic: service.Bool(true),
		Status:   "PUBLISHED",
		Content: []byte(`{"blocks":[
			{"type":"heading","level":2,"text":"Classes"},
			{"type":"paragraph","text":"Uma <b>classe</b> é um molde."},
			{"type":"code","language":"php","code":"<?php\nclass User {}"},
			{"type":"summary","text":"Classes são moldes."}
		]}`),
	})
	require.NoError(t, err)
	draft, err := posts.Create(ctx, service.PostInput{
		ModuleID: module.ID,
		Title:    "Herança em rascunho",
		Concept:  "Conceito ainda em revisão.",
		Summary:  "Resumo ainda em revisão.",
		IsPublic: service.Bool(true),
		Status:   "DRAFT",
		Content:  []byte(`{"blocks":[{"type":"paragraph","text":"Em breve."}]}`),
	})
	require.NoError(t, err)

	uploadDir := t.TempDir()
	cfg := config.AppConfig{
		SessionSecret: "e2e-session-secret",
		CookieName:    "devbook_e2e",
		UploadDir:     uploadDir,
		UploadURLPath: "/static/uploads",
	}
	r, err := router.SetupRouter(gdb, cfg, logger.Nop())
	require.NoError(t, err)

	return &e2eSuite{
		handler:   r,
		public:    newLocalClient(r, false),
		admin:     newLocalClient(r, true),
		baseURL:   "http://example.test",
		uploadDir: uploadDir,
		tech:      tech,
		module:    module,
		published: published,
		draft:     draft,
	}
}

func (s *e2eSuite) login(t *testing.T, client httpClient, email string) {
	t.Helper()
	resp := s.mustRequestJSON(t, client, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    email,
		"password": adminPassword,
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode, readBody(t, resp))
}

func (s *e2eSuite) testPublicEndpoints(t *testing.T) {
	checkHTML := func(name, path, expect string, code int) string {
		t.Helper()
		resp := s.mustRequest(t, s.public, http.MethodGet, path, nil, nil)
		defer resp.Body.Close()
		body := readBody(t, resp)
		require.Equal(t, code, resp.StatusCode, name)
		if expect != "" {
			assert.Contains(t, body, expect, name)
		}
		return body
	}

	resp := s.mustRequest(t, s.public, http.MethodGet, "/", nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/tecnologias", resp.Header.Get("Location"))

	list := checkHTML("technologies", "/tecnologias", "PHP", http.StatusOK)
	assert.Contains(t, list, "<strong>popular</strong>")
	assert.Contains(t, list, "Linguagens")

	modules := checkHTML("modules", "/tecnologias/php/modulos", s.published.Title, http.StatusOK)
	assert.NotContains(t, modules, s.draft.Title)
	assert.Contains(t, modules, "/tecnologias/php/modulos/orientacao-objetos/post/introducao-poo-php")

	post := checkHTML("post", "/tecnologias/php/modulos/orientacao-objetos/post/introducao-poo-php", "<h2>Classes</h2>", http.StatusOK)
	assert.Contains(t, post, `<figure class="code-block" data-language="php">`)
	assert.Contains(t, post, `<span class="code-filename">index.html</span>`)
	assert.Contains(t, post, "<strong>classe</strong>")
	assert.Contains(t, post, `<p class="summary"><strong>Classes são moldes.</strong></p>`)

	checkHTML("draft post", "/tecnologias/php/modulos/orientacao-objetos/post/heranca-rascunho", "", http.StatusNotFound)
	checkHTML("missing technology", "/tecnologias/cobol/modulos", "", http.StatusNotFound)

	resp = s.mustRequest(t, s.public, http.MethodGet, "/api/public/posts/php/orientacao-objetos/introducao-poo-php", nil, nil)
	var record map[string]interface{}
	decodeJSON(t, resp, &record)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "introducao-poo-php", record["slug"])
	assert.Equal(t, "php", record["technology"].(map[string]interface{})["slug"])
	assert.NotNil(t, record["publishedAt"])

	resp = s.mustRequest(t, s.public, http.MethodGet, "/api/public/posts/php/orientacao-objetos/heranca-rascunho", nil, nil)
	var missing map[string]interface{}
	decodeJSON(t, resp, &missing)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "not found", missing["error"])

	resp = s.mustRequest(t, s.public, http.MethodGet, "/ping", nil, nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "pong")
}

func (s *e2eSuite) testAuthentication(t *testing.T) {
	resp := s.mustRequest(t, s.public, http.MethodGet, "/admin/api/technologies", nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = s.mustRequest(t, s.public, http.MethodGet, "/admin", nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Location"), "/login"))

	client := newLocalClient(s.handler, true)
	resp = s.mustRequest(t, client, http.MethodGet, "/api/auth/me", nil, nil)
	var me map[string]interface{}
	decodeJSON(t, resp, &me)
	assert.Equal(t, false, me["isAuthenticated"])

	resp = s.mustRequestJSON(t, client, http.MethodPost, "/api/auth/login", map[string]interface{}{
		"email":    adminEmail,
		"password": "wrong",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	s.login(t, client, viewerEmail)
	resp = s.mustRequest(t, client, http.MethodGet, "/api/auth/me", nil, nil)
	decodeJSON(t, resp, &me)
	assert.Equal(t, true, me["isAuthenticated"])

	resp = s.mustRequest(t, client, http.MethodGet, "/admin/api/technologies", nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = s.mustRequest(t, client, http.MethodPost, "/api/auth/logout", nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = s.mustRequest(t, client, http.MethodGet, "/api/auth/me", nil, nil)
	decodeJSON(t, resp, &me)
	assert.Equal(t, false, me["isAuthenticated"])
}

func (s *e2eSuite) testAdminPages(t *testing.T) {
	for _, path := range []string{
		"/admin",
		"/admin/posts/" + idStr(s.published.ID) + "/edit",
		"/admin/posts/new?module=" + idStr(s.module.ID),
	} {
		resp := s.mustRequest(t, s.admin, http.MethodGet, path, nil, nil)
		body := readBody(t, resp)
		resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
		if strings.Contains(path, "/edit") {
			assert.Contains(t, body, `data-block-type="code"`)
			assert.Contains(t, body, "window.DEVBOOK_ENTRIES")
		}
	}

	resp := s.mustRequest(t, s.admin, http.MethodGet, "/admin/posts/999999/edit", nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func (s *e2eSuite) testAdminAPIs(t *testing.T) {
	resp := s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/technology-categories", nil, nil)
	var categories struct {
		Categories []struct {
			Key   string `json:"key"`
			Label string `json:"label"`
		} `json:"categories"`
	}
	decodeJSON(t, resp, &categories)
	require.NotEmpty(t, categories.Categories)

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/technologies", map[string]interface{}{
		"name":        "Go",
		"category":    "Linguagens",
		"description": "Linguagem compilada do Google.",
	})
	var tech db.Technology
	decodeJSON(t, resp, &tech)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "go", tech.Slug)

	resp = s.mustRequestJSON(t, s.admin, http.MethodPatch, "/admin/api/technologies/"+idStr(tech.ID), map[string]interface{}{
		"name": "Golang",
	})
	decodeJSON(t, resp, &tech)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Golang", tech.Name)
	assert.Equal(t, "go", tech.Slug)

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/technologies", map[string]interface{}{
		"name":        "Go de novo",
		"slug":        "go",
		"category":    "Linguagens",
		"description": "Outra descrição qualquer.",
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/technologies/"+idStr(tech.ID)+"/modules", map[string]interface{}{
		"title": "Concorrência",
	})
	var module db.Module
	decodeJSON(t, resp, &module)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "concorrencia", module.Slug)

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/technologies/"+idStr(tech.ID)+"/modules", nil, nil)
	var modules struct {
		Modules []db.Module `json:"modules"`
	}
	decodeJSON(t, resp, &modules)
	assert.Len(t, modules.Modules, 1)

	invalid := map[string]interface{}{
		"moduleId": module.ID,
		"title":    "Goroutines na prática",
		"concept":  "Funções que rodam concorrentemente.",
		"summary":  "Resumo sobre goroutines.",
		"isPublic": false,
		"status":   "DRAFT",
		"content": map[string]interface{}{
			"blocks": []interface{}{
				map[string]interface{}{"type": "paragraph", "text": "  "},
				map[string]interface{}{"type": "list", "style": "bullet", "items": []string{"a", ""}},
			},
		},
	}
	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/posts", invalid)
	var failure struct {
		Message string              `json:"message"`
		Issues  map[string][]string `json:"issues"`
	}
	decodeJSON(t, resp, &failure)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"O parágrafo não pode ficar vazio."}, failure.Issues["content.blocks[0].text"])
	assert.Equal(t, []string{"Item da lista não pode ficar vazio."}, failure.Issues["content.blocks[1].items[1]"])

	valid := invalid
	valid["content"] = map[string]interface{}{
		"blocks": []interface{}{
			map[string]interface{}{"type": "paragraph", "text": "Use <code>go f()</code>."},
		},
	}
	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/posts", valid)
	var post db.Post
	decodeJSON(t, resp, &post)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "goroutines-pratica", post.Slug)
	assert.Nil(t, post.PublishedAt)

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/posts", valid)
	resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	valid["status"] = "PUBLISHED"
	valid["isPublic"] = true
	resp = s.mustRequestJSON(t, s.admin, http.MethodPut, "/admin/api/posts/"+idStr(post.ID), valid)
	decodeJSON(t, resp, &post)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotNil(t, post.PublishedAt)

	partial := map[string]interface{}{}
	for k, v := range valid {
		if k != "status" {
			partial[k] = v
		}
	}
	resp = s.mustRequestJSON(t, s.admin, http.MethodPut, "/admin/api/posts/"+idStr(post.ID), partial)
	decodeJSON(t, resp, &failure)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, []string{"Campo obrigatório."}, failure.Issues["status"])

	resp = s.mustRequest(t, s.public, http.MethodGet, "/api/public/posts/go/concorrencia/goroutines-pratica", nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/modules/"+idStr(module.ID)+"/posts", nil, nil)
	var posts struct {
		Posts []db.Post `json:"posts"`
	}
	decodeJSON(t, resp, &posts)
	assert.Len(t, posts.Posts, 1)

	resp = s.mustRequestJSON(t, s.admin, http.MethodPut, "/admin/api/posts/999999", valid)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	valid["moduleId"] = 999999
	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/posts", valid)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.mustRequest(t, s.admin, http.MethodDelete, "/admin/api/posts/"+idStr(post.ID), nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp = s.mustRequest(t, s.admin, http.MethodDelete, "/admin/api/posts/"+idStr(post.ID), nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.uploadTestImage(t)
	var upload map[string]interface{}
	decodeJSON(t, resp, &upload)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(upload["url"].(string), "/static/uploads/"))
	assert.EqualValues(t, 4, upload["width"])

	resp = s.mustRequest(t, s.public, http.MethodGet, upload["url"].(string), nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func (s *e2eSuite) testEditorAPIs(t *testing.T) {
	resp := s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/editor/draft/list", nil, nil)
	var draft struct {
		Entry struct {
			ID    string                 `json:"id"`
			Block map[string]interface{} `json:"block"`
		} `json:"entry"`
	}
	decodeJSON(t, resp, &draft)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotEmpty(t, draft.Entry.ID)
	assert.Equal(t, "bullet", draft.Entry.Block["style"])

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/editor/apply", map[string]interface{}{
		"entries": []interface{}{
			map[string]interface{}{"id": "a", "block": map[string]interface{}{"type": "paragraph", "text": "primeiro"}},
		},
		"action": map[string]interface{}{"op": "append", "type": "code"},
	})
	var state struct {
		Entries []struct {
			ID    string                 `json:"id"`
			Block map[string]interface{} `json:"block"`
		} `json:"entries"`
		Issues    map[string][]string `json:"issues"`
		Valid     bool                `json:"valid"`
		CanSubmit bool                `json:"canSubmit"`
	}
	decodeJSON(t, resp, &state)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, state.Entries, 2)
	assert.Equal(t, "a", state.Entries[0].ID)
	assert.Equal(t, "php", state.Entries[1].Block["language"])
	assert.False(t, state.CanSubmit)
	assert.Contains(t, state.Issues, "blocks[1].code")

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/editor/apply", map[string]interface{}{
		"entries": []interface{}{
			map[string]interface{}{"id": "a", "block": map[string]interface{}{"type": "paragraph", "text": "x"}},
		},
		"action": map[string]interface{}{"op": "remove", "index": 3},
	})
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/editor/preview", map[string]interface{}{
		"entries": []interface{}{
			map[string]interface{}{"id": "h", "block": map[string]interface{}{"type": "heading", "level": 3, "text": "Canais"}},
		},
	})
	var preview map[string]interface{}
	decodeJSON(t, resp, &preview)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "<h3>Canais</h3>\n", preview["html"])
	assert.Contains(t, preview["form"], `data-block-id="h"`)
	assert.Equal(t, true, preview["canSubmit"])

	resp = s.mustRequestJSON(t, s.admin, http.MethodPost, "/admin/api/slug", map[string]interface{}{
		"title": "Tratamento de Exceções em PHP",
	})
	var suggestion map[string]string
	decodeJSON(t, resp, &suggestion)
	assert.Equal(t, "tratamento-excecoes-php", suggestion["slug"])
}

func (s *e2eSuite) testCascadeDelete(t *testing.T) {
	resp := s.mustRequest(t, s.admin, http.MethodDelete, "/admin/api/technologies/"+idStr(s.tech.ID), nil, nil)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/modules/"+idStr(s.module.ID), nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = s.mustRequest(t, s.admin, http.MethodGet, "/admin/api/posts/"+idStr(s.published.ID), nil, nil)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func (s *e2eSuite) uploadTestImage(t *testing.T) *http.Response {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: 10, G: 20, B: 200, A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	partHeader := textproto.MIMEHeader{}
	partHeader.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, "image", "test.png"))
	partHeader.Set("Content-Type", "image/png")
	part, err := writer.CreatePart(partHeader)
	require.NoError(t, err)
	_, err = part.Write(buf.Bytes())
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	headers := map[string]string{
		"Content-Type": writer.FormDataContentType(),
	}
	return s.mustRequest(t, s.admin, http.MethodPost, "/admin/api/uploads", body, headers)
}

func (s *e2eSuite) mustRequest(t *testing.T, client httpClient, method, path string, body io.Reader, headers map[string]string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, s.baseURL+path, body)
	require.NoError(t, err, "build request %s %s", method, path)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := client.Do(req)
	require.NoError(t, err, "request %s %s", method, path)
	return resp
}

func (s *e2eSuite) mustRequestJSON(t *testing.T, client httpClient, method, path string, payload map[string]interface{}) *http.Response {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	headers := map[string]string{"Content-Type": "application/json"}
	return s.mustRequest(t, client, method, path, bytes.NewReader(data), headers)
}

func decodeJSON(t *testing.T, resp *http.Response, dst interface{}) {
	t.Helper()
	defer resp.Body.Close()
	body := readBody(t, resp)
	require.NoError(t, json.Unmarshal([]byte(body), dst), "body=%s", body)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(data)
}

func idStr(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

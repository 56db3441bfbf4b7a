package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devbook/internal/content"
	"github.com/devbook/internal/content/editor"
	"github.com/devbook/internal/db"
	"github.com/devbook/internal/publish"
	"github.com/devbook/internal/service"
)

// postRequest is the Save Post body. Content stays raw so the block schema
// reports its own paths.
type postRequest struct {
	service.PostInput
	Content json.RawMessage `json:"content"`
}

func (r postRequest) input() service.PostInput {
	in := r.PostInput
	in.Content = r.Content
	return in
}

func (a *API) GetPost(c *gin.Context) {
	id, ok := a.idParam(c, "id")
	if !ok {
		return
	}
	post, err := a.posts.Get(requestContext(c), id)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (a *API) CreatePost(c *gin.Context) {
	var req postRequest
	if !bindJSON(c, &req, invalidBody(c)) {
		return
	}
	post, err := a.posts.Create(requestContext(c), req.input())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, post)
}

// UpdatePost replaces the whole post.
func (a *API) UpdatePost(c *gin.Context) {
	id, ok := a.idParam(c, "id")
	if !ok {
		return
	}
	var req postRequest
	if !bindJSON(c, &req, invalidBody(c)) {
		return
	}
	post, err := a.posts.Update(requestContext(c), id, req.input())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, post)
}

func (a *API) DeletePost(c *gin.Context) {
	id, ok := a.idParam(c, "id")
	if !ok {
		return
	}
	if err := a.posts.Delete(requestContext(c), id); err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ShowPostEditor renders the block editor for an existing post, or for a new
// post in module ?module when :id is absent.
func (a *API) ShowPostEditor(c *gin.Context) {
	ctx := requestContext(c)
	post := &db.Post{Status: publish.StatusDraft}

	if c.Param("id") != "" {
		id, err := parseUintParam(c, "id")
		if err != nil {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		post, err = a.posts.Get(ctx, id)
		if err != nil {
			a.renderEditorError(c, err)
			return
		}
	} else {
		moduleID, err := parseUintQuery(c, "module")
		if err != nil {
			c.AbortWithStatus(http.StatusNotFound)
			return
		}
		module, err := a.modules.Get(ctx, moduleID)
		if err != nil {
			a.renderEditorError(c, err)
			return
		}
		post.ModuleID = module.ID
		post.Module = module
		draft, _ := content.NewDraft(content.TypeParagraph)
		post.Content = content.PostContent{Blocks: []content.Block{draft}}
	}

	state := editor.FromContent(post.Content, nil)
	state = editor.New(state.Entries, a.requestLocale(c).Language)
	form := content.FormRenderer{Language: a.requestLocale(c).Language}

	a.renderHTML(c, http.StatusOK, "post_editor.html", gin.H{
		"title":      text(c, "Edit post", "Editar post"),
		"post":       post,
		"entries":    state.Entries,
		"form":       form.Render(state.Content().Blocks, state.IDs(), state.Errors),
		"preview":    a.renderer.Render(ctx, state.Content()),
		"canSubmit":  state.Valid() && state.Len() > 0,
		"statuses":   publish.Statuses,
		"blockTypes": content.BlockTypes,
	})
}

func (a *API) renderEditorError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if isNotFound(err) {
		status = http.StatusNotFound
	} else {
		a.log.Error(err, "load editor")
	}
	a.renderHTML(c, status, "error.html", gin.H{
		"title": text(c, "Not found", "Não encontrado"),
	})
}

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/devbook/internal/content"
	"github.com/devbook/internal/content/editor"
	"github.com/devbook/internal/locale"
	"github.com/devbook/internal/slug"
)

type editorEntry struct {
	ID    string          `json:"id"`
	Block json.RawMessage `json:"block"`
}

type applyRequest struct {
	Entries []editorEntry   `json:"entries"`
	Action  json.RawMessage `json:"action"`
}

type previewRequest struct {
	Entries []editorEntry `json:"entries"`
}

type slugRequest struct {
	Title string `json:"title"`
}

// DraftBlock returns a fresh entry holding the default block of :type.
func (a *API) DraftBlock(c *gin.Context) {
	t, ok := content.ParseBlockType(c.Param("type"))
	if !ok {
		respondError(c, http.StatusBadRequest, text(c, "Unknown block type.", "Tipo de bloco desconhecido."))
		return
	}
	block, _ := content.NewDraft(t)
	c.JSON(http.StatusOK, gin.H{"entry": editor.Entry{ID: uuid.NewString(), Block: block}})
}

// ApplyEditorAction runs one reducer action over the submitted entries and
// returns the next state with its validation result.
func (a *API) ApplyEditorAction(c *gin.Context) {
	var req applyRequest
	if !bindJSON(c, &req, invalidBody(c)) {
		return
	}
	state, ok := a.decodeEntries(c, req.Entries)
	if !ok {
		return
	}
	action, err := editor.DecodeAction(req.Action)
	if err != nil {
		respondError(c, http.StatusBadRequest, actionErrorMessage(c, err))
		return
	}

	session := editor.NewSession(state, nil)
	if err := session.Apply(action); err != nil {
		respondError(c, http.StatusBadRequest, actionErrorMessage(c, err))
		return
	}
	c.JSON(http.StatusOK, stateResponse(session.State(), session.CanSubmit()))
}

// PreviewContent renders the submitted entries as the public page and as the
// edit form, both annotated with the current validation result.
func (a *API) PreviewContent(c *gin.Context) {
	var req previewRequest
	if !bindJSON(c, &req, invalidBody(c)) {
		return
	}
	state, ok := a.decodeEntries(c, req.Entries)
	if !ok {
		return
	}
	form := content.FormRenderer{Language: state.Language}
	body := stateResponse(state, state.Len() > 0 && state.Valid())
	body["html"] = a.renderer.Render(requestContext(c), state.Content())
	body["form"] = form.Render(state.Content().Blocks, state.IDs(), state.Errors)
	c.JSON(http.StatusOK, body)
}

// SuggestSlug normalizes a title the same way saves do.
func (a *API) SuggestSlug(c *gin.Context) {
	var req slugRequest
	if !bindJSON(c, &req, invalidBody(c)) {
		return
	}
	c.JSON(http.StatusOK, gin.H{"slug": slug.Normalize(req.Title)})
}

// decodeEntries builds editor state from the wire entries. Incomplete blocks
// are accepted; malformed ones are reported under entries[i].block.
func (a *API) decodeEntries(c *gin.Context, raw []editorEntry) (editor.State, bool) {
	lang := locale.FromContext(requestContext(c))
	errs := &content.ValidationError{}
	entries := make([]editor.Entry, 0, len(raw))
	for i, e := range raw {
		block, err := content.UnmarshalDraftBlock(e.Block, content.WithLanguage(lang))
		var verr *content.ValidationError
		switch {
		case errors.As(err, &verr):
			errs.Merge(fmt.Sprintf("entries[%d].block", i), verr)
			continue
		case err != nil:
			errs.Add(fmt.Sprintf("entries[%d].block", i), locale.Pick(lang, "Invalid JSON.", "JSON inválido."))
			continue
		}
		id := strings.TrimSpace(e.ID)
		if id == "" {
			id = uuid.NewString()
		}
		entries = append(entries, editor.Entry{ID: id, Block: block})
	}
	if !errs.Empty() {
		respondValidation(c, errs)
		return editor.State{}, false
	}
	return editor.New(entries, lang), true
}

func stateResponse(state editor.State, canSubmit bool) gin.H {
	issues := map[string][]string{}
	if state.Errors != nil {
		issues = state.Errors.Fields
	}
	entries := state.Entries
	if entries == nil {
		entries = []editor.Entry{}
	}
	return gin.H{
		"entries":   entries,
		"issues":    issues,
		"valid":     state.Valid(),
		"canSubmit": canSubmit,
	}
}

func actionErrorMessage(c *gin.Context, err error) string {
	switch {
	case errors.Is(err, editor.ErrOutOfRange):
		return text(c, "Block index out of range.", "Índice de bloco fora do intervalo.")
	case errors.Is(err, editor.ErrUnknownField):
		return text(c, "Unknown block field.", "Campo de bloco desconhecido.")
	case errors.Is(err, editor.ErrInvalidValue):
		return text(c, "Invalid field value.", "Valor de campo inválido.")
	case errors.Is(err, editor.ErrUnknownType):
		return text(c, "Unknown block type.", "Tipo de bloco desconhecido.")
	case errors.Is(err, editor.ErrNotList):
		return text(c, "Block is not a list.", "O bloco não é uma lista.")
	default:
		return text(c, "Invalid action.", "Ação inválida.")
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devbook/internal/service"
	"github.com/devbook/internal/view"
)

// ListTechnologyCategories returns the fixed category catalogue.
func (a *API) ListTechnologyCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": view.CategoryOptions()})
}

func (a *API) ListTechnologies(c *gin.Context) {
	items, err := a.technologies.List(requestContext(c))
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"technologies": items})
}

func (a *API) GetTechnology(c *gin.Context) {
	id, ok := a.idParam(c, "id")
	if !ok {
		return
	}
	tech, err := a.technologies.Get(requestContext(c), id)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tech)
}

func (a *API) CreateTechnology(c *gin.Context) {
	var in service.TechnologyInput
	if !bindJSON(c, &in, invalidBody(c)) {
		return
	}
	tech, err := a.technologies.Create(requestContext(c), in)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, tech)
}

// UpdateTechnology applies a partial update; absent fields keep their value.
func (a *API) UpdateTechnology(c *gin.Context) {
	id, ok := a.idParam(c, "id")
	if !ok {
		return
	}
	var patch service.TechnologyPatch
	if !bindJSON(c, &patch, invalidBody(c)) {
		return
	}
	tech, err := a.technologies.Update(requestContext(c), id, patch)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tech)
}

// DeleteTechnology removes the technology with its modules and posts.
func (a *API) DeleteTechnology(c *gin.Context) {
	id, ok := a.idParam(c, "id")
	if !ok {
		return
	}
	if err := a.technologies.Delete(requestContext(c), id); err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (a *API) idParam(c *gin.Context, key string) (uint, bool) {
	id, err := parseUintParam(c, key)
	if err != nil {
		respondError(c, http.StatusBadRequest, text(c, "Invalid id.", "ID inválido."))
		return 0, false
	}
	return id, true
}

func invalidBody(c *gin.Context) string {
	return text(c, "Invalid request body.", "Corpo da requisição inválido.")
}

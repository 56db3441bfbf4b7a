package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devbook/internal/service"
)

// ListModules returns the modules of technology :id.
func (a *API) ListModules(c *gin.Context) {
	techID, ok := a.idParam(c, "id")
	if !ok {
		return
	}
	modules, err := a.modules.ListByTechnology(requestContext(c), techID)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": modules})
}

func (a *API) CreateModule(c *gin.Context) {
	techID, ok := a.idParam(c, "id")
	if !ok {
		return
	}
	var in service.ModuleInput
	if !bindJSON(c, &in, invalidBody(c)) {
		return
	}
	module, err := a.modules.Create(requestContext(c), techID, in)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, module)
}

func (a *API) GetModule(c *gin.Context) {
	id, ok := a.idParam(c, "id")
	if !ok {
		return
	}
	module, err := a.modules.Get(requestContext(c), id)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

func (a *API) UpdateModule(c *gin.Context) {
	id, ok := a.idParam(c, "id")
	if !ok {
		return
	}
	var patch service.ModulePatch
	if !bindJSON(c, &patch, invalidBody(c)) {
		return
	}
	module, err := a.modules.Update(requestContext(c), id, patch)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, module)
}

func (a *API) DeleteModule(c *gin.Context) {
	id, ok := a.idParam(c, "id")
	if !ok {
		return
	}
	if err := a.modules.Delete(requestContext(c), id); err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// ListModulePosts lists every post of module :id regardless of status.
func (a *API) ListModulePosts(c *gin.Context) {
	id, ok := a.idParam(c, "id")
	if !ok {
		return
	}
	posts, err := a.posts.ListByModule(requestContext(c), id)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"posts": posts})
}

package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devbook/internal/content"
	"github.com/devbook/internal/locale"
	"github.com/devbook/internal/service"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

func bindJSON(c *gin.Context, dst interface{}, message string) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, http.StatusBadRequest, message)
		return false
	}
	return true
}

func parseUintParam(c *gin.Context, key string) (uint, error) {
	raw := c.Param(key)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

// requestContext carries the resolved language to the services.
func requestContext(c *gin.Context) context.Context {
	return c.Request.Context()
}

func text(c *gin.Context, english, portuguese string) string {
	return locale.Pick(locale.FromContext(requestContext(c)), english, portuguese)
}

func respondValidation(c *gin.Context, verr *content.ValidationError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"message": text(c, "Validation failed.", "Dados inválidos."),
		"issues":  verr.Fields,
	})
}

// respondServiceError maps the service error taxonomy onto HTTP statuses.
func (a *API) respondServiceError(c *gin.Context, err error) {
	var verr *content.ValidationError
	switch {
	case errors.As(err, &verr):
		respondValidation(c, verr)
	case errors.Is(err, service.ErrTechnologyNotFound):
		respondError(c, http.StatusNotFound, text(c, "Technology not found.", "Tecnologia não encontrada."))
	case errors.Is(err, service.ErrModuleNotFound):
		respondError(c, http.StatusNotFound, text(c, "Module not found.", "Módulo não encontrado."))
	case errors.Is(err, service.ErrPostNotFound):
		respondError(c, http.StatusNotFound, text(c, "Post not found.", "Post não encontrado."))
	case errors.Is(err, service.ErrUserNotFound):
		respondError(c, http.StatusNotFound, text(c, "User not found.", "Usuário não encontrado."))
	case errors.Is(err, service.ErrSlugConflict):
		respondError(c, http.StatusConflict, text(c, "Slug already in use.", "Slug já está em uso."))
	default:
		a.log.With(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.FullPath(),
		}).Error(err, "request failed")
		respondError(c, http.StatusInternalServerError, text(c, "Internal error.", "Erro interno."))
	}
}

func (a *API) logAnomaly(ctx context.Context, index int) {
	a.log.With(map[string]interface{}{"block": index}).Warn("skipped unknown block while rendering")
}

func parseUintQuery(c *gin.Context, key string) (uint, error) {
	id, err := strconv.ParseUint(c.Query(key), 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid %s", key)
	}
	return uint(id), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, service.ErrTechnologyNotFound) ||
		errors.Is(err, service.ErrModuleNotFound) ||
		errors.Is(err, service.ErrPostNotFound)
}

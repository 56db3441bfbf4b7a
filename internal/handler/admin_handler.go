package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/devbook/internal/db"
)

// ShowDashboard renders the admin landing page.
func (a *API) ShowDashboard(c *gin.Context) {
	var user *db.User
	if cached, ok := c.Get(userContextKey); ok {
		user, _ = cached.(*db.User)
	}

	techs, err := a.technologies.List(requestContext(c))
	if err != nil {
		a.log.Error(err, "list technologies")
	}

	a.renderHTML(c, http.StatusOK, "admin.html", gin.H{
		"title":        text(c, "Dashboard", "Painel"),
		"user":         user,
		"technologies": techs,
	})
}

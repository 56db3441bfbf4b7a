package handler

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"github.com/devbook/internal/db"
	"github.com/devbook/internal/service"
)

const (
	sessionUserKey = "user_id"
	userContextKey = "__current_user"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ShowLoginPage renders the sign-in form.
func (a *API) ShowLoginPage(c *gin.Context) {
	a.renderHTML(c, http.StatusOK, "login.html", gin.H{
		"title": text(c, "Sign in", "Entrar"),
		"next":  safeRedirect(c.Query("next")),
	})
}

// Login checks credentials and stores the user id in the session cookie.
func (a *API) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req, text(c, "Invalid request body.", "Corpo da requisição inválido.")) {
		return
	}
	if strings.TrimSpace(req.Email) == "" || req.Password == "" {
		respondError(c, http.StatusBadRequest, text(c, "Email and password are required.", "Informe email e senha."))
		return
	}

	user, err := a.users.Authenticate(requestContext(c), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			respondError(c, http.StatusUnauthorized, text(c, "Invalid email or password.", "Email ou senha inválidos."))
			return
		}
		a.respondServiceError(c, err)
		return
	}

	session := sessions.Default(c)
	session.Clear()
	session.Set(sessionUserKey, user.ID)
	if err := session.Save(); err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "user": user})
}

func (a *API) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	if err := session.Save(); err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// Me reports the session user, if any.
func (a *API) Me(c *gin.Context) {
	user, err := a.sessionUser(c)
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	if user == nil {
		c.JSON(http.StatusOK, gin.H{"isAuthenticated": false, "user": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"isAuthenticated": true, "user": user})
}

// AuthRequired resolves the session user and enforces the role policy.
// JSON routes get 401/403 bodies; pages redirect to the login form.
func (a *API) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := a.sessionUser(c)
		if err != nil {
			a.respondServiceError(c, err)
			c.Abort()
			return
		}
		if user == nil {
			if wantsJSON(c) {
				respondError(c, http.StatusUnauthorized, text(c, "Authentication required.", "Autenticação necessária."))
			} else {
				c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
			}
			c.Abort()
			return
		}

		allowed, err := a.enforcer.Allow(user.Role, c.Request.URL.Path, c.Request.Method)
		if err != nil {
			a.respondServiceError(c, err)
			c.Abort()
			return
		}
		if !allowed {
			respondError(c, http.StatusForbidden, text(c, "Access denied.", "Acesso negado."))
			c.Abort()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// sessionUser returns nil without error when nobody is signed in or the
// stored account no longer exists.
func (a *API) sessionUser(c *gin.Context) (*db.User, error) {
	if cached, ok := c.Get(userContextKey); ok {
		if user, ok := cached.(*db.User); ok {
			return user, nil
		}
	}
	id, ok := sessions.Default(c).Get(sessionUserKey).(uint)
	if !ok || id == 0 {
		return nil, nil
	}
	user, err := a.users.Get(requestContext(c), id)
	if errors.Is(err, service.ErrUserNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func wantsJSON(c *gin.Context) bool {
	return strings.Contains(c.Request.URL.Path, "/api/") ||
		strings.Contains(c.GetHeader("Accept"), "application/json")
}

// safeRedirect only allows local absolute paths.
func safeRedirect(next string) string {
	if !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/admin"
	}
	return next
}

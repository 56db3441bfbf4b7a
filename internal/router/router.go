package router

import (
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devbook/internal/config"
	"github.com/devbook/internal/handler"
	"github.com/devbook/internal/logger"
	"github.com/devbook/web"
)

const (
	defaultSessionSecret = "devbook-dev-secret"
	defaultCookieName    = "devbook_token"
)

// SetupRouter configures the gin engine and every route.
func SetupRouter(gdb *gorm.DB, cfg config.AppConfig, log logger.Logger, opts ...handler.Option) (*gin.Engine, error) {
	if log == nil {
		log = logger.Nop()
	}
	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(log))

	secret, cookieName := cfg.SessionSecret, cfg.CookieName
	if secret == "" {
		secret = defaultSessionSecret
	}
	if cookieName == "" {
		cookieName = defaultCookieName
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   7 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(cookieName, store))

	tmpl, err := template.New("").Funcs(templateFuncs()).ParseFS(web.TemplateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	r.SetHTMLTemplate(tmpl)

	assets, err := fs.Sub(web.StaticFS, "static")
	if err != nil {
		return nil, fmt.Errorf("static assets: %w", err)
	}
	r.StaticFS("/assets", http.FS(assets))
	if cfg.UploadDir != "" && cfg.UploadURLPath != "" {
		r.Static(cfg.UploadURLPath, cfg.UploadDir)
	}

	api := handler.NewAPI(gdb, cfg.UploadDir, cfg.UploadURLPath, append([]handler.Option{handler.WithLogger(log)}, opts...)...)
	r.Use(api.LocaleMiddleware())

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	r.GET("/", api.RedirectHome)
	r.GET("/tecnologias", api.ShowTechnologies)
	r.GET("/tecnologias/:tech/modulos", api.ShowModules)
	r.GET("/tecnologias/:tech/modulos/:module/post/:post", api.ShowPost)
	r.GET("/api/public/posts/:tech/:module/:post", api.PublicPostJSON)

	r.GET("/login", api.ShowLoginPage)
	authAPI := r.Group("/api/auth")
	{
		authAPI.POST("/login", api.Login)
		authAPI.POST("/logout", api.Logout)
		authAPI.GET("/me", api.Me)
	}

	admin := r.Group("/admin")
	admin.Use(api.AuthRequired())
	{
		admin.GET("", api.ShowDashboard)
		admin.GET("/posts/new", api.ShowPostEditor)
		admin.GET("/posts/:id/edit", api.ShowPostEditor)

		adminAPI := admin.Group("/api")
		{
			adminAPI.GET("/technology-categories", api.ListTechnologyCategories)

			adminAPI.GET("/technologies", api.ListTechnologies)
			adminAPI.POST("/technologies", api.CreateTechnology)
			adminAPI.GET("/technologies/:id", api.GetTechnology)
			adminAPI.PATCH("/technologies/:id", api.UpdateTechnology)
			adminAPI.DELETE("/technologies/:id", api.DeleteTechnology)
			adminAPI.GET("/technologies/:id/modules", api.ListModules)
			adminAPI.POST("/technologies/:id/modules", api.CreateModule)

			adminAPI.GET("/modules/:id", api.GetModule)
			adminAPI.PATCH("/modules/:id", api.UpdateModule)
			adminAPI.DELETE("/modules/:id", api.DeleteModule)
			adminAPI.GET("/modules/:id/posts", api.ListModulePosts)

			adminAPI.POST("/posts", api.CreatePost)
			adminAPI.GET("/posts/:id", api.GetPost)
			adminAPI.PUT("/posts/:id", api.UpdatePost)
			adminAPI.DELETE("/posts/:id", api.DeletePost)

			adminAPI.GET("/editor/draft/:type", api.DraftBlock)
			adminAPI.POST("/editor/apply", api.ApplyEditorAction)
			adminAPI.POST("/editor/preview", api.PreviewContent)
			adminAPI.POST("/slug", api.SuggestSlug)
			adminAPI.POST("/uploads", api.UploadImage)
		}
	}

	return r, nil
}

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"add": func(a, b int) int {
			return a + b
		},
		"upper": strings.ToUpper,
		"safeHTML": func(s string) template.HTML {
			return template.HTML(s)
		},
	}
}

// requestLogger logs one line per request once the handler chain finished.
func requestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := map[string]interface{}{
			"method":     c.Request.Method,
			"path":       c.Request.URL.Path,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
		}
		entry := log.With(fields)
		switch {
		case c.Writer.Status() >= http.StatusInternalServerError:
			entry.Warn("request failed")
		default:
			entry.Debug("request")
		}
	}
}

package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/devbook/internal/auth"
	"github.com/devbook/internal/content"
	"github.com/devbook/internal/logger"
	"github.com/devbook/internal/service"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db           *gorm.DB
	technologies *service.TechnologyService
	modules      *service.ModuleService
	posts        *service.PostService
	users        *service.UserService
	enforcer     *auth.Enforcer
	renderer     *content.HTMLRenderer
	log          logger.Logger
	uploadDir    string
	uploadURL    string
}

// Option customizes an API built by NewAPI.
type Option func(*API)

func WithLogger(log logger.Logger) Option {
	return func(a *API) {
		if log != nil {
			a.log = log
		}
	}
}

func WithEnforcer(e *auth.Enforcer) Option {
	return func(a *API) {
		if e != nil {
			a.enforcer = e
		}
	}
}

func WithRenderer(r *content.HTMLRenderer) Option {
	return func(a *API) {
		if r != nil {
			a.renderer = r
		}
	}
}

// NewAPI constructs a handler set with shared services.
func NewAPI(db *gorm.DB, uploadDir, uploadURL string, opts ...Option) *API {
	a := &API{
		db:           db,
		technologies: service.NewTechnologyService(db),
		modules:      service.NewModuleService(db),
		posts:        service.NewPostService(db),
		users:        service.NewUserService(db),
		log:          logger.Nop(),
		uploadDir:    uploadDir,
		uploadURL:    uploadURL,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.renderer == nil {
		a.renderer = content.NewHTMLRenderer(content.WithAnomalyHook(a.logAnomaly))
	}
	if a.enforcer == nil {
		e, err := auth.NewEnforcer()
		if err != nil {
			panic(err)
		}
		a.enforcer = e
	}
	return a
}

// DB exposes the underlying gorm instance for scripts and tests.
func (a *API) DB() *gorm.DB {
	return a.db
}

func (a *API) renderHTML(c *gin.Context, status int, template string, data gin.H) {
	pref := a.requestLocale(c)

	payload := gin.H{}
	for key, value := range data {
		payload[key] = value
	}
	if _, exists := payload["lang"]; !exists {
		payload["lang"] = pref.Language
	}
	if _, exists := payload["htmlLang"]; !exists {
		payload["htmlLang"] = pref.HTMLLang
	}
	if _, exists := payload["languageSwitch"]; !exists {
		payload["languageSwitch"] = buildLanguageSwitch(c)
	}
	if _, exists := payload["year"]; !exists {
		payload["year"] = time.Now().Year()
	}

	c.HTML(status, template, payload)
}

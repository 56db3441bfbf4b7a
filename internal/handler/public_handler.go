package handler

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/devbook/internal/content"
	"github.com/devbook/internal/db"
	"github.com/devbook/internal/service"
	"github.com/devbook/internal/view"
)

var (
	markdownEngine = goldmark.New(
		goldmark.WithExtensions(extension.GFM, extension.Linkify, extension.Table),
		goldmark.WithRendererOptions(html.WithHardWraps(), html.WithXHTML()),
	)
	sanitizer = bluemonday.UGCPolicy()
)

type technologyCard struct {
	Technology  db.Technology
	Description template.HTML
}

type publicPost struct {
	Title       string              `json:"title"`
	Slug        string              `json:"slug"`
	Concept     string              `json:"concept"`
	Summary     string              `json:"summary"`
	Content     content.PostContent `json:"content"`
	PublishedAt *time.Time          `json:"publishedAt"`
	Module      publicModule        `json:"module"`
	Technology  publicTechRef       `json:"technology"`
}

type publicModule struct {
	Title string `json:"title"`
	Slug  string `json:"slug"`
}

type publicTechRef struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

func (a *API) RedirectHome(c *gin.Context) {
	c.Redirect(http.StatusFound, "/tecnologias")
}

// ShowTechnologies lists every technology grouped by category.
func (a *API) ShowTechnologies(c *gin.Context) {
	techs, err := a.technologies.List(requestContext(c))
	if err != nil {
		a.log.Error(err, "list technologies")
		a.renderHTML(c, http.StatusInternalServerError, "technologies.html", gin.H{
			"title": text(c, "Technologies", "Tecnologias"),
			"error": text(c, "Could not load technologies.", "Não foi possível carregar as tecnologias."),
		})
		return
	}

	cards := make([]technologyCard, 0, len(techs))
	for _, tech := range techs {
		description, err := renderMarkdown(tech.Description)
		if err != nil {
			a.log.Error(err, "render technology description")
		}
		cards = append(cards, technologyCard{Technology: tech, Description: description})
	}

	a.renderHTML(c, http.StatusOK, "technologies.html", gin.H{
		"title": text(c, "Technologies", "Tecnologias"),
		"groups": view.GroupByCategory(cards, func(card technologyCard) string {
			return card.Technology.Category
		}),
	})
}

// ShowModules lists the modules of a technology with their public posts.
func (a *API) ShowModules(c *gin.Context) {
	tech, err := a.posts.PublicTechnology(requestContext(c), c.Param("tech"))
	if err != nil {
		a.renderPublicError(c, err)
		return
	}
	description, err := renderMarkdown(tech.Description)
	if err != nil {
		a.log.Error(err, "render technology description")
	}
	a.renderHTML(c, http.StatusOK, "modules.html", gin.H{
		"title":       tech.Name,
		"technology":  tech,
		"description": description,
		"icon":        template.HTML(view.CategorySVG(tech.Category)),
	})
}

// ShowPost renders a published public post through the block renderer.
func (a *API) ShowPost(c *gin.Context) {
	ctx := requestContext(c)
	post, err := a.posts.PublicPost(ctx, c.Param("tech"), c.Param("module"), c.Param("post"))
	if err != nil {
		a.renderPublicError(c, err)
		return
	}
	a.renderHTML(c, http.StatusOK, "post.html", gin.H{
		"title":      post.Title,
		"post":       post,
		"module":     post.Module,
		"technology": post.Module.Technology,
		"content":    a.renderer.Render(ctx, post.Content),
	})
}

// PublicPostJSON returns the public record of a post. Hidden posts are
// indistinguishable from missing ones.
func (a *API) PublicPostJSON(c *gin.Context) {
	post, err := a.posts.PublicPost(requestContext(c), c.Param("tech"), c.Param("module"), c.Param("post"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			respondError(c, http.StatusNotFound, "not found")
			return
		}
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, publicPost{
		Title:       post.Title,
		Slug:        post.Slug,
		Concept:     post.Concept,
		Summary:     post.Summary,
		Content:     post.Content,
		PublishedAt: post.PublishedAt,
		Module:      publicModule{Title: post.Module.Title, Slug: post.Module.Slug},
		Technology:  publicTechRef{Name: post.Module.Technology.Name, Slug: post.Module.Technology.Slug},
	})
}

func (a *API) renderPublicError(c *gin.Context, err error) {
	status := http.StatusNotFound
	if !isNotFound(err) {
		a.log.Error(err, "public read")
		status = http.StatusInternalServerError
	}
	a.renderHTML(c, status, "error.html", gin.H{
		"title":   text(c, "Not found", "Não encontrado"),
		"message": text(c, "The page you are looking for does not exist.", "A página que você procura não existe."),
	})
}

func renderMarkdown(content string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(content), &buf); err != nil {
		return "", err
	}
	return template.HTML(sanitizer.SanitizeBytes(buf.Bytes())), nil
}

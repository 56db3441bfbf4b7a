package service

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/devbook/internal/content"
	"github.com/devbook/internal/locale"
	"github.com/devbook/internal/publish"
	"github.com/devbook/internal/slug"
	"github.com/devbook/internal/view"
)

// TechnologyInput carries the writable fields of a technology.
type TechnologyInput struct {
	Name        string `json:"name" validate:"min=2"`
	Slug        string `json:"slug" validate:"min=2,slug"`
	Category    string `json:"category" validate:"category"`
	Description string `json:"description" validate:"min=5"`
	Image       string `json:"image" validate:"omitempty,http_url"`
}

// TechnologyPatch is a partial update; nil fields keep their value.
type TechnologyPatch struct {
	Name        *string `json:"name"`
	Slug        *string `json:"slug"`
	Category    *string `json:"category"`
	Description *string `json:"description"`
	Image       *string `json:"image"`
}

type ModuleInput struct {
	Title string `json:"title" validate:"min=2"`
	Slug  string `json:"slug" validate:"min=2,slug"`
}

type ModulePatch struct {
	Title *string `json:"title"`
	Slug  *string `json:"slug"`
}

// PostInput is the full document accepted by Save Post. Content is the raw
// JSON body and is validated by the block schema.
type PostInput struct {
	ModuleID uint   `json:"moduleId" validate:"gt=0"`
	Title    string `json:"title" validate:"min=3"`
	Slug     string `json:"slug" validate:"min=3,slug"`
	Concept  string `json:"concept" validate:"min=10"`
	Summary  string `json:"summary" validate:"min=10"`
	IsPublic *bool  `json:"isPublic" validate:"required"`
	Status   string `json:"status" validate:"required,status"`
	Content  []byte `json:"-"`
}

// Bool returns a pointer to v, for PostInput.IsPublic.
func Bool(v bool) *bool {
	return &v
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "slug", func(fl validator.FieldLevel) bool {
		return slug.Valid(fl.Field().String())
	})
	mustRegister(v, "category", func(fl validator.FieldLevel) bool {
		return view.IsCategory(fl.Field().String())
	})
	mustRegister(v, "status", func(fl validator.FieldLevel) bool {
		_, err := publish.ParseStatus(fl.Field().String())
		return err == nil
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// validateInput runs the struct tags of in and returns field errors keyed by
// JSON name, or nil.
func validateInput(ctx context.Context, in any) *content.ValidationError {
	err := validate.StructCtx(ctx, in)
	if err == nil {
		return nil
	}
	lang := locale.FromContext(ctx)
	errs := &content.ValidationError{}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		errs.Add("", err.Error())
		return errs
	}
	for _, fe := range fieldErrs {
		errs.Add(fe.Field(), fieldMessage(lang, fe))
	}
	return errs
}

func fieldMessage(lang string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return locale.Pick(lang, "Field is required.", "Campo obrigatório.")
	case "min":
		return locale.Pick(lang,
			fmt.Sprintf("Must be at least %s characters.", fe.Param()),
			fmt.Sprintf("Deve ter pelo menos %s caracteres.", fe.Param()))
	case "gt":
		return locale.Pick(lang, "Must be a positive number.", "Deve ser um número positivo.")
	case "slug":
		return locale.Pick(lang,
			"Use lowercase letters, digits and single hyphens.",
			"Use letras minúsculas, números e hífens simples.")
	case "category":
		return locale.Pick(lang, "Unknown category.", "Categoria inválida.")
	case "status":
		return locale.Pick(lang, "Unknown status.", "Status inválido.")
	case "http_url":
		return locale.Pick(lang, "Must be an http(s) URL.", "Informe uma URL http(s) válida.")
	}
	return locale.Pick(lang, "Invalid value.", "Valor inválido.")
}

func (in *TechnologyInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Category = strings.TrimSpace(in.Category)
	in.Description = strings.TrimSpace(in.Description)
	in.Image = strings.TrimSpace(in.Image)
	in.Slug = normalizeSlug(in.Slug, in.Name, "")
}

func (in *ModuleInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = normalizeSlug(in.Slug, in.Title, "")
}

func (in *PostInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Concept = strings.TrimSpace(in.Concept)
	in.Summary = strings.TrimSpace(in.Summary)
	in.Slug = normalizeSlug(in.Slug, in.Title, slug.DefaultFallback)
}

// normalizeSlug slugifies the explicit slug when given, otherwise the title.
func normalizeSlug(explicit, title, fallback string) string {
	if strings.TrimSpace(explicit) != "" {
		return slug.NormalizeWithFallback(explicit, fallback)
	}
	return slug.NormalizeWithFallback(title, fallback)
}

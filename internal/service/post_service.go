package service

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/devbook/internal/content"
	"github.com/devbook/internal/db"
	"github.com/devbook/internal/locale"
	"github.com/devbook/internal/publish"
)

// PostService wraps post related database operations.
type PostService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewPostService creates a PostService instance.
func NewPostService(gdb *gorm.DB) *PostService {
	return &PostService{db: gdb, now: time.Now}
}

// ListByModule returns every post of a module, newest first.
func (s *PostService) ListByModule(ctx context.Context, moduleID uint) ([]db.Post, error) {
	if err := s.ensureModule(ctx, moduleID); err != nil {
		return nil, err
	}
	var posts []db.Post
	if err := s.db.WithContext(ctx).
		Where("module_id = ?", moduleID).
		Order("created_at desc").
		Order("id desc").
		Find(&posts).Error; err != nil {
		return nil, storageErr("list posts", err)
	}
	return posts, nil
}

func (s *PostService) Get(ctx context.Context, id uint) (*db.Post, error) {
	var post db.Post
	if err := s.db.WithContext(ctx).Preload("Module.Technology").First(&post, id).Error; err != nil {
		return nil, notFound("get post", err, ErrPostNotFound)
	}
	return &post, nil
}

// Create saves a new post. A missing status starts the post as a draft.
// See Update for the validation order.
func (s *PostService) Create(ctx context.Context, in PostInput) (*db.Post, error) {
	if in.Status == "" {
		in.Status = string(publish.StatusDraft)
	}
	return s.save(ctx, nil, in)
}

// Update replaces every field of post id with in, so status and isPublic are
// required. Shape errors are reported before the post or its module are
// looked up.
func (s *PostService) Update(ctx context.Context, id uint, in PostInput) (*db.Post, error) {
	return s.save(ctx, &id, in)
}

func (s *PostService) save(ctx context.Context, id *uint, in PostInput) (*db.Post, error) {
	in.normalize()
	body, err := validatePost(ctx, in)
	if err != nil {
		return nil, err
	}
	status, err := publish.ParseStatus(in.Status)
	if err != nil {
		return nil, err
	}

	var post db.Post
	if id != nil {
		if err := s.db.WithContext(ctx).First(&post, *id).Error; err != nil {
			return nil, notFound("get post", err, ErrPostNotFound)
		}
	}
	if err := s.ensureModule(ctx, in.ModuleID); err != nil {
		return nil, err
	}

	post.ModuleID = in.ModuleID
	post.Title = in.Title
	post.Slug = in.Slug
	post.Concept = in.Concept
	post.Summary = in.Summary
	post.Content = body
	post.IsPublic = *in.IsPublic
	post.Status = status
	post.PublishedAt = publish.Apply(post.PublishedAt, status, s.now())

	tx := s.db.WithContext(ctx)
	if id == nil {
		err = tx.Create(&post).Error
	} else {
		err = tx.Save(&post).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrModuleNotFound
		}
		return nil, storageErr("save post", err)
	}
	return &post, nil
}

// validatePost checks the scalar fields and the block content together so a
// single response lists every failing path.
func validatePost(ctx context.Context, in PostInput) (content.PostContent, error) {
	errs := &content.ValidationError{}
	errs.Merge("", validateInput(ctx, in))

	lang := locale.FromContext(ctx)
	var body content.PostContent
	if len(in.Content) == 0 {
		errs.Add("content", locale.Pick(lang, "Field is required.", "Campo obrigatório."))
	} else {
		parsed, err := content.Parse(in.Content, content.WithLanguage(lang))
		var verr *content.ValidationError
		switch {
		case errors.As(err, &verr):
			errs.Merge("content", verr)
		case err != nil:
			return content.PostContent{}, err
		default:
			body = parsed
		}
	}
	if err := errs.Err(); err != nil {
		return content.PostContent{}, err
	}
	return body, nil
}

// Delete removes a post.
func (s *PostService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&db.Post{}, id)
	if result.Error != nil {
		return storageErr("delete post", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}
	return nil
}

// PublicPost resolves a post by its slug path. Posts that are private or not
// published are reported as ErrPostNotFound, same as missing ones.
func (s *PostService) PublicPost(ctx context.Context, techSlug, moduleSlug, postSlug string) (*db.Post, error) {
	gdb := s.db.WithContext(ctx)

	var tech db.Technology
	if err := gdb.Where("slug = ?", techSlug).First(&tech).Error; err != nil {
		return nil, notFound("find technology", err, ErrPostNotFound)
	}
	var module db.Module
	if err := gdb.Where("technology_id = ? AND slug = ?", tech.ID, moduleSlug).First(&module).Error; err != nil {
		return nil, notFound("find module", err, ErrPostNotFound)
	}
	var post db.Post
	if err := gdb.Where("module_id = ? AND slug = ?", module.ID, postSlug).First(&post).Error; err != nil {
		return nil, notFound("find post", err, ErrPostNotFound)
	}
	if !post.Visible() {
		return nil, ErrPostNotFound
	}

	module.Technology = &tech
	post.Module = &module
	return &post, nil
}

// PublicTechnology loads a technology with its modules and their visible posts.
func (s *PostService) PublicTechnology(ctx context.Context, techSlug string) (*db.Technology, error) {
	var tech db.Technology
	err := s.db.WithContext(ctx).
		Preload("Modules", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("id asc")
		}).
		Preload("Modules.Posts", func(tx *gorm.DB) *gorm.DB {
			return tx.Where("is_public = ? AND status = ?", true, publish.StatusPublished).
				Order("published_at asc").
				Order("id asc")
		}).
		Where("slug = ?", techSlug).
		First(&tech).Error
	if err != nil {
		return nil, notFound("find technology", err, ErrTechnologyNotFound)
	}
	return &tech, nil
}

func (s *PostService) ensureModule(ctx context.Context, id uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&db.Module{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return storageErr("find module", err)
	}
	if count == 0 {
		return ErrModuleNotFound
	}
	return nil
}

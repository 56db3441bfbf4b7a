package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/devbook/internal/db"
)

// ModuleService wraps module related database operations.
type ModuleService struct {
	db *gorm.DB
}

// NewModuleService creates a ModuleService instance.
func NewModuleService(gdb *gorm.DB) *ModuleService {
	return &ModuleService{db: gdb}
}

// ListByTechnology returns the modules of a technology in creation order.
func (s *ModuleService) ListByTechnology(ctx context.Context, technologyID uint) ([]db.Module, error) {
	if err := s.ensureTechnology(ctx, technologyID); err != nil {
		return nil, err
	}
	var modules []db.Module
	if err := s.db.WithContext(ctx).
		Where("technology_id = ?", technologyID).
		Order("id asc").
		Find(&modules).Error; err != nil {
		return nil, storageErr("list modules", err)
	}
	return modules, nil
}

func (s *ModuleService) Get(ctx context.Context, id uint) (*db.Module, error) {
	var module db.Module
	if err := s.db.WithContext(ctx).Preload("Technology").First(&module, id).Error; err != nil {
		return nil, notFound("get module", err, ErrModuleNotFound)
	}
	return &module, nil
}

// Create adds a module under technologyID.
func (s *ModuleService) Create(ctx context.Context, technologyID uint, in ModuleInput) (*db.Module, error) {
	in.normalize()
	if errs := validateInput(ctx, in); errs != nil {
		return nil, errs
	}
	if err := s.ensureTechnology(ctx, technologyID); err != nil {
		return nil, err
	}

	module := db.Module{TechnologyID: technologyID, Title: in.Title, Slug: in.Slug}
	if err := s.db.WithContext(ctx).Create(&module).Error; err != nil {
		if errors.Is(err, gorm.ErrForeignKeyViolated) {
			return nil, ErrTechnologyNotFound
		}
		return nil, storageErr("create module", err)
	}
	return &module, nil
}

func (s *ModuleService) Update(ctx context.Context, id uint, patch ModulePatch) (*db.Module, error) {
	module, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in := ModuleInput{
		Title: pick(patch.Title, module.Title),
		Slug:  pick(patch.Slug, module.Slug),
	}
	in.normalize()
	if errs := validateInput(ctx, in); errs != nil {
		return nil, errs
	}

	if err := s.db.WithContext(ctx).Model(&db.Module{}).Where("id = ?", id).
		Updates(map[string]any{"title": in.Title, "slug": in.Slug}).Error; err != nil {
		return nil, storageErr("update module", err)
	}
	module.Title = in.Title
	module.Slug = in.Slug
	return module, nil
}

// Delete removes a module and its posts.
func (s *ModuleService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&db.Module{}, id)
	if result.Error != nil {
		return storageErr("delete module", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrModuleNotFound
	}
	return nil
}

func (s *ModuleService) ensureTechnology(ctx context.Context, id uint) error {
	var count int64
	if err := s.db.WithContext(ctx).Model(&db.Technology{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return storageErr("find technology", err)
	}
	if count == 0 {
		return ErrTechnologyNotFound
	}
	return nil
}

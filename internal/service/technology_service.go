package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/devbook/internal/db"
)

// TechnologyService wraps technology related database operations.
type TechnologyService struct {
	db *gorm.DB
}

// NewTechnologyService creates a TechnologyService instance.
func NewTechnologyService(gdb *gorm.DB) *TechnologyService {
	return &TechnologyService{db: gdb}
}

// List returns every technology ordered by name.
func (s *TechnologyService) List(ctx context.Context) ([]db.Technology, error) {
	var techs []db.Technology
	if err := s.db.WithContext(ctx).Order("name asc").Order("id asc").Find(&techs).Error; err != nil {
		return nil, storageErr("list technologies", err)
	}
	return techs, nil
}

func (s *TechnologyService) Get(ctx context.Context, id uint) (*db.Technology, error) {
	var tech db.Technology
	if err := s.db.WithContext(ctx).First(&tech, id).Error; err != nil {
		return nil, notFound("get technology", err, ErrTechnologyNotFound)
	}
	return &tech, nil
}

func (s *TechnologyService) GetBySlug(ctx context.Context, slug string) (*db.Technology, error) {
	var tech db.Technology
	if err := s.db.WithContext(ctx).Where("slug = ?", slug).First(&tech).Error; err != nil {
		return nil, notFound("get technology", err, ErrTechnologyNotFound)
	}
	return &tech, nil
}

// Create validates in and inserts a technology. The slug is derived from
// the name when empty.
func (s *TechnologyService) Create(ctx context.Context, in TechnologyInput) (*db.Technology, error) {
	in.normalize()
	if errs := validateInput(ctx, in); errs != nil {
		return nil, errs
	}

	tech := db.Technology{
		Name:        in.Name,
		Slug:        in.Slug,
		Category:    in.Category,
		Description: in.Description,
		Image:       in.Image,
	}
	if err := s.db.WithContext(ctx).Create(&tech).Error; err != nil {
		return nil, storageErr("create technology", err)
	}
	return &tech, nil
}

// Update applies patch over the stored technology and validates the result.
func (s *TechnologyService) Update(ctx context.Context, id uint, patch TechnologyPatch) (*db.Technology, error) {
	tech, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	in := TechnologyInput{
		Name:        pick(patch.Name, tech.Name),
		Slug:        pick(patch.Slug, tech.Slug),
		Category:    pick(patch.Category, tech.Category),
		Description: pick(patch.Description, tech.Description),
		Image:       pick(patch.Image, tech.Image),
	}
	in.normalize()
	if errs := validateInput(ctx, in); errs != nil {
		return nil, errs
	}

	tech.Name = in.Name
	tech.Slug = in.Slug
	tech.Category = in.Category
	tech.Description = in.Description
	tech.Image = in.Image
	if err := s.db.WithContext(ctx).Save(tech).Error; err != nil {
		return nil, storageErr("update technology", err)
	}
	return tech, nil
}

// Delete removes a technology together with its modules and posts.
func (s *TechnologyService) Delete(ctx context.Context, id uint) error {
	result := s.db.WithContext(ctx).Delete(&db.Technology{}, id)
	if result.Error != nil {
		return storageErr("delete technology", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrTechnologyNotFound
	}
	return nil
}

func pick(patch *string, current string) string {
	if patch == nil {
		return current
	}
	return *patch
}

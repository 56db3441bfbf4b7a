package db

import (
	"time"

	"github.com/devbook/internal/content"
	"github.com/devbook/internal/publish"
)

// Post is a block-structured article. Slugs are unique per module and the
// whole record is replaced on every save.
type Post struct {
	ID          uint                `gorm:"primaryKey" json:"id"`
	ModuleID    uint                `gorm:"not null;uniqueIndex:idx_posts_module_slug" json:"moduleId"`
	Module      *Module             `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"module,omitempty"`
	Title       string              `gorm:"not null" json:"title"`
	Slug        string              `gorm:"not null;uniqueIndex:idx_posts_module_slug" json:"slug"`
	Concept     string              `gorm:"type:text;not null" json:"concept"`
	Summary     string              `gorm:"type:text;not null" json:"summary"`
	Content     content.PostContent `gorm:"type:text;not null" json:"content"`
	IsPublic    bool                `gorm:"not null;default:false" json:"isPublic"`
	Status      publish.Status      `gorm:"type:text;not null;default:DRAFT;index" json:"status"`
	PublishedAt *time.Time          `json:"publishedAt"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
}

// Visible reports whether anonymous readers may see the post.
func (p Post) Visible() bool {
	return publish.Visible(p.Status, p.IsPublic)
}

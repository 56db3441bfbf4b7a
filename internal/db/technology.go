package db

import "time"

// Technology is the top of the content tree. Deleting it removes its
// modules and, through them, their posts.
type Technology struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"not null" json:"name"`
	Slug        string    `gorm:"uniqueIndex;not null" json:"slug"`
	Category    string    `gorm:"not null;index" json:"category"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Image       string    `json:"image"`
	Modules     []Module  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"modules,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Module groups posts inside a technology. Slugs are unique per technology.
type Module struct {
	ID           uint        `gorm:"primaryKey" json:"id"`
	TechnologyID uint        `gorm:"not null;uniqueIndex:idx_modules_technology_slug" json:"technologyId"`
	Technology   *Technology `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"technology,omitempty"`
	Title        string      `gorm:"not null" json:"title"`
	Slug         string      `gorm:"not null;uniqueIndex:idx_modules_technology_slug" json:"slug"`
	Posts        []Post      `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"posts,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
	UpdatedAt    time.Time   `json:"updatedAt"`
}

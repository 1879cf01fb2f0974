package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category groups entries. A disabled category stays resolvable for existing
// entries but is hidden from listings.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_user_title" json:"user_id"`
	Title     string    `gorm:"type:varchar(255);not null" json:"title"`
	TitleKey  string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_categories_user_title" json:"-"`
	Disabled  bool      `gorm:"not null;default:false" json:"disabled"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null" json:"updated_at"`

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"subcategories,omitempty"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	c.TitleKey = TitleKey(c.Title)

	now := time.Now()
	if c.CreatedAt.IsZero() {
		c.CreatedAt = now
	}
	if c.UpdatedAt.IsZero() {
		c.UpdatedAt = now
	}

	if c.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	return ValidateTitle(c.Title)
}

func (Category) TableName() string {
	return "categories"
}

// Subcategory belongs to exactly one category.
type Subcategory struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	CategoryID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_subcategories_category_title" json:"category_id"`
	Title      string    `gorm:"type:varchar(255);not null" json:"title"`
	TitleKey   string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_subcategories_category_title;index:idx_subcategories_title_key" json:"-"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt  time.Time `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"-"`
}

func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	s.TitleKey = TitleKey(s.Title)

	now := time.Now()
	if s.CreatedAt.IsZero() {
		s.CreatedAt = now
	}
	if s.UpdatedAt.IsZero() {
		s.UpdatedAt = now
	}

	if s.CategoryID == uuid.Nil {
		return errors.New("category ID is required")
	}
	return ValidateTitle(s.Title)
}

func (Subcategory) TableName() string {
	return "subcategories"
}

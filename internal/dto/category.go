package dto

import (
	"ledger-bot/internal/models"
)

type CreateCategoryRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

type CreateSubcategoryRequest struct {
	Title string `json:"title" validate:"required,max=255"`
}

// UpdateCategoryRequest changes only the fields that are present
type UpdateCategoryRequest struct {
	Title    *string `json:"title,omitempty" validate:"omitempty,min=1,max=255"`
	Disabled *bool   `json:"disabled,omitempty"`
}

type CategoryListResponse struct {
	Categories []models.Category `json:"categories"`
}

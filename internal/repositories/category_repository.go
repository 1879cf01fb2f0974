package repositories

import (
	"context"
	"errors"
	"fmt"

	"ledger-bot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryTitleTaken    = errors.New("category title already exists")
	ErrSubcategoryNotFound   = errors.New("subcategory not found")
	ErrSubcategoryTitleTaken = errors.New("subcategory title already exists in this category")
)

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if err := r.db.WithContext(ctx).Omit("Subcategories").Create(category).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCategoryTitleTaken
		}
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *categoryRepository) CreateSubcategory(ctx context.Context, subcategory *models.Subcategory) error {
	if err := r.db.WithContext(ctx).Omit("Category").Create(subcategory).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrSubcategoryTitleTaken
		}
		return fmt.Errorf("failed to create subcategory: %w", err)
	}
	return nil
}

// GetByID retrieves a category with its subcategories
func (r *categoryRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB { return db.Order("title ASC") }).
		First(&category, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category: %w", err)
	}
	return &category, nil
}

// GetSubcategoryByID retrieves a subcategory with its parent category
func (r *categoryRepository) GetSubcategoryByID(ctx context.Context, id uuid.UUID) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	if err := r.db.WithContext(ctx).Preload("Category").First(&subcategory, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, fmt.Errorf("failed to get subcategory: %w", err)
	}
	return &subcategory, nil
}

// GetByUserID lists a user's categories with their subcategories
func (r *categoryRepository) GetByUserID(ctx context.Context, userID uuid.UUID, includeDisabled bool) ([]models.Category, error) {
	query := r.db.WithContext(ctx).
		Preload("Subcategories", func(db *gorm.DB) *gorm.DB { return db.Order("title ASC") }).
		Where("user_id = ?", userID)
	if !includeDisabled {
		query = query.Where("disabled = ?", false)
	}

	var categories []models.Category
	if err := query.Order("title ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to get categories for user: %w", err)
	}
	return categories, nil
}

// FindByTitle matches a category title case-insensitively. Disabled
// categories still resolve.
func (r *categoryRepository) FindByTitle(ctx context.Context, userID uuid.UUID, title string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND title_key = ?", userID, models.TitleKey(title)).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by title: %w", err)
	}
	return &category, nil
}

// FindSubcategoryByTitle matches a subcategory title across all of a user's
// categories. When several categories hold the same subcategory title the
// oldest subcategory wins.
func (r *categoryRepository) FindSubcategoryByTitle(ctx context.Context, userID uuid.UUID, title string) (*models.Subcategory, error) {
	var subcategory models.Subcategory
	err := r.db.WithContext(ctx).
		Preload("Category").
		Where("title_key = ? AND category_id IN (?)", models.TitleKey(title),
			r.db.Model(&models.Category{}).Select("id").Where("user_id = ?", userID)).
		Order("created_at ASC").
		First(&subcategory).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrSubcategoryNotFound
		}
		return nil, fmt.Errorf("failed to find subcategory by title: %w", err)
	}
	return &subcategory, nil
}

// Update renames and/or toggles a category. Nil arguments are left as is.
func (r *categoryRepository) Update(ctx context.Context, id uuid.UUID, title *string, disabled *bool) error {
	updates := map[string]interface{}{}
	if title != nil {
		if err := models.ValidateTitle(*title); err != nil {
			return err
		}
		updates["title"] = *title
		updates["title_key"] = models.TitleKey(*title)
	}
	if disabled != nil {
		updates["disabled"] = *disabled
	}
	if len(updates) == 0 {
		return nil
	}

	result := r.db.WithContext(ctx).Model(&models.Category{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrCategoryTitleTaken
		}
		return fmt.Errorf("failed to update category: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoryNotFound
	}
	return nil
}

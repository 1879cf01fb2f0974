package services

import (
	"context"
	"fmt"
	"log/slog"

	ledgererrors "ledger-bot/internal/errors"
	"ledger-bot/internal/models"
	"ledger-bot/internal/repositories"

	"github.com/google/uuid"
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
	ledgerRepo   repositories.LedgerRepositoryInterface
	logger       *slog.Logger
}

func NewCategoryService(
	categoryRepo repositories.CategoryRepositoryInterface,
	ledgerRepo repositories.LedgerRepositoryInterface,
	logger *slog.Logger,
) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
		ledgerRepo:   ledgerRepo,
		logger:       logger,
	}
}

func (s *categoryService) CreateCategory(ctx context.Context, userID uuid.UUID, title string) (*models.Category, error) {
	category := &models.Category{UserID: userID, Title: title}
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, classifyManagementError(err)
	}
	return category, nil
}

// CreateSubcategory adds a subcategory to one of the user's categories
func (s *categoryService) CreateSubcategory(ctx context.Context, userID, categoryID uuid.UUID, title string) (*models.Subcategory, error) {
	category, err := s.ownedCategory(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	subcategory := &models.Subcategory{CategoryID: category.ID, Title: title}
	if err := s.categoryRepo.CreateSubcategory(ctx, subcategory); err != nil {
		return nil, classifyManagementError(err)
	}
	return subcategory, nil
}

func (s *categoryService) ListCategories(ctx context.Context, userID uuid.UUID, includeDisabled bool) ([]models.Category, error) {
	categories, err := s.categoryRepo.GetByUserID(ctx, userID, includeDisabled)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}

// UpdateCategory renames a category or switches it on or off. Disabled
// categories are hidden from listings but still match in commands.
func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID uuid.UUID, title *string, disabled *bool) (*models.Category, error) {
	if _, err := s.ownedCategory(ctx, userID, categoryID); err != nil {
		return nil, err
	}

	if err := s.categoryRepo.Update(ctx, categoryID, title, disabled); err != nil {
		return nil, classifyManagementError(err)
	}

	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, classifyManagementError(err)
	}
	return category, nil
}

// DeleteCategory removes a category, its subcategories and every entry filed
// under it, giving each entry's amount back to its account
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID uuid.UUID) error {
	if _, err := s.ownedCategory(ctx, userID, categoryID); err != nil {
		return err
	}

	if err := s.ledgerRepo.DeleteCategory(ctx, categoryID); err != nil {
		return classifyManagementError(err)
	}

	s.logger.InfoContext(ctx, "category deleted",
		slog.String("category_id", categoryID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}

// DeleteSubcategory removes a subcategory and reverses its entries
func (s *categoryService) DeleteSubcategory(ctx context.Context, userID, subcategoryID uuid.UUID) error {
	subcategory, err := s.categoryRepo.GetSubcategoryByID(ctx, subcategoryID)
	if err != nil {
		return classifyManagementError(err)
	}
	if subcategory.Category == nil || subcategory.Category.UserID != userID {
		return ledgererrors.NewLedgerError(ledgererrors.SubcategoryNotFound)
	}

	if err := s.ledgerRepo.DeleteSubcategory(ctx, subcategoryID); err != nil {
		return classifyManagementError(err)
	}

	s.logger.InfoContext(ctx, "subcategory deleted",
		slog.String("subcategory_id", subcategoryID.String()),
		slog.String("user_id", userID.String()),
	)
	return nil
}

func (s *categoryService) ownedCategory(ctx context.Context, userID, categoryID uuid.UUID) (*models.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, classifyManagementError(err)
	}
	if category.UserID != userID {
		return nil, ledgererrors.NewLedgerError(ledgererrors.CategoryNotFound)
	}
	return category, nil
}

package repositories

import (
	"context"
	"testing"

	"ledger-bot/internal/database"
	"ledger-bot/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type CategoryRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo CategoryRepositoryInterface
	ctx  context.Context
	user *models.User
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.ctx = context.Background()
	s.user = database.CreateTestUser(s.T(), s.db, 1001)
}

func TestCategoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

func (s *CategoryRepositorySuite) TestCreateAndGetWithSubcategories() {
	category := &models.Category{UserID: s.user.ID, Title: "Еда"}
	s.Require().NoError(s.repo.Create(s.ctx, category))
	s.Require().NoError(s.repo.CreateSubcategory(s.ctx, &models.Subcategory{CategoryID: category.ID, Title: "Рестораны"}))
	s.Require().NoError(s.repo.CreateSubcategory(s.ctx, &models.Subcategory{CategoryID: category.ID, Title: "Доставка"}))

	loaded, err := s.repo.GetByID(s.ctx, category.ID)

	s.Require().NoError(err)
	s.Require().Len(loaded.Subcategories, 2)
	s.Equal("Доставка", loaded.Subcategories[0].Title)
}

func (s *CategoryRepositorySuite) TestCreate_Duplicates() {
	category := database.CreateTestCategory(s.T(), s.db, s.user.ID, "Еда", "Доставка")

	s.ErrorIs(s.repo.Create(s.ctx, &models.Category{UserID: s.user.ID, Title: "ЕДА"}), ErrCategoryTitleTaken)
	s.ErrorIs(s.repo.CreateSubcategory(s.ctx, &models.Subcategory{CategoryID: category.ID, Title: "доставка"}), ErrSubcategoryTitleTaken)
}

func (s *CategoryRepositorySuite) TestSubcategoryTitleMayRepeatAcrossCategories() {
	database.CreateTestCategory(s.T(), s.db, s.user.ID, "Еда", "Прочее")
	other := database.CreateTestCategory(s.T(), s.db, s.user.ID, "Транспорт")

	s.NoError(s.repo.CreateSubcategory(s.ctx, &models.Subcategory{CategoryID: other.ID, Title: "Прочее"}))
}

func (s *CategoryRepositorySuite) TestFindByTitle_IncludesDisabled() {
	category := database.CreateTestCategory(s.T(), s.db, s.user.ID, "Еда")
	disabled := true
	s.Require().NoError(s.repo.Update(s.ctx, category.ID, nil, &disabled))

	found, err := s.repo.FindByTitle(s.ctx, s.user.ID, "еда")

	s.Require().NoError(err)
	s.True(found.Disabled)
}

func (s *CategoryRepositorySuite) TestFindSubcategoryByTitle() {
	category := database.CreateTestCategory(s.T(), s.db, s.user.ID, "Еда", "Доставка")

	sub, err := s.repo.FindSubcategoryByTitle(s.ctx, s.user.ID, "ДОСТАВКА")

	s.Require().NoError(err)
	s.Equal(category.ID, sub.CategoryID)
	s.Require().NotNil(sub.Category)
	s.Equal("Еда", sub.Category.Title)
}

func (s *CategoryRepositorySuite) TestFindSubcategoryByTitle_ScopedToUser() {
	other := database.CreateTestUser(s.T(), s.db, 2002)
	database.CreateTestCategory(s.T(), s.db, other.ID, "Еда", "Доставка")

	_, err := s.repo.FindSubcategoryByTitle(s.ctx, s.user.ID, "Доставка")

	s.ErrorIs(err, ErrSubcategoryNotFound)
}

func (s *CategoryRepositorySuite) TestGetByUserID_HidesDisabled() {
	database.CreateTestCategory(s.T(), s.db, s.user.ID, "Еда")
	hidden := database.CreateTestCategory(s.T(), s.db, s.user.ID, "Старое")
	disabled := true
	s.Require().NoError(s.repo.Update(s.ctx, hidden.ID, nil, &disabled))

	visible, err := s.repo.GetByUserID(s.ctx, s.user.ID, false)
	s.Require().NoError(err)
	s.Len(visible, 1)

	all, err := s.repo.GetByUserID(s.ctx, s.user.ID, true)
	s.Require().NoError(err)
	s.Len(all, 2)
}

func (s *CategoryRepositorySuite) TestUpdate_Rename() {
	category := database.CreateTestCategory(s.T(), s.db, s.user.ID, "Еда")
	title := "Продукты"

	s.Require().NoError(s.repo.Update(s.ctx, category.ID, &title, nil))

	found, err := s.repo.FindByTitle(s.ctx, s.user.ID, "продукты")
	s.Require().NoError(err)
	s.Equal(category.ID, found.ID)
}

func (s *CategoryRepositorySuite) TestUpdate_NotFound() {
	enabled := false
	s.ErrorIs(s.repo.Update(s.ctx, uuid.New(), nil, &enabled), ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestGetSubcategoryByID_NotFound() {
	_, err := s.repo.GetSubcategoryByID(s.ctx, uuid.New())
	s.ErrorIs(err, ErrSubcategoryNotFound)
}

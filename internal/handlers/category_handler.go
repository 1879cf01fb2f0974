package handlers

import (
	"net/http"
	"strconv"

	"ledger-bot/internal/dto"
	"ledger-bot/internal/errors"
	"ledger-bot/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler handles category and subcategory requests
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// CreateCategory handles POST /api/v1/categories
func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	category, err := h.categoryService.CreateCategory(c.Request().Context(), userID, req.Title)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, category)
}

// CreateSubcategory handles POST /api/v1/categories/:id/subcategories
func (h *CategoryHandler) CreateSubcategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, ok, err := getIDParam(c, "id")
	if !ok {
		return err
	}

	var req dto.CreateSubcategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	subcategory, err := h.categoryService.CreateSubcategory(c.Request().Context(), userID, categoryID, req.Title)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, subcategory)
}

// ListCategories handles GET /api/v1/categories. Disabled categories are
// included only with ?include_disabled=true.
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	includeDisabled, _ := strconv.ParseBool(c.QueryParam("include_disabled"))

	categories, err := h.categoryService.ListCategories(c.Request().Context(), userID, includeDisabled)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.CategoryListResponse{Categories: categories})
}

// UpdateCategory handles PATCH /api/v1/categories/:id
func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, ok, err := getIDParam(c, "id")
	if !ok {
		return err
	}

	var req dto.UpdateCategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}
	if req.Title == nil && req.Disabled == nil {
		return SendError(c, errors.ValidationRequiredField, errors.WithDetails("title or disabled is required"))
	}

	category, err := h.categoryService.UpdateCategory(c.Request().Context(), userID, categoryID, req.Title, req.Disabled)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, category)
}

// DeleteCategory handles DELETE /api/v1/categories/:id
func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	categoryID, ok, err := getIDParam(c, "id")
	if !ok {
		return err
	}

	if err := h.categoryService.DeleteCategory(c.Request().Context(), userID, categoryID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

// DeleteSubcategory handles DELETE /api/v1/subcategories/:id
func (h *CategoryHandler) DeleteSubcategory(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}

	subcategoryID, ok, err := getIDParam(c, "id")
	if !ok {
		return err
	}

	if err := h.categoryService.DeleteSubcategory(c.Request().Context(), userID, subcategoryID); err != nil {
		return SendServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

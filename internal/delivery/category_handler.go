package delivery

import (
	"errors"
	"net/http"
	"strconv"

	"category_service/internal/domain"
	"category_service/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type CategoryHandler struct {
	useCase usecase.CategoryUseCase
	log     *logrus.Logger
}

func NewCategoryHandler(uc usecase.CategoryUseCase, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *CategoryHandler) RegisterRoutes(router gin.IRouter) {
	categories := router.Group("/categories")
	{
		categories.GET("", h.ListCategories)
		categories.POST("", h.CreateCategory)
		categories.GET("/:id", h.GetCategoryByID)
		categories.PUT("/:id", h.UpdateCategory)
		categories.PATCH("/:id", h.UpdateCategory)
		categories.DELETE("/:id", h.DeleteCategory)
	}
}

// ListCategories does not pick a message for store failures; the error goes
// to gin and ErrorHandler answers.
func (h *CategoryHandler) ListCategories(c *gin.Context) {
	categories, err := h.useCase.ListCategories(c.Request.Context())
	if err != nil {
		h.log.Errorf("Failed to list categories: %v", err)
		_ = c.Error(err)
		return
	}

	h.log.Infof("Retrieved %d categories", len(categories))
	if categories == nil {
		categories = []domain.Category{}
	}
	EntityResponse(c, http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryByID(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	category, err := h.useCase.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			h.log.Warnf("Category ID %d not found", id)
			MessageResponse(c, http.StatusNotFound, NotFoundMessage(id))
			return
		}
		h.log.Errorf("Failed to get category by ID %d: %v", id, err)
		MessageResponse(c, http.StatusBadRequest, RetrieveFailedMessage(id))
		return
	}

	h.log.Infof("Category retrieved successfully: ID %d", id)
	EntityResponse(c, http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var category domain.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		h.log.Warnf("Failed to bind JSON for create category: %v", err)
		MessageResponse(c, http.StatusBadRequest, MsgInvalidCategory)
		return
	}
	if err := category.Validate(); err != nil {
		h.log.Warn("Rejected category with empty name")
		MessageResponse(c, http.StatusBadRequest, MsgInvalidCategory)
		return
	}

	if err := h.useCase.SaveCategory(c.Request.Context(), &category); err != nil {
		h.log.Errorf("Failed to create category '%s': %v", category.Name, err)
		_ = c.Error(err)
		return
	}

	h.log.Infof("Category created successfully: ID %d, Name %s", category.ID, category.Name)
	EntityResponse(c, http.StatusOK, category)
}

// UpdateCategory loads the stored record first, then validates the request
// body, then overwrites the stored name. The body's ID is ignored.
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	existing, err := h.useCase.GetCategoryByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			h.log.Warnf("Category ID %d not found for update", id)
			MessageResponse(c, http.StatusNotFound, UpdateNotFoundMessage(id))
			return
		}
		h.log.Errorf("Failed to load category ID %d for update: %v", id, err)
		MessageResponse(c, http.StatusBadRequest, UpdateFailedMessage(id))
		return
	}

	var updates domain.Category
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.log.Warnf("Failed to bind JSON for update category ID %d: %v", id, err)
		MessageResponse(c, http.StatusBadRequest, MsgInvalidCategory)
		return
	}
	if err := updates.Validate(); err != nil {
		h.log.Warnf("Rejected update for category ID %d with empty name", id)
		MessageResponse(c, http.StatusBadRequest, MsgInvalidCategory)
		return
	}

	existing.Name = updates.Name
	if err := h.useCase.SaveCategory(c.Request.Context(), existing); err != nil {
		h.log.Errorf("Failed to update category ID %d: %v", id, err)
		MessageResponse(c, http.StatusBadRequest, UpdateFailedMessage(id))
		return
	}

	h.log.Infof("Category updated successfully: ID %d", existing.ID)
	EntityResponse(c, http.StatusOK, existing)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	if _, err := h.useCase.GetCategoryByID(c.Request.Context(), id); err != nil {
		if errors.Is(err, domain.ErrCategoryNotFound) {
			h.log.Warnf("Category ID %d not found for delete", id)
			MessageResponse(c, http.StatusNotFound, NotFoundMessage(id))
			return
		}
		h.log.Errorf("Failed to load category ID %d for delete: %v", id, err)
		MessageResponse(c, http.StatusBadRequest, DeleteFailedMessage(id))
		return
	}

	if err := h.useCase.DeleteCategory(c.Request.Context(), id); err != nil {
		h.log.Errorf("Failed to delete category ID %d: %v", id, err)
		MessageResponse(c, http.StatusBadRequest, DeleteFailedMessage(id))
		return
	}

	h.log.Infof("Category deleted successfully: ID %d", id)
	MessageResponse(c, http.StatusOK, DeletedMessage(id))
}

func (h *CategoryHandler) parseID(c *gin.Context) (int, bool) {
	idStr := c.Param("id")
	id, err := strconv.Atoi(idStr)
	if err != nil {
		h.log.Warnf("Invalid category ID parameter: %s", idStr)
		MessageResponse(c, http.StatusBadRequest, MsgInvalidCategoryID)
		return 0, false
	}
	return id, true
}

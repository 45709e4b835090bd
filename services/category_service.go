package services

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/it22117250/ITPM-Project/models"
	"github.com/it22117250/ITPM-Project/repository"
)

type CategoryCreateRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type CategoryService struct {
	store repository.Store
}

func NewCategoryService(store repository.Store) *CategoryService {
	return &CategoryService{store: store}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *CategoryCreateRequest) (*models.Category, *ServiceError) {
	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := s.store.Categories().Create(ctx, category); err != nil {
		log.Printf("[CategoryService] Failed to create category: %v", err)
		return nil, storeError(err, "Category not found")
	}
	return category, nil
}

func (s *CategoryService) GetCategories(ctx context.Context) ([]models.Category, *ServiceError) {
	categories, err := s.store.Categories().FindAll(ctx)
	if err != nil {
		log.Printf("[CategoryService] Failed to fetch categories: %v", err)
		return nil, newServiceError(http.StatusInternalServerError, "Failed to fetch categories")
	}
	return categories, nil
}

func (s *CategoryService) GetCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, *ServiceError) {
	category, err := s.store.Categories().FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Category not found")
	}
	return category, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Category, *ServiceError) {
	delete(updates, "id")
	if len(updates) == 0 {
		return nil, newServiceError(http.StatusBadRequest, "No updatable fields provided")
	}
	if err := s.store.Categories().Update(ctx, id, updates); err != nil {
		return nil, storeError(err, "Category not found")
	}
	return s.GetCategoryByID(ctx, id)
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.store.Categories().Delete(ctx, id); err != nil {
		return storeError(err, "Category not found")
	}
	return nil
}

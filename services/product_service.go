package services

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/it22117250/ITPM-Project/models"
	"github.com/it22117250/ITPM-Project/repository"
)

type ProductCreateRequest struct {
	Name        string     `json:"name" binding:"required"`
	Description string     `json:"description"`
	Price       float64    `json:"price" binding:"required,min=0"`
	Quantity    int        `json:"quantity" binding:"min=0"`
	CategoryID  *uuid.UUID `json:"categoryId"`
	SupplierID  *uuid.UUID `json:"supplierId"`
}

type ProductListResponse struct {
	Products []models.Product `json:"products"`
	Meta     MetaData         `json:"meta"`
}

type ProductService struct {
	store repository.Store
}

func NewProductService(store repository.Store) *ProductService {
	return &ProductService{store: store}
}

// CreateProduct persists a new product with the next sequential slug.
func (s *ProductService) CreateProduct(ctx context.Context, req *ProductCreateRequest) (*models.Product, *ServiceError) {
	if req.Quantity < 0 {
		return nil, newServiceError(http.StatusBadRequest, "Quantity cannot be negative")
	}

	var product *models.Product
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		n, err := tx.Slugs().Next(ctx, models.ProductSlugPrefix)
		if err != nil {
			return err
		}
		p := &models.Product{
			ProductSlug: models.FormatSlug(models.ProductSlugPrefix, n),
			Name:        req.Name,
			Description: req.Description,
			Price:       req.Price,
			Quantity:    req.Quantity,
			CategoryID:  req.CategoryID,
			SupplierID:  req.SupplierID,
		}
		if err := tx.Products().Create(ctx, p); err != nil {
			return err
		}
		product = p
		return nil
	})
	if err != nil {
		log.Printf("[ProductService] Failed to create product: %v", err)
		return nil, storeError(err, "Product not found")
	}

	log.Printf("[ProductService] Product created slug=%s name=%s", product.ProductSlug, product.Name)
	return product, nil
}

// ListProducts retrieves paginated products
func (s *ProductService) ListProducts(ctx context.Context, page, limit int) (*ProductListResponse, *ServiceError) {
	products, total, err := s.store.Products().FindAll(ctx, page, limit)
	if err != nil {
		log.Printf("[ProductService] Failed to fetch products: %v", err)
		return nil, newServiceError(http.StatusInternalServerError, "Failed to fetch products")
	}
	return &ProductListResponse{
		Products: products,
		Meta: MetaData{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: calculateTotalPages(total, limit),
			HasMore:    total > int64(page*limit),
		},
	}, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, *ServiceError) {
	product, err := s.store.Products().FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Product not found")
	}
	return product, nil
}

// UpdateProduct applies a partial field update. The slug is immutable and
// silently dropped from the update map; quantity edits must stay
// non-negative.
func (s *ProductService) UpdateProduct(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Product, *ServiceError) {
	delete(updates, "productSlug")
	delete(updates, "product_slug")
	delete(updates, "id")

	if q, ok := updates["quantity"]; ok {
		if qty, ok := q.(float64); ok && qty < 0 {
			return nil, newServiceError(http.StatusBadRequest, "Quantity cannot be negative")
		}
	}
	if len(updates) == 0 {
		return nil, newServiceError(http.StatusBadRequest, "No updatable fields provided")
	}

	if err := s.store.Products().Update(ctx, id, updates); err != nil {
		return nil, storeError(err, "Product not found")
	}
	return s.GetProduct(ctx, id)
}

func (s *ProductService) DeleteProduct(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.store.Products().Delete(ctx, id); err != nil {
		return storeError(err, "Product not found")
	}
	log.Printf("[ProductService] Product deleted id=%s", id)
	return nil
}

package services

import (
	"context"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/it22117250/ITPM-Project/models"
	"github.com/it22117250/ITPM-Project/repository"
)

type SupplierCreateRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type SupplierService struct {
	store repository.Store
}

func NewSupplierService(store repository.Store) *SupplierService {
	return &SupplierService{store: store}
}

// CreateSupplier persists a new supplier with the next sequential slug.
func (s *SupplierService) CreateSupplier(ctx context.Context, req *SupplierCreateRequest) (*models.Supplier, *ServiceError) {
	var supplier *models.Supplier
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		n, err := tx.Slugs().Next(ctx, models.SupplierSlugPrefix)
		if err != nil {
			return err
		}
		sup := &models.Supplier{
			SupplierSlug: models.FormatSlug(models.SupplierSlugPrefix, n),
			Name:         req.Name,
			Email:        req.Email,
			Phone:        req.Phone,
			Address:      req.Address,
		}
		if err := tx.Suppliers().Create(ctx, sup); err != nil {
			return err
		}
		supplier = sup
		return nil
	})
	if err != nil {
		log.Printf("[SupplierService] Failed to create supplier: %v", err)
		return nil, storeError(err, "Supplier not found")
	}

	log.Printf("[SupplierService] Supplier created slug=%s name=%s", supplier.SupplierSlug, supplier.Name)
	return supplier, nil
}

func (s *SupplierService) GetSuppliers(ctx context.Context) ([]models.Supplier, *ServiceError) {
	suppliers, err := s.store.Suppliers().FindAll(ctx)
	if err != nil {
		log.Printf("[SupplierService] Failed to fetch suppliers: %v", err)
		return nil, newServiceError(http.StatusInternalServerError, "Failed to fetch suppliers")
	}
	return suppliers, nil
}

func (s *SupplierService) GetSupplierByID(ctx context.Context, id uuid.UUID) (*models.Supplier, *ServiceError) {
	supplier, err := s.store.Suppliers().FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Supplier not found")
	}
	return supplier, nil
}

// UpdateSupplier applies a partial field update. The slug is immutable.
func (s *SupplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, updates map[string]interface{}) (*models.Supplier, *ServiceError) {
	delete(updates, "supplierSlug")
	delete(updates, "supplier_slug")
	delete(updates, "id")
	if len(updates) == 0 {
		return nil, newServiceError(http.StatusBadRequest, "No updatable fields provided")
	}

	if err := s.store.Suppliers().Update(ctx, id, updates); err != nil {
		return nil, storeError(err, "Supplier not found")
	}
	return s.GetSupplierByID(ctx, id)
}

func (s *SupplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.store.Suppliers().Delete(ctx, id); err != nil {
		return storeError(err, "Supplier not found")
	}
	return nil
}

package services

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/it22117250/ITPM-Project/kafka"
	"github.com/it22117250/ITPM-Project/models"
	"github.com/it22117250/ITPM-Project/repository"
)

type LineItemRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

type CreateOrderRequest struct {
	Items         []LineItemRequest `json:"items" binding:"required,dive"`
	Status        string            `json:"status"`
	CustomerName  string            `json:"customerName" binding:"required"`
	Email         string            `json:"email"`
	Phone         string            `json:"phone"`
	Address       string            `json:"address"`
	City          string            `json:"city"`
	PostalCode    string            `json:"postalCode"`
	PaymentMethod string            `json:"paymentMethod"`
	Paid          bool              `json:"paid"`
	Amount        float64           `json:"amount"`
}

// UpdateOrderRequest is a partial update; nil fields are left untouched.
type UpdateOrderRequest struct {
	Status        *string  `json:"status"`
	CustomerName  *string  `json:"customerName"`
	Email         *string  `json:"email"`
	Phone         *string  `json:"phone"`
	Address       *string  `json:"address"`
	City          *string  `json:"city"`
	PostalCode    *string  `json:"postalCode"`
	PaymentMethod *string  `json:"paymentMethod"`
	Paid          *bool    `json:"paid"`
	Amount        *float64 `json:"amount"`
}

type OrderListResponse struct {
	Orders []models.Order `json:"orders"`
	Meta   MetaData       `json:"meta"`
}

type MetaData struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int64 `json:"total_pages"`
	HasMore    bool  `json:"has_more"`
}

// OrderAPI is the surface the order controller depends on.
type OrderAPI interface {
	CreateOrder(ctx context.Context, req *CreateOrderRequest) (*models.Order, *ServiceError)
	GetOrders(ctx context.Context, page, limit int) (*OrderListResponse, *ServiceError)
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, *ServiceError)
	UpdateOrder(ctx context.Context, id uuid.UUID, req *UpdateOrderRequest) (*models.Order, *ServiceError)
	DeleteOrder(ctx context.Context, id uuid.UUID) *ServiceError
	CompleteOrder(ctx context.Context, id uuid.UUID) (*models.Order, *ServiceError)
}

type OrderService struct {
	store    repository.Store
	producer kafka.ProducerAPI
}

// NewOrderService creates a new OrderService. producer may be nil; events
// are best-effort.
func NewOrderService(store repository.Store, producer kafka.ProducerAPI) *OrderService {
	return &OrderService{store: store, producer: producer}
}

// CreateOrder persists a new order with the next sequential slug. Slug
// issuance and the insert share one transaction so a failed insert never
// burns visible slug gaps across instances mid-flight.
func (s *OrderService) CreateOrder(ctx context.Context, req *CreateOrderRequest) (*models.Order, *ServiceError) {
	if len(req.Items) == 0 {
		return nil, newServiceError(http.StatusBadRequest, "At least one item is required")
	}
	items := make(models.LineItems, 0, len(req.Items))
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, newServiceError(http.StatusBadRequest, "Item quantity must be greater than zero")
		}
		items = append(items, models.LineItem{ProductID: item.ProductID, Quantity: item.Quantity})
	}

	status := req.Status
	if status == "" {
		status = models.StatusPending
	}
	if !models.ValidStatus(status) {
		return nil, newServiceError(http.StatusBadRequest, fmt.Sprintf("Invalid order status %q", status))
	}

	var order *models.Order
	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		n, err := tx.Slugs().Next(ctx, models.OrderSlugPrefix)
		if err != nil {
			return err
		}
		o := &models.Order{
			OrderSlug:     models.FormatSlug(models.OrderSlugPrefix, n),
			Status:        status,
			Items:         items,
			CustomerName:  req.CustomerName,
			Email:         req.Email,
			Phone:         req.Phone,
			Address:       req.Address,
			City:          req.City,
			PostalCode:    req.PostalCode,
			PaymentMethod: req.PaymentMethod,
			Paid:          req.Paid,
			Amount:        req.Amount,
		}
		if err := tx.Orders().Create(ctx, o); err != nil {
			return err
		}
		order = o
		return nil
	})
	if err != nil {
		log.Printf("[OrderService] Failed to create order: %v", err)
		return nil, storeError(err, "Order not found")
	}

	s.publishEvent("order.created", order)
	log.Printf("[OrderService] Order created slug=%s items=%d", order.OrderSlug, len(order.Items))
	return order, nil
}

// GetOrders retrieves paginated orders
func (s *OrderService) GetOrders(ctx context.Context, page, limit int) (*OrderListResponse, *ServiceError) {
	orders, total, err := s.store.Orders().FindAll(ctx, page, limit)
	if err != nil {
		log.Printf("[OrderService] Failed to fetch orders: %v", err)
		return nil, newServiceError(http.StatusInternalServerError, "Failed to fetch orders")
	}
	return &OrderListResponse{
		Orders: orders,
		Meta: MetaData{
			Page:       page,
			Limit:      limit,
			Total:      total,
			TotalPages: calculateTotalPages(total, limit),
			HasMore:    total > int64(page*limit),
		},
	}, nil
}

func (s *OrderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, *ServiceError) {
	order, err := s.store.Orders().FindByID(ctx, id)
	if err != nil {
		return nil, storeError(err, "Order not found")
	}
	return order, nil
}

// UpdateOrder applies a partial update. A status change to Delivered runs
// fulfillment first; if fulfillment fails nothing else is written. When
// fulfillment runs, its resulting status (Completed) is authoritative and
// the payload's Delivered value is discarded.
func (s *OrderService) UpdateOrder(ctx context.Context, id uuid.UUID, req *UpdateOrderRequest) (*models.Order, *ServiceError) {
	updates := map[string]interface{}{}
	if req.Status != nil {
		if !models.ValidStatus(*req.Status) {
			return nil, newServiceError(http.StatusBadRequest, fmt.Sprintf("Invalid order status %q", *req.Status))
		}
		updates["status"] = *req.Status
	}
	if req.CustomerName != nil {
		updates["customer_name"] = *req.CustomerName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.Address != nil {
		updates["address"] = *req.Address
	}
	if req.City != nil {
		updates["city"] = *req.City
	}
	if req.PostalCode != nil {
		updates["postal_code"] = *req.PostalCode
	}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.Paid != nil {
		updates["paid"] = *req.Paid
	}
	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}

	if req.Status != nil && *req.Status == models.StatusDelivered {
		if _, svcErr := s.CompleteOrder(ctx, id); svcErr != nil {
			return nil, svcErr
		}
		delete(updates, "status")
	}

	if len(updates) > 0 {
		if err := s.store.Orders().Update(ctx, id, updates); err != nil {
			log.Printf("[OrderService] Failed to update order %s: %v", id, err)
			return nil, storeError(err, "Order not found")
		}
	}

	return s.GetOrderByID(ctx, id)
}

// DeleteOrder removes an order without touching product stock.
func (s *OrderService) DeleteOrder(ctx context.Context, id uuid.UUID) *ServiceError {
	if err := s.store.Orders().Delete(ctx, id); err != nil {
		return storeError(err, "Order not found")
	}
	log.Printf("[OrderService] Order deleted id=%s", id)
	return nil
}

// CompleteOrder fulfills an order: every line item's stock check and
// decrement plus the status flip to Completed happen in one transaction, so
// a failure on any item leaves every product quantity untouched.
func (s *OrderService) CompleteOrder(ctx context.Context, id uuid.UUID) (*models.Order, *ServiceError) {
	var completed *models.Order
	var svcErr *ServiceError

	err := s.store.Transaction(ctx, func(tx repository.Store) error {
		order, err := tx.Orders().FindByIDForUpdate(ctx, id)
		if err != nil {
			svcErr = storeError(err, "Order not found")
			return err
		}
		if order.Status == models.StatusDelivered || order.Status == models.StatusCompleted {
			svcErr = newServiceError(http.StatusBadRequest, "Order is already completed")
			return svcErr
		}

		for _, item := range order.Items {
			product, err := tx.Products().FindByID(ctx, item.ProductID)
			if err != nil {
				svcErr = storeError(err, fmt.Sprintf("Product with ID %s not found", item.ProductID))
				return err
			}
			if product.Quantity < item.Quantity {
				svcErr = newServiceError(http.StatusBadRequest,
					fmt.Sprintf("Insufficient quantity for product %s", product.Name))
				return svcErr
			}
			if err := tx.Products().DecrementQuantity(ctx, item.ProductID, item.Quantity); err != nil {
				svcErr = storeError(err, fmt.Sprintf("Product with ID %s not found", item.ProductID))
				return err
			}
		}

		if err := tx.Orders().UpdateStatus(ctx, order.ID, models.StatusCompleted); err != nil {
			return err
		}
		order.Status = models.StatusCompleted
		completed = order
		return nil
	})
	if err != nil {
		if svcErr == nil {
			log.Printf("[OrderService] Fulfillment failed for order %s: %v", id, err)
			svcErr = newServiceError(http.StatusInternalServerError, "Failed to complete order")
		}
		return nil, svcErr
	}

	s.publishEvent("order.completed", completed)
	log.Printf("[OrderService] Order fulfilled slug=%s", completed.OrderSlug)
	return completed, nil
}

// publishEvent emits an order event; failures are logged, never surfaced.
func (s *OrderService) publishEvent(eventType string, order *models.Order) {
	if s.producer == nil || order == nil {
		return
	}
	evt := models.OrderEvent{
		Type:      eventType,
		OrderID:   order.ID.String(),
		OrderSlug: order.OrderSlug,
		Status:    order.Status,
		Timestamp: time.Now().UTC(),
	}
	if err := s.producer.PublishOrderEvent(evt); err != nil {
		log.Printf("[OrderService] Failed to publish %s event for order %s: %v", eventType, order.OrderSlug, err)
	}
}

func calculateTotalPages(total int64, limit int) int64 {
	if limit == 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}

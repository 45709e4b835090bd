package services

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/it22117250/ITPM-Project/models"
	"github.com/stretchr/testify/assert"
)

func newOrderFixture() (*fakeStore, *OrderService) {
	store := newFakeStore()
	return store, NewOrderService(store, nil)
}

func TestCreateOrder_FirstSlugIsORD001(t *testing.T) {
	store, svc := newOrderFixture()
	p := store.addProduct("Widget", 10)

	order, svcErr := svc.CreateOrder(context.Background(), &CreateOrderRequest{
		CustomerName: "Nimal Perera",
		Items:        []LineItemRequest{{ProductID: p.ID, Quantity: 1}},
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, "ORD001", order.OrderSlug)
	assert.Equal(t, models.StatusPending, order.Status)
}

func TestCreateOrder_SlugsAreMonotonic(t *testing.T) {
	store, svc := newOrderFixture()
	p := store.addProduct("Widget", 100)

	seen := map[string]bool{}
	for i := 1; i <= 12; i++ {
		order, svcErr := svc.CreateOrder(context.Background(), &CreateOrderRequest{
			CustomerName: "Customer",
			Items:        []LineItemRequest{{ProductID: p.ID, Quantity: 1}},
		})
		assert.Nil(t, svcErr)
		assert.False(t, seen[order.OrderSlug], "slug %s issued twice", order.OrderSlug)
		seen[order.OrderSlug] = true
		assert.Equal(t, fmt.Sprintf("ORD%03d", i), order.OrderSlug)
	}
}

func TestCreateOrder_RequiresItems(t *testing.T) {
	_, svc := newOrderFixture()

	_, svcErr := svc.CreateOrder(context.Background(), &CreateOrderRequest{
		CustomerName: "Customer",
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}

func TestCreateOrder_RejectsUnknownStatus(t *testing.T) {
	store, svc := newOrderFixture()
	p := store.addProduct("Widget", 10)

	_, svcErr := svc.CreateOrder(context.Background(), &CreateOrderRequest{
		CustomerName: "Customer",
		Status:       "Teleported",
		Items:        []LineItemRequest{{ProductID: p.ID, Quantity: 1}},
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusBadRequest, svcErr.StatusCode)
}

func TestCompleteOrder_DecrementsStockAndMarksCompleted(t *testing.T) {
	store, svc := newOrderFixture()
	a := store.addProduct("Product A", 10)
	b := store.addProduct("Product B", 5)
	order := store.addOrder(models.StatusPending, models.LineItems{
		{ProductID: a.ID, Quantity: 2},
		{ProductID: b.ID, Quantity: 3},
	})

	completed, svcErr := svc.CompleteOrder(context.Background(), order.ID)

	assert.Nil(t, svcErr)
	assert.Equal(t, models.StatusCompleted, completed.Status)
	assert.Equal(t, 8, store.products[a.ID].Quantity)
	assert.Equal(t, 2, store.products[b.ID].Quantity)
	assert.Equal(t, models.StatusCompleted, store.orders[order.ID].Status)
}

func TestCompleteOrder_NotFound(t *testing.T) {
	_, svc := newOrderFixture()

	_, svcErr := svc.CompleteOrder(context.Background(), uuid.New())

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
}

func TestCompleteOrder_SecondCallFailsWithoutSideEffects(t *testing.T) {
	store, svc := newOrderFixture()
	a := store.addProduct("Product A", 10)
	order := store.addOrder(models.StatusPending, models.LineItems{
		{ProductID: a.ID, Quantity: 2},
	})

	_, svcErr := svc.CompleteOrder(context.Background(), order.ID)
	assert.Nil(t, svcErr)
	assert.Equal(t, 8, store.products[a.ID].Quantity)

	_, svcErr = svc.CompleteOrder(context.Background(), order.ID)
	assert.NotNil(t, svcErr)
	assert.Equal(t, "Order is already completed", svcErr.Message)
	assert.Equal(t, 8, store.products[a.ID].Quantity, "second attempt must not touch stock")
}

func TestCompleteOrder_DeliveredOrderIsGuarded(t *testing.T) {
	store, svc := newOrderFixture()
	a := store.addProduct("Product A", 10)
	order := store.addOrder(models.StatusDelivered, models.LineItems{
		{ProductID: a.ID, Quantity: 2},
	})

	_, svcErr := svc.CompleteOrder(context.Background(), order.ID)

	assert.NotNil(t, svcErr)
	assert.Equal(t, "Order is already completed", svcErr.Message)
	assert.Equal(t, 10, store.products[a.ID].Quantity)
}

func TestCompleteOrder_InsufficientStockRollsBackEverything(t *testing.T) {
	store, svc := newOrderFixture()
	a := store.addProduct("Product A", 10)
	b := store.addProduct("Product B", 1)
	order := store.addOrder(models.StatusPending, models.LineItems{
		{ProductID: a.ID, Quantity: 2},
		{ProductID: b.ID, Quantity: 3}, // more than available
	})

	_, svcErr := svc.CompleteOrder(context.Background(), order.ID)

	assert.NotNil(t, svcErr)
	assert.Equal(t, "Insufficient quantity for product Product B", svcErr.Message)
	assert.Equal(t, 10, store.products[a.ID].Quantity, "earlier decrements must be rolled back")
	assert.Equal(t, 1, store.products[b.ID].Quantity)
	assert.Equal(t, models.StatusPending, store.orders[order.ID].Status)
}

func TestCompleteOrder_MissingProductNamesReference(t *testing.T) {
	store, svc := newOrderFixture()
	missing := uuid.New()
	order := store.addOrder(models.StatusPending, models.LineItems{
		{ProductID: missing, Quantity: 1},
	})

	_, svcErr := svc.CompleteOrder(context.Background(), order.ID)

	assert.NotNil(t, svcErr)
	assert.Equal(t, http.StatusNotFound, svcErr.StatusCode)
	assert.Contains(t, svcErr.Message, missing.String())
}

func TestUpdateOrder_DeliveredTriggersExactlyOneFulfillment(t *testing.T) {
	store, svc := newOrderFixture()
	a := store.addProduct("Product A", 10)
	order := store.addOrder(models.StatusShipped, models.LineItems{
		{ProductID: a.ID, Quantity: 4},
	})

	status := models.StatusDelivered
	city := "Colombo"
	updated, svcErr := svc.UpdateOrder(context.Background(), order.ID, &UpdateOrderRequest{
		Status: &status,
		City:   &city,
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, []string{models.StatusCompleted}, store.statusUpdates)
	assert.Equal(t, 6, store.products[a.ID].Quantity)
	// Fulfillment's status wins over the payload's Delivered.
	assert.Equal(t, models.StatusCompleted, updated.Status)
	assert.Equal(t, "Colombo", updated.City)
}

func TestUpdateOrder_NonDeliveredStatusSkipsFulfillment(t *testing.T) {
	store, svc := newOrderFixture()
	a := store.addProduct("Product A", 10)
	order := store.addOrder(models.StatusPending, models.LineItems{
		{ProductID: a.ID, Quantity: 4},
	})

	status := models.StatusProcessing
	updated, svcErr := svc.UpdateOrder(context.Background(), order.ID, &UpdateOrderRequest{
		Status: &status,
	})

	assert.Nil(t, svcErr)
	assert.Equal(t, 0, store.decrements, "no fulfillment expected")
	assert.Equal(t, models.StatusProcessing, updated.Status)
	assert.Equal(t, 10, store.products[a.ID].Quantity)
}

func TestUpdateOrder_FulfillmentFailureAbortsGenericUpdate(t *testing.T) {
	store, svc := newOrderFixture()
	a := store.addProduct("Product A", 1)
	order := store.addOrder(models.StatusPending, models.LineItems{
		{ProductID: a.ID, Quantity: 5},
	})

	status := models.StatusDelivered
	name := "Changed Name"
	_, svcErr := svc.UpdateOrder(context.Background(), order.ID, &UpdateOrderRequest{
		Status:       &status,
		CustomerName: &name,
	})

	assert.NotNil(t, svcErr)
	assert.Equal(t, 1, store.products[a.ID].Quantity)
	assert.NotEqual(t, "Changed Name", store.orders[order.ID].CustomerName)
	assert.Equal(t, models.StatusPending, store.orders[order.ID].Status)
}

func TestDeleteOrder_DoesNotRestoreStock(t *testing.T) {
	store, svc := newOrderFixture()
	a := store.addProduct("Product A", 10)
	order := store.addOrder(models.StatusPending, models.LineItems{
		{ProductID: a.ID, Quantity: 2},
	})

	_, svcErr := svc.CompleteOrder(context.Background(), order.ID)
	assert.Nil(t, svcErr)
	assert.Equal(t, 8, store.products[a.ID].Quantity)

	svcErr = svc.DeleteOrder(context.Background(), order.ID)
	assert.Nil(t, svcErr)
	assert.Equal(t, 8, store.products[a.ID].Quantity, "delete bypasses fulfillment invariants")
}

package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestLineItemsScanFromText(t *testing.T) {
	// Line items may arrive as a serialized text column and must come back
	// as structured data.
	id := uuid.New()
	raw := `[{"productId":"` + id.String() + `","quantity":3}]`

	var items LineItems
	assert.NoError(t, items.Scan(raw))
	assert.Len(t, items, 1)
	assert.Equal(t, id, items[0].ProductID)
	assert.Equal(t, 3, items[0].Quantity)

	assert.NoError(t, items.Scan([]byte(raw)))
	assert.Len(t, items, 1)
}

func TestLineItemsScanNil(t *testing.T) {
	var items LineItems
	assert.NoError(t, items.Scan(nil))
	assert.Empty(t, items)
}

func TestValidStatus(t *testing.T) {
	for _, s := range []string{StatusPending, StatusProcessing, StatusShipped, StatusDelivered, StatusCompleted, StatusCancelled} {
		assert.True(t, ValidStatus(s))
	}
	assert.False(t, ValidStatus("Archived"))
	assert.False(t, ValidStatus("pending"))
}

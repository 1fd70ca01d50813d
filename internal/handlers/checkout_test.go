package handlers

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/bsg-server/internal/models"
)

func validCheckoutRequest() checkoutRequest {
	return checkoutRequest{
		Email:    "ada@example.com",
		Phone:    "+2348000000000",
		Whatsapp: "+2348000000000",
		Shipping: models.Shipping{
			FirstName: "Ada",
			LastName:  "Obi",
			Address:   "1 Marina Rd",
			City:      "Lagos",
			State:     "Lagos",
			Country:   "Nigeria",
		},
		Items: []checkoutItemRequest{{ProductID: "p1", Quantity: 1}},
	}
}

func TestMissingFieldsValidRequest(t *testing.T) {
	req := validCheckoutRequest()
	assert.Empty(t, req.missingFields())
}

func TestMissingFieldsNamesEachAbsentField(t *testing.T) {
	req := validCheckoutRequest()
	req.Email = ""
	req.Phone = "  "
	req.Shipping.City = ""
	req.Items = nil

	missing := req.missingFields()
	assert.Contains(t, missing, "email")
	assert.Contains(t, missing, "phone")
	assert.Contains(t, missing, "shipping.city")
	assert.Contains(t, missing, "items")
	assert.NotContains(t, missing, "shipping.country")
}

func TestMissingFieldsPostalCodeOptional(t *testing.T) {
	req := validCheckoutRequest()
	req.Shipping.PostalCode = ""
	assert.Empty(t, req.missingFields())
}

func TestGenerateOrderIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^ORD-[A-Z0-9]{7}$`)

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id, err := generateOrderID()
		require.NoError(t, err)
		assert.Regexp(t, pattern, id)
		seen[id] = true
	}

	// Two identical checkouts must still yield distinct identifiers.
	assert.Len(t, seen, 100)
}

func TestIsDuplicateKeyError(t *testing.T) {
	assert.True(t, isDuplicateKeyError(errors.New(`pq: duplicate key value violates unique constraint "idx_orders_order_id"`)))
	assert.False(t, isDuplicateKeyError(errors.New("connection refused")))
}

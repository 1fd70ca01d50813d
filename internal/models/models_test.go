package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidOrderStatus(t *testing.T) {
	for _, status := range []string{"pending", "paid", "processing", "shipped", "delivered", "cancelled"} {
		assert.True(t, ValidOrderStatus(status), status)
	}
	for _, status := range []string{"", "refunded", "PAID", "complete"} {
		assert.False(t, ValidOrderStatus(status), status)
	}
}

func TestValidCategory(t *testing.T) {
	assert.True(t, ValidCategory("body-fragrance-male"))
	assert.True(t, ValidCategory("body-fragrance-female"))
	assert.True(t, ValidCategory("home-fragrance"))
	assert.False(t, ValidCategory("candles"))
	assert.False(t, ValidCategory(""))
}

func TestShippingInfoRoundTrip(t *testing.T) {
	order := Order{
		ShippingFirstName: "Ada",
		ShippingLastName:  "Obi",
		ShippingAddress:   "1 Marina Rd",
		ShippingCity:      "Lagos",
		ShippingState:     "Lagos",
		ShippingCountry:   "Nigeria",
		ShippingPostal:    "100001",
	}

	shipping := order.ShippingInfo()
	assert.Equal(t, "Ada", shipping.FirstName)
	assert.Equal(t, "100001", shipping.PostalCode)
}

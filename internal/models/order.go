package models

import (
	"github.com/google/uuid"
)

// Order lifecycle states.
const (
	OrderStatusPending    = "pending"
	OrderStatusPaid       = "paid"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidOrderStatus reports whether the value belongs to the six-member
// status enumeration.
func ValidOrderStatus(value string) bool {
	switch value {
	case OrderStatusPending, OrderStatusPaid, OrderStatusProcessing,
		OrderStatusShipped, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// Order is a settled checkout. Totals are computed server-side at creation
// from the items' snapshot prices and are never recomputed afterwards.
type Order struct {
	BaseModel
	OrderID           string      `gorm:"uniqueIndex" json:"orderId"`
	Email             string      `json:"email"`
	Phone             string      `json:"phone"`
	Whatsapp          string      `json:"whatsapp"`
	ShippingFirstName string      `json:"-"`
	ShippingLastName  string      `json:"-"`
	ShippingAddress   string      `json:"-"`
	ShippingCity      string      `json:"-"`
	ShippingState     string      `json:"-"`
	ShippingCountry   string      `json:"-"`
	ShippingPostal    string      `json:"-"`
	Notes             string      `json:"notes,omitempty"`
	PaymentReference  string      `json:"paymentReference,omitempty"`
	Status            string      `gorm:"index" json:"status"`
	TotalNGN          int64       `json:"totalNGN"`
	TotalUSD          int64       `json:"totalUSD"`
	Items             []OrderItem `json:"items,omitempty"`
}

// Shipping is the address block as the storefront and admin clients see it.
type Shipping struct {
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	PostalCode string `json:"postalCode,omitempty"`
}

// ShippingInfo assembles the flattened columns back into an address block.
func (o *Order) ShippingInfo() Shipping {
	return Shipping{
		FirstName:  o.ShippingFirstName,
		LastName:   o.ShippingLastName,
		Address:    o.ShippingAddress,
		City:       o.ShippingCity,
		State:      o.ShippingState,
		Country:    o.ShippingCountry,
		PostalCode: o.ShippingPostal,
	}
}

// OrderItem is one settled cart line. Prices are a snapshot taken at order
// creation, immutable even if the product's price changes later.
type OrderItem struct {
	BaseModel
	OrderID     uuid.UUID  `gorm:"type:uuid;index" json:"-"`
	ProductID   *uuid.UUID `gorm:"type:uuid" json:"productId"`
	ProductName string     `json:"productName"`
	ProductSlug string     `json:"slug,omitempty"`
	Quantity    int        `json:"quantity"`
	Size        string     `json:"size,omitempty"`
	PriceNGN    int64      `json:"priceNGN"`
	PriceUSD    int64      `json:"priceUSD"`
}

package handlers

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bsg-server/internal/models"
	"github.com/example/bsg-server/internal/pricing"
	"github.com/example/bsg-server/internal/services"
)

const (
	orderIDPrefix   = "ORD-"
	orderIDAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	orderIDLength   = 7

	// Order id uniqueness is probabilistic; on the off chance of an insert
	// conflict the settlement regenerates and retries.
	orderInsertAttempts = 3
)

// CheckoutHandler runs the order settlement workflow: authoritative
// re-pricing, payment verification, and transactional persistence.
type CheckoutHandler struct {
	db       *gorm.DB
	paystack *services.PaystackService
}

// NewCheckoutHandler constructs CheckoutHandler.
func NewCheckoutHandler(db *gorm.DB, paystack *services.PaystackService) *CheckoutHandler {
	return &CheckoutHandler{db: db, paystack: paystack}
}

type checkoutItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
}

type checkoutRequest struct {
	Email            string                `json:"email"`
	Phone            string                `json:"phone"`
	Whatsapp         string                `json:"whatsapp"`
	Shipping         models.Shipping       `json:"shipping"`
	Items            []checkoutItemRequest `json:"items"`
	Notes            string                `json:"notes"`
	PaymentReference string                `json:"paymentReference"`
}

// missingFields names the absent required fields, empty when valid.
func (r *checkoutRequest) missingFields() []string {
	var missing []string
	if strings.TrimSpace(r.Email) == "" {
		missing = append(missing, "email")
	}
	if strings.TrimSpace(r.Phone) == "" {
		missing = append(missing, "phone")
	}
	if strings.TrimSpace(r.Whatsapp) == "" {
		missing = append(missing, "whatsapp")
	}
	shippingFields := []struct {
		name  string
		value string
	}{
		{"shipping.firstName", r.Shipping.FirstName},
		{"shipping.lastName", r.Shipping.LastName},
		{"shipping.address", r.Shipping.Address},
		{"shipping.city", r.Shipping.City},
		{"shipping.state", r.Shipping.State},
		{"shipping.country", r.Shipping.Country},
	}
	for _, field := range shippingFields {
		if strings.TrimSpace(field.value) == "" {
			missing = append(missing, field.name)
		}
	}
	if len(r.Items) == 0 {
		missing = append(missing, "items")
	}
	return missing
}

// CreateOrder settles a verified checkout. The client's cart carries prices
// for display only: every line is re-priced here from the stored product.
func (h *CheckoutHandler) CreateOrder(c *fiber.Ctx) error {
	var req checkoutRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if missing := req.missingFields(); len(missing) > 0 {
		return fiber.NewError(fiber.StatusBadRequest,
			"Missing required fields: "+strings.Join(missing, ", "))
	}

	for _, item := range req.Items {
		if item.Quantity < 1 {
			return fiber.NewError(fiber.StatusBadRequest,
				fmt.Sprintf("Invalid quantity for product %s", item.ProductID))
		}
	}

	// A verified payment is a precondition for settlement; a failed or
	// unverifiable reference never produces an order.
	status := models.OrderStatusPending
	if req.PaymentReference != "" {
		if _, err := h.paystack.Verify(req.PaymentReference); err != nil {
			log.Printf("[Checkout] payment verification failed for %q: %v", req.PaymentReference, err)
			return fiber.NewError(fiber.StatusBadRequest, "Payment verification failed")
		}
		status = models.OrderStatusPaid
	}

	var (
		items []models.OrderItem
		lines []pricing.Line
	)
	for _, item := range req.Items {
		product, err := findProductByIDOrSlug(h.db, item.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusBadRequest, "Product not found: "+item.ProductID)
			}
			return err
		}

		if product.ComingSoon {
			return fiber.NewError(fiber.StatusBadRequest, "Product not yet available: "+product.Name)
		}

		unit := pricing.Resolve(product, item.Size)
		productID := product.ID
		items = append(items, models.OrderItem{
			ProductID:   &productID,
			ProductName: product.Name,
			ProductSlug: product.Slug,
			Quantity:    item.Quantity,
			Size:        item.Size,
			PriceNGN:    unit.NGN,
			PriceUSD:    unit.USD,
		})
		lines = append(lines, pricing.Line{Unit: unit, Quantity: item.Quantity})
	}

	total := pricing.Subtotal(lines)

	order := models.Order{
		Email:             req.Email,
		Phone:             req.Phone,
		Whatsapp:          req.Whatsapp,
		ShippingFirstName: req.Shipping.FirstName,
		ShippingLastName:  req.Shipping.LastName,
		ShippingAddress:   req.Shipping.Address,
		ShippingCity:      req.Shipping.City,
		ShippingState:     req.Shipping.State,
		ShippingCountry:   req.Shipping.Country,
		ShippingPostal:    req.Shipping.PostalCode,
		Notes:             req.Notes,
		PaymentReference:  req.PaymentReference,
		Status:            status,
		TotalNGN:          total.NGN,
		TotalUSD:          total.USD,
		Items:             items,
	}

	if err := h.insertOrder(&order); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success":   true,
		"orderId":   order.OrderID,
		"reference": req.PaymentReference,
		"message":   "Your order has been placed successfully!",
	})
}

// insertOrder persists the header and all items in one transaction so a
// partial item set can never survive. Id collisions retry with a fresh id.
func (h *CheckoutHandler) insertOrder(order *models.Order) error {
	var err error
	for attempt := 0; attempt < orderInsertAttempts; attempt++ {
		order.OrderID, err = generateOrderID()
		if err != nil {
			return err
		}

		err = h.db.Transaction(func(tx *gorm.DB) error {
			return tx.Create(order).Error
		})
		if err == nil {
			return nil
		}
		if !isDuplicateKeyError(err) {
			return err
		}
		log.Printf("[Checkout] order id collision on %s, retrying", order.OrderID)
		order.ID = uuid.Nil
	}
	return err
}

// generateOrderID returns the human-readable customer-facing reference:
// a fixed prefix plus a random upper-case alphanumeric suffix.
func generateOrderID() (string, error) {
	suffix := make([]byte, orderIDLength)
	for i := range suffix {
		n, err := rand.Int(rand.Reader, big.NewInt(int64(len(orderIDAlphabet))))
		if err != nil {
			return "", err
		}
		suffix[i] = orderIDAlphabet[n.Int64()]
	}
	return orderIDPrefix + string(suffix), nil
}

func isDuplicateKeyError(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) ||
		strings.Contains(err.Error(), "duplicate key value")
}

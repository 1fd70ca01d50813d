package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/example/bsg-server/internal/services"
)

// PaymentHandler exposes gateway verification to the storefront.
type PaymentHandler struct {
	paystack *services.PaystackService
}

// NewPaymentHandler constructs PaymentHandler.
func NewPaymentHandler(paystack *services.PaystackService) *PaymentHandler {
	return &PaymentHandler{paystack: paystack}
}

// VerifyPayment checks a transaction reference against the gateway. Upstream
// failure details are never forwarded to the client.
func (h *PaymentHandler) VerifyPayment(c *fiber.Ctx) error {
	reference := c.Params("reference")
	if reference == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Missing reference",
		})
	}

	data, err := h.paystack.Verify(reference)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Payment verification failed",
		})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Payment verified successfully",
		"data":    data,
	})
}

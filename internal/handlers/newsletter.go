package handlers

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/bsg-server/internal/models"
	"github.com/example/bsg-server/internal/utils"
)

// NewsletterHandler captures mailing-list signups.
type NewsletterHandler struct {
	db *gorm.DB
}

// NewNewsletterHandler constructs NewsletterHandler.
func NewNewsletterHandler(db *gorm.DB) *NewsletterHandler {
	return &NewsletterHandler{db: db}
}

type newsletterRequest struct {
	Email string `json:"email"`
}

// Subscribe upserts the normalized email. Subscribing twice is idempotent:
// the conflict on the unique email column is simply ignored.
func (h *NewsletterHandler) Subscribe(c *fiber.Ctx) error {
	var req newsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	email := utils.NormalizeEmail(req.Email)
	if !utils.ValidEmail(email) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Please enter a valid email address.",
		})
	}

	subscriber := models.NewsletterSubscriber{Email: email}
	if err := h.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&subscriber).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "You're in! We'll keep you updated on new arrivals and exclusive offers.",
	})
}

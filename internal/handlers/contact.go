package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bsg-server/internal/models"
	"github.com/example/bsg-server/internal/services"
	"github.com/example/bsg-server/internal/utils"
)

// ContactHandler persists contact-form submissions and relays them by email.
type ContactHandler struct {
	db     *gorm.DB
	resend *services.ResendService
}

// NewContactHandler constructs ContactHandler.
func NewContactHandler(db *gorm.DB, resend *services.ResendService) *ContactHandler {
	return &ContactHandler{db: db, resend: resend}
}

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// normalize trims every field in place and reports whether the required
// ones are still present. Whitespace-only input does not count as present.
func (r *contactRequest) normalize() bool {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = utils.NormalizeEmail(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
	return r.Name != "" && r.Email != "" && r.Subject != "" && r.Message != ""
}

// SubmitContact validates, persists, then best-effort notifies. The message
// is durable before any email is attempted, and email failure never
// escalates to request failure.
func (h *ContactHandler) SubmitContact(c *fiber.Ctx) error {
	var req contactRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if !req.normalize() {
		return fiber.NewError(fiber.StatusBadRequest,
			"Missing required fields: name, email, subject, message")
	}

	if !utils.ValidEmail(req.Email) {
		return fiber.NewError(fiber.StatusBadRequest, "Please enter a valid email address.")
	}

	record := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
		Read:    false,
	}
	if err := h.db.Create(&record).Error; err != nil {
		return err
	}

	go h.resend.NotifyContact(services.ContactNotification{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Thank you for your message. We will get back to you shortly. A confirmation has been sent to your email.",
	})
}

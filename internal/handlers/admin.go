package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bsg-server/internal/models"
)

// AdminHandler serves the dashboard's contact inbox and mailing list.
type AdminHandler struct {
	db *gorm.DB
}

// NewAdminHandler constructs AdminHandler.
func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{db: db}
}

// ListContacts returns all contact messages, newest first.
func (h *AdminHandler) ListContacts(c *fiber.Ctx) error {
	var messages []models.ContactMessage
	if err := h.db.Order("created_at desc").Find(&messages).Error; err != nil {
		return err
	}

	return c.JSON(messages)
}

// MarkContactRead flags a message as handled.
func (h *AdminHandler) MarkContactRead(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	result := h.db.Model(&models.ContactMessage{}).
		Where("id = ?", id).
		Update("read", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Message not found")
	}

	return c.JSON(fiber.Map{"success": true})
}

// ListNewsletter returns all subscribers, newest first.
func (h *AdminHandler) ListNewsletter(c *fiber.Ctx) error {
	var subscribers []models.NewsletterSubscriber
	if err := h.db.Order("created_at desc").Find(&subscribers).Error; err != nil {
		return err
	}

	return c.JSON(subscribers)
}

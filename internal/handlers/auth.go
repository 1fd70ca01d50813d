package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/example/bsg-server/internal/config"
	"github.com/example/bsg-server/internal/middleware"
	"github.com/example/bsg-server/internal/models"
	"github.com/example/bsg-server/internal/utils"
)

// AuthHandler authenticates the admin dashboard.
type AuthHandler struct {
	db  *gorm.DB
	cfg *config.Config
}

// NewAuthHandler constructs AuthHandler.
func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: db, cfg: cfg}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login exchanges admin credentials for a bearer token.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Email == "" || req.Password == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Email and password required")
	}

	var admin models.AdminUser
	if err := h.db.Where("email = ?", utils.NormalizeEmail(req.Email)).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
		}
		return err
	}

	if !utils.CheckPassword(admin.PasswordHash, req.Password) {
		return fiber.NewError(fiber.StatusUnauthorized, "Invalid email or password")
	}

	token, err := utils.GenerateToken(h.cfg.JWTSecret, admin.ID, admin.Email, h.cfg.TokenExpires)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Login failed")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"email": admin.Email,
	})
}

// Me returns the authenticated admin identity.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	_, email, ok := middleware.GetCurrentAdmin(c)
	if !ok {
		return fiber.NewError(fiber.StatusUnauthorized, "unauthorized")
	}

	return c.JSON(fiber.Map{"email": email})
}

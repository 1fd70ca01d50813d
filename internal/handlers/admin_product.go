package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bsg-server/internal/models"
	"github.com/example/bsg-server/internal/utils"
)

// AdminProductHandler manages the dashboard's product CRUD.
type AdminProductHandler struct {
	db *gorm.DB
}

// NewAdminProductHandler constructs AdminProductHandler.
func NewAdminProductHandler(db *gorm.DB) *AdminProductHandler {
	return &AdminProductHandler{db: db}
}

type adminSizeRequest struct {
	Size     string `json:"size"`
	Price    int64  `json:"price"`
	PriceUSD int64  `json:"priceUSD"`
}

type adminNotesRequest struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}

type adminProductRequest struct {
	Name             *string            `json:"name"`
	Slug             *string            `json:"slug"`
	Description      *string            `json:"description"`
	ShortDescription *string            `json:"shortDescription"`
	Price            *int64             `json:"price"`
	PriceUSD         *int64             `json:"priceUSD"`
	Currency         *string            `json:"currency"`
	Category         *string            `json:"category"`
	Subcategory      *string            `json:"subcategory"`
	Images           []string           `json:"images"`
	InStock          *bool              `json:"inStock"`
	StockQuantity    *int               `json:"stockQuantity"`
	Sizes            []adminSizeRequest `json:"sizes"`
	Notes            *adminNotesRequest `json:"notes"`
	Featured         *bool              `json:"featured"`
	New              *bool              `json:"new"`
	ComingSoon       *bool              `json:"comingSoon"`
	WeightGrams      *int               `json:"weightGrams"`
}

// ListProducts returns the full catalog, newest first.
func (h *AdminProductHandler) ListProducts(c *fiber.Ctx) error {
	var products []models.Product
	if err := h.db.Preload("Sizes", sizeOrder).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(toProductResponses(products))
}

// CreateProduct adds a catalog entry, deriving the slug from the name when
// none is supplied.
func (h *AdminProductHandler) CreateProduct(c *fiber.Ctx) error {
	var req adminProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Name == nil || *req.Name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "Missing required field: name")
	}
	if req.Category == nil || !models.ValidCategory(*req.Category) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category")
	}

	product := models.Product{
		Name:     *req.Name,
		Slug:     utils.Slugify(*req.Name),
		Category: *req.Category,
		Currency: "NGN",
		InStock:  true,
	}
	if req.Slug != nil && *req.Slug != "" {
		product.Slug = *req.Slug
	}
	applyProductRequest(&product, &req)

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&product).Error
	}); err != nil {
		return err
	}

	return c.Status(fiber.StatusCreated).JSON(toProductResponse(&product))
}

// UpdateProduct applies a partial update; sizes are replaced wholesale when
// the request carries them.
func (h *AdminProductHandler) UpdateProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var product models.Product
	if err := h.db.Preload("Sizes", sizeOrder).First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return err
	}

	var req adminProductRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Category != nil && !models.ValidCategory(*req.Category) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid category")
	}
	if req.Name != nil {
		product.Name = *req.Name
	}
	if req.Slug != nil {
		product.Slug = *req.Slug
	}
	if req.Category != nil {
		product.Category = *req.Category
	}
	replaceSizes := req.Sizes != nil
	applyProductRequest(&product, &req)

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if replaceSizes {
			if err := tx.Where("product_id = ?", product.ID).Delete(&models.ProductSize{}).Error; err != nil {
				return err
			}
		} else {
			product.Sizes = nil
		}
		return tx.Omit("CreatedAt").Save(&product).Error
	}); err != nil {
		return err
	}

	var saved models.Product
	if err := h.db.Preload("Sizes", sizeOrder).First(&saved, "id = ?", product.ID).Error; err != nil {
		return err
	}
	return c.JSON(toProductResponse(&saved))
}

// DeleteProduct removes a product and its size variants.
func (h *AdminProductHandler) DeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid id")
	}

	var product models.Product
	if err := h.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return err
	}

	if err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", id).Delete(&models.ProductSize{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Product{}, "id = ?", id).Error
	}); err != nil {
		return err
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// applyProductRequest copies the optional fields shared by create and update.
func applyProductRequest(product *models.Product, req *adminProductRequest) {
	if req.Description != nil {
		product.Description = *req.Description
	}
	if req.ShortDescription != nil {
		product.ShortDescription = *req.ShortDescription
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.PriceUSD != nil {
		product.PriceUSD = *req.PriceUSD
	}
	if req.Currency != nil {
		product.Currency = *req.Currency
	}
	if req.Subcategory != nil {
		product.Subcategory = *req.Subcategory
	}
	if req.Images != nil {
		product.Images = req.Images
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.Featured != nil {
		product.Featured = *req.Featured
	}
	if req.New != nil {
		product.New = *req.New
	}
	if req.ComingSoon != nil {
		product.ComingSoon = *req.ComingSoon
	}
	if req.WeightGrams != nil {
		product.WeightGrams = req.WeightGrams
	}
	if req.Notes != nil {
		product.NotesTop = req.Notes.Top
		product.NotesMiddle = req.Notes.Middle
		product.NotesBase = req.Notes.Base
	}
	if req.Sizes != nil {
		sizes := make([]models.ProductSize, 0, len(req.Sizes))
		for i, s := range req.Sizes {
			sizes = append(sizes, models.ProductSize{
				ProductID:    product.ID,
				Label:        s.Size,
				Price:        s.Price,
				PriceUSD:     s.PriceUSD,
				DisplayOrder: i,
			})
		}
		product.Sizes = sizes
	}
}

package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bsg-server/internal/models"
)

// ProductHandler serves the public storefront catalog.
type ProductHandler struct {
	db *gorm.DB
}

// NewProductHandler constructs ProductHandler.
func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

type sizeResponse struct {
	Size     string `json:"size"`
	Price    int64  `json:"price"`
	PriceUSD int64  `json:"priceUSD"`
}

type notesResponse struct {
	Top    []string `json:"top"`
	Middle []string `json:"middle"`
	Base   []string `json:"base"`
}

type productResponse struct {
	ID               uuid.UUID      `json:"id"`
	Name             string         `json:"name"`
	Slug             string         `json:"slug"`
	Description      string         `json:"description"`
	ShortDescription string         `json:"shortDescription"`
	Price            int64          `json:"price"`
	PriceUSD         int64          `json:"priceUSD"`
	Currency         string         `json:"currency"`
	Category         string         `json:"category"`
	Subcategory      string         `json:"subcategory,omitempty"`
	Images           []string       `json:"images"`
	InStock          bool           `json:"inStock"`
	StockQuantity    int            `json:"stockQuantity"`
	Sizes            []sizeResponse `json:"sizes,omitempty"`
	Notes            *notesResponse `json:"notes,omitempty"`
	Featured         bool           `json:"featured"`
	New              bool           `json:"new"`
	ComingSoon       bool           `json:"comingSoon"`
	WeightGrams      *int           `json:"weightGrams,omitempty"`
	CreatedAt        string         `json:"createdAt"`
}

func toProductResponse(p *models.Product) productResponse {
	resp := productResponse{
		ID:               p.ID,
		Name:             p.Name,
		Slug:             p.Slug,
		Description:      p.Description,
		ShortDescription: p.ShortDescription,
		Price:            p.Price,
		PriceUSD:         p.PriceUSD,
		Currency:         p.Currency,
		Category:         p.Category,
		Subcategory:      p.Subcategory,
		Images:           []string(p.Images),
		InStock:          p.InStock,
		StockQuantity:    p.StockQuantity,
		Featured:         p.Featured,
		New:              p.New,
		ComingSoon:       p.ComingSoon,
		WeightGrams:      p.WeightGrams,
		CreatedAt:        p.CreatedAt.Format("2006-01-02"),
	}
	if resp.Images == nil {
		resp.Images = []string{}
	}
	for _, s := range p.Sizes {
		resp.Sizes = append(resp.Sizes, sizeResponse{Size: s.Label, Price: s.Price, PriceUSD: s.PriceUSD})
	}
	if p.HasNotes() {
		resp.Notes = &notesResponse{
			Top:    []string(p.NotesTop),
			Middle: []string(p.NotesMiddle),
			Base:   []string(p.NotesBase),
		}
	}
	return resp
}

func toProductResponses(products []models.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}
	return out
}

// ListProducts returns the catalog with the shop page's optional filters.
func (h *ProductHandler) ListProducts(c *fiber.Ctx) error {
	query := h.db.Model(&models.Product{})

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	if c.Query("featured") == "true" {
		query = query.Where("featured = ?", true)
	}

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q := "%" + search + "%"
		query = query.Where("name ILIKE ? OR description ILIKE ? OR short_description ILIKE ?", q, q, q)
	}

	if minPrice := c.Query("minPrice"); minPrice != "" {
		if val, err := strconv.ParseInt(minPrice, 10, 64); err == nil {
			query = query.Where("price >= ?", val)
		}
	}

	if maxPrice := c.Query("maxPrice"); maxPrice != "" {
		if val, err := strconv.ParseInt(maxPrice, 10, 64); err == nil {
			query = query.Where("price <= ?", val)
		}
	}

	switch c.Query("sort") {
	case "price_asc":
		query = query.Order("price asc")
	case "price_desc":
		query = query.Order("price desc")
	default:
		query = query.Order("created_at desc")
	}

	var products []models.Product
	if err := query.Preload("Sizes", sizeOrder).Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(toProductResponses(products))
}

// ListFeatured returns the home page's featured selection.
func (h *ProductHandler) ListFeatured(c *fiber.Ctx) error {
	var products []models.Product
	if err := h.db.Where("featured = ?", true).
		Preload("Sizes", sizeOrder).
		Order("created_at desc").
		Find(&products).Error; err != nil {
		return err
	}

	return c.JSON(toProductResponses(products))
}

// GetProduct resolves a product by internal id or slug.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := findProductByIDOrSlug(h.db, c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}
		return err
	}

	return c.JSON(toProductResponse(product))
}

func sizeOrder(db *gorm.DB) *gorm.DB {
	return db.Order("display_order asc")
}

func findProductByIDOrSlug(db *gorm.DB, idOrSlug string) (*models.Product, error) {
	var product models.Product

	if id, err := uuid.Parse(idOrSlug); err == nil {
		err := db.Preload("Sizes", sizeOrder).First(&product, "id = ?", id).Error
		if err == nil {
			return &product, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := db.Preload("Sizes", sizeOrder).First(&product, "slug = ?", idOrSlug).Error; err != nil {
		return nil, err
	}
	return &product, nil
}

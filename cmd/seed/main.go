// Command seed provisions the admin account and a starter catalog so the
// storefront and dashboard have something to show on a fresh database.
package main

import (
	"log"
	"os"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/example/bsg-server/internal/config"
	"github.com/example/bsg-server/internal/database"
	"github.com/example/bsg-server/internal/models"
	"github.com/example/bsg-server/internal/utils"
)

type seedProduct struct {
	product models.Product
	sizes   []models.ProductSize
}

func main() {
	cfg := config.Load()
	db := database.Connect(cfg.DatabaseURL)

	seedAdmin(db)
	seedProducts(db)

	log.Println("Seed complete")
}

func seedAdmin(db *gorm.DB) {
	email := utils.NormalizeEmail(getenv("ADMIN_EMAIL", "admin@bsgfragrance.com"))
	password := getenv("ADMIN_PASSWORD", "admin123")

	hash, err := utils.HashPassword(password)
	if err != nil {
		log.Fatalf("failed to hash admin password: %v", err)
	}

	admin := models.AdminUser{Email: email, PasswordHash: hash}
	if err := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"password_hash"}),
	}).Create(&admin).Error; err != nil {
		log.Fatalf("failed to seed admin user: %v", err)
	}

	log.Printf("Admin user ready: %s", email)
}

func seedProducts(db *gorm.DB) {
	for _, entry := range starterCatalog() {
		var existing models.Product
		err := db.First(&existing, "slug = ?", entry.product.Slug).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			log.Fatalf("failed to check product %s: %v", entry.product.Slug, err)
		}

		entry.product.Sizes = entry.sizes
		if err := db.Create(&entry.product).Error; err != nil {
			log.Fatalf("failed to seed product %s: %v", entry.product.Slug, err)
		}
		log.Printf("Seeded product: %s", entry.product.Name)
	}
}

func starterCatalog() []seedProduct {
	return []seedProduct{
		{
			product: models.Product{
				Name:             "Midnight Velvet",
				Slug:             "midnight-velvet",
				Description:      "A sophisticated blend of deep oud, velvety rose, and warm amber.",
				ShortDescription: "Deep oud with velvety rose and warm amber",
				Price:            85000,
				PriceUSD:         95,
				Currency:         "NGN",
				Category:         models.CategoryBodyFragranceMale,
				Images:           []string{"/assets/products/midnight-velvet.jpg"},
				InStock:          true,
				StockQuantity:    15,
				NotesTop:         []string{"Bergamot", "Pink Pepper", "Cardamom"},
				NotesMiddle:      []string{"Rose", "Oud", "Saffron"},
				NotesBase:        []string{"Amber", "Sandalwood", "Musk"},
				Featured:         true,
			},
			sizes: []models.ProductSize{
				{Label: "30ml", Price: 45000, PriceUSD: 50, DisplayOrder: 0},
				{Label: "50ml", Price: 65000, PriceUSD: 72, DisplayOrder: 1},
				{Label: "100ml", Price: 85000, PriceUSD: 95, DisplayOrder: 2},
			},
		},
		{
			product: models.Product{
				Name:             "Lumière D'Or",
				Slug:             "lumiere-dor",
				Description:      "A radiant feminine fragrance that captures the golden hour.",
				ShortDescription: "Radiant jasmine and tuberose with precious woods",
				Price:            78000,
				PriceUSD:         87,
				Currency:         "NGN",
				Category:         models.CategoryBodyFragranceFemale,
				Images:           []string{"/assets/products/lumiere-dor.jpg"},
				InStock:          true,
				StockQuantity:    20,
				NotesTop:         []string{"Bergamot", "Mandarin", "Pear"},
				NotesMiddle:      []string{"Jasmine", "Tuberose", "Rose"},
				NotesBase:        []string{"Sandalwood", "Vanilla", "White Musk"},
				Featured:         true,
				New:              true,
			},
			sizes: []models.ProductSize{
				{Label: "30ml", Price: 42000, PriceUSD: 47, DisplayOrder: 0},
				{Label: "50ml", Price: 58000, PriceUSD: 65, DisplayOrder: 1},
				{Label: "100ml", Price: 78000, PriceUSD: 87, DisplayOrder: 2},
			},
		},
		{
			product: models.Product{
				Name:             "Casa Serena",
				Slug:             "casa-serena",
				Description:      "Transform your space with this calming home fragrance.",
				ShortDescription: "Calming lavender and cedarwood home diffuser",
				Price:            35000,
				PriceUSD:         39,
				Currency:         "NGN",
				Category:         models.CategoryHomeFragrance,
				Subcategory:      "diffuser",
				Images:           []string{"/assets/products/casa-serena.jpg"},
				InStock:          true,
				StockQuantity:    30,
				Featured:         true,
			},
		},
		{
			product: models.Product{
				Name:             "Sovereign Oud",
				Slug:             "sovereign-oud",
				Description:      "A majestic fragrance featuring the finest oud from the Middle East.",
				ShortDescription: "Rich oud with leather and spices",
				Price:            120000,
				PriceUSD:         133,
				Currency:         "NGN",
				Category:         models.CategoryBodyFragranceMale,
				Images:           []string{"/assets/products/sovereign-oud.jpg"},
				InStock:          true,
				StockQuantity:    8,
				NotesTop:         []string{"Saffron", "Cinnamon", "Cardamom"},
				NotesMiddle:      []string{"Oud", "Leather", "Rose"},
				NotesBase:        []string{"Amber", "Sandalwood", "Musk"},
				Featured:         true,
				New:              true,
			},
			sizes: []models.ProductSize{
				{Label: "30ml", Price: 65000, PriceUSD: 72, DisplayOrder: 0},
				{Label: "50ml", Price: 88000, PriceUSD: 98, DisplayOrder: 1},
				{Label: "100ml", Price: 120000, PriceUSD: 133, DisplayOrder: 2},
			},
		},
		{
			product: models.Product{
				Name:             "Ambre Noir Candle",
				Slug:             "ambre-noir-candle",
				Description:      "Luxury scented candle with warm amber, vanilla, and a hint of smoke.",
				ShortDescription: "Warm amber and vanilla scented candle",
				Price:            28000,
				PriceUSD:         31,
				Currency:         "NGN",
				Category:         models.CategoryHomeFragrance,
				Subcategory:      "candle",
				Images:           []string{"/assets/products/ambre-noir-candle.jpg"},
				InStock:          true,
				StockQuantity:    25,
			},
		},
		{
			product: models.Product{
				Name:             "Silk Dreams",
				Slug:             "silk-dreams",
				Description:      "Luxurious fabric fragrance that leaves your linens smelling divine.",
				ShortDescription: "Soft floral fabric fragrance",
				Price:            22000,
				PriceUSD:         24,
				Currency:         "NGN",
				Category:         models.CategoryHomeFragrance,
				Subcategory:      "fabric-fragrance",
				Images:           []string{"/assets/products/silk-dreams.jpg"},
				InStock:          false,
				StockQuantity:    0,
			},
		},
	}
}

func getenv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

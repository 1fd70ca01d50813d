package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/example/bsg-server/internal/models"
	"github.com/example/bsg-server/internal/services"
)

// openTestDB connects to the database named by TEST_DATABASE_URL and resets
// the tables these tests touch. Persistence tests skip when the variable is
// unset so the pure-logic suite still runs anywhere.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.Product{},
		&models.ProductSize{},
		&models.Order{},
		&models.OrderItem{},
		&models.NewsletterSubscriber{},
	))

	for _, table := range []string{"order_items", "orders", "product_sizes", "products", "newsletter_subscribers"} {
		require.NoError(t, db.Exec("DELETE FROM "+table).Error)
	}

	return db
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(fiber.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, 10000)
	require.NoError(t, err)
	return resp
}

func checkoutApp(db *gorm.DB) *fiber.App {
	app := fiber.New()
	handler := NewCheckoutHandler(db, services.NewPaystackService(""))
	app.Post("/checkout", handler.CreateOrder)
	return app
}

func settlementRequest(items ...checkoutItemRequest) checkoutRequest {
	req := validCheckoutRequest()
	req.Items = items
	return req
}

func TestCreateOrderUnknownProductPersistsNothing(t *testing.T) {
	db := openTestDB(t)
	app := checkoutApp(db)

	resp := postJSON(t, app, "/checkout", settlementRequest(
		checkoutItemRequest{ProductID: uuid.NewString(), Quantity: 1},
	))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var orders int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orders).Error)
	assert.Zero(t, orders)
}

func TestCreateOrderPersistsHeaderAndItemsWithRepricedTotals(t *testing.T) {
	db := openTestDB(t)
	app := checkoutApp(db)

	product := models.Product{
		Name:     "Midnight Velvet",
		Slug:     "midnight-velvet",
		Price:    85000,
		PriceUSD: 95,
		Currency: "NGN",
		Category: models.CategoryBodyFragranceMale,
		InStock:  true,
		Sizes: []models.ProductSize{
			{Label: "50ml", Price: 65000, PriceUSD: 72},
		},
	}
	require.NoError(t, db.Create(&product).Error)

	resp := postJSON(t, app, "/checkout", settlementRequest(
		checkoutItemRequest{ProductID: product.ID.String(), Quantity: 2, Size: "50ml"},
	))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var payload struct {
		Success bool   `json:"success"`
		OrderID string `json:"orderId"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	assert.True(t, payload.Success)
	assert.Regexp(t, `^ORD-[A-Z0-9]{7}$`, payload.OrderID)

	var orders []models.Order
	require.NoError(t, db.Preload("Items").Find(&orders).Error)
	require.Len(t, orders, 1)

	order := orders[0]
	assert.Equal(t, payload.OrderID, order.OrderID)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	require.Len(t, order.Items, 1)

	item := order.Items[0]
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "50ml", item.Size)
	assert.Equal(t, int64(65000), item.PriceNGN)
	assert.Equal(t, int64(72), item.PriceUSD)

	// Totals equal the sums over the persisted item snapshots.
	var sumNGN, sumUSD int64
	for _, it := range order.Items {
		sumNGN += it.PriceNGN * int64(it.Quantity)
		sumUSD += it.PriceUSD * int64(it.Quantity)
	}
	assert.Equal(t, int64(130000), order.TotalNGN)
	assert.Equal(t, int64(144), order.TotalUSD)
	assert.Equal(t, sumNGN, order.TotalNGN)
	assert.Equal(t, sumUSD, order.TotalUSD)
}

func TestCreateOrderOneItemRowPerLine(t *testing.T) {
	db := openTestDB(t)
	app := checkoutApp(db)

	product := models.Product{
		Name:     "Casa Serena",
		Slug:     "casa-serena",
		Price:    35000,
		PriceUSD: 39,
		Currency: "NGN",
		Category: models.CategoryHomeFragrance,
		InStock:  true,
		Sizes: []models.ProductSize{
			{Label: "30ml", Price: 20000, PriceUSD: 22},
			{Label: "50ml", Price: 30000, PriceUSD: 33},
		},
	}
	require.NoError(t, db.Create(&product).Error)

	resp := postJSON(t, app, "/checkout", settlementRequest(
		checkoutItemRequest{ProductID: product.Slug, Quantity: 1, Size: "30ml"},
		checkoutItemRequest{ProductID: product.Slug, Quantity: 3, Size: "50ml"},
	))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	var orders []models.Order
	require.NoError(t, db.Preload("Items").Find(&orders).Error)
	require.Len(t, orders, 1)
	assert.Len(t, orders[0].Items, 2)
	assert.Equal(t, int64(20000+3*30000), orders[0].TotalNGN)
	assert.Equal(t, int64(22+3*33), orders[0].TotalUSD)
}

func TestNewsletterSubscribeTwiceKeepsOneRow(t *testing.T) {
	db := openTestDB(t)

	app := fiber.New()
	app.Post("/newsletter", NewNewsletterHandler(db).Subscribe)

	for _, email := range []string{"ada@example.com", "  ADA@Example.com "} {
		resp := postJSON(t, app, "/newsletter", fiber.Map{"email": email})
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	var count int64
	require.NoError(t, db.Model(&models.NewsletterSubscriber{}).
		Where("email = ?", "ada@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var total int64
	require.NoError(t, db.Model(&models.NewsletterSubscriber{}).Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/example/bsg-server/internal/models"
)

// AdminOrderHandler serves the dashboard's order views. Status changes are
// single-field writes: no re-pricing and no inventory adjustment ever
// follows from them.
type AdminOrderHandler struct {
	db *gorm.DB
}

// NewAdminOrderHandler constructs AdminOrderHandler.
func NewAdminOrderHandler(db *gorm.DB) *AdminOrderHandler {
	return &AdminOrderHandler{db: db}
}

type orderItemResponse struct {
	ProductID   *uuid.UUID `json:"productId"`
	ProductName string     `json:"productName"`
	Slug        string     `json:"slug,omitempty"`
	Quantity    int        `json:"quantity"`
	Size        string     `json:"size,omitempty"`
	PriceNGN    int64      `json:"priceNGN"`
	PriceUSD    int64      `json:"priceUSD"`
}

type orderResponse struct {
	ID               uuid.UUID           `json:"id"`
	OrderID          string              `json:"orderId"`
	Email            string              `json:"email"`
	Phone            string              `json:"phone"`
	Whatsapp         string              `json:"whatsapp"`
	Shipping         models.Shipping     `json:"shipping"`
	Notes            string              `json:"notes,omitempty"`
	PaymentReference string              `json:"paymentReference,omitempty"`
	Status           string              `json:"status"`
	TotalNGN         int64               `json:"totalNGN"`
	TotalUSD         int64               `json:"totalUSD"`
	CreatedAt        time.Time           `json:"createdAt"`
	Items            []orderItemResponse `json:"items"`
}

func toOrderResponse(o *models.Order) orderResponse {
	resp := orderResponse{
		ID:               o.ID,
		OrderID:          o.OrderID,
		Email:            o.Email,
		Phone:            o.Phone,
		Whatsapp:         o.Whatsapp,
		Shipping:         o.ShippingInfo(),
		Notes:            o.Notes,
		PaymentReference: o.PaymentReference,
		Status:           o.Status,
		TotalNGN:         o.TotalNGN,
		TotalUSD:         o.TotalUSD,
		CreatedAt:        o.CreatedAt,
		Items:            make([]orderItemResponse, 0, len(o.Items)),
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, orderItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Slug:        item.ProductSlug,
			Quantity:    item.Quantity,
			Size:        item.Size,
			PriceNGN:    item.PriceNGN,
			PriceUSD:    item.PriceUSD,
		})
	}
	return resp
}

// ListOrders returns all orders, optionally filtered by exact status,
// newest first.
func (h *AdminOrderHandler) ListOrders(c *fiber.Ctx) error {
	query := h.db.Model(&models.Order{})
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Preload("Items").
		Order("created_at desc").
		Find(&orders).Error; err != nil {
		return err
	}

	out := make([]orderResponse, 0, len(orders))
	for i := range orders {
		out = append(out, toOrderResponse(&orders[i]))
	}
	return c.JSON(out)
}

// GetOrder resolves an order by internal id or public order reference.
func (h *AdminOrderHandler) GetOrder(c *fiber.Ctx) error {
	order, err := h.findOrder(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		return err
	}

	return c.JSON(toOrderResponse(order))
}

type updateStatusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus sets the order's status to one of the six enumerated values.
func (h *AdminOrderHandler) UpdateStatus(c *fiber.Ctx) error {
	var req updateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}

	if req.Status == "" {
		return fiber.NewError(fiber.StatusBadRequest, "status required")
	}
	if !models.ValidOrderStatus(req.Status) {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid status")
	}

	order, err := h.findOrder(c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}
		return err
	}

	if err := h.db.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Update("status", req.Status).Error; err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "status": req.Status})
}

func (h *AdminOrderHandler) findOrder(idOrRef string) (*models.Order, error) {
	var order models.Order

	if id, err := uuid.Parse(idOrRef); err == nil {
		err := h.db.Preload("Items").First(&order, "id = ?", id).Error
		if err == nil {
			return &order, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if err := h.db.Preload("Items").First(&order, "order_id = ?", idOrRef).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

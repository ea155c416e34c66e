package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bleu-pos/ingredient-service/internal/apperrors"
	"github.com/bleu-pos/ingredient-service/internal/sale"
	"github.com/bleu-pos/ingredient-service/internal/sale/dto"
)

type SaleHandler struct {
	uc     sale.UseCase
	logger *zap.Logger
}

func NewSaleHandler(uc sale.UseCase, log *zap.Logger) *SaleHandler {
	return &SaleHandler{
		uc:     uc,
		logger: log,
	}
}

// Deduct is called by the sales service after a transaction is confirmed.
// The whole cart is applied atomically; items without a recipe are skipped.
func (h *SaleHandler) Deduct(c *fiber.Ctx) error {
	var req dto.DeductSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.BadRequest("invalid request body")
	}

	for _, item := range req.CartItems {
		if item.Name == "" {
			return apperrors.BadRequest("cart item name is required")
		}
		if item.Quantity <= 0 {
			return apperrors.BadRequest("cart item quantity must be positive")
		}
	}

	if err := h.uc.DeductFromSale(c.UserContext(), req.CartItems); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Inventory deducted successfully."})
}

package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bleu-pos/ingredient-service/internal/apperrors"
	"github.com/bleu-pos/ingredient-service/internal/ingredient"
	"github.com/bleu-pos/ingredient-service/internal/ingredient/dto"
)

type IngredientHandler struct {
	uc     ingredient.UseCase
	logger *zap.Logger
}

func NewIngredientHandler(uc ingredient.UseCase, log *zap.Logger) *IngredientHandler {
	return &IngredientHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *IngredientHandler) List(c *fiber.Ctx) error {
	ingredients, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromModels(ingredients))
}

func (h *IngredientHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateIngredientInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.BadRequest("invalid request body")
	}

	ing, err := h.uc.Create(c.UserContext(), &input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(ing))
}

func (h *IngredientHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateIngredientInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.BadRequest("invalid request body")
	}

	ing, err := h.uc.Update(c.UserContext(), c.Params("ingredientId"), &input)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromModel(ing))
}

func (h *IngredientHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("ingredientId")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Ingredient deleted successfully"})
}

func (h *IngredientHandler) Count(c *fiber.Ctx) error {
	count, err := h.uc.Count(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"count": count})
}

func (h *IngredientHandler) StockStatusCounts(c *fiber.Ctx) error {
	counts, err := h.uc.StockStatusCounts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(counts)
}

func (h *IngredientHandler) LowStockAlerts(c *fiber.Ctx) error {
	alerts, err := h.uc.LowStockAlerts(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(alerts)
}

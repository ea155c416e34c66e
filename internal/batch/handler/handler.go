package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/bleu-pos/ingredient-service/internal/apperrors"
	"github.com/bleu-pos/ingredient-service/internal/batch"
	"github.com/bleu-pos/ingredient-service/internal/batch/dto"
)

type BatchHandler struct {
	uc     batch.UseCase
	logger *zap.Logger
}

func NewBatchHandler(uc batch.UseCase, log *zap.Logger) *BatchHandler {
	return &BatchHandler{
		uc:     uc,
		logger: log,
	}
}

func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var input dto.CreateBatchInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.BadRequest("invalid request body")
	}

	b, err := h.uc.Create(c.UserContext(), &input)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromModel(b))
}

func (h *BatchHandler) List(c *fiber.Ctx) error {
	batches, err := h.uc.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(dto.FromModels(batches))
}

func (h *BatchHandler) ListByIngredient(c *fiber.Ctx) error {
	batches, err := h.uc.ListByIngredient(c.UserContext(), c.Params("ingredientId"))
	if err != nil {
		return err
	}
	return c.JSON(dto.FromModels(batches))
}

func (h *BatchHandler) Update(c *fiber.Ctx) error {
	var input dto.UpdateBatchInput
	if err := c.BodyParser(&input); err != nil {
		return apperrors.BadRequest("invalid request body")
	}

	b, err := h.uc.Update(c.UserContext(), c.Params("batchId"), &input)
	if err != nil {
		return err
	}
	return c.JSON(dto.FromModel(b))
}

package batch

import (
	"context"

	"github.com/bleu-pos/ingredient-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, b *model.IngredientBatch) error
	FindByID(ctx context.Context, id string) (*model.IngredientBatch, error)
	FindAll(ctx context.Context) ([]model.IngredientBatch, error)
	FindByIngredient(ctx context.Context, ingredientID string) ([]model.IngredientBatch, error)
	Update(ctx context.Context, b *model.IngredientBatch) error
	UpdateStatus(ctx context.Context, id, status string) error
	CountByIngredient(ctx context.Context, ingredientID string) (int, error)
}

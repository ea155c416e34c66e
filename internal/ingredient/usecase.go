package ingredient

import (
	"context"

	"github.com/bleu-pos/ingredient-service/internal/ingredient/dto"
	"github.com/bleu-pos/ingredient-service/internal/model"
)

type UseCase interface {
	List(ctx context.Context) ([]model.Ingredient, error)
	Create(ctx context.Context, input *dto.CreateIngredientInput) (*model.Ingredient, error)
	Update(ctx context.Context, id string, input *dto.UpdateIngredientInput) (*model.Ingredient, error)
	Delete(ctx context.Context, id string) error

	Count(ctx context.Context) (int, error)
	StockStatusCounts(ctx context.Context) (*dto.StockStatusCounts, error)
	LowStockAlerts(ctx context.Context) ([]dto.LowStockAlert, error)
}

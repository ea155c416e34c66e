package batch

import (
	"context"

	"github.com/bleu-pos/ingredient-service/internal/batch/dto"
	"github.com/bleu-pos/ingredient-service/internal/model"
)

type UseCase interface {
	// Create persists a restock batch and adds its quantity to the parent
	// ingredient's amount, atomically.
	Create(ctx context.Context, input *dto.CreateBatchInput) (*model.IngredientBatch, error)

	// List and ListByIngredient recompute each batch's lifecycle status as a
	// side effect: stale statuses are corrected in place before the rows are
	// returned.
	List(ctx context.Context) ([]model.IngredientBatch, error)
	ListByIngredient(ctx context.Context, ingredientID string) ([]model.IngredientBatch, error)

	// Update applies a partial update. A quantity change is propagated to
	// the parent ingredient as a delta, never as an absolute value.
	Update(ctx context.Context, id string, input *dto.UpdateBatchInput) (*model.IngredientBatch, error)
}

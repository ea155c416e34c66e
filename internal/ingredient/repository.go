package ingredient

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/bleu-pos/ingredient-service/internal/ingredient/dto"
	"github.com/bleu-pos/ingredient-service/internal/model"
)

type Repository interface {
	FindAll(ctx context.Context) ([]model.Ingredient, error)
	FindByID(ctx context.Context, id string) (*model.Ingredient, error)
	ExistsByName(ctx context.Context, name, excludeID string) (bool, error)
	Create(ctx context.Context, ing *model.Ingredient) error
	Update(ctx context.Context, ing *model.Ingredient) error
	Delete(ctx context.Context, id string) (bool, error)

	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) (*dto.StockStatusCounts, error)
	FindLowStock(ctx context.Context) ([]model.Ingredient, error)

	// AddAmount applies a signed delta to an ingredient's stored amount.
	// Amounts may go negative; the threshold rule buckets them as
	// "Not Available" on the next recompute.
	AddAmount(ctx context.Context, id string, delta decimal.Decimal) error

	// RecomputeAllStatuses rewrites the status of every ingredient in one
	// pass using the same threshold table as status.ForQuantity.
	RecomputeAllStatuses(ctx context.Context) error
}

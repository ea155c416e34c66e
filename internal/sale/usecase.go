package sale

import (
	"context"

	"github.com/bleu-pos/ingredient-service/internal/sale/dto"
)

type UseCase interface {
	// DeductFromSale subtracts the recipe ingredients of each sold item from
	// stock and recomputes every ingredient's threshold status, all in one
	// transaction. Items without a recipe are skipped, not failed.
	DeductFromSale(ctx context.Context, items []dto.CartItem) error
}

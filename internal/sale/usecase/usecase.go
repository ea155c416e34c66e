package usecase

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bleu-pos/ingredient-service/internal/apperrors"
	"github.com/bleu-pos/ingredient-service/internal/sale"
	"github.com/bleu-pos/ingredient-service/internal/sale/dto"
	"github.com/bleu-pos/ingredient-service/internal/store"
)

type saleUseCase struct {
	scope  store.TransactionScope
	logger *zap.Logger
}

func NewSaleUseCase(scope store.TransactionScope, log *zap.Logger) sale.UseCase {
	return &saleUseCase{
		scope:  scope,
		logger: log,
	}
}

// DeductFromSale processes cart items in submitted order. Each item resolves
// product -> recipe -> ingredient requirements, scales by the sold quantity
// and subtracts from stock; amounts are allowed to go negative. After every
// item is applied, all ingredient statuses are recomputed in one bulk pass
// and the transaction commits. Any store failure rolls back the whole sale,
// so partial deduction is never visible.
func (uc *saleUseCase) DeductFromSale(ctx context.Context, items []dto.CartItem) error {
	err := uc.scope.Execute(ctx, func(repos store.Repositories) error {
		for _, item := range items {
			recipeID, err := repos.Catalog().FindRecipeIDByProduct(ctx, item.Name)
			if err != nil {
				return err
			}
			if recipeID == "" {
				uc.logger.Info("no recipe found for product, skipping deduction",
					zap.String("product_name", item.Name))
				continue
			}

			required, err := repos.Catalog().RecipeIngredients(ctx, recipeID)
			if err != nil {
				return err
			}

			qty := decimal.NewFromInt(int64(item.Quantity))
			for _, ri := range required {
				deduct := ri.Amount.Mul(qty)
				if err := repos.Ingredients().AddAmount(ctx, ri.IngredientID, deduct.Neg()); err != nil {
					return err
				}
				uc.logger.Info("deducted ingredient for sale",
					zap.String("ingredient_id", ri.IngredientID),
					zap.String("amount", deduct.String()),
					zap.String("unit", ri.Unit),
					zap.String("product_name", item.Name),
					zap.Int("quantity_sold", item.Quantity),
				)
			}
		}

		return repos.Ingredients().RecomputeAllStatuses(ctx)
	})
	if err != nil {
		uc.logger.Error("sale deduction failed, transaction rolled back", zap.Error(err))
		return apperrors.Internal("failed to update inventory", err)
	}
	return nil
}

package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bleu-pos/ingredient-service/internal/apperrors"
	"github.com/bleu-pos/ingredient-service/internal/ingredient"
	"github.com/bleu-pos/ingredient-service/internal/ingredient/dto"
	"github.com/bleu-pos/ingredient-service/internal/model"
	"github.com/bleu-pos/ingredient-service/internal/status"
	"github.com/bleu-pos/ingredient-service/internal/store"
)

const dateLayout = "2006-01-02"

type ingredientUseCase struct {
	repo   ingredient.Repository
	scope  store.TransactionScope
	logger *zap.Logger
}

func NewIngredientUseCase(repo ingredient.Repository, scope store.TransactionScope, log *zap.Logger) ingredient.UseCase {
	return &ingredientUseCase{
		repo:   repo,
		scope:  scope,
		logger: log,
	}
}

// List returns ingredients as persisted. Status is not recomputed on reads;
// it reflects the last mutating operation.
func (uc *ingredientUseCase) List(ctx context.Context) ([]model.Ingredient, error) {
	return uc.repo.FindAll(ctx)
}

func (uc *ingredientUseCase) Create(ctx context.Context, input *dto.CreateIngredientInput) (*model.Ingredient, error) {
	ing, err := ingredientFromInput(input.IngredientName, input.Amount, input.Measurement,
		input.BestBeforeDate, input.ExpirationDate)
	if err != nil {
		return nil, err
	}
	ing.ID = uuid.New().String()
	ing.Status = status.ForQuantity(ing.Amount, ing.Unit)

	err = uc.scope.Execute(ctx, func(repos store.Repositories) error {
		exists, err := repos.Ingredients().ExistsByName(ctx, ing.Name, "")
		if err != nil {
			return err
		}
		if exists {
			return apperrors.Conflict("ingredient name already exists")
		}
		return repos.Ingredients().Create(ctx, ing)
	})
	if err != nil {
		return nil, err
	}
	return ing, nil
}

func (uc *ingredientUseCase) Update(ctx context.Context, id string, input *dto.UpdateIngredientInput) (*model.Ingredient, error) {
	updated, err := ingredientFromInput(input.IngredientName, input.Amount, input.Measurement,
		input.BestBeforeDate, input.ExpirationDate)
	if err != nil {
		return nil, err
	}
	updated.ID = id
	updated.Status = status.ForQuantity(updated.Amount, updated.Unit)

	err = uc.scope.Execute(ctx, func(repos store.Repositories) error {
		exists, err := repos.Ingredients().ExistsByName(ctx, updated.Name, id)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.Conflict("ingredient name already exists")
		}

		current, err := repos.Ingredients().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return apperrors.NotFound("ingredient not found")
		}
		return repos.Ingredients().Update(ctx, updated)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Delete refuses to remove an ingredient that still has restock batches;
// batches must not be orphaned.
func (uc *ingredientUseCase) Delete(ctx context.Context, id string) error {
	return uc.scope.Execute(ctx, func(repos store.Repositories) error {
		batches, err := repos.Batches().CountByIngredient(ctx, id)
		if err != nil {
			return err
		}
		if batches > 0 {
			return apperrors.Conflict("ingredient has restock batches and cannot be deleted")
		}

		deleted, err := repos.Ingredients().Delete(ctx, id)
		if err != nil {
			return err
		}
		if !deleted {
			return apperrors.NotFound("ingredient not found")
		}
		return nil
	})
}

func (uc *ingredientUseCase) Count(ctx context.Context) (int, error) {
	return uc.repo.Count(ctx)
}

func (uc *ingredientUseCase) StockStatusCounts(ctx context.Context) (*dto.StockStatusCounts, error) {
	return uc.repo.CountByStatus(ctx)
}

// LowStockAlerts lists ingredients whose persisted status is Low Stock. The
// fixed reorder level and category are display hints for the dashboard.
func (uc *ingredientUseCase) LowStockAlerts(ctx context.Context) ([]dto.LowStockAlert, error) {
	ingredients, err := uc.repo.FindLowStock(ctx)
	if err != nil {
		return nil, err
	}

	alerts := make([]dto.LowStockAlert, len(ingredients))
	for i, ing := range ingredients {
		alerts[i] = dto.LowStockAlert{
			Name:         ing.Name,
			Category:     "Ingredient",
			InStock:      ing.Amount.InexactFloat64(),
			ReorderLevel: 5,
			Status:       ing.Status,
		}
	}
	return alerts, nil
}

func ingredientFromInput(name string, amount float64, unit, bestBefore, expiration string) (*model.Ingredient, error) {
	if name == "" {
		return nil, apperrors.BadRequest("ingredient name is required")
	}
	bb, err := time.Parse(dateLayout, bestBefore)
	if err != nil {
		return nil, apperrors.BadRequest("invalid best-before date, expected YYYY-MM-DD")
	}
	exp, err := time.Parse(dateLayout, expiration)
	if err != nil {
		return nil, apperrors.BadRequest("invalid expiration date, expected YYYY-MM-DD")
	}

	return &model.Ingredient{
		Name:           name,
		Amount:         decimal.NewFromFloat(amount),
		Unit:           unit,
		BestBeforeDate: bb,
		ExpirationDate: exp,
	}, nil
}

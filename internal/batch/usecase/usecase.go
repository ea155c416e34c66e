package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bleu-pos/ingredient-service/internal/apperrors"
	"github.com/bleu-pos/ingredient-service/internal/batch"
	"github.com/bleu-pos/ingredient-service/internal/batch/dto"
	"github.com/bleu-pos/ingredient-service/internal/model"
	"github.com/bleu-pos/ingredient-service/internal/status"
	"github.com/bleu-pos/ingredient-service/internal/store"
)

const dateLayout = "2006-01-02"

type batchUseCase struct {
	scope  store.TransactionScope
	logger *zap.Logger
	now    func() time.Time
}

func NewBatchUseCase(scope store.TransactionScope, log *zap.Logger) batch.UseCase {
	return &batchUseCase{
		scope:  scope,
		logger: log,
		now:    time.Now,
	}
}

func (uc *batchUseCase) Create(ctx context.Context, input *dto.CreateBatchInput) (*model.IngredientBatch, error) {
	batchDate, err := parseDate(input.BatchDate, "batch date")
	if err != nil {
		return nil, err
	}
	expiration, err := parseDate(input.ExpirationDate, "expiration date")
	if err != nil {
		return nil, err
	}

	now := uc.now()
	b := &model.IngredientBatch{
		ID:             uuid.New().String(),
		IngredientID:   input.IngredientID,
		Quantity:       decimal.NewFromFloat(input.Quantity),
		Unit:           input.Unit,
		BatchDate:      batchDate,
		ExpirationDate: expiration,
		RestockDate:    now,
		LoggedBy:       input.LoggedBy,
		Notes:          input.Notes,
	}
	b.Status = status.ForBatch(b.Quantity, b.ExpirationDate, now)

	err = uc.scope.Execute(ctx, func(repos store.Repositories) error {
		ing, err := repos.Ingredients().FindByID(ctx, input.IngredientID)
		if err != nil {
			return err
		}
		if ing == nil {
			return apperrors.NotFound("ingredient not found")
		}
		b.IngredientName = ing.Name

		if err := repos.Batches().Create(ctx, b); err != nil {
			return err
		}
		// The batch contributes additively to the parent's stock.
		return repos.Ingredients().AddAmount(ctx, input.IngredientID, b.Quantity)
	})
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (uc *batchUseCase) List(ctx context.Context) ([]model.IngredientBatch, error) {
	return uc.listAndResolve(ctx, "")
}

func (uc *batchUseCase) ListByIngredient(ctx context.Context, ingredientID string) ([]model.IngredientBatch, error) {
	return uc.listAndResolve(ctx, ingredientID)
}

// listAndResolve reads batches and lazily corrects stale lifecycle statuses.
// Corrections are persisted in the same transaction the read runs in, so a
// list call may write.
func (uc *batchUseCase) listAndResolve(ctx context.Context, ingredientID string) ([]model.IngredientBatch, error) {
	var batches []model.IngredientBatch
	now := uc.now()

	err := uc.scope.Execute(ctx, func(repos store.Repositories) error {
		var err error
		if ingredientID == "" {
			batches, err = repos.Batches().FindAll(ctx)
		} else {
			batches, err = repos.Batches().FindByIngredient(ctx, ingredientID)
		}
		if err != nil {
			return err
		}

		for i := range batches {
			resolved, changed := status.ResolveBatch(batches[i].Status, batches[i].Quantity,
				batches[i].ExpirationDate, now)
			if !changed {
				continue
			}
			if err := repos.Batches().UpdateStatus(ctx, batches[i].ID, resolved); err != nil {
				return err
			}
			batches[i].Status = resolved
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return batches, nil
}

func (uc *batchUseCase) Update(ctx context.Context, id string, input *dto.UpdateBatchInput) (*model.IngredientBatch, error) {
	if input.Empty() {
		return nil, apperrors.BadRequest("no fields to update")
	}

	var updated *model.IngredientBatch
	now := uc.now()

	err := uc.scope.Execute(ctx, func(repos store.Repositories) error {
		b, err := repos.Batches().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if b == nil {
			return apperrors.NotFound("batch not found")
		}

		oldQuantity := b.Quantity
		if err := applyUpdate(b, input); err != nil {
			return err
		}
		b.Status = status.ForBatch(b.Quantity, b.ExpirationDate, now)

		if err := repos.Batches().Update(ctx, b); err != nil {
			return err
		}

		// Keep the parent's stock in sync with the correction: apply the
		// quantity delta, not the new absolute value.
		if input.Quantity != nil {
			diff := b.Quantity.Sub(oldQuantity)
			if err := repos.Ingredients().AddAmount(ctx, b.IngredientID, diff); err != nil {
				return err
			}
		}

		updated = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func applyUpdate(b *model.IngredientBatch, input *dto.UpdateBatchInput) error {
	if input.Quantity != nil {
		b.Quantity = decimal.NewFromFloat(*input.Quantity)
	}
	if input.Unit != nil {
		b.Unit = *input.Unit
	}
	if input.BatchDate != nil {
		d, err := parseDate(*input.BatchDate, "batch date")
		if err != nil {
			return err
		}
		b.BatchDate = d
	}
	if input.ExpirationDate != nil {
		d, err := parseDate(*input.ExpirationDate, "expiration date")
		if err != nil {
			return err
		}
		b.ExpirationDate = d
	}
	if input.LoggedBy != nil {
		b.LoggedBy = *input.LoggedBy
	}
	if input.Notes != nil {
		b.Notes = input.Notes
	}
	return nil
}

func parseDate(value, field string) (time.Time, error) {
	d, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, apperrors.BadRequest("invalid " + field + ", expected YYYY-MM-DD")
	}
	return d, nil
}

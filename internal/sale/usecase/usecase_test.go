package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/bleu-pos/ingredient-service/internal/apperrors"
	"github.com/bleu-pos/ingredient-service/internal/model"
	"github.com/bleu-pos/ingredient-service/internal/sale/dto"
	"github.com/bleu-pos/ingredient-service/internal/store/storetest"
)

// latteWorld sets up milk (1000 g) plus a Latte recipe needing 200 g of it
// per unit sold.
func latteWorld() *storetest.Memory {
	mem := storetest.NewMemory()
	mem.IngredientRows = []model.Ingredient{
		{ID: "ing-milk", Name: "Milk", Amount: decimal.NewFromInt(1000), Unit: "g", Status: model.StatusAvailable},
		{ID: "ing-beans", Name: "Coffee Beans", Amount: decimal.NewFromInt(300), Unit: "g", Status: model.StatusAvailable},
	}
	mem.ProductRows = []model.Product{{ID: "prod-latte", Name: "Latte"}}
	mem.RecipeRows = []model.Recipe{{ID: "rec-latte", ProductID: "prod-latte"}}
	mem.RecipeItemRows = []model.RecipeIngredient{
		{RecipeID: "rec-latte", IngredientID: "ing-milk", Amount: decimal.NewFromInt(200), Unit: "g"},
	}
	return mem
}

func TestDeductFromSaleAppliesRecipeAmounts(t *testing.T) {
	mem := latteWorld()
	uc := NewSaleUseCase(mem, zap.NewNop())

	err := uc.DeductFromSale(context.Background(), []dto.CartItem{{Name: "Latte", Quantity: 3}})
	if err != nil {
		t.Fatalf("DeductFromSale: %v", err)
	}

	milk := mem.Ingredient("ing-milk")
	if !milk.Amount.Equal(decimal.NewFromInt(400)) {
		t.Errorf("milk amount = %v, want 400", milk.Amount)
	}
	if milk.Status != model.StatusAvailable {
		t.Errorf("milk status = %q, want %q (400 > 50)", milk.Status, model.StatusAvailable)
	}
}

func TestDeductFromSaleRecomputesAllStatuses(t *testing.T) {
	mem := latteWorld()
	// Beans are untouched by the Latte recipe but sit at a stale status.
	mem.IngredientRows[1].Amount = decimal.NewFromInt(20)
	uc := NewSaleUseCase(mem, zap.NewNop())

	if err := uc.DeductFromSale(context.Background(), []dto.CartItem{{Name: "Latte", Quantity: 1}}); err != nil {
		t.Fatalf("DeductFromSale: %v", err)
	}

	// The bulk pass covers every ingredient, not only touched ones.
	if got := mem.Ingredient("ing-beans").Status; got != model.StatusLowStock {
		t.Errorf("beans status = %q, want %q", got, model.StatusLowStock)
	}
}

func TestDeductFromSaleAllowsNegativeAmounts(t *testing.T) {
	mem := latteWorld()
	uc := NewSaleUseCase(mem, zap.NewNop())

	// 6 lattes need 1200 g of milk against 1000 g in stock.
	if err := uc.DeductFromSale(context.Background(), []dto.CartItem{{Name: "Latte", Quantity: 6}}); err != nil {
		t.Fatalf("DeductFromSale: %v", err)
	}

	milk := mem.Ingredient("ing-milk")
	if !milk.Amount.Equal(decimal.NewFromInt(-200)) {
		t.Errorf("milk amount = %v, want -200 (no clamping)", milk.Amount)
	}
	if milk.Status != model.StatusNotAvailable {
		t.Errorf("milk status = %q, want %q", milk.Status, model.StatusNotAvailable)
	}
}

func TestDeductFromSaleSkipsProductsWithoutRecipe(t *testing.T) {
	mem := latteWorld()
	uc := NewSaleUseCase(mem, zap.NewNop())

	err := uc.DeductFromSale(context.Background(), []dto.CartItem{{Name: "Gift Card", Quantity: 2}})
	if err != nil {
		t.Fatalf("DeductFromSale should succeed for recipe-less products, got %v", err)
	}

	if got := mem.Ingredient("ing-milk").Amount; !got.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("milk amount = %v, want unchanged 1000", got)
	}
}

func TestDeductFromSaleRollsBackWholeCartOnFailure(t *testing.T) {
	mem := latteWorld()
	// A second product whose only ingredient write is broken.
	mem.ProductRows = append(mem.ProductRows, model.Product{ID: "prod-broken", Name: "BrokenItem"})
	mem.RecipeRows = append(mem.RecipeRows, model.Recipe{ID: "rec-broken", ProductID: "prod-broken"})
	mem.RecipeItemRows = append(mem.RecipeItemRows, model.RecipeIngredient{
		RecipeID: "rec-broken", IngredientID: "ing-beans", Amount: decimal.NewFromInt(10), Unit: "g",
	})
	mem.FailAddAmount["ing-beans"] = errors.New("write failed")

	uc := NewSaleUseCase(mem, zap.NewNop())
	err := uc.DeductFromSale(context.Background(), []dto.CartItem{
		{Name: "Latte", Quantity: 2},
		{Name: "BrokenItem", Quantity: 1},
	})
	if err == nil {
		t.Fatal("DeductFromSale should fail when a deduction write fails")
	}

	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Status != 500 {
		t.Errorf("error = %v, want internal AppError", err)
	}

	// Item A resolved successfully, but the failure on item B must undo it.
	if got := mem.Ingredient("ing-milk").Amount; !got.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("milk amount after rollback = %v, want 1000", got)
	}
	if got := mem.Ingredient("ing-beans").Amount; !got.Equal(decimal.NewFromInt(300)) {
		t.Errorf("beans amount after rollback = %v, want 300", got)
	}
}

func TestDeductFromSaleFailsWhenBulkRecomputeFails(t *testing.T) {
	mem := latteWorld()
	mem.FailRecompute = errors.New("recompute failed")
	uc := NewSaleUseCase(mem, zap.NewNop())

	err := uc.DeductFromSale(context.Background(), []dto.CartItem{{Name: "Latte", Quantity: 1}})
	if err == nil {
		t.Fatal("DeductFromSale should fail when the bulk status pass fails")
	}
	if got := mem.Ingredient("ing-milk").Amount; !got.Equal(decimal.NewFromInt(1000)) {
		t.Errorf("milk amount after rollback = %v, want 1000", got)
	}
}

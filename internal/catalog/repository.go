package catalog

import (
	"context"

	"github.com/bleu-pos/ingredient-service/internal/model"
)

// Repository is the read-only boundary onto the sales catalog. The tables
// behind it belong to the sales domain; keeping the engine on this interface
// means the lookup could later move behind a network call without touching
// deduction logic.
type Repository interface {
	// FindRecipeIDByProduct resolves a sold product name to its recipe.
	// Returns "" when the product has no recipe; that is not an error.
	FindRecipeIDByProduct(ctx context.Context, productName string) (string, error)

	// RecipeIngredients returns the per-unit ingredient requirements of a
	// recipe, in stored order.
	RecipeIngredients(ctx context.Context, recipeID string) ([]model.RecipeIngredient, error)
}

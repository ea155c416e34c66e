package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/bleu-pos/ingredient-service/internal/model"
)

type PGRepository struct {
	DB sqlx.ExtContext
}

func NewPGRepository(db sqlx.ExtContext) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) FindRecipeIDByProduct(ctx context.Context, productName string) (string, error) {
	var recipeID string
	query := `
        SELECT r.id
        FROM recipes r
        JOIN products p ON p.id = r.product_id
        WHERE p.name = $1
    `
	err := sqlx.GetContext(ctx, r.DB, &recipeID, query, productName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", nil
		}
		return "", err
	}
	return recipeID, nil
}

func (r *PGRepository) RecipeIngredients(ctx context.Context, recipeID string) ([]model.RecipeIngredient, error) {
	items := []model.RecipeIngredient{}
	query := `
        SELECT recipe_id, ingredient_id, amount, unit
        FROM recipe_ingredients
        WHERE recipe_id = $1
        ORDER BY ingredient_id
    `
	err := sqlx.SelectContext(ctx, r.DB, &items, query, recipeID)
	return items, err
}

package model

import "github.com/shopspring/decimal"

// Products, Recipes and RecipeIngredients are conceptually owned by the sales
// catalog service. This service only reads them to resolve sale deductions.

type Product struct {
	ID   string `db:"id"`
	Name string `db:"name"`
}

type Recipe struct {
	ID        string `db:"id"`
	ProductID string `db:"product_id"`
}

type RecipeIngredient struct {
	RecipeID     string          `db:"recipe_id"`
	IngredientID string          `db:"ingredient_id"`
	Amount       decimal.Decimal `db:"amount"` // per unit sold
	Unit         string          `db:"unit"`
}

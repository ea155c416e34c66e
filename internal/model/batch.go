package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type IngredientBatch struct {
	ID             string          `db:"id"`
	IngredientID   string          `db:"ingredient_id"`
	IngredientName string          `db:"ingredient_name"` // Joined data, not in batches table
	Quantity       decimal.Decimal `db:"quantity"`
	Unit           string          `db:"unit"`
	BatchDate      time.Time       `db:"batch_date"`
	ExpirationDate time.Time       `db:"expiration_date"`
	RestockDate    time.Time       `db:"restock_date"` // Server-assigned at creation
	LoggedBy       string          `db:"logged_by"`
	Notes          *string         `db:"notes"` // Nullable
	Status         string          `db:"status"`
}

package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock status labels persisted on ingredients and batches. They are derived
// values: the status package is the only writer.
const (
	StatusAvailable    = "Available"
	StatusLowStock     = "Low Stock"
	StatusNotAvailable = "Not Available"
	StatusExpired      = "Expired"
	StatusUsed         = "Used"
)

type Ingredient struct {
	ID             string          `db:"id"`
	Name           string          `db:"name"` // unique, case-insensitive
	Amount         decimal.Decimal `db:"amount"`
	Unit           string          `db:"unit"`
	BestBeforeDate time.Time       `db:"best_before_date"`
	ExpirationDate time.Time       `db:"expiration_date"`
	Status         string          `db:"status"`
}

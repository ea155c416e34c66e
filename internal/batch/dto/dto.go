package dto

import (
	"time"

	"github.com/bleu-pos/ingredient-service/internal/model"
)

const dateLayout = "2006-01-02"

type BatchOut struct {
	BatchID        string  `json:"batch_id"`
	IngredientID   string  `json:"ingredient_id"`
	IngredientName string  `json:"ingredient_name"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	BatchDate      string  `json:"batch_date"`
	ExpirationDate string  `json:"expiration_date"`
	RestockDate    string  `json:"restock_date"`
	LoggedBy       string  `json:"logged_by"`
	Notes          *string `json:"notes"`
	Status         string  `json:"status"`
}

func FromModel(b *model.IngredientBatch) *BatchOut {
	return &BatchOut{
		BatchID:        b.ID,
		IngredientID:   b.IngredientID,
		IngredientName: b.IngredientName,
		Quantity:       b.Quantity.InexactFloat64(),
		Unit:           b.Unit,
		BatchDate:      b.BatchDate.Format(dateLayout),
		ExpirationDate: b.ExpirationDate.Format(dateLayout),
		RestockDate:    b.RestockDate.Format(time.RFC3339),
		LoggedBy:       b.LoggedBy,
		Notes:          b.Notes,
		Status:         b.Status,
	}
}

func FromModels(batches []model.IngredientBatch) []BatchOut {
	out := make([]BatchOut, len(batches))
	for i := range batches {
		out[i] = *FromModel(&batches[i])
	}
	return out
}

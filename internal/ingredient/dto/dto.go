package dto

import (
	"github.com/bleu-pos/ingredient-service/internal/model"
)

const dateLayout = "2006-01-02"

// IngredientOut is the wire representation of an ingredient. Field names
// follow the persisted column casing consumed by the storefront clients.
type IngredientOut struct {
	IngredientID   string  `json:"IngredientID"`
	IngredientName string  `json:"IngredientName"`
	Amount         float64 `json:"Amount"`
	Measurement    string  `json:"Measurement"`
	BestBeforeDate string  `json:"BestBeforeDate"`
	ExpirationDate string  `json:"ExpirationDate"`
	Status         string  `json:"Status"`
}

func FromModel(ing *model.Ingredient) *IngredientOut {
	return &IngredientOut{
		IngredientID:   ing.ID,
		IngredientName: ing.Name,
		Amount:         ing.Amount.InexactFloat64(),
		Measurement:    ing.Unit,
		BestBeforeDate: ing.BestBeforeDate.Format(dateLayout),
		ExpirationDate: ing.ExpirationDate.Format(dateLayout),
		Status:         ing.Status,
	}
}

func FromModels(ings []model.Ingredient) []IngredientOut {
	out := make([]IngredientOut, len(ings))
	for i := range ings {
		out[i] = *FromModel(&ings[i])
	}
	return out
}

type StockStatusCounts struct {
	Available    int `json:"available" db:"available_count"`
	LowStock     int `json:"low_stock" db:"low_stock_count"`
	NotAvailable int `json:"not_available" db:"not_available_count"`
}

// LowStockAlert is the dashboard row for ingredients sitting at or below
// their unit threshold. ReorderLevel is a fixed display hint, not a policy
// input.
type LowStockAlert struct {
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	InStock       float64 `json:"inStock"`
	ReorderLevel  int     `json:"reorderLevel"`
	LastRestocked *string `json:"lastRestocked"`
	Status        string  `json:"status"`
}

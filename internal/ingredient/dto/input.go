package dto

// CreateIngredientInput mirrors the ingredient creation payload. Amounts
// arrive as JSON numbers; the usecase converts them to decimals.
type CreateIngredientInput struct {
	IngredientName string  `json:"IngredientName"`
	Amount         float64 `json:"Amount"`
	Measurement    string  `json:"Measurement"`
	BestBeforeDate string  `json:"BestBeforeDate"` // YYYY-MM-DD
	ExpirationDate string  `json:"ExpirationDate"` // YYYY-MM-DD
}

type UpdateIngredientInput struct {
	IngredientName string  `json:"IngredientName"`
	Amount         float64 `json:"Amount"`
	Measurement    string  `json:"Measurement"`
	BestBeforeDate string  `json:"BestBeforeDate"`
	ExpirationDate string  `json:"ExpirationDate"`
}

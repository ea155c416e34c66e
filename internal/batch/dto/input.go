package dto

type CreateBatchInput struct {
	IngredientID   string  `json:"ingredient_id"`
	Quantity       float64 `json:"quantity"`
	Unit           string  `json:"unit"`
	BatchDate      string  `json:"batch_date"`      // YYYY-MM-DD
	ExpirationDate string  `json:"expiration_date"` // YYYY-MM-DD
	LoggedBy       string  `json:"logged_by"`
	Notes          *string `json:"notes"`
}

// UpdateBatchInput carries an arbitrary subset of batch fields. Nil means
// "leave unchanged"; an update with no fields set is rejected.
type UpdateBatchInput struct {
	Quantity       *float64 `json:"quantity"`
	Unit           *string  `json:"unit"`
	BatchDate      *string  `json:"batch_date"`
	ExpirationDate *string  `json:"expiration_date"`
	LoggedBy       *string  `json:"logged_by"`
	Notes          *string  `json:"notes"`
}

func (in *UpdateBatchInput) Empty() bool {
	return in.Quantity == nil && in.Unit == nil && in.BatchDate == nil &&
		in.ExpirationDate == nil && in.LoggedBy == nil && in.Notes == nil
}

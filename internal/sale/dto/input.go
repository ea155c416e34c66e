package dto

// CartItem is one line of a completed sale as reported by the point of sale.
type CartItem struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type DeductSaleRequest struct {
	CartItems []CartItem `json:"cartItems"`
}

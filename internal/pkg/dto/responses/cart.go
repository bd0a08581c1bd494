package responses

type CartItem struct {
	ID                   string  `json:"id"`
	Type                 string  `json:"type"`
	ProductID            string  `json:"product_id"`
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	RequiresPrescription bool    `json:"requires_prescription"`
}

type Cart struct {
	Items     []CartItem `json:"items"`
	ItemCount int        `json:"item_count"`
	Total     float64    `json:"total"`
}

type Checkout struct {
	OrderID        string  `json:"order_id"`
	TotalAmount    float64 `json:"total_amount"`
	Status         string  `json:"status"`
	PrescriptionID string  `json:"prescription_id,omitempty"`
}

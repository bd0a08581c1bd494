package responses

import "time"

type OrderItem struct {
	ProductID            string  `json:"product_id"`
	Type                 string  `json:"type"`
	Name                 string  `json:"name"`
	Price                float64 `json:"price"`
	RequiresPrescription bool    `json:"requires_prescription"`
}

type Order struct {
	ID              string      `json:"id"`
	UserID          string      `json:"user_id"`
	OrderDate       time.Time   `json:"order_date"`
	Items           []OrderItem `json:"items"`
	Status          string      `json:"status"`
	TotalAmount     float64     `json:"total_amount"`
	DeliveryAddress string      `json:"delivery_address,omitempty"`
	PrescriptionID  string      `json:"prescription_id,omitempty"`
}

package requests

type AddCartItem struct {
	Type                 string  `json:"type" validate:"required,oneof=medicine labTest"`
	ProductID            string  `json:"product_id" validate:"required"`
	Name                 string  `json:"name" validate:"required"`
	Price                float64 `json:"price" validate:"gte=0"`
	RequiresPrescription bool    `json:"requires_prescription"`
}

type Checkout struct {
	// PrescriptionID must be non-empty when any cart line item requires a
	// prescription. Any non-empty value passes verification.
	PrescriptionID  string `json:"prescription_id,omitempty"`
	DeliveryAddress string `json:"delivery_address,omitempty"`
}

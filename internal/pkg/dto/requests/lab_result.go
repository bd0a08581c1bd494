package requests

type UpdateLabResult struct {
	Results string `json:"results" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=pending completed"`
}

package request

type ValidatePromoRequest struct {
	Code string `json:"code" binding:"required"`
	// Pointer so that a zero subtotal passes required validation.
	Subtotal *int64 `json:"subtotal" binding:"required,min=0"`
}

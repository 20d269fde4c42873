package response

type PromoValidationResponse struct {
	Valid    bool   `json:"valid"`
	Discount int64  `json:"discount"`
	Type     string `json:"type,omitempty"`
}

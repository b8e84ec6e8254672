package request

type SetDiscountRequest struct {
	Percentage *float64 `json:"percentage" binding:"required,min=0,max=100"`
	Active     bool     `json:"active"`
}

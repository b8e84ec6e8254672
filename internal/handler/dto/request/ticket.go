package request

type SetTicketPriceRequest struct {
	Price *float64 `json:"price" binding:"required,gte=0"`
}

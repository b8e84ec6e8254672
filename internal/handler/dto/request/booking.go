package request

type BookTicketRequest struct {
	CustomerID    string `json:"customer_id" binding:"required"`
	TicketType    string `json:"ticket_type" binding:"required"`
	PaymentMethod string `json:"payment_method" binding:"required"`
}

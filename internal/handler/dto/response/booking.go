package response

import (
	"time"

	"racing-ticket-desk/internal/usecase"

	"github.com/jinzhu/copier"
)

type BookingResponse struct {
	Ticket        TicketResponse `json:"ticket"`
	CustomerID    string         `json:"customer_id"`
	CustomerName  string         `json:"customer_name"`
	PaymentMethod string         `json:"payment_method"`
	ListPrice     float64        `json:"list_price"`
	BookedPrice   float64        `json:"booked_price"`
	BookedAt      time.Time      `json:"booked_at"`
	Message       string         `json:"message"`
}

func FromBookingReceipt(r *usecase.BookingReceipt) (*BookingResponse, error) {
	res := &BookingResponse{}
	if err := copier.Copy(res, r); err != nil {
		return nil, err
	}
	return res, nil
}

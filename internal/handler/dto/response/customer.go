package response

import (
	"racing-ticket-desk/internal/usecase"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TicketResponse struct {
	ID    uuid.UUID `json:"id"`
	Type  string    `json:"type"`
	Label string    `json:"label"`
	Price float64   `json:"price"`
	Seat  int       `json:"seat"`
	Valid bool      `json:"valid"`
}

type CustomerResponse struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Email         string           `json:"email"`
	Phone         string           `json:"phone"`
	PurchaseCount int              `json:"total_orders"`
	Purchases     []TicketResponse `json:"purchases"`
	Summary       string           `json:"summary"`
}

func FromCustomerView(v *usecase.CustomerView) (*CustomerResponse, error) {
	res := &CustomerResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	if res.Purchases == nil {
		res.Purchases = []TicketResponse{}
	}
	return res, nil
}

type MessageResponse struct {
	Message string `json:"message"`
}

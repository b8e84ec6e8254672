package usecase

import (
	"strings"
	"time"

	"racing-ticket-desk/internal/domain/customer"
	"racing-ticket-desk/internal/domain/ticket"
	"racing-ticket-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

type PaymentMethod string

const (
	PaymentCreditCard PaymentMethod = "Credit Card"
	PaymentDebitCard  PaymentMethod = "Debit Card"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// ParsePaymentMethod accepts the counter label ("Credit Card") or its
// snake-case code ("credit_card").
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	s = strings.TrimSpace(s)
	for _, m := range []PaymentMethod{PaymentCreditCard, PaymentDebitCard} {
		code := strings.ReplaceAll(m.String(), " ", "_")
		if strings.EqualFold(s, m.String()) || strings.EqualFold(s, code) {
			return m, nil
		}
	}
	return "", errs.ErrInvalidPaymentMethod
}

// PriceList holds the list price of each ticket variant.
type PriceList struct {
	SingleRace       float64
	WeekendPackage   float64
	SeasonMembership float64
}

func (p PriceList) PriceOf(v ticket.Variant) float64 {
	switch v {
	case ticket.SingleRace:
		return p.SingleRace
	case ticket.WeekendPackage:
		return p.WeekendPackage
	case ticket.SeasonMembership:
		return p.SeasonMembership
	default:
		return 0
	}
}

type RegisterCustomerParams struct {
	ID    string
	Name  string
	Email string
	Phone string
}

type BookTicketParams struct {
	CustomerID    string
	TicketType    string
	PaymentMethod string
}

type TicketView struct {
	ID    uuid.UUID
	Type  string
	Label string
	Price float64
	Seat  int
	Valid bool
}

type CustomerView struct {
	ID            string
	Name          string
	Email         string
	Phone         string
	PurchaseCount int
	Purchases     []TicketView
	Summary       string
}

type BookingReceipt struct {
	Ticket        TicketView
	CustomerID    string
	CustomerName  string
	PaymentMethod string
	ListPrice     float64
	BookedPrice   float64
	BookedAt      time.Time
	Message       string
}

type Dashboard struct {
	EventName          string
	Location           string
	Date               string
	Capacity           int
	TotalSales         float64
	TicketsSold        int
	TotalCustomers     int
	DiscountActive     bool
	DiscountPercentage float64
	PolicyDetails      string
}

func toTicketView(t *ticket.Ticket) TicketView {
	return TicketView{
		ID:    t.ID(),
		Type:  t.Type().String(),
		Label: t.Label(),
		Price: t.Price(),
		Seat:  t.Seat(),
		Valid: t.IsValid(),
	}
}

func toCustomerView(c *customer.Customer) *CustomerView {
	purchases := c.Purchases()
	views := make([]TicketView, len(purchases))
	for i, t := range purchases {
		views[i] = toTicketView(t)
	}
	return &CustomerView{
		ID:            c.ID(),
		Name:          c.Name,
		Email:         c.Email,
		Phone:         c.Phone,
		PurchaseCount: len(purchases),
		Purchases:     views,
		Summary:       c.String(),
	}
}

package converter

import (
	"fmt"

	"racing-ticket-desk/internal/domain/customer"
	"racing-ticket-desk/internal/domain/ticket"

	"github.com/google/uuid"
)

// CustomerRecord is the stored shape of a customer and its purchase history.
// It moves with the entities; there is no schema version.
type CustomerRecord struct {
	ID      string         `json:"id"`
	Name    string         `json:"name"`
	Email   string         `json:"email"`
	Phone   string         `json:"phone"`
	Tickets []TicketRecord `json:"tickets"`
}

type TicketRecord struct {
	ID      uuid.UUID `json:"id"`
	Variant string    `json:"variant"`
	Price   float64   `json:"price"`
	Seat    int       `json:"seat"`
	Valid   bool      `json:"valid"`
}

func CustomerToRecord(c *customer.Customer) CustomerRecord {
	purchases := c.Purchases()
	rec := CustomerRecord{
		ID:      c.ID(),
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Tickets: make([]TicketRecord, 0, len(purchases)),
	}
	for _, t := range purchases {
		rec.Tickets = append(rec.Tickets, TicketToRecord(t))
	}
	return rec
}

func TicketToRecord(t *ticket.Ticket) TicketRecord {
	return TicketRecord{
		ID:      t.ID(),
		Variant: t.Type().String(),
		Price:   t.Price(),
		Seat:    t.Seat(),
		Valid:   t.IsValid(),
	}
}

func RecordToCustomer(rec CustomerRecord) (*customer.Customer, error) {
	purchases := make([]*ticket.Ticket, 0, len(rec.Tickets))
	for _, tr := range rec.Tickets {
		t, err := RecordToTicket(tr)
		if err != nil {
			return nil, fmt.Errorf("customer %s: %w", rec.ID, err)
		}
		purchases = append(purchases, t)
	}
	return customer.Reconstruct(rec.ID, rec.Name, rec.Email, rec.Phone, purchases), nil
}

func RecordToTicket(rec TicketRecord) (*ticket.Ticket, error) {
	variant := ticket.Variant(rec.Variant)
	if !variant.IsValid() {
		return nil, fmt.Errorf("ticket %s: %w: %q", rec.ID, ticket.ErrInvalidVariant, rec.Variant)
	}
	return ticket.Reconstruct(rec.ID, variant, rec.Price, rec.Seat, rec.Valid), nil
}

func RecordsToCustomers(recs []CustomerRecord) ([]*customer.Customer, error) {
	customers := make([]*customer.Customer, 0, len(recs))
	for _, rec := range recs {
		c, err := RecordToCustomer(rec)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, nil
}

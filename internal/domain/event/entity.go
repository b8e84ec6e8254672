package event

import (
	"errors"
	"slices"

	"racing-ticket-desk/internal/domain/customer"
	"racing-ticket-desk/internal/domain/discount"
	"racing-ticket-desk/internal/domain/ticket"

	"github.com/google/uuid"
)

var (
	ErrCustomerAlreadyRegistered = errors.New("customer already registered")
	ErrCustomerNotRegistered     = errors.New("customer not registered")
	ErrDiscountPolicyNotSet      = errors.New("discount policy not set")
)

// RacingCarEvent is the sales ledger of a single event. It is not safe for
// concurrent use; callers serialize access.
type RacingCarEvent struct {
	Name     string
	Location string
	Date     string

	capacity    int
	totalSales  float64
	ticketsSold []*ticket.Ticket
	customers   []*customer.Customer
	policy      *discount.Policy
}

// NewRacingCarEvent stores capacity but never enforces it.
func NewRacingCarEvent(name, location, date string, capacity int) *RacingCarEvent {
	return &RacingCarEvent{
		Name:     name,
		Location: location,
		Date:     date,
		capacity: capacity,
	}
}

func (e *RacingCarEvent) SetDiscountPolicy(p *discount.Policy) {
	e.policy = p
}

func (e *RacingCarEvent) RegisterCustomer(c *customer.Customer) error {
	if _, ok := e.CustomerByID(c.ID()); ok {
		return ErrCustomerAlreadyRegistered
	}
	e.customers = append(e.customers, c)
	return nil
}

// UnregisterCustomer removes exactly the given reference. A different
// customer value sharing the same id does not match.
func (e *RacingCarEvent) UnregisterCustomer(c *customer.Customer) error {
	i := slices.Index(e.customers, c)
	if i < 0 {
		return ErrCustomerNotRegistered
	}
	e.customers = slices.Delete(e.customers, i, i+1)
	return nil
}

func (e *RacingCarEvent) CustomerByID(id string) (*customer.Customer, bool) {
	for _, c := range e.customers {
		if c.ID() == id {
			return c, true
		}
	}
	return nil, false
}

// AddTicketSale books t at the price produced by the policy active right now
// and returns that booked price. The amount is never revisited, even if the
// policy or the ticket's price changes later. The buyer's purchase history is
// left to the caller.
func (e *RacingCarEvent) AddTicketSale(t *ticket.Ticket) (float64, error) {
	if e.policy == nil {
		return 0, ErrDiscountPolicyNotSet
	}
	booked := e.policy.Apply(t.Price())
	e.totalSales += booked
	e.ticketsSold = append(e.ticketsSold, t)
	return booked, nil
}

func (e *RacingCarEvent) TicketByID(id uuid.UUID) (*ticket.Ticket, bool) {
	for _, t := range e.ticketsSold {
		if t.ID() == id {
			return t, true
		}
	}
	return nil, false
}

func (e *RacingCarEvent) Capacity() int                    { return e.capacity }
func (e *RacingCarEvent) DiscountPolicy() *discount.Policy { return e.policy }
func (e *RacingCarEvent) TotalSales() float64              { return e.totalSales }
func (e *RacingCarEvent) TotalTicketsSold() int            { return len(e.ticketsSold) }
func (e *RacingCarEvent) TotalCustomers() int              { return len(e.customers) }
func (e *RacingCarEvent) TicketsSold() []*ticket.Ticket    { return slices.Clone(e.ticketsSold) }
func (e *RacingCarEvent) Customers() []*customer.Customer  { return slices.Clone(e.customers) }

package ticket

import (
	"github.com/google/uuid"
)

// Ticket is a sold seat. The same pointer is shared by the event's sales
// ledger and the buyer's purchase history.
type Ticket struct {
	id      uuid.UUID
	variant Variant
	price   float64
	seat    int
	valid   bool
}

func New(variant Variant, price float64, seat int) *Ticket {
	return &Ticket{
		id:      uuid.New(),
		variant: variant,
		price:   price,
		seat:    seat,
		valid:   true,
	}
}

func NewSingleRace(price float64, seat int) *Ticket {
	return New(SingleRace, price, seat)
}

func NewWeekendPackage(price float64, seat int) *Ticket {
	return New(WeekendPackage, price, seat)
}

func NewSeasonMembership(price float64, seat int) *Ticket {
	return New(SeasonMembership, price, seat)
}

func Reconstruct(id uuid.UUID, variant Variant, price float64, seat int, valid bool) *Ticket {
	return &Ticket{
		id:      id,
		variant: variant,
		price:   price,
		seat:    seat,
		valid:   valid,
	}
}

// SetPrice is an administrative override; no bounds are checked.
func (t *Ticket) SetPrice(price float64) {
	t.price = price
}

// Invalidate is one-way. Calling it again has no effect.
func (t *Ticket) Invalidate() {
	t.valid = false
}

func (t *Ticket) ID() uuid.UUID  { return t.id }
func (t *Ticket) Type() Variant  { return t.variant }
func (t *Ticket) Price() float64 { return t.price }
func (t *Ticket) Seat() int      { return t.seat }
func (t *Ticket) IsValid() bool  { return t.valid }
func (t *Ticket) Label() string  { return t.variant.Label() }

package customer

import (
	"errors"
	"fmt"
	"slices"

	"racing-ticket-desk/internal/domain/ticket"

	"github.com/google/uuid"
)

var ErrPurchaseNotFound = errors.New("ticket not found in purchase history")

// Customer carries contact details and an ordered purchase history. Contact
// fields are not validated.
type Customer struct {
	id        string
	Name      string
	Email     string
	Phone     string
	purchases []*ticket.Ticket
}

func NewCustomer(id, name, email, phone string) *Customer {
	return &Customer{
		id:    id,
		Name:  name,
		Email: email,
		Phone: phone,
	}
}

func Reconstruct(id, name, email, phone string, purchases []*ticket.Ticket) *Customer {
	c := NewCustomer(id, name, email, phone)
	c.purchases = slices.Clone(purchases)
	return c
}

func (c *Customer) SetName(name string)   { c.Name = name }
func (c *Customer) SetEmail(email string) { c.Email = email }
func (c *Customer) SetPhone(phone string) { c.Phone = phone }

// AddPurchase appends t without checking for duplicates.
func (c *Customer) AddPurchase(t *ticket.Ticket) {
	c.purchases = append(c.purchases, t)
}

// CancelPurchase removes the first occurrence of t from the history.
func (c *Customer) CancelPurchase(t *ticket.Ticket) error {
	i := slices.Index(c.purchases, t)
	if i < 0 {
		return ErrPurchaseNotFound
	}
	c.purchases = slices.Delete(c.purchases, i, i+1)
	return nil
}

// PurchaseByTicketID returns the first history entry with the given ticket id.
func (c *Customer) PurchaseByTicketID(id uuid.UUID) (*ticket.Ticket, bool) {
	for _, t := range c.purchases {
		if t.ID() == id {
			return t, true
		}
	}
	return nil, false
}

func (c *Customer) ID() string                  { return c.id }
func (c *Customer) Purchases() []*ticket.Ticket { return slices.Clone(c.purchases) }
func (c *Customer) PurchaseCount() int          { return len(c.purchases) }

func (c *Customer) String() string {
	return fmt.Sprintf("*** Showing Details for Customer ***\nID : %s\nName : %s\nEmail : %s\nPhone : %s\nTotal Orders : %d",
		c.id, c.Name, c.Email, c.Phone, len(c.purchases))
}

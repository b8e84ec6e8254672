//go:build unit || e2e

package builder

import (
	"racing-ticket-desk/internal/domain/customer"
	"racing-ticket-desk/internal/domain/ticket"
	"racing-ticket-desk/internal/usecase"
)

type CustomerBuilder struct {
	ID        string
	Name      string
	Email     string
	Phone     string
	Purchases []*ticket.Ticket
}

func NewCustomerBuilder() *CustomerBuilder {
	return &CustomerBuilder{
		ID:    "5",
		Name:  "Ahmed",
		Email: "ahmed@gmail.com",
		Phone: "123456789",
	}
}

func (b *CustomerBuilder) With(mutate func(*CustomerBuilder)) *CustomerBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *CustomerBuilder) BuildDomain() *customer.Customer {
	return customer.Reconstruct(b.ID, b.Name, b.Email, b.Phone, b.Purchases)
}

func (b *CustomerBuilder) BuildRegisterParams() usecase.RegisterCustomerParams {
	return usecase.RegisterCustomerParams{
		ID:    b.ID,
		Name:  b.Name,
		Email: b.Email,
		Phone: b.Phone,
	}
}

func (b *CustomerBuilder) BuildCreateRequestDTO() map[string]any {
	return map[string]any{
		"id":    b.ID,
		"name":  b.Name,
		"email": b.Email,
		"phone": b.Phone,
	}
}

func (b *CustomerBuilder) BuildView() *usecase.CustomerView {
	return &usecase.CustomerView{
		ID:            b.ID,
		Name:          b.Name,
		Email:         b.Email,
		Phone:         b.Phone,
		PurchaseCount: len(b.Purchases),
		Summary:       b.BuildDomain().String(),
	}
}

// Fluent builder methods
func (b *CustomerBuilder) WithID(id string) *CustomerBuilder {
	b.ID = id
	return b
}

func (b *CustomerBuilder) WithName(name string) *CustomerBuilder {
	b.Name = name
	return b
}

func (b *CustomerBuilder) WithEmail(email string) *CustomerBuilder {
	b.Email = email
	return b
}

func (b *CustomerBuilder) WithPhone(phone string) *CustomerBuilder {
	b.Phone = phone
	return b
}

func (b *CustomerBuilder) WithPurchases(tickets ...*ticket.Ticket) *CustomerBuilder {
	b.Purchases = append(b.Purchases, tickets...)
	return b
}

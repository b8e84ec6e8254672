package usecase

import (
	"context"

	"racing-ticket-desk/internal/domain/customer"
)

//go:generate mockgen -source=ports.go -destination=../../tests/mock/usecase/mock_ports.go -package=usecasemock

// CustomerStore is the durable, append-only record of registered customers.
// Loading from an empty or missing store yields an empty slice, not an error.
type CustomerStore interface {
	Append(ctx context.Context, c *customer.Customer) error
	LoadAll(ctx context.Context) ([]*customer.Customer, error)
	Reset(ctx context.Context) error
}

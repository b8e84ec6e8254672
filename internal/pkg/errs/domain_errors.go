package errs

import "errors"

// Domain-specific sentinel errors for the usecase layer
var (
	// Customer errors
	ErrCustomerNotFound          = errors.New("customer not found")
	ErrCustomerAlreadyRegistered = errors.New("customer already registered")
	ErrMissingCustomerInfo       = errors.New("missing customer information")
	ErrPurchaseNotFound          = errors.New("purchase not found")

	// Ticket errors
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrInvalidTicketType    = errors.New("invalid ticket type")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")

	// Precondition errors
	ErrPreconditionViolation = errors.New("precondition violation")

	// Operation errors
	ErrStoreOperationFailed = errors.New("store operation failed")
)

package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"racing-ticket-desk/internal/domain/customer"
	"racing-ticket-desk/internal/domain/discount"
	"racing-ticket-desk/internal/domain/event"
	"racing-ticket-desk/internal/domain/ticket"
	"racing-ticket-desk/internal/pkg/clock"
	"racing-ticket-desk/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=desk.go -destination=../../tests/mock/usecase/mock_desk.go -package=usecasemock

type Desk interface {
	RegisterCustomer(ctx context.Context, params RegisterCustomerParams) (*CustomerView, error)
	DeleteCustomer(ctx context.Context, customerID string) error
	CustomerDetails(ctx context.Context, customerID string) (*CustomerView, error)
	BookTicket(ctx context.Context, params BookTicketParams) (*BookingReceipt, error)
	CancelPurchase(ctx context.Context, customerID string, ticketID uuid.UUID) error
	InvalidateTicket(ctx context.Context, ticketID uuid.UUID) error
	SetTicketPrice(ctx context.Context, ticketID uuid.UUID, price float64) error
	EnableDiscount(ctx context.Context) (string, error)
	DisableDiscount(ctx context.Context) (string, error)
	SetDiscountPolicy(ctx context.Context, percentage float64, active bool) (string, error)
	Dashboard(ctx context.Context) (*Dashboard, error)
	Restore(ctx context.Context) (int, error)
}

// deskImpl owns the event for the lifetime of the process. Every operation
// takes mu, so the ledger itself never sees concurrent callers.
type deskImpl struct {
	mu       sync.Mutex
	event    *event.RacingCarEvent
	store    CustomerStore
	prices   PriceList
	clock    clock.Clock
	logger   *slog.Logger
	lastSeat int
}

func NewDesk(ev *event.RacingCarEvent, store CustomerStore, prices PriceList, clk clock.Clock, logger *slog.Logger) Desk {
	return &deskImpl{
		event:  ev,
		store:  store,
		prices: prices,
		clock:  clk,
		logger: logger,
	}
}

func (d *deskImpl) RegisterCustomer(ctx context.Context, params RegisterCustomerParams) (*CustomerView, error) {
	if isBlank(params.ID) || isBlank(params.Name) || isBlank(params.Email) || isBlank(params.Phone) {
		return nil, errs.ErrMissingCustomerInfo
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	c := customer.NewCustomer(params.ID, params.Name, params.Email, params.Phone)
	if err := d.event.RegisterCustomer(c); err != nil {
		return nil, errs.Mark(err, errs.ErrCustomerAlreadyRegistered)
	}

	// The store is append-only, so a failed append is undone in memory only.
	if err := d.store.Append(ctx, c); err != nil {
		if uerr := d.event.UnregisterCustomer(c); uerr != nil {
			d.logger.Error("failed to roll back registration", "customer_id", c.ID(), "error", uerr)
		}
		return nil, errs.Mark(errs.Wrap(err, "persist customer"), errs.ErrStoreOperationFailed)
	}

	d.logger.Info("customer registered", "customer_id", c.ID(), "total_customers", d.event.TotalCustomers())
	return toCustomerView(c), nil
}

func (d *deskImpl) DeleteCustomer(_ context.Context, customerID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.event.CustomerByID(customerID)
	if !ok {
		return errs.ErrCustomerNotFound
	}
	if err := d.event.UnregisterCustomer(c); err != nil {
		return errs.Mark(err, errs.ErrCustomerNotFound)
	}

	d.logger.Info("customer unregistered", "customer_id", customerID)
	return nil
}

func (d *deskImpl) CustomerDetails(_ context.Context, customerID string) (*CustomerView, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.event.CustomerByID(customerID)
	if !ok {
		return nil, errs.ErrCustomerNotFound
	}
	return toCustomerView(c), nil
}

// BookTicket records the sale on the event and then the purchase on the
// customer. The two ledgers are updated one after the other, not atomically.
func (d *deskImpl) BookTicket(_ context.Context, params BookTicketParams) (*BookingReceipt, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.event.CustomerByID(params.CustomerID)
	if !ok {
		return nil, errs.ErrCustomerNotFound
	}

	variant, err := ticket.ParseVariant(params.TicketType)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidTicketType)
	}
	method, err := ParsePaymentMethod(params.PaymentMethod)
	if err != nil {
		return nil, err
	}

	listPrice := d.prices.PriceOf(variant)
	tk := ticket.New(variant, listPrice, d.lastSeat+1)

	booked, err := d.event.AddTicketSale(tk)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPreconditionViolation)
	}
	d.lastSeat = tk.Seat()
	c.AddPurchase(tk)

	d.logger.Info("ticket sold",
		"ticket_id", tk.ID().String(),
		"customer_id", c.ID(),
		"variant", variant.String(),
		"seat", tk.Seat(),
		"list_price", listPrice,
		"booked_price", booked,
		"payment_method", method.String(),
		"total_sales", d.event.TotalSales(),
	)

	return &BookingReceipt{
		Ticket:        toTicketView(tk),
		CustomerID:    c.ID(),
		CustomerName:  c.Name,
		PaymentMethod: method.String(),
		ListPrice:     listPrice,
		BookedPrice:   booked,
		BookedAt:      d.clock.Now(),
		Message:       fmt.Sprintf("Ticket : %s sold to\nCustomer : %s", variant.Label(), c.Name),
	}, nil
}

// CancelPurchase drops the ticket from the customer's history and
// invalidates it. Sales totals are not refunded.
func (d *deskImpl) CancelPurchase(_ context.Context, customerID string, ticketID uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	c, ok := d.event.CustomerByID(customerID)
	if !ok {
		return errs.ErrCustomerNotFound
	}
	tk, ok := c.PurchaseByTicketID(ticketID)
	if !ok {
		return errs.ErrPurchaseNotFound
	}
	if err := c.CancelPurchase(tk); err != nil {
		return errs.Mark(err, errs.ErrPurchaseNotFound)
	}
	tk.Invalidate()

	d.logger.Info("purchase canceled", "customer_id", customerID, "ticket_id", ticketID.String())
	return nil
}

func (d *deskImpl) InvalidateTicket(_ context.Context, ticketID uuid.UUID) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	tk, ok := d.event.TicketByID(ticketID)
	if !ok {
		return errs.ErrTicketNotFound
	}
	tk.Invalidate()
	return nil
}

func (d *deskImpl) SetTicketPrice(_ context.Context, ticketID uuid.UUID, price float64) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	tk, ok := d.event.TicketByID(ticketID)
	if !ok {
		return errs.ErrTicketNotFound
	}
	tk.SetPrice(price)
	return nil
}

func (d *deskImpl) EnableDiscount(_ context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	policy := d.event.DiscountPolicy()
	if policy == nil {
		return "", errs.Mark(event.ErrDiscountPolicyNotSet, errs.ErrPreconditionViolation)
	}
	policy.Enable()
	return policy.Details(), nil
}

func (d *deskImpl) DisableDiscount(_ context.Context) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	policy := d.event.DiscountPolicy()
	if policy == nil {
		return "", errs.Mark(event.ErrDiscountPolicyNotSet, errs.ErrPreconditionViolation)
	}
	policy.Disable()
	return policy.Details(), nil
}

func (d *deskImpl) SetDiscountPolicy(_ context.Context, percentage float64, active bool) (string, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	policy := discount.NewPolicy(percentage, active)
	d.event.SetDiscountPolicy(policy)

	d.logger.Info("discount policy replaced", "percentage", percentage, "active", active)
	return policy.Details(), nil
}

func (d *deskImpl) Dashboard(_ context.Context) (*Dashboard, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	dash := &Dashboard{
		EventName:      d.event.Name,
		Location:       d.event.Location,
		Date:           d.event.Date,
		Capacity:       d.event.Capacity(),
		TotalSales:     d.event.TotalSales(),
		TicketsSold:    d.event.TotalTicketsSold(),
		TotalCustomers: d.event.TotalCustomers(),
		PolicyDetails:  "No discount",
	}
	if policy := d.event.DiscountPolicy(); policy != nil {
		dash.DiscountActive = policy.IsActive()
		dash.DiscountPercentage = policy.Percentage()
		dash.PolicyDetails = policy.Details()
	}
	return dash, nil
}

// Restore registers every stored customer. Later records with an id that is
// already registered are skipped. Seat numbering resumes after the highest
// restored seat.
func (d *deskImpl) Restore(ctx context.Context) (int, error) {
	customers, err := d.store.LoadAll(ctx)
	if err != nil {
		return 0, errs.Mark(errs.Wrap(err, "load customers"), errs.ErrStoreOperationFailed)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	restored := 0
	for _, c := range customers {
		if err := d.event.RegisterCustomer(c); err != nil {
			if errs.Is(err, event.ErrCustomerAlreadyRegistered) {
				d.logger.Warn("skipping duplicate stored customer", "customer_id", c.ID())
				continue
			}
			return restored, err
		}
		for _, tk := range c.Purchases() {
			d.lastSeat = max(d.lastSeat, tk.Seat())
		}
		restored++
	}

	d.logger.Info("customers restored", "count", restored, "stored", len(customers))
	return restored, nil
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

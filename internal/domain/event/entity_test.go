//go:build unit

package event_test

import (
	"testing"

	"racing-ticket-desk/internal/domain/customer"
	"racing-ticket-desk/internal/domain/discount"
	"racing-ticket-desk/internal/domain/event"
	"racing-ticket-desk/internal/domain/ticket"
	"racing-ticket-desk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEvent(policy *discount.Policy) *event.RacingCarEvent {
	e := event.NewRacingCarEvent("Racing Car Event", "UAE", "05/09/2025", 300)
	if policy != nil {
		e.SetDiscountPolicy(policy)
	}
	return e
}

func TestRacingCarEvent_Customers(t *testing.T) {
	t.Run("register then lookup returns the same reference", func(t *testing.T) {
		e := newEvent(nil)
		c := builder.NewCustomerBuilder().BuildDomain()

		require.NoError(t, e.RegisterCustomer(c))

		got, ok := e.CustomerByID(c.ID())
		require.True(t, ok)
		assert.Same(t, c, got)
		assert.Equal(t, 1, e.TotalCustomers())
	})

	t.Run("lookup of unknown id is absent", func(t *testing.T) {
		e := newEvent(nil)
		got, ok := e.CustomerByID("missing")
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("duplicate id is rejected", func(t *testing.T) {
		e := newEvent(nil)
		require.NoError(t, e.RegisterCustomer(builder.NewCustomerBuilder().BuildDomain()))

		err := e.RegisterCustomer(builder.NewCustomerBuilder().WithName("Other").BuildDomain())

		require.ErrorIs(t, err, event.ErrCustomerAlreadyRegistered)
		assert.Equal(t, 1, e.TotalCustomers())
	})

	t.Run("unregister makes lookup absent", func(t *testing.T) {
		e := newEvent(nil)
		c := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, e.RegisterCustomer(c))

		require.NoError(t, e.UnregisterCustomer(c))

		_, ok := e.CustomerByID(c.ID())
		assert.False(t, ok)
		assert.Zero(t, e.TotalCustomers())
	})

	t.Run("unregister matches by reference, not id", func(t *testing.T) {
		e := newEvent(nil)
		registered := builder.NewCustomerBuilder().BuildDomain()
		lookalike := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, e.RegisterCustomer(registered))

		err := e.UnregisterCustomer(lookalike)

		require.ErrorIs(t, err, event.ErrCustomerNotRegistered)
		assert.Equal(t, 1, e.TotalCustomers())
	})

	t.Run("unregister twice fails the second time", func(t *testing.T) {
		e := newEvent(nil)
		c := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, e.RegisterCustomer(c))
		require.NoError(t, e.UnregisterCustomer(c))

		require.ErrorIs(t, e.UnregisterCustomer(c), event.ErrCustomerNotRegistered)
	})

	t.Run("customers keeps registration order", func(t *testing.T) {
		e := newEvent(nil)
		ids := []string{"4", "5", "6"}
		for _, id := range ids {
			require.NoError(t, e.RegisterCustomer(customer.NewCustomer(id, "n", "e", "p")))
		}

		got := e.Customers()
		require.Len(t, got, 3)
		for i, c := range got {
			assert.Equal(t, ids[i], c.ID())
		}
	})
}

func TestRacingCarEvent_Sales(t *testing.T) {
	t.Run("active policy discounts the booked price", func(t *testing.T) {
		e := newEvent(discount.NewPolicy(10, true))

		booked, err := e.AddTicketSale(ticket.NewSingleRace(100, 1))

		require.NoError(t, err)
		assert.Equal(t, 90.0, booked)
		assert.Equal(t, 90.0, e.TotalSales())
		assert.Equal(t, 1, e.TotalTicketsSold())
	})

	t.Run("inactive policy books the list price", func(t *testing.T) {
		e := newEvent(discount.NewPolicy(10, false))
		c := builder.NewCustomerBuilder().WithID("5").BuildDomain()
		require.NoError(t, e.RegisterCustomer(c))
		tk := ticket.NewSeasonMembership(1000, 1)

		_, err := e.AddTicketSale(tk)
		require.NoError(t, err)
		c.AddPurchase(tk)

		assert.Equal(t, 1000.0, e.TotalSales())
		assert.Equal(t, 1, c.PurchaseCount())
	})

	t.Run("policy changes never rewrite past sales", func(t *testing.T) {
		policy := discount.NewPolicy(10, true)
		e := newEvent(policy)

		_, err := e.AddTicketSale(ticket.NewSingleRace(100, 1))
		require.NoError(t, err)
		policy.Disable()
		_, err = e.AddTicketSale(ticket.NewSingleRace(100, 2))
		require.NoError(t, err)
		policy.Enable()

		assert.Equal(t, 190.0, e.TotalSales())

		e.SetDiscountPolicy(discount.NewPolicy(50, true))
		_, err = e.AddTicketSale(ticket.NewWeekendPackage(200, 3))
		require.NoError(t, err)

		assert.Equal(t, 290.0, e.TotalSales())
		assert.Equal(t, 3, e.TotalTicketsSold())
	})

	t.Run("total equals the sum of booked prices", func(t *testing.T) {
		policy := discount.NewPolicy(25, false)
		e := newEvent(policy)
		prices := []float64{100, 200, 1000, 100, 200}

		var want float64
		for i, p := range prices {
			if i%2 == 1 {
				policy.Enable()
			} else {
				policy.Disable()
			}
			booked, err := e.AddTicketSale(ticket.NewSingleRace(p, i))
			require.NoError(t, err)
			want += policy.Apply(p)
			assert.Equal(t, policy.Apply(p), booked)
			assert.Equal(t, i+1, e.TotalTicketsSold())
		}
		assert.Equal(t, want, e.TotalSales())
	})

	t.Run("invalidating a sold ticket keeps the total", func(t *testing.T) {
		e := newEvent(discount.NewPolicy(10, false))
		tk := ticket.NewSingleRace(100, 1)
		_, err := e.AddTicketSale(tk)
		require.NoError(t, err)

		tk.Invalidate()
		tk.SetPrice(1)

		assert.Equal(t, 100.0, e.TotalSales())
		assert.Equal(t, 1, e.TotalTicketsSold())
	})

	t.Run("sale without policy is rejected without side effects", func(t *testing.T) {
		e := newEvent(nil)

		_, err := e.AddTicketSale(ticket.NewSingleRace(100, 1))

		require.ErrorIs(t, err, event.ErrDiscountPolicyNotSet)
		assert.Zero(t, e.TotalSales())
		assert.Zero(t, e.TotalTicketsSold())
	})

	t.Run("sale does not touch purchase history", func(t *testing.T) {
		e := newEvent(discount.NewPolicy(0, true))
		c := builder.NewCustomerBuilder().BuildDomain()
		require.NoError(t, e.RegisterCustomer(c))

		_, err := e.AddTicketSale(ticket.NewSingleRace(100, 1))
		require.NoError(t, err)

		assert.Zero(t, c.PurchaseCount())
	})

	t.Run("ticket lookup by id", func(t *testing.T) {
		e := newEvent(discount.NewPolicy(0, false))
		tk := ticket.NewWeekendPackage(200, 4)
		_, err := e.AddTicketSale(tk)
		require.NoError(t, err)

		got, ok := e.TicketByID(tk.ID())
		require.True(t, ok)
		assert.Same(t, tk, got)

		_, ok = e.TicketByID(uuid.New())
		assert.False(t, ok)
	})

	t.Run("capacity is stored but not enforced", func(t *testing.T) {
		e := event.NewRacingCarEvent("Mini", "Track", "01/01/2026", 1)
		e.SetDiscountPolicy(discount.NewPolicy(0, false))

		for i := 0; i < 3; i++ {
			_, err := e.AddTicketSale(ticket.NewSingleRace(10, i))
			require.NoError(t, err)
		}

		assert.Equal(t, 1, e.Capacity())
		assert.Equal(t, 3, e.TotalTicketsSold())
	})
}

//go:build unit

package converter_test

import (
	"testing"

	"racing-ticket-desk/internal/domain/ticket"
	"racing-ticket-desk/internal/infra/converter"
	"racing-ticket-desk/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomerRecordRoundTrip(t *testing.T) {
	single := ticket.NewSingleRace(100, 1)
	season := ticket.NewSeasonMembership(1000, 2)
	season.Invalidate()
	c := builder.NewCustomerBuilder().WithPurchases(single, season).BuildDomain()

	rec := converter.CustomerToRecord(c)

	assert.Equal(t, "5", rec.ID)
	assert.Equal(t, "ahmed@gmail.com", rec.Email)
	require.Len(t, rec.Tickets, 2)
	assert.Equal(t, "SEASON_MEMBERSHIP", rec.Tickets[1].Variant)
	assert.False(t, rec.Tickets[1].Valid)

	got, err := converter.RecordToCustomer(rec)
	require.NoError(t, err)

	assert.Equal(t, c.ID(), got.ID())
	assert.Equal(t, c.Name, got.Name)
	assert.Equal(t, c.Phone, got.Phone)
	require.Equal(t, 2, got.PurchaseCount())
	purchases := got.Purchases()
	assert.Equal(t, single.ID(), purchases[0].ID())
	assert.Equal(t, ticket.SingleRace, purchases[0].Type())
	assert.Equal(t, 100.0, purchases[0].Price())
	assert.Equal(t, 1, purchases[0].Seat())
	assert.True(t, purchases[0].IsValid())
	assert.Equal(t, season.ID(), purchases[1].ID())
	assert.False(t, purchases[1].IsValid())
}

func TestRecordToCustomer_UnknownVariant(t *testing.T) {
	rec := converter.CustomerRecord{
		ID:   "7",
		Name: "Sara",
		Tickets: []converter.TicketRecord{
			{ID: uuid.New(), Variant: "VIP_BOX", Price: 50, Seat: 3, Valid: true},
		},
	}

	_, err := converter.RecordToCustomer(rec)

	assert.ErrorIs(t, err, ticket.ErrInvalidVariant)
}

func TestRecordsToCustomers_KeepsOrder(t *testing.T) {
	recs := []converter.CustomerRecord{
		{ID: "2", Name: "B"},
		{ID: "1", Name: "A"},
	}

	got, err := converter.RecordsToCustomers(recs)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "2", got[0].ID())
	assert.Equal(t, "1", got[1].ID())
	assert.Zero(t, got[0].PurchaseCount())
}

//go:build unit

package ticket_test

import (
	"testing"

	"racing-ticket-desk/internal/domain/ticket"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTicket(t *testing.T) {
	t.Run("constructors set the variant tag", func(t *testing.T) {
		cases := []struct {
			name    string
			build   func(float64, int) *ticket.Ticket
			variant ticket.Variant
			label   string
		}{
			{name: "single race", build: ticket.NewSingleRace, variant: ticket.SingleRace, label: "Single-Race Passes"},
			{name: "weekend package", build: ticket.NewWeekendPackage, variant: ticket.WeekendPackage, label: "Weekend Packages"},
			{name: "season membership", build: ticket.NewSeasonMembership, variant: ticket.SeasonMembership, label: "Season Ticket"},
		}
		for _, c := range cases {
			t.Run(c.name, func(t *testing.T) {
				tk := c.build(100, 7)

				assert.Equal(t, c.variant, tk.Type())
				assert.Equal(t, c.label, tk.Label())
				assert.Equal(t, 100.0, tk.Price())
				assert.Equal(t, 7, tk.Seat())
				assert.True(t, tk.IsValid())
				assert.NotEqual(t, uuid.Nil, tk.ID())
			})
		}
	})

	t.Run("invalidate is one-way and idempotent", func(t *testing.T) {
		tk := ticket.NewSingleRace(100, 1)

		tk.Invalidate()
		assert.False(t, tk.IsValid())

		tk.Invalidate()
		assert.False(t, tk.IsValid())
	})

	t.Run("set price accepts any value", func(t *testing.T) {
		tk := ticket.NewWeekendPackage(200, 1)

		tk.SetPrice(-5)
		assert.Equal(t, -5.0, tk.Price())

		tk.SetPrice(250.5)
		assert.Equal(t, 250.5, tk.Price())
	})

	t.Run("negative price accepted at construction", func(t *testing.T) {
		tk := ticket.NewSeasonMembership(-10, 0)
		assert.Equal(t, -10.0, tk.Price())
	})

	t.Run("reconstruct keeps every field", func(t *testing.T) {
		id := uuid.New()
		tk := ticket.Reconstruct(id, ticket.WeekendPackage, 180, 12, false)

		assert.Equal(t, id, tk.ID())
		assert.Equal(t, ticket.WeekendPackage, tk.Type())
		assert.Equal(t, 180.0, tk.Price())
		assert.Equal(t, 12, tk.Seat())
		assert.False(t, tk.IsValid())
	})

	t.Run("ids are unique", func(t *testing.T) {
		assert.NotEqual(t, ticket.NewSingleRace(1, 1).ID(), ticket.NewSingleRace(1, 1).ID())
	})
}

func TestParseVariant(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  ticket.Variant
		errIs error
	}{
		{name: "tag", input: "SINGLE_RACE", want: ticket.SingleRace},
		{name: "lowercase tag", input: "weekend_package", want: ticket.WeekendPackage},
		{name: "counter label", input: "Season Ticket", want: ticket.SeasonMembership},
		{name: "label with spaces", input: "  Single-Race Passes ", want: ticket.SingleRace},
		{name: "unknown", input: "VIP", errIs: ticket.ErrInvalidVariant},
		{name: "empty", input: "", errIs: ticket.ErrInvalidVariant},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := ticket.ParseVariant(c.input)
			if c.errIs != nil {
				require.ErrorIs(t, err, c.errIs)
				assert.False(t, got.IsValid())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.want, got)
			assert.True(t, got.IsValid())
		})
	}
}

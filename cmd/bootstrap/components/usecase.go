package components

import (
	"context"
	"log/slog"
	"time"

	"racing-ticket-desk/internal/domain/discount"
	"racing-ticket-desk/internal/domain/event"
	"racing-ticket-desk/internal/pkg/clock"
	"racing-ticket-desk/internal/pkg/config"
	"racing-ticket-desk/internal/usecase"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	fx.Provide(
		usecase.NewDesk,
	),
	fx.Invoke(restoreCustomers),
)

var usecaseBaseOption = fx.Provide(
	NewEventClock,
	NewRacingCarEvent,
	NewPriceList,
)

func NewRacingCarEvent(cfg config.Config) *event.RacingCarEvent {
	ev := event.NewRacingCarEvent(cfg.Event.Name, cfg.Event.Location, cfg.Event.Date, cfg.Event.Capacity)
	ev.SetDiscountPolicy(discount.NewPolicy(cfg.Discount.Percentage, cfg.Discount.Active))
	return ev
}

func NewEventClock(cfg config.Config) clock.Clock {
	return clock.NewEventClock(time.FixedZone(cfg.Log.TimeZone, cfg.Log.TimeZoneOffset))
}

func NewPriceList(cfg config.Config) usecase.PriceList {
	return usecase.PriceList{
		SingleRace:       cfg.Pricing.SingleRace,
		WeekendPackage:   cfg.Pricing.WeekendPackage,
		SeasonMembership: cfg.Pricing.SeasonMembership,
	}
}

// restoreCustomers optionally wipes the store and then re-registers every
// stored customer before the server starts taking requests.
func restoreCustomers(lc fx.Lifecycle, cfg config.Config, store usecase.CustomerStore, desk usecase.Desk, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if cfg.Store.ResetOnStart {
				if err := store.Reset(ctx); err != nil {
					return err
				}
				logger.Info("customer store reset")
			}
			if !cfg.Store.RestoreOnStart {
				return nil
			}
			_, err := desk.Restore(ctx)
			return err
		},
	})
}

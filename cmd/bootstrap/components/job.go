package components

import (
	"context"
	"log/slog"

	"racing-ticket-desk/internal/job"
	"racing-ticket-desk/internal/pkg/config"
	"racing-ticket-desk/internal/usecase"

	"go.uber.org/fx"
)

var JobModule = fx.Module("job",
	fx.Provide(
		NewSalesReporter,
	),
	fx.Invoke(scheduleSalesReport),
)

func NewSalesReporter(desk usecase.Desk, cfg config.Config, logger *slog.Logger) *job.SalesReporter {
	return job.NewSalesReporter(desk, cfg.Report, cfg.Log, logger)
}

func scheduleSalesReport(lc fx.Lifecycle, reporter *job.SalesReporter) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return reporter.Start()
		},
		OnStop: func(_ context.Context) error {
			return reporter.Stop()
		},
	})
}

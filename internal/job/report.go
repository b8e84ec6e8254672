package job

import (
	"context"
	"log/slog"
	"time"

	"racing-ticket-desk/internal/pkg/config"
	"racing-ticket-desk/internal/usecase"

	"github.com/go-co-op/gocron/v2"
)

// SalesReporter periodically logs the dashboard totals. A zero interval
// leaves it idle.
type SalesReporter struct {
	desk      usecase.Desk
	interval  time.Duration
	location  *time.Location
	logger    *slog.Logger
	scheduler gocron.Scheduler
}

func NewSalesReporter(desk usecase.Desk, cfg config.ReportConfig, logCfg config.LogConfig, logger *slog.Logger) *SalesReporter {
	return &SalesReporter{
		desk:     desk,
		interval: cfg.Interval,
		location: time.FixedZone(logCfg.TimeZone, logCfg.TimeZoneOffset),
		logger:   logger,
	}
}

func (r *SalesReporter) Start() error {
	if r.interval <= 0 {
		r.logger.Info("sales report disabled")
		return nil
	}

	s, err := gocron.NewScheduler(
		gocron.WithLocation(r.location),
	)
	if err != nil {
		return err
	}

	_, err = s.NewJob(
		gocron.DurationJob(r.interval),
		gocron.NewTask(r.Report, context.Background()),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return err
	}

	r.scheduler = s
	s.Start()
	r.logger.Info("sales report scheduled", "interval", r.interval.String())
	return nil
}

func (r *SalesReporter) Stop() error {
	if r.scheduler == nil {
		return nil
	}
	err := r.scheduler.Shutdown()
	r.scheduler = nil
	return err
}

func (r *SalesReporter) Report(ctx context.Context) {
	dash, err := r.desk.Dashboard(ctx)
	if err != nil {
		r.logger.Error("sales report failed", "error", err.Error())
		return
	}
	r.logger.Info("sales report",
		"event", dash.EventName,
		"total_sales", dash.TotalSales,
		"tickets_sold", dash.TicketsSold,
		"total_customers", dash.TotalCustomers,
		"discount", dash.PolicyDetails,
	)
}

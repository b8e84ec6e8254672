package bootstrap

import (
	"log/slog"

	"racing-ticket-desk/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logEffectiveConfig),
)

// logEffectiveConfig records the settings that change how the desk behaves.
// Credentials are left out.
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("desk configuration loaded",
		"event", cfg.Event.Name,
		"capacity", cfg.Event.Capacity,
		"store_driver", cfg.Store.Driver,
		"restore_on_start", cfg.Store.RestoreOnStart,
		"reset_on_start", cfg.Store.ResetOnStart,
		"discount_percentage", cfg.Discount.Percentage,
		"discount_active", cfg.Discount.Active,
		"report_interval", cfg.Report.Interval,
	)
}

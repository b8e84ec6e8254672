package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"racing-ticket-desk/internal/handler/api"
	"racing-ticket-desk/internal/handler/middleware"
	"racing-ticket-desk/internal/pkg/config"
	"racing-ticket-desk/internal/usecase"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Customer  *api.CustomerHandler
	Booking   *api.BookingHandler
	Ticket    *api.TicketHandler
	Discount  *api.DiscountHandler
	Dashboard *api.DashboardHandler
}

func NewHandlers(desk usecase.Desk) Handlers {
	return Handlers{
		Customer:  api.NewCustomerHandler(desk),
		Booking:   api.NewBookingHandler(desk),
		Ticket:    api.NewTicketHandler(desk),
		Discount:  api.NewDiscountHandler(desk),
		Dashboard: api.NewDashboardHandler(desk),
	}
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		customers := apiGroup.Group("/customers")
		{
			addRoutes(customers, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Customer.Register},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Customer.Get},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.Customer.Delete},
				{Method: http.MethodDelete, Path: "/:id/purchases/:ticketId", Handler: h.Customer.CancelPurchase},
			})
		}

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/bookings", Handler: h.Booking.Book},
			{Method: http.MethodGet, Path: "/dashboard", Handler: h.Dashboard.Get},
		})

		tickets := apiGroup.Group("/tickets")
		{
			addRoutes(tickets, []route{
				{Method: http.MethodPost, Path: "/:id/invalidate", Handler: h.Ticket.Invalidate},
				{Method: http.MethodPut, Path: "/:id/price", Handler: h.Ticket.SetPrice},
			})
		}

		discount := apiGroup.Group("/discount")
		{
			addRoutes(discount, []route{
				{Method: http.MethodPut, Path: "", Handler: h.Discount.Set},
				{Method: http.MethodPost, Path: "/enable", Handler: h.Discount.Enable},
				{Method: http.MethodPost, Path: "/disable", Handler: h.Discount.Disable},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}

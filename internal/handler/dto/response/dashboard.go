package response

import (
	"strconv"

	"racing-ticket-desk/internal/usecase"

	"github.com/jinzhu/copier"
)

type DashboardResponse struct {
	EventName          string  `json:"event_name"`
	Location           string  `json:"location"`
	Date               string  `json:"date"`
	Capacity           int     `json:"capacity"`
	Sales              string  `json:"total_sales"`
	TicketsSold        int     `json:"tickets_sold"`
	TotalCustomers     int     `json:"total_customers"`
	DiscountActive     bool    `json:"discount_active"`
	DiscountPercentage float64 `json:"discount_percentage"`
	PolicyDetails      string  `json:"policy_details"`
}

func FromDashboard(d *usecase.Dashboard) (*DashboardResponse, error) {
	res := &DashboardResponse{}
	if err := copier.Copy(res, d); err != nil {
		return nil, err
	}
	res.Sales = FormatSales(d.TotalSales)
	return res, nil
}

// FormatSales renders a sales total the way the desk displays it, e.g. "$90".
func FormatSales(total float64) string {
	return "$" + strconv.FormatFloat(total, 'f', -1, 64)
}

type DiscountResponse struct {
	Details string `json:"details"`
}

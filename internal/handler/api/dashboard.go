package api

import (
	"net/http"

	resdto "racing-ticket-desk/internal/handler/dto/response"
	"racing-ticket-desk/internal/handler/httperr"
	"racing-ticket-desk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	desk usecase.Desk
}

func NewDashboardHandler(desk usecase.Desk) *DashboardHandler {
	return &DashboardHandler{desk: desk}
}

// @Summary Sales dashboard
// @Description Event details, running totals and the discount in effect
// @Tags dashboard
// @Produce json
// @Success 200 {object} resdto.DashboardResponse
// @Router /api/dashboard [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	dash, err := h.desk.Dashboard(c.Request.Context())
	if err != nil {
		abortWithDeskError(c, err, "")
		return
	}
	res, err := resdto.FromDashboard(dash)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

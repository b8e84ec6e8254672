package api

import (
	"net/http"

	reqdto "racing-ticket-desk/internal/handler/dto/request"
	resdto "racing-ticket-desk/internal/handler/dto/response"
	"racing-ticket-desk/internal/handler/httperr"
	"racing-ticket-desk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	desk usecase.Desk
}

func NewBookingHandler(desk usecase.Desk) *BookingHandler {
	return &BookingHandler{desk: desk}
}

// @Summary Book ticket
// @Description Sell a ticket to a registered customer at the current discount
// @Tags bookings
// @Accept json
// @Produce json
// @Param request body reqdto.BookTicketRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/bookings [post]
func (h *BookingHandler) Book(c *gin.Context) {
	var req reqdto.BookTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	receipt, err := h.desk.BookTicket(c.Request.Context(), usecase.BookTicketParams{
		CustomerID:    req.CustomerID,
		TicketType:    req.TicketType,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		abortWithDeskError(c, err, "")
		return
	}

	res, err := resdto.FromBookingReceipt(receipt)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusCreated, res)
}

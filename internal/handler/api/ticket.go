package api

import (
	"net/http"

	reqdto "racing-ticket-desk/internal/handler/dto/request"
	"racing-ticket-desk/internal/handler/httperr"
	"racing-ticket-desk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type TicketHandler struct {
	desk usecase.Desk
}

func NewTicketHandler(desk usecase.Desk) *TicketHandler {
	return &TicketHandler{desk: desk}
}

// @Summary Invalidate ticket
// @Tags tickets
// @Param id path string true "Ticket ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/tickets/{id}/invalidate [post]
func (h *TicketHandler) Invalidate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket id", nil)
		return
	}
	if err := h.desk.InvalidateTicket(c.Request.Context(), id); err != nil {
		abortWithDeskError(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Override ticket price
// @Description Change the nominal price of a sold ticket. Sales totals are not recomputed.
// @Tags tickets
// @Accept json
// @Param id path string true "Ticket ID"
// @Param request body reqdto.SetTicketPriceRequest true "New price"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/tickets/{id}/price [put]
func (h *TicketHandler) SetPrice(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket id", nil)
		return
	}
	var req reqdto.SetTicketPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	if err := h.desk.SetTicketPrice(c.Request.Context(), id, *req.Price); err != nil {
		abortWithDeskError(c, err, "")
		return
	}
	c.Status(http.StatusNoContent)
}

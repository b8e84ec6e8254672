package api

import (
	"fmt"
	"net/http"

	reqdto "racing-ticket-desk/internal/handler/dto/request"
	resdto "racing-ticket-desk/internal/handler/dto/response"
	"racing-ticket-desk/internal/handler/httperr"
	"racing-ticket-desk/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type CustomerHandler struct {
	desk usecase.Desk
}

func NewCustomerHandler(desk usecase.Desk) *CustomerHandler {
	return &CustomerHandler{desk: desk}
}

// @Summary Register customer
// @Description Register a customer for the event and persist the record
// @Tags customers
// @Accept json
// @Produce json
// @Param request body reqdto.RegisterCustomerRequest true "Customer details"
// @Success 201 {object} resdto.CustomerResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/customers [post]
func (h *CustomerHandler) Register(c *gin.Context) {
	var req reqdto.RegisterCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	var params usecase.RegisterCustomerParams
	if err := copier.Copy(&params, &req); err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	view, err := h.desk.RegisterCustomer(c.Request.Context(), params)
	if err != nil {
		abortWithDeskError(c, err, "")
		return
	}
	h.respondCustomer(c, http.StatusCreated, view)
}

// @Summary Get customer
// @Description Show a registered customer with purchase history
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.CustomerResponse
// @Failure 404 {object} httperr.Response
// @Router /api/customers/{id} [get]
func (h *CustomerHandler) Get(c *gin.Context) {
	id := c.Param("id")
	view, err := h.desk.CustomerDetails(c.Request.Context(), id)
	if err != nil {
		abortWithDeskError(c, err, id)
		return
	}
	h.respondCustomer(c, http.StatusOK, view)
}

// @Summary Delete customer
// @Description Unregister a customer from the event
// @Tags customers
// @Produce json
// @Param id path string true "Customer ID"
// @Success 200 {object} resdto.MessageResponse
// @Failure 404 {object} httperr.Response
// @Router /api/customers/{id} [delete]
func (h *CustomerHandler) Delete(c *gin.Context) {
	id := c.Param("id")
	if err := h.desk.DeleteCustomer(c.Request.Context(), id); err != nil {
		abortWithDeskError(c, err, id)
		return
	}
	c.JSON(http.StatusOK, resdto.MessageResponse{
		Message: fmt.Sprintf("Customer with ID %s deleted.", id),
	})
}

// @Summary Cancel purchase
// @Description Remove a ticket from a customer's purchase history and invalidate it
// @Tags customers
// @Param id path string true "Customer ID"
// @Param ticketId path string true "Ticket ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/customers/{id}/purchases/{ticketId} [delete]
func (h *CustomerHandler) CancelPurchase(c *gin.Context) {
	id := c.Param("id")
	ticketID, err := uuid.Parse(c.Param("ticketId"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket id", nil)
		return
	}
	if err := h.desk.CancelPurchase(c.Request.Context(), id, ticketID); err != nil {
		abortWithDeskError(c, err, id)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CustomerHandler) respondCustomer(c *gin.Context, status int, view *usecase.CustomerView) {
	res, err := resdto.FromCustomerView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(status, res)
}

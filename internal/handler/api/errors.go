package api

import (
	"fmt"
	"net/http"

	"racing-ticket-desk/internal/handler/httperr"
	"racing-ticket-desk/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithDeskError maps desk failures to status codes. customerID is used in
// the not-found message when the caller addressed a customer by id.
func abortWithDeskError(c *gin.Context, err error, customerID string) {
	switch {
	case errs.Is(err, errs.ErrCustomerNotFound):
		msg := "Customer not found"
		if customerID != "" {
			msg = fmt.Sprintf("Customer with the id %s not found", customerID)
		}
		httperr.AbortWithError(c, http.StatusNotFound, err, msg, nil)
	case errs.Is(err, errs.ErrCustomerAlreadyRegistered):
		httperr.AbortWithError(c, http.StatusConflict, err, "Customer already registered", nil)
	case errs.Is(err, errs.ErrMissingCustomerInfo):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Missing Information", "Please fill in all fields")
	case errs.Is(err, errs.ErrPurchaseNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Purchase not found", nil)
	case errs.Is(err, errs.ErrTicketNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Ticket not found", nil)
	case errs.Is(err, errs.ErrInvalidTicketType):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid ticket type", nil)
	case errs.Is(err, errs.ErrInvalidPaymentMethod):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment method", nil)
	case errs.Is(err, errs.ErrPreconditionViolation):
		httperr.AbortWithError(c, http.StatusConflict, err, "No discount policy is set for the event", nil)
	case errs.Is(err, errs.ErrStoreOperationFailed):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Failed to save customer", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

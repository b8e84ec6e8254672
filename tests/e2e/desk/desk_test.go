//go:build e2e

package desk_test

import (
	"net/http"
	"testing"

	resdto "racing-ticket-desk/internal/handler/dto/response"
	"racing-ticket-desk/tests/common/dbtest"
	"racing-ticket-desk/tests/common/httptest"
	"racing-ticket-desk/tests/e2e"

	"github.com/stretchr/testify/suite"
)

const operator = "counter-1"

type DeskTestSuite struct {
	e2e.SharedSuite
}

func TestDeskSuite(t *testing.T) {
	suite.Run(t, new(DeskTestSuite))
}

func (s *DeskTestSuite) register(id string) {
	body := map[string]string{
		"id":    id,
		"name":  "Customer " + id,
		"email": id + "@example.com",
		"phone": "0501234567",
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/customers", body, operator)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	httptest.AssertHeaders(s.T(), w, map[string]string{"Content-Type": "application/json; charset=utf-8"})
}

func (s *DeskTestSuite) book(customerID, ticketType string) resdto.BookingResponse {
	body := map[string]string{
		"customer_id":    customerID,
		"ticket_type":    ticketType,
		"payment_method": "credit_card",
	}
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", body, operator)
	s.Require().Equal(http.StatusCreated, w.Code, w.Body.String())

	var resp resdto.BookingResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &resp)
	return resp
}

func (s *DeskTestSuite) dashboard() resdto.DashboardResponse {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/dashboard", nil, operator)
	s.Require().Equal(http.StatusOK, w.Code)

	var resp resdto.DashboardResponse
	httptest.DecodeResponseBody(s.T(), w.Body, &resp)
	return resp
}

func (s *DeskTestSuite) TestRegisterCustomer() {
	s.Run("registered customer is persisted", func() {
		s.register("C1")

		s.Equal(1, dbtest.CountCustomerRows(s.T(), s.DB, "C1"))
		s.Equal(1, s.dashboard().TotalCustomers)
	})

	s.Run("duplicate id is rejected and not persisted twice", func() {
		s.register("C1")

		body := map[string]string{"id": "C1", "name": "Other", "email": "o@example.com", "phone": "1"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/customers", body, operator)

		s.Equal(http.StatusConflict, w.Code)
		s.Equal(1, dbtest.CountCustomerRows(s.T(), s.DB, "C1"))
	})

	s.Run("blank field is missing information", func() {
		body := map[string]string{"id": "C2", "name": " ", "email": "c2@example.com", "phone": "1"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/customers", body, operator)

		s.Equal(http.StatusBadRequest, w.Code)
		s.Contains(w.Body.String(), "Missing Information")
		s.Equal(0, dbtest.CountCustomerRows(s.T(), s.DB, "C2"))
	})
}

func (s *DeskTestSuite) TestBookTicket() {
	s.Run("discounted sale updates the dashboard", func() {
		s.register("C1")

		receipt := s.book("C1", "SINGLE_RACE")

		s.Equal(100.0, receipt.ListPrice)
		s.Equal(90.0, receipt.BookedPrice)
		s.Equal(1, receipt.Ticket.Seat)

		dash := s.dashboard()
		s.Equal("$90", dash.Sales)
		s.Equal(1, dash.TicketsSold)
	})

	s.Run("seats are numbered in sale order", func() {
		s.register("C1")
		s.register("C2")

		first := s.book("C1", "SINGLE_RACE")
		second := s.book("C2", "WEEKEND_PACKAGE")

		s.Equal(1, first.Ticket.Seat)
		s.Equal(2, second.Ticket.Seat)
		s.Equal("$270", s.dashboard().Sales)
	})

	s.Run("unknown customer is not found", func() {
		body := map[string]string{"customer_id": "nobody", "ticket_type": "SINGLE_RACE", "payment_method": "credit_card"}
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/bookings", body, operator)

		s.Equal(http.StatusNotFound, w.Code)
	})

	s.Run("disabled discount sells at list price", func() {
		s.register("C1")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/discount/disable", nil, operator)
		s.Require().Equal(http.StatusOK, w.Code)

		receipt := s.book("C1", "SEASON_MEMBERSHIP")

		s.Equal(1000.0, receipt.BookedPrice)
	})
}

func (s *DeskTestSuite) TestCustomerPurchases() {
	s.Run("cancel removes the purchase from the history", func() {
		s.register("C1")
		receipt := s.book("C1", "SINGLE_RACE")

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete,
			"/api/customers/C1/purchases/"+receipt.Ticket.ID.String(), nil, operator)
		s.Require().Equal(http.StatusNoContent, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/customers/C1", nil, operator)
		s.Require().Equal(http.StatusOK, w.Code)

		var resp resdto.CustomerResponse
		httptest.DecodeResponseBody(s.T(), w.Body, &resp)
		s.Equal(0, resp.PurchaseCount)
		s.Empty(resp.Purchases)
		s.Equal("$90", s.dashboard().Sales)
	})
}

func (s *DeskTestSuite) TestRestoreOnRestart() {
	s.Run("customers survive a restart", func() {
		s.register("C1")
		s.register("C2")

		s.Router = e2e.BuildApp(s.T(), s.Config)

		dash := s.dashboard()
		s.Equal(2, dash.TotalCustomers)
		s.Equal(0, dash.TicketsSold)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/customers/C2", nil, operator)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("deleted customer stays in the store", func() {
		s.register("C1")
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodDelete, "/api/customers/C1", nil, operator)
		s.Require().Equal(http.StatusOK, w.Code)

		s.Equal(1, dbtest.CountCustomerRows(s.T(), s.DB, "C1"))

		s.Router = e2e.BuildApp(s.T(), s.Config)
		s.Equal(1, s.dashboard().TotalCustomers)
	})
}

package api

import (
	"net/http"

	reqdto "racing-ticket-desk/internal/handler/dto/request"
	resdto "racing-ticket-desk/internal/handler/dto/response"
	"racing-ticket-desk/internal/handler/httperr"
	"racing-ticket-desk/internal/usecase"

	"github.com/gin-gonic/gin"
)

type DiscountHandler struct {
	desk usecase.Desk
}

func NewDiscountHandler(desk usecase.Desk) *DiscountHandler {
	return &DiscountHandler{desk: desk}
}

// @Summary Enable discount
// @Tags discount
// @Produce json
// @Success 200 {object} resdto.DiscountResponse
// @Failure 409 {object} httperr.Response
// @Router /api/discount/enable [post]
func (h *DiscountHandler) Enable(c *gin.Context) {
	details, err := h.desk.EnableDiscount(c.Request.Context())
	if err != nil {
		abortWithDeskError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.DiscountResponse{Details: details})
}

// @Summary Disable discount
// @Tags discount
// @Produce json
// @Success 200 {object} resdto.DiscountResponse
// @Failure 409 {object} httperr.Response
// @Router /api/discount/disable [post]
func (h *DiscountHandler) Disable(c *gin.Context) {
	details, err := h.desk.DisableDiscount(c.Request.Context())
	if err != nil {
		abortWithDeskError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.DiscountResponse{Details: details})
}

// @Summary Replace discount policy
// @Tags discount
// @Accept json
// @Produce json
// @Param request body reqdto.SetDiscountRequest true "Discount policy"
// @Success 200 {object} resdto.DiscountResponse
// @Failure 400 {object} httperr.Response
// @Router /api/discount [put]
func (h *DiscountHandler) Set(c *gin.Context) {
	var req reqdto.SetDiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	details, err := h.desk.SetDiscountPolicy(c.Request.Context(), *req.Percentage, req.Active)
	if err != nil {
		abortWithDeskError(c, err, "")
		return
	}
	c.JSON(http.StatusOK, resdto.DiscountResponse{Details: details})
}

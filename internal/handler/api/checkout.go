package api

import (
	"errors"
	"net/http"

	"toolrental-service/internal/domain/holiday"
	reqdto "toolrental-service/internal/handler/dto/request"
	resdto "toolrental-service/internal/handler/dto/response"
	"toolrental-service/internal/handler/httperr"
	"toolrental-service/internal/pkg/errs"
	"toolrental-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type CheckoutHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
}

func NewCheckoutHandler(checkoutUseCase usecase.CheckoutUseCase) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
	}
}

// @Summary Checkout a tool rental
// @Description Compute a rental agreement for a tool, checkout date, rental day count, and discount percent
// @Tags checkout
// @Accept json
// @Produce json
// @Param request body reqdto.CheckoutRequest true "Checkout request"
// @Success 200 {object} resdto.AgreementResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	var req reqdto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}

	checkoutDate, err := req.ParseCheckoutDate()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid checkout date, expected YYYY-MM-DD", nil)
		return
	}

	params := usecase.CheckoutParams{
		ToolCode:        req.ToolCode,
		CheckoutDate:    checkoutDate,
		RentalDays:      req.RentalDays,
		DiscountPercent: req.DiscountPercent,
	}

	rentalAgreement, err := h.checkoutUseCase.Checkout(c.Request.Context(), params)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrInvalidToolCode):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid tool code", nil)
		case errors.Is(err, errs.ErrInvalidCheckoutDate):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Checkout date is required", nil)
		case errors.Is(err, errs.ErrInvalidRentalDays):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Rental days must be greater than zero", nil)
		case errors.Is(err, errs.ErrInvalidDiscountPercent):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Discount percent must be between 0 and 100", nil)
		case errors.Is(err, holiday.ErrInvalidRule):
			// Bad static configuration, not a caller error
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromAgreement(rentalAgreement))
}

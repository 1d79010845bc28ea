package public

import (
	"github.com/sofreh-next/internal/http/response"
	"github.com/sofreh-next/internal/service"

	"github.com/gin-gonic/gin"
)

var checkoutErrorRules = []mappedHandlerError{
	{target: service.ErrEmptyCart, code: response.CodeBadRequest, key: "error.checkout_empty_cart"},
}

// Checkout runs the simulated payment: it persists a receipt for the
// current cart, schedules its expiry, and clears the cart cookies.
func (h *Handler) Checkout(c *gin.Context) {
	state := h.loadCart(c)
	receipt, err := h.CheckoutService.Checkout(state)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "error.checkout_failed")
		return
	}
	h.CookieStore.Save(c.Writer, state.Clear())
	response.Success(c, receipt)
}

// GetReceipt returns a stored receipt while its delivery window is open.
func (h *Handler) GetReceipt(c *gin.Context) {
	receipt, err := h.CheckoutService.ReceiptByNo(c.Param("receiptNo"))
	if err != nil {
		respondWithMappedError(c, err, []mappedHandlerError{
			{target: service.ErrNotFound, code: response.CodeNotFound, key: "error.receipt_not_found"},
			{target: service.ErrInvalidInput, code: response.CodeBadRequest, key: "error.bad_request"},
		}, response.CodeInternal, "error.checkout_failed")
		return
	}
	response.Success(c, receipt)
}

package public

import (
	"github.com/sofreh-next/internal/cart"
	"github.com/sofreh-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// CartView is the cart state plus its derived aggregates.
type CartView struct {
	Items           []cart.LineItem      `json:"items"`
	CurrentStep     cart.CheckoutStep    `json:"currentStep"`
	DeliveryDetails cart.DeliveryDetails `json:"deliveryDetails"`
	TotalItems      int                  `json:"total_items"`
	UniqueItems     int                  `json:"unique_items"`
	Total           cart.Price           `json:"total"`
	IsEmpty         bool                 `json:"is_empty"`
}

func newCartView(state cart.State) CartView {
	return CartView{
		Items:           state.Items,
		CurrentStep:     state.CurrentStep,
		DeliveryDetails: state.DeliveryDetails,
		TotalItems:      state.TotalItems(),
		UniqueItems:     state.UniqueItems(),
		Total:           cart.NewPrice(state.Total()),
		IsEmpty:         state.IsEmpty(),
	}
}

// loadCart reads the cart cookies. Corrupt or missing cookies yield the
// empty state.
func (h *Handler) loadCart(c *gin.Context) cart.State {
	return h.CookieStore.Load(c.Request)
}

// saveCart writes the cart cookies and responds with the new view.
func (h *Handler) saveCart(c *gin.Context, state cart.State) {
	h.CookieStore.Save(c.Writer, state)
	response.Success(c, newCartView(state))
}

// GetCart returns the current cart without modifying it.
func (h *Handler) GetCart(c *gin.Context) {
	response.Success(c, newCartView(h.loadCart(c)))
}

// AddCartItem adds one unit of the posted item. The quantity field of the
// body is ignored; repeated calls increment the line.
func (h *Handler) AddCartItem(c *gin.Context) {
	var item cart.LineItem
	if err := c.ShouldBindJSON(&item); err != nil || item.ID == "" {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}
	h.saveCart(c, h.loadCart(c).AddItem(item))
}

// DecrementCartItem lowers a line by one unit, removing it at zero.
func (h *Handler) DecrementCartItem(c *gin.Context) {
	h.saveCart(c, h.loadCart(c).DecrementQuantity(c.Param("id")))
}

// SetCartItemQuantity sets a line to an absolute quantity. Zero or a
// negative value removes the line; unknown ids are a no-op.
func (h *Handler) SetCartItemQuantity(c *gin.Context) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.cart_item_invalid", nil)
		return
	}
	h.saveCart(c, h.loadCart(c).SetItemQuantity(c.Param("id"), req.Quantity))
}

// RemoveCartItem removes a line entirely.
func (h *Handler) RemoveCartItem(c *gin.Context) {
	h.saveCart(c, h.loadCart(c).RemoveItem(c.Param("id")))
}

// ClearCart resets the cart to the initial state.
func (h *Handler) ClearCart(c *gin.Context) {
	h.saveCart(c, h.loadCart(c).Clear())
}

// SetCheckoutStep moves the checkout flow to the requested step.
func (h *Handler) SetCheckoutStep(c *gin.Context) {
	var req struct {
		Step cart.CheckoutStep `json:"step" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	switch req.Step {
	case cart.StepCart, cart.StepDelivery, cart.StepPayment:
	default:
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	h.saveCart(c, h.loadCart(c).SetCheckoutStep(req.Step))
}

// DeliveryRequest carries the delivery-step mutations. Only the fields
// present in the body are applied, in the order they are declared here, so
// a combined update resolves the pairwise exclusions deterministically.
type DeliveryRequest struct {
	SelectedTime          *string `json:"selectedTime"`
	SelectedTable         *string `json:"selectedTable"`
	IsComingNow           *bool   `json:"isComingNow"`
	IsSelectingTableLater *bool   `json:"isSelectingTableLater"`
}

// SetDelivery applies delivery-detail mutations to the cart.
func (h *Handler) SetDelivery(c *gin.Context) {
	var req DeliveryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.bad_request", nil)
		return
	}
	state := h.loadCart(c)
	if req.SelectedTime != nil {
		state = state.SetDeliveryTime(req.SelectedTime)
	}
	if req.SelectedTable != nil {
		state = state.SetDeliveryTable(req.SelectedTable)
	}
	if req.IsComingNow != nil {
		state = state.SetComingNow(*req.IsComingNow)
	}
	if req.IsSelectingTableLater != nil {
		state = state.SetSelectingTableLater(*req.IsSelectingTableLater)
	}
	h.saveCart(c, state)
}

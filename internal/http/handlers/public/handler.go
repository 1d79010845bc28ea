package public

import "github.com/sofreh-next/internal/provider"

// Handler serves the public storefront API. Every endpoint is anonymous;
// the cart travels in cookies, not in a session.
type Handler struct {
	*provider.Container
}

// New creates the public handler.
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}

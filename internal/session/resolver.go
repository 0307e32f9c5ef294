// Package session resolves the anonymous cart identifier and the
// authenticated session identifier from HTTP-only cookies. Both are opaque
// backend-issued tokens passed through on every cart operation.
package session

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pupunkorvat/storefront/internal/domain"
)

const (
	cartCookie    = "cart-id"
	sessionCookie = "session-id"

	// Guest carts live for 10 days.
	cartCookieMaxAge = 60 * 60 * 24 * 10
)

// Resolver reads and writes the cart/session identity cookies. Secure
// controls the Secure cookie attribute (on in production).
type Resolver struct {
	Secure bool
}

func NewResolver(secure bool) *Resolver {
	return &Resolver{Secure: secure}
}

// FromRequest resolves the session identifiers for the current request.
// Missing cookies yield empty identifiers; the backend treats those as an
// anonymous session with no cart yet.
func (r *Resolver) FromRequest(c *gin.Context) domain.Session {
	cartID, _ := c.Cookie(cartCookie)
	sessionID, _ := c.Cookie(sessionCookie)
	return domain.Session{CartID: cartID, SessionID: sessionID}
}

// StoreCartID persists a backend-assigned cart ID for guest users. No-op
// when the backend did not assign one.
func (r *Resolver) StoreCartID(c *gin.Context, cartID string) {
	if cartID == "" {
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cartCookie, cartID, cartCookieMaxAge, "/", "", r.Secure, true)
}

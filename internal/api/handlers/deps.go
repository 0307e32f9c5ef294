package handlers

import (
	"github.com/gin-gonic/gin"
	"net/http"

	"github.com/pupunkorvat/storefront/internal/cart"
	"github.com/pupunkorvat/storefront/internal/checkout"
	"github.com/pupunkorvat/storefront/internal/session"
	"github.com/pupunkorvat/storefront/internal/storefront"
)

// Deps bundles the collaborators every handler needs.
type Deps struct {
	Client   *storefront.Client
	Carts    *cart.Manager
	Flows    *checkout.Manager
	Sessions *session.Resolver
	// BaseURL is the public storefront URL for payment callback links.
	BaseURL string
}

// respondFailure renders a failed operation result. Coded failures are
// conflicts the user can act on; uncoded ones are upstream failures.
func respondFailure(c *gin.Context, res cart.Result) {
	status := http.StatusBadGateway
	if res.Code != "" {
		status = http.StatusConflict
	}
	c.JSON(status, gin.H{"error": res.Message, "code": res.Code})
}

package storefront

import (
	"context"
	"net/http"

	"github.com/pupunkorvat/storefront/internal/domain"
)

// CheckoutParams is the provider-independent payload for payment session
// creation. OrderID is a freshly generated idempotent order identifier;
// ShipmentMethod is nil for ticket-only carts.
type CheckoutParams struct {
	CustomerData   domain.CustomerData            `json:"customerData"`
	ShipmentMethod *domain.CheckoutShipmentMethod `json:"shipmentMethod"`
	OrderID        string                         `json:"orderId"`
	SuccessURL     string                         `json:"successUrl"`
	CancelURL      string                         `json:"cancelUrl"`
}

type checkoutRequest struct {
	domain.Session
	CheckoutParams
}

// CreateStripeSession creates a Stripe checkout session for the cart.
func (c *Client) CreateStripeSession(ctx context.Context, p CheckoutParams, sess domain.Session) (*domain.StripeSession, error) {
	req := checkoutRequest{Session: sess, CheckoutParams: p}
	var resp domain.StripeSession
	if err := c.do(ctx, http.MethodPost, "/checkout/stripe", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// CreatePaytrailSession creates a Paytrail payment for the cart and returns
// the provider list for the embedded payment-method selection.
func (c *Client) CreatePaytrailSession(ctx context.Context, p CheckoutParams, sess domain.Session) (*domain.PaytrailSession, error) {
	req := checkoutRequest{Session: sess, CheckoutParams: p}
	var resp domain.PaytrailSession
	if err := c.do(ctx, http.MethodPost, "/checkout/paytrail", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

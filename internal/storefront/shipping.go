package storefront

import (
	"context"
	"net/http"

	"github.com/pupunkorvat/storefront/internal/domain"
)

// ShippingQuery narrows shipping options for a postal code: items for
// weight-based filtering, campaigns plus the applied discount amount so the
// backend computes free-shipping thresholds against the post-discount total.
type ShippingQuery struct {
	CartItems      []domain.CartItem `json:"cartItems,omitempty"`
	Campaigns      []domain.Campaign `json:"campaigns,omitempty"`
	DiscountAmount int64             `json:"discountAmount,omitempty"`
}

type shippingOptionsRequest struct {
	PostalCode string `json:"postalCode"`
	ShippingQuery
}

// GetShippingOptions fetches pickup points and home-delivery methods
// available for the postal code.
func (c *Client) GetShippingOptions(ctx context.Context, postalCode string, q ShippingQuery) (*domain.ShipmentOptions, error) {
	req := shippingOptionsRequest{PostalCode: postalCode, ShippingQuery: q}
	var resp domain.ShipmentOptions
	if err := c.do(ctx, http.MethodPost, "/shipping/options", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

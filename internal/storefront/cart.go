package storefront

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pupunkorvat/storefront/internal/domain"
)

// CartResponse is the backend's authoritative view of the cart after any
// read or mutation. CartID is set when the backend assigned a new cart to
// an anonymous session.
type CartResponse struct {
	Items  []domain.CartItem `json:"items"`
	CartID string            `json:"cartId,omitempty"`
}

// CartValidationResponse carries the validated (possibly pruned/adjusted)
// item list plus a report of everything the backend changed.
type CartValidationResponse struct {
	Items   []domain.CartItem        `json:"items"`
	Changes domain.ValidationChanges `json:"changes"`
}

type AddItemParams struct {
	domain.Session
	ProductID   string `json:"productId"`
	VariationID string `json:"variationId,omitempty"`
	Quantity    int    `json:"quantity"`
}

// UpdateQuantityParams adjusts a line item by a signed delta. Deltas, never
// absolute quantities: two rapid, possibly reordered requests still converge
// to the correct total instead of one overwriting the other.
type UpdateQuantityParams struct {
	domain.Session
	ProductID   string `json:"productId"`
	VariationID string `json:"variationId,omitempty"`
	Delta       int    `json:"delta"`
}

type RemoveItemParams struct {
	domain.Session
	ProductID   string `json:"productId"`
	VariationID string `json:"variationId,omitempty"`
}

type validateCartRequest struct {
	domain.Session
	Items     []domain.CartItem `json:"items"`
	Campaigns []domain.Campaign `json:"campaigns,omitempty"`
}

// GetCart fetches the current cart for the session.
func (c *Client) GetCart(ctx context.Context, sess domain.Session) (*CartResponse, error) {
	var resp CartResponse
	if err := c.do(ctx, http.MethodGet, "/cart"+sessionQuery(sess), nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// AddItem adds a product (or variation) to the cart.
func (c *Client) AddItem(ctx context.Context, p AddItemParams) (*CartResponse, error) {
	var resp CartResponse
	if err := c.do(ctx, http.MethodPost, "/cart/items", p, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UpdateQuantity applies an atomic quantity delta to a line item.
func (c *Client) UpdateQuantity(ctx context.Context, p UpdateQuantityParams) (*CartResponse, error) {
	var resp CartResponse
	if err := c.do(ctx, http.MethodPatch, "/cart/items/quantity", p, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// RemoveItem removes a line item from the cart.
func (c *Client) RemoveItem(ctx context.Context, p RemoveItemParams) (*CartResponse, error) {
	var resp CartResponse
	if err := c.do(ctx, http.MethodPost, "/cart/items/remove", p, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ValidateCart sends the local item list for a stock/price/campaign-conflict
// check and returns the adjusted list plus the change report.
func (c *Client) ValidateCart(ctx context.Context, sess domain.Session, items []domain.CartItem, campaigns []domain.Campaign) (*CartValidationResponse, error) {
	req := validateCartRequest{Session: sess, Items: items, Campaigns: campaigns}
	var resp CartValidationResponse
	if err := c.do(ctx, http.MethodPost, "/cart/validate", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func sessionQuery(sess domain.Session) string {
	q := url.Values{}
	if sess.CartID != "" {
		q.Set("cartId", sess.CartID)
	}
	if sess.SessionID != "" {
		q.Set("sessionId", sess.SessionID)
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

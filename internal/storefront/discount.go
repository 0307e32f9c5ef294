package storefront

import (
	"context"
	"net/http"

	"github.com/pupunkorvat/storefront/internal/domain"
)

// ApplyDiscountParams carries the code plus the current cart context so the
// backend can evaluate campaign conflicts and code validity in one call.
type ApplyDiscountParams struct {
	domain.Session
	Code      string            `json:"code"`
	CartItems []domain.CartItem `json:"cartItems,omitempty"`
	Campaigns []domain.Campaign `json:"campaigns,omitempty"`
}

type applyDiscountResponse struct {
	Discount domain.AppliedDiscount `json:"discount"`
}

type getDiscountResponse struct {
	Discount *domain.AppliedDiscount `json:"discount"`
}

// ApplyDiscountCode applies a discount code to the cart session. Fails with
// a coded *Error when the code is invalid, expired or conflicts with an
// active campaign.
func (c *Client) ApplyDiscountCode(ctx context.Context, p ApplyDiscountParams) (*domain.AppliedDiscount, error) {
	var resp applyDiscountResponse
	if err := c.do(ctx, http.MethodPost, "/discount-code/apply", p, &resp); err != nil {
		return nil, err
	}
	return &resp.Discount, nil
}

// GetDiscountCode returns the currently applied discount, nil when none.
func (c *Client) GetDiscountCode(ctx context.Context, sess domain.Session) (*domain.AppliedDiscount, error) {
	var resp getDiscountResponse
	if err := c.do(ctx, http.MethodGet, "/discount-code"+sessionQuery(sess), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Discount, nil
}

// RemoveDiscountCode clears the applied discount from the cart session.
func (c *Client) RemoveDiscountCode(ctx context.Context, sess domain.Session) error {
	return c.do(ctx, http.MethodPost, "/discount-code/remove", sess, nil)
}

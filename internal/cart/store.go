package cart

import (
	"context"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/pupunkorvat/storefront/internal/domain"
)

// Store is the authoritative local view of one cart session: the line items
// and the optionally applied discount. It owns the optimistic-update
// protocol: capture snapshot, apply speculative mutation, replace with the
// server's authoritative result on success, restore the snapshot on failure.
//
// The store is the single writer of its snapshot. The mutex guards local
// state only and is never held across a backend call, so reads stay
// responsive while a mutation is in flight, which is exactly when the
// optimistic state must be observable.
type Store struct {
	mu      sync.Mutex
	gateway *Gateway
	logger  *zap.Logger

	session  domain.Session
	items    []domain.CartItem
	discount *domain.AppliedDiscount

	// discountMessage is the user-facing explanation for the most recent
	// discount removal or rejection, cleared by the next successful apply.
	discountMessage string
}

// NewStore creates a cart store bound to one session.
func NewStore(gateway *Gateway, sess domain.Session, logger *zap.Logger) *Store {
	return &Store{gateway: gateway, session: sess, logger: logger}
}

// Session returns the session identifiers the store operates under,
// including any backend-assigned cart ID learned from mutations.
func (s *Store) Session() domain.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session
}

// Items returns a copy of the current line items.
func (s *Store) Items() []domain.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyItems(s.items)
}

// Discount returns a copy of the applied discount, nil when none.
func (s *Store) Discount() *domain.AppliedDiscount {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyDiscount(s.discount)
}

// DiscountMessage returns the user-facing message for the latest discount
// removal, empty when there is none.
func (s *Store) DiscountMessage() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.discountMessage
}

// IsEmpty reports whether the cart has no line items.
func (s *Store) IsEmpty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items) == 0
}

// RequiresShipping reports whether the cart holds any physical item.
// Ticket-only carts skip the shipping step entirely.
func (s *Store) RequiresShipping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if !item.IsTicket {
			return true
		}
	}
	return false
}

// Load replaces the local snapshot with the backend's cart. Cold read, no
// optimistic phase. A failed fetch means "no cart yet": the cart is left
// empty and no error is reported.
func (s *Store) Load(ctx context.Context) Result {
	resp, res := s.gateway.fetchCart(ctx, s.Session())
	if !res.OK {
		s.mu.Lock()
		s.items = nil
		s.mu.Unlock()
		return Succeeded()
	}

	s.mu.Lock()
	s.items = resp.Items
	s.adoptCartID(resp.CartID)
	s.mu.Unlock()
	return Succeeded()
}

// AddItem adds one unit of a product to the cart. The server-returned item
// set replaces local state on success; failure leaves local state untouched
// and surfaces the backend's message and code.
func (s *Store) AddItem(ctx context.Context, productID, variationID string) Result {
	resp, res := s.gateway.addItem(ctx, s.Session(), productID, variationID)
	if !res.OK {
		return res
	}

	s.mu.Lock()
	s.items = resp.Items
	s.adoptCartID(resp.CartID)
	s.mu.Unlock()
	return res
}

// ChangeQuantity shifts a line item's quantity by delta. The mutation is
// optimistic: local state changes before the backend call resolves so the
// UI stays responsive. On success the server's returned snapshot supersedes
// the optimistic guess; on failure the snapshot captured immediately before
// this call's own optimistic write is restored.
func (s *Store) ChangeQuantity(ctx context.Context, productID, variationID string, delta int) Result {
	s.mu.Lock()
	previous := takeSnapshot(s.items, s.discount)
	s.items = applyDelta(s.items, productID, variationID, delta)
	sess := s.session
	s.mu.Unlock()

	resp, res := s.gateway.updateQuantity(ctx, sess, productID, variationID, delta)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !res.OK {
		s.items = previous.items
		s.discount = previous.discount
		return res
	}
	s.items = resp.Items
	return res
}

// RemoveItem removes a line item. Not optimistic: the server result replaces
// local items on success, failure reports the error without local mutation.
func (s *Store) RemoveItem(ctx context.Context, productID, variationID string) Result {
	resp, res := s.gateway.removeItem(ctx, s.Session(), productID, variationID)
	if !res.OK {
		return res
	}

	s.mu.Lock()
	s.items = resp.Items
	s.mu.Unlock()
	return res
}

// Validate sends the full local item list and active campaigns for a
// stock/price/campaign-conflict check. The validated list replaces local
// items; when the backend removed the discount coupon the local discount is
// cleared and a user-facing removal message recorded. The change report is
// returned so callers can decide whether to block navigation.
func (s *Store) Validate(ctx context.Context, campaigns []domain.Campaign) (*domain.ValidationChanges, Result) {
	resp, res := s.gateway.validate(ctx, s.Session(), s.Items(), campaigns)
	if !res.OK {
		return nil, res
	}

	s.mu.Lock()
	s.items = resp.Items
	if resp.Changes.DiscountCouponRemoved {
		s.discount = nil
		s.discountMessage = discountRemovalMessage(resp.Changes.DiscountRemovalReason)
	}
	s.mu.Unlock()

	changes := resp.Changes
	return &changes, res
}

// ApplyDiscount applies a discount code to the cart. The code is
// whitespace-trimmed and uppercased before submission. On failure the
// backend's specific message is surfaced so the user understands why the
// code was rejected.
func (s *Store) ApplyDiscount(ctx context.Context, code string, campaigns []domain.Campaign) Result {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	if normalized == "" {
		return FailedWith("Syötä alennuskoodi.")
	}

	discount, res := s.gateway.applyDiscount(ctx, s.Session(), normalized, s.Items(), campaigns)

	s.mu.Lock()
	defer s.mu.Unlock()
	if !res.OK {
		s.discountMessage = res.Message
		return res
	}
	s.discount = discount
	s.discountMessage = ""
	return res
}

// RemoveDiscount clears the applied discount via the backend. Never
// optimistic: a discount shown as removed but still charged is a worse
// failure than a stale display, so the local discount is only cleared after
// the backend confirms.
func (s *Store) RemoveDiscount(ctx context.Context) Result {
	res := s.gateway.removeDiscount(ctx, s.Session())
	if !res.OK {
		return res
	}

	s.mu.Lock()
	s.discount = nil
	s.discountMessage = ""
	s.mu.Unlock()
	return res
}

// adoptCartID records a backend-assigned cart ID. Callers hold s.mu.
func (s *Store) adoptCartID(cartID string) {
	if cartID != "" && cartID != s.session.CartID {
		s.session.CartID = cartID
	}
}

package cart

import (
	"github.com/pupunkorvat/storefront/internal/domain"
)

// snapshot is the unit of optimistic mutation and rollback: the full line
// item list plus the applied discount at one point in time. A failed
// mutation restores the snapshot captured immediately before its own
// optimistic write.
type snapshot struct {
	items    []domain.CartItem
	discount *domain.AppliedDiscount
}

func takeSnapshot(items []domain.CartItem, discount *domain.AppliedDiscount) snapshot {
	return snapshot{items: copyItems(items), discount: copyDiscount(discount)}
}

func copyItems(items []domain.CartItem) []domain.CartItem {
	if items == nil {
		return nil
	}
	out := make([]domain.CartItem, len(items))
	copy(out, items)
	return out
}

func copyDiscount(d *domain.AppliedDiscount) *domain.AppliedDiscount {
	if d == nil {
		return nil
	}
	dup := *d
	return &dup
}

// applyDelta returns a new item list with the matching line's quantity
// shifted by delta. Pure transformation; unmatched lines are untouched and
// the input slice is never mutated.
func applyDelta(items []domain.CartItem, productID, variationID string, delta int) []domain.CartItem {
	out := copyItems(items)
	for i := range out {
		if out[i].Matches(productID, variationID) {
			out[i].Quantity += delta
			break
		}
	}
	return out
}

package storefront

import (
	"sort"

	"github.com/pupunkorvat/storefront/internal/domain"
)

// CartTotal computes the display total of the cart in cents with campaign
// benefits applied. This mirrors what the backend charges but is only used
// for presentation (free-shipping thresholds, discount amounts); the backend
// remains authoritative for the actual order total.
func CartTotal(items []domain.CartItem, campaigns []domain.Campaign) int64 {
	var total int64
	for _, item := range items {
		total += item.Price * int64(item.Quantity)
	}
	for _, c := range campaigns {
		total -= campaignBenefit(items, c)
	}
	if total < 0 {
		total = 0
	}
	return total
}

// campaignBenefit returns the cents a buy-X-pay-Y campaign takes off the
// cart: for every full group of BuyQuantity eligible units, the cheapest
// BuyQuantity-PayQuantity units are free.
func campaignBenefit(items []domain.CartItem, c domain.Campaign) int64 {
	if c.Type != domain.CampaignTypeBuyXPayY || c.BuyQuantity <= 0 || c.PayQuantity <= 0 || c.PayQuantity >= c.BuyQuantity {
		return 0
	}

	var unitPrices []int64
	for _, item := range items {
		if item.IsTicket || !c.AppliesTo(item.ProductID) {
			continue
		}
		for i := 0; i < item.Quantity; i++ {
			unitPrices = append(unitPrices, item.Price)
		}
	}

	freeUnits := (len(unitPrices) / c.BuyQuantity) * (c.BuyQuantity - c.PayQuantity)
	if freeUnits == 0 {
		return 0
	}

	sort.Slice(unitPrices, func(i, j int) bool { return unitPrices[i] < unitPrices[j] })

	var benefit int64
	for i := 0; i < freeUnits; i++ {
		benefit += unitPrices[i]
	}
	return benefit
}

// DiscountAmount computes the cents a discount code takes off the given cart
// total. Percentage values round half-up; fixed amounts are capped at the
// total so the result never goes negative.
func DiscountAmount(cartTotal int64, d *domain.AppliedDiscount) int64 {
	if d == nil || cartTotal <= 0 {
		return 0
	}
	var amount int64
	switch d.DiscountType {
	case domain.DiscountTypePercentage:
		amount = (cartTotal*d.DiscountValue + 50) / 100
	case domain.DiscountTypeFixedAmount:
		amount = d.DiscountValue
	}
	if amount > cartTotal {
		amount = cartTotal
	}
	if amount < 0 {
		amount = 0
	}
	return amount
}

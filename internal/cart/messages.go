package cart

// Discount removal reasons reported by cart validation.
const (
	RemovalReasonCampaignConflict = "CAMPAIGN_CONFLICT"
	RemovalReasonExpired          = "EXPIRED"
	RemovalReasonUsageLimit       = "USAGE_LIMIT_REACHED"
)

// discountRemovalMessage maps a machine-readable removal reason to the
// user-facing text shown when validation strips the discount coupon.
func discountRemovalMessage(reason string) string {
	switch reason {
	case RemovalReasonCampaignConflict:
		return "Alennuskoodi poistettiin: koodi ei kelpaa yhdessä kampanjan kanssa."
	case RemovalReasonExpired:
		return "Alennuskoodi poistettiin: koodi on vanhentunut."
	case RemovalReasonUsageLimit:
		return "Alennuskoodi poistettiin: koodin käyttökerrat on käytetty."
	default:
		return "Alennuskoodi poistettiin korista."
	}
}

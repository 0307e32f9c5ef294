package domain

// DiscountType is the kind of an applied discount code.
type DiscountType string

const (
	DiscountTypePercentage  DiscountType = "PERCENTAGE"
	DiscountTypeFixedAmount DiscountType = "FIXED_AMOUNT"
)

// IsValid checks if the discount type is valid
func (t DiscountType) IsValid() bool {
	switch t {
	case DiscountTypePercentage, DiscountTypeFixedAmount:
		return true
	default:
		return false
	}
}

// CampaignType is the kind of a promotional campaign.
type CampaignType string

const (
	// CampaignTypeBuyXPayY is a "buy X, pay for Y" campaign: for every X
	// eligible units the cheapest X-Y are free.
	CampaignTypeBuyXPayY CampaignType = "BUY_X_PAY_Y"
)

// PaymentMethod names a payment provider the merchant can enable.
const (
	PaymentMethodStripe   = "stripe"
	PaymentMethodPaytrail = "paytrail"
)

// TicketStatus is the scanner-visible state of an event ticket.
type TicketStatus string

const (
	TicketStatusValid   TicketStatus = "VALID"
	TicketStatusUsed    TicketStatus = "USED"
	TicketStatusInvalid TicketStatus = "INVALID"
)

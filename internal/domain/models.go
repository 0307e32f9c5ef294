package domain

// Session carries the opaque cart/session identifiers resolved from cookies.
// Both are issued by the backend and passed through on every call.
type Session struct {
	CartID    string `json:"cartId,omitempty"`
	SessionID string `json:"sessionId,omitempty"`
}

// Key returns the identifier used to key per-session state. Anonymous
// sessions have no key until the backend assigns a cart ID.
func (s Session) Key() string {
	if s.CartID != "" {
		return s.CartID
	}
	return s.SessionID
}

// CartItem is one line in the cart, unique by (ProductID, VariationID).
// Price fields are denormalized display values in cents; the backend owns
// the authoritative pricing.
type CartItem struct {
	ProductID     string `json:"productId"`
	VariationID   string `json:"variationId,omitempty"`
	Name          string `json:"name"`
	VariationName string `json:"variationName,omitempty"`
	Image         string `json:"image,omitempty"`
	Price         int64  `json:"price"`
	Quantity      int    `json:"quantity"`
	IsTicket      bool   `json:"isTicket"`
}

// Matches reports whether the line identifies the given product/variation pair.
func (i CartItem) Matches(productID, variationID string) bool {
	return i.ProductID == productID && i.VariationID == variationID
}

// AppliedDiscount is the single discount code applied to a cart session.
type AppliedDiscount struct {
	Code          string       `json:"code"`
	DiscountType  DiscountType `json:"discountType"`
	DiscountValue int64        `json:"discountValue"`
}

// Campaign is a backend-defined promotional rule. Campaigns are evaluated by
// the backend; locally they only feed display totals and conflict checks.
type Campaign struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        CampaignType `json:"type"`
	BuyQuantity int          `json:"buyQuantity,omitempty"`
	PayQuantity int          `json:"payQuantity,omitempty"`
	ProductIDs  []string     `json:"productIds,omitempty"`
}

// AppliesTo reports whether the campaign covers the given product.
// An empty product list means the campaign is storewide.
func (c Campaign) AppliesTo(productID string) bool {
	if len(c.ProductIDs) == 0 {
		return true
	}
	for _, id := range c.ProductIDs {
		if id == productID {
			return true
		}
	}
	return false
}

// ValidationChanges is the structured change report returned by cart
// validation: what the backend pruned or adjusted, and whether the applied
// discount code was removed along with a machine-readable reason.
type ValidationChanges struct {
	RemovedItems          int    `json:"removedItems"`
	QuantityAdjusted      int    `json:"quantityAdjusted"`
	PriceChanged          int    `json:"priceChanged"`
	DiscountCouponRemoved bool   `json:"discountCouponRemoved"`
	DiscountRemovalReason string `json:"discountRemovalReason,omitempty"`
}

// HasChanges reports whether validation altered the cart in any way.
func (v ValidationChanges) HasChanges() bool {
	return v.RemovedItems > 0 || v.QuantityAdjusted > 0 || v.PriceChanged > 0 || v.DiscountCouponRemoved
}

// HomeDeliveryOption is a shipping method delivered to the customer's address.
// FreeShippingThreshold is nil for methods without threshold-based free
// shipping; Price and the threshold are in cents.
type HomeDeliveryOption struct {
	ID                    string `json:"id"`
	Name                  string `json:"name"`
	Description           string `json:"description,omitempty"`
	Carrier               string `json:"carrier,omitempty"`
	Logo                  string `json:"logo,omitempty"`
	Price                 int64  `json:"price"`
	FreeShippingThreshold *int64 `json:"freeShippingThreshold"`
	EstimatedDelivery     string `json:"estimatedDelivery,omitempty"`
}

// PickupPointOption is a carrier pickup point offered for a shipment method.
// Distance is meters from the customer's postal code, nil when unknown.
type PickupPointOption struct {
	ID                    string `json:"id"`
	ShipmentMethodID      string `json:"shipmentMethodId"`
	ServiceID             string `json:"serviceId,omitempty"`
	Name                  string `json:"name"`
	Carrier               string `json:"carrier,omitempty"`
	Logo                  string `json:"logo,omitempty"`
	Address               string `json:"address,omitempty"`
	PostalCode            string `json:"postalCode,omitempty"`
	City                  string `json:"city,omitempty"`
	Price                 int64  `json:"price"`
	FreeShippingThreshold *int64 `json:"freeShippingThreshold"`
	Distance              *int   `json:"distance"`
}

// ShipmentOptions is the backend's response for a postal code: pickup points
// and home-delivery methods, already filtered by location and cart weight.
type ShipmentOptions struct {
	HomeDelivery []HomeDeliveryOption `json:"homeDelivery"`
	PickupPoints []PickupPointOption  `json:"pickupPoints"`
}

// CheckoutShipmentMethod is the shipment choice sent to checkout session
// creation. PickupID and ServiceID are set only for pickup-point choices.
type CheckoutShipmentMethod struct {
	ShipmentMethodID string  `json:"shipmentMethodId"`
	PickupID         *string `json:"pickupId"`
	ServiceID        *string `json:"serviceId"`
}

// CustomerData is the customer form captured during checkout.
type CustomerData struct {
	FirstName  string `json:"first_name" binding:"required" validate:"required"`
	LastName   string `json:"last_name" binding:"required" validate:"required"`
	Email      string `json:"email" binding:"required,email" validate:"required,email"`
	Phone      string `json:"phone,omitempty" validate:"omitempty,min=5"`
	Address    string `json:"address" binding:"required" validate:"required"`
	City       string `json:"city" binding:"required" validate:"required"`
	PostalCode string `json:"postal_code" binding:"required,len=5" validate:"required,len=5,numeric"`
}

// StoreConfig is the hosted store's configuration relevant to checkout:
// active campaigns and which payment methods the merchant has enabled.
type StoreConfig struct {
	StoreName string         `json:"storeName"`
	Campaigns []Campaign     `json:"campaigns"`
	Payments  PaymentsConfig `json:"payments"`
}

type PaymentsConfig struct {
	Methods []string `json:"methods"`
}

// StripeSession is the provider payload for a Stripe handoff: the customer
// is redirected to a Stripe-hosted payment page.
type StripeSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// PaytrailSession is the provider payload for a Paytrail handoff: an embedded
// payment-method selection widget built from the returned providers.
type PaytrailSession struct {
	TransactionID string             `json:"transactionId"`
	Providers     []PaytrailProvider `json:"providers"`
}

type PaytrailProvider struct {
	Name       string              `json:"name"`
	URL        string              `json:"url"`
	Icon       string              `json:"icon,omitempty"`
	Parameters []PaytrailFormField `json:"parameters,omitempty"`
}

type PaytrailFormField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Ticket is an event ticket looked up by the scanner.
type Ticket struct {
	Code      string       `json:"code"`
	EventID   string       `json:"eventId"`
	EventName string       `json:"eventName,omitempty"`
	Status    TicketStatus `json:"status"`
	UsedAt    string       `json:"usedAt,omitempty"`
}

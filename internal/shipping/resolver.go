// Package shipping normalizes the backend's heterogeneous shipping-option
// shapes (pickup points vs. home delivery) into the single selection
// contract checkout consumes, and computes free-shipping presentation.
package shipping

import (
	"fmt"

	"github.com/pupunkorvat/storefront/internal/domain"
)

// MethodKind discriminates the two option shapes.
type MethodKind string

const (
	KindPickup   MethodKind = "pickup"
	KindDelivery MethodKind = "delivery"
)

// Selection is the user's shipment choice. PickupPointID and ServiceID are
// non-nil only for pickup-point choices; constructors enforce that a
// selection is never a mix of the two shapes.
type Selection struct {
	ShipmentMethodID string  `json:"shipmentMethodId"`
	PickupPointID    *string `json:"pickupPointId"`
	ServiceID        *string `json:"serviceId"`
}

// PickupSelection builds the selection for a pickup point.
func PickupSelection(p domain.PickupPointOption) Selection {
	sel := Selection{ShipmentMethodID: p.ShipmentMethodID}
	pickupID := p.ID
	sel.PickupPointID = &pickupID
	if p.ServiceID != "" {
		serviceID := p.ServiceID
		sel.ServiceID = &serviceID
	}
	return sel
}

// DeliverySelection builds the selection for a home-delivery method.
func DeliverySelection(o domain.HomeDeliveryOption) Selection {
	return Selection{ShipmentMethodID: o.ID}
}

// NewSelection normalizes raw identifiers into a well-formed Selection: a
// service ID is only meaningful alongside a pickup point and is dropped
// otherwise.
func NewSelection(shipmentMethodID string, pickupPointID, serviceID *string) Selection {
	sel := Selection{ShipmentMethodID: shipmentMethodID}
	if pickupPointID != nil && *pickupPointID != "" {
		sel.PickupPointID = pickupPointID
		if serviceID != nil && *serviceID != "" {
			sel.ServiceID = serviceID
		}
	}
	return sel
}

// IsPickup reports whether the selection points at a pickup point.
func (s Selection) IsPickup() bool {
	return s.PickupPointID != nil
}

// CheckoutMethod converts the selection into the payload checkout session
// creation expects.
func (s Selection) CheckoutMethod() *domain.CheckoutShipmentMethod {
	return &domain.CheckoutShipmentMethod{
		ShipmentMethodID: s.ShipmentMethodID,
		PickupID:         s.PickupPointID,
		ServiceID:        s.ServiceID,
	}
}

// FreeShippingStatus is the free-shipping presentation for one method.
// Shown is false for methods without a threshold (inherently free methods
// like pickup-at-store never advertise threshold-based free shipping).
type FreeShippingStatus struct {
	Shown     bool  `json:"shown"`
	Free      bool  `json:"free"`
	Remaining int64 `json:"remaining,omitempty"`
}

// FreeShippingFor evaluates a method's threshold against the cart total,
// which must already be net of any applied discount.
func FreeShippingFor(threshold *int64, cartTotal int64) FreeShippingStatus {
	if threshold == nil {
		return FreeShippingStatus{}
	}
	if cartTotal >= *threshold {
		return FreeShippingStatus{Shown: true, Free: true}
	}
	return FreeShippingStatus{Shown: true, Remaining: *threshold - cartTotal}
}

// MethodView is one selectable shipping method normalized for presentation.
// Selection is the exact payload to submit when the user picks this method.
type MethodView struct {
	Kind              MethodKind         `json:"kind"`
	Name              string             `json:"name"`
	Carrier           string             `json:"carrier,omitempty"`
	Logo              string             `json:"logo,omitempty"`
	Description       string             `json:"description,omitempty"`
	Address           string             `json:"address,omitempty"`
	PostalCode        string             `json:"postalCode,omitempty"`
	City              string             `json:"city,omitempty"`
	Price             int64              `json:"price"`
	PriceDisplay      string             `json:"priceDisplay"`
	Distance          string             `json:"distance,omitempty"`
	EstimatedDelivery string             `json:"estimatedDelivery,omitempty"`
	FreeShipping      FreeShippingStatus `json:"freeShipping"`
	Selection         Selection          `json:"selection"`
}

// Resolve flattens the backend response into an ordered view list, pickup
// points first. cartTotal must already be net of any applied discount.
func Resolve(opts *domain.ShipmentOptions, cartTotal int64) []MethodView {
	if opts == nil {
		return nil
	}

	views := make([]MethodView, 0, len(opts.PickupPoints)+len(opts.HomeDelivery))

	for _, point := range opts.PickupPoints {
		view := MethodView{
			Kind:         KindPickup,
			Name:         point.Name,
			Carrier:      point.Carrier,
			Logo:         point.Logo,
			Address:      point.Address,
			PostalCode:   point.PostalCode,
			City:         point.City,
			Price:        point.Price,
			PriceDisplay: FormatPrice(point.Price),
			FreeShipping: FreeShippingFor(point.FreeShippingThreshold, cartTotal),
			Selection:    PickupSelection(point),
		}
		if point.Distance != nil {
			view.Distance = FormatDistance(*point.Distance)
		}
		views = append(views, view)
	}

	for _, option := range opts.HomeDelivery {
		views = append(views, MethodView{
			Kind:              KindDelivery,
			Name:              option.Name,
			Carrier:           option.Carrier,
			Logo:              option.Logo,
			Description:       option.Description,
			Price:             option.Price,
			PriceDisplay:      FormatPrice(option.Price),
			EstimatedDelivery: option.EstimatedDelivery,
			FreeShipping:      FreeShippingFor(option.FreeShippingThreshold, cartTotal),
			Selection:         DeliverySelection(option),
		})
	}

	return views
}

// FormatPrice renders cents as a euro amount, e.g. "5.90€".
func FormatPrice(cents int64) string {
	return fmt.Sprintf("%.2f€", float64(cents)/100)
}

// FormatDistance renders meters as "650m" or "1.2km".
func FormatDistance(meters int) string {
	if meters < 1000 {
		return fmt.Sprintf("%dm", meters)
	}
	return fmt.Sprintf("%.1fkm", float64(meters)/1000)
}

package shipping

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pupunkorvat/storefront/internal/domain"
)

func int64Ptr(v int64) *int64 { return &v }
func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestFreeShippingForNilThresholdNeverShown(t *testing.T) {
	status := FreeShippingFor(nil, 100000)

	require.False(t, status.Shown)
	require.False(t, status.Free)
	require.Zero(t, status.Remaining)
}

func TestFreeShippingForThresholdReached(t *testing.T) {
	status := FreeShippingFor(int64Ptr(5000), 5000)
	require.True(t, status.Shown)
	require.True(t, status.Free)
	require.Zero(t, status.Remaining)

	status = FreeShippingFor(int64Ptr(5000), 7500)
	require.True(t, status.Free)
}

func TestFreeShippingForBelowThresholdReportsRemaining(t *testing.T) {
	status := FreeShippingFor(int64Ptr(5000), 3200)

	require.True(t, status.Shown)
	require.False(t, status.Free)
	require.Equal(t, int64(1800), status.Remaining)
}

func TestPickupSelectionCarriesPointAndService(t *testing.T) {
	sel := PickupSelection(domain.PickupPointOption{
		ID:               "pp-1",
		ShipmentMethodID: "sm-1",
		ServiceID:        "2103",
	})

	require.Equal(t, "sm-1", sel.ShipmentMethodID)
	require.NotNil(t, sel.PickupPointID)
	require.Equal(t, "pp-1", *sel.PickupPointID)
	require.NotNil(t, sel.ServiceID)
	require.Equal(t, "2103", *sel.ServiceID)
	require.True(t, sel.IsPickup())
}

func TestDeliverySelectionHasNoPickupFields(t *testing.T) {
	sel := DeliverySelection(domain.HomeDeliveryOption{ID: "sm-2"})

	require.Equal(t, "sm-2", sel.ShipmentMethodID)
	require.Nil(t, sel.PickupPointID)
	require.Nil(t, sel.ServiceID)
	require.False(t, sel.IsPickup())
}

func TestNewSelectionDropsServiceWithoutPickupPoint(t *testing.T) {
	sel := NewSelection("sm-1", nil, strPtr("2103"))
	require.Nil(t, sel.ServiceID, "a service ID without a pickup point is meaningless")

	sel = NewSelection("sm-1", strPtr(""), strPtr("2103"))
	require.Nil(t, sel.PickupPointID)
	require.Nil(t, sel.ServiceID)

	sel = NewSelection("sm-1", strPtr("pp-1"), strPtr("2103"))
	require.NotNil(t, sel.PickupPointID)
	require.NotNil(t, sel.ServiceID)
}

func TestCheckoutMethodMirrorsSelection(t *testing.T) {
	sel := NewSelection("sm-1", strPtr("pp-1"), strPtr("2103"))

	method := sel.CheckoutMethod()

	require.Equal(t, "sm-1", method.ShipmentMethodID)
	require.Equal(t, "pp-1", *method.PickupID)
	require.Equal(t, "2103", *method.ServiceID)
}

func TestResolveOrdersPickupPointsFirst(t *testing.T) {
	opts := &domain.ShipmentOptions{
		HomeDelivery: []domain.HomeDeliveryOption{
			{ID: "sm-home", Name: "Kotiinkuljetus", Price: 990, FreeShippingThreshold: int64Ptr(8000)},
		},
		PickupPoints: []domain.PickupPointOption{
			{ID: "pp-1", ShipmentMethodID: "sm-pickup", Name: "R-kioski Keskusta", Price: 490, Distance: intPtr(650)},
			{ID: "pp-2", ShipmentMethodID: "sm-pickup", Name: "Posti Lielahti", Price: 490, Distance: intPtr(4300)},
		},
	}

	views := Resolve(opts, 5000)

	require.Len(t, views, 3)
	require.Equal(t, KindPickup, views[0].Kind)
	require.Equal(t, KindPickup, views[1].Kind)
	require.Equal(t, KindDelivery, views[2].Kind)

	require.Equal(t, "650m", views[0].Distance)
	require.Equal(t, "4.3km", views[1].Distance)
	require.Equal(t, "4.90€", views[0].PriceDisplay)

	// No threshold on the pickup points, threshold unmet on delivery
	require.False(t, views[0].FreeShipping.Shown)
	require.True(t, views[2].FreeShipping.Shown)
	require.Equal(t, int64(3000), views[2].FreeShipping.Remaining)

	require.True(t, views[0].Selection.IsPickup())
	require.False(t, views[2].Selection.IsPickup())
}

func TestResolveNilOptions(t *testing.T) {
	require.Nil(t, Resolve(nil, 1000))
}

func TestFormatPrice(t *testing.T) {
	require.Equal(t, "5.90€", FormatPrice(590))
	require.Equal(t, "0.00€", FormatPrice(0))
	require.Equal(t, "120.00€", FormatPrice(12000))
}

func TestFormatDistance(t *testing.T) {
	require.Equal(t, "650m", FormatDistance(650))
	require.Equal(t, "999m", FormatDistance(999))
	require.Equal(t, "1.0km", FormatDistance(1000))
	require.Equal(t, "12.5km", FormatDistance(12500))
}

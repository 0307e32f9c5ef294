package checkout

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pupunkorvat/storefront/internal/domain"
	"github.com/pupunkorvat/storefront/internal/shipping"
	"github.com/pupunkorvat/storefront/internal/storefront"
)

type fakeCart struct {
	items    []domain.CartItem
	discount *domain.AppliedDiscount
}

func (f *fakeCart) Items() []domain.CartItem          { return f.items }
func (f *fakeCart) Discount() *domain.AppliedDiscount { return f.discount }
func (f *fakeCart) RequiresShipping() bool {
	for _, item := range f.items {
		if !item.IsTicket {
			return true
		}
	}
	return false
}

type fakeShipping struct {
	fn func(ctx context.Context, postalCode string, q storefront.ShippingQuery) (*domain.ShipmentOptions, error)
}

func (f *fakeShipping) GetShippingOptions(ctx context.Context, postalCode string, q storefront.ShippingQuery) (*domain.ShipmentOptions, error) {
	return f.fn(ctx, postalCode, q)
}

type fakeProvider struct {
	name   string
	fn     func(ctx context.Context, p storefront.CheckoutParams, sess domain.Session) (*PaymentSession, error)
	params *storefront.CheckoutParams
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) CreateSession(ctx context.Context, p storefront.CheckoutParams, sess domain.Session) (*PaymentSession, error) {
	f.params = &p
	if f.fn != nil {
		return f.fn(ctx, p, sess)
	}
	return &PaymentSession{Provider: f.name, OrderID: p.OrderID, RedirectURL: "https://pay.example/" + p.OrderID}, nil
}

func validCustomer() domain.CustomerData {
	return domain.CustomerData{
		FirstName:  "Maija",
		LastName:   "Meikäläinen",
		Email:      "maija@example.fi",
		Phone:      "0401234567",
		Address:    "Korukatu 3",
		City:       "Tampere",
		PostalCode: "33100",
	}
}

func physicalCart() *fakeCart {
	return &fakeCart{items: []domain.CartItem{{ProductID: "p1", Price: 2500, Quantity: 2}}}
}

func ticketCart() *fakeCart {
	return &fakeCart{items: []domain.CartItem{{ProductID: "t1", Price: 1500, Quantity: 1, IsTicket: true}}}
}

func singleDeliveryOptions() *domain.ShipmentOptions {
	return &domain.ShipmentOptions{
		HomeDelivery: []domain.HomeDeliveryOption{{ID: "sm-1", Name: "Kotiinkuljetus", Price: 590}},
	}
}

func newTestFlow(cart *fakeCart, ship ShippingAPI, provider Provider) *Flow {
	return NewFlow(cart, ship, provider, nil, domain.Session{CartID: "cart-1"}, "https://shop.example", zap.NewNop())
}

func TestFlowWithPhysicalGoodsWalksAllThreeSteps(t *testing.T) {
	ship := &fakeShipping{fn: func(ctx context.Context, postalCode string, q storefront.ShippingQuery) (*domain.ShipmentOptions, error) {
		require.Equal(t, "33100", postalCode)
		return singleDeliveryOptions(), nil
	}}
	provider := &fakeProvider{name: domain.PaymentMethodStripe}
	flow := newTestFlow(physicalCart(), ship, provider)

	require.Equal(t, StepCustomerData, flow.Step())

	res := flow.SubmitCustomerData(context.Background(), validCustomer())
	require.True(t, res.OK)
	require.Equal(t, StepShippingSelection, flow.Step())
	require.Len(t, flow.ShippingMethods(), 1)

	res = flow.SelectShipment(flow.ShippingMethods()[0].Selection)
	require.True(t, res.OK)

	res = flow.ConfirmShipment(context.Background())
	require.True(t, res.OK)
	require.Equal(t, StepPaymentHandoff, flow.Step())

	payment := flow.Payment()
	require.NotNil(t, payment)
	require.NotNil(t, provider.params.ShipmentMethod)
	require.Equal(t, "sm-1", provider.params.ShipmentMethod.ShipmentMethodID)
}

func TestFlowTicketOnlySkipsShipping(t *testing.T) {
	ship := &fakeShipping{fn: func(ctx context.Context, postalCode string, q storefront.ShippingQuery) (*domain.ShipmentOptions, error) {
		t.Fatal("ticket-only flows must not fetch shipping options")
		return nil, nil
	}}
	provider := &fakeProvider{name: domain.PaymentMethodPaytrail}
	flow := newTestFlow(ticketCart(), ship, provider)

	res := flow.SubmitCustomerData(context.Background(), validCustomer())

	require.True(t, res.OK)
	require.Equal(t, StepPaymentHandoff, flow.Step())
	require.Nil(t, provider.params.ShipmentMethod)
}

func TestSubmitCustomerDataRejectsInvalidData(t *testing.T) {
	provider := &fakeProvider{name: domain.PaymentMethodStripe}
	flow := newTestFlow(physicalCart(), &fakeShipping{}, provider)

	customer := validCustomer()
	customer.PostalCode = "331"

	res := flow.SubmitCustomerData(context.Background(), customer)

	require.False(t, res.OK)
	require.Equal(t, StepCustomerData, flow.Step())
	require.Nil(t, flow.CustomerData())
}

func TestSubmitCustomerDataStaysOnStepWhenOptionsFetchFails(t *testing.T) {
	ship := &fakeShipping{fn: func(ctx context.Context, postalCode string, q storefront.ShippingQuery) (*domain.ShipmentOptions, error) {
		return nil, errors.New("upstream timeout")
	}}
	provider := &fakeProvider{name: domain.PaymentMethodStripe}
	flow := newTestFlow(physicalCart(), ship, provider)

	res := flow.SubmitCustomerData(context.Background(), validCustomer())

	require.False(t, res.OK)
	require.Equal(t, StepCustomerData, flow.Step())
	require.NotNil(t, flow.CustomerData(), "captured data survives the failed fetch so the form re-renders filled in")
}

func TestConfirmShipmentRequiresSelection(t *testing.T) {
	ship := &fakeShipping{fn: func(ctx context.Context, postalCode string, q storefront.ShippingQuery) (*domain.ShipmentOptions, error) {
		return singleDeliveryOptions(), nil
	}}
	provider := &fakeProvider{name: domain.PaymentMethodStripe}
	flow := newTestFlow(physicalCart(), ship, provider)
	require.True(t, flow.SubmitCustomerData(context.Background(), validCustomer()).OK)

	res := flow.ConfirmShipment(context.Background())

	require.False(t, res.OK)
	require.Equal(t, StepShippingSelection, flow.Step())
}

func TestBackDiscardsSelectionKeepsCustomerData(t *testing.T) {
	ship := &fakeShipping{fn: func(ctx context.Context, postalCode string, q storefront.ShippingQuery) (*domain.ShipmentOptions, error) {
		return singleDeliveryOptions(), nil
	}}
	provider := &fakeProvider{name: domain.PaymentMethodStripe}
	flow := newTestFlow(physicalCart(), ship, provider)
	require.True(t, flow.SubmitCustomerData(context.Background(), validCustomer()).OK)
	require.True(t, flow.SelectShipment(flow.ShippingMethods()[0].Selection).OK)

	res := flow.Back()

	require.True(t, res.OK)
	require.Equal(t, StepCustomerData, flow.Step())
	require.Nil(t, flow.Selection())
	customer := flow.CustomerData()
	require.NotNil(t, customer)
	require.Equal(t, "Maija", customer.FirstName)
}

func TestStepGuardsRejectOutOfOrderActions(t *testing.T) {
	provider := &fakeProvider{name: domain.PaymentMethodStripe}
	flow := newTestFlow(physicalCart(), &fakeShipping{}, provider)

	require.False(t, flow.SelectShipment(shipping.Selection{ShipmentMethodID: "sm-1"}).OK)
	require.False(t, flow.ConfirmShipment(context.Background()).OK)
	require.False(t, flow.Back().OK)
	require.Equal(t, StepCustomerData, flow.Step())
}

func TestPaymentHandoffIsTerminal(t *testing.T) {
	provider := &fakeProvider{name: domain.PaymentMethodPaytrail}
	flow := newTestFlow(ticketCart(), &fakeShipping{}, provider)
	require.True(t, flow.SubmitCustomerData(context.Background(), validCustomer()).OK)

	require.False(t, flow.SubmitCustomerData(context.Background(), validCustomer()).OK)
	require.False(t, flow.Back().OK)
	require.Equal(t, StepPaymentHandoff, flow.Step())
}

func TestFailedPaymentSessionKeepsFlowOnShippingStep(t *testing.T) {
	ship := &fakeShipping{fn: func(ctx context.Context, postalCode string, q storefront.ShippingQuery) (*domain.ShipmentOptions, error) {
		return singleDeliveryOptions(), nil
	}}
	provider := &fakeProvider{
		name: domain.PaymentMethodStripe,
		fn: func(ctx context.Context, p storefront.CheckoutParams, sess domain.Session) (*PaymentSession, error) {
			return nil, errors.New("provider unavailable")
		},
	}
	flow := newTestFlow(physicalCart(), ship, provider)
	require.True(t, flow.SubmitCustomerData(context.Background(), validCustomer()).OK)
	require.True(t, flow.SelectShipment(flow.ShippingMethods()[0].Selection).OK)

	res := flow.ConfirmShipment(context.Background())

	require.False(t, res.OK)
	require.Equal(t, StepShippingSelection, flow.Step())
	require.NotNil(t, flow.Selection(), "selection survives so the user can just retry")
	require.Nil(t, flow.Payment())
}

func TestPaymentSessionCarriesOrderIDAndCallbackURLs(t *testing.T) {
	provider := &fakeProvider{name: domain.PaymentMethodPaytrail}
	flow := newTestFlow(ticketCart(), &fakeShipping{}, provider)

	require.True(t, flow.SubmitCustomerData(context.Background(), validCustomer()).OK)

	params := provider.params
	require.NotNil(t, params)
	_, err := uuid.Parse(params.OrderID)
	require.NoError(t, err)
	require.Equal(t, "https://shop.example/payment/success/"+params.OrderID, params.SuccessURL)
	require.Equal(t, "https://shop.example/payment/cancel/"+params.OrderID, params.CancelURL)
	require.True(t, strings.HasPrefix(params.SuccessURL, "https://shop.example/"))
}

func TestCreatePaymentSessionRevalidatesCustomerData(t *testing.T) {
	ship := &fakeShipping{fn: func(ctx context.Context, postalCode string, q storefront.ShippingQuery) (*domain.ShipmentOptions, error) {
		return singleDeliveryOptions(), nil
	}}
	provider := &fakeProvider{name: domain.PaymentMethodStripe}
	flow := newTestFlow(physicalCart(), ship, provider)
	require.True(t, flow.SubmitCustomerData(context.Background(), validCustomer()).OK)
	require.True(t, flow.SelectShipment(flow.ShippingMethods()[0].Selection).OK)

	// Corrupt the captured data in place; the handoff must refuse it.
	flow.mu.Lock()
	flow.customer.Email = "not-an-email"
	flow.mu.Unlock()

	res := flow.ConfirmShipment(context.Background())

	require.False(t, res.OK)
	require.Nil(t, provider.params, "provider must not be called with invalid customer data")
}

func TestSelectProviderPrefersPaytrail(t *testing.T) {
	p, err := SelectProvider([]string{domain.PaymentMethodStripe, domain.PaymentMethodPaytrail}, nil)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentMethodPaytrail, p.Name())

	p, err = SelectProvider([]string{domain.PaymentMethodStripe}, nil)
	require.NoError(t, err)
	require.Equal(t, domain.PaymentMethodStripe, p.Name())

	_, err = SelectProvider([]string{"klarna"}, nil)
	require.Error(t, err)

	_, err = SelectProvider(nil, nil)
	require.Error(t, err)
}

func TestStepCanTransitionTo(t *testing.T) {
	require.True(t, StepCustomerData.CanTransitionTo(StepShippingSelection, true))
	require.False(t, StepCustomerData.CanTransitionTo(StepPaymentHandoff, true))
	require.True(t, StepCustomerData.CanTransitionTo(StepPaymentHandoff, false))
	require.False(t, StepCustomerData.CanTransitionTo(StepShippingSelection, false))
	require.True(t, StepShippingSelection.CanTransitionTo(StepCustomerData, true))
	require.True(t, StepShippingSelection.CanTransitionTo(StepPaymentHandoff, true))
	require.False(t, StepPaymentHandoff.CanTransitionTo(StepCustomerData, true))
}

package checkout

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/pupunkorvat/storefront/internal/cart"
	"github.com/pupunkorvat/storefront/internal/domain"
	"github.com/pupunkorvat/storefront/internal/shipping"
	"github.com/pupunkorvat/storefront/internal/storefront"
)

// CartReader is the read-only view of the cart store the flow consumes.
// The flow never mutates cart state; discount changes happen before
// checkout starts.
type CartReader interface {
	Items() []domain.CartItem
	Discount() *domain.AppliedDiscount
	RequiresShipping() bool
}

// ShippingAPI fetches shipment options for a postal code.
type ShippingAPI interface {
	GetShippingOptions(ctx context.Context, postalCode string, q storefront.ShippingQuery) (*domain.ShipmentOptions, error)
}

const (
	msgWrongStep        = "Toiminto ei ole mahdollinen tässä vaiheessa."
	msgSelectionMissing = "Valitse toimitustapa."
	msgCustomerInvalid  = "Tarkista asiakastiedot."
)

// Flow drives one customer through checkout: customer data capture,
// shipping selection for carts with physical goods, and handoff to the
// configured payment provider. Every failed transition keeps the flow on
// its current step with the error surfaced; no transition is fatal.
type Flow struct {
	mu          sync.Mutex
	step        Step
	cart        CartReader
	shippingAPI ShippingAPI
	provider    Provider
	campaigns   []domain.Campaign
	session     domain.Session
	baseURL     string
	logger      *zap.Logger

	customer  *domain.CustomerData
	options   *domain.ShipmentOptions
	methods   []shipping.MethodView
	selection *shipping.Selection
	payment   *PaymentSession
}

// NewFlow starts a checkout flow at the customer-data step. The payment
// provider has already been selected from store configuration and is fixed
// for the flow's lifetime.
func NewFlow(cartStore CartReader, shippingAPI ShippingAPI, provider Provider, campaigns []domain.Campaign, sess domain.Session, baseURL string, logger *zap.Logger) *Flow {
	return &Flow{
		step:        StepCustomerData,
		cart:        cartStore,
		shippingAPI: shippingAPI,
		provider:    provider,
		campaigns:   campaigns,
		session:     sess,
		baseURL:     baseURL,
		logger:      logger,
	}
}

// Step returns the current wizard step.
func (f *Flow) Step() Step {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.step
}

// RequiresShipping reports whether this flow includes the shipping step.
func (f *Flow) RequiresShipping() bool {
	return f.cart.RequiresShipping()
}

// CustomerData returns the captured customer data, nil before submission.
// Preserved across backward transitions so the form re-renders filled in.
func (f *Flow) CustomerData() *domain.CustomerData {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.customer == nil {
		return nil
	}
	dup := *f.customer
	return &dup
}

// ShippingMethods returns the normalized shipping options for the
// shipping-selection step.
func (f *Flow) ShippingMethods() []shipping.MethodView {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.methods
}

// Selection returns the current shipment selection, nil when none is made.
func (f *Flow) Selection() *shipping.Selection {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.selection == nil {
		return nil
	}
	dup := *f.selection
	return &dup
}

// Payment returns the provider handoff payload once the flow reached the
// payment step.
func (f *Flow) Payment() *PaymentSession {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.payment
}

// SubmitCustomerData captures validated customer data and advances the
// flow: ticket-only carts go straight to payment session creation, carts
// with physical goods fetch shipment options for the submitted postal code.
// On backend failure the flow stays on the customer-data step with the
// captured data preserved.
func (f *Flow) SubmitCustomerData(ctx context.Context, data domain.CustomerData) cart.Result {
	f.mu.Lock()
	if f.step != StepCustomerData {
		f.mu.Unlock()
		return cart.FailedWith(msgWrongStep)
	}
	if err := ValidateCustomerData(&data); err != nil {
		f.mu.Unlock()
		return cart.FailedWith(msgCustomerInvalid)
	}
	f.customer = &data
	f.mu.Unlock()

	// Ticket-only carts skip shipping entirely
	if !f.cart.RequiresShipping() {
		payment, err := f.createPaymentSession(ctx, nil)
		if err != nil {
			return cart.Failed(err)
		}
		f.mu.Lock()
		f.payment = payment
		f.step = StepPaymentHandoff
		f.mu.Unlock()
		return cart.Succeeded()
	}

	items := f.cart.Items()
	discountAmount := storefront.DiscountAmount(storefront.CartTotal(items, f.campaigns), f.cart.Discount())
	options, err := f.shippingAPI.GetShippingOptions(ctx, data.PostalCode, storefront.ShippingQuery{
		CartItems:      items,
		Campaigns:      f.campaigns,
		DiscountAmount: discountAmount,
	})
	if err != nil {
		f.logger.Warn("failed to fetch shipping options",
			zap.String("postalCode", data.PostalCode),
			zap.Error(err),
		)
		return cart.Failed(err)
	}

	f.mu.Lock()
	f.options = options
	f.methods = shipping.Resolve(options, f.totalAfterDiscount(items))
	f.step = StepShippingSelection
	f.mu.Unlock()
	return cart.Succeeded()
}

// SelectShipment records the user's shipment choice on the shipping step.
func (f *Flow) SelectShipment(sel shipping.Selection) cart.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepShippingSelection {
		return cart.FailedWith(msgWrongStep)
	}
	f.selection = &sel
	return cart.Succeeded()
}

// ConfirmShipment requests the payment session for the selected shipment
// method. Customer data is re-validated against its schema first. On
// failure the flow stays on the shipping step with the form re-enabled.
func (f *Flow) ConfirmShipment(ctx context.Context) cart.Result {
	f.mu.Lock()
	if f.step != StepShippingSelection {
		f.mu.Unlock()
		return cart.FailedWith(msgWrongStep)
	}
	if f.selection == nil {
		f.mu.Unlock()
		return cart.FailedWith(msgSelectionMissing)
	}
	method := f.selection.CheckoutMethod()
	f.mu.Unlock()

	payment, err := f.createPaymentSession(ctx, method)
	if err != nil {
		return cart.Failed(err)
	}

	f.mu.Lock()
	f.payment = payment
	f.step = StepPaymentHandoff
	f.mu.Unlock()
	return cart.Succeeded()
}

// Back returns from shipping selection to customer data. The shipment
// selection is discarded since it is not valid for a re-entered postal code,
// but the captured customer data is preserved.
func (f *Flow) Back() cart.Result {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.step != StepShippingSelection {
		return cart.FailedWith(msgWrongStep)
	}
	f.selection = nil
	f.step = StepCustomerData
	return cart.Succeeded()
}

// createPaymentSession re-validates customer data, mints an idempotent
// order identifier and asks the configured provider for a session.
func (f *Flow) createPaymentSession(ctx context.Context, method *domain.CheckoutShipmentMethod) (*PaymentSession, error) {
	f.mu.Lock()
	customer := f.customer
	f.mu.Unlock()

	if err := ValidateCustomerData(customer); err != nil {
		return nil, err
	}

	orderID := uuid.NewString()
	params := storefront.CheckoutParams{
		CustomerData:   *customer,
		ShipmentMethod: method,
		OrderID:        orderID,
		SuccessURL:     fmt.Sprintf("%s/payment/success/%s", f.baseURL, orderID),
		CancelURL:      fmt.Sprintf("%s/payment/cancel/%s", f.baseURL, orderID),
	}

	payment, err := f.provider.CreateSession(ctx, params, f.session)
	if err != nil {
		f.logger.Warn("payment session creation failed",
			zap.String("provider", f.provider.Name()),
			zap.String("orderId", orderID),
			zap.Error(err),
		)
		return nil, err
	}

	f.logger.Info("payment session created",
		zap.String("provider", payment.Provider),
		zap.String("orderId", orderID),
	)
	return payment, nil
}

// totalAfterDiscount is the display cart total net of the applied discount,
// used for free-shipping threshold presentation.
func (f *Flow) totalAfterDiscount(items []domain.CartItem) int64 {
	total := storefront.CartTotal(items, f.campaigns)
	return total - storefront.DiscountAmount(total, f.cart.Discount())
}

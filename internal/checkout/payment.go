package checkout

import (
	"context"
	"fmt"

	"github.com/pupunkorvat/storefront/internal/domain"
	"github.com/pupunkorvat/storefront/internal/storefront"
)

// PaymentAPI is the slice of the storefront client the payment providers
// consume.
type PaymentAPI interface {
	CreateStripeSession(ctx context.Context, p storefront.CheckoutParams, sess domain.Session) (*domain.StripeSession, error)
	CreatePaytrailSession(ctx context.Context, p storefront.CheckoutParams, sess domain.Session) (*domain.PaytrailSession, error)
}

// PaymentSession is the provider-issued handoff payload. Exactly one of
// RedirectURL (Stripe-hosted page) or Paytrail (embedded payment-method
// selection) is populated.
type PaymentSession struct {
	Provider    string                  `json:"provider"`
	OrderID     string                  `json:"orderId"`
	RedirectURL string                  `json:"redirectUrl,omitempty"`
	Paytrail    *domain.PaytrailSession `json:"paytrail,omitempty"`
}

// Provider creates payment sessions for one configured payment method. The
// provider is selected once at flow start from store configuration, not
// re-checked per call.
type Provider interface {
	Name() string
	CreateSession(ctx context.Context, p storefront.CheckoutParams, sess domain.Session) (*PaymentSession, error)
}

type stripeProvider struct {
	api PaymentAPI
}

func (p *stripeProvider) Name() string { return domain.PaymentMethodStripe }

func (p *stripeProvider) CreateSession(ctx context.Context, params storefront.CheckoutParams, sess domain.Session) (*PaymentSession, error) {
	resp, err := p.api.CreateStripeSession(ctx, params, sess)
	if err != nil {
		return nil, err
	}
	return &PaymentSession{
		Provider:    domain.PaymentMethodStripe,
		OrderID:     params.OrderID,
		RedirectURL: resp.URL,
	}, nil
}

type paytrailProvider struct {
	api PaymentAPI
}

func (p *paytrailProvider) Name() string { return domain.PaymentMethodPaytrail }

func (p *paytrailProvider) CreateSession(ctx context.Context, params storefront.CheckoutParams, sess domain.Session) (*PaymentSession, error) {
	resp, err := p.api.CreatePaytrailSession(ctx, params, sess)
	if err != nil {
		return nil, err
	}
	return &PaymentSession{
		Provider: domain.PaymentMethodPaytrail,
		OrderID:  params.OrderID,
		Paytrail: resp,
	}, nil
}

// SelectProvider picks the payment provider from the merchant's enabled
// methods. Paytrail wins when both are configured.
func SelectProvider(methods []string, api PaymentAPI) (Provider, error) {
	enabled := make(map[string]bool, len(methods))
	for _, m := range methods {
		enabled[m] = true
	}
	if enabled[domain.PaymentMethodPaytrail] {
		return &paytrailProvider{api: api}, nil
	}
	if enabled[domain.PaymentMethodStripe] {
		return &stripeProvider{api: api}, nil
	}
	return nil, fmt.Errorf("no supported payment method configured")
}

package cart

import (
	"context"

	"go.uber.org/zap"

	"github.com/pupunkorvat/storefront/internal/domain"
	"github.com/pupunkorvat/storefront/internal/storefront"
)

// BackendAPI is the slice of the storefront client the cart layer consumes.
// *storefront.Client satisfies it; tests substitute fakes.
type BackendAPI interface {
	GetCart(ctx context.Context, sess domain.Session) (*storefront.CartResponse, error)
	AddItem(ctx context.Context, p storefront.AddItemParams) (*storefront.CartResponse, error)
	UpdateQuantity(ctx context.Context, p storefront.UpdateQuantityParams) (*storefront.CartResponse, error)
	RemoveItem(ctx context.Context, p storefront.RemoveItemParams) (*storefront.CartResponse, error)
	ValidateCart(ctx context.Context, sess domain.Session, items []domain.CartItem, campaigns []domain.Campaign) (*storefront.CartValidationResponse, error)
	ApplyDiscountCode(ctx context.Context, p storefront.ApplyDiscountParams) (*domain.AppliedDiscount, error)
	RemoveDiscountCode(ctx context.Context, sess domain.Session) error
}

// Gateway translates cart mutation intents into backend calls and
// normalizes every failure into a uniform Result. It is stateless; all cart
// state lives in the Store.
type Gateway struct {
	api    BackendAPI
	logger *zap.Logger
}

// NewGateway creates a new cart action gateway
func NewGateway(api BackendAPI, logger *zap.Logger) *Gateway {
	return &Gateway{api: api, logger: logger}
}

func (g *Gateway) fetchCart(ctx context.Context, sess domain.Session) (*storefront.CartResponse, Result) {
	resp, err := g.api.GetCart(ctx, sess)
	if err != nil {
		g.logger.Warn("failed to fetch cart", zap.Error(err))
		return nil, Failed(err)
	}
	return resp, Succeeded()
}

func (g *Gateway) addItem(ctx context.Context, sess domain.Session, productID, variationID string) (*storefront.CartResponse, Result) {
	resp, err := g.api.AddItem(ctx, storefront.AddItemParams{
		Session:     sess,
		ProductID:   productID,
		VariationID: variationID,
		Quantity:    1,
	})
	if err != nil {
		g.logger.Warn("failed to add item",
			zap.String("productId", productID),
			zap.Error(err),
		)
		return nil, Failed(err)
	}
	return resp, Succeeded()
}

func (g *Gateway) updateQuantity(ctx context.Context, sess domain.Session, productID, variationID string, delta int) (*storefront.CartResponse, Result) {
	resp, err := g.api.UpdateQuantity(ctx, storefront.UpdateQuantityParams{
		Session:     sess,
		ProductID:   productID,
		VariationID: variationID,
		Delta:       delta,
	})
	if err != nil {
		g.logger.Warn("failed to update quantity",
			zap.String("productId", productID),
			zap.Int("delta", delta),
			zap.Error(err),
		)
		return nil, Failed(err)
	}
	return resp, Succeeded()
}

func (g *Gateway) removeItem(ctx context.Context, sess domain.Session, productID, variationID string) (*storefront.CartResponse, Result) {
	resp, err := g.api.RemoveItem(ctx, storefront.RemoveItemParams{
		Session:     sess,
		ProductID:   productID,
		VariationID: variationID,
	})
	if err != nil {
		g.logger.Warn("failed to remove item",
			zap.String("productId", productID),
			zap.Error(err),
		)
		return nil, Failed(err)
	}
	return resp, Succeeded()
}

func (g *Gateway) validate(ctx context.Context, sess domain.Session, items []domain.CartItem, campaigns []domain.Campaign) (*storefront.CartValidationResponse, Result) {
	resp, err := g.api.ValidateCart(ctx, sess, items, campaigns)
	if err != nil {
		g.logger.Warn("cart validation failed", zap.Error(err))
		return nil, Failed(err)
	}
	return resp, Succeeded()
}

func (g *Gateway) applyDiscount(ctx context.Context, sess domain.Session, code string, items []domain.CartItem, campaigns []domain.Campaign) (*domain.AppliedDiscount, Result) {
	discount, err := g.api.ApplyDiscountCode(ctx, storefront.ApplyDiscountParams{
		Session:   sess,
		Code:      code,
		CartItems: items,
		Campaigns: campaigns,
	})
	if err != nil {
		g.logger.Info("discount code rejected", zap.String("code", code), zap.Error(err))
		return nil, Failed(err)
	}
	return discount, Succeeded()
}

func (g *Gateway) removeDiscount(ctx context.Context, sess domain.Session) Result {
	if err := g.api.RemoveDiscountCode(ctx, sess); err != nil {
		g.logger.Warn("failed to remove discount code", zap.Error(err))
		return Failed(err)
	}
	return Succeeded()
}

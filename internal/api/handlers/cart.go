package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pupunkorvat/storefront/internal/cart"
	"github.com/pupunkorvat/storefront/internal/domain"
)

// AddItemRequest adds one unit of a product to the cart.
type AddItemRequest struct {
	ProductID   string `json:"productId" binding:"required"`
	VariationID string `json:"variationId"`
}

// ChangeQuantityRequest shifts a line item's quantity by a signed delta.
type ChangeQuantityRequest struct {
	ProductID   string `json:"productId" binding:"required"`
	VariationID string `json:"variationId"`
	Delta       int    `json:"delta" binding:"required"`
}

// RemoveItemRequest removes a line item from the cart.
type RemoveItemRequest struct {
	ProductID   string `json:"productId" binding:"required"`
	VariationID string `json:"variationId"`
}

// ApplyDiscountRequest applies a discount code.
type ApplyDiscountRequest struct {
	Code string `json:"code" binding:"required"`
}

func cartView(store *cart.Store) gin.H {
	return gin.H{
		"items":           store.Items(),
		"discount":        store.Discount(),
		"discountMessage": store.DiscountMessage(),
	}
}

// resolveStore returns the session's cart store. After a mutation that may
// have assigned a cart ID, persistCartID stores the cookie and registers
// the store under its new key.
func resolveStore(deps *Deps, c *gin.Context) (*cart.Store, domain.Session) {
	sess := deps.Sessions.FromRequest(c)
	return deps.Carts.Get(sess), sess
}

func persistCartID(deps *Deps, c *gin.Context, store *cart.Store, before domain.Session) {
	after := store.Session()
	if after.CartID != "" && after.CartID != before.CartID {
		deps.Sessions.StoreCartID(c, after.CartID)
		deps.Carts.Promote(store)
	}
}

func HandleGetCart(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, sess := resolveStore(deps, c)

		// Cold read; a failed fetch is "no cart yet", not an error
		store.Load(c.Request.Context())
		persistCartID(deps, c, store, sess)

		c.JSON(http.StatusOK, cartView(store))
	}
}

func HandleAddItem(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req AddItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		store, sess := resolveStore(deps, c)
		res := store.AddItem(c.Request.Context(), req.ProductID, req.VariationID)
		if !res.OK {
			respondFailure(c, res)
			return
		}
		persistCartID(deps, c, store, sess)

		c.JSON(http.StatusOK, cartView(store))
	}
}

func HandleChangeQuantity(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ChangeQuantityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		store, _ := resolveStore(deps, c)
		res := store.ChangeQuantity(c.Request.Context(), req.ProductID, req.VariationID, req.Delta)
		if !res.OK {
			respondFailure(c, res)
			return
		}

		c.JSON(http.StatusOK, cartView(store))
	}
}

func HandleRemoveItem(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RemoveItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		store, _ := resolveStore(deps, c)
		res := store.RemoveItem(c.Request.Context(), req.ProductID, req.VariationID)
		if !res.OK {
			respondFailure(c, res)
			return
		}

		c.JSON(http.StatusOK, cartView(store))
	}
}

func HandleValidateCart(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		storeConfig, err := deps.Client.GetStoreConfig(c.Request.Context())
		if err != nil {
			logger.Error("Failed to load store config", zap.Error(err))
			respondFailure(c, cart.Failed(err))
			return
		}

		store, _ := resolveStore(deps, c)
		changes, res := store.Validate(c.Request.Context(), storeConfig.Campaigns)
		if !res.OK {
			respondFailure(c, res)
			return
		}

		view := cartView(store)
		view["changes"] = changes
		c.JSON(http.StatusOK, view)
	}
}

func HandleApplyDiscount(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req ApplyDiscountRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		storeConfig, err := deps.Client.GetStoreConfig(c.Request.Context())
		if err != nil {
			logger.Error("Failed to load store config", zap.Error(err))
			respondFailure(c, cart.Failed(err))
			return
		}

		store, _ := resolveStore(deps, c)
		res := store.ApplyDiscount(c.Request.Context(), req.Code, storeConfig.Campaigns)
		if !res.OK {
			respondFailure(c, res)
			return
		}

		c.JSON(http.StatusOK, cartView(store))
	}
}

func HandleRemoveDiscount(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, _ := resolveStore(deps, c)
		res := store.RemoveDiscount(c.Request.Context())
		if !res.OK {
			respondFailure(c, res)
			return
		}

		c.JSON(http.StatusOK, cartView(store))
	}
}

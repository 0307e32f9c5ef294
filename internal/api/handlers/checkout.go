package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pupunkorvat/storefront/internal/cart"
	"github.com/pupunkorvat/storefront/internal/checkout"
	"github.com/pupunkorvat/storefront/internal/domain"
	"github.com/pupunkorvat/storefront/internal/shipping"
)

// SelectShipmentRequest is the user's raw radio-button choice.
type SelectShipmentRequest struct {
	ShipmentMethodID string  `json:"shipmentMethodId" binding:"required"`
	PickupPointID    *string `json:"pickupPointId"`
	ServiceID        *string `json:"serviceId"`
}

func flowView(flow *checkout.Flow) gin.H {
	view := gin.H{
		"step":             flow.Step(),
		"requiresShipping": flow.RequiresShipping(),
	}
	switch flow.Step() {
	case checkout.StepShippingSelection:
		view["shippingMethods"] = flow.ShippingMethods()
		view["selection"] = flow.Selection()
	case checkout.StepPaymentHandoff:
		view["payment"] = flow.Payment()
	}
	if customer := flow.CustomerData(); customer != nil {
		view["customerData"] = customer
	}
	return view
}

func requireFlow(deps *Deps, c *gin.Context) (*checkout.Flow, bool) {
	sess := deps.Sessions.FromRequest(c)
	flow, ok := deps.Flows.Get(sess)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "checkout not started"})
		return nil, false
	}
	return flow, true
}

// HandleStartCheckout begins a fresh checkout flow for the session's cart.
// The payment provider is selected here, once, from store configuration.
func HandleStartCheckout(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store, sess := resolveStore(deps, c)
		if store.IsEmpty() {
			store.Load(c.Request.Context())
		}
		if store.IsEmpty() {
			c.JSON(http.StatusConflict, gin.H{"error": "Ostoskori on tyhjä."})
			return
		}

		storeConfig, err := deps.Client.GetStoreConfig(c.Request.Context())
		if err != nil {
			logger.Error("Failed to load store config", zap.Error(err))
			respondFailure(c, cart.Failed(err))
			return
		}

		provider, err := checkout.SelectProvider(storeConfig.Payments.Methods, deps.Client)
		if err != nil {
			logger.Error("No payment provider available", zap.Error(err))
			c.JSON(http.StatusConflict, gin.H{"error": "Maksutapoja ei ole määritetty. Ota yhteyttä kauppiaaseen."})
			return
		}

		flow := checkout.NewFlow(store, deps.Client, provider, storeConfig.Campaigns, store.Session(), deps.BaseURL, logger)
		deps.Flows.Start(sess, flow)

		view := flowView(flow)
		view["provider"] = provider.Name()
		c.JSON(http.StatusOK, view)
	}
}

func HandleSubmitCustomerData(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req domain.CustomerData
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		flow, ok := requireFlow(deps, c)
		if !ok {
			return
		}

		res := flow.SubmitCustomerData(c.Request.Context(), req)
		if !res.OK {
			respondFailure(c, res)
			return
		}

		c.JSON(http.StatusOK, flowView(flow))
	}
}

func HandleSelectShipment(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SelectShipmentRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error":   "validation failed",
				"details": err.Error(),
			})
			return
		}

		flow, ok := requireFlow(deps, c)
		if !ok {
			return
		}

		sel := shipping.NewSelection(req.ShipmentMethodID, req.PickupPointID, req.ServiceID)
		res := flow.SelectShipment(sel)
		if !res.OK {
			respondFailure(c, res)
			return
		}

		c.JSON(http.StatusOK, flowView(flow))
	}
}

func HandleConfirmCheckout(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow, ok := requireFlow(deps, c)
		if !ok {
			return
		}

		res := flow.ConfirmShipment(c.Request.Context())
		if !res.OK {
			respondFailure(c, res)
			return
		}

		c.JSON(http.StatusOK, flowView(flow))
	}
}

func HandleCheckoutBack(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		flow, ok := requireFlow(deps, c)
		if !ok {
			return
		}

		res := flow.Back()
		if !res.OK {
			respondFailure(c, res)
			return
		}

		c.JSON(http.StatusOK, flowView(flow))
	}
}

// HandleAbandonCheckout discards the session's checkout flow, e.g. when the
// user navigates away.
func HandleAbandonCheckout(deps *Deps, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess := deps.Sessions.FromRequest(c)
		deps.Flows.Discard(sess)
		c.Status(http.StatusNoContent)
	}
}

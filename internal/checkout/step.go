package checkout

// Step is the checkout wizard's state. The linear order is
// CUSTOMER_DATA → SHIPPING_SELECTION → PAYMENT_HANDOFF; ticket-only carts
// collapse it to CUSTOMER_DATA → PAYMENT_HANDOFF.
type Step string

const (
	StepCustomerData      Step = "CUSTOMER_DATA"
	StepShippingSelection Step = "SHIPPING_SELECTION"
	StepPaymentHandoff    Step = "PAYMENT_HANDOFF"
)

// IsValid checks if the step is valid
func (s Step) IsValid() bool {
	switch s {
	case StepCustomerData, StepShippingSelection, StepPaymentHandoff:
		return true
	default:
		return false
	}
}

// CanTransitionTo checks if a step transition is valid for the given cart
// composition.
func (s Step) CanTransitionTo(next Step, requiresShipping bool) bool {
	switch s {
	case StepCustomerData:
		if requiresShipping {
			return next == StepShippingSelection
		}
		return next == StepPaymentHandoff
	case StepShippingSelection:
		return next == StepPaymentHandoff || next == StepCustomerData
	case StepPaymentHandoff:
		return false // Terminal state
	default:
		return false
	}
}

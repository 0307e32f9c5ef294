package checkout

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/pupunkorvat/storefront/internal/domain"
)

var customerValidator = validator.New()

// ValidateCustomerData checks the customer form against its schema. It runs
// on submission and again right before payment session creation, defending
// against stale or edited state between steps.
func ValidateCustomerData(data *domain.CustomerData) error {
	if data == nil {
		return fmt.Errorf("customer data missing")
	}
	if err := customerValidator.Struct(data); err != nil {
		return fmt.Errorf("customer data invalid: %w", err)
	}
	return nil
}

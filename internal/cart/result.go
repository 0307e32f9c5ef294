package cart

import (
	"github.com/pupunkorvat/storefront/internal/storefront"
)

// Result is the uniform outcome of every cart and checkout operation.
// Operations never propagate raw errors to callers: a failed Result carries
// the backend's human-readable message when available and an optional
// machine code so the UI can render the right state.
type Result struct {
	OK      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
	Code    string `json:"code,omitempty"`
}

// genericFailureMessage is shown when the backend gave no usable message.
const genericFailureMessage = "Tuntematon virhe. Yritä uudelleen."

// Succeeded returns a successful result.
func Succeeded() Result {
	return Result{OK: true}
}

// Failed normalizes an error into a failed Result, preserving the backend's
// specific message and code when the error came from the storefront API.
func Failed(err error) Result {
	if apiErr, ok := storefront.AsError(err); ok {
		msg := apiErr.Message
		if msg == "" {
			msg = genericFailureMessage
		}
		return Result{Message: msg, Code: apiErr.Code}
	}
	return Result{Message: genericFailureMessage}
}

// FailedWith returns a failed result with an explicit message.
func FailedWith(message string) Result {
	return Result{Message: message}
}

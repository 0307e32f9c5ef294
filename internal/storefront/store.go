package storefront

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pupunkorvat/storefront/internal/domain"
)

// GetStoreConfig fetches the store configuration: active campaigns and the
// payment methods the merchant has enabled.
func (c *Client) GetStoreConfig(ctx context.Context) (*domain.StoreConfig, error) {
	var resp domain.StoreConfig
	if err := c.do(ctx, http.MethodGet, "/store/config", nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// TicketPinResult is the backend's verdict on a scanner PIN for an event.
type TicketPinResult struct {
	Valid bool `json:"valid"`
}

type validatePinRequest struct {
	EventID string `json:"eventId"`
	Pin     string `json:"pin"`
}

type useTicketRequest struct {
	Code    string `json:"code"`
	EventID string `json:"eventId"`
}

// ValidateTicketPin checks a scanner PIN for an event.
func (c *Client) ValidateTicketPin(ctx context.Context, eventID, pin string) (*TicketPinResult, error) {
	req := validatePinRequest{EventID: eventID, Pin: pin}
	var resp TicketPinResult
	if err := c.do(ctx, http.MethodPost, "/tickets/validate-pin", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// GetTicket looks up a ticket by its scanned code.
func (c *Client) GetTicket(ctx context.Context, code string) (*domain.Ticket, error) {
	var resp domain.Ticket
	path := fmt.Sprintf("/tickets/%s", url.PathEscape(code))
	if err := c.do(ctx, http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// UseTicket marks a ticket as used for an event.
func (c *Client) UseTicket(ctx context.Context, code, eventID string) (*domain.Ticket, error) {
	req := useTicketRequest{Code: code, EventID: eventID}
	var resp domain.Ticket
	if err := c.do(ctx, http.MethodPost, "/tickets/use", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/pupunkorvat/storefront/internal/config"
	"github.com/pupunkorvat/storefront/internal/domain"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(config.StorefrontConfig{APIURL: server.URL + "/", APIKey: "test-key"}, zap.NewNop())
}

func TestClientSendsAuthAndContentTypeHeaders(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/cart/items", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, "p1", body["productId"])

		json.NewEncoder(w).Encode(CartResponse{Items: []domain.CartItem{{ProductID: "p1", Quantity: 1}}})
	})

	resp, err := client.AddItem(context.Background(), AddItemParams{
		Session:   domain.Session{CartID: "cart-1"},
		ProductID: "p1",
		Quantity:  1,
	})

	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
}

func TestClientGetCartEncodesSessionQuery(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "cart-1", r.URL.Query().Get("cartId"))
		require.Equal(t, "sess-1", r.URL.Query().Get("sessionId"))
		json.NewEncoder(w).Encode(CartResponse{})
	})

	_, err := client.GetCart(context.Background(), domain.Session{CartID: "cart-1", SessionID: "sess-1"})
	require.NoError(t, err)
}

func TestClientDecodesErrorEnvelope(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{
				"code":    "CART_LIMIT_EXCEEDED",
				"message": "Korin enimmäismäärä on täynnä.",
			},
		})
	})

	_, err := client.AddItem(context.Background(), AddItemParams{ProductID: "p1", Quantity: 1})

	require.Error(t, err)
	apiErr, ok := AsError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusConflict, apiErr.Status)
	require.Equal(t, "CART_LIMIT_EXCEEDED", apiErr.Code)
	require.Equal(t, "Korin enimmäismäärä on täynnä.", apiErr.Message)
}

func TestClientFallsBackOnUnparseableErrorBody(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>upstream error</html>"))
	})

	_, err := client.GetCart(context.Background(), domain.Session{CartID: "cart-1"})

	apiErr, ok := AsError(err)
	require.True(t, ok)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.NotEmpty(t, apiErr.Message)
	require.Empty(t, apiErr.Code)
}

func TestAsErrorRejectsOtherErrors(t *testing.T) {
	_, ok := AsError(context.DeadlineExceeded)
	require.False(t, ok)
}

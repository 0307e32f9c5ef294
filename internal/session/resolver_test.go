package session

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func testContext(t *testing.T, cookies ...*http.Cookie) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/v1/cart", nil)
	for _, cookie := range cookies {
		c.Request.AddCookie(cookie)
	}
	return c, w
}

func TestFromRequestReadsBothCookies(t *testing.T) {
	c, _ := testContext(t,
		&http.Cookie{Name: "cart-id", Value: "cart-1"},
		&http.Cookie{Name: "session-id", Value: "sess-1"},
	)

	sess := NewResolver(false).FromRequest(c)

	require.Equal(t, "cart-1", sess.CartID)
	require.Equal(t, "sess-1", sess.SessionID)
	require.Equal(t, "cart-1", sess.Key())
}

func TestFromRequestMissingCookiesYieldAnonymousSession(t *testing.T) {
	c, _ := testContext(t)

	sess := NewResolver(false).FromRequest(c)

	require.Empty(t, sess.CartID)
	require.Empty(t, sess.SessionID)
	require.Empty(t, sess.Key())
}

func TestStoreCartIDSetsHTTPOnlyCookie(t *testing.T) {
	c, w := testContext(t)

	NewResolver(true).StoreCartID(c, "cart-new")

	header := w.Header().Get("Set-Cookie")
	require.Contains(t, header, "cart-id=cart-new")
	require.Contains(t, header, "HttpOnly")
	require.Contains(t, header, "Secure")
	require.Contains(t, header, "SameSite=Lax")
	require.Contains(t, header, "Max-Age=864000")
}

func TestStoreCartIDNoOpWithoutID(t *testing.T) {
	c, w := testContext(t)

	NewResolver(false).StoreCartID(c, "")

	require.False(t, strings.Contains(w.Header().Get("Set-Cookie"), "cart-id"))
}

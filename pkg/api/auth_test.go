package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signToken(t *testing.T, secret, subject string, scopes []string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, tokenClaims{
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestMCPAuthFromSession(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, http.MethodPost, "/mcp", "u1",
		`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	// Session auth holds every scope, so admin tools are listed.
	assert.Contains(t, rec.Body.String(), "admin_list_users")
}

func TestMCPAuthFromBearerToken(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/mcp",
		strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	req.Header.Set("Authorization", "Bearer "+signToken(t, testJWTSecret, "svc-1", []string{"read:events"}))
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "events_list")
	assert.NotContains(t, rec.Body.String(), "admin_list_users")
}

func TestMCPAuthRejectsBadSignature(t *testing.T) {
	s, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/mcp",
		strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"tools/list"}`))
	req.Header.Set("Authorization", "Bearer "+signToken(t, "wrong-secret", "svc-1", []string{"read:events"}))
	rec := httptest.NewRecorder()
	s.echo.ServeHTTP(rec, req)

	// Invalid tokens degrade to anonymous: only public tools remain.
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "events_list")
	assert.Contains(t, rec.Body.String(), "groups_list")
}

func TestMCPNotificationGets202(t *testing.T) {
	s, _ := newTestServer(t)

	rec := do(s, http.MethodPost, "/mcp", "", `{"jsonrpc":"2.0","method":"ping"}`)
	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, rec.Body.String())
}

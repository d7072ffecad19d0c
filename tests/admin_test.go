package tests

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminLogin(t *testing.T) {
	w := executeRequest(http.MethodPost, "/v1/admin/auth", map[string]any{"password": testAdminPassword}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Token     string `json:"token"`
		ExpiresIn int64  `json:"expiresIn"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.Token)
	assert.Positive(t, resp.ExpiresIn)

	// The issued token actually works on a protected route.
	w = executeRequest(http.MethodGet, "/v1/bookings", nil, resp.Token)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminLoginWrongPassword(t *testing.T) {
	w := executeRequest(http.MethodPost, "/v1/admin/auth", map[string]any{"password": "wrong"}, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminLoginMissingPassword(t *testing.T) {
	w := executeRequest(http.MethodPost, "/v1/admin/auth", map[string]any{}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestProtectedRouteRejectsGarbageToken(t *testing.T) {
	w := executeRequest(http.MethodGet, "/v1/bookings", nil, "not-a-jwt")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

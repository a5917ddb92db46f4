package api_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/storefront/core/session"
	"github.com/dmitrymomot/storefront/integration/api"
)

// makeToken builds an unsigned JWT-shaped token with the given payload.
// The login path decodes claims without verifying the signature.
func makeToken(t *testing.T, payload map[string]any) string {
	t.Helper()

	header, err := json.Marshal(map[string]string{"alg": "HS256", "typ": "JWT"})
	require.NoError(t, err)
	claims, err := json.Marshal(payload)
	require.NoError(t, err)

	enc := base64.RawURLEncoding
	return enc.EncodeToString(header) + "." + enc.EncodeToString(claims) + "." + enc.EncodeToString([]byte("sig"))
}

func TestClient_Login(t *testing.T) {
	t.Parallel()

	t.Run("uses response body fields when present", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			require.Equal(t, "/api/auth/login/", r.URL.Path)

			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ana@example.com", body["email"])
			assert.Equal(t, "secret", body["password"])

			json.NewEncoder(w).Encode(map[string]string{
				"access":   makeToken(t, map[string]any{"sub": "1"}),
				"refresh":  "refresh-token",
				"email":    "ana@example.com",
				"nombre":   "Ana",
				"userType": "admin",
			})
		}))

		identity, tokens, err := client.Login(context.Background(), "ana@example.com", "secret")
		require.NoError(t, err)

		assert.Equal(t, "ana@example.com", identity.Email)
		assert.Equal(t, "Ana", identity.Name)
		assert.Equal(t, session.RoleAdmin, identity.Role)
		assert.Equal(t, "refresh-token", tokens.Refresh)
		assert.NotEmpty(t, tokens.Access)
	})

	t.Run("recovers identity from access token claims", func(t *testing.T) {
		t.Parallel()

		access := makeToken(t, map[string]any{
			"email":    "bob@example.com",
			"nombre":   "Bob",
			"userType": "user",
		})
		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{"access": access, "refresh": "r"})
		}))

		identity, _, err := client.Login(context.Background(), "bob@example.com", "pw")
		require.NoError(t, err)

		assert.Equal(t, "bob@example.com", identity.Email)
		assert.Equal(t, "Bob", identity.Name)
		assert.Equal(t, session.RoleUser, identity.Role)
	})

	t.Run("defaults to user role when nothing declares one", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]string{
				"access":  makeToken(t, map[string]any{"sub": "2"}),
				"refresh": "r",
			})
		}))

		identity, _, err := client.Login(context.Background(), "eve@example.com", "pw")
		require.NoError(t, err)

		assert.Equal(t, "eve@example.com", identity.Email, "login email is the display fallback")
		assert.Equal(t, session.RoleUser, identity.Role)
	})

	t.Run("invalid credentials surface the backend detail", func(t *testing.T) {
		t.Parallel()

		client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"No active account found with the given credentials"}`))
		}))

		_, _, err := client.Login(context.Background(), "ana@example.com", "wrong")

		var apiErr *api.Error
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, "No active account found with the given credentials", apiErr.Detail)
	})
}

// Copyright SilloVV, 2026. All rights reserved.

package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SilloVV/appel-legifrance-gemini/pkg/types"
)

func TestToken_Success(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		assert.Equal(t, "id123", r.FormValue("client_id"))
		assert.Equal(t, "secret456", r.FormValue("client_secret"))
		assert.Equal(t, "openid", r.FormValue("scope"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token": "tok-abc"}`))
	}))
	defer ts.Close()

	c := NewClient(ts.Client(), types.AuthConfig{
		TokenURL:     ts.URL,
		ClientID:     "id123",
		ClientSecret: "secret456",
	})

	token, err := c.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-abc", token)
}

func TestToken_Non200(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid_client", http.StatusUnauthorized)
	}))
	defer ts.Close()

	c := NewClient(ts.Client(), types.AuthConfig{TokenURL: ts.URL})

	token, err := c.Token(context.Background())
	assert.Empty(t, token)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestToken_EmptyAccessToken(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer ts.Close()

	c := NewClient(ts.Client(), types.AuthConfig{TokenURL: ts.URL})

	token, err := c.Token(context.Background())
	assert.Empty(t, token)
	require.Error(t, err)
}

func TestNewClient_DefaultTokenURL(t *testing.T) {
	c := NewClient(nil, types.AuthConfig{})
	assert.Equal(t, DefaultTokenURL, c.TokenURL)
}

package daraja

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testShortCode = "174379"
	testPasskey   = "bfb279f9aa9bdbcf158e97dd71a467cd2e0c893059b10f78e6b72ada1ed2c919"
)

func TestGeneratePassword_KnownVector(t *testing.T) {
	at := time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)

	got, err := GeneratePassword(testShortCode, testPasskey, at)
	require.NoError(t, err)

	want := base64.StdEncoding.EncodeToString([]byte(testShortCode + testPasskey + "20230601100000"))
	assert.Equal(t, want, got)
}

func TestGeneratePassword_MissingInputs(t *testing.T) {
	at := time.Date(2023, 6, 1, 10, 0, 0, 0, time.UTC)

	pw, err := GeneratePassword("", testPasskey, at)
	assert.ErrorIs(t, err, ErrMissingShortCode)
	assert.Empty(t, pw, "nothing may be encoded without a shortcode")

	pw, err = GeneratePassword(testShortCode, "", at)
	assert.ErrorIs(t, err, ErrMissingShortCode)
	assert.Empty(t, pw)

	pw, err = GeneratePassword("", "", at)
	assert.ErrorIs(t, err, ErrMissingShortCode)
	assert.Empty(t, pw)
}

func TestPassword_RequiresShortCodeAndPasskey(t *testing.T) {
	c := NewClient(Config{ConsumerKey: "k", ConsumerSecret: "s"})

	_, err := c.Password(time.Now())
	assert.ErrorIs(t, err, ErrMissingShortCode)
}

func TestAccessToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "key", user)
		assert.Equal(t, "secret", pass)
		assert.Equal(t, "/oauth/v1/generate", r.URL.Path)
		assert.Equal(t, "client_credentials", r.URL.Query().Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"token-123","expires_in":"3599"}`))
	}))
	defer srv.Close()

	c := NewClient(Config{ConsumerKey: "key", ConsumerSecret: "secret"}, WithBaseURL(srv.URL))

	tok, err := c.AccessToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "token-123", tok)
}

func TestAccessToken_MissingCredentialsFailsBeforeRequest(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(Config{}, WithBaseURL(srv.URL))

	_, err := c.AccessToken(context.Background())
	assert.ErrorIs(t, err, ErrMissingCredentials)
	assert.False(t, called)
}

func TestAccessToken_Non200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	c := NewClient(Config{ConsumerKey: "key", ConsumerSecret: "bad"}, WithBaseURL(srv.URL))

	_, err := c.AccessToken(context.Background())
	assert.Error(t, err)
}

package apiclient

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type employee struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

func TestDecodePayloadShapes(t *testing.T) {
	t.Run("success envelope", func(t *testing.T) {
		raw := []byte(`{"success":true,"message":"ok","data":[{"_id":"1","username":"alice"}]}`)

		var out []employee
		require.NoError(t, DecodePayload(raw, &out))
		require.Len(t, out, 1)
		assert.Equal(t, "alice", out[0].Username)
	})

	t.Run("legacy records envelope", func(t *testing.T) {
		raw := []byte(`{"records":[{"_id":"1","username":"alice"},{"_id":"2","username":"bob"}]}`)

		var out []employee
		require.NoError(t, DecodePayload(raw, &out))
		assert.Len(t, out, 2)
	})

	t.Run("bare array", func(t *testing.T) {
		raw := []byte(`[{"_id":"1","username":"alice"}]`)

		var out []employee
		require.NoError(t, DecodePayload(raw, &out))
		require.Len(t, out, 1)
		assert.Equal(t, "1", out[0].ID)
	})

	t.Run("bare object", func(t *testing.T) {
		raw := []byte(`{"_id":"7","username":"carol"}`)

		var out employee
		require.NoError(t, DecodePayload(raw, &out))
		assert.Equal(t, "carol", out.Username)
	})

	t.Run("success envelope without payload", func(t *testing.T) {
		raw := []byte(`{"success":true,"message":"deleted"}`)

		var out employee
		require.NoError(t, DecodePayload(raw, &out))
		assert.Empty(t, out.ID)
	})

	t.Run("malformed body", func(t *testing.T) {
		var out employee
		assert.Error(t, DecodePayload([]byte(`not json`), &out))
	})
}

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"1","username":"alice"}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, StaticToken("secret-token"))

	var out employee
	require.NoError(t, client.Get(context.Background(), "/api/employees/1", &out))
	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Equal(t, "alice", out.Username)
}

func TestClientPostEncodesBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var in employee
		if assert.NoError(t, DecodePayload(mustReadBody(t, r), &in)) {
			assert.Equal(t, "dave", in.Username)
		}

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"success":true,"data":{"_id":"9","username":"dave"}}`))
	}))
	defer srv.Close()

	client := New(srv.URL, StaticToken("t"))

	var out employee
	require.NoError(t, client.Post(context.Background(), "api/employees", employee{Username: "dave"}, &out))
	assert.Equal(t, "9", out.ID)
}

func TestClientErrorMapping(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/unauthorized":
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"success":false,"error":{"code":"UNAUTHORIZED","message":"token expired"}}`))
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"success":false,"error":{"code":"NOT_FOUND","message":"no such employee"}}`))
		default:
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"success":false,"error":{"code":"CONFLICT","message":"duplicate"}}`))
		}
	}))
	defer srv.Close()

	client := New(srv.URL, StaticToken("t"))
	ctx := context.Background()

	err := client.Get(ctx, "/unauthorized", nil)
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = client.Get(ctx, "/missing", nil)
	assert.ErrorIs(t, err, ErrNotFound)

	err = client.Get(ctx, "/conflict", nil)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Equal(t, "CONFLICT", apiErr.Code)
	assert.Contains(t, apiErr.Error(), "duplicate")
}

func TestClientTokenProviderFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Error("request should not reach the server when the token cannot be resolved")
	}))
	defer srv.Close()

	client := New(srv.URL, failingTokens{})
	err := client.Get(context.Background(), "/api/employees", nil)
	assert.ErrorContains(t, err, "resolve token")
}

type failingTokens struct{}

func (failingTokens) Token(ctx context.Context) (string, error) {
	return "", errors.New("vault sealed")
}

func mustReadBody(t *testing.T, r *http.Request) []byte {
	t.Helper()
	defer r.Body.Close()
	raw, err := io.ReadAll(r.Body)
	assert.NoError(t, err)
	return raw
}

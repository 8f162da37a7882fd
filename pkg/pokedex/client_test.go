package pokedex

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return NewClient(ClientConfig{BaseURL: srv.URL, Token: "tok", RetryWait: time.Millisecond})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func TestClient_ListPokemon(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/pokemon", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("afterId"))
		assert.Equal(t, "2", r.URL.Query().Get("limit"))
		assert.Equal(t, "true", r.URL.Query().Get("includeMoves"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		writeJSON(w, http.StatusOK, map[string]any{
			"nodes": []map[string]any{
				{"id": "a", "name": "Pikachu", "pokedexNumber": 26, "types": []any{}, "abilities": []any{}},
			},
			"pageInfo": map[string]any{"endCursor": "26", "hasNextPage": true, "hasPreviousPage": true, "total": 151},
		})
	}))

	after := "25"
	page, err := c.ListPokemon(context.Background(), ListParams{AfterID: &after, Limit: 2, IncludeMoves: true})
	require.NoError(t, err)
	require.Len(t, page.Nodes, 1)
	assert.Equal(t, "Pikachu", page.Nodes[0].Name)
	assert.Equal(t, 26, page.Nodes[0].PokedexNumber)
	require.NotNil(t, page.PageInfo.EndCursor)
	assert.Equal(t, "26", *page.PageInfo.EndCursor)
	assert.True(t, page.PageInfo.HasNextPage)
	assert.EqualValues(t, 151, page.PageInfo.Total)
}

func TestClient_GetRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			writeJSON(w, http.StatusServiceUnavailable, map[string]any{"error_code": 503, "message": "down"})
			return
		}
		writeJSON(w, http.StatusOK, []map[string]any{{"id": "m1", "name": "Thunder Shock", "level": 1}})
	}))

	moves, err := c.ListMoves(context.Background(), "a")
	require.NoError(t, err)
	require.Len(t, moves, 1)
	assert.Equal(t, 1, moves[0].Level)
	assert.EqualValues(t, 2, calls.Load())
}

func TestClient_DeletePokemon(t *testing.T) {
	tcs := map[string]struct {
		status  int
		body    any
		wantErr *APIError
	}{
		"no content": {status: http.StatusNoContent},
		"forbidden": {
			status:  http.StatusForbidden,
			body:    map[string]any{"error_code": 403, "message": "Admin privileges required"},
			wantErr: &APIError{Status: 403, Code: 403, Message: "Admin privileges required"},
		},
		"not found": {
			status:  http.StatusNotFound,
			body:    map[string]any{"error_code": 404, "message": "Pokemon not found"},
			wantErr: &APIError{Status: 404, Code: 404, Message: "Pokemon not found"},
		},
		"unparseable body": {
			status:  http.StatusBadGateway,
			body:    "<html>",
			wantErr: &APIError{Status: 502},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			var calls atomic.Int32
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls.Add(1)
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/pokemon/a", r.URL.Path)
				if tc.body == nil {
					w.WriteHeader(tc.status)
					return
				}
				writeJSON(w, tc.status, tc.body)
			}))

			err := c.DeletePokemon(context.Background(), "a")
			assert.EqualValues(t, 1, calls.Load())
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.wantErr, apiErr)
		})
	}
}

func TestClient_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()
	c := NewClient(ClientConfig{BaseURL: srv.URL})

	err := c.DeletePokemon(context.Background(), "a")
	assert.ErrorIs(t, err, ErrNetwork)
	assert.True(t, Retryable(err))
}

func TestClient_CanceledContext(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := c.DeletePokemon(ctx, "a")
	assert.ErrorIs(t, err, context.Canceled)
	assert.NotErrorIs(t, err, ErrNetwork)
}

func TestClient_Login(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/login", r.URL.Path)
		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "ash", body["username"])

		writeJSON(w, http.StatusOK, map[string]any{
			"error_code": 0,
			"message":    "Success",
			"data": map[string]any{
				"access_token": "jwt",
				"expires_at":   "2026-01-01T00:00:00Z",
				"user":         map[string]any{"id": "u1", "username": "ash", "role": "ADMIN", "is_admin": true},
			},
		})
	}))

	s, err := c.Login(context.Background(), "ash", "pikachu")
	require.NoError(t, err)
	assert.Equal(t, "jwt", s.AccessToken)
	assert.True(t, s.User.IsAdmin)

	c.SetToken(s.AccessToken)
	assert.Equal(t, "jwt", c.Token())
}

func TestClient_EmptyID(t *testing.T) {
	c := NewClient(ClientConfig{})
	_, err := c.GetPokemon(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptyID)
	assert.ErrorIs(t, c.DeletePokemon(context.Background(), ""), ErrEmptyID)
}

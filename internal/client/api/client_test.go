package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sharesync/pkg/api"
)

func TestListShares(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/shares", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		resp := api.ListSharesResponse{Shares: []api.Share{
			{ID: "s1", Title: "greeting", Content: "hello", Version: 10},
			{ID: "s2", Title: "farewell", Content: "bye", Version: 11, Pinned: true},
		}}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client := NewClient(server.URL, "test-token")
	shares, err := client.ListShares(context.Background())
	require.NoError(t, err)
	require.Len(t, shares, 2)
	assert.Equal(t, "s1", shares[0].ID)
	assert.True(t, shares[1].Pinned)
}

func TestCreateShare(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)

		var req api.CreateShareRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "greeting", req.Title)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		require.NoError(t, json.NewEncoder(w).Encode(api.Share{
			ID:      "generated-id",
			Title:   req.Title,
			Content: req.Content,
			Version: 1,
		}))
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	share, err := client.CreateShare(context.Background(), api.CreateShareRequest{
		Title:   "greeting",
		Content: "hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "generated-id", share.ID)
}

func TestUpdateShare(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/shares/s1", r.URL.Path)

		var req api.UpdateShareRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotNil(t, req.Patch.Content)

		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(api.Share{
			ID:      "s1",
			Content: *req.Patch.Content,
			Version: 12,
		}))
	}))
	defer server.Close()

	content := "updated"
	client := NewClient(server.URL, "")
	share, err := client.UpdateShare(context.Background(), "s1", api.SharePatch{Content: &content})
	require.NoError(t, err)
	assert.Equal(t, "updated", share.Content)
}

func TestDeleteShares(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodDelete, r.Method)

		var req api.DeleteSharesRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"s1", "s2"}, req.IDs)

		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	client := NewClient(server.URL, "")
	require.NoError(t, client.DeleteShares(context.Background(), []string{"s1", "s2"}))
}

func TestDoRequest_APIErrorCarriesStatus(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "rate limited", status: http.StatusTooManyRequests, body: `{"error":"rate_limited","message":"slow down"}`},
		{name: "server error", status: http.StatusInternalServerError, body: `{"error":"internal"}`},
		{name: "validation error", status: http.StatusBadRequest, body: `{"error":"validation","message":"title required"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewClient(server.URL, "")
			_, err := client.ListShares(context.Background())
			require.Error(t, err)

			var apiErr *api.Error
			require.ErrorAs(t, err, &apiErr, "non-2xx must surface as *api.Error")
			assert.Equal(t, tt.status, apiErr.Status)
		})
	}
}

func TestDoRequest_NetworkErrorShape(t *testing.T) {
	// Сервер закрыт — соединение будет отвергнуто
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, "")
	_, err := client.ListShares(context.Background())
	require.Error(t, err)

	var apiErr *api.Error
	assert.False(t, errors.As(err, &apiErr), "transport failures must not look like API errors")
}

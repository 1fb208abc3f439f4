package adapters

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"promo-banner/internal/features/promotions/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPPromotionSource_FetchPromotions(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodGet, r.Method)
			assert.Equal(t, "/api/promos/promocoes", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Accept"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`[
				{"id": 1, "title": "Combo", "description": "2x1", "image": "combo.png", "active": true,
				 "start_date": "2024-01-01", "end_date": "2024-12-31", "discount_value": 10.5,
				 "is_quantity_discount": false, "price": 39.9, "items": [3, 4]},
				{"id": "b", "title": "Old", "image": "string", "active": false}
			]`))
		}))
		defer server.Close()

		src := NewHTTPPromotionSource(server.URL+"/api/promos/promocoes", 5*time.Second)
		promos, err := src.FetchPromotions(context.Background())

		require.NoError(t, err)
		require.Len(t, promos, 2)
		assert.Equal(t, domain.PromotionID("1"), promos[0].ID)
		assert.Equal(t, "Combo", promos[0].Title)
		assert.Equal(t, 39.9, promos[0].Price)
		assert.Equal(t, []int{3, 4}, promos[0].Items)
		assert.True(t, promos[0].Active)
		assert.Equal(t, domain.PromotionID("b"), promos[1].ID)
		assert.False(t, promos[1].HasImage())
	})

	t.Run("ServerError", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		src := NewHTTPPromotionSource(server.URL, 5*time.Second)
		_, err := src.FetchPromotions(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNetwork)
		assert.Contains(t, err.Error(), "500")
	})

	t.Run("NotAnArray", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"detail": "oops"}`))
		}))
		defer server.Close()

		src := NewHTTPPromotionSource(server.URL, 5*time.Second)
		_, err := src.FetchPromotions(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrDecode)
		assert.NotErrorIs(t, err, domain.ErrNetwork)
	})

	t.Run("Unreachable", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		url := server.URL
		server.Close()

		src := NewHTTPPromotionSource(url, 5*time.Second)
		_, err := src.FetchPromotions(context.Background())

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNetwork)
	})

	t.Run("CanceledContext", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		src := NewHTTPPromotionSource(server.URL, 5*time.Second)
		_, err := src.FetchPromotions(ctx)

		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrNetwork)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

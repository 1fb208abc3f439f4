package adapters

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"promo-banner/internal/core/httpclient"
	"promo-banner/internal/features/promotions/domain"
)

// HTTPPromotionSource implements ports.PromotionSource against the restaurant backend.
type HTTPPromotionSource struct {
	// client is the HTTP client used for API requests.
	client *http.Client
	// url is the absolute promotions listing endpoint.
	url string
}

// NewHTTPPromotionSource creates a source for url. timeout is enforced by the transport only.
func NewHTTPPromotionSource(url string, timeout time.Duration) *HTTPPromotionSource {
	return &HTTPPromotionSource{
		client: httpclient.NewClient(timeout),
		url:    url,
	}
}

// FetchPromotions performs one GET and decodes the JSON array body.
// Transport failures and non-2xx statuses wrap domain.ErrNetwork; bad bodies wrap domain.ErrDecode.
func (a *HTTPPromotionSource) FetchPromotions(ctx context.Context) ([]domain.Promotion, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %w", domain.ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %w", domain.ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("%w: promotions API returned status: %d", domain.ErrNetwork, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %w", domain.ErrNetwork, err)
	}

	var promotions []domain.Promotion
	if err := json.Unmarshal(body, &promotions); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %w", domain.ErrDecode, err)
	}

	return promotions, nil
}

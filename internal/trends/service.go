package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"slate/internal/config"
)

const userAgent = "slate/0.1.0"

// Product is one trending-product candidate returned by the API.
type Product struct {
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Score    float64 `json:"score"`
	URL      string  `json:"url,omitempty"`
}

// Service exposes the trending-products lookup used when choosing the next
// countdown topic.
type Service interface {
	Trending(ctx context.Context, category string, limit int) ([]Product, error)
}

// NewService builds a trends client when a base URL is configured. Without
// one, a noop implementation is returned so callers never branch.
func NewService(cfg *config.Config) Service {
	base := strings.TrimSpace(cfg.Trends.BaseURL)
	if base == "" {
		return noopService{}
	}

	timeout := time.Duration(cfg.Trends.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &httpService{
		baseURL: strings.TrimRight(base, "/"),
		apiKey:  cfg.Trends.APIKey,
		region:  cfg.Trends.Region,
		client:  &http.Client{Timeout: timeout},
	}
}

type httpService struct {
	baseURL string
	apiKey  string
	region  string
	client  *http.Client
}

func (s *httpService) Trending(ctx context.Context, category string, limit int) ([]Product, error) {
	query := url.Values{}
	if category != "" {
		query.Set("category", category)
	}
	if s.region != "" {
		query.Set("region", s.region)
	}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	endpoint := s.baseURL + "/v1/trending"
	if encoded := query.Encode(); encoded != "" {
		endpoint += "?" + encoded
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build trends request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch trends: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("trends API returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var payload struct {
		Products []Product `json:"products"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode trends response: %w", err)
	}
	return payload.Products, nil
}

// noopService satisfies Service when no endpoint is configured.
type noopService struct{}

func (noopService) Trending(context.Context, string, int) ([]Product, error) {
	return nil, nil
}

// Package stockdata talks to the remote stock data service. It is a
// pure I/O boundary: callers get either a usable quote or
// domain.ErrQuoteUnavailable, never a partially filled one.
package stockdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"stockfolio/internal/domain"

	"github.com/shopspring/decimal"
)

type Client interface {
	// GetQuote fetches the current name, sector and price for a stock
	// code. Any transport failure, non-200 response or malformed
	// payload maps to domain.ErrQuoteUnavailable.
	GetQuote(ctx context.Context, stockCode string) (*domain.QuoteSnapshot, error)
	// FindImageURL looks up the icon image for a stock code via the
	// search endpoint. Returns "" when the code has no image.
	FindImageURL(ctx context.Context, stockCode string) (string, error)
}

type clientHandler struct {
	HttpClient *http.Client
	BaseUrl    string
}

func NewClient(httpClient *http.Client, baseUrl string) Client {
	return clientHandler{
		HttpClient: httpClient,
		BaseUrl:    strings.TrimRight(baseUrl, "/"),
	}
}

// the remote service is inconsistent about whether price is a JSON
// number or a quoted string, so decode it raw and parse ourselves
type quoteResponse struct {
	Name   string          `json:"name"`
	Sector string          `json:"sector"`
	Price  json.RawMessage `json:"price"`
}

func (c clientHandler) GetQuote(ctx context.Context, stockCode string) (*domain.QuoteSnapshot, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/stocks/%s", c.BaseUrl, url.PathEscape(stockCode)))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quote for %s: %v: %w", stockCode, err, domain.ErrQuoteUnavailable)
	}

	var response quoteResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("failed to parse quote for %s: %v: %w", stockCode, err, domain.ErrQuoteUnavailable)
	}

	if len(response.Price) == 0 {
		return nil, fmt.Errorf("quote for %s is missing a price: %w", stockCode, domain.ErrQuoteUnavailable)
	}
	price, err := decimal.NewFromString(strings.Trim(string(response.Price), `"`))
	if err != nil {
		return nil, fmt.Errorf("quote for %s has non-numeric price %s: %w", stockCode, response.Price, domain.ErrQuoteUnavailable)
	}

	return &domain.QuoteSnapshot{
		StockCode:    stockCode,
		Name:         response.Name,
		Sector:       response.Sector,
		CurrentPrice: price,
	}, nil
}

type searchResult struct {
	StockCode string `json:"stockCode"`
	ImageUrl  string `json:"imageUrl"`
}

func (c clientHandler) FindImageURL(ctx context.Context, stockCode string) (string, error) {
	body, err := c.get(ctx, fmt.Sprintf("%s/stocks/search?keyword=%s", c.BaseUrl, url.QueryEscape(stockCode)))
	if err != nil {
		return "", fmt.Errorf("failed to search images for %s: %v: %w", stockCode, err, domain.ErrQuoteUnavailable)
	}

	results := []searchResult{}
	if err := json.Unmarshal(body, &results); err != nil {
		return "", fmt.Errorf("failed to parse image search for %s: %v: %w", stockCode, err, domain.ErrQuoteUnavailable)
	}

	for _, r := range results {
		if r.StockCode == stockCode {
			return r.ImageUrl, nil
		}
	}

	return "", nil
}

func (c clientHandler) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")

	response, err := c.HttpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, fmt.Errorf("received status code %d and failed to read body: %w", response.StatusCode, err)
	}
	if response.StatusCode != 200 {
		return nil, fmt.Errorf("received status code %d", response.StatusCode)
	}

	return body, nil
}

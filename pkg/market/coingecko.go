package market

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"litmus/internal/model"
)

const (
	DefaultBaseURL = "https://api.coingecko.com/api/v3"
	userAgent      = "TheLitmus/1.0"
)

type Config struct {
	BaseURL       string
	APIKey        string
	Timeout       time.Duration
	RatePerMinute int
}

type CoinGeckoClient struct {
	cfg        Config
	httpClient *http.Client
	limiter    *rate.Limiter
	cache      Cache
}

var _ Source = (*CoinGeckoClient)(nil)

func NewCoinGeckoClient(cfg Config) *CoinGeckoClient {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}

	limit := rate.Inf
	if cfg.RatePerMinute > 0 {
		limit = rate.Every(time.Minute / time.Duration(cfg.RatePerMinute))
	}

	return &CoinGeckoClient{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(limit, 5),
	}
}

// WithCache makes the client serve repeated requests from cache.
func (c *CoinGeckoClient) WithCache(cache Cache) *CoinGeckoClient {
	c.cache = cache
	return c
}

func (c *CoinGeckoClient) Global(ctx context.Context) (*model.GlobalMarket, error) {
	var raw globalResponse
	if err := c.getJSON(ctx, "/global", nil, &raw); err != nil {
		return nil, err
	}

	return &model.GlobalMarket{
		TotalMarketCap:     raw.Data.TotalMarketCap["usd"],
		TotalVolume:        raw.Data.TotalVolume["usd"],
		BTCDominance:       raw.Data.MarketCapPercentage["btc"],
		ETHDominance:       raw.Data.MarketCapPercentage["eth"],
		MarketCapChange24h: raw.Data.MarketCapChangePercentage24hUSD,
	}, nil
}

// TopCoins returns the first page of coins ranked by market cap. windows selects the extra
// percent-change columns ("24h", "7d", "30d"); 24h is always requested.
func (c *CoinGeckoClient) TopCoins(ctx context.Context, perPage int, windows ...string) ([]model.CoinMarket, error) {
	if len(windows) == 0 {
		windows = []string{"24h"}
	}

	q := url.Values{}
	q.Set("vs_currency", "usd")
	q.Set("order", "market_cap_desc")
	q.Set("per_page", strconv.Itoa(perPage))
	q.Set("page", "1")
	q.Set("sparkline", "false")
	q.Set("price_change_percentage", strings.Join(windows, ","))

	var raw []coinMarketItem
	if err := c.getJSON(ctx, "/coins/markets", q, &raw); err != nil {
		return nil, err
	}

	coins := make([]model.CoinMarket, 0, len(raw))
	for _, item := range raw {
		coins = append(coins, model.CoinMarket{
			ID:        item.ID,
			Symbol:    item.Symbol,
			Name:      item.Name,
			Price:     item.CurrentPrice,
			MarketCap: item.MarketCap,
			Volume24h: item.TotalVolume,
			Change24h: item.PriceChangePercentage24h,
			Change7d:  item.PriceChangePercentage7dInCurrency,
			Change30d: item.PriceChangePercentage30dInCurrency,
		})
	}

	return coins, nil
}

// Prices returns USD quotes keyed by CoinGecko coin id. Unknown ids are absent from the map.
func (c *CoinGeckoClient) Prices(ctx context.Context, ids ...string) (map[string]model.PriceQuote, error) {
	q := url.Values{}
	q.Set("ids", strings.Join(ids, ","))
	q.Set("vs_currencies", "usd")
	q.Set("include_24hr_change", "true")
	q.Set("include_market_cap", "true")

	var raw map[string]map[string]float64
	if err := c.getJSON(ctx, "/simple/price", q, &raw); err != nil {
		return nil, err
	}

	quotes := make(map[string]model.PriceQuote, len(raw))
	for id, fields := range raw {
		quotes[id] = model.PriceQuote{
			USD:       fields["usd"],
			Change24h: fields["usd_24h_change"],
			MarketCap: fields["usd_market_cap"],
		}
	}
	return quotes, nil
}

func (c *CoinGeckoClient) getJSON(ctx context.Context, path string, q url.Values, out any) error {
	key := path
	if len(q) > 0 {
		key += "?" + q.Encode()
	}

	if c.cache != nil {
		if body, ok := c.cache.Get(ctx, key); ok {
			if err := json.Unmarshal(body, out); err == nil {
				return nil
			}
			slog.Warn("discarding undecodable cached response", "key", key)
		}
	}

	body, err := c.fetch(ctx, key)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%w: coingecko %s: %w", ErrMalformedResponse, path, err)
	}

	if c.cache != nil {
		c.cache.Set(ctx, key, body)
	}
	return nil
}

func (c *CoinGeckoClient) fetch(ctx context.Context, pathAndQuery string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: coingecko rate limit wait: %w", ErrTransport, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.cfg.BaseURL+pathAndQuery, nil)
	if err != nil {
		return nil, fmt.Errorf("coingecko request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	if c.cfg.APIKey != "" {
		req.Header.Set("x-cg-demo-api-key", c.cfg.APIKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: coingecko fetch: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: coingecko http %d", ErrTransport, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: coingecko read: %w", ErrTransport, err)
	}
	return body, nil
}

type globalResponse struct {
	Data struct {
		TotalMarketCap                  map[string]float64 `json:"total_market_cap"`
		TotalVolume                     map[string]float64 `json:"total_volume"`
		MarketCapPercentage             map[string]float64 `json:"market_cap_percentage"`
		MarketCapChangePercentage24hUSD float64            `json:"market_cap_change_percentage_24h_usd"`
	} `json:"data"`
}

type coinMarketItem struct {
	ID                                 string   `json:"id"`
	Symbol                             string   `json:"symbol"`
	Name                               string   `json:"name"`
	CurrentPrice                       float64  `json:"current_price"`
	MarketCap                          float64  `json:"market_cap"`
	TotalVolume                        float64  `json:"total_volume"`
	PriceChangePercentage24h           *float64 `json:"price_change_percentage_24h"`
	PriceChangePercentage7dInCurrency  *float64 `json:"price_change_percentage_7d_in_currency"`
	PriceChangePercentage30dInCurrency *float64 `json:"price_change_percentage_30d_in_currency"`
}

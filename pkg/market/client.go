// Package market fetches market figures from the CoinGecko public API.
package market

import (
	"context"
	"errors"

	"litmus/internal/model"
)

var (
	// ErrTransport means the data source could not be reached or answered with an HTTP error.
	ErrTransport = errors.New("market data transport failure")
	// ErrMalformedResponse means the data source answered but the body could not be decoded.
	ErrMalformedResponse = errors.New("malformed market data response")
)

// Cache stores raw response bodies keyed by request. Implementations are best effort.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, body []byte)
}

type Source interface {
	Global(ctx context.Context) (*model.GlobalMarket, error)
	TopCoins(ctx context.Context, perPage int, windows ...string) ([]model.CoinMarket, error)
	Prices(ctx context.Context, ids ...string) (map[string]model.PriceQuote, error)
}

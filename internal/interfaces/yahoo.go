// Package interfaces defines the service and client contracts used
// across yfengine.
package interfaces

import (
	"context"
	"time"

	"yfengine/internal/models"
)

// HistoryParams selects the window for a historical price query.
// Either Period or the Start/End pair is set, never both.
type HistoryParams struct {
	Period   string
	Interval string
	Start    time.Time
	End      time.Time
}

// YahooClient is the narrow request interface onto the upstream Yahoo
// Finance data provider: give a symbol and optional parameters, receive
// tabular or scalar data. Implementations own all network, session, and
// parsing behavior.
type YahooClient interface {
	// Info returns the merged quote/profile field map for a symbol
	// (regularMarketPrice, currentPrice, previousClose, sector, ...).
	Info(ctx context.Context, symbol string) (map[string]interface{}, error)

	// History returns OHLCV bars for the requested window, oldest first.
	History(ctx context.Context, symbol string, params HistoryParams) ([]models.Bar, error)

	// Dividends returns the full dividend history, oldest first.
	Dividends(ctx context.Context, symbol string) ([]models.Distribution, error)

	// Splits returns the full stock split history, oldest first.
	Splits(ctx context.Context, symbol string) ([]models.Split, error)

	// Statement returns a financial statement at yearly or quarterly
	// frequency.
	Statement(ctx context.Context, symbol string, kind models.StatementKind, quarterly bool) (*models.Statement, error)

	// EarningsDates returns past and upcoming earnings dates, most
	// recent first.
	EarningsDates(ctx context.Context, symbol string) ([]models.EarningsEvent, error)

	// News returns recent news articles for a symbol.
	News(ctx context.Context, symbol string) ([]models.NewsItem, error)

	// Recommendations returns the analyst rating trend.
	Recommendations(ctx context.Context, symbol string) ([]models.RecommendationTrend, error)

	// PriceTargets returns analyst price target statistics.
	PriceTargets(ctx context.Context, symbol string) (*models.PriceTargets, error)

	// MajorHolders returns the insider/institution ownership breakdown.
	MajorHolders(ctx context.Context, symbol string) (*models.MajorHoldersBreakdown, error)

	// InstitutionalHolders returns the top institutional owners.
	InstitutionalHolders(ctx context.Context, symbol string) ([]models.Holder, error)

	// MutualFundHolders returns the top mutual-fund owners.
	MutualFundHolders(ctx context.Context, symbol string) ([]models.Holder, error)

	// OptionExpirations returns the available option expiration dates.
	OptionExpirations(ctx context.Context, symbol string) ([]time.Time, error)

	// OptionChain returns the calls and puts for one expiration date.
	OptionChain(ctx context.Context, symbol string, expiration time.Time) (*models.OptionChain, error)

	// Sustainability returns the ESG score field map.
	Sustainability(ctx context.Context, symbol string) (map[string]interface{}, error)
}

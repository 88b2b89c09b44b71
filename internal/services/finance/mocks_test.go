package finance

import (
	"context"
	"errors"
	"time"

	"yfengine/internal/interfaces"
	"yfengine/internal/models"
)

var errNotImplemented = errors.New("not implemented")

// mockYahooClient is a function-field mock of interfaces.YahooClient.
// Unset fields return errNotImplemented.
type mockYahooClient struct {
	InfoFunc                 func(ctx context.Context, symbol string) (map[string]interface{}, error)
	HistoryFunc              func(ctx context.Context, symbol string, params interfaces.HistoryParams) ([]models.Bar, error)
	DividendsFunc            func(ctx context.Context, symbol string) ([]models.Distribution, error)
	SplitsFunc               func(ctx context.Context, symbol string) ([]models.Split, error)
	StatementFunc            func(ctx context.Context, symbol string, kind models.StatementKind, quarterly bool) (*models.Statement, error)
	EarningsDatesFunc        func(ctx context.Context, symbol string) ([]models.EarningsEvent, error)
	NewsFunc                 func(ctx context.Context, symbol string) ([]models.NewsItem, error)
	RecommendationsFunc      func(ctx context.Context, symbol string) ([]models.RecommendationTrend, error)
	PriceTargetsFunc         func(ctx context.Context, symbol string) (*models.PriceTargets, error)
	MajorHoldersFunc         func(ctx context.Context, symbol string) (*models.MajorHoldersBreakdown, error)
	InstitutionalHoldersFunc func(ctx context.Context, symbol string) ([]models.Holder, error)
	MutualFundHoldersFunc    func(ctx context.Context, symbol string) ([]models.Holder, error)
	OptionExpirationsFunc    func(ctx context.Context, symbol string) ([]time.Time, error)
	OptionChainFunc          func(ctx context.Context, symbol string, expiration time.Time) (*models.OptionChain, error)
	SustainabilityFunc       func(ctx context.Context, symbol string) (map[string]interface{}, error)
}

func (m *mockYahooClient) Info(ctx context.Context, symbol string) (map[string]interface{}, error) {
	if m.InfoFunc != nil {
		return m.InfoFunc(ctx, symbol)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) History(ctx context.Context, symbol string, params interfaces.HistoryParams) ([]models.Bar, error) {
	if m.HistoryFunc != nil {
		return m.HistoryFunc(ctx, symbol, params)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) Dividends(ctx context.Context, symbol string) ([]models.Distribution, error) {
	if m.DividendsFunc != nil {
		return m.DividendsFunc(ctx, symbol)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) Splits(ctx context.Context, symbol string) ([]models.Split, error) {
	if m.SplitsFunc != nil {
		return m.SplitsFunc(ctx, symbol)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) Statement(ctx context.Context, symbol string, kind models.StatementKind, quarterly bool) (*models.Statement, error) {
	if m.StatementFunc != nil {
		return m.StatementFunc(ctx, symbol, kind, quarterly)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) EarningsDates(ctx context.Context, symbol string) ([]models.EarningsEvent, error) {
	if m.EarningsDatesFunc != nil {
		return m.EarningsDatesFunc(ctx, symbol)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) News(ctx context.Context, symbol string) ([]models.NewsItem, error) {
	if m.NewsFunc != nil {
		return m.NewsFunc(ctx, symbol)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) Recommendations(ctx context.Context, symbol string) ([]models.RecommendationTrend, error) {
	if m.RecommendationsFunc != nil {
		return m.RecommendationsFunc(ctx, symbol)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) PriceTargets(ctx context.Context, symbol string) (*models.PriceTargets, error) {
	if m.PriceTargetsFunc != nil {
		return m.PriceTargetsFunc(ctx, symbol)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) MajorHolders(ctx context.Context, symbol string) (*models.MajorHoldersBreakdown, error) {
	if m.MajorHoldersFunc != nil {
		return m.MajorHoldersFunc(ctx, symbol)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) InstitutionalHolders(ctx context.Context, symbol string) ([]models.Holder, error) {
	if m.InstitutionalHoldersFunc != nil {
		return m.InstitutionalHoldersFunc(ctx, symbol)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) MutualFundHolders(ctx context.Context, symbol string) ([]models.Holder, error) {
	if m.MutualFundHoldersFunc != nil {
		return m.MutualFundHoldersFunc(ctx, symbol)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) OptionExpirations(ctx context.Context, symbol string) ([]time.Time, error) {
	if m.OptionExpirationsFunc != nil {
		return m.OptionExpirationsFunc(ctx, symbol)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) OptionChain(ctx context.Context, symbol string, expiration time.Time) (*models.OptionChain, error) {
	if m.OptionChainFunc != nil {
		return m.OptionChainFunc(ctx, symbol, expiration)
	}
	return nil, errNotImplemented
}

func (m *mockYahooClient) Sustainability(ctx context.Context, symbol string) (map[string]interface{}, error) {
	if m.SustainabilityFunc != nil {
		return m.SustainabilityFunc(ctx, symbol)
	}
	return nil, errNotImplemented
}

var _ interfaces.YahooClient = (*mockYahooClient)(nil)

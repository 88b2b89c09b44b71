package app

import (
	"context"

	"yfengine/internal/interfaces"
)

// mockFinanceService records the last call and returns canned strings.
type mockFinanceService struct {
	lastMethod string
	lastSymbol string
	lastFreq   string
	lastLimit  int
	reply      string
	panicWith  interface{}
}

func (m *mockFinanceService) record(method, symbol string) string {
	if m.panicWith != nil {
		panic(m.panicWith)
	}
	m.lastMethod = method
	m.lastSymbol = symbol
	if m.reply != "" {
		return m.reply
	}
	return method + ":" + symbol
}

func (m *mockFinanceService) GetCurrentStockPrice(ctx context.Context, symbol string) string {
	return m.record("get_current_stock_price", symbol)
}

func (m *mockFinanceService) GetStockPriceByDate(ctx context.Context, symbol, date string) string {
	return m.record("get_stock_price_by_date", symbol)
}

func (m *mockFinanceService) GetStockPriceDateRange(ctx context.Context, symbol, startDate, endDate string) string {
	return m.record("get_stock_price_date_range", symbol)
}

func (m *mockFinanceService) GetHistoricalStockPrices(ctx context.Context, symbol, period, interval string) string {
	return m.record("get_historical_stock_prices", symbol) + ":" + period + ":" + interval
}

func (m *mockFinanceService) GetDividends(ctx context.Context, symbol string) string {
	return m.record("get_dividends", symbol)
}

func (m *mockFinanceService) GetIncomeStatement(ctx context.Context, symbol, freq string) string {
	m.lastFreq = freq
	return m.record("get_income_statement", symbol)
}

func (m *mockFinanceService) GetCashflow(ctx context.Context, symbol, freq string) string {
	m.lastFreq = freq
	return m.record("get_cashflow", symbol)
}

func (m *mockFinanceService) GetBalanceSheet(ctx context.Context, symbol, freq string) string {
	m.lastFreq = freq
	return m.record("get_balance_sheet", symbol)
}

func (m *mockFinanceService) GetEarningDates(ctx context.Context, symbol string, limit int) string {
	m.lastLimit = limit
	return m.record("get_earning_dates", symbol)
}

func (m *mockFinanceService) GetNews(ctx context.Context, symbol string) string {
	return m.record("get_news", symbol)
}

func (m *mockFinanceService) GetCompanyInfo(ctx context.Context, symbol string) string {
	return m.record("get_company_info", symbol)
}

func (m *mockFinanceService) GetSplits(ctx context.Context, symbol string) string {
	return m.record("get_splits", symbol)
}

func (m *mockFinanceService) GetRecommendations(ctx context.Context, symbol string) string {
	return m.record("get_recommendations", symbol)
}

func (m *mockFinanceService) GetAnalystPriceTargets(ctx context.Context, symbol string) string {
	return m.record("get_analyst_price_targets", symbol)
}

func (m *mockFinanceService) GetMajorHolders(ctx context.Context, symbol string) string {
	return m.record("get_major_holders", symbol)
}

func (m *mockFinanceService) GetInstitutionalHolders(ctx context.Context, symbol string) string {
	return m.record("get_institutional_holders", symbol)
}

func (m *mockFinanceService) GetMutualfundHolders(ctx context.Context, symbol string) string {
	return m.record("get_mutualfund_holders", symbol)
}

func (m *mockFinanceService) GetOptionExpirationDates(ctx context.Context, symbol string) string {
	return m.record("get_option_expiration_dates", symbol)
}

func (m *mockFinanceService) GetOptionChain(ctx context.Context, symbol, date string) string {
	return m.record("get_option_chain", symbol)
}

func (m *mockFinanceService) GetSustainability(ctx context.Context, symbol string) string {
	return m.record("get_sustainability", symbol)
}

var _ interfaces.FinanceService = (*mockFinanceService)(nil)

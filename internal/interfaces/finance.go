package interfaces

import "context"

// FinanceService is the facade over the Yahoo client. Every operation
// returns a string: serialized JSON on success, or a descriptive message
// when data is unavailable or the upstream call fails. Operations never
// return Go errors to the caller.
type FinanceService interface {
	GetCurrentStockPrice(ctx context.Context, symbol string) string
	GetStockPriceByDate(ctx context.Context, symbol, date string) string
	GetStockPriceDateRange(ctx context.Context, symbol, startDate, endDate string) string
	GetHistoricalStockPrices(ctx context.Context, symbol, period, interval string) string
	GetDividends(ctx context.Context, symbol string) string
	GetIncomeStatement(ctx context.Context, symbol, freq string) string
	GetCashflow(ctx context.Context, symbol, freq string) string
	GetBalanceSheet(ctx context.Context, symbol, freq string) string
	GetEarningDates(ctx context.Context, symbol string, limit int) string
	GetNews(ctx context.Context, symbol string) string
	GetCompanyInfo(ctx context.Context, symbol string) string
	GetSplits(ctx context.Context, symbol string) string
	GetRecommendations(ctx context.Context, symbol string) string
	GetAnalystPriceTargets(ctx context.Context, symbol string) string
	GetMajorHolders(ctx context.Context, symbol string) string
	GetInstitutionalHolders(ctx context.Context, symbol string) string
	GetMutualfundHolders(ctx context.Context, symbol string) string
	GetOptionExpirationDates(ctx context.Context, symbol string) string
	GetOptionChain(ctx context.Context, symbol, date string) string
	GetSustainability(ctx context.Context, symbol string) string
}

// Package finance implements the string-returning facade over the Yahoo
// client. Every operation returns serialized JSON on success and a
// descriptive message when data is unavailable or the upstream call
// fails; errors never propagate to the caller.
package finance

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"yfengine/internal/common"
	"yfengine/internal/interfaces"
	"yfengine/internal/models"
)

const dateFormat = "2006-01-02"

// Service implements interfaces.FinanceService.
type Service struct {
	client interfaces.YahooClient
	logger *common.Logger
}

// NewService creates a new finance service.
func NewService(client interfaces.YahooClient, logger *common.Logger) *Service {
	return &Service{
		client: client,
		logger: logger,
	}
}

// infoFloat returns the first numeric value present under the given keys.
func infoFloat(info map[string]interface{}, keys ...string) *float64 {
	for _, key := range keys {
		if v, ok := info[key]; ok {
			switch n := v.(type) {
			case float64:
				return &n
			case int:
				f := float64(n)
				return &f
			}
		}
	}
	return nil
}

func marshal(v interface{}) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// GetCurrentStockPrice returns the regular market price, falling back to
// the previous close when the market price is unavailable.
func (s *Service) GetCurrentStockPrice(ctx context.Context, symbol string) string {
	info, err := s.client.Info(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching price for %s: %v", symbol, err)
	}

	if price := infoFloat(info, "regularMarketPrice", "currentPrice"); price != nil {
		return fmt.Sprintf("%.4f", *price)
	}
	if prev := infoFloat(info, "previousClose"); prev != nil {
		return fmt.Sprintf("%.4f (Previous Close)", *prev)
	}
	return fmt.Sprintf("Couldn't fetch current or previous price for %s", symbol)
}

// GetStockPriceByDate returns the closing price on a specific date.
func (s *Service) GetStockPriceByDate(ctx context.Context, symbol, date string) string {
	start, err := time.Parse(dateFormat, date)
	if err != nil {
		return fmt.Sprintf("Error fetching price for %s on %s: %v", symbol, date, err)
	}

	bars, err := s.client.History(ctx, symbol, interfaces.HistoryParams{
		Start: start,
		End:   start.AddDate(0, 0, 1),
	})
	if err != nil {
		return fmt.Sprintf("Error fetching price for %s on %s: %v", symbol, date, err)
	}

	if len(bars) == 0 {
		return fmt.Sprintf("No price data found for %s on or immediately after %s.", symbol, date)
	}
	return fmt.Sprintf("%.4f", bars[0].Close)
}

// GetStockPriceDateRange returns the closing prices between two dates as
// a split-orientation series.
func (s *Service) GetStockPriceDateRange(ctx context.Context, symbol, startDate, endDate string) string {
	start, err := time.Parse(dateFormat, startDate)
	if err != nil {
		return fmt.Sprintf("Error fetching price range for %s: %v", symbol, err)
	}
	end, err := time.Parse(dateFormat, endDate)
	if err != nil {
		return fmt.Sprintf("Error fetching price range for %s: %v", symbol, err)
	}

	bars, err := s.client.History(ctx, symbol, interfaces.HistoryParams{Start: start, End: end})
	if err != nil {
		return fmt.Sprintf("Error fetching price range for %s: %v", symbol, err)
	}

	if len(bars) == 0 {
		return fmt.Sprintf("No price data found for %s between %s and %s.", symbol, startDate, endDate)
	}

	series := models.NewSeries("Close")
	for _, bar := range bars {
		series.Append(models.ISOTime(bar.Date), bar.Close)
	}

	out, err := series.ToJSON()
	if err != nil {
		return fmt.Sprintf("Error fetching price range for %s: %v", symbol, err)
	}
	return out
}

// GetHistoricalStockPrices returns OHLCV bars for a period/interval pair
// as a split-orientation frame.
func (s *Service) GetHistoricalStockPrices(ctx context.Context, symbol, period, interval string) string {
	bars, err := s.client.History(ctx, symbol, interfaces.HistoryParams{
		Period:   period,
		Interval: interval,
	})
	if err != nil {
		return fmt.Sprintf("Error fetching historical prices for %s: %v", symbol, err)
	}

	if len(bars) == 0 {
		return fmt.Sprintf("No historical data found for %s with period=%s, interval=%s.", symbol, period, interval)
	}

	frame := models.NewFrame("Open", "High", "Low", "Close", "Volume")
	for _, bar := range bars {
		frame.AppendRow(models.ISOTime(bar.Date), bar.Open, bar.High, bar.Low, bar.Close, bar.Volume)
	}

	out, err := frame.ToJSON()
	if err != nil {
		return fmt.Sprintf("Error fetching historical prices for %s: %v", symbol, err)
	}
	return out
}

// GetDividends returns the dividend history as a split-orientation series.
func (s *Service) GetDividends(ctx context.Context, symbol string) string {
	dividends, err := s.client.Dividends(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching dividends for %s: %v", symbol, err)
	}

	if len(dividends) == 0 {
		return fmt.Sprintf("No dividend data found for %s.", symbol)
	}

	series := models.NewSeries("Dividends")
	for _, d := range dividends {
		series.Append(models.ISOTime(d.Date), d.Amount)
	}

	out, err := series.ToJSON()
	if err != nil {
		return fmt.Sprintf("Error fetching dividends for %s: %v", symbol, err)
	}
	return out
}

// statementFrame lays out a statement with periods as columns and line
// items as rows.
func statementFrame(stmt *models.Statement) *models.Frame {
	columns := make([]string, len(stmt.Periods))
	for i, p := range stmt.Periods {
		columns[i] = models.ISOTime(p)
	}
	frame := models.NewFrame(columns...)
	for _, row := range stmt.Rows {
		values := make([]interface{}, len(row.Values))
		for i, v := range row.Values {
			if v != nil {
				values[i] = *v
			}
		}
		frame.AppendRow(row.Label, values...)
	}
	return frame
}

// statementFreq normalizes the requested frequency: anything other than
// "quarterly" falls back to yearly.
func statementFreq(freq string) (string, bool) {
	if freq == "quarterly" {
		return "quarterly", true
	}
	return "yearly", false
}

func (s *Service) statement(ctx context.Context, symbol, freq string, kind models.StatementKind, noun string) string {
	freq, quarterly := statementFreq(freq)

	stmt, err := s.client.Statement(ctx, symbol, kind, quarterly)
	if err != nil {
		return fmt.Sprintf("Error fetching %s %s for %s: %v", freq, noun, symbol, err)
	}

	if stmt.Empty() {
		return fmt.Sprintf("No %s %s data found for %s.", freq, noun, symbol)
	}

	out, err := statementFrame(stmt).ToJSON()
	if err != nil {
		return fmt.Sprintf("Error fetching %s %s for %s: %v", freq, noun, symbol, err)
	}
	return out
}

// GetIncomeStatement returns the income statement at the given frequency.
func (s *Service) GetIncomeStatement(ctx context.Context, symbol, freq string) string {
	return s.statement(ctx, symbol, freq, models.StatementIncome, "income statement")
}

// GetCashflow returns the cashflow statement at the given frequency.
func (s *Service) GetCashflow(ctx context.Context, symbol, freq string) string {
	return s.statement(ctx, symbol, freq, models.StatementCashflow, "cashflow")
}

// GetBalanceSheet returns the balance sheet at the given frequency.
func (s *Service) GetBalanceSheet(ctx context.Context, symbol, freq string) string {
	return s.statement(ctx, symbol, freq, models.StatementBalance, "balance sheet")
}

// GetEarningDates returns up to limit past and upcoming earnings dates.
func (s *Service) GetEarningDates(ctx context.Context, symbol string, limit int) string {
	events, err := s.client.EarningsDates(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching earning dates for %s: %v", symbol, err)
	}

	if len(events) == 0 {
		return fmt.Sprintf("No earnings dates found for %s via earnings_dates or calendar.", symbol)
	}

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}

	frame := models.NewFrame("Earnings Date", "EPS Estimate", "Reported EPS", "Surprise(%)")
	for i, e := range events {
		var estimate, reported, surprise interface{}
		if e.EPSEstimate != nil {
			estimate = *e.EPSEstimate
		}
		if e.ReportedEPS != nil {
			reported = *e.ReportedEPS
		}
		if e.SurprisePct != nil {
			surprise = *e.SurprisePct
		}
		frame.AppendRow(i, e.Date.Format(dateFormat), estimate, reported, surprise)
	}

	out, err := frame.ToJSON()
	if err != nil {
		return fmt.Sprintf("Error fetching earning dates for %s: %v", symbol, err)
	}
	return out
}

// GetNews returns recent news articles as a JSON list.
func (s *Service) GetNews(ctx context.Context, symbol string) string {
	items, err := s.client.News(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching news for %s: %v", symbol, err)
	}

	if len(items) == 0 {
		return fmt.Sprintf("No recent news found for %s.", symbol)
	}

	out, err := marshal(items)
	if err != nil {
		return fmt.Sprintf("Error fetching news for %s: %v", symbol, err)
	}
	return out
}

// GetCompanyInfo returns the merged quote/profile field map as JSON.
func (s *Service) GetCompanyInfo(ctx context.Context, symbol string) string {
	info, err := s.client.Info(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching company info for %s: %v", symbol, err)
	}

	if len(info) == 0 {
		return fmt.Sprintf("Could not retrieve company info or fast_info for %s.", symbol)
	}

	out, err := marshal(info)
	if err != nil {
		return fmt.Sprintf("Error fetching company info for %s: %v", symbol, err)
	}
	return out
}

// GetSplits returns the stock split history as a split-orientation series.
func (s *Service) GetSplits(ctx context.Context, symbol string) string {
	splits, err := s.client.Splits(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching splits for %s: %v", symbol, err)
	}

	if len(splits) == 0 {
		return fmt.Sprintf("No stock split data found for %s.", symbol)
	}

	series := models.NewSeries("Stock Splits")
	for _, sp := range splits {
		series.Append(models.ISOTime(sp.Date), sp.Ratio)
	}

	out, err := series.ToJSON()
	if err != nil {
		return fmt.Sprintf("Error fetching splits for %s: %v", symbol, err)
	}
	return out
}

// GetRecommendations returns the analyst rating trend as a frame.
func (s *Service) GetRecommendations(ctx context.Context, symbol string) string {
	trends, err := s.client.Recommendations(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching recommendations for %s: %v", symbol, err)
	}

	if len(trends) == 0 {
		return fmt.Sprintf("No recommendation data found for %s.", symbol)
	}

	frame := models.NewFrame("period", "strongBuy", "buy", "hold", "sell", "strongSell")
	for i, t := range trends {
		frame.AppendRow(i, t.Period, t.StrongBuy, t.Buy, t.Hold, t.Sell, t.StrongSell)
	}

	out, err := frame.ToJSON()
	if err != nil {
		return fmt.Sprintf("Error fetching recommendations for %s: %v", symbol, err)
	}
	return out
}

// GetAnalystPriceTargets returns analyst price target statistics as JSON.
func (s *Service) GetAnalystPriceTargets(ctx context.Context, symbol string) string {
	targets, err := s.client.PriceTargets(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching analyst price targets for %s: %v", symbol, err)
	}

	if targets.Empty() {
		return fmt.Sprintf("No analyst price target data found for %s.", symbol)
	}

	fields := map[string]interface{}{}
	if targets.Current != nil {
		fields["current"] = *targets.Current
	}
	if targets.High != nil {
		fields["high"] = *targets.High
	}
	if targets.Low != nil {
		fields["low"] = *targets.Low
	}
	if targets.Mean != nil {
		fields["mean"] = *targets.Mean
	}
	if targets.Median != nil {
		fields["median"] = *targets.Median
	}

	out, err := marshal(fields)
	if err != nil {
		return fmt.Sprintf("Error fetching analyst price targets for %s: %v", symbol, err)
	}
	return out
}

// GetMajorHolders returns the ownership breakdown as a single-column frame.
func (s *Service) GetMajorHolders(ctx context.Context, symbol string) string {
	breakdown, err := s.client.MajorHolders(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching major holders for %s: %v", symbol, err)
	}

	if breakdown.Empty() {
		return fmt.Sprintf("No major holders data found for %s.", symbol)
	}

	frame := models.NewFrame("Value")
	if breakdown.InsidersPctHeld != nil {
		frame.AppendRow("insidersPercentHeld", *breakdown.InsidersPctHeld)
	}
	if breakdown.InstitutionsPctHeld != nil {
		frame.AppendRow("institutionsPercentHeld", *breakdown.InstitutionsPctHeld)
	}
	if breakdown.InstitutionsFloatPctHeld != nil {
		frame.AppendRow("institutionsFloatPercentHeld", *breakdown.InstitutionsFloatPctHeld)
	}
	if breakdown.InstitutionsCount != nil {
		frame.AppendRow("institutionsCount", *breakdown.InstitutionsCount)
	}

	out, err := frame.ToJSON()
	if err != nil {
		return fmt.Sprintf("Error fetching major holders for %s: %v", symbol, err)
	}
	return out
}

func holdersFrame(holders []models.Holder) *models.Frame {
	frame := models.NewFrame("Holder", "Shares", "Date Reported", "% Held", "Value")
	for i, h := range holders {
		frame.AppendRow(i, h.Organization, h.Shares, h.ReportDate.Format(dateFormat), h.PctHeld, h.Value)
	}
	return frame
}

// GetInstitutionalHolders returns the top institutional owners as a frame.
func (s *Service) GetInstitutionalHolders(ctx context.Context, symbol string) string {
	holders, err := s.client.InstitutionalHolders(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching institutional holders for %s: %v", symbol, err)
	}

	if len(holders) == 0 {
		return fmt.Sprintf("No institutional holders data found for %s.", symbol)
	}

	out, err := holdersFrame(holders).ToJSON()
	if err != nil {
		return fmt.Sprintf("Error fetching institutional holders for %s: %v", symbol, err)
	}
	return out
}

// GetMutualfundHolders returns the top mutual-fund owners as a frame.
func (s *Service) GetMutualfundHolders(ctx context.Context, symbol string) string {
	holders, err := s.client.MutualFundHolders(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching mutual fund holders for %s: %v", symbol, err)
	}

	if len(holders) == 0 {
		return fmt.Sprintf("No mutual fund holders data found for %s.", symbol)
	}

	out, err := holdersFrame(holders).ToJSON()
	if err != nil {
		return fmt.Sprintf("Error fetching mutual fund holders for %s: %v", symbol, err)
	}
	return out
}

// GetOptionExpirationDates returns the available expiration dates as a
// JSON list of YYYY-MM-DD strings.
func (s *Service) GetOptionExpirationDates(ctx context.Context, symbol string) string {
	expirations, err := s.client.OptionExpirations(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching option expiration dates for %s: %v", symbol, err)
	}

	if len(expirations) == 0 {
		return fmt.Sprintf("No option expiration dates found for %s.", symbol)
	}

	dates := make([]string, len(expirations))
	for i, e := range expirations {
		dates[i] = e.Format(dateFormat)
	}

	out, err := marshal(dates)
	if err != nil {
		return fmt.Sprintf("Error fetching option expiration dates for %s: %v", symbol, err)
	}
	return out
}

func optionFrame(contracts []models.OptionContract) *models.Frame {
	frame := models.NewFrame("contractSymbol", "lastTradeDate", "strike", "lastPrice",
		"bid", "ask", "change", "percentChange", "volume", "openInterest",
		"impliedVolatility", "inTheMoney", "currency")
	for i, c := range contracts {
		frame.AppendRow(i, c.ContractSymbol, models.ISOTime(c.LastTradeDate),
			c.Strike, c.LastPrice, c.Bid, c.Ask, c.Change, c.PercentChange,
			c.Volume, c.OpenInterest, c.ImpliedVolatility, c.InTheMoney, c.Currency)
	}
	return frame
}

// GetOptionChain returns the calls and puts for one expiration date. The
// date must be one of the symbol's available expirations; otherwise the
// chain is not fetched.
func (s *Service) GetOptionChain(ctx context.Context, symbol, date string) string {
	expirations, err := s.client.OptionExpirations(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching option chain for %s on %s: %v", symbol, date, err)
	}

	var expiration time.Time
	found := false
	for _, e := range expirations {
		if e.Format(dateFormat) == date {
			expiration = e
			found = true
			break
		}
	}
	if !found {
		return fmt.Sprintf("Invalid or unavailable expiration date: %s. Use get_option_expiration_dates to see available dates.", date)
	}

	chain, err := s.client.OptionChain(ctx, symbol, expiration)
	if err != nil {
		return fmt.Sprintf("Error fetching option chain for %s on %s: %v", symbol, date, err)
	}

	out, err := marshal(map[string]interface{}{
		"calls": optionFrame(chain.Calls),
		"puts":  optionFrame(chain.Puts),
	})
	if err != nil {
		return fmt.Sprintf("Error fetching option chain for %s on %s: %v", symbol, date, err)
	}
	return out
}

// GetSustainability returns the ESG scores as a single-column frame.
func (s *Service) GetSustainability(ctx context.Context, symbol string) string {
	scores, err := s.client.Sustainability(ctx, symbol)
	if err != nil {
		return fmt.Sprintf("Error fetching sustainability data for %s: %v", symbol, err)
	}

	if len(scores) == 0 {
		return fmt.Sprintf("No sustainability (ESG) data found for %s.", symbol)
	}

	keys := make([]string, 0, len(scores))
	for k := range scores {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	frame := models.NewFrame("esgScores")
	for _, k := range keys {
		frame.AppendRow(k, scores[k])
	}

	out, err := frame.ToJSON()
	if err != nil {
		return fmt.Sprintf("Error fetching sustainability data for %s: %v", symbol, err)
	}
	return out
}

// Ensure Service implements FinanceService
var _ interfaces.FinanceService = (*Service)(nil)

package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"unicode"

	"yfengine/internal/models"
)

// infoModules are merged into the Info field map.
var infoModules = []string{
	"price",
	"summaryDetail",
	"assetProfile",
	"financialData",
	"defaultKeyStatistics",
	"quoteType",
}

type quoteSummaryResponse struct {
	QuoteSummary struct {
		Result []map[string]json.RawMessage `json:"result"`
		Error  *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"quoteSummary"`
}

// quoteSummary fetches /v10/finance/quoteSummary for a symbol and returns
// the raw per-module payloads from the first result.
func (c *Client) quoteSummary(ctx context.Context, symbol string, modules []string) (map[string]json.RawMessage, error) {
	q := url.Values{}
	q.Set("modules", strings.Join(modules, ","))

	var resp quoteSummaryResponse
	path := fmt.Sprintf("/v10/finance/quoteSummary/%s", url.PathEscape(symbol))
	if err := c.get(ctx, path, q, &resp); err != nil {
		return nil, err
	}

	if resp.QuoteSummary.Error != nil {
		return nil, fmt.Errorf("quoteSummary query failed for %s: %s (%s)",
			symbol, resp.QuoteSummary.Error.Description, resp.QuoteSummary.Error.Code)
	}
	if len(resp.QuoteSummary.Result) == 0 {
		return nil, fmt.Errorf("quoteSummary returned no result for %s", symbol)
	}

	return resp.QuoteSummary.Result[0], nil
}

// flattenModule collapses Yahoo's {"raw": ..., "fmt": ...} wrappers into
// plain values and keeps scalars as-is. Nested arrays and objects without
// a raw value are dropped.
func flattenModule(module map[string]interface{}, out map[string]interface{}) {
	for key, value := range module {
		if key == "maxAge" {
			continue
		}
		switch v := value.(type) {
		case map[string]interface{}:
			if raw, ok := v["raw"]; ok {
				out[key] = raw
			}
		case []interface{}:
			// nested tables (companyOfficers, ...) are not scalar info
		case nil:
		default:
			out[key] = v
		}
	}
}

// Info returns the merged quote/profile field map for a symbol.
func (c *Client) Info(ctx context.Context, symbol string) (map[string]interface{}, error) {
	result, err := c.quoteSummary(ctx, symbol, infoModules)
	if err != nil {
		return nil, err
	}

	info := make(map[string]interface{})
	for _, name := range infoModules {
		raw, ok := result[name]
		if !ok {
			continue
		}
		var module map[string]interface{}
		if err := json.Unmarshal(raw, &module); err != nil {
			continue
		}
		flattenModule(module, info)
	}

	return info, nil
}

// Sustainability returns the flattened ESG score field map.
func (c *Client) Sustainability(ctx context.Context, symbol string) (map[string]interface{}, error) {
	result, err := c.quoteSummary(ctx, symbol, []string{"esgScores"})
	if err != nil {
		return nil, err
	}

	raw, ok := result["esgScores"]
	if !ok {
		return map[string]interface{}{}, nil
	}

	var module map[string]interface{}
	if err := json.Unmarshal(raw, &module); err != nil {
		return nil, fmt.Errorf("failed to decode esgScores for %s: %w", symbol, err)
	}

	scores := make(map[string]interface{})
	flattenModule(module, scores)
	return scores, nil
}

// statementModule maps a statement kind to its quoteSummary module and the
// key of the entry list inside it.
func statementModule(kind models.StatementKind, quarterly bool) (module, listKey string) {
	switch kind {
	case models.StatementIncome:
		module, listKey = "incomeStatementHistory", "incomeStatementHistory"
	case models.StatementCashflow:
		module, listKey = "cashflowStatementHistory", "cashflowStatements"
	case models.StatementBalance:
		module, listKey = "balanceSheetHistory", "balanceSheetStatements"
	}
	if quarterly {
		module += "Quarterly"
	}
	return module, listKey
}

// prettyLabel turns a camelCase line-item key into a display label
// (totalRevenue -> Total Revenue).
func prettyLabel(key string) string {
	var b strings.Builder
	for i, r := range key {
		if i == 0 {
			b.WriteRune(unicode.ToUpper(r))
			continue
		}
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Statement returns a financial statement with reporting periods as
// columns, most recent first, and line items as rows.
func (c *Client) Statement(ctx context.Context, symbol string, kind models.StatementKind, quarterly bool) (*models.Statement, error) {
	module, listKey := statementModule(kind, quarterly)
	if module == "" {
		return nil, fmt.Errorf("unknown statement kind: %s", kind)
	}

	result, err := c.quoteSummary(ctx, symbol, []string{module})
	if err != nil {
		return nil, err
	}

	raw, ok := result[module]
	if !ok {
		return &models.Statement{}, nil
	}

	var wrapper map[string]json.RawMessage
	if err := json.Unmarshal(raw, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to decode %s for %s: %w", module, symbol, err)
	}

	var entries []map[string]rawValue
	if list, ok := wrapper[listKey]; ok {
		if err := json.Unmarshal(list, &entries); err != nil {
			return nil, fmt.Errorf("failed to decode %s entries for %s: %w", module, symbol, err)
		}
	}

	stmt := &models.Statement{}
	rowIndex := make(map[string]int)

	for _, entry := range entries {
		endDate, ok := entry["endDate"]
		if !ok || endDate.Raw == nil {
			continue
		}
		stmt.Periods = append(stmt.Periods, endDate.time())

		for key := range entry {
			if key == "endDate" || key == "maxAge" {
				continue
			}
			if _, ok := rowIndex[key]; !ok {
				rowIndex[key] = len(stmt.Rows)
				stmt.Rows = append(stmt.Rows, models.StatementRow{Label: prettyLabel(key)})
			}
		}
	}

	// Fill values column by column so every row spans every period.
	for i := range stmt.Rows {
		stmt.Rows[i].Values = make([]*float64, len(stmt.Periods))
	}
	col := 0
	for _, entry := range entries {
		endDate, ok := entry["endDate"]
		if !ok || endDate.Raw == nil {
			continue
		}
		for key, value := range entry {
			if key == "endDate" || key == "maxAge" {
				continue
			}
			stmt.Rows[rowIndex[key]].Values[col] = value.Raw
		}
		col++
	}

	sort.SliceStable(stmt.Rows, func(i, j int) bool {
		return stmt.Rows[i].Label < stmt.Rows[j].Label
	})

	return stmt, nil
}

type earningsHistoryModule struct {
	History []struct {
		Quarter         rawValue `json:"quarter"`
		EPSActual       rawValue `json:"epsActual"`
		EPSEstimate     rawValue `json:"epsEstimate"`
		SurprisePercent rawValue `json:"surprisePercent"`
	} `json:"history"`
}

type calendarEventsModule struct {
	Earnings struct {
		EarningsDate []rawValue `json:"earningsDate"`
		EPSEstimate  rawValue   `json:"earningsAverage"`
	} `json:"earnings"`
}

// EarningsDates returns upcoming and past earnings dates, most recent
// first. Upcoming entries carry an estimate but no reported EPS.
func (c *Client) EarningsDates(ctx context.Context, symbol string) ([]models.EarningsEvent, error) {
	result, err := c.quoteSummary(ctx, symbol, []string{"earningsHistory", "calendarEvents"})
	if err != nil {
		return nil, err
	}

	var events []models.EarningsEvent

	if raw, ok := result["calendarEvents"]; ok {
		var calendar calendarEventsModule
		if err := json.Unmarshal(raw, &calendar); err == nil {
			for _, d := range calendar.Earnings.EarningsDate {
				if d.Raw == nil {
					continue
				}
				event := models.EarningsEvent{Date: d.time()}
				if calendar.Earnings.EPSEstimate.Raw != nil {
					event.EPSEstimate = calendar.Earnings.EPSEstimate.Raw
				}
				events = append(events, event)
			}
		}
	}

	if raw, ok := result["earningsHistory"]; ok {
		var history earningsHistoryModule
		if err := json.Unmarshal(raw, &history); err == nil {
			for _, h := range history.History {
				if h.Quarter.Raw == nil {
					continue
				}
				events = append(events, models.EarningsEvent{
					Date:        h.Quarter.time(),
					EPSEstimate: h.EPSEstimate.Raw,
					ReportedEPS: h.EPSActual.Raw,
					SurprisePct: h.SurprisePercent.Raw,
				})
			}
		}
	}

	sort.Slice(events, func(i, j int) bool {
		return events[i].Date.After(events[j].Date)
	})

	return events, nil
}

type recommendationTrendModule struct {
	Trend []struct {
		Period     string `json:"period"`
		StrongBuy  int    `json:"strongBuy"`
		Buy        int    `json:"buy"`
		Hold       int    `json:"hold"`
		Sell       int    `json:"sell"`
		StrongSell int    `json:"strongSell"`
	} `json:"trend"`
}

// Recommendations returns the analyst rating trend.
func (c *Client) Recommendations(ctx context.Context, symbol string) ([]models.RecommendationTrend, error) {
	result, err := c.quoteSummary(ctx, symbol, []string{"recommendationTrend"})
	if err != nil {
		return nil, err
	}

	raw, ok := result["recommendationTrend"]
	if !ok {
		return nil, nil
	}

	var module recommendationTrendModule
	if err := json.Unmarshal(raw, &module); err != nil {
		return nil, fmt.Errorf("failed to decode recommendationTrend for %s: %w", symbol, err)
	}

	trends := make([]models.RecommendationTrend, 0, len(module.Trend))
	for _, t := range module.Trend {
		trends = append(trends, models.RecommendationTrend{
			Period:     t.Period,
			StrongBuy:  t.StrongBuy,
			Buy:        t.Buy,
			Hold:       t.Hold,
			Sell:       t.Sell,
			StrongSell: t.StrongSell,
		})
	}

	return trends, nil
}

type financialDataModule struct {
	CurrentPrice            rawValue `json:"currentPrice"`
	TargetHighPrice         rawValue `json:"targetHighPrice"`
	TargetLowPrice          rawValue `json:"targetLowPrice"`
	TargetMeanPrice         rawValue `json:"targetMeanPrice"`
	TargetMedianPrice       rawValue `json:"targetMedianPrice"`
	NumberOfAnalystOpinions rawValue `json:"numberOfAnalystOpinions"`
}

// PriceTargets returns analyst price target statistics.
func (c *Client) PriceTargets(ctx context.Context, symbol string) (*models.PriceTargets, error) {
	result, err := c.quoteSummary(ctx, symbol, []string{"financialData"})
	if err != nil {
		return nil, err
	}

	raw, ok := result["financialData"]
	if !ok {
		return &models.PriceTargets{}, nil
	}

	var module financialDataModule
	if err := json.Unmarshal(raw, &module); err != nil {
		return nil, fmt.Errorf("failed to decode financialData for %s: %w", symbol, err)
	}

	targets := &models.PriceTargets{
		Current: module.CurrentPrice.Raw,
		High:    module.TargetHighPrice.Raw,
		Low:     module.TargetLowPrice.Raw,
		Mean:    module.TargetMeanPrice.Raw,
		Median:  module.TargetMedianPrice.Raw,
	}
	if module.NumberOfAnalystOpinions.Raw != nil {
		n := int(*module.NumberOfAnalystOpinions.Raw)
		targets.Analysts = &n
	}

	return targets, nil
}

type majorHoldersModule struct {
	InsidersPercentHeld          rawValue `json:"insidersPercentHeld"`
	InstitutionsPercentHeld      rawValue `json:"institutionsPercentHeld"`
	InstitutionsFloatPercentHeld rawValue `json:"institutionsFloatPercentHeld"`
	InstitutionsCount            rawValue `json:"institutionsCount"`
}

// MajorHolders returns the insider/institution ownership breakdown.
func (c *Client) MajorHolders(ctx context.Context, symbol string) (*models.MajorHoldersBreakdown, error) {
	result, err := c.quoteSummary(ctx, symbol, []string{"majorHoldersBreakdown"})
	if err != nil {
		return nil, err
	}

	raw, ok := result["majorHoldersBreakdown"]
	if !ok {
		return &models.MajorHoldersBreakdown{}, nil
	}

	var module majorHoldersModule
	if err := json.Unmarshal(raw, &module); err != nil {
		return nil, fmt.Errorf("failed to decode majorHoldersBreakdown for %s: %w", symbol, err)
	}

	breakdown := &models.MajorHoldersBreakdown{
		InsidersPctHeld:          module.InsidersPercentHeld.Raw,
		InstitutionsPctHeld:      module.InstitutionsPercentHeld.Raw,
		InstitutionsFloatPctHeld: module.InstitutionsFloatPercentHeld.Raw,
	}
	if module.InstitutionsCount.Raw != nil {
		n := int(*module.InstitutionsCount.Raw)
		breakdown.InstitutionsCount = &n
	}

	return breakdown, nil
}

type ownershipModule struct {
	OwnershipList []struct {
		Organization string   `json:"organization"`
		ReportDate   rawValue `json:"reportDate"`
		PctHeld      rawValue `json:"pctHeld"`
		Position     rawValue `json:"position"`
		Value        rawValue `json:"value"`
	} `json:"ownershipList"`
}

func (c *Client) ownership(ctx context.Context, symbol, module string) ([]models.Holder, error) {
	result, err := c.quoteSummary(ctx, symbol, []string{module})
	if err != nil {
		return nil, err
	}

	raw, ok := result[module]
	if !ok {
		return nil, nil
	}

	var decoded ownershipModule
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode %s for %s: %w", module, symbol, err)
	}

	holders := make([]models.Holder, 0, len(decoded.OwnershipList))
	for _, o := range decoded.OwnershipList {
		holder := models.Holder{
			Organization: o.Organization,
			ReportDate:   o.ReportDate.time(),
		}
		if o.PctHeld.Raw != nil {
			holder.PctHeld = *o.PctHeld.Raw
		}
		if o.Position.Raw != nil {
			holder.Shares = int64(*o.Position.Raw)
		}
		if o.Value.Raw != nil {
			holder.Value = int64(*o.Value.Raw)
		}
		holders = append(holders, holder)
	}

	return holders, nil
}

// InstitutionalHolders returns the top institutional owners.
func (c *Client) InstitutionalHolders(ctx context.Context, symbol string) ([]models.Holder, error) {
	return c.ownership(ctx, symbol, "institutionOwnership")
}

// MutualFundHolders returns the top mutual-fund owners.
func (c *Client) MutualFundHolders(ctx context.Context, symbol string) ([]models.Holder, error) {
	return c.ownership(ctx, symbol, "fundOwnership")
}

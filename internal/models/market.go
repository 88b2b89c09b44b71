package models

import "time"

// Bar is a single historical price bar (OHLCV).
type Bar struct {
	Date   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume int64
}

// Distribution is a dividend payment on a given ex-date.
type Distribution struct {
	Date   time.Time
	Amount float64
}

// Split is a stock split event. Ratio is the post/pre share multiplier
// (2.0 for a 2:1 split, 0.25 for a 1:4 reverse split).
type Split struct {
	Date  time.Time
	Ratio float64
}

// StatementKind selects which financial statement to fetch.
type StatementKind string

const (
	StatementIncome   StatementKind = "income"
	StatementCashflow StatementKind = "cashflow"
	StatementBalance  StatementKind = "balance"
)

// Statement is a financial statement: line items as rows, reporting
// periods as columns (most recent first), mirroring the upstream layout.
type Statement struct {
	Periods []time.Time
	Rows    []StatementRow
}

// StatementRow is a single line item across all reporting periods.
// Missing values are nil.
type StatementRow struct {
	Label  string
	Values []*float64
}

// Empty reports whether the statement has no line items.
func (s *Statement) Empty() bool {
	return s == nil || len(s.Rows) == 0 || len(s.Periods) == 0
}

// EarningsEvent is a past or upcoming earnings date with EPS figures
// where reported.
type EarningsEvent struct {
	Date        time.Time
	EPSEstimate *float64
	ReportedEPS *float64
	SurprisePct *float64
}

// RecommendationTrend is an analyst rating distribution for one period
// (e.g. "0m", "-1m").
type RecommendationTrend struct {
	Period     string
	StrongBuy  int
	Buy        int
	Hold       int
	Sell       int
	StrongSell int
}

// PriceTargets holds analyst price target statistics.
type PriceTargets struct {
	Current  *float64
	High     *float64
	Low      *float64
	Mean     *float64
	Median   *float64
	Analysts *int
}

// Empty reports whether no target figures are present.
func (p *PriceTargets) Empty() bool {
	return p == nil || (p.High == nil && p.Low == nil && p.Mean == nil && p.Median == nil)
}

// MajorHoldersBreakdown summarizes insider/institution ownership percentages.
type MajorHoldersBreakdown struct {
	InsidersPctHeld          *float64
	InstitutionsPctHeld      *float64
	InstitutionsFloatPctHeld *float64
	InstitutionsCount        *int
}

// Empty reports whether no breakdown figures are present.
func (m *MajorHoldersBreakdown) Empty() bool {
	return m == nil || (m.InsidersPctHeld == nil && m.InstitutionsPctHeld == nil &&
		m.InstitutionsFloatPctHeld == nil && m.InstitutionsCount == nil)
}

// Holder is one row of an institutional or mutual-fund ownership table.
type Holder struct {
	Organization string
	ReportDate   time.Time
	PctHeld      float64
	Shares       int64
	Value        int64
}

// OptionContract is a single call or put contract in an option chain.
type OptionContract struct {
	ContractSymbol    string
	Strike            float64
	LastPrice         float64
	Bid               float64
	Ask               float64
	Change            float64
	PercentChange     float64
	Volume            int64
	OpenInterest      int64
	ImpliedVolatility float64
	InTheMoney        bool
	Currency          string
	LastTradeDate     time.Time
}

// OptionChain holds the calls and puts for one expiration date.
type OptionChain struct {
	Expiration time.Time
	Calls      []OptionContract
	Puts       []OptionContract
}

// NewsItem is one news article reference for a symbol.
type NewsItem struct {
	UUID        string    `json:"uuid"`
	Title       string    `json:"title"`
	Publisher   string    `json:"publisher"`
	Link        string    `json:"link"`
	PublishedAt time.Time `json:"published_at"`
}

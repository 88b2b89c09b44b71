package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"time"

	"yfengine/internal/interfaces"
	"yfengine/internal/models"
)

type chartResponse struct {
	Chart struct {
		Result []chartResult  `json:"result"`
		Error  *chartAPIError `json:"error"`
	} `json:"chart"`
}

type chartAPIError struct {
	Code        string `json:"code"`
	Description string `json:"description"`
}

type chartResult struct {
	Meta struct {
		Currency string `json:"currency"`
		Symbol   string `json:"symbol"`
	} `json:"meta"`
	Timestamp  []int64 `json:"timestamp"`
	Indicators struct {
		Quote []struct {
			Open   []*float64 `json:"open"`
			High   []*float64 `json:"high"`
			Low    []*float64 `json:"low"`
			Close  []*float64 `json:"close"`
			Volume []*int64   `json:"volume"`
		} `json:"quote"`
	} `json:"indicators"`
	Events struct {
		Dividends map[string]struct {
			Amount float64 `json:"amount"`
			Date   int64   `json:"date"`
		} `json:"dividends"`
		Splits map[string]struct {
			Date        int64   `json:"date"`
			Numerator   float64 `json:"numerator"`
			Denominator float64 `json:"denominator"`
			SplitRatio  string  `json:"splitRatio"`
		} `json:"splits"`
	} `json:"events"`
}

// chart fetches one /v8/finance/chart result for a symbol.
func (c *Client) chart(ctx context.Context, symbol string, params url.Values) (*chartResult, error) {
	var resp chartResponse
	path := fmt.Sprintf("/v8/finance/chart/%s", url.PathEscape(symbol))
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	if resp.Chart.Error != nil {
		return nil, fmt.Errorf("chart query failed for %s: %s (%s)",
			symbol, resp.Chart.Error.Description, resp.Chart.Error.Code)
	}
	if len(resp.Chart.Result) == 0 {
		return nil, fmt.Errorf("chart query returned no result for %s", symbol)
	}

	return &resp.Chart.Result[0], nil
}

// History returns OHLCV bars for the requested window, oldest first.
// Entries without a close price (halted or partial bars) are skipped.
func (c *Client) History(ctx context.Context, symbol string, params interfaces.HistoryParams) ([]models.Bar, error) {
	q := url.Values{}
	if params.Period != "" {
		q.Set("range", params.Period)
	} else {
		q.Set("period1", strconv.FormatInt(params.Start.Unix(), 10))
		q.Set("period2", strconv.FormatInt(params.End.Unix(), 10))
	}
	interval := params.Interval
	if interval == "" {
		interval = "1d"
	}
	q.Set("interval", interval)
	q.Set("includePrePost", "false")

	result, err := c.chart(ctx, symbol, q)
	if err != nil {
		return nil, err
	}

	if len(result.Indicators.Quote) == 0 {
		return nil, nil
	}
	quote := result.Indicators.Quote[0]

	bars := make([]models.Bar, 0, len(result.Timestamp))
	for i, ts := range result.Timestamp {
		if i >= len(quote.Close) || quote.Close[i] == nil {
			continue
		}
		bar := models.Bar{
			Date:  time.Unix(ts, 0).UTC(),
			Close: *quote.Close[i],
		}
		if i < len(quote.Open) && quote.Open[i] != nil {
			bar.Open = *quote.Open[i]
		}
		if i < len(quote.High) && quote.High[i] != nil {
			bar.High = *quote.High[i]
		}
		if i < len(quote.Low) && quote.Low[i] != nil {
			bar.Low = *quote.Low[i]
		}
		if i < len(quote.Volume) && quote.Volume[i] != nil {
			bar.Volume = *quote.Volume[i]
		}
		bars = append(bars, bar)
	}

	return bars, nil
}

// Dividends returns the full dividend history, oldest first.
func (c *Client) Dividends(ctx context.Context, symbol string) ([]models.Distribution, error) {
	q := url.Values{}
	q.Set("range", "max")
	q.Set("interval", "1d")
	q.Set("events", "div")

	result, err := c.chart(ctx, symbol, q)
	if err != nil {
		return nil, err
	}

	dividends := make([]models.Distribution, 0, len(result.Events.Dividends))
	for _, d := range result.Events.Dividends {
		dividends = append(dividends, models.Distribution{
			Date:   time.Unix(d.Date, 0).UTC(),
			Amount: d.Amount,
		})
	}

	sort.Slice(dividends, func(i, j int) bool {
		return dividends[i].Date.Before(dividends[j].Date)
	})

	return dividends, nil
}

// Splits returns the full stock split history, oldest first.
func (c *Client) Splits(ctx context.Context, symbol string) ([]models.Split, error) {
	q := url.Values{}
	q.Set("range", "max")
	q.Set("interval", "1d")
	q.Set("events", "split")

	result, err := c.chart(ctx, symbol, q)
	if err != nil {
		return nil, err
	}

	splits := make([]models.Split, 0, len(result.Events.Splits))
	for _, s := range result.Events.Splits {
		if s.Denominator == 0 {
			continue
		}
		splits = append(splits, models.Split{
			Date:  time.Unix(s.Date, 0).UTC(),
			Ratio: s.Numerator / s.Denominator,
		})
	}

	sort.Slice(splits, func(i, j int) bool {
		return splits[i].Date.Before(splits[j].Date)
	})

	return splits, nil
}

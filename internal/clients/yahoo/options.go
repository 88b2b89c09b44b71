package yahoo

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"yfengine/internal/models"
)

type optionsResponse struct {
	OptionChain struct {
		Result []struct {
			ExpirationDates []int64 `json:"expirationDates"`
			Options         []struct {
				ExpirationDate int64            `json:"expirationDate"`
				Calls          []optionContract `json:"calls"`
				Puts           []optionContract `json:"puts"`
			} `json:"options"`
		} `json:"result"`
		Error *struct {
			Code        string `json:"code"`
			Description string `json:"description"`
		} `json:"error"`
	} `json:"optionChain"`
}

type optionContract struct {
	ContractSymbol    string  `json:"contractSymbol"`
	Strike            float64 `json:"strike"`
	Currency          string  `json:"currency"`
	LastPrice         float64 `json:"lastPrice"`
	Change            float64 `json:"change"`
	PercentChange     float64 `json:"percentChange"`
	Volume            int64   `json:"volume"`
	OpenInterest      int64   `json:"openInterest"`
	Bid               float64 `json:"bid"`
	Ask               float64 `json:"ask"`
	ImpliedVolatility float64 `json:"impliedVolatility"`
	InTheMoney        bool    `json:"inTheMoney"`
	LastTradeDate     int64   `json:"lastTradeDate"`
}

func (o optionContract) toModel() models.OptionContract {
	return models.OptionContract{
		ContractSymbol:    o.ContractSymbol,
		Strike:            o.Strike,
		LastPrice:         o.LastPrice,
		Bid:               o.Bid,
		Ask:               o.Ask,
		Change:            o.Change,
		PercentChange:     o.PercentChange,
		Volume:            o.Volume,
		OpenInterest:      o.OpenInterest,
		ImpliedVolatility: o.ImpliedVolatility,
		InTheMoney:        o.InTheMoney,
		Currency:          o.Currency,
		LastTradeDate:     time.Unix(o.LastTradeDate, 0).UTC(),
	}
}

func (c *Client) options(ctx context.Context, symbol string, params url.Values) (*optionsResponse, error) {
	var resp optionsResponse
	path := fmt.Sprintf("/v7/finance/options/%s", url.PathEscape(symbol))
	if err := c.get(ctx, path, params, &resp); err != nil {
		return nil, err
	}

	if resp.OptionChain.Error != nil {
		return nil, fmt.Errorf("options query failed for %s: %s (%s)",
			symbol, resp.OptionChain.Error.Description, resp.OptionChain.Error.Code)
	}
	if len(resp.OptionChain.Result) == 0 {
		return nil, fmt.Errorf("options query returned no result for %s", symbol)
	}

	return &resp, nil
}

// OptionExpirations returns the available option expiration dates as UTC
// days, soonest first.
func (c *Client) OptionExpirations(ctx context.Context, symbol string) ([]time.Time, error) {
	resp, err := c.options(ctx, symbol, nil)
	if err != nil {
		return nil, err
	}

	epochs := resp.OptionChain.Result[0].ExpirationDates
	dates := make([]time.Time, 0, len(epochs))
	for _, e := range epochs {
		dates = append(dates, time.Unix(e, 0).UTC())
	}

	return dates, nil
}

// OptionChain returns the calls and puts for one expiration date.
func (c *Client) OptionChain(ctx context.Context, symbol string, expiration time.Time) (*models.OptionChain, error) {
	q := url.Values{}
	q.Set("date", strconv.FormatInt(expiration.Unix(), 10))

	resp, err := c.options(ctx, symbol, q)
	if err != nil {
		return nil, err
	}

	chain := &models.OptionChain{Expiration: expiration}
	for _, o := range resp.OptionChain.Result[0].Options {
		for _, call := range o.Calls {
			chain.Calls = append(chain.Calls, call.toModel())
		}
		for _, put := range o.Puts {
			chain.Puts = append(chain.Puts, put.toModel())
		}
	}

	return chain, nil
}

package server

import (
	"yfengine/internal/models"
)

func symbolDef() models.ParamDefinition {
	return models.ParamDefinition{
		Name:        "symbol",
		Type:        "string",
		Description: "Stock symbol in Yahoo Finance format (e.g., 'AAPL')",
		Required:    true,
	}
}

func freqDef() models.ParamDefinition {
	return models.ParamDefinition{
		Name:        "freq",
		Type:        "string",
		Description: "Statement frequency",
		Default:     "yearly",
		Enum:        []string{"yearly", "quarterly"},
	}
}

// buildToolCatalog returns the REST-facing description of every
// registered MCP tool. It must stay in sync with the tool registration
// in internal/app.
func buildToolCatalog() []models.ToolDefinition {
	return []models.ToolDefinition{
		{
			Name:        "get_current_stock_price",
			Description: "Get the current stock price based on stock symbol.",
			Params:      []models.ParamDefinition{symbolDef()},
		},
		{
			Name:        "get_stock_price_by_date",
			Description: "Get the stock closing price for a given stock symbol on a specific date.",
			Params: []models.ParamDefinition{
				symbolDef(),
				{Name: "date", Type: "string", Description: "The date in YYYY-MM-DD format", Required: true},
			},
		},
		{
			Name:        "get_stock_price_date_range",
			Description: "Get the closing stock prices for a given date range for a given stock symbol.",
			Params: []models.ParamDefinition{
				symbolDef(),
				{Name: "start_date", Type: "string", Description: "The start date in YYYY-MM-DD format", Required: true},
				{Name: "end_date", Type: "string", Description: "The end date in YYYY-MM-DD format", Required: true},
			},
		},
		{
			Name:        "get_historical_stock_prices",
			Description: "Get historical stock prices (OHLCV) for a given stock symbol.",
			Params: []models.ParamDefinition{
				symbolDef(),
				{
					Name: "period", Type: "string",
					Description: "The period for historical data",
					Default:     "1mo",
					Enum:        []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"},
				},
				{
					Name: "interval", Type: "string",
					Description: "The interval between data points",
					Default:     "1d",
					Enum:        []string{"1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h", "1d", "5d", "1wk", "1mo", "3mo"},
				},
			},
		},
		{
			Name:        "get_dividends",
			Description: "Get dividends history for a given stock symbol.",
			Params:      []models.ParamDefinition{symbolDef()},
		},
		{
			Name:        "get_income_statement",
			Description: "Get income statement for a given stock symbol.",
			Params:      []models.ParamDefinition{symbolDef(), freqDef()},
		},
		{
			Name:        "get_cashflow",
			Description: "Get cashflow statement for a given stock symbol.",
			Params:      []models.ParamDefinition{symbolDef(), freqDef()},
		},
		{
			Name:        "get_balance_sheet",
			Description: "Get balance sheet for a given stock symbol.",
			Params:      []models.ParamDefinition{symbolDef(), freqDef()},
		},
		{
			Name:        "get_earning_dates",
			Description: "Get earning dates (past and upcoming) for a given stock symbol.",
			Params: []models.ParamDefinition{
				symbolDef(),
				{Name: "limit", Type: "number", Description: "Max amount of earnings dates to return", Default: "12"},
			},
		},
		{
			Name:        "get_company_info",
			Description: "Get comprehensive company information for a given stock symbol.",
			Params:      []models.ParamDefinition{symbolDef()},
		},
		{
			Name:        "get_splits",
			Description: "Get stock split history for a given stock symbol.",
			Params:      []models.ParamDefinition{symbolDef()},
		},
		{
			Name:        "get_recommendations",
			Description: "Get analyst recommendations history for a given stock symbol.",
			Params:      []models.ParamDefinition{symbolDef()},
		},
		{
			Name:        "get_analyst_price_targets",
			Description: "Get analyst price targets for a given stock symbol.",
			Params:      []models.ParamDefinition{symbolDef()},
		},
		{
			Name:        "get_major_holders",
			Description: "Get major holders information for a given stock symbol.",
			Params:      []models.ParamDefinition{symbolDef()},
		},
		{
			Name:        "get_institutional_holders",
			Description: "Get institutional holders information for a given stock symbol.",
			Params:      []models.ParamDefinition{symbolDef()},
		},
		{
			Name:        "get_mutualfund_holders",
			Description: "Get mutual fund holders information for a given stock symbol.",
			Params:      []models.ParamDefinition{symbolDef()},
		},
		{
			Name:        "get_option_expiration_dates",
			Description: "Get available option expiration dates for a given stock symbol.",
			Params:      []models.ParamDefinition{symbolDef()},
		},
		{
			Name:        "get_option_chain",
			Description: "Get the full option chain (calls and puts) for a specific expiration date.",
			Params: []models.ParamDefinition{
				symbolDef(),
				{Name: "date", Type: "string", Description: "The expiration date in YYYY-MM-DD format", Required: true},
			},
		},
		{
			Name:        "get_sustainability",
			Description: "Get sustainability (ESG) scores for a given stock symbol.",
			Params:      []models.ParamDefinition{symbolDef()},
		},
	}
}

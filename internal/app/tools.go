package app

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// Enumerated values accepted by the history and statement tools. Values
// outside these sets are rejected by the schema before a handler runs.
var (
	validPeriods = []string{"1d", "5d", "1mo", "3mo", "6mo", "1y", "2y", "5y", "10y", "ytd", "max"}

	validIntervals = []string{"1m", "2m", "5m", "15m", "30m", "60m", "90m", "1h", "1d", "5d", "1wk", "1mo", "3mo"}

	validFrequencies = []string{"yearly", "quarterly"}
)

func symbolParam() mcp.ToolOption {
	return mcp.WithString("symbol",
		mcp.Required(),
		mcp.Description("Stock symbol in Yahoo Finance format (e.g., 'AAPL')"),
	)
}

// createGetCurrentStockPriceTool returns the get_current_stock_price tool definition
func createGetCurrentStockPriceTool() mcp.Tool {
	return mcp.NewTool("get_current_stock_price",
		mcp.WithDescription("Get the current stock price based on stock symbol."),
		symbolParam(),
	)
}

// createGetStockPriceByDateTool returns the get_stock_price_by_date tool definition
func createGetStockPriceByDateTool() mcp.Tool {
	return mcp.NewTool("get_stock_price_by_date",
		mcp.WithDescription("Get the stock closing price for a given stock symbol on a specific date."),
		symbolParam(),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("The date in YYYY-MM-DD format"),
		),
	)
}

// createGetStockPriceDateRangeTool returns the get_stock_price_date_range tool definition
func createGetStockPriceDateRangeTool() mcp.Tool {
	return mcp.NewTool("get_stock_price_date_range",
		mcp.WithDescription("Get the closing stock prices for a given date range for a given stock symbol."),
		symbolParam(),
		mcp.WithString("start_date",
			mcp.Required(),
			mcp.Description("The start date in YYYY-MM-DD format"),
		),
		mcp.WithString("end_date",
			mcp.Required(),
			mcp.Description("The end date in YYYY-MM-DD format"),
		),
	)
}

// createGetHistoricalStockPricesTool returns the get_historical_stock_prices tool definition
func createGetHistoricalStockPricesTool() mcp.Tool {
	return mcp.NewTool("get_historical_stock_prices",
		mcp.WithDescription("Get historical stock prices (OHLCV) for a given stock symbol."),
		symbolParam(),
		mcp.WithString("period",
			mcp.Description("The period for historical data. Defaults to '1mo'. Intraday intervals are only available for short periods."),
			mcp.Enum(validPeriods...),
			mcp.DefaultString("1mo"),
		),
		mcp.WithString("interval",
			mcp.Description("The interval between data points. Defaults to '1d'. 1m data is typically available for the last 7 days."),
			mcp.Enum(validIntervals...),
			mcp.DefaultString("1d"),
		),
	)
}

// createGetDividendsTool returns the get_dividends tool definition
func createGetDividendsTool() mcp.Tool {
	return mcp.NewTool("get_dividends",
		mcp.WithDescription("Get dividends history for a given stock symbol."),
		symbolParam(),
	)
}

func freqParam() mcp.ToolOption {
	return mcp.WithString("freq",
		mcp.Description("Frequency ('yearly', 'quarterly'). Defaults to 'yearly'."),
		mcp.Enum(validFrequencies...),
		mcp.DefaultString("yearly"),
	)
}

// createGetIncomeStatementTool returns the get_income_statement tool definition
func createGetIncomeStatementTool() mcp.Tool {
	return mcp.NewTool("get_income_statement",
		mcp.WithDescription("Get income statement for a given stock symbol."),
		symbolParam(),
		freqParam(),
	)
}

// createGetCashflowTool returns the get_cashflow tool definition
func createGetCashflowTool() mcp.Tool {
	return mcp.NewTool("get_cashflow",
		mcp.WithDescription("Get cashflow statement for a given stock symbol."),
		symbolParam(),
		freqParam(),
	)
}

// createGetBalanceSheetTool returns the get_balance_sheet tool definition
func createGetBalanceSheetTool() mcp.Tool {
	return mcp.NewTool("get_balance_sheet",
		mcp.WithDescription("Get balance sheet for a given stock symbol."),
		symbolParam(),
		freqParam(),
	)
}

// createGetEarningDatesTool returns the get_earning_dates tool definition
func createGetEarningDatesTool() mcp.Tool {
	return mcp.NewTool("get_earning_dates",
		mcp.WithDescription("Get earning dates (past and upcoming) for a given stock symbol."),
		symbolParam(),
		mcp.WithNumber("limit",
			mcp.Description("Max amount of upcoming and recent earnings dates to return. Default 12."),
			mcp.DefaultNumber(12),
		),
	)
}

// createGetNewsTool returns the get_news tool definition
func createGetNewsTool() mcp.Tool {
	return mcp.NewTool("get_news",
		mcp.WithDescription("Get recent news for a given stock symbol."),
		symbolParam(),
	)
}

// createGetCompanyInfoTool returns the get_company_info tool definition
func createGetCompanyInfoTool() mcp.Tool {
	return mcp.NewTool("get_company_info",
		mcp.WithDescription("Get comprehensive company information (like sector, employees, summary) for a given stock symbol."),
		symbolParam(),
	)
}

// createGetSplitsTool returns the get_splits tool definition
func createGetSplitsTool() mcp.Tool {
	return mcp.NewTool("get_splits",
		mcp.WithDescription("Get stock split history for a given stock symbol."),
		symbolParam(),
	)
}

// createGetRecommendationsTool returns the get_recommendations tool definition
func createGetRecommendationsTool() mcp.Tool {
	return mcp.NewTool("get_recommendations",
		mcp.WithDescription("Get analyst recommendations history for a given stock symbol."),
		symbolParam(),
	)
}

// createGetAnalystPriceTargetsTool returns the get_analyst_price_targets tool definition
func createGetAnalystPriceTargetsTool() mcp.Tool {
	return mcp.NewTool("get_analyst_price_targets",
		mcp.WithDescription("Get analyst price targets for a given stock symbol."),
		symbolParam(),
	)
}

// createGetMajorHoldersTool returns the get_major_holders tool definition
func createGetMajorHoldersTool() mcp.Tool {
	return mcp.NewTool("get_major_holders",
		mcp.WithDescription("Get major holders information for a given stock symbol."),
		symbolParam(),
	)
}

// createGetInstitutionalHoldersTool returns the get_institutional_holders tool definition
func createGetInstitutionalHoldersTool() mcp.Tool {
	return mcp.NewTool("get_institutional_holders",
		mcp.WithDescription("Get institutional holders information for a given stock symbol."),
		symbolParam(),
	)
}

// createGetMutualfundHoldersTool returns the get_mutualfund_holders tool definition
func createGetMutualfundHoldersTool() mcp.Tool {
	return mcp.NewTool("get_mutualfund_holders",
		mcp.WithDescription("Get mutual fund holders information for a given stock symbol."),
		symbolParam(),
	)
}

// createGetOptionExpirationDatesTool returns the get_option_expiration_dates tool definition
func createGetOptionExpirationDatesTool() mcp.Tool {
	return mcp.NewTool("get_option_expiration_dates",
		mcp.WithDescription("Get available option expiration dates for a given stock symbol."),
		symbolParam(),
	)
}

// createGetOptionChainTool returns the get_option_chain tool definition
func createGetOptionChainTool() mcp.Tool {
	return mcp.NewTool("get_option_chain",
		mcp.WithDescription("Get the full option chain (calls and puts) for a specific expiration date."),
		symbolParam(),
		mcp.WithString("date",
			mcp.Required(),
			mcp.Description("The expiration date in YYYY-MM-DD format. Get available dates from get_option_expiration_dates."),
		),
	)
}

// createGetSustainabilityTool returns the get_sustainability tool definition
func createGetSustainabilityTool() mcp.Tool {
	return mcp.NewTool("get_sustainability",
		mcp.WithDescription("Get sustainability (ESG) scores for a given stock symbol."),
		symbolParam(),
	)
}

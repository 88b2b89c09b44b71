package app

import (
	"context"
	"encoding/json"
	"fmt"
	"runtime/debug"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"yfengine/internal/common"
	"yfengine/internal/interfaces"
)

// JSON-RPC application error codes returned inside tool results.
const (
	codeServerError         = -32000
	codeClientUninitialized = -32001
)

// textResult creates a successful tool result with text content
func textResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
	}
}

// errorResult creates an error tool result with text content
func errorResult(text string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(text),
		},
		IsError: true,
	}
}

func jsonErrorResult(payload map[string]interface{}) *mcp.CallToolResult {
	data, err := json.Marshal(payload)
	if err != nil {
		return errorResult(fmt.Sprintf("%v", payload))
	}
	return errorResult(string(data))
}

// guarded wraps a tool handler with the two invocation-layer guards:
// a fixed -32001 error object when the shared client never initialized,
// and a -32000 error object for any panic that escapes the facade, logged
// with the command, parameters, and stack trace.
func guarded(command string, svc interfaces.FinanceService, logger *common.Logger, handler server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (result *mcp.CallToolResult, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error().
					Str("command", command).
					Interface("params", request.GetArguments()).
					Str("stack", string(debug.Stack())).
					Msgf("Tool handler panicked: %v", r)
				result = jsonErrorResult(map[string]interface{}{
					"error": fmt.Sprintf("Server error during '%s': %v", command, r),
					"code":  codeServerError,
				})
				err = nil
			}
		}()

		if svc == nil {
			return jsonErrorResult(map[string]interface{}{
				"error": "YahooFinance client not initialized",
				"code":  codeClientUninitialized,
			}), nil
		}

		return handler(ctx, request)
	}
}

// requireSymbol extracts the mandatory symbol parameter.
func requireSymbol(request mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	symbol, err := request.RequireString("symbol")
	if err != nil || symbol == "" {
		return "", errorResult("Error: symbol parameter is required")
	}
	return symbol, nil
}

// handleGetCurrentStockPrice implements the get_current_stock_price tool
func handleGetCurrentStockPrice(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return textResult(svc.GetCurrentStockPrice(ctx, symbol)), nil
	}
}

// handleGetStockPriceByDate implements the get_stock_price_by_date tool
func handleGetStockPriceByDate(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		date, err := request.RequireString("date")
		if err != nil || date == "" {
			return errorResult("Error: date parameter is required"), nil
		}
		return textResult(svc.GetStockPriceByDate(ctx, symbol, date)), nil
	}
}

// handleGetStockPriceDateRange implements the get_stock_price_date_range tool
func handleGetStockPriceDateRange(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		startDate, err := request.RequireString("start_date")
		if err != nil || startDate == "" {
			return errorResult("Error: start_date parameter is required"), nil
		}
		endDate, err := request.RequireString("end_date")
		if err != nil || endDate == "" {
			return errorResult("Error: end_date parameter is required"), nil
		}
		return textResult(svc.GetStockPriceDateRange(ctx, symbol, startDate, endDate)), nil
	}
}

// handleGetHistoricalStockPrices implements the get_historical_stock_prices tool
func handleGetHistoricalStockPrices(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		period := request.GetString("period", "1mo")
		interval := request.GetString("interval", "1d")
		return textResult(svc.GetHistoricalStockPrices(ctx, symbol, period, interval)), nil
	}
}

// handleGetDividends implements the get_dividends tool
func handleGetDividends(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return textResult(svc.GetDividends(ctx, symbol)), nil
	}
}

// normalizeFreq accepts only the documented frequencies; anything else
// falls back to yearly.
func normalizeFreq(freq string) string {
	if freq == "quarterly" {
		return "quarterly"
	}
	return "yearly"
}

// handleGetIncomeStatement implements the get_income_statement tool
func handleGetIncomeStatement(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		freq := normalizeFreq(request.GetString("freq", "yearly"))
		return textResult(svc.GetIncomeStatement(ctx, symbol, freq)), nil
	}
}

// handleGetCashflow implements the get_cashflow tool
func handleGetCashflow(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		freq := normalizeFreq(request.GetString("freq", "yearly"))
		return textResult(svc.GetCashflow(ctx, symbol, freq)), nil
	}
}

// handleGetBalanceSheet implements the get_balance_sheet tool
func handleGetBalanceSheet(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		freq := normalizeFreq(request.GetString("freq", "yearly"))
		return textResult(svc.GetBalanceSheet(ctx, symbol, freq)), nil
	}
}

// handleGetEarningDates implements the get_earning_dates tool
func handleGetEarningDates(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		limit := request.GetInt("limit", 12)
		return textResult(svc.GetEarningDates(ctx, symbol, limit)), nil
	}
}

// handleGetNews implements the get_news tool
func handleGetNews(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return textResult(svc.GetNews(ctx, symbol)), nil
	}
}

// handleGetCompanyInfo implements the get_company_info tool
func handleGetCompanyInfo(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return textResult(svc.GetCompanyInfo(ctx, symbol)), nil
	}
}

// handleGetSplits implements the get_splits tool
func handleGetSplits(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return textResult(svc.GetSplits(ctx, symbol)), nil
	}
}

// handleGetRecommendations implements the get_recommendations tool
func handleGetRecommendations(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return textResult(svc.GetRecommendations(ctx, symbol)), nil
	}
}

// handleGetAnalystPriceTargets implements the get_analyst_price_targets tool
func handleGetAnalystPriceTargets(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return textResult(svc.GetAnalystPriceTargets(ctx, symbol)), nil
	}
}

// handleGetMajorHolders implements the get_major_holders tool
func handleGetMajorHolders(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return textResult(svc.GetMajorHolders(ctx, symbol)), nil
	}
}

// handleGetInstitutionalHolders implements the get_institutional_holders tool
func handleGetInstitutionalHolders(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return textResult(svc.GetInstitutionalHolders(ctx, symbol)), nil
	}
}

// handleGetMutualfundHolders implements the get_mutualfund_holders tool
func handleGetMutualfundHolders(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return textResult(svc.GetMutualfundHolders(ctx, symbol)), nil
	}
}

// handleGetOptionExpirationDates implements the get_option_expiration_dates tool
func handleGetOptionExpirationDates(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return textResult(svc.GetOptionExpirationDates(ctx, symbol)), nil
	}
}

// handleGetOptionChain implements the get_option_chain tool
func handleGetOptionChain(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		date, err := request.RequireString("date")
		if err != nil || date == "" {
			return errorResult("Error: date parameter is required"), nil
		}
		return textResult(svc.GetOptionChain(ctx, symbol, date)), nil
	}
}

// handleGetSustainability implements the get_sustainability tool
func handleGetSustainability(svc interfaces.FinanceService) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		symbol, errResult := requireSymbol(request)
		if errResult != nil {
			return errResult, nil
		}
		return textResult(svc.GetSustainability(ctx, symbol)), nil
	}
}

package app

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yfengine/internal/common"
	"yfengine/internal/interfaces"
)

func newRequest(args map[string]interface{}) mcp.CallToolRequest {
	request := mcp.CallToolRequest{}
	request.Params.Arguments = args
	return request
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func callGuarded(t *testing.T, svc interfaces.FinanceService, handler server.ToolHandlerFunc, args map[string]interface{}) *mcp.CallToolResult {
	t.Helper()
	wrapped := guarded("test_command", svc, common.NewSilentLogger(), handler)
	result, err := wrapped(context.Background(), newRequest(args))
	require.NoError(t, err)
	return result
}

func TestHandlerForwardsToService(t *testing.T) {
	svc := &mockFinanceService{}
	result := callGuarded(t, svc, handleGetCurrentStockPrice(svc), map[string]interface{}{
		"symbol": "AAPL",
	})

	assert.False(t, result.IsError)
	assert.Equal(t, "get_current_stock_price:AAPL", resultText(t, result))
	assert.Equal(t, "AAPL", svc.lastSymbol)
}

func TestHandlerRequiresSymbol(t *testing.T) {
	svc := &mockFinanceService{}
	result := callGuarded(t, svc, handleGetDividends(svc), map[string]interface{}{})

	assert.True(t, result.IsError)
	assert.Equal(t, "Error: symbol parameter is required", resultText(t, result))
}

func TestHandlerHistoricalDefaults(t *testing.T) {
	svc := &mockFinanceService{}
	result := callGuarded(t, svc, handleGetHistoricalStockPrices(svc), map[string]interface{}{
		"symbol": "AAPL",
	})

	assert.Equal(t, "get_historical_stock_prices:AAPL:1mo:1d", resultText(t, result))
}

func TestHandlerFreqFallback(t *testing.T) {
	tests := []struct {
		freq interface{}
		want string
	}{
		{"quarterly", "quarterly"},
		{"yearly", "yearly"},
		{"trailing", "yearly"},
		{"monthly", "yearly"},
		{nil, "yearly"},
	}

	for _, tt := range tests {
		svc := &mockFinanceService{}
		args := map[string]interface{}{"symbol": "AAPL"}
		if tt.freq != nil {
			args["freq"] = tt.freq
		}

		callGuarded(t, svc, handleGetIncomeStatement(svc), args)
		assert.Equal(t, tt.want, svc.lastFreq, "freq=%v", tt.freq)
	}
}

func TestHandlerEarningDatesLimit(t *testing.T) {
	svc := &mockFinanceService{}

	callGuarded(t, svc, handleGetEarningDates(svc), map[string]interface{}{
		"symbol": "AAPL",
		"limit":  float64(5),
	})
	assert.Equal(t, 5, svc.lastLimit)

	callGuarded(t, svc, handleGetEarningDates(svc), map[string]interface{}{
		"symbol": "AAPL",
	})
	assert.Equal(t, 12, svc.lastLimit, "limit defaults to 12")
}

func TestHandlerOptionChainRequiresDate(t *testing.T) {
	svc := &mockFinanceService{}
	result := callGuarded(t, svc, handleGetOptionChain(svc), map[string]interface{}{
		"symbol": "AAPL",
	})

	assert.True(t, result.IsError)
	assert.Equal(t, "Error: date parameter is required", resultText(t, result))
}

func TestGuardNilClient(t *testing.T) {
	// Every tool returns the fixed -32001 object when the client never
	// initialized, without invoking the handler.
	result := callGuarded(t, nil, handleGetCurrentStockPrice(nil), map[string]interface{}{
		"symbol": "AAPL",
	})

	assert.True(t, result.IsError)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Equal(t, "YahooFinance client not initialized", payload["error"])
	assert.Equal(t, float64(-32001), payload["code"])
}

func TestGuardRecoversPanics(t *testing.T) {
	svc := &mockFinanceService{panicWith: "boom"}
	result := callGuarded(t, svc, handleGetSplits(svc), map[string]interface{}{
		"symbol": "AAPL",
	})

	assert.True(t, result.IsError)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, result)), &payload))
	assert.Equal(t, float64(-32000), payload["code"])
	assert.Contains(t, payload["error"], "Server error during 'test_command'")
	assert.Contains(t, payload["error"], "boom")
}

func TestToolDefinitions(t *testing.T) {
	tests := []struct {
		tool     mcp.Tool
		name     string
		required []string
	}{
		{createGetCurrentStockPriceTool(), "get_current_stock_price", []string{"symbol"}},
		{createGetStockPriceByDateTool(), "get_stock_price_by_date", []string{"symbol", "date"}},
		{createGetStockPriceDateRangeTool(), "get_stock_price_date_range", []string{"symbol", "start_date", "end_date"}},
		{createGetHistoricalStockPricesTool(), "get_historical_stock_prices", []string{"symbol"}},
		{createGetDividendsTool(), "get_dividends", []string{"symbol"}},
		{createGetIncomeStatementTool(), "get_income_statement", []string{"symbol"}},
		{createGetCashflowTool(), "get_cashflow", []string{"symbol"}},
		{createGetBalanceSheetTool(), "get_balance_sheet", []string{"symbol"}},
		{createGetEarningDatesTool(), "get_earning_dates", []string{"symbol"}},
		{createGetNewsTool(), "get_news", []string{"symbol"}},
		{createGetCompanyInfoTool(), "get_company_info", []string{"symbol"}},
		{createGetSplitsTool(), "get_splits", []string{"symbol"}},
		{createGetRecommendationsTool(), "get_recommendations", []string{"symbol"}},
		{createGetAnalystPriceTargetsTool(), "get_analyst_price_targets", []string{"symbol"}},
		{createGetMajorHoldersTool(), "get_major_holders", []string{"symbol"}},
		{createGetInstitutionalHoldersTool(), "get_institutional_holders", []string{"symbol"}},
		{createGetMutualfundHoldersTool(), "get_mutualfund_holders", []string{"symbol"}},
		{createGetOptionExpirationDatesTool(), "get_option_expiration_dates", []string{"symbol"}},
		{createGetOptionChainTool(), "get_option_chain", []string{"symbol", "date"}},
		{createGetSustainabilityTool(), "get_sustainability", []string{"symbol"}},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.name, tt.tool.Name)
		assert.NotEmpty(t, tt.tool.Description)
		for _, param := range tt.required {
			assert.Contains(t, tt.tool.InputSchema.Required, param, "tool %s requires %s", tt.name)
		}
	}
}

func TestHistoricalToolEnums(t *testing.T) {
	tool := createGetHistoricalStockPricesTool()

	period, ok := tool.InputSchema.Properties["period"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, period["enum"], 11)
	assert.Equal(t, "1mo", period["default"])

	interval, ok := tool.InputSchema.Properties["interval"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, interval["enum"], 13)
	assert.Equal(t, "1d", interval["default"])
}

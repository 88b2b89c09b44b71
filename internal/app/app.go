// Package app wires the configuration, Yahoo client, finance service,
// and MCP server into one shared core used by both cmd/yfengine-server
// and cmd/yfengine-mcp.
package app

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"yfengine/internal/clients/yahoo"
	"yfengine/internal/common"
	"yfengine/internal/interfaces"
	"yfengine/internal/services/finance"
)

const serverName = "yahoo_finance_engine"

// App holds all initialized clients, services, and the MCP server.
type App struct {
	Config      *common.Config
	Logger      *common.Logger
	YahooClient interfaces.YahooClient
	Finance     interfaces.FinanceService
	MCPServer   *server.MCPServer
	StartupTime time.Time
}

// getBinaryDir returns the directory containing the executable.
func getBinaryDir() string {
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

// NewApp initializes the client, service, and MCP server.
// configPath may be empty, in which case the default resolution logic is used.
func NewApp(configPath string) (*App, error) {
	startupStart := time.Now()

	// Load version from .version file (fallback if ldflags not set)
	common.LoadVersionFromFile()

	// Load configuration - check provided path, YF_CONFIG, then binary dir, then fallback
	if configPath == "" {
		configPath = os.Getenv("YF_CONFIG")
	}
	if configPath == "" {
		binDir := getBinaryDir()
		configPath = filepath.Join(binDir, "yfengine.toml")
		if _, err := os.Stat(configPath); os.IsNotExist(err) {
			configPath = "config/yfengine.toml" // fallback for development
		}
	}

	config, err := common.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logger := common.NewLogger(config.Logging.Level)

	// Client initialization failure is logged but does not halt startup;
	// tool calls report the uninitialized client instead.
	var yahooClient interfaces.YahooClient
	client, err := yahoo.NewClient(
		yahoo.WithBaseURL(config.Clients.Yahoo.BaseURL),
		yahoo.WithHomeURL(config.Clients.Yahoo.HomeURL),
		yahoo.WithRateLimit(config.Clients.Yahoo.RateLimit),
		yahoo.WithTimeout(config.Clients.Yahoo.GetTimeout()),
		yahoo.WithLogger(logger),
	)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize Yahoo Finance client")
	} else {
		yahooClient = client
		logger.Info().Msg("Yahoo Finance client initialized successfully")
	}

	var financeService interfaces.FinanceService
	if yahooClient != nil {
		financeService = finance.NewService(yahooClient, logger)
	}

	mcpServer := server.NewMCPServer(
		serverName,
		common.GetVersion(),
		server.WithToolCapabilities(true),
	)

	a := &App{
		Config:      config,
		Logger:      logger,
		YahooClient: yahooClient,
		Finance:     financeService,
		MCPServer:   mcpServer,
		StartupTime: startupStart,
	}

	a.registerTools()

	logger.Info().Dur("startup", time.Since(startupStart)).Msg("App initialized")

	return a, nil
}

// registerTools registers all MCP tools on the App's MCPServer.
// get_news has a complete tool definition and handler but is not
// registered; it is kept off the catalog pending upstream stabilization
// of the news payload.
func (a *App) registerTools() {
	s := a.MCPServer
	svc := a.Finance
	logger := a.Logger

	s.AddTool(createGetCurrentStockPriceTool(), guarded("get_current_stock_price", svc, logger, handleGetCurrentStockPrice(svc)))
	s.AddTool(createGetStockPriceByDateTool(), guarded("get_stock_price_by_date", svc, logger, handleGetStockPriceByDate(svc)))
	s.AddTool(createGetStockPriceDateRangeTool(), guarded("get_stock_price_date_range", svc, logger, handleGetStockPriceDateRange(svc)))
	s.AddTool(createGetHistoricalStockPricesTool(), guarded("get_historical_stock_prices", svc, logger, handleGetHistoricalStockPrices(svc)))
	s.AddTool(createGetDividendsTool(), guarded("get_dividends", svc, logger, handleGetDividends(svc)))
	s.AddTool(createGetIncomeStatementTool(), guarded("get_income_statement", svc, logger, handleGetIncomeStatement(svc)))
	s.AddTool(createGetCashflowTool(), guarded("get_cashflow", svc, logger, handleGetCashflow(svc)))
	s.AddTool(createGetBalanceSheetTool(), guarded("get_balance_sheet", svc, logger, handleGetBalanceSheet(svc)))
	s.AddTool(createGetEarningDatesTool(), guarded("get_earning_dates", svc, logger, handleGetEarningDates(svc)))
	s.AddTool(createGetCompanyInfoTool(), guarded("get_company_info", svc, logger, handleGetCompanyInfo(svc)))
	s.AddTool(createGetSplitsTool(), guarded("get_splits", svc, logger, handleGetSplits(svc)))
	s.AddTool(createGetRecommendationsTool(), guarded("get_recommendations", svc, logger, handleGetRecommendations(svc)))
	s.AddTool(createGetAnalystPriceTargetsTool(), guarded("get_analyst_price_targets", svc, logger, handleGetAnalystPriceTargets(svc)))
	s.AddTool(createGetMajorHoldersTool(), guarded("get_major_holders", svc, logger, handleGetMajorHolders(svc)))
	s.AddTool(createGetInstitutionalHoldersTool(), guarded("get_institutional_holders", svc, logger, handleGetInstitutionalHolders(svc)))
	s.AddTool(createGetMutualfundHoldersTool(), guarded("get_mutualfund_holders", svc, logger, handleGetMutualfundHolders(svc)))
	s.AddTool(createGetOptionExpirationDatesTool(), guarded("get_option_expiration_dates", svc, logger, handleGetOptionExpirationDates(svc)))
	s.AddTool(createGetOptionChainTool(), guarded("get_option_chain", svc, logger, handleGetOptionChain(svc)))
	s.AddTool(createGetSustainabilityTool(), guarded("get_sustainability", svc, logger, handleGetSustainability(svc)))
}

package cmd

import (
	"database/sql"
	"fmt"
	"log"
	"net/http"

	"stockfolio/api"
	"stockfolio/internal/repository"
	"stockfolio/internal/service"
	"stockfolio/internal/util"
	"stockfolio/pkg/stockdata"

	_ "github.com/lib/pq"
)

func CloseDependencies(handler *api.ApiHandler) {
	err := handler.Db.Close()
	if err != nil {
		log.Fatalf("failed to close db: %v", err)
	}
}

func InitializeDependencies() (*api.ApiHandler, error) {
	secrets, err := util.LoadSecrets()
	if err != nil {
		return nil, fmt.Errorf("failed to load secrets: %w", err)
	}

	dbConn, err := sql.Open("postgres", secrets.Db.ToConnectionStr())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to db: %w", err)
	}

	portfolioRepository := repository.NewPortfolioRepository(dbConn)
	holdingRepository := repository.NewHoldingRepository(dbConn)
	tradeLogRepository := repository.NewTradeLogRepository(dbConn)

	stockDataClient := stockdata.NewClient(http.DefaultClient, secrets.StockDataUrl)

	holdingService := service.NewHoldingService(
		dbConn,
		portfolioRepository,
		holdingRepository,
		tradeLogRepository,
		stockDataClient,
	)
	portfolioService := service.NewPortfolioService(dbConn, portfolioRepository, holdingService)
	tradeLogService := service.NewTradeLogService(holdingRepository, tradeLogRepository)

	apiHandler := &api.ApiHandler{
		Db:               dbConn,
		PortfolioService: portfolioService,
		HoldingService:   holdingService,
		TradeLogService:  tradeLogService,
		JwtDecodeToken:   secrets.Jwt,
	}

	return apiHandler, nil
}

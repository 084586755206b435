package api

import (
	"fmt"
	"time"

	"stockfolio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const tradeDateLayout = "2006-01-02T15:04:05"

type addHoldingRequest struct {
	StockCode string          `json:"stockCode" binding:"required"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	TradeDate string          `json:"tradeDate" binding:"required"`
}

type addHoldingResponse struct {
	HoldingID uuid.UUID `json:"holdingID"`
	StockCode string    `json:"stockCode"`
}

func (m ApiHandler) addHolding(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Param("portfolioId"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody addHoldingRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	tradeDate, err := parseTradeDate(requestBody.TradeDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	holding, err := m.HoldingService.AddHolding(c.Request.Context(), service.AddHoldingInput{
		PortfolioID: portfolioID,
		StockCode:   requestBody.StockCode,
		Price:       requestBody.Price,
		Quantity:    requestBody.Quantity,
		TradeDate:   tradeDate,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, addHoldingResponse{
		HoldingID: holding.HoldingID,
		StockCode: holding.StockCode,
	})
}

func parseTradeDate(raw string) (time.Time, error) {
	if t, err := time.Parse(tradeDateLayout, raw); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid trade date %q: %w", raw, err)
	}
	return t, nil
}

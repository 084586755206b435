package api

import (
	"stockfolio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type addTradeRequest struct {
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	TradeDate string          `json:"tradeDate" binding:"required"`
}

type addTradeResponse struct {
	TradeLogID uuid.UUID `json:"tradeLogID"`
}

func (m ApiHandler) addTrade(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Param("portfolioId"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	holdingID, err := uuid.Parse(c.Param("holdingId"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var requestBody addTradeRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}
	tradeDate, err := parseTradeDate(requestBody.TradeDate)
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	tradeLog, err := m.HoldingService.AddTrade(c.Request.Context(), service.AddTradeInput{
		PortfolioID: portfolioID,
		HoldingID:   holdingID,
		Price:       requestBody.Price,
		Quantity:    requestBody.Quantity,
		TradeDate:   tradeDate,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, addTradeResponse{
		TradeLogID: tradeLog.TradeLogID,
	})
}

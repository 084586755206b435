package api

import (
	"time"

	"stockfolio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type tradeLogResponse struct {
	TradeLogID  uuid.UUID `json:"tradeLogID"`
	Type        string    `json:"type"`
	Price       float64   `json:"price"`
	Quantity    float64   `json:"quantity"`
	TotalPrice  float64   `json:"totalPrice"`
	Profit      float64   `json:"profit"`
	MarketPrice float64   `json:"marketPrice"`
	TradeDate   string    `json:"tradeDate"`
}

func (m ApiHandler) getTradeLogs(c *gin.Context) {
	holdingID, err := uuid.Parse(c.Param("holdingId"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	tradeLogs, err := m.TradeLogService.List(c.Request.Context(), holdingID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, tradeLogsResponseFromDomain(tradeLogs))
}

func tradeLogsResponseFromDomain(in []service.TradeLogView) []tradeLogResponse {
	out := []tradeLogResponse{}
	for _, tl := range in {
		out = append(out, tradeLogResponse{
			TradeLogID:  tl.TradeLogID,
			Type:        string(tl.Type),
			Price:       tl.Price.InexactFloat64(),
			Quantity:    tl.Quantity.InexactFloat64(),
			TotalPrice:  tl.TotalPrice.InexactFloat64(),
			Profit:      tl.Profit.InexactFloat64(),
			MarketPrice: tl.MarketPrice.InexactFloat64(),
			TradeDate:   tl.TradeDate.Format(time.RFC3339),
		})
	}
	return out
}

package api

import (
	"stockfolio/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type getHoldingsResponse struct {
	HoldingID    uuid.UUID `json:"holdingID"`
	StockCode    string    `json:"stockCode"`
	Name         string    `json:"name"`
	Sector       string    `json:"sector"`
	Quantity     float64   `json:"quantity"`
	AvgPrice     float64   `json:"avgPrice"`
	CurrentPrice float64   `json:"currentPrice"`
	AssetValue   float64   `json:"assetValue"`
	Gain         float64   `json:"gain"`
	GainRate     float64   `json:"gainRate"`
	ImageUrl     string    `json:"imageUrl"`
}

// getHoldings returns every holding of the portfolio with its live
// valuation. An optional ?code= query filters by exact stock code;
// filtering happens before any quote lookup.
func (m ApiHandler) getHoldings(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Param("portfolioId"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	var stockCode *string
	if code := c.Query("code"); code != "" {
		stockCode = &code
	}

	valuations, err := m.HoldingService.ListValuations(c.Request.Context(), portfolioID, stockCode)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, holdingsResponseFromDomain(valuations))
}

func holdingsResponseFromDomain(in []domain.HoldingValuation) []getHoldingsResponse {
	out := []getHoldingsResponse{}
	for _, hv := range in {
		out = append(out, getHoldingsResponse{
			HoldingID:    hv.Holding.HoldingID,
			StockCode:    hv.Holding.StockCode,
			Name:         hv.Quote.Name,
			Sector:       hv.Quote.Sector,
			Quantity:     hv.Valuation.Quantity.InexactFloat64(),
			AvgPrice:     hv.Valuation.AverageCost.InexactFloat64(),
			CurrentPrice: hv.Quote.CurrentPrice.InexactFloat64(),
			AssetValue:   hv.Valuation.AssetValue.InexactFloat64(),
			Gain:         hv.Valuation.Gain.InexactFloat64(),
			GainRate:     hv.Valuation.GainRate.InexactFloat64(),
			ImageUrl:     hv.Quote.ImageURL,
		})
	}
	return out
}

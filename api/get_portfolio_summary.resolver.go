package api

import (
	"stockfolio/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type portfolioSummaryResponse struct {
	TotalGain       float64 `json:"totalGain"`
	GainRate        float64 `json:"gainRate"`
	TotalAssetValue float64 `json:"totalAssetValue"`
	TotalBuyValue   float64 `json:"totalBuyValue"`
}

func (m ApiHandler) getPortfolioSummary(c *gin.Context) {
	portfolioID, err := uuid.Parse(c.Param("portfolioId"))
	if err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	summary, err := m.PortfolioService.Summary(c.Request.Context(), portfolioID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, summaryResponseFromDomain(*summary))
}

func (m ApiHandler) getTotalSummary(c *gin.Context) {
	memberID, err := memberIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	summary, err := m.PortfolioService.TotalSummary(c.Request.Context(), memberID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, summaryResponseFromDomain(*summary))
}

func summaryResponseFromDomain(summary domain.PortfolioSummary) portfolioSummaryResponse {
	return portfolioSummaryResponse{
		TotalGain:       summary.TotalGain.InexactFloat64(),
		GainRate:        summary.TotalGainRate.InexactFloat64(),
		TotalAssetValue: summary.TotalAssetValue.InexactFloat64(),
		TotalBuyValue:   summary.TotalCostBasis.InexactFloat64(),
	}
}

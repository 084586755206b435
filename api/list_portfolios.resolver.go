package api

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type listPortfoliosResponse struct {
	PortfolioID    uuid.UUID `json:"portfolioID"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	IncludeInTotal bool      `json:"includeInTotal"`
	Gain           float64   `json:"gain"`
	GainRate       float64   `json:"gainRate"`
}

func (m ApiHandler) listPortfolios(c *gin.Context) {
	memberID, err := memberIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	portfolios, err := m.PortfolioService.List(c.Request.Context(), memberID)
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	out := []listPortfoliosResponse{}
	for _, p := range portfolios {
		out = append(out, listPortfoliosResponse{
			PortfolioID:    p.Portfolio.PortfolioID,
			Name:           p.Portfolio.Name,
			Type:           string(p.Portfolio.Type),
			IncludeInTotal: p.Portfolio.IncludeInTotal,
			Gain:           p.Summary.TotalGain.InexactFloat64(),
			GainRate:       p.Summary.TotalGainRate.InexactFloat64(),
		})
	}

	c.JSON(200, out)
}

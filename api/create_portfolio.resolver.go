package api

import (
	"stockfolio/internal/domain"
	"stockfolio/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type createPortfolioRequest struct {
	Name           string `json:"name" binding:"required"`
	Description    string `json:"description"`
	Currency       string `json:"currency"`
	Type           string `json:"type"`
	IncludeInTotal *bool  `json:"includeInTotal"`
}

type createPortfolioResponse struct {
	PortfolioID uuid.UUID `json:"portfolioID"`
}

func (m ApiHandler) createPortfolio(c *gin.Context) {
	memberID, err := memberIDFromContext(c)
	if err != nil {
		returnErrorJsonCode(err, c, 401)
		return
	}

	var requestBody createPortfolioRequest
	if err := c.BindJSON(&requestBody); err != nil {
		returnErrorJsonCode(err, c, 400)
		return
	}

	currency := domain.CurrencyKRW
	if requestBody.Currency != "" {
		currency = domain.Currency(requestBody.Currency)
	}
	portfolioType := domain.PortfolioTypeReal
	if requestBody.Type != "" {
		portfolioType = domain.PortfolioType(requestBody.Type)
	}
	includeInTotal := true
	if requestBody.IncludeInTotal != nil {
		includeInTotal = *requestBody.IncludeInTotal
	}

	portfolio, err := m.PortfolioService.Create(c.Request.Context(), service.CreatePortfolioInput{
		MemberID:       memberID,
		Name:           requestBody.Name,
		Description:    requestBody.Description,
		Currency:       currency,
		Type:           portfolioType,
		IncludeInTotal: includeInTotal,
	})
	if err != nil {
		returnErrorJson(err, c)
		return
	}

	c.JSON(200, createPortfolioResponse{
		PortfolioID: portfolio.PortfolioID,
	})
}

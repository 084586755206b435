package api

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"stockfolio/internal/domain"
	"stockfolio/internal/logger"
	"stockfolio/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type ApiHandler struct {
	Db               *sql.DB
	PortfolioService service.PortfolioService
	HoldingService   service.HoldingService
	TradeLogService  service.TradeLogService
	JwtDecodeToken   string
}

func (m ApiHandler) StartApi(port int) error {
	router := gin.Default()
	router.Use(cors.Default())
	router.Use(logRequestMiddleware)

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to stockfolio"})
	})

	authed := router.Group("/", m.authMiddleware())
	authed.GET("/portfolios", m.listPortfolios)
	authed.POST("/portfolios", m.createPortfolio)
	authed.GET("/portfolios/total", m.getTotalSummary)
	authed.GET("/portfolios/:portfolioId/total", m.getPortfolioSummary)
	authed.GET("/portfolios/:portfolioId/stocks", m.getHoldings)
	authed.POST("/portfolios/:portfolioId/stocks", m.addHolding)
	authed.POST("/portfolios/:portfolioId/stocks/:holdingId", m.addTrade)
	authed.DELETE("/portfolios/:portfolioId/stocks/:holdingId", m.deleteHolding)
	authed.GET("/portfolios/:portfolioId/stocks/:holdingId/trade-log", m.getTradeLogs)

	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, statusFromError(err))
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	logger.Error(err)
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return 404
	case errors.Is(err, domain.ErrInvalidTradeData):
		return 400
	case errors.Is(err, domain.ErrQuoteUnavailable):
		return 502
	}
	return 500
}

func logRequestMiddleware(ctx *gin.Context) {
	start := time.Now().UTC()
	ctx.Next()
	logger.Info("%s %s -> %d (%dms)",
		ctx.Request.Method,
		ctx.Request.URL.Path,
		ctx.Writer.Status(),
		time.Since(start).Milliseconds(),
	)
}

package service

import (
	"context"
	"testing"
	"time"

	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/domain"
	mock_repository "stockfolio/internal/repository/mocks"
	mock_stockdata "stockfolio/pkg/stockdata/mocks"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type portfolioServiceMocks struct {
	portfolioRepository *mock_repository.MockPortfolioRepository
	holdingRepository   *mock_repository.MockHoldingRepository
	tradeLogRepository  *mock_repository.MockTradeLogRepository
	stockDataClient     *mock_stockdata.MockClient
}

func newPortfolioServiceHandler(ctrl *gomock.Controller) (portfolioServiceHandler, portfolioServiceMocks) {
	mocks := portfolioServiceMocks{
		portfolioRepository: mock_repository.NewMockPortfolioRepository(ctrl),
		holdingRepository:   mock_repository.NewMockHoldingRepository(ctrl),
		tradeLogRepository:  mock_repository.NewMockTradeLogRepository(ctrl),
		stockDataClient:     mock_stockdata.NewMockClient(ctrl),
	}

	handler := portfolioServiceHandler{
		PortfolioRepository: mocks.portfolioRepository,
		HoldingService: holdingServiceHandler{
			HoldingRepository:  mocks.holdingRepository,
			TradeLogRepository: mocks.tradeLogRepository,
			StockDataClient:    mocks.stockDataClient,
		},
	}

	return handler, mocks
}

func Test_PortfolioSummary(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, mocks := newPortfolioServiceHandler(ctrl)

		portfolio := newPortfolioModel(uuid.New(), true)
		holding := newHoldingModel(portfolio.PortfolioID, "005930")

		mocks.portfolioRepository.EXPECT().
			Get(portfolio.PortfolioID).
			Return(&portfolio, nil)
		mocks.holdingRepository.EXPECT().
			ListByPortfolio(portfolio.PortfolioID).
			Return([]model.Holding{holding}, nil)
		mocks.tradeLogRepository.EXPECT().
			ListByHolding(holding.HoldingID).
			Return([]model.TradeLog{
				newTradeLogModel(holding.HoldingID, "1000", "2"),
			}, nil)
		mocks.stockDataClient.EXPECT().
			GetQuote(gomock.Any(), "005930").
			Return(&domain.QuoteSnapshot{
				StockCode:    "005930",
				CurrentPrice: decimal.RequireFromString("1500"),
			}, nil)
		mocks.stockDataClient.EXPECT().
			FindImageURL(gomock.Any(), "005930").
			Return("", nil)

		summary, err := handler.Summary(context.Background(), portfolio.PortfolioID)
		require.NoError(t, err)

		require.Equal(t, "1000.00", summary.TotalGain.StringFixed(2))
		require.Equal(t, "50.00", summary.TotalGainRate.StringFixed(2))
		require.False(t, summary.ZeroBasis)
	})

	t.Run("unknown portfolio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, mocks := newPortfolioServiceHandler(ctrl)

		portfolioID := uuid.New()
		mocks.portfolioRepository.EXPECT().
			Get(portfolioID).
			Return(nil, domain.ErrNotFound)

		_, err := handler.Summary(context.Background(), portfolioID)
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func Test_TotalSummary(t *testing.T) {
	t.Run("skips portfolios excluded from the total", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, mocks := newPortfolioServiceHandler(ctrl)

		memberID := uuid.New()
		included := newPortfolioModel(memberID, true)
		excluded := newPortfolioModel(memberID, false)
		holding := newHoldingModel(included.PortfolioID, "005930")

		mocks.portfolioRepository.EXPECT().
			ListByMember(memberID).
			Return([]model.Portfolio{included, excluded}, nil)

		// only the included portfolio is valued - no expectations
		// exist for the excluded one
		mocks.holdingRepository.EXPECT().
			ListByPortfolio(included.PortfolioID).
			Return([]model.Holding{holding}, nil)
		mocks.tradeLogRepository.EXPECT().
			ListByHolding(holding.HoldingID).
			Return([]model.TradeLog{
				newTradeLogModel(holding.HoldingID, "1000", "2"),
			}, nil)
		mocks.stockDataClient.EXPECT().
			GetQuote(gomock.Any(), "005930").
			Return(&domain.QuoteSnapshot{
				StockCode:    "005930",
				CurrentPrice: decimal.RequireFromString("1500"),
			}, nil)
		mocks.stockDataClient.EXPECT().
			FindImageURL(gomock.Any(), "005930").
			Return("", nil)

		summary, err := handler.TotalSummary(context.Background(), memberID)
		require.NoError(t, err)

		require.Equal(t, "1000.00", summary.TotalGain.StringFixed(2))
		require.Equal(t, "50.00", summary.TotalGainRate.StringFixed(2))
	})

	t.Run("member with no portfolios gets a defined zero", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, mocks := newPortfolioServiceHandler(ctrl)

		memberID := uuid.New()
		mocks.portfolioRepository.EXPECT().
			ListByMember(memberID).
			Return([]model.Portfolio{}, nil)

		summary, err := handler.TotalSummary(context.Background(), memberID)
		require.NoError(t, err)

		require.Equal(t, "0.00", summary.TotalGain.StringFixed(2))
		require.Equal(t, "0.00", summary.TotalGainRate.StringFixed(2))
		require.True(t, summary.ZeroBasis)
	})
}

func Test_CreatePortfolio(t *testing.T) {
	t.Run("happy path", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, mocks := newPortfolioServiceHandler(ctrl)

		memberID := uuid.New()
		description := "long-term savings"

		mocks.portfolioRepository.EXPECT().
			Add(nil, model.Portfolio{
				MemberID:       memberID,
				Name:           "My Portfolio",
				Description:    &description,
				Currency:       "KRW",
				Type:           "REAL",
				IncludeInTotal: true,
			}).
			Return(&model.Portfolio{
				PortfolioID:    uuid.New(),
				MemberID:       memberID,
				Name:           "My Portfolio",
				Description:    &description,
				Currency:       "KRW",
				Type:           "REAL",
				IncludeInTotal: true,
			}, nil)

		portfolio, err := handler.Create(context.Background(), CreatePortfolioInput{
			MemberID:       memberID,
			Name:           "My Portfolio",
			Description:    description,
			Currency:       domain.CurrencyKRW,
			Type:           domain.PortfolioTypeReal,
			IncludeInTotal: true,
		})
		require.NoError(t, err)
		require.Equal(t, "My Portfolio", portfolio.Name)
		require.Equal(t, domain.CurrencyKRW, portfolio.Currency)
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		handler, _ := newPortfolioServiceHandler(ctrl)

		_, err := handler.Create(context.Background(), CreatePortfolioInput{
			MemberID: uuid.New(),
		})
		require.Error(t, err)
	})
}

func newPortfolioModel(memberID uuid.UUID, includeInTotal bool) model.Portfolio {
	return model.Portfolio{
		PortfolioID:    uuid.New(),
		MemberID:       memberID,
		Name:           "portfolio",
		Currency:       "KRW",
		Type:           "REAL",
		IncludeInTotal: includeInTotal,
		CreatedAt:      time.Now().UTC(),
	}
}

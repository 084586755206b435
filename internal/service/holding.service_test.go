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

func Test_ListValuations(t *testing.T) {
	t.Run("values every holding and joins all results", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		tradeLogRepository := mock_repository.NewMockTradeLogRepository(ctrl)
		stockDataClient := mock_stockdata.NewMockClient(ctrl)

		handler := holdingServiceHandler{
			HoldingRepository:  holdingRepository,
			TradeLogRepository: tradeLogRepository,
			StockDataClient:    stockDataClient,
		}

		portfolioID := uuid.New()
		samsung := newHoldingModel(portfolioID, "005930")
		kakao := newHoldingModel(portfolioID, "035720")

		holdingRepository.EXPECT().
			ListByPortfolio(portfolioID).
			Return([]model.Holding{samsung, kakao}, nil)

		tradeLogRepository.EXPECT().
			ListByHolding(samsung.HoldingID).
			Return([]model.TradeLog{
				newTradeLogModel(samsung.HoldingID, "1000", "2"),
			}, nil)
		tradeLogRepository.EXPECT().
			ListByHolding(kakao.HoldingID).
			Return([]model.TradeLog{}, nil)

		stockDataClient.EXPECT().
			GetQuote(gomock.Any(), "005930").
			Return(&domain.QuoteSnapshot{
				StockCode:    "005930",
				Name:         "Samsung Electronics",
				Sector:       "Tech",
				CurrentPrice: decimal.RequireFromString("1500"),
			}, nil)
		stockDataClient.EXPECT().
			GetQuote(gomock.Any(), "035720").
			Return(&domain.QuoteSnapshot{
				StockCode:    "035720",
				Name:         "Kakao",
				Sector:       "Tech",
				CurrentPrice: decimal.RequireFromString("50000"),
			}, nil)
		stockDataClient.EXPECT().
			FindImageURL(gomock.Any(), "005930").
			Return("https://img.example.com/005930.png", nil)
		stockDataClient.EXPECT().
			FindImageURL(gomock.Any(), "035720").
			Return("", nil)

		valuations, err := handler.ListValuations(context.Background(), portfolioID, nil)
		require.NoError(t, err)
		require.Len(t, valuations, 2)

		// results keep holding order regardless of which quote
		// resolved first
		require.Equal(t, samsung.HoldingID, valuations[0].Holding.HoldingID)
		require.Equal(t, kakao.HoldingID, valuations[1].Holding.HoldingID)

		require.Equal(t, "3000.00", valuations[0].Valuation.AssetValue.StringFixed(2))
		require.Equal(t, "1000.00", valuations[0].Valuation.Gain.StringFixed(2))
		require.Equal(t, "50.00", valuations[0].Valuation.GainRate.StringFixed(2))
		require.Equal(t, "https://img.example.com/005930.png", valuations[0].Quote.ImageURL)

		// empty ledger degrades to zero, it does not fail
		require.True(t, valuations[1].Valuation.ZeroBasis)
		require.Equal(t, "0.00", valuations[1].Valuation.GainRate.StringFixed(2))
	})

	t.Run("filters by stock code before any quote lookup", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		tradeLogRepository := mock_repository.NewMockTradeLogRepository(ctrl)
		stockDataClient := mock_stockdata.NewMockClient(ctrl)

		handler := holdingServiceHandler{
			HoldingRepository:  holdingRepository,
			TradeLogRepository: tradeLogRepository,
			StockDataClient:    stockDataClient,
		}

		portfolioID := uuid.New()
		samsung := newHoldingModel(portfolioID, "005930")
		kakao := newHoldingModel(portfolioID, "035720")

		holdingRepository.EXPECT().
			ListByPortfolio(portfolioID).
			Return([]model.Holding{samsung, kakao}, nil)

		// no expectations registered for kakao: the non-matching
		// holding must trigger zero remote or ledger reads
		tradeLogRepository.EXPECT().
			ListByHolding(samsung.HoldingID).
			Return([]model.TradeLog{}, nil)
		stockDataClient.EXPECT().
			GetQuote(gomock.Any(), "005930").
			Return(&domain.QuoteSnapshot{
				StockCode:    "005930",
				CurrentPrice: decimal.RequireFromString("1500"),
			}, nil)
		stockDataClient.EXPECT().
			FindImageURL(gomock.Any(), "005930").
			Return("", nil)

		code := "005930"
		valuations, err := handler.ListValuations(context.Background(), portfolioID, &code)
		require.NoError(t, err)
		require.Len(t, valuations, 1)
		require.Equal(t, "005930", valuations[0].Holding.StockCode)
	})

	t.Run("unavailable quote fails the whole request", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		tradeLogRepository := mock_repository.NewMockTradeLogRepository(ctrl)
		stockDataClient := mock_stockdata.NewMockClient(ctrl)

		handler := holdingServiceHandler{
			HoldingRepository:  holdingRepository,
			TradeLogRepository: tradeLogRepository,
			StockDataClient:    stockDataClient,
		}

		portfolioID := uuid.New()
		samsung := newHoldingModel(portfolioID, "005930")
		unknown := newHoldingModel(portfolioID, "UNKNOWN")

		holdingRepository.EXPECT().
			ListByPortfolio(portfolioID).
			Return([]model.Holding{samsung, unknown}, nil)

		tradeLogRepository.EXPECT().
			ListByHolding(unknown.HoldingID).
			Return([]model.TradeLog{}, nil)
		stockDataClient.EXPECT().
			GetQuote(gomock.Any(), "UNKNOWN").
			Return(nil, domain.ErrQuoteUnavailable)

		// the healthy holding may or may not be reached before the
		// request is cancelled
		tradeLogRepository.EXPECT().
			ListByHolding(samsung.HoldingID).
			Return([]model.TradeLog{}, nil).
			AnyTimes()
		stockDataClient.EXPECT().
			GetQuote(gomock.Any(), "005930").
			Return(&domain.QuoteSnapshot{
				StockCode:    "005930",
				CurrentPrice: decimal.RequireFromString("1500"),
			}, nil).
			AnyTimes()
		stockDataClient.EXPECT().
			FindImageURL(gomock.Any(), "005930").
			Return("", nil).
			AnyTimes()

		valuations, err := handler.ListValuations(context.Background(), portfolioID, nil)
		require.ErrorIs(t, err, domain.ErrQuoteUnavailable)
		require.Nil(t, valuations)
	})

	t.Run("negative ledger entry is invalid trade data", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		tradeLogRepository := mock_repository.NewMockTradeLogRepository(ctrl)
		stockDataClient := mock_stockdata.NewMockClient(ctrl)

		handler := holdingServiceHandler{
			HoldingRepository:  holdingRepository,
			TradeLogRepository: tradeLogRepository,
			StockDataClient:    stockDataClient,
		}

		portfolioID := uuid.New()
		holding := newHoldingModel(portfolioID, "005930")

		holdingRepository.EXPECT().
			ListByPortfolio(portfolioID).
			Return([]model.Holding{holding}, nil)
		tradeLogRepository.EXPECT().
			ListByHolding(holding.HoldingID).
			Return([]model.TradeLog{
				newTradeLogModel(holding.HoldingID, "1000", "-2"),
			}, nil)

		_, err := handler.ListValuations(context.Background(), portfolioID, nil)
		require.ErrorIs(t, err, domain.ErrInvalidTradeData)
	})
}

func Test_AddTrade(t *testing.T) {
	t.Run("records the quoted market price on the trade", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)
		tradeLogRepository := mock_repository.NewMockTradeLogRepository(ctrl)
		stockDataClient := mock_stockdata.NewMockClient(ctrl)

		handler := holdingServiceHandler{
			HoldingRepository:  holdingRepository,
			TradeLogRepository: tradeLogRepository,
			StockDataClient:    stockDataClient,
		}

		portfolioID := uuid.New()
		holding := newHoldingModel(portfolioID, "005930")
		tradeDate := time.Date(2023, 10, 26, 17, 7, 13, 0, time.UTC)

		holdingRepository.EXPECT().
			Get(holding.HoldingID).
			Return(&holding, nil)
		stockDataClient.EXPECT().
			GetQuote(gomock.Any(), "005930").
			Return(&domain.QuoteSnapshot{
				StockCode:    "005930",
				CurrentPrice: decimal.RequireFromString("71500"),
			}, nil)
		tradeLogRepository.EXPECT().
			Add(nil, model.TradeLog{
				HoldingID:   holding.HoldingID,
				Type:        model.TradeType_Buy,
				Price:       decimal.RequireFromString("70000"),
				Quantity:    decimal.RequireFromString("3"),
				MarketPrice: decimal.RequireFromString("71500"),
				TradeDate:   tradeDate,
			}).
			Return(&model.TradeLog{TradeLogID: uuid.New()}, nil)

		_, err := handler.AddTrade(context.Background(), AddTradeInput{
			PortfolioID: portfolioID,
			HoldingID:   holding.HoldingID,
			Price:       decimal.RequireFromString("70000"),
			Quantity:    decimal.RequireFromString("3"),
			TradeDate:   tradeDate,
		})
		require.NoError(t, err)
	})

	t.Run("holding must belong to the portfolio", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		holdingRepository := mock_repository.NewMockHoldingRepository(ctrl)

		handler := holdingServiceHandler{
			HoldingRepository: holdingRepository,
		}

		holding := newHoldingModel(uuid.New(), "005930")
		holdingRepository.EXPECT().
			Get(holding.HoldingID).
			Return(&holding, nil)

		_, err := handler.AddTrade(context.Background(), AddTradeInput{
			PortfolioID: uuid.New(), // different portfolio
			HoldingID:   holding.HoldingID,
		})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func newHoldingModel(portfolioID uuid.UUID, stockCode string) model.Holding {
	return model.Holding{
		HoldingID:   uuid.New(),
		PortfolioID: portfolioID,
		StockCode:   stockCode,
		CreatedAt:   time.Now().UTC(),
	}
}

func newTradeLogModel(holdingID uuid.UUID, price, quantity string) model.TradeLog {
	return model.TradeLog{
		TradeLogID: uuid.New(),
		HoldingID:  holdingID,
		Type:       model.TradeType_Buy,
		Price:      decimal.RequireFromString(price),
		Quantity:   decimal.RequireFromString(quantity),
		TradeDate:  time.Date(2023, 10, 26, 17, 7, 13, 0, time.UTC),
	}
}

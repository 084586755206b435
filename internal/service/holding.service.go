package service

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"stockfolio/internal/calculator"
	"stockfolio/internal/db/models/postgres/public/model"
	"stockfolio/internal/domain"
	"stockfolio/internal/repository"
	"stockfolio/pkg/stockdata"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// number of concurrent quote lookups per request
const numQuoteWorkers = 5

type HoldingService interface {
	// ListValuations values every holding of a portfolio. When
	// stockCode is set, holdings are filtered by exact code BEFORE any
	// quote lookup so non-matching holdings cost no remote calls.
	//
	// Failure policy is fail-fast: if any holding's quote is
	// unavailable the whole request fails. No zero-filled entries are
	// ever substituted.
	ListValuations(ctx context.Context, portfolioID uuid.UUID, stockCode *string) ([]domain.HoldingValuation, error)
	AddHolding(ctx context.Context, input AddHoldingInput) (*domain.Holding, error)
	AddTrade(ctx context.Context, input AddTradeInput) (*domain.TradeLog, error)
	// DeleteHolding removes the holding and its trade logs. Deletion
	// is allowed while quantity > 0.
	DeleteHolding(ctx context.Context, holdingID uuid.UUID) error
}

type holdingServiceHandler struct {
	Db                  *sql.DB
	PortfolioRepository repository.PortfolioRepository
	HoldingRepository   repository.HoldingRepository
	TradeLogRepository  repository.TradeLogRepository
	StockDataClient     stockdata.Client
}

func NewHoldingService(
	db *sql.DB,
	portfolioRepository repository.PortfolioRepository,
	holdingRepository repository.HoldingRepository,
	tradeLogRepository repository.TradeLogRepository,
	stockDataClient stockdata.Client,
) HoldingService {
	return holdingServiceHandler{
		Db:                  db,
		PortfolioRepository: portfolioRepository,
		HoldingRepository:   holdingRepository,
		TradeLogRepository:  tradeLogRepository,
		StockDataClient:     stockDataClient,
	}
}

type AddHoldingInput struct {
	PortfolioID uuid.UUID
	StockCode   string
	Price       decimal.Decimal
	Quantity    decimal.Decimal
	TradeDate   time.Time
}

type AddTradeInput struct {
	PortfolioID uuid.UUID
	HoldingID   uuid.UUID
	Price       decimal.Decimal
	Quantity    decimal.Decimal
	TradeDate   time.Time
}

func (h holdingServiceHandler) ListValuations(ctx context.Context, portfolioID uuid.UUID, stockCode *string) ([]domain.HoldingValuation, error) {
	holdings, err := h.HoldingRepository.ListByPortfolio(portfolioID)
	if err != nil {
		return nil, err
	}

	if stockCode != nil {
		filtered := []model.Holding{}
		for _, holding := range holdings {
			if holding.StockCode == *stockCode {
				filtered = append(filtered, holding)
			}
		}
		holdings = filtered
	}

	return h.valuateAll(ctx, holdings)
}

// valuateAll fans quote lookups out over a bounded worker pool and
// joins every result before returning. Each holding ends up either in
// the result slice at its own index or in the returned error - a
// holding is never silently dropped.
func (h holdingServiceHandler) valuateAll(ctx context.Context, holdings []model.Holding) ([]domain.HoldingValuation, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type indexedHolding struct {
		index   int
		holding model.Holding
	}

	inputCh := make(chan indexedHolding, len(holdings))
	for i, holding := range holdings {
		inputCh <- indexedHolding{index: i, holding: holding}
	}
	close(inputCh)

	results := make([]domain.HoldingValuation, len(holdings))

	var (
		wg       sync.WaitGroup
		errMu    sync.Mutex
		firstErr error
	)

	workers := numQuoteWorkers
	if len(holdings) < workers {
		workers = len(holdings)
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case in, ok := <-inputCh:
					if !ok {
						return
					}
					valuation, err := h.valuate(ctx, in.holding)
					if err != nil {
						errMu.Lock()
						if firstErr == nil {
							firstErr = err
							cancel()
						}
						errMu.Unlock()
						return
					}
					results[in.index] = *valuation
				}
			}
		}()
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	return results, nil
}

func (h holdingServiceHandler) valuate(ctx context.Context, holding model.Holding) (*domain.HoldingValuation, error) {
	tradeLogs, err := h.TradeLogRepository.ListByHolding(holding.HoldingID)
	if err != nil {
		return nil, err
	}

	basis, err := calculator.CalculateCostBasis(tradeLogsFromModels(tradeLogs))
	if err != nil {
		return nil, fmt.Errorf("failed to value holding %s: %w", holding.HoldingID, err)
	}

	quote, err := h.StockDataClient.GetQuote(ctx, holding.StockCode)
	if err != nil {
		return nil, err
	}
	imageUrl, err := h.StockDataClient.FindImageURL(ctx, holding.StockCode)
	if err != nil {
		return nil, err
	}
	quote.ImageURL = imageUrl

	return &domain.HoldingValuation{
		Holding:   holdingFromModel(holding),
		Quote:     *quote,
		Valuation: calculator.Valuate(*basis, quote.CurrentPrice),
	}, nil
}

func (h holdingServiceHandler) AddHolding(ctx context.Context, input AddHoldingInput) (*domain.Holding, error) {
	if _, err := h.PortfolioRepository.Get(input.PortfolioID); err != nil {
		return nil, err
	}

	// the quoted price at execution time is recorded on the trade log;
	// a buy cannot be recorded without it
	quote, err := h.StockDataClient.GetQuote(ctx, input.StockCode)
	if err != nil {
		return nil, err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	insertedHolding, err := h.HoldingRepository.Add(tx, model.Holding{
		PortfolioID: input.PortfolioID,
		StockCode:   input.StockCode,
	})
	if err != nil {
		return nil, err
	}

	_, err = h.TradeLogRepository.Add(tx, model.TradeLog{
		HoldingID:   insertedHolding.HoldingID,
		Type:        model.TradeType_Buy,
		Price:       input.Price,
		Quantity:    input.Quantity,
		MarketPrice: quote.CurrentPrice,
		TradeDate:   input.TradeDate,
	})
	if err != nil {
		return nil, err
	}

	err = tx.Commit()
	if err != nil {
		return nil, err
	}

	holding := holdingFromModel(*insertedHolding)
	return &holding, nil
}

func (h holdingServiceHandler) AddTrade(ctx context.Context, input AddTradeInput) (*domain.TradeLog, error) {
	holding, err := h.HoldingRepository.Get(input.HoldingID)
	if err != nil {
		return nil, err
	}
	if holding.PortfolioID != input.PortfolioID {
		return nil, fmt.Errorf("holding %s in portfolio %s: %w", input.HoldingID, input.PortfolioID, domain.ErrNotFound)
	}

	quote, err := h.StockDataClient.GetQuote(ctx, holding.StockCode)
	if err != nil {
		return nil, err
	}

	insertedTradeLog, err := h.TradeLogRepository.Add(nil, model.TradeLog{
		HoldingID:   holding.HoldingID,
		Type:        model.TradeType_Buy,
		Price:       input.Price,
		Quantity:    input.Quantity,
		MarketPrice: quote.CurrentPrice,
		TradeDate:   input.TradeDate,
	})
	if err != nil {
		return nil, err
	}

	tradeLog := tradeLogFromModel(*insertedTradeLog)
	return &tradeLog, nil
}

func (h holdingServiceHandler) DeleteHolding(ctx context.Context, holdingID uuid.UUID) error {
	if _, err := h.HoldingRepository.Get(holdingID); err != nil {
		return err
	}

	tx, err := h.Db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// trade logs live and die with their holding
	if err := h.TradeLogRepository.DeleteByHolding(tx, holdingID); err != nil {
		return err
	}
	if err := h.HoldingRepository.Delete(tx, holdingID); err != nil {
		return err
	}

	return tx.Commit()
}

func holdingFromModel(m model.Holding) domain.Holding {
	return domain.Holding{
		HoldingID:   m.HoldingID,
		PortfolioID: m.PortfolioID,
		StockCode:   m.StockCode,
		CreatedAt:   m.CreatedAt,
	}
}

func tradeLogFromModel(m model.TradeLog) domain.TradeLog {
	return domain.TradeLog{
		TradeLogID:  m.TradeLogID,
		HoldingID:   m.HoldingID,
		Type:        domain.TradeType(m.Type),
		Price:       m.Price,
		Quantity:    m.Quantity,
		MarketPrice: m.MarketPrice,
		TradeDate:   m.TradeDate,
	}
}

func tradeLogsFromModels(models []model.TradeLog) []domain.TradeLog {
	out := make([]domain.TradeLog, 0, len(models))
	for _, m := range models {
		out = append(out, tradeLogFromModel(m))
	}
	return out
}

package service

import (
	"context"
	"sort"
	"time"

	"stockfolio/internal/domain"
	"stockfolio/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TradeLogService interface {
	List(ctx context.Context, holdingID uuid.UUID) ([]TradeLogView, error)
}

// TradeLogView is one row of a holding's trade history. Profit is the
// realized profit of the trade - always zero for buys.
type TradeLogView struct {
	TradeLogID  uuid.UUID
	Type        domain.TradeType
	Price       decimal.Decimal
	Quantity    decimal.Decimal
	TotalPrice  decimal.Decimal
	Profit      decimal.Decimal
	MarketPrice decimal.Decimal
	TradeDate   time.Time
}

type tradeLogServiceHandler struct {
	HoldingRepository  repository.HoldingRepository
	TradeLogRepository repository.TradeLogRepository
}

func NewTradeLogService(holdingRepository repository.HoldingRepository, tradeLogRepository repository.TradeLogRepository) TradeLogService {
	return tradeLogServiceHandler{
		HoldingRepository:  holdingRepository,
		TradeLogRepository: tradeLogRepository,
	}
}

func (h tradeLogServiceHandler) List(ctx context.Context, holdingID uuid.UUID) ([]TradeLogView, error) {
	if _, err := h.HoldingRepository.Get(holdingID); err != nil {
		return nil, err
	}

	tradeLogs, err := h.TradeLogRepository.ListByHolding(holdingID)
	if err != nil {
		return nil, err
	}

	views := make([]TradeLogView, 0, len(tradeLogs))
	for _, t := range tradeLogs {
		views = append(views, TradeLogView{
			TradeLogID:  t.TradeLogID,
			Type:        domain.TradeType(t.Type),
			Price:       t.Price,
			Quantity:    t.Quantity,
			TotalPrice:  t.Price.Mul(t.Quantity).Round(2),
			Profit:      decimal.Zero.Round(2),
			MarketPrice: t.MarketPrice,
			TradeDate:   t.TradeDate,
		})
	}

	// the ledger itself is unordered; present oldest first
	sort.Slice(views, func(i, j int) bool {
		return views[i].TradeDate.Before(views[j].TradeDate)
	})

	return views, nil
}

package calculator

import (
	"fmt"
	"stockfolio/internal/domain"

	"github.com/shopspring/decimal"
)

// CostBasis is the reduction of a holding's trade ledger: how many
// units are held and what each unit cost on average.
//
// ZeroBasis is set when the ledger produced no cost basis (no trades,
// or all zero-quantity trades). AverageCost is then a defined zero,
// not the result of a division.
type CostBasis struct {
	Quantity    decimal.Decimal
	AverageCost decimal.Decimal
	ZeroBasis   bool
}

// TotalCost is the full cost of the position, AverageCost * Quantity.
func (c CostBasis) TotalCost() decimal.Decimal {
	return c.AverageCost.Mul(c.Quantity).Round(2)
}

// CalculateCostBasis reduces a holding's trade logs into total quantity
// and average unit cost. The ledger may arrive in any order; the result
// is order independent.
//
// Average cost is the quantity-weighted average of buy unit prices,
// sum(price * quantity) / sum(quantity) over buys. Sells reduce the
// held quantity but never the average (average cost method). Both
// figures are rounded to 2 decimal places, half up, before the
// division so results are reproducible.
func CalculateCostBasis(tradeLogs []domain.TradeLog) (*CostBasis, error) {
	buyQuantity := decimal.Zero
	buyCost := decimal.Zero
	sellQuantity := decimal.Zero

	for _, t := range tradeLogs {
		if t.Quantity.IsNegative() {
			return nil, fmt.Errorf("trade %s has negative quantity %s: %w", t.TradeLogID, t.Quantity, domain.ErrInvalidTradeData)
		}
		if t.Price.IsNegative() {
			return nil, fmt.Errorf("trade %s has negative price %s: %w", t.TradeLogID, t.Price, domain.ErrInvalidTradeData)
		}
		switch t.Type {
		case domain.TradeTypeSell:
			sellQuantity = sellQuantity.Add(t.Quantity)
		default:
			buyQuantity = buyQuantity.Add(t.Quantity)
			buyCost = buyCost.Add(t.Price.Mul(t.Quantity))
		}
	}

	if sellQuantity.GreaterThan(buyQuantity) {
		return nil, fmt.Errorf("ledger sells %s units but only %s were bought: %w", sellQuantity, buyQuantity, domain.ErrInvalidTradeData)
	}

	totalQuantity := buyQuantity.Sub(sellQuantity).Round(2)

	if totalQuantity.IsZero() {
		return &CostBasis{
			Quantity:    decimal.Zero.Round(2),
			AverageCost: decimal.Zero.Round(2),
			ZeroBasis:   true,
		}, nil
	}

	return &CostBasis{
		Quantity:    totalQuantity,
		AverageCost: buyCost.Round(2).DivRound(buyQuantity.Round(2), 2),
	}, nil
}

package domain

import (
	"github.com/shopspring/decimal"
)

// QuoteSnapshot is the result of one external quote lookup. It lives
// for the duration of a single valuation request and is never cached.
type QuoteSnapshot struct {
	StockCode    string
	Name         string
	Sector       string
	CurrentPrice decimal.Decimal
	ImageURL     string
}

// Valuation is the derived view of one holding's trade history against
// a current price. All monetary fields are rounded to 2 decimal places,
// half up.
//
// ZeroBasis marks the defined degraded-zero result: the holding had no
// cost basis (empty ledger or zero-cost position), so AverageCost and
// GainRate are an explicit zero rather than the output of a division.
type Valuation struct {
	Quantity    decimal.Decimal
	AverageCost decimal.Decimal
	AssetValue  decimal.Decimal
	Gain        decimal.Decimal
	GainRate    decimal.Decimal
	ZeroBasis   bool
}

// TotalCostBasis is the cost of the position, AverageCost * Quantity.
func (v Valuation) TotalCostBasis() decimal.Decimal {
	return v.AverageCost.Mul(v.Quantity).Round(2)
}

// HoldingValuation joins a holding with its quote snapshot and derived
// figures. Recomputed on every request, never persisted.
type HoldingValuation struct {
	Holding   Holding
	Quote     QuoteSnapshot
	Valuation Valuation
}

// PortfolioSummary aggregates the valuations of every holding in a
// portfolio. TotalAssetValue and TotalCostBasis are carried so summaries
// can be combined across portfolios without revaluing holdings.
type PortfolioSummary struct {
	TotalGain       decimal.Decimal
	TotalGainRate   decimal.Decimal
	TotalAssetValue decimal.Decimal
	TotalCostBasis  decimal.Decimal
	ZeroBasis       bool
}

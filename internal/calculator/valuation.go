package calculator

import (
	"stockfolio/internal/domain"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Valuate combines a holding's cost basis with its current market
// price:
//
//	assetValue = currentPrice * quantity
//	gain       = (currentPrice - averageCost) * quantity
//	gainRate   = (assetValue / totalCost) * 100 - 100
//
// Every derived figure is rounded to 2 decimal places, half up, at the
// point it is computed. A zero cost basis never errors: gain rate
// degrades to a defined zero and the result carries the ZeroBasis
// marker.
func Valuate(basis CostBasis, currentPrice decimal.Decimal) domain.Valuation {
	assetValue := currentPrice.Mul(basis.Quantity).Round(2)
	gain := currentPrice.Sub(basis.AverageCost).Mul(basis.Quantity).Round(2)
	totalCost := basis.TotalCost()

	v := domain.Valuation{
		Quantity:    basis.Quantity,
		AverageCost: basis.AverageCost,
		AssetValue:  assetValue,
		Gain:        gain,
		GainRate:    decimal.Zero.Round(2),
	}

	if totalCost.IsZero() {
		v.ZeroBasis = true
		return v
	}

	v.GainRate = assetValue.Mul(hundred).DivRound(totalCost, 2).Sub(hundred)
	return v
}

// Summarize rolls the valuations of a portfolio's holdings into one
// summary. Total gain is the plain sum of per-holding gains; the total
// gain rate is recomputed from the summed asset values and cost bases,
// with the same zero-basis-to-zero-rate rule as Valuate.
func Summarize(valuations []domain.Valuation) domain.PortfolioSummary {
	totalGain := decimal.Zero
	totalAsset := decimal.Zero
	totalCost := decimal.Zero

	for _, v := range valuations {
		totalGain = totalGain.Add(v.Gain)
		totalAsset = totalAsset.Add(v.AssetValue)
		totalCost = totalCost.Add(v.TotalCostBasis())
	}

	return summaryFromTotals(totalGain, totalAsset, totalCost)
}

// CombineSummaries merges per-portfolio summaries into a member-wide
// one without revaluing any holding. Relies on every summary carrying
// its asset value and cost basis totals.
func CombineSummaries(summaries []domain.PortfolioSummary) domain.PortfolioSummary {
	totalGain := decimal.Zero
	totalAsset := decimal.Zero
	totalCost := decimal.Zero

	for _, s := range summaries {
		totalGain = totalGain.Add(s.TotalGain)
		totalAsset = totalAsset.Add(s.TotalAssetValue)
		totalCost = totalCost.Add(s.TotalCostBasis)
	}

	return summaryFromTotals(totalGain, totalAsset, totalCost)
}

func summaryFromTotals(totalGain, totalAsset, totalCost decimal.Decimal) domain.PortfolioSummary {
	s := domain.PortfolioSummary{
		TotalGain:       totalGain.Round(2),
		TotalAssetValue: totalAsset.Round(2),
		TotalCostBasis:  totalCost.Round(2),
		TotalGainRate:   decimal.Zero.Round(2),
	}

	if s.TotalCostBasis.IsZero() {
		s.ZeroBasis = true
		return s
	}

	s.TotalGainRate = s.TotalAssetValue.Mul(hundred).DivRound(s.TotalCostBasis, 2).Sub(hundred)
	return s
}

package calculator

import (
	"testing"

	"stockfolio/internal/domain"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var decimalComparer = cmp.Comparer(func(a, b decimal.Decimal) bool {
	return a.Equal(b)
})

func TestValuate(t *testing.T) {
	t.Run("single lot with a gain", func(t *testing.T) {
		basis, err := CalculateCostBasis([]domain.TradeLog{
			newBuyLog(t, "1000", "2"),
		})
		require.NoError(t, err)

		v := Valuate(*basis, decimal.RequireFromString("1500"))

		require.Equal(t, "2.00", v.Quantity.StringFixed(2))
		require.Equal(t, "1000.00", v.AverageCost.StringFixed(2))
		require.Equal(t, "3000.00", v.AssetValue.StringFixed(2))
		require.Equal(t, "1000.00", v.Gain.StringFixed(2))
		require.Equal(t, "50.00", v.GainRate.StringFixed(2))
		require.False(t, v.ZeroBasis)
	})

	t.Run("averaged lots", func(t *testing.T) {
		basis, err := CalculateCostBasis([]domain.TradeLog{
			newBuyLog(t, "1000", "1"),
			newBuyLog(t, "2000", "1"),
		})
		require.NoError(t, err)

		v := Valuate(*basis, decimal.RequireFromString("2000"))

		require.Equal(t, "4000.00", v.AssetValue.StringFixed(2))
		require.Equal(t, "1000.00", v.Gain.StringFixed(2))
	})

	t.Run("empty ledger degrades to zero everywhere", func(t *testing.T) {
		basis, err := CalculateCostBasis(nil)
		require.NoError(t, err)

		v := Valuate(*basis, decimal.RequireFromString("1500"))

		require.Equal(t, "0.00", v.Quantity.StringFixed(2))
		require.Equal(t, "0.00", v.AverageCost.StringFixed(2))
		require.Equal(t, "0.00", v.AssetValue.StringFixed(2))
		require.Equal(t, "0.00", v.Gain.StringFixed(2))
		require.Equal(t, "0.00", v.GainRate.StringFixed(2))
		require.True(t, v.ZeroBasis)
	})

	t.Run("zero-cost position keeps a zero gain rate at any price", func(t *testing.T) {
		basis := CostBasis{
			Quantity:    decimal.RequireFromString("5"),
			AverageCost: decimal.Zero,
		}

		for _, price := range []string{"0", "0.01", "99999.99"} {
			v := Valuate(basis, decimal.RequireFromString(price))
			require.Equal(t, "0.00", v.GainRate.StringFixed(2), "price %s", price)
			require.True(t, v.ZeroBasis)
		}
	})

	t.Run("losses round half up too", func(t *testing.T) {
		basis, err := CalculateCostBasis([]domain.TradeLog{
			newBuyLog(t, "100", "3"),
		})
		require.NoError(t, err)

		v := Valuate(*basis, decimal.RequireFromString("66.665"))

		// (66.665 - 100) * 3 = -100.005
		require.Equal(t, "-100.01", v.Gain.StringFixed(2))
	})
}

func TestSummarize(t *testing.T) {
	t.Run("total gain is the sum of per-holding gains", func(t *testing.T) {
		basisA, err := CalculateCostBasis([]domain.TradeLog{newBuyLog(t, "1000", "2")})
		require.NoError(t, err)
		basisB, err := CalculateCostBasis([]domain.TradeLog{newBuyLog(t, "50", "10")})
		require.NoError(t, err)

		valuations := []domain.Valuation{
			Valuate(*basisA, decimal.RequireFromString("1500")), // gain 1000
			Valuate(*basisB, decimal.RequireFromString("45")),   // gain -50
		}

		summary := Summarize(valuations)

		require.Equal(t, "950.00", summary.TotalGain.StringFixed(2))
		require.Equal(t, "3450.00", summary.TotalAssetValue.StringFixed(2))
		require.Equal(t, "2500.00", summary.TotalCostBasis.StringFixed(2))
		// 3450 / 2500 * 100 - 100
		require.Equal(t, "38.00", summary.TotalGainRate.StringFixed(2))
		require.False(t, summary.ZeroBasis)
	})

	t.Run("no holdings", func(t *testing.T) {
		summary := Summarize(nil)

		expected := domain.PortfolioSummary{
			TotalGain:       decimal.Zero,
			TotalGainRate:   decimal.Zero,
			TotalAssetValue: decimal.Zero,
			TotalCostBasis:  decimal.Zero,
			ZeroBasis:       true,
		}
		require.Empty(t, cmp.Diff(expected, summary, decimalComparer))
	})
}

func TestCombineSummaries(t *testing.T) {
	t.Run("recomputes the rate from combined totals", func(t *testing.T) {
		combined := CombineSummaries([]domain.PortfolioSummary{
			{
				TotalGain:       decimal.RequireFromString("1000"),
				TotalAssetValue: decimal.RequireFromString("3000"),
				TotalCostBasis:  decimal.RequireFromString("2000"),
			},
			{
				TotalGain:       decimal.RequireFromString("-500"),
				TotalAssetValue: decimal.RequireFromString("1500"),
				TotalCostBasis:  decimal.RequireFromString("2000"),
			},
		})

		require.Equal(t, "500.00", combined.TotalGain.StringFixed(2))
		// 4500 / 4000 * 100 - 100
		require.Equal(t, "12.50", combined.TotalGainRate.StringFixed(2))
	})

	t.Run("all empty portfolios stay zero", func(t *testing.T) {
		combined := CombineSummaries([]domain.PortfolioSummary{{}, {}})

		require.Equal(t, "0.00", combined.TotalGainRate.StringFixed(2))
		require.True(t, combined.ZeroBasis)
	})
}

package strategy

import (
	"testing"

	"stock-api/feature/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bars builds n chronological quotations for ticker with closes start, start+step, ...
func bars(ticker string, n int, start, step, volume float64) []models.Quotation {
	out := make([]models.Quotation, n)
	for i := range out {
		out[i] = models.Quotation{Ticker: ticker, Close: start + float64(i)*step, Volume: volume}
	}
	return out
}

func tickers(indicators []Indicator) []string {
	out := make([]string, len(indicators))
	for i, ind := range indicators {
		out[i] = ind.Ticker
	}
	return out
}

func fixture() ([]models.Fundamental, []models.Quotation) {
	fundamentals := []models.Fundamental{
		{Ticker: "AAAA3", ReturnOnInvestedCapital: 0.30, PriceToEarnings: 10, CAGR: 0.10},
		{Ticker: "BBBB3", ReturnOnInvestedCapital: 0.20, PriceToEarnings: 5, CAGR: 0.10},
		{Ticker: "CCCC3", ReturnOnInvestedCapital: 0.10, PriceToEarnings: 20, CAGR: 0.10},
	}
	var quotations []models.Quotation
	quotations = append(quotations, bars("AAAA3", 40, 10, 1, 200000)...)
	quotations = append(quotations, bars("BBBB3", 40, 50, -1, 200000)...)
	quotations = append(quotations, bars("CCCC3", 40, 20, 0.5, 200000)...)
	return fundamentals, quotations
}

func TestRank(t *testing.T) {
	t.Run("Combined Position", func(t *testing.T) {
		fundamentals, quotations := fixture()

		// ROIC positions A0 B1 C2, P/E positions B0 A1 C2 -> rates A1 B1 C4.
		// Equal rates keep the P/E order.
		got := Rank(fundamentals, quotations)
		require.Len(t, got, 4)
		assert.Equal(t, []string{"BBBB3", "AAAA3", "CCCC3", MarketTicker}, tickers(got))
		for i := 0; i < 3; i++ {
			require.NotNil(t, got[i].Rank)
			assert.Equal(t, i, *got[i].Rank)
		}
	})

	t.Run("Low CAGR Penalised", func(t *testing.T) {
		fundamentals, quotations := fixture()
		fundamentals[0].CAGR = 0.01

		got := Rank(fundamentals, quotations)
		assert.Equal(t, []string{"BBBB3", "CCCC3", "AAAA3", MarketTicker}, tickers(got))
	})

	t.Run("Negative Ratios Penalised", func(t *testing.T) {
		fundamentals, quotations := fixture()
		fundamentals[1].PriceToEarnings = -3

		got := Rank(fundamentals, quotations)
		assert.Equal(t, []string{"AAAA3", "CCCC3", "BBBB3", MarketTicker}, tickers(got))
	})

	t.Run("Short Volume History Penalised", func(t *testing.T) {
		fundamentals, quotations := fixture()
		// Drop one AAAA3 bar: 39 < VolumeWindow
		quotations = quotations[1:]

		got := Rank(fundamentals, quotations)
		assert.Equal(t, []string{"BBBB3", "CCCC3", "AAAA3", MarketTicker}, tickers(got))
	})

	t.Run("Thin Volume Penalised", func(t *testing.T) {
		fundamentals, quotations := fixture()
		for i := range quotations {
			if quotations[i].Ticker == "AAAA3" {
				quotations[i].Volume = 50000
			}
		}

		got := Rank(fundamentals, quotations)
		assert.Equal(t, "AAAA3", got[2].Ticker)
	})

	t.Run("Trends", func(t *testing.T) {
		fundamentals, quotations := fixture()

		trends := make(map[string]*float64)
		for _, ind := range Rank(fundamentals, quotations) {
			trends[ind.Ticker] = ind.Trend
		}
		assert.Equal(t, ptr(1), trends["AAAA3"])
		assert.Equal(t, ptr(-1), trends["BBBB3"])
		assert.Equal(t, ptr(1), trends["CCCC3"])
		assert.Nil(t, trends[MarketTicker])
	})

	t.Run("Ticker Without Quotations", func(t *testing.T) {
		fundamentals, quotations := fixture()
		fundamentals = append(fundamentals, models.Fundamental{Ticker: "DDDD3", ReturnOnInvestedCapital: 0.5, PriceToEarnings: 1, CAGR: 0.2})

		got := Rank(fundamentals, quotations)
		last := got[len(got)-2]
		assert.Equal(t, "DDDD3", last.Ticker)
		assert.Nil(t, last.Trend)
	})

	t.Run("Market Indicator", func(t *testing.T) {
		fundamentals, quotations := fixture()
		quotations = append(quotations, bars(MarketTicker, 100, 1000, -2, 0)...)

		got := Rank(fundamentals, quotations)
		market := got[len(got)-1]
		assert.Equal(t, MarketTicker, market.Ticker)
		assert.Nil(t, market.Rank)
		require.NotNil(t, market.Trend)
		assert.Equal(t, -1.0, *market.Trend)
	})

	t.Run("Empty", func(t *testing.T) {
		got := Rank(nil, nil)
		require.Len(t, got, 1)
		assert.Equal(t, Indicator{Ticker: MarketTicker}, got[0])
	})
}

func TestTrend(t *testing.T) {
	closes := func(n int, start, step float64) []float64 {
		out := make([]float64, n)
		for i := range out {
			out[i] = start + float64(i)*step
		}
		return out
	}

	tests := []struct {
		name   string
		closes []float64
		span   int
		want   *float64
	}{
		{"Empty", nil, TrendSpan, nil},
		{"Rising", closes(40, 10, 1), TrendSpan, ptr(1)},
		{"Falling", closes(40, 50, -1), TrendSpan, ptr(-1)},
		{"Flat", closes(40, 0, 0), TrendSpan, ptr(1)},
		{"Exactly Span Bars", closes(TrendSpan, 50, -1), TrendSpan, ptr(1)},
		{"Span Plus One Bars", closes(TrendSpan+1, 50, -1), TrendSpan, ptr(-1)},
		{"Late Reversal", append(closes(60, 10, 1), 0), TrendSpan, ptr(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Trend(tt.closes, tt.span))
		})
	}
}

func TestLastTwoEWM(t *testing.T) {
	// span 3 -> alpha 0.5, decay 0.5
	last, prev, ok := lastTwoEWM([]float64{1, 2, 3, 4}, 3)
	require.True(t, ok)
	// prev: (3 + 0.5*2 + 0.25*1) / 1.75
	assert.InDelta(t, 4.25/1.75, prev, 1e-12)
	// last: (4 + 0.5*3 + 0.25*2 + 0.125*1) / 1.875
	assert.InDelta(t, 6.125/1.875, last, 1e-12)

	_, _, ok = lastTwoEWM([]float64{1, 2, 3}, 3)
	assert.False(t, ok)
}

func TestAverageVolume(t *testing.T) {
	volumes := make([]float64, VolumeWindow+5)
	for i := range volumes {
		volumes[i] = float64(i)
	}
	// Last 40 values are 5..44
	assert.Equal(t, 24.5, averageVolume(volumes))
	assert.Equal(t, 0.0, averageVolume(volumes[:VolumeWindow-1]))
}

func ptr(v float64) *float64 {
	return &v
}

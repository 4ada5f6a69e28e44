package strategy

import (
	"sort"

	"stock-api/feature/database/models"
)

const (
	// MarketTicker is the index used as the market indicator.
	MarketTicker = "IBOV"
	// VolumeWindow is the number of most recent bars averaged for liquidity.
	VolumeWindow = 40
	// TrendSpan is the EWM span of the per-ticker trend.
	TrendSpan = 34
	// MarketSpan is the EWM span of the market trend.
	MarketSpan = 89
	// MinCAGR, MinVolume are the eligibility thresholds.
	MinCAGR   = 0.05
	MinVolume = 100000
)

// Indicator is one entry of the ranking. Rank is nil for the market
// indicator; Trend is nil when the ticker has no quotations.
type Indicator struct {
	Ticker string   `json:"ticker"`
	Rank   *int     `json:"rank"`
	Trend  *float64 `json:"trend"`
}

type candidate struct {
	fundamental models.Fundamental
	volume      float64
	rate        int
}

// Rank orders fundamentals by combined ROIC and P/E position, pushes
// ineligible tickers behind every eligible one, and appends the market
// indicator. Quotations must be in chronological order.
func Rank(fundamentals []models.Fundamental, quotations []models.Quotation) []Indicator {
	closes, volumes := groupByTicker(quotations)

	candidates := make([]candidate, len(fundamentals))
	order := make([]int, len(fundamentals))
	for i, f := range fundamentals {
		candidates[i] = candidate{fundamental: f, volume: averageVolume(volumes[f.Ticker])}
		order[i] = i
	}

	// Position by ROIC, highest first
	sort.SliceStable(order, func(a, b int) bool {
		return candidates[order[a]].fundamental.ReturnOnInvestedCapital > candidates[order[b]].fundamental.ReturnOnInvestedCapital
	})
	for pos, i := range order {
		candidates[i].rate = pos
	}

	// Position by P/E, lowest first
	sort.SliceStable(order, func(a, b int) bool {
		return candidates[order[a]].fundamental.PriceToEarnings < candidates[order[b]].fundamental.PriceToEarnings
	})
	for pos, i := range order {
		candidates[i].rate += pos
	}

	maxRate := 0
	for _, c := range candidates {
		if c.rate > maxRate {
			maxRate = c.rate
		}
	}
	for i := range candidates {
		if !candidates[i].eligible() {
			candidates[i].rate += maxRate + 1
		}
	}

	sort.SliceStable(order, func(a, b int) bool {
		return candidates[order[a]].rate < candidates[order[b]].rate
	})

	indicators := make([]Indicator, 0, len(order)+1)
	for rank, i := range order {
		ticker := candidates[i].fundamental.Ticker
		indicators = append(indicators, Indicator{
			Ticker: ticker,
			Rank:   intPtr(rank),
			Trend:  Trend(closes[ticker], TrendSpan),
		})
	}

	return append(indicators, Indicator{
		Ticker: MarketTicker,
		Trend:  Trend(closes[MarketTicker], MarketSpan),
	})
}

func (c candidate) eligible() bool {
	f := c.fundamental
	return f.CAGR > MinCAGR &&
		f.ReturnOnInvestedCapital > 0 &&
		f.PriceToEarnings > 0 &&
		c.volume > MinVolume
}

// Trend returns -1 when the exponentially weighted mean of closes fell on the
// last bar and 1 otherwise, including when history is shorter than span.
// It returns nil for an empty series.
func Trend(closes []float64, span int) *float64 {
	if len(closes) == 0 {
		return nil
	}

	trend := 1.0
	last, prev, ok := lastTwoEWM(closes, span)
	if ok && last-prev < 0 {
		trend = -1
	}
	return &trend
}

// lastTwoEWM computes the adjusted exponentially weighted mean at the last
// two positions. ok is false unless both positions have at least span
// observations.
func lastTwoEWM(values []float64, span int) (last, prev float64, ok bool) {
	n := len(values)
	if n < span+1 {
		return 0, 0, false
	}

	decay := 1 - 2/(float64(span)+1)
	var sum, weight float64
	for i, v := range values {
		sum = v + decay*sum
		weight = 1 + decay*weight
		if i == n-2 {
			prev = sum / weight
		}
	}
	return sum / weight, prev, true
}

// averageVolume is the mean of the last VolumeWindow volumes, or 0 when the
// series is shorter than the window.
func averageVolume(volumes []float64) float64 {
	if len(volumes) < VolumeWindow {
		return 0
	}
	var total float64
	for _, v := range volumes[len(volumes)-VolumeWindow:] {
		total += v
	}
	return total / VolumeWindow
}

func groupByTicker(quotations []models.Quotation) (closes, volumes map[string][]float64) {
	closes = make(map[string][]float64)
	volumes = make(map[string][]float64)
	for _, q := range quotations {
		closes[q.Ticker] = append(closes[q.Ticker], q.Close)
		volumes[q.Ticker] = append(volumes[q.Ticker], q.Volume)
	}
	return closes, volumes
}

func intPtr(v int) *int {
	return &v
}

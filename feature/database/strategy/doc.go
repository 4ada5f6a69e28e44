// Package strategy ranks tickers from their fundamentals and quotations.
//
// Each ticker gets its position when sorted by return on invested capital
// (descending) plus its position when sorted by price to earnings
// (ascending). Tickers that fail the quality filter (CAGR above 5%, positive
// ROIC and P/E, average volume over 100k across the last 40 bars) are pushed
// behind all eligible ones. The ranking is followed by the market indicator
// (IBOV), whose rank is always null.
//
// Trends compare the last two values of an exponentially weighted mean of the
// closing prices: span 34 for tickers, 89 for the market.
package strategy

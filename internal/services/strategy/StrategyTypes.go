package strategy

import (
	"SignalBot/internal/models"
)

// Signal values, uppercase canonical form. The backtest engine matches
// on these strings.
const (
	SignalHold       = "HOLD"
	SignalBuy        = "BUY"
	SignalSell       = "SELL"
	SignalStrongBuy  = "STRONG BUY"
	SignalStrongSell = "STRONG SELL"
)

// Signal strength annotations. Informational only - nothing downstream
// trades on them.
const (
	StrengthNeutral     = "NEUTRAL"
	StrengthBuy         = "BUY"
	StrengthSell        = "SELL"
	StrengthBullish     = "BULLISH"
	StrengthBearish     = "BEARISH"
	StrengthEMAMismatch = "EMA MISMATCH"
)

// Divergence annotations. Empty string means no divergence detected.
const (
	DivergenceBullish = "BULLISH"
	DivergenceBearish = "BEARISH"
)

// SignalRow is a price bar extended with the derived signal and its
// supporting indicator values. Bar fields pass through untouched.
type SignalRow struct {
	models.Price

	// Indicator suite
	RSI           float64 // NaN during warm-up
	EMAFast       float64
	EMASlow       float64
	MACD          float64
	MACDSignal    float64
	MACDHistogram float64

	// Derived signal
	Signal         string
	SignalStrength string
	Divergence     string

	// Enrichment pass (candlestick patterns, Bollinger Bands)
	Doji         int
	Hammer       int
	Engulfing    int
	ShootingStar int
	BBUpper      float64
	BBLower      float64
}

// Config holds the signal derivation parameters.
type Config struct {
	Period        int     // RSI lookback
	Oversold      float64 // RSI oversold threshold
	Overbought    float64 // RSI overbought threshold
	EMAFastPeriod int
	EMASlowPeriod int
}

// NewConfig returns the default derivation parameters.
func NewConfig() Config {
	return Config{
		Period:        14,
		Oversold:      30,
		Overbought:    70,
		EMAFastPeriod: 12,
		EMASlowPeriod: 26,
	}
}

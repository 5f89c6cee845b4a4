package strategy

import (
	"math"
	"sort"

	"SignalBot/internal/models"
	"SignalBot/internal/services/indicators"
)

// Smoothing period for the MACD signal line.
const macdSignalPeriod = 9

// RSIStrategy derives BUY/SELL/HOLD signals from RSI threshold
// crossovers filtered by EMA trend, with MACD agreement upgrading a
// trigger to its STRONG variant.
//
// The whole series is computed in one pass: crossover detection needs
// the prior bar's indicator values, so the input must be fully
// materialized.
type RSIStrategy struct {
	config Config

	rsi  *indicators.RSIService
	ema  *indicators.EMAService
	macd *indicators.MACDService
}

func NewRSIStrategy(config Config) *RSIStrategy {
	if config.Period <= 0 {
		config.Period = 14
	}
	if config.Oversold <= 0 {
		config.Oversold = 30
	}
	if config.Overbought <= 0 {
		config.Overbought = 70
	}
	if config.EMAFastPeriod <= 0 {
		config.EMAFastPeriod = 12
	}
	if config.EMASlowPeriod <= 0 {
		config.EMASlowPeriod = 26
	}
	return &RSIStrategy{
		config: config,
		rsi:    indicators.NewRSIService(),
		ema:    indicators.NewEMAService(),
		macd:   indicators.NewMACDService(),
	}
}

// Derive is the package-level entry point: one strategy instance per
// call, for callers that do not hold one.
func Derive(bars []models.Price, config Config) []SignalRow {
	return NewRSIStrategy(config).Analyze(bars)
}

// Analyze derives one SignalRow per input bar. Unsorted input is
// silently re-sorted by OpenTime; the caller's slice is never mutated.
// Empty input returns an empty slice, not an error.
func (s *RSIStrategy) Analyze(bars []models.Price) []SignalRow {
	if len(bars) == 0 {
		return []SignalRow{}
	}

	sorted := make([]models.Price, len(bars))
	copy(sorted, bars)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].OpenTime.Before(sorted[j].OpenTime)
	})

	closes := make([]float64, len(sorted))
	for i, b := range sorted {
		closes[i] = b.Close
	}

	rsi := s.rsi.Calculate(closes, s.config.Period)
	emaFast := s.ema.Calculate(closes, s.config.EMAFastPeriod)
	emaSlow := s.ema.Calculate(closes, s.config.EMASlowPeriod)
	macd := s.macd.Calculate(closes, s.config.EMAFastPeriod, s.config.EMASlowPeriod, macdSignalPeriod)

	rows := make([]SignalRow, len(sorted))
	for i, b := range sorted {
		rows[i] = SignalRow{
			Price:          b,
			RSI:            rsi[i],
			EMAFast:        emaFast[i],
			EMASlow:        emaSlow[i],
			MACD:           macd.MACD[i],
			MACDSignal:     macd.Signal[i],
			MACDHistogram:  macd.Histogram[i],
			Signal:         SignalHold,
			SignalStrength: StrengthNeutral,
		}
	}

	for i := 1; i < len(rows); i++ {
		prevRSI, curRSI := rsi[i-1], rsi[i]
		// Warm-up rows can never trigger
		if math.IsNaN(prevRSI) || math.IsNaN(curRSI) {
			continue
		}

		crossUp := prevRSI < s.config.Oversold && curRSI >= s.config.Oversold
		crossDown := prevRSI > s.config.Overbought && curRSI <= s.config.Overbought
		uptrend := emaFast[i] > emaSlow[i]
		downtrend := emaFast[i] < emaSlow[i]

		macdCrossUp := macd.MACD[i-1] < macd.Signal[i-1] && macd.MACD[i] > macd.Signal[i]
		macdCrossDown := macd.MACD[i-1] > macd.Signal[i-1] && macd.MACD[i] < macd.Signal[i]

		switch {
		case crossUp && uptrend:
			rows[i].Signal = SignalBuy
			rows[i].SignalStrength = StrengthBuy
			if macdCrossUp {
				rows[i].Signal = SignalStrongBuy
				rows[i].SignalStrength = StrengthBullish
			}
		case crossDown && downtrend:
			rows[i].Signal = SignalSell
			rows[i].SignalStrength = StrengthSell
			if macdCrossDown {
				rows[i].Signal = SignalStrongSell
				rows[i].SignalStrength = StrengthBearish
			}
		}
	}

	s.flagDivergence(rows, closes, rsi)

	return rows
}

// flagDivergence marks bars where two consecutive higher prices meet
// two consecutive lower RSI values (bearish) or the mirror (bullish).
// Informational only - it never gates a signal. NaN RSI rows compare
// false and so never flag.
func (s *RSIStrategy) flagDivergence(rows []SignalRow, closes, rsi []float64) {
	for i := 2; i < len(rows); i++ {
		higherHigh := closes[i] > closes[i-1] && closes[i-1] > closes[i-2]
		lowerRSI := rsi[i] < rsi[i-1] && rsi[i-1] < rsi[i-2]

		lowerLow := closes[i] < closes[i-1] && closes[i-1] < closes[i-2]
		higherRSI := rsi[i] > rsi[i-1] && rsi[i-1] > rsi[i-2]

		if higherHigh && lowerRSI {
			rows[i].Divergence = DivergenceBearish
		} else if lowerLow && higherRSI {
			rows[i].Divergence = DivergenceBullish
		}
	}
}

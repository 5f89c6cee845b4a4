package price

import (
	"math"
	"math/rand"
	"time"

	"SignalBot/internal/models"
)

// SyntheticSeed makes offline datasets reproducible across runs.
const SyntheticSeed = 42

// GenerateSynthetic builds a pseudo-random OHLCV series so the
// pipeline can operate without market access. The generator is
// deterministic for a fixed seed: a geometric random walk around a
// 30k base price with log-normal volume.
func GenerateSynthetic(symbol, timeframe string, lookbackDays int, seed int64) []models.Price {
	step, ok := intervalDurations[timeframe]
	if !ok {
		step = 4 * time.Hour
	}
	if lookbackDays < 1 {
		lookbackDays = 1
	}

	totalMinutes := float64(lookbackDays) * 24 * 60
	stepMinutes := math.Max(step.Minutes(), 1)
	periods := int(math.Ceil(totalMinutes / stepMinutes))
	if periods < 60 {
		periods = 60
	}

	rng := rand.New(rand.NewSource(seed))
	basePrice := 30000.0

	end := time.Now().UTC().Truncate(time.Minute)
	start := end.Add(-time.Duration(periods-1) * step)

	closes := make([]float64, periods)
	logPrice := math.Log(basePrice)
	for i := 0; i < periods; i++ {
		drift := 0.0001 + rng.NormFloat64()*0.0005
		volatility := rng.NormFloat64() * 0.008
		logPrice += drift + volatility
		closes[i] = math.Exp(logPrice)
	}

	bars := make([]models.Price, periods)
	for i := 0; i < periods; i++ {
		var open float64
		if i == 0 {
			open = closes[0] * (1 + rng.NormFloat64()*0.002)
		} else {
			open = closes[i-1]
		}
		close := closes[i]

		body := math.Abs(close - open)
		wick := math.Max(body, basePrice*rng.Float64()*0.01)
		high := math.Max(open, close) + wick
		low := math.Max(0.01, math.Min(open, close)-wick)

		volume := math.Exp(12 + rng.NormFloat64()*0.35)

		openTime := start.Add(time.Duration(i) * step)
		bars[i] = models.Price{
			Symbol:    symbol,
			TimeFrame: timeframe,
			OpenTime:  openTime,
			CloseTime: openTime.Add(step),
			Open:      open,
			High:      high,
			Low:       low,
			Close:     close,
			Volume:    volume,
		}
	}

	return bars
}

package indicators

import "math"

// RSIService computes Wilder's Relative Strength Index over a whole
// price series. Values are bounded 0-100; the first `period` rows are
// NaN because the smoothed averages have not seen enough deltas yet.
type RSIService struct{}

// NewRSIService creates a new RSI service instance
func NewRSIService() *RSIService {
	return &RSIService{}
}

// Calculate computes RSI with Wilder smoothing (alpha = 1/period).
// The averages are seeded from the first price delta and updated
// recursively; rows before the warm-up window stay NaN so callers can
// tell "no value yet" apart from a real reading.
func (s *RSIService) Calculate(prices []float64, period int) []float64 {
	if len(prices) == 0 || period <= 0 {
		return nil
	}

	rsi := make([]float64, len(prices))
	for i := range rsi {
		rsi[i] = math.NaN()
	}
	if len(prices) < 2 {
		return rsi
	}

	alpha := 1.0 / float64(period)
	var avgGain, avgLoss float64

	for i := 1; i < len(prices); i++ {
		delta := prices[i] - prices[i-1]
		gain, loss := 0.0, 0.0
		if delta > 0 {
			gain = delta
		} else {
			loss = -delta
		}

		if i == 1 {
			avgGain = gain
			avgLoss = loss
		} else {
			avgGain = avgGain + alpha*(gain-avgGain)
			avgLoss = avgLoss + alpha*(loss-avgLoss)
		}

		if i < period {
			continue
		}
		if avgLoss == 0 {
			rsi[i] = 100
		} else {
			rs := avgGain / avgLoss
			rsi[i] = 100 - (100 / (1 + rs))
		}
	}

	return rsi
}

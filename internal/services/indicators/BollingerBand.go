package indicators

import "math"

type BBandsService struct{}

type BBandsResult struct {
	Upper  []float64
	Middle []float64
	Lower  []float64
	Width  []float64 // Volatility indicator
}

func NewBBandsService() *BBandsService {
	return &BBandsService{}
}

// Calculate computes upper/middle/lower Bollinger Bands over a rolling
// window. Rows before a full window are NaN, matching the RSI warm-up
// convention. Standard deviation is the population form (ddof=0).
func (s *BBandsService) Calculate(prices []float64, period int, deviations float64) *BBandsResult {
	if len(prices) == 0 || period <= 0 {
		return nil
	}

	upper := make([]float64, len(prices))
	middle := make([]float64, len(prices))
	lower := make([]float64, len(prices))
	width := make([]float64, len(prices))
	for i := 0; i < period-1 && i < len(prices); i++ {
		upper[i] = math.NaN()
		middle[i] = math.NaN()
		lower[i] = math.NaN()
		width[i] = math.NaN()
	}

	for i := period - 1; i < len(prices); i++ {
		window := prices[i-period+1 : i+1]

		sum := 0.0
		for _, price := range window {
			sum += price
		}
		sma := sum / float64(period)
		middle[i] = sma

		squareSum := 0.0
		for _, price := range window {
			diff := price - sma
			squareSum += diff * diff
		}
		stdDev := math.Sqrt(squareSum / float64(period))

		upper[i] = sma + (deviations * stdDev)
		lower[i] = sma - (deviations * stdDev)
		width[i] = (upper[i] - lower[i]) / middle[i]
	}

	return &BBandsResult{
		Upper:  upper,
		Middle: middle,
		Lower:  lower,
		Width:  width,
	}
}

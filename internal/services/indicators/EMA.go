package indicators

// EMAService provides Exponential Moving Average calculations
type EMAService struct{}

// NewEMAService creates a new EMA service instance
func NewEMAService() *EMAService {
	return &EMAService{}
}

// Calculate computes EMA for the entire price series. The first value
// seeds the average, so the output is defined for every input row.
func (s *EMAService) Calculate(prices []float64, period int) []float64 {
	if len(prices) == 0 || period <= 0 {
		return nil
	}

	multiplier := s.getMultiplier(period)

	ema := make([]float64, len(prices))
	ema[0] = prices[0]
	for i := 1; i < len(prices); i++ {
		ema[i] = s.calculatePoint(prices[i], ema[i-1], multiplier)
	}
	return ema
}

// CalculateOne advances a running EMA by a single price
func (s *EMAService) CalculateOne(price, prevEMA float64, period int) float64 {
	return s.calculatePoint(price, prevEMA, s.getMultiplier(period))
}

func (s *EMAService) getMultiplier(period int) float64 {
	return 2.0 / float64(period+1)
}

func (s *EMAService) calculatePoint(price, prevEMA, multiplier float64) float64 {
	return (price-prevEMA)*multiplier + prevEMA
}

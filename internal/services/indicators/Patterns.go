package indicators

import (
	"math"

	"SignalBot/internal/models"
)

// PatternService detects simple single- and two-candle reversal
// patterns. Results are int-coded per bar: 1 when the pattern is
// present (engulfing also uses -1 for the bearish form), 0 otherwise.
type PatternService struct{}

func NewPatternService() *PatternService {
	return &PatternService{}
}

// Doji flags candles whose body is at most bodyRatio of the full range.
func (s *PatternService) Doji(bars []models.Price, bodyRatio float64) []int {
	out := make([]int, len(bars))
	for i, b := range bars {
		candleRange := b.High - b.Low
		if candleRange <= 0 {
			continue
		}
		body := math.Abs(b.Close - b.Open)
		if body <= candleRange*bodyRatio {
			out[i] = 1
		}
	}
	return out
}

// Hammer flags candles with a small body near the high and a lower
// shadow at least shadowRatio times the body.
func (s *PatternService) Hammer(bars []models.Price, shadowRatio float64) []int {
	out := make([]int, len(bars))
	for i, b := range bars {
		candleRange := b.High - b.Low
		if candleRange <= 0 {
			continue
		}
		body := math.Abs(b.Close - b.Open)
		upperShadow := b.High - math.Max(b.Open, b.Close)
		lowerShadow := math.Min(b.Open, b.Close) - b.Low

		nearHigh := upperShadow <= body
		longLowerShadow := lowerShadow >= shadowRatio*body
		smallBody := body <= candleRange*0.3
		if nearHigh && longLowerShadow && smallBody {
			out[i] = 1
		}
	}
	return out
}

// ShootingStar is the mirror of Hammer: small body near the low with a
// long upper shadow.
func (s *PatternService) ShootingStar(bars []models.Price, shadowRatio float64) []int {
	out := make([]int, len(bars))
	for i, b := range bars {
		candleRange := b.High - b.Low
		if candleRange <= 0 {
			continue
		}
		body := math.Abs(b.Close - b.Open)
		upperShadow := b.High - math.Max(b.Open, b.Close)
		lowerShadow := math.Min(b.Open, b.Close) - b.Low

		nearLow := lowerShadow <= body
		longUpperShadow := upperShadow >= shadowRatio*body
		smallBody := body <= candleRange*0.3
		if nearLow && longUpperShadow && smallBody {
			out[i] = 1
		}
	}
	return out
}

// Engulfing flags candles whose body fully engulfs the previous body:
// 1 for bullish, -1 for bearish, 0 for neither.
func (s *PatternService) Engulfing(bars []models.Price) []int {
	out := make([]int, len(bars))
	for i := 1; i < len(bars); i++ {
		cur, prev := bars[i], bars[i-1]

		bullish := cur.Close > cur.Open &&
			prev.Close < prev.Open &&
			cur.Close >= prev.Open &&
			cur.Open <= prev.Close

		bearish := cur.Close < cur.Open &&
			prev.Close > prev.Open &&
			cur.Open >= prev.Close &&
			cur.Close <= prev.Open

		if bullish {
			out[i] = 1
		} else if bearish {
			out[i] = -1
		}
	}
	return out
}

package indicators

import (
	"math"
	"testing"
)

func TestMACDCalculateConstantSeries(t *testing.T) {
	svc := NewMACDService()

	prices := make([]float64, 40)
	for i := range prices {
		prices[i] = 100
	}

	res := svc.Calculate(prices, 12, 26, 9)
	if res == nil {
		t.Fatal("got nil result")
	}
	for i := range prices {
		if res.MACD[i] != 0 || res.Signal[i] != 0 || res.Histogram[i] != 0 {
			t.Errorf("row %d: constant prices should give zero MACD, got %v/%v/%v",
				i, res.MACD[i], res.Signal[i], res.Histogram[i])
		}
	}
}

func TestMACDCalculateDefinedFromFirstRow(t *testing.T) {
	svc := NewMACDService()
	prices := []float64{100, 102, 101, 105, 104, 108, 107, 110}

	res := svc.Calculate(prices, 12, 26, 9)
	if len(res.MACD) != len(prices) || len(res.Signal) != len(prices) || len(res.Histogram) != len(prices) {
		t.Fatalf("series length mismatch: %d/%d/%d vs %d input",
			len(res.MACD), len(res.Signal), len(res.Histogram), len(prices))
	}
	for i := range prices {
		if math.IsNaN(res.MACD[i]) || math.IsNaN(res.Signal[i]) || math.IsNaN(res.Histogram[i]) {
			t.Errorf("row %d: unexpected NaN", i)
		}
	}
}

func TestMACDHistogramIdentity(t *testing.T) {
	svc := NewMACDService()
	prices := []float64{30, 32, 31, 35, 38, 36, 40, 42, 39, 44, 45, 43}

	res := svc.Calculate(prices, 3, 6, 4)
	for i := range prices {
		want := res.MACD[i] - res.Signal[i]
		if math.Abs(res.Histogram[i]-want) > 1e-12 {
			t.Errorf("row %d: histogram %v != macd-signal %v", i, res.Histogram[i], want)
		}
	}
}

func TestMACDCalculateDegenerateInput(t *testing.T) {
	svc := NewMACDService()

	if got := svc.Calculate(nil, 12, 26, 9); got != nil {
		t.Errorf("empty input: got %v, want nil", got)
	}
	if got := svc.Calculate([]float64{1, 2}, 0, 26, 9); got != nil {
		t.Errorf("bad fast period: got %v, want nil", got)
	}
	if got := svc.Calculate([]float64{1, 2}, 12, 26, -1); got != nil {
		t.Errorf("bad signal period: got %v, want nil", got)
	}
}

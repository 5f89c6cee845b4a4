package indicators

import (
	"math"
	"testing"
)

func TestBBandsCalculate(t *testing.T) {
	svc := NewBBandsService()

	res := svc.Calculate([]float64{1, 2, 3, 4}, 3, 2)
	if res == nil {
		t.Fatal("got nil result")
	}

	for i := 0; i < 2; i++ {
		if !math.IsNaN(res.Middle[i]) || !math.IsNaN(res.Upper[i]) || !math.IsNaN(res.Lower[i]) {
			t.Errorf("row %d should be NaN before a full window", i)
		}
	}

	// window [1,2,3]: sma 2, population stddev sqrt(2/3)
	std := math.Sqrt(2.0 / 3.0)
	checks := []struct {
		name string
		got  float64
		want float64
	}{
		{"middle[2]", res.Middle[2], 2},
		{"upper[2]", res.Upper[2], 2 + 2*std},
		{"lower[2]", res.Lower[2], 2 - 2*std},
		{"middle[3]", res.Middle[3], 3},
	}
	for _, c := range checks {
		if math.Abs(c.got-c.want) > 1e-9 {
			t.Errorf("%s = %v, want %v", c.name, c.got, c.want)
		}
	}
}

func TestBBandsCalculateConstantSeries(t *testing.T) {
	svc := NewBBandsService()

	res := svc.Calculate([]float64{10, 10, 10, 10, 10}, 3, 2)
	for i := 2; i < 5; i++ {
		if res.Upper[i] != 10 || res.Lower[i] != 10 || res.Width[i] != 0 {
			t.Errorf("row %d: constant series should have collapsed bands, got upper %v lower %v width %v",
				i, res.Upper[i], res.Lower[i], res.Width[i])
		}
	}
}

func TestBBandsCalculateDegenerateInput(t *testing.T) {
	svc := NewBBandsService()

	if got := svc.Calculate(nil, 20, 2); got != nil {
		t.Errorf("empty input: got %v, want nil", got)
	}
	if got := svc.Calculate([]float64{1, 2}, 0, 2); got != nil {
		t.Errorf("non-positive period: got %v, want nil", got)
	}
}

package strategy

import (
	"math"
	"testing"
)

func risingRows(n int) []SignalRow {
	rows := make([]SignalRow, n)
	bars := hourlyBars(seq(100, 1, n)...)
	for i := range rows {
		rows[i] = SignalRow{
			Price:          bars[i],
			Signal:         SignalHold,
			SignalStrength: StrengthNeutral,
		}
	}
	return rows
}

func fallingRows(n int) []SignalRow {
	rows := make([]SignalRow, n)
	bars := hourlyBars(seq(100, -1, n)...)
	for i := range rows {
		rows[i] = SignalRow{
			Price:          bars[i],
			Signal:         SignalHold,
			SignalStrength: StrengthNeutral,
		}
	}
	return rows
}

func seq(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func TestEnrichEmpty(t *testing.T) {
	e := NewEnricher()
	if got := e.Enrich([]SignalRow{}); len(got) != 0 {
		t.Fatalf("expected empty result, got %d rows", len(got))
	}
}

func TestEnrichDemotesMismatchedBuy(t *testing.T) {
	e := NewEnricher()

	rows := fallingRows(25)
	rows[24].Signal = SignalBuy
	rows[24].SignalStrength = StrengthBuy

	rows = e.Enrich(rows)

	if rows[24].Signal != SignalHold {
		t.Errorf("signal = %q, want HOLD after trend mismatch", rows[24].Signal)
	}
	if rows[24].SignalStrength != StrengthEMAMismatch {
		t.Errorf("strength = %q, want %q", rows[24].SignalStrength, StrengthEMAMismatch)
	}
}

func TestEnrichKeepsAlignedBuy(t *testing.T) {
	e := NewEnricher()

	rows := risingRows(25)
	rows[24].Signal = SignalStrongBuy
	rows[24].SignalStrength = StrengthBullish

	rows = e.Enrich(rows)

	if rows[24].Signal != SignalStrongBuy {
		t.Errorf("aligned signal was demoted to %q", rows[24].Signal)
	}
}

func TestEnrichPromotesNeutralHold(t *testing.T) {
	e := NewEnricher()

	rows := e.Enrich(risingRows(25))
	if rows[24].Signal != SignalHold {
		t.Errorf("hold row changed signal to %q", rows[24].Signal)
	}
	if rows[24].SignalStrength != StrengthBullish {
		t.Errorf("strength = %q, want %q in an uptrend", rows[24].SignalStrength, StrengthBullish)
	}

	rows = e.Enrich(fallingRows(25))
	if rows[24].SignalStrength != StrengthBearish {
		t.Errorf("strength = %q, want %q in a downtrend", rows[24].SignalStrength, StrengthBearish)
	}
}

func TestEnrichPopulatesIndicatorFields(t *testing.T) {
	e := NewEnricher()

	rows := e.Enrich(risingRows(25))

	// Bollinger window is 20 bars: NaN before, defined after.
	if !math.IsNaN(rows[5].BBUpper) {
		t.Errorf("BBUpper[5] = %v, want NaN before a full window", rows[5].BBUpper)
	}
	if math.IsNaN(rows[24].BBUpper) || math.IsNaN(rows[24].BBLower) {
		t.Error("Bollinger bands undefined after a full window")
	}
	if !(rows[24].EMAFast > rows[24].EMASlow) {
		t.Errorf("rising series should have fast EMA above slow: %v vs %v",
			rows[24].EMAFast, rows[24].EMASlow)
	}
}

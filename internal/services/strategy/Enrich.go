package strategy

import (
	"SignalBot/internal/models"
	"SignalBot/internal/services/indicators"
)

// Enricher decorates derived signal rows with candlestick patterns and
// Bollinger Bands, then re-checks every trigger against a second,
// tighter EMA pair. Triggers that disagree with that trend are demoted
// back to HOLD with strength "EMA MISMATCH".
type Enricher struct {
	fastPeriod int
	slowPeriod int
	bbPeriod   int
	bbDev      float64

	ema      *indicators.EMAService
	bbands   *indicators.BBandsService
	patterns *indicators.PatternService
}

func NewEnricher() *Enricher {
	return &Enricher{
		fastPeriod: 9,
		slowPeriod: 21,
		bbPeriod:   20,
		bbDev:      2.0,
		ema:        indicators.NewEMAService(),
		bbands:     indicators.NewBBandsService(),
		patterns:   indicators.NewPatternService(),
	}
}

// Enrich mutates rows in place and returns them for chaining. The
// EMAFast/EMASlow fields are overwritten with the enrichment pair.
func (e *Enricher) Enrich(rows []SignalRow) []SignalRow {
	if len(rows) == 0 {
		return rows
	}

	prices := make([]float64, len(rows))
	ohlc := make([]models.Price, len(rows))
	for i, r := range rows {
		prices[i] = r.Close
		ohlc[i] = r.Price
	}

	doji := e.patterns.Doji(ohlc, 0.1)
	hammer := e.patterns.Hammer(ohlc, 2.0)
	engulfing := e.patterns.Engulfing(ohlc)
	shootingStar := e.patterns.ShootingStar(ohlc, 2.0)

	bb := e.bbands.Calculate(prices, e.bbPeriod, e.bbDev)
	emaFast := e.ema.Calculate(prices, e.fastPeriod)
	emaSlow := e.ema.Calculate(prices, e.slowPeriod)

	for i := range rows {
		rows[i].Doji = doji[i]
		rows[i].Hammer = hammer[i]
		rows[i].Engulfing = engulfing[i]
		rows[i].ShootingStar = shootingStar[i]
		rows[i].BBUpper = bb.Upper[i]
		rows[i].BBLower = bb.Lower[i]
		rows[i].EMAFast = emaFast[i]
		rows[i].EMASlow = emaSlow[i]

		bull := emaFast[i] > emaSlow[i]
		bear := emaFast[i] < emaSlow[i]

		switch rows[i].Signal {
		case SignalBuy, SignalStrongBuy:
			if !bull {
				rows[i].Signal = SignalHold
				rows[i].SignalStrength = StrengthEMAMismatch
			}
		case SignalSell, SignalStrongSell:
			if !bear {
				rows[i].Signal = SignalHold
				rows[i].SignalStrength = StrengthEMAMismatch
			}
		}

		if rows[i].Signal == SignalHold && rows[i].SignalStrength == StrengthNeutral {
			if bull {
				rows[i].SignalStrength = StrengthBullish
			} else if bear {
				rows[i].SignalStrength = StrengthBearish
			}
		}
	}

	return rows
}

// backtest/engine.go

package backtest

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"SignalBot/internal/services/strategy"
)

// ErrInvalidBalance is returned before any replay step when the
// configured initial balance is not strictly positive.
var ErrInvalidBalance = errors.New("initial balance must be > 0")

// Engine replays a signal-annotated series as a long-only, single-
// position trade simulator. A run is pure: no I/O, no shared state,
// identical inputs produce identical results.
type Engine struct {
	config  Config
	buySet  map[string]bool
	sellSet map[string]bool
}

// longPosition is the LONG arm of the position state machine. The
// engine holds at most one; a nil pointer means FLAT.
type longPosition struct {
	qty        float64
	entryPrice float64
	entryTime  time.Time
}

// NewEngine builds an engine from config. Empty signal sets fall back
// to the defaults (an empty set could never trade); numeric fields
// pass through unchanged, since zero friction is a valid setting and
// a non-positive balance is a defined Run error.
func NewEngine(config Config) *Engine {
	if len(config.BuySignals) == 0 {
		config.BuySignals = []string{strategy.SignalBuy, strategy.SignalStrongBuy}
	}
	if len(config.SellSignals) == 0 {
		config.SellSignals = []string{strategy.SignalSell, strategy.SignalStrongSell}
	}
	return &Engine{
		config:  config,
		buySet:  signalSet(config.BuySignals),
		sellSet: signalSet(config.SellSignals),
	}
}

func signalSet(signals []string) map[string]bool {
	set := make(map[string]bool, len(signals))
	for _, s := range signals {
		set[strings.ToUpper(s)] = true
	}
	return set
}

// Run replays the series bar-by-bar in timestamp order and returns the
// summary metrics, the trade ledger, and the equity curve.
//
// Empty input is a defined terminal case (zeroed metrics, empty ledger
// and curve). A non-positive close price fails the whole run: no
// partial ledger is ever returned.
func (e *Engine) Run(rows []strategy.SignalRow) (*Result, error) {
	if e.config.InitialBalance <= 0 {
		return nil, ErrInvalidBalance
	}

	if len(rows) == 0 {
		return &Result{
			Metrics:     e.emptyMetrics(),
			Trades:      []Trade{},
			EquityCurve: []EquityPoint{},
		}, nil
	}

	// Replay order is timestamp order, not caller order. Sort a copy
	// so the caller's slice is never reordered.
	sorted := make([]strategy.SignalRow, len(rows))
	copy(sorted, rows)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].OpenTime.Before(sorted[j].OpenTime)
	})
	rows = sorted

	cash := e.config.InitialBalance
	var open *longPosition

	trades := make([]Trade, 0)
	pnls := make([]float64, 0) // decimal fractions, not percent

	equityCurve := make([]EquityPoint, 0, len(rows))
	peakEquity := cash
	maxDrawdown := 0.0

	for i := range rows {
		row := &rows[i]
		price := row.Close
		if price <= 0 {
			return nil, fmt.Errorf("bar %d (%s): close price must be positive for backtesting",
				i, row.OpenTime.Format("2006-01-02 15:04:05"))
		}
		signal := strings.ToUpper(row.Signal)

		if open == nil && e.buySet[signal] {
			// Open LONG: commission off cash, slippage widens the fill
			// upward, remainder after sizing sweeps back to cash.
			commissionFee := cash * e.config.Commission
			cashAfterFee := cash - commissionFee
			fillPrice := price * (1 + e.config.Slippage)
			qty := cashAfterFee / fillPrice
			cash = cashAfterFee - qty*fillPrice
			open = &longPosition{qty: qty, entryPrice: fillPrice, entryTime: row.OpenTime}
		} else if open != nil && e.sellSet[signal] {
			cash += e.closeLong(open, price, row.OpenTime, &trades, &pnls)
			open = nil
		}

		// Mark-to-market uses the raw close, not the slipped fill.
		equity := cash
		if open != nil {
			equity += open.qty * price
		}
		equityCurve = append(equityCurve, EquityPoint{Timestamp: row.OpenTime, Equity: equity})

		if equity > peakEquity {
			peakEquity = equity
		}
		if peakEquity != 0 {
			drawdown := (equity - peakEquity) / peakEquity
			if drawdown < maxDrawdown {
				maxDrawdown = drawdown
			}
		}
	}

	// Forced liquidation: a position still open after the last bar is
	// closed at that bar's close with the usual slippage/commission,
	// and the final equity point becomes the post-liquidation cash.
	if open != nil {
		last := rows[len(rows)-1]
		cash += e.closeLong(open, last.Close, last.OpenTime, &trades, &pnls)
		open = nil
		equityCurve[len(equityCurve)-1].Equity = cash
	}

	metrics := e.computeMetrics(cash, maxDrawdown, trades, pnls, rows)

	return &Result{
		Metrics:     metrics,
		Trades:      trades,
		EquityCurve: equityCurve,
	}, nil
}

// closeLong sells the whole position at the bar's close, appends the
// finished trade, and returns the net proceeds to add back to cash.
func (e *Engine) closeLong(pos *longPosition, price float64, exitTime time.Time, trades *[]Trade, pnls *[]float64) float64 {
	fillPrice := price * (1 - e.config.Slippage)
	grossProceeds := pos.qty * fillPrice
	commissionFee := grossProceeds * e.config.Commission

	pnl := (fillPrice - pos.entryPrice) / pos.entryPrice
	*pnls = append(*pnls, pnl)
	*trades = append(*trades, Trade{
		EntryTime:   pos.entryTime,
		ExitTime:    exitTime,
		EntryPrice:  pos.entryPrice,
		ExitPrice:   fillPrice,
		PnLPct:      pnl * 100,
		DurationHrs: exitTime.Sub(pos.entryTime).Hours(),
	})

	return grossProceeds - commissionFee
}

func (e *Engine) emptyMetrics() Metrics {
	return Metrics{
		InitialBalance: e.config.InitialBalance,
		FinalBalance:   e.config.InitialBalance,
	}
}

// computeMetrics derives the aggregate record from the finished ledger
// and final cash. Zero P&L counts as a loss for win/loss partitioning.
// Ratio metrics never produce NaN: an empty denominator class resolves
// to 0 or the unbounded sentinel.
func (e *Engine) computeMetrics(finalCash, maxDrawdown float64, trades []Trade, pnls []float64, rows []strategy.SignalRow) Metrics {
	m := e.emptyMetrics()
	m.FinalBalance = finalCash
	m.NetReturn = (finalCash/e.config.InitialBalance - 1) * 100
	m.MaxDrawdown = maxDrawdown * 100
	m.TotalTrades = len(pnls)

	if len(pnls) == 0 {
		return m
	}

	var wins, losses []float64
	var sumWins, sumLosses float64
	best, worst := pnls[0], pnls[0]
	for _, p := range pnls {
		if p > 0 {
			wins = append(wins, p)
			sumWins += p
		} else {
			losses = append(losses, p)
			sumLosses += p
		}
		if p > best {
			best = p
		}
		if p < worst {
			worst = p
		}
	}

	m.WinRate = float64(len(wins)) / float64(len(pnls)) * 100
	if len(wins) > 0 {
		m.AvgGain = mean(wins) * 100
	}
	if len(losses) > 0 {
		m.AvgLoss = mean(losses) * 100
	}

	switch {
	case len(losses) > 0 && sumLosses != 0:
		m.ProfitFactor = Ratio{Value: math.Abs(sumWins / sumLosses)}
	case len(wins) > 0:
		m.ProfitFactor = Ratio{Unbounded: true}
	}

	switch {
	case len(losses) > 0:
		m.WinLossRatio = Ratio{Value: float64(len(wins)) / float64(len(losses))}
	case len(wins) > 0:
		m.WinLossRatio = Ratio{Unbounded: true}
	}

	for _, p := range pnls {
		if p > 0 {
			m.GrossGain += p * 100
		} else if p < 0 {
			m.GrossLoss += -p * 100
		}
	}
	m.BestTrade = best * 100
	m.WorstTrade = worst * 100

	durations := make([]float64, len(trades))
	var totalHeld float64
	for i, t := range trades {
		durations[i] = t.DurationHrs
		totalHeld += t.DurationHrs
	}
	m.AvgHoldHours = mean(durations)
	m.MedianHoldHours = median(durations)

	span := rows[len(rows)-1].OpenTime.Sub(rows[0].OpenTime).Hours()
	if span > 0 {
		m.ExposurePct = totalHeld / span * 100
	}

	return m
}

func mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

func median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

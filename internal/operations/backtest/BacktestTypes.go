// backtest/types.go

package backtest

import (
	"encoding/json"
	"math"
	"strconv"
	"time"

	"SignalBot/internal/services/strategy"
)

// Trade is one closed round-trip. Open positions never appear here
// until they close (the final bar force-closes any remainder).
type Trade struct {
	EntryTime   time.Time `json:"entry_time"`
	ExitTime    time.Time `json:"exit_time"`
	EntryPrice  float64   `json:"entry_price"`
	ExitPrice   float64   `json:"exit_price"`
	PnLPct      float64   `json:"pnl_pct"`
	DurationHrs float64   `json:"duration_hrs"`
}

// EquityPoint is the account value after processing one bar: cash plus
// any position marked at the bar's raw close.
type EquityPoint struct {
	Timestamp time.Time `json:"timestamp"`
	Equity    float64   `json:"equity"`
}

// Ratio is a ratio metric that may be unbounded (wins with zero
// losses). The explicit flag keeps serialized output free of raw
// float infinity, which JSON cannot represent.
type Ratio struct {
	Value     float64 `json:"value"`
	Unbounded bool    `json:"unbounded,omitempty"`
}

// Float flattens the ratio for numeric consumers; unbounded becomes
// positive infinity.
func (r Ratio) Float() float64 {
	if r.Unbounded {
		return math.Inf(1)
	}
	return r.Value
}

// MarshalJSON emits the string "inf" for unbounded ratios and a plain
// number otherwise.
func (r Ratio) MarshalJSON() ([]byte, error) {
	if r.Unbounded {
		return json.Marshal("inf")
	}
	return json.Marshal(r.Value)
}

// String renders the ratio for text columns and log output.
func (r Ratio) String() string {
	if r.Unbounded {
		return "inf"
	}
	return strconv.FormatFloat(r.Value, 'f', -1, 64)
}

// Metrics is the fixed-shape summary computed once after replay. All
// fields are present even when zero-valued.
type Metrics struct {
	TotalTrades     int     `json:"total_trades"`
	WinRate         float64 `json:"win_rate"`
	AvgGain         float64 `json:"avg_gain"`
	AvgLoss         float64 `json:"avg_loss"`
	ProfitFactor    Ratio   `json:"profit_factor"`
	NetReturn       float64 `json:"net_return"`
	MaxDrawdown     float64 `json:"max_drawdown"`
	FinalBalance    float64 `json:"final_balance"`
	GrossGain       float64 `json:"gross_gain"`
	GrossLoss       float64 `json:"gross_loss"`
	BestTrade       float64 `json:"best_trade"`
	WorstTrade      float64 `json:"worst_trade"`
	WinLossRatio    Ratio   `json:"win_loss_ratio"`
	InitialBalance  float64 `json:"initial_balance"`
	AvgHoldHours    float64 `json:"avg_hold_hours"`
	MedianHoldHours float64 `json:"median_hold_hours"`
	ExposurePct     float64 `json:"exposure_pct"`
}

// Map flattens the metrics to the canonical key set. Unbounded ratios
// flatten to +Inf, so callers that need JSON should marshal the struct
// instead.
func (m Metrics) Map() map[string]float64 {
	return map[string]float64{
		"total_trades":      float64(m.TotalTrades),
		"win_rate":          m.WinRate,
		"avg_gain":          m.AvgGain,
		"avg_loss":          m.AvgLoss,
		"profit_factor":     m.ProfitFactor.Float(),
		"net_return":        m.NetReturn,
		"max_drawdown":      m.MaxDrawdown,
		"final_balance":     m.FinalBalance,
		"gross_gain":        m.GrossGain,
		"gross_loss":        m.GrossLoss,
		"best_trade":        m.BestTrade,
		"worst_trade":       m.WorstTrade,
		"win_loss_ratio":    m.WinLossRatio.Float(),
		"initial_balance":   m.InitialBalance,
		"avg_hold_hours":    m.AvgHoldHours,
		"median_hold_hours": m.MedianHoldHours,
		"exposure_pct":      m.ExposurePct,
	}
}

// Result bundles everything one replay produces.
type Result struct {
	Metrics     Metrics
	Trades      []Trade
	EquityCurve []EquityPoint
}

// Default simulation parameters
const (
	DefaultInitialBalance = 10000.0
	DefaultSlippage       = 0.0005
	DefaultCommission     = 0.0007
)

// Config holds the simulation parameters. Slippage and Commission are
// fractional rates applied on every fill.
type Config struct {
	InitialBalance float64
	BuySignals     []string
	SellSignals    []string
	Slippage       float64
	Commission     float64
}

// NewConfig creates the default config
func NewConfig() Config {
	return Config{
		InitialBalance: DefaultInitialBalance,
		BuySignals:     []string{strategy.SignalBuy, strategy.SignalStrongBuy},
		SellSignals:    []string{strategy.SignalSell, strategy.SignalStrongSell},
		Slippage:       DefaultSlippage,
		Commission:     DefaultCommission,
	}
}

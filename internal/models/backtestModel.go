package models

import (
	"time"
)

// BacktestRun stores the summary of one completed backtest so runs can
// be compared across parameter sweeps.
type BacktestRun struct {
	ID        uint      `gorm:"primaryKey"`
	Symbol    string    `gorm:"index;not null"`
	TimeFrame string    `gorm:"not null"`
	StartTime time.Time `gorm:"index"`
	EndTime   time.Time `gorm:"index"`

	InitialBalance float64 `gorm:"type:decimal(20,8);not null"`
	FinalBalance   float64 `gorm:"type:decimal(20,8);not null"`

	TotalTrades     int
	WinRate         float64 `gorm:"type:decimal(20,8)"`
	NetReturn       float64 `gorm:"type:decimal(20,8)"`
	MaxDrawdown     float64 `gorm:"type:decimal(20,8)"`
	GrossGain       float64 `gorm:"type:decimal(20,8)"`
	GrossLoss       float64 `gorm:"type:decimal(20,8)"`
	ExposurePct     float64 `gorm:"type:decimal(20,8)"`
	AvgHoldHours    float64 `gorm:"type:decimal(20,8)"`
	MedianHoldHours float64 `gorm:"type:decimal(20,8)"`

	// Ratio metrics are stored as text so an unbounded value survives
	// the round trip instead of overflowing a numeric column.
	ProfitFactor string `gorm:"not null"`
	WinLossRatio string `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime"`
}

// TableName sets the table name for BacktestRun model
func (BacktestRun) TableName() string {
	return "backtest_runs"
}

// TradeRecord is one closed round-trip of a stored backtest run.
type TradeRecord struct {
	ID    uint `gorm:"primaryKey"`
	RunID uint `gorm:"index;not null"`

	EntryTime  time.Time `gorm:"index;not null"`
	ExitTime   time.Time `gorm:"index;not null"`
	EntryPrice float64   `gorm:"type:decimal(20,8);not null"`
	ExitPrice  float64   `gorm:"type:decimal(20,8);not null"`
	PnLPct     float64   `gorm:"type:decimal(20,8);not null"`
	HoldHours  float64   `gorm:"type:decimal(20,8);not null"`

	// Relationships
	Run BacktestRun `gorm:"foreignKey:RunID"`
}

// TableName sets the table name for TradeRecord model
func (TradeRecord) TableName() string {
	return "trade_records"
}

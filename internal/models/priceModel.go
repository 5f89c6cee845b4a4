package models

import (
	"time"
)

// Price is one OHLCV bar. (Symbol, TimeFrame, OpenTime) is the bar
// key: unique, so re-fetching a window never duplicates history.
// Close must stay positive for backtesting; the engine rejects the
// whole series otherwise.
type Price struct {
	ID         uint      `gorm:"primaryKey"`
	Symbol     string    `gorm:"uniqueIndex:idx_prices_bar;not null"`
	TimeFrame  string    `gorm:"uniqueIndex:idx_prices_bar;not null"`
	OpenTime   time.Time `gorm:"uniqueIndex:idx_prices_bar;not null"`
	CloseTime  time.Time `gorm:"index"`
	Open       float64   `gorm:"type:decimal(20,8)"`
	High       float64   `gorm:"type:decimal(20,8)"`
	Low        float64   `gorm:"type:decimal(20,8)"`
	Close      float64   `gorm:"type:decimal(20,8)"`
	Volume     float64   `gorm:"type:decimal(20,8)"`
	TradeCount int64
}

const (
	PriceTimeFrame1m  = "1m"
	PriceTimeFrame5m  = "5m"
	PriceTimeFrame15m = "15m"
	PriceTimeFrame1h  = "1h"
	PriceTimeFrame4h  = "4h"
	PriceTimeFrame1d  = "1d"
)

// TableName sets the table name for Price model
func (Price) TableName() string {
	return "prices"
}

package repositories

import (
	"errors"
	"time"

	"SignalBot/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Conflict target for upserts: one row per bar.
var barKey = []clause.Column{{Name: "symbol"}, {Name: "time_frame"}, {Name: "open_time"}}

type PriceRepository struct {
	db *gorm.DB
}

// NewPriceRepository creates a new instance of PriceRepository
func NewPriceRepository(db *gorm.DB) *PriceRepository {
	return &PriceRepository{db: db}
}

// Create stores one Price record. A bar that already exists is
// updated in place, so recording the still-forming candle refreshes
// it instead of failing the unique index.
func (r *PriceRepository) Create(price *models.Price) error {
	if price == nil {
		return errors.New("price cannot be nil")
	}
	return r.db.Clauses(clause.OnConflict{Columns: barKey, UpdateAll: true}).
		Create(price).Error
}

// CreateBatch inserts a fetched series in one statement. Bars already
// stored from an earlier run are skipped, keeping repeat runs from
// duplicating history.
func (r *PriceRepository) CreateBatch(prices []models.Price) error {
	if len(prices) == 0 {
		return nil
	}
	return r.db.Clauses(clause.OnConflict{Columns: barKey, DoNothing: true}).
		Create(&prices).Error
}

// GetPricesByTimeFrame gets price data for a specific symbol and
// timeframe, ordered ascending by open time
func (r *PriceRepository) GetPricesByTimeFrame(symbol, timeFrame string, start, end time.Time) ([]models.Price, error) {
	if symbol == "" || timeFrame == "" {
		return nil, errors.New("invalid symbol or timeframe")
	}

	var prices []models.Price
	err := r.db.Where("symbol = ? AND time_frame = ? AND open_time BETWEEN ? AND ?",
		symbol, timeFrame, start, end).
		Order("open_time ASC").
		Find(&prices).Error
	return prices, err
}

// GetAllPrices gets every stored bar for a symbol/timeframe, ordered
// ascending by open time
func (r *PriceRepository) GetAllPrices(symbol, timeFrame string) ([]models.Price, error) {
	if symbol == "" || timeFrame == "" {
		return nil, errors.New("invalid symbol or timeframe")
	}

	var prices []models.Price
	err := r.db.Where("symbol = ? AND time_frame = ?", symbol, timeFrame).
		Order("open_time ASC").
		Find(&prices).Error
	return prices, err
}

// GetLatestPrice gets the most recent bar for a symbol
func (r *PriceRepository) GetLatestPrice(symbol string) (*models.Price, error) {
	if symbol == "" {
		return nil, errors.New("invalid symbol")
	}

	var price models.Price
	err := r.db.Where("symbol = ?", symbol).
		Order("open_time DESC").
		First(&price).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &price, err
}

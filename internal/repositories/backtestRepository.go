package repositories

import (
	"errors"

	"SignalBot/internal/models"

	"gorm.io/gorm"
)

type BacktestRepository struct {
	db *gorm.DB
}

// NewBacktestRepository creates a new instance of BacktestRepository
func NewBacktestRepository(db *gorm.DB) *BacktestRepository {
	return &BacktestRepository{db: db}
}

// SaveRun persists a completed run and its trade ledger in one
// transaction. The run's ID is filled in on success.
func (r *BacktestRepository) SaveRun(run *models.BacktestRun, trades []models.TradeRecord) error {
	if run == nil {
		return errors.New("run cannot be nil")
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(run).Error; err != nil {
			return err
		}
		for i := range trades {
			trades[i].RunID = run.ID
		}
		if len(trades) > 0 {
			if err := tx.Create(&trades).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FindRunByID retrieves a stored run
func (r *BacktestRepository) FindRunByID(id uint) (*models.BacktestRun, error) {
	if id == 0 {
		return nil, errors.New("invalid id")
	}
	var run models.BacktestRun
	err := r.db.First(&run, id).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &run, err
}

// FindRunsBySymbol lists stored runs for a symbol, newest first
func (r *BacktestRepository) FindRunsBySymbol(symbol string) ([]models.BacktestRun, error) {
	if symbol == "" {
		return nil, errors.New("invalid symbol")
	}
	var runs []models.BacktestRun
	err := r.db.Where("symbol = ?", symbol).
		Order("created_at DESC").
		Find(&runs).Error
	return runs, err
}

// FindTradesByRun lists the ledger of one run in exit order
func (r *BacktestRepository) FindTradesByRun(runID uint) ([]models.TradeRecord, error) {
	if runID == 0 {
		return nil, errors.New("invalid run id")
	}
	var trades []models.TradeRecord
	err := r.db.Where("run_id = ?", runID).
		Order("exit_time ASC").
		Find(&trades).Error
	return trades, err
}

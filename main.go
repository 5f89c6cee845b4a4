package main

import (
	"context"
	"fmt"
	"log"
	"math"
	"os"
	"os/signal"
	"syscall"
	"time"

	"SignalBot/config"
	"SignalBot/internal/handlers"
	"SignalBot/internal/models"
	"SignalBot/internal/operations/backtest"
	"SignalBot/internal/repositories"
	"SignalBot/internal/services/strategy"

	"github.com/adshao/go-binance/v2/futures"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Setup database
	db := setupDatabase(cfg.Database)

	// Initialize repositories
	priceRepo := repositories.NewPriceRepository(db)
	backtestRepo := repositories.NewBacktestRepository(db)

	// Initialize Binance client
	futuresClient := futures.NewClient(cfg.Exchange.APIKey, cfg.Exchange.SecretKey)

	// Initialize price handler
	priceHandler := handlers.NewPriceHandler(
		futuresClient, priceRepo,
		cfg.Market.Symbols, cfg.Market.TimeFrame, cfg.Market.LookbackDays, cfg.Market.Offline,
	)

	// Setup context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize strategy components
	rsiStrategy := strategy.NewRSIStrategy(strategy.Config{
		Period:        cfg.Strategy.Period,
		Oversold:      cfg.Strategy.Oversold,
		Overbought:    cfg.Strategy.Overbought,
		EMAFastPeriod: cfg.Strategy.EMAFast,
		EMASlowPeriod: cfg.Strategy.EMASlow,
	})
	enricher := strategy.NewEnricher()

	// Setup backtest engine
	engine := backtest.NewEngine(backtest.Config{
		InitialBalance: cfg.Backtest.InitialBalance,
		BuySignals:     cfg.Backtest.BuySignals,
		SellSignals:    cfg.Backtest.SellSignals,
		Slippage:       cfg.Backtest.Slippage,
		Commission:     cfg.Backtest.Commission,
	})

	for _, symbol := range cfg.Market.Symbols {
		bars, err := priceHandler.LoadHistory(ctx, symbol)
		if err != nil {
			log.Printf("[%s] failed to load history: %v", symbol, err)
			continue
		}
		log.Printf("[%s] loaded %d candles", symbol, len(bars))

		rows := rsiStrategy.Analyze(bars)
		rows = enricher.Enrich(rows)

		printSnapshot(symbol, rows)

		result, err := engine.Run(rows)
		if err != nil {
			log.Printf("[%s] backtest failed: %v", symbol, err)
			continue
		}

		printResults(symbol, result)

		run, trades := buildRun(symbol, cfg.Market.TimeFrame, rows, result)
		if err := backtestRepo.SaveRun(run, trades); err != nil {
			log.Printf("[%s] error saving backtest run: %v", symbol, err)
		}
	}

	if cfg.Market.Offline {
		return
	}

	// Start live candle recording
	priceHandler.Start(ctx)
	log.Println("Price recording started...")

	// Handle shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	log.Println("Shutting down...")
	cancel()
	time.Sleep(time.Second * 2) // Give time for cleanup
	log.Println("Shutdown complete")
}

// printSnapshot shows the most recent evaluated bar so the console run
// ends with the signal a live trader would act on.
func printSnapshot(symbol string, rows []strategy.SignalRow) {
	if len(rows) == 0 {
		return
	}
	last := rows[len(rows)-1]

	fmt.Printf("\n=== %s Latest Signal ===\n", symbol)
	fmt.Printf("Time: %s\n", last.OpenTime.Format(time.RFC3339))
	fmt.Printf("Close: %.2f\n", last.Close)
	if math.IsNaN(last.RSI) {
		fmt.Println("RSI: warming up")
	} else {
		fmt.Printf("RSI: %.2f\n", last.RSI)
	}
	fmt.Printf("Signal: %s (%s)\n", last.Signal, last.SignalStrength)
	if last.Divergence != "" {
		fmt.Printf("Divergence: %s\n", last.Divergence)
	}
}

func printResults(symbol string, result *backtest.Result) {
	m := result.Metrics

	fmt.Printf("\n=== %s Backtest Results ===\n", symbol)
	fmt.Printf("Initial Balance: $%.2f\n", m.InitialBalance)
	fmt.Printf("Final Balance: $%.2f\n", m.FinalBalance)
	fmt.Printf("Net Return: %.2f%%\n", m.NetReturn)
	fmt.Printf("Total Trades: %d\n", m.TotalTrades)
	fmt.Printf("Win Rate: %.2f%%\n", m.WinRate)
	fmt.Printf("Avg Gain: %.2f%% | Avg Loss: %.2f%%\n", m.AvgGain, m.AvgLoss)
	fmt.Printf("Best Trade: %.2f%% | Worst Trade: %.2f%%\n", m.BestTrade, m.WorstTrade)
	fmt.Printf("Gross Gain: %.2f%% | Gross Loss: %.2f%%\n", m.GrossGain, m.GrossLoss)
	fmt.Printf("Profit Factor: %s\n", m.ProfitFactor)
	fmt.Printf("Win/Loss Ratio: %s\n", m.WinLossRatio)
	fmt.Printf("Max Drawdown: %.2f%%\n", m.MaxDrawdown)
	fmt.Printf("Avg Hold: %.1fh | Median Hold: %.1fh\n", m.AvgHoldHours, m.MedianHoldHours)
	fmt.Printf("Exposure: %.2f%%\n", m.ExposurePct)
}

// buildRun maps one backtest result to its persistence rows.
func buildRun(symbol, timeframe string, rows []strategy.SignalRow, result *backtest.Result) (*models.BacktestRun, []models.TradeRecord) {
	m := result.Metrics

	run := &models.BacktestRun{
		Symbol:          symbol,
		TimeFrame:       timeframe,
		InitialBalance:  m.InitialBalance,
		FinalBalance:    m.FinalBalance,
		TotalTrades:     m.TotalTrades,
		WinRate:         m.WinRate,
		NetReturn:       m.NetReturn,
		MaxDrawdown:     m.MaxDrawdown,
		GrossGain:       m.GrossGain,
		GrossLoss:       m.GrossLoss,
		ExposurePct:     m.ExposurePct,
		AvgHoldHours:    m.AvgHoldHours,
		MedianHoldHours: m.MedianHoldHours,
		ProfitFactor:    m.ProfitFactor.String(),
		WinLossRatio:    m.WinLossRatio.String(),
	}
	if len(rows) > 0 {
		run.StartTime = rows[0].OpenTime
		run.EndTime = rows[len(rows)-1].OpenTime
	}

	trades := make([]models.TradeRecord, 0, len(result.Trades))
	for _, t := range result.Trades {
		trades = append(trades, models.TradeRecord{
			EntryTime:  t.EntryTime,
			ExitTime:   t.ExitTime,
			EntryPrice: t.EntryPrice,
			ExitPrice:  t.ExitPrice,
			PnLPct:     t.PnLPct,
			HoldHours:  t.DurationHrs,
		})
	}

	return run, trades
}

func setupDatabase(dbConfig config.DatabaseConfig) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		dbConfig.Host,
		dbConfig.Port,
		dbConfig.User,
		dbConfig.Password,
		dbConfig.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Error),
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto migrate database schemas
	err = db.AutoMigrate(&models.Price{}, &models.BacktestRun{}, &models.TradeRecord{})
	if err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	return db
}

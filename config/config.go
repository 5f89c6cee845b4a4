package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func Load() (*config, error) {
	// .env is optional; the synthetic data path needs no credentials
	_ = godotenv.Load()

	return &config{
		Exchange: ExchangeConfig{
			APIKey:    os.Getenv("BINANCE_API_KEY"),
			SecretKey: os.Getenv("BINANCE_SECRET_KEY"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     EnvtoInt(os.Getenv("DB_PORT"), 5432),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   getEnv("DB_NAME", "signalbot"),
		},
		Market: MarketConfig{
			Symbols:      getSymbols(),
			TimeFrame:    getEnv("TIMEFRAME", "4h"),
			LookbackDays: EnvtoInt(os.Getenv("LOOKBACK_DAYS"), 365),
			Offline:      getEnv("OFFLINE", "") == "true",
		},
		Strategy: StrategyConfig{
			Period:     EnvtoInt(os.Getenv("RSI_PERIOD"), 14),
			Oversold:   EnvtoFloat(os.Getenv("RSI_OVERSOLD"), 30),
			Overbought: EnvtoFloat(os.Getenv("RSI_OVERBOUGHT"), 70),
			EMAFast:    EnvtoInt(os.Getenv("EMA_FAST"), 12),
			EMASlow:    EnvtoInt(os.Getenv("EMA_SLOW"), 26),
		},
		Backtest: BacktestConfig{
			InitialBalance: EnvtoFloat(os.Getenv("INITIAL_BALANCE"), 10000),
			BuySignals:     getList("BUY_SIGNALS", []string{"BUY", "STRONG BUY"}),
			SellSignals:    getList("SELL_SIGNALS", []string{"SELL", "STRONG SELL"}),
			Slippage:       EnvtoFloat(os.Getenv("SLIPPAGE"), 0.0005),
			Commission:     EnvtoFloat(os.Getenv("COMMISSION"), 0.0007),
		},
	}, nil
}

// helper env(string) to int
func EnvtoInt(s string, fallback int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return i
}

// helper env(string) to float
func EnvtoFloat(s string, fallback float64) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return f
}

func getEnv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

// helper to get symbols
func getSymbols() []string {
	symbols := os.Getenv("TRADING_SYMBOLS")
	if symbols == "" {
		return []string{"BTCUSDT"} // BTC only by default
	}
	return strings.Split(symbols, ",")
}

// helper to read a comma-separated list
func getList(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

package config

import (
	"reflect"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(cfg.Market.Symbols, []string{"BTCUSDT"}) {
		t.Errorf("symbols = %v, want [BTCUSDT]", cfg.Market.Symbols)
	}
	if cfg.Market.TimeFrame != "4h" || cfg.Market.LookbackDays != 365 {
		t.Errorf("market defaults = %s/%d, want 4h/365", cfg.Market.TimeFrame, cfg.Market.LookbackDays)
	}
	if cfg.Strategy.Period != 14 || cfg.Strategy.Oversold != 30 || cfg.Strategy.Overbought != 70 {
		t.Errorf("strategy defaults = %+v", cfg.Strategy)
	}
	if cfg.Backtest.InitialBalance != 10000 {
		t.Errorf("initial balance = %v, want 10000", cfg.Backtest.InitialBalance)
	}
	if cfg.Backtest.Slippage != 0.0005 || cfg.Backtest.Commission != 0.0007 {
		t.Errorf("friction defaults = %v/%v", cfg.Backtest.Slippage, cfg.Backtest.Commission)
	}
	if !reflect.DeepEqual(cfg.Backtest.BuySignals, []string{"BUY", "STRONG BUY"}) {
		t.Errorf("buy signals = %v", cfg.Backtest.BuySignals)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("TRADING_SYMBOLS", "BTCUSDT,ETHUSDT")
	t.Setenv("TIMEFRAME", "1h")
	t.Setenv("LOOKBACK_DAYS", "90")
	t.Setenv("OFFLINE", "true")
	t.Setenv("INITIAL_BALANCE", "2500.5")
	t.Setenv("RSI_PERIOD", "7")
	t.Setenv("BUY_SIGNALS", "STRONG BUY, BUY ")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !reflect.DeepEqual(cfg.Market.Symbols, []string{"BTCUSDT", "ETHUSDT"}) {
		t.Errorf("symbols = %v", cfg.Market.Symbols)
	}
	if cfg.Market.TimeFrame != "1h" || cfg.Market.LookbackDays != 90 || !cfg.Market.Offline {
		t.Errorf("market = %+v", cfg.Market)
	}
	if cfg.Backtest.InitialBalance != 2500.5 {
		t.Errorf("initial balance = %v", cfg.Backtest.InitialBalance)
	}
	if cfg.Strategy.Period != 7 {
		t.Errorf("rsi period = %d", cfg.Strategy.Period)
	}
	if !reflect.DeepEqual(cfg.Backtest.BuySignals, []string{"STRONG BUY", "BUY"}) {
		t.Errorf("buy signals = %v, want trimmed list", cfg.Backtest.BuySignals)
	}
}

func TestEnvHelpers(t *testing.T) {
	if got := EnvtoInt("25", 0); got != 25 {
		t.Errorf("EnvtoInt(25) = %d", got)
	}
	if got := EnvtoInt("not a number", 7); got != 7 {
		t.Errorf("EnvtoInt fallback = %d, want 7", got)
	}
	if got := EnvtoFloat("0.25", 0); got != 0.25 {
		t.Errorf("EnvtoFloat(0.25) = %v", got)
	}
	if got := EnvtoFloat("", 1.5); got != 1.5 {
		t.Errorf("EnvtoFloat fallback = %v, want 1.5", got)
	}
}

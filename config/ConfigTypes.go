package config

type config struct {
	Exchange ExchangeConfig
	Database DatabaseConfig
	Market   MarketConfig
	Strategy StrategyConfig
	Backtest BacktestConfig
}

type ExchangeConfig struct {
	APIKey    string
	SecretKey string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
}

type MarketConfig struct {
	Symbols      []string
	TimeFrame    string
	LookbackDays int
	Offline      bool // skip the exchange and use the synthetic dataset
}

type StrategyConfig struct {
	Period     int
	Oversold   float64
	Overbought float64
	EMAFast    int
	EMASlow    int
}

type BacktestConfig struct {
	InitialBalance float64
	BuySignals     []string
	SellSignals    []string
	Slippage       float64
	Commission     float64
}

package handlers

import (
	"context"
	"log"

	"SignalBot/internal/models"
	"SignalBot/internal/operations/price"
	"SignalBot/internal/repositories"

	"github.com/adshao/go-binance/v2/futures"
)

// PriceHandler loads the candle history each analysis run works from.
// When the exchange is unreachable (or OFFLINE is set) it falls back
// to the deterministic synthetic dataset so a run always has data.
type PriceHandler struct {
	priceRepo     *repositories.PriceRepository
	futuresClient *futures.Client
	priceRecorder *price.PriceRecorder
	priceFetcher  *price.PriceFetcher
	symbols       []string
	timeframe     string
	lookbackDays  int
	offline       bool
}

func NewPriceHandler(client *futures.Client, priceRepo *repositories.PriceRepository, symbols []string, timeframe string, lookbackDays int, offline bool) *PriceHandler {
	return &PriceHandler{
		futuresClient: client,
		priceRepo:     priceRepo,
		symbols:       symbols,
		timeframe:     timeframe,
		lookbackDays:  lookbackDays,
		offline:       offline,
		priceFetcher:  price.NewPriceFetcher(client),
	}
}

// LoadHistory returns the lookback window of candles for one symbol,
// oldest first, and stores them so later runs can replay the same
// window from the database.
func (h *PriceHandler) LoadHistory(ctx context.Context, symbol string) ([]models.Price, error) {
	var bars []models.Price

	if h.offline {
		log.Printf("[%s] offline mode, generating synthetic %s data", symbol, h.timeframe)
		bars = price.GenerateSynthetic(symbol, h.timeframe, h.lookbackDays, price.SyntheticSeed)
	} else {
		log.Printf("[%s] fetching %d days of %s candles", symbol, h.lookbackDays, h.timeframe)
		fetched, err := h.priceFetcher.FetchKlines(ctx, symbol, h.timeframe, h.lookbackDays)
		if err != nil || len(fetched) == 0 {
			log.Printf("[%s] fetch failed (%v), falling back to synthetic data", symbol, err)
			bars = price.GenerateSynthetic(symbol, h.timeframe, h.lookbackDays, price.SyntheticSeed)
		} else {
			bars = fetched
		}
	}

	if err := h.priceRepo.CreateBatch(bars); err != nil {
		log.Printf("[%s] error saving candle history: %v", symbol, err)
	}

	return bars, nil
}

// Start begins live candle recording in the background. Offline runs
// skip it since there is no exchange to poll.
func (h *PriceHandler) Start(ctx context.Context) {
	if h.offline {
		return
	}

	h.priceRecorder = price.NewPriceRecorder(h.futuresClient, h.priceRepo, h.symbols, h.timeframe)
	go h.priceRecorder.StartRecording(ctx)
}

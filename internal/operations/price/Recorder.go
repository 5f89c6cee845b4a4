package price

import (
	"context"
	"log"
	"time"

	"SignalBot/internal/models"
	"SignalBot/internal/repositories"

	"github.com/adshao/go-binance/v2/futures"
)

// PriceRecorder appends the latest closed candle for each symbol to
// the database on every timeframe tick, keeping history fresh between
// full fetches.
type PriceRecorder struct {
	client    *futures.Client
	priceRepo *repositories.PriceRepository
	symbols   []string
	timeframe string
}

func NewPriceRecorder(client *futures.Client, priceRepo *repositories.PriceRepository, symbols []string, timeframe string) *PriceRecorder {
	return &PriceRecorder{
		client:    client,
		priceRepo: priceRepo,
		symbols:   symbols,
		timeframe: timeframe,
	}
}

// StartRecording blocks until ctx is cancelled, recording one candle
// per symbol per interval.
func (r *PriceRecorder) StartRecording(ctx context.Context) {
	interval, ok := intervalDurations[r.timeframe]
	if !ok {
		log.Printf("Unknown timeframe %q, not recording", r.timeframe)
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Printf("Starting %s price recording...", r.timeframe)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Stopping %s price recording...", r.timeframe)
			return
		case <-ticker.C:
			r.recordPrices(ctx)
		}
	}
}

func (r *PriceRecorder) recordPrices(ctx context.Context) {
	for _, symbol := range r.symbols {
		klines, err := r.client.NewKlinesService().
			Symbol(symbol).
			Interval(r.timeframe).
			Limit(1).
			Do(ctx)
		if err != nil {
			log.Printf("Error getting kline for %s-%s: %v", symbol, r.timeframe, err)
			continue
		}
		if len(klines) == 0 {
			continue
		}

		k := klines[0]
		price := &models.Price{
			Symbol:     symbol,
			TimeFrame:  r.timeframe,
			OpenTime:   time.Unix(k.OpenTime/1000, 0),
			CloseTime:  time.Unix(k.CloseTime/1000, 0),
			Open:       parseFloat(k.Open),
			High:       parseFloat(k.High),
			Low:        parseFloat(k.Low),
			Close:      parseFloat(k.Close),
			Volume:     parseFloat(k.Volume),
			TradeCount: k.TradeNum,
		}

		if err := r.priceRepo.Create(price); err != nil {
			log.Printf("Error saving price for %s-%s: %v", symbol, r.timeframe, err)
		} else {
			log.Printf("Recorded %s price for %s: %v", r.timeframe, symbol, price.Close)
		}
	}
}

package price

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"time"

	"SignalBot/internal/models"

	"github.com/adshao/go-binance/v2/futures"
)

// PriceFetcher pulls historical klines from Binance futures in
// 500-candle chunks. It is a collaborator of the core: the signal and
// backtest packages never fetch on their own.
type PriceFetcher struct {
	client *futures.Client
}

func NewPriceFetcher(client *futures.Client) *PriceFetcher {
	return &PriceFetcher{client: client}
}

// FetchKlines downloads `days` of history for one symbol/timeframe,
// oldest first. A chunk failure fails the whole fetch so callers can
// fall back to the synthetic dataset instead of trusting a gap.
func (f *PriceFetcher) FetchKlines(ctx context.Context, symbol, timeframe string, days int) ([]models.Price, error) {
	interval, ok := intervalDurations[timeframe]
	if !ok {
		return nil, fmt.Errorf("unsupported timeframe %q", timeframe)
	}
	if days < 1 {
		return nil, fmt.Errorf("days must be at least 1, got %d", days)
	}

	endTime := time.Now()
	startTime := endTime.AddDate(0, 0, -days)
	chunk := interval * 500 // Binance's max candles per request

	var prices []models.Price
	for currentStart := startTime; currentStart.Before(endTime); {
		currentEnd := currentStart.Add(chunk)
		if currentEnd.After(endTime) {
			currentEnd = endTime
		}

		klines, err := f.client.NewKlinesService().
			Symbol(symbol).
			Interval(timeframe).
			StartTime(currentStart.UnixMilli()).
			EndTime(currentEnd.UnixMilli()).
			Limit(500).
			Do(ctx)
		if err != nil {
			return nil, fmt.Errorf("fetching %s %s klines: %w", symbol, timeframe, err)
		}

		for _, k := range klines {
			prices = append(prices, models.Price{
				Symbol:     symbol,
				TimeFrame:  timeframe,
				OpenTime:   time.Unix(k.OpenTime/1000, 0),
				CloseTime:  time.Unix(k.CloseTime/1000, 0),
				Open:       parseFloat(k.Open),
				High:       parseFloat(k.High),
				Low:        parseFloat(k.Low),
				Close:      parseFloat(k.Close),
				Volume:     parseFloat(k.Volume),
				TradeCount: k.TradeNum,
			})
		}

		log.Printf("Fetched %d %s candles for %s from %s to %s",
			len(klines), timeframe, symbol,
			currentStart.Format("2006-01-02 15:04:05"),
			currentEnd.Format("2006-01-02 15:04:05"))

		currentStart = currentEnd

		// Small delay to stay under rate limits
		time.Sleep(100 * time.Millisecond)
	}

	return prices, nil
}

var intervalDurations = map[string]time.Duration{
	models.PriceTimeFrame1m:  time.Minute,
	models.PriceTimeFrame5m:  5 * time.Minute,
	models.PriceTimeFrame15m: 15 * time.Minute,
	models.PriceTimeFrame1h:  time.Hour,
	models.PriceTimeFrame4h:  4 * time.Hour,
	models.PriceTimeFrame1d:  24 * time.Hour,
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		log.Printf("Error parsing float: %v", err)
		return 0
	}
	return f
}

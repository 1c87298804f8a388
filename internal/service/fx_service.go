package service

import (
	"context"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/caiofontes/remitscan/internal/catalog"
	"github.com/caiofontes/remitscan/internal/fxrate"
)

// tickerFetchLimit bounds concurrent upstream calls per ticker refresh.
const tickerFetchLimit = 4

type FxService struct {
	source fxrate.Source
}

func NewFxService(source fxrate.Source) *FxService {
	return &FxService{source: source}
}

// TickerEntry is one USD→currency row of the corridor rate strip.
type TickerEntry struct {
	CountryCode string  `json:"country"`
	Currency    string  `json:"currency"`
	Rate        float64 `json:"rate"`
	// Live reports whether the rate came from the upstream on this call;
	// false means the corridor's seed rate (or the caller's override).
	Live bool `json:"live"`
}

// Ticker returns a rate row per corridor, fetching live rates concurrently.
// A failed fetch falls back to the corridor's default rate rather than
// failing the whole strip. The active country's rate can be pinned to the
// caller's current mid rate via activeCode/activeRate.
func (s *FxService) Ticker(ctx context.Context, activeCode string, activeRate float64) []TickerEntry {
	entries := make([]TickerEntry, len(catalog.Countries))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(tickerFetchLimit)

	for i := range catalog.Countries {
		i := i
		c := &catalog.Countries[i]
		entries[i] = TickerEntry{
			CountryCode: c.Code,
			Currency:    c.CurrencyCode,
			Rate:        c.DefaultMidRate,
		}

		if c.Code == activeCode && activeRate > 0 {
			entries[i].Rate = activeRate
			continue
		}
		if c.CurrencyCode == "USD" {
			entries[i].Rate = 1
			continue
		}

		g.Go(func() error {
			snap, err := s.source.Latest(gctx, "USD", c.CurrencyCode)
			if err != nil {
				log.Warn().Err(err).
					Str("currency", c.CurrencyCode).
					Msg("ticker rate fetch failed, keeping default")
				return nil
			}
			entries[i].Rate = snap.Rate
			entries[i].Live = true
			return nil
		})
	}

	// Goroutines report failures as fallbacks, never as errors.
	_ = g.Wait()

	return entries
}

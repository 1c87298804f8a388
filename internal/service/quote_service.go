package service

import (
	"errors"
	"time"

	"github.com/caiofontes/remitscan/internal/catalog"
	"github.com/caiofontes/remitscan/internal/quote"
)

// ErrUnknownCountry is returned for destination codes outside the corridor
// registry.
var ErrUnknownCountry = errors.New("unknown destination country")

type QuoteService struct {
	now func() time.Time
}

func NewQuoteService() *QuoteService {
	return &QuoteService{now: time.Now}
}

// QuoteParams are the user's comparison inputs. MidRate zero means "use the
// corridor default"; Weekend nil means "derive from the server clock".
type QuoteParams struct {
	CountryCode string
	Method      catalog.Method
	AmountUSD   float64
	MidRate     float64
	Weekend     *bool
	Preference  quote.Preference
}

// QuoteMeta echoes the resolved inputs so clients can see what the quotes
// were derived from.
type QuoteMeta struct {
	CountryCode    string           `json:"country_code"`
	CountryName    string           `json:"country_name"`
	CurrencyCode   string           `json:"currency_code"`
	CurrencySymbol string           `json:"currency_symbol"`
	AmountUSD      float64          `json:"amount_usd"`
	MidRate        float64          `json:"mid_rate"`
	Weekend        bool             `json:"weekend"`
	Preference     quote.Preference `json:"preference"`
}

// Quotes builds a quote per corridor provider and ranks them best-first.
// Providers that reject the combination are filtered out, so the result can
// legitimately be empty.
func (s *QuoteService) Quotes(p QuoteParams) ([]quote.Quote, QuoteMeta, error) {
	country, ok := catalog.CountryByCode(p.CountryCode)
	if !ok {
		return nil, QuoteMeta{}, ErrUnknownCountry
	}

	midRate := p.MidRate
	if midRate <= 0 {
		midRate = country.DefaultMidRate
	}

	weekend := isWeekend(s.now())
	if p.Weekend != nil {
		weekend = *p.Weekend
	}

	quotes := make([]quote.Quote, 0, len(country.Providers))
	for _, id := range country.Providers {
		provider, ok := catalog.ProviderByID(id)
		if !ok {
			// Validate() guarantees this at startup.
			continue
		}
		if q, ok := quote.Build(provider, country, p.Method, p.AmountUSD, midRate, weekend); ok {
			quotes = append(quotes, q)
		}
	}

	meta := QuoteMeta{
		CountryCode:    country.Code,
		CountryName:    country.Labels.EN,
		CurrencyCode:   country.CurrencyCode,
		CurrencySymbol: country.CurrencySymbol,
		AmountUSD:      p.AmountUSD,
		MidRate:        midRate,
		Weekend:        weekend,
		Preference:     p.Preference,
	}

	return quote.Rank(quotes, p.Preference), meta, nil
}

func isWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

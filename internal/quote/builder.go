package quote

import (
	"fmt"
	"math"
	"strconv"

	"github.com/caiofontes/remitscan/internal/catalog"
)

// Quote is a priced, timed estimate for one provider. Quotes are recomputed
// from scratch on every request and never stored.
type Quote struct {
	ProviderID   string         `json:"provider_id"`
	ProviderName string         `json:"provider_name"`
	Tagline      string         `json:"tagline"`
	Link         string         `json:"link"`
	CountryCode  string         `json:"country_code"`
	Method       catalog.Method `json:"method"`

	AmountUSD float64 `json:"amount_usd"`
	MidRate   float64 `json:"mid_rate"`
	Weekend   bool    `json:"weekend"`

	FeeUSD        float64 `json:"fee_usd"`
	SpreadPct     float64 `json:"spread_pct"`
	CustomerRate  float64 `json:"customer_rate"`
	ReceiveAmount float64 `json:"receive_amount"`

	ETAMinHours float64 `json:"eta_min_hours"`
	ETAMaxHours float64 `json:"eta_max_hours"`
	ETALabel    string  `json:"eta_label"`
}

// Build prices a transfer of amountUSD through provider into country. It
// returns ok=false when the provider does not serve the corridor or does not
// support the method; that is an expected outcome, not an error.
//
// Fees come off the sent amount before conversion, and the net can never go
// negative: sending less than the fee yields a zero-receive quote.
func Build(provider *catalog.Provider, country *catalog.Country, method catalog.Method, amountUSD, midRate float64, weekend bool) (Quote, bool) {
	if !country.Serves(provider.ID) {
		return Quote{}, false
	}
	if !provider.Supports(method) {
		return Quote{}, false
	}

	fee := provider.FeeUSD[method]
	feeUSD := fee.Fixed + amountUSD*fee.Pct

	spreadPct := provider.Spread.Weekday
	if weekend {
		spreadPct = provider.Spread.Weekend
	}
	customerRate := applySpread(midRate, spreadPct)

	usdNet := math.Max(0, amountUSD-feeUSD)
	receiveAmount := usdNet * customerRate

	eta := provider.ETAHours[method]

	return Quote{
		ProviderID:    provider.ID,
		ProviderName:  provider.Name,
		Tagline:       provider.Tagline,
		Link:          provider.Link,
		CountryCode:   country.Code,
		Method:        method,
		AmountUSD:     amountUSD,
		MidRate:       midRate,
		Weekend:       weekend,
		FeeUSD:        feeUSD,
		SpreadPct:     spreadPct,
		CustomerRate:  customerRate,
		ReceiveAmount: receiveAmount,
		ETAMinHours:   eta.MinHours,
		ETAMaxHours:   eta.MaxHours,
		ETALabel:      etaLabel(eta),
	}, true
}

// applySpread returns the effective rate offered to the customer, always at
// or below the mid-market rate and never negative.
func applySpread(midRate, spreadPct float64) float64 {
	return math.Max(0, midRate*(1-spreadPct))
}

func etaLabel(eta catalog.ETARange) string {
	switch {
	case eta.MinHours == eta.MaxHours:
		return formatHours(eta.MinHours) + "h"
	case eta.MinHours < 1:
		return fmt.Sprintf("%d–%d min",
			int(math.Round(eta.MinHours*60)),
			int(math.Round(eta.MaxHours*60)))
	default:
		return fmt.Sprintf("%s–%sh", formatHours(eta.MinHours), formatHours(eta.MaxHours))
	}
}

func formatHours(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64)
}

package catalog

import "fmt"

// Method is a delivery method the recipient can receive funds through.
type Method string

const (
	MethodBank  Method = "bank"
	MethodDebit Method = "debit"
	MethodCash  Method = "cash"
)

func (m Method) Valid() bool {
	switch m {
	case MethodBank, MethodDebit, MethodCash:
		return true
	}
	return false
}

// FeeModel is a fixed USD fee plus a percentage of the sent amount.
type FeeModel struct {
	Fixed float64 `json:"fixed"`
	Pct   float64 `json:"pct"`
}

// Spread is the fractional markup a provider takes off the mid-market rate.
// Weekend spreads are consistently worse across the industry.
type Spread struct {
	Weekday float64 `json:"weekday"`
	Weekend float64 `json:"weekend"`
}

// ETARange bounds the delivery time for one method, in hours.
type ETARange struct {
	MinHours float64 `json:"min_hours"`
	MaxHours float64 `json:"max_hours"`
}

// Provider is one money-transfer provider. Entries are hand-maintained
// approximations updated at deployment time, never at runtime.
type Provider struct {
	ID       string              `json:"id"`
	Name     string              `json:"name"`
	Tagline  string              `json:"tagline"`
	Link     string              `json:"link"`
	Methods  []Method            `json:"methods"`
	FeeUSD   map[Method]FeeModel `json:"fee_usd"`
	Spread   Spread              `json:"spread"`
	ETAHours map[Method]ETARange `json:"eta_hours"`
}

func (p *Provider) Supports(m Method) bool {
	for _, pm := range p.Methods {
		if pm == m {
			return true
		}
	}
	return false
}

// Labels holds the localized display names for a country.
type Labels struct {
	EN string `json:"en"`
	PT string `json:"pt"`
	ES string `json:"es"`
}

// Country is a USD-sourced remittance corridor.
type Country struct {
	Code           string `json:"code"`
	Labels         Labels `json:"labels"`
	CurrencyCode   string `json:"currency_code"`
	CurrencySymbol string `json:"currency_symbol"`
	// DefaultMidRate is a seed value only; live rates come from the FX gateway.
	DefaultMidRate float64  `json:"default_mid_rate"`
	Providers      []string `json:"providers"`
}

func (c *Country) Serves(providerID string) bool {
	for _, id := range c.Providers {
		if id == providerID {
			return true
		}
	}
	return false
}

// ProviderByID returns the catalog entry for id.
func ProviderByID(id string) (*Provider, bool) {
	for i := range Providers {
		if Providers[i].ID == id {
			return &Providers[i], true
		}
	}
	return nil, false
}

// CountryByCode returns the corridor entry for a destination country code.
func CountryByCode(code string) (*Country, bool) {
	for i := range Countries {
		if Countries[i].Code == code {
			return &Countries[i], true
		}
	}
	return nil, false
}

// Validate checks the shipped tables for cross-reference consistency. It runs
// once at startup so a broken table is a fatal configuration error instead of
// a silent empty result at serve time.
func Validate() error {
	return validate(Providers, Countries)
}

func validate(providers []Provider, countries []Country) error {
	ids := make(map[string]*Provider, len(providers))
	for i := range providers {
		p := &providers[i]
		if _, dup := ids[p.ID]; dup {
			return fmt.Errorf("duplicate provider id %q", p.ID)
		}
		ids[p.ID] = p

		for _, m := range p.Methods {
			if !m.Valid() {
				return fmt.Errorf("provider %q: unknown method %q", p.ID, m)
			}
			if _, ok := p.FeeUSD[m]; !ok {
				return fmt.Errorf("provider %q: method %q has no fee model", p.ID, m)
			}
			eta, ok := p.ETAHours[m]
			if !ok {
				return fmt.Errorf("provider %q: method %q has no ETA range", p.ID, m)
			}
			if eta.MinHours > eta.MaxHours {
				return fmt.Errorf("provider %q: method %q has inverted ETA range", p.ID, m)
			}
		}
	}

	codes := make(map[string]bool, len(countries))
	for i := range countries {
		c := &countries[i]
		if codes[c.Code] {
			return fmt.Errorf("duplicate country code %q", c.Code)
		}
		codes[c.Code] = true

		for _, id := range c.Providers {
			if _, ok := ids[id]; !ok {
				return fmt.Errorf("country %q references unknown provider %q", c.Code, id)
			}
		}
	}

	return nil
}

package catalog

// Providers is the hand-maintained provider table. Fees and spreads are
// published approximations, not contractual pricing.
var Providers = []Provider{
	{
		ID:      "wise",
		Name:    "Wise",
		Tagline: "Usually excellent FX rates",
		Link:    "https://wise.com/",
		Methods: []Method{MethodBank, MethodDebit},
		FeeUSD: map[Method]FeeModel{
			MethodBank:  {Fixed: 0.6, Pct: 0.004},
			MethodDebit: {Fixed: 0.9, Pct: 0.006},
		},
		Spread: Spread{Weekday: 0.004, Weekend: 0.007},
		ETAHours: map[Method]ETARange{
			MethodBank:  {MinHours: 2, MaxHours: 24},
			MethodDebit: {MinHours: 0.25, MaxHours: 2},
		},
	},
	{
		ID:      "remitly",
		Name:    "Remitly",
		Tagline: "Good speed and options",
		Link:    "https://www.remitly.com/",
		Methods: []Method{MethodBank, MethodDebit, MethodCash},
		FeeUSD: map[Method]FeeModel{
			MethodBank:  {Fixed: 1.99, Pct: 0.007},
			MethodDebit: {Fixed: 2.99, Pct: 0.012},
			MethodCash:  {Fixed: 3.99, Pct: 0.015},
		},
		Spread: Spread{Weekday: 0.01, Weekend: 0.016},
		ETAHours: map[Method]ETARange{
			MethodBank:  {MinHours: 0.25, MaxHours: 24},
			MethodDebit: {MinHours: 0.1, MaxHours: 2},
			MethodCash:  {MinHours: 0.1, MaxHours: 1},
		},
	},
	{
		ID:      "xoom",
		Name:    "Xoom",
		Tagline: "PayPal network + cash pickup",
		Link:    "https://www.xoom.com/",
		Methods: []Method{MethodBank, MethodDebit, MethodCash},
		FeeUSD: map[Method]FeeModel{
			MethodBank:  {Fixed: 2.99, Pct: 0.01},
			MethodDebit: {Fixed: 3.99, Pct: 0.014},
			MethodCash:  {Fixed: 4.99, Pct: 0.018},
		},
		Spread: Spread{Weekday: 0.016, Weekend: 0.024},
		ETAHours: map[Method]ETARange{
			MethodBank:  {MinHours: 1, MaxHours: 48},
			MethodDebit: {MinHours: 0.25, MaxHours: 4},
			MethodCash:  {MinHours: 0.1, MaxHours: 1},
		},
	},
	{
		ID:      "paypal",
		Name:    "PayPal",
		Tagline: "Convenience (can cost more)",
		Link:    "https://www.paypal.com/",
		Methods: []Method{MethodDebit},
		FeeUSD: map[Method]FeeModel{
			MethodDebit: {Fixed: 0, Pct: 0.02},
		},
		Spread: Spread{Weekday: 0.03, Weekend: 0.035},
		ETAHours: map[Method]ETARange{
			MethodDebit: {MinHours: 0.1, MaxHours: 2},
		},
	},
	{
		ID:      "western_union",
		Name:    "Western Union",
		Tagline: "Very strong cash pickup network",
		Link:    "https://www.westernunion.com/",
		Methods: []Method{MethodBank, MethodDebit, MethodCash},
		FeeUSD: map[Method]FeeModel{
			MethodBank:  {Fixed: 4.99, Pct: 0.012},
			MethodDebit: {Fixed: 5.99, Pct: 0.018},
			MethodCash:  {Fixed: 6.99, Pct: 0.02},
		},
		Spread: Spread{Weekday: 0.02, Weekend: 0.03},
		ETAHours: map[Method]ETARange{
			MethodBank:  {MinHours: 2, MaxHours: 72},
			MethodDebit: {MinHours: 0.25, MaxHours: 6},
			MethodCash:  {MinHours: 0.1, MaxHours: 1},
		},
	},
	{
		ID:      "moneygram",
		Name:    "MoneyGram",
		Tagline: "Popular cash alternative",
		Link:    "https://www.moneygram.com/",
		Methods: []Method{MethodBank, MethodDebit, MethodCash},
		FeeUSD: map[Method]FeeModel{
			MethodBank:  {Fixed: 3.99, Pct: 0.012},
			MethodDebit: {Fixed: 4.99, Pct: 0.018},
			MethodCash:  {Fixed: 5.99, Pct: 0.02},
		},
		Spread: Spread{Weekday: 0.02, Weekend: 0.03},
		ETAHours: map[Method]ETARange{
			MethodBank:  {MinHours: 2, MaxHours: 72},
			MethodDebit: {MinHours: 0.25, MaxHours: 6},
			MethodCash:  {MinHours: 0.1, MaxHours: 1},
		},
	},
}

// Countries is the USD-sourced corridor table (LATAM destinations).
var Countries = []Country{
	{
		Code:           "BR",
		Labels:         Labels{EN: "Brazil", PT: "Brasil", ES: "Brasil"},
		CurrencyCode:   "BRL",
		CurrencySymbol: "R$",
		DefaultMidRate: 5.3,
		Providers:      []string{"wise", "remitly", "xoom", "paypal", "western_union", "moneygram"},
	},
	{
		Code:           "MX",
		Labels:         Labels{EN: "Mexico", PT: "México", ES: "México"},
		CurrencyCode:   "MXN",
		CurrencySymbol: "$",
		DefaultMidRate: 17.0,
		Providers:      []string{"wise", "remitly", "xoom", "western_union", "moneygram"},
	},
	{
		Code:           "AR",
		Labels:         Labels{EN: "Argentina", PT: "Argentina", ES: "Argentina"},
		CurrencyCode:   "ARS",
		CurrencySymbol: "$",
		DefaultMidRate: 1000, // placeholder, the live rate should be used
		Providers:      []string{"wise", "xoom", "western_union", "moneygram"},
	},
	{
		Code:           "CL",
		Labels:         Labels{EN: "Chile", PT: "Chile", ES: "Chile"},
		CurrencyCode:   "CLP",
		CurrencySymbol: "$",
		DefaultMidRate: 900,
		Providers:      []string{"wise", "remitly", "xoom", "western_union", "moneygram"},
	},
	{
		Code:           "CO",
		Labels:         Labels{EN: "Colombia", PT: "Colômbia", ES: "Colombia"},
		CurrencyCode:   "COP",
		CurrencySymbol: "$",
		DefaultMidRate: 4000,
		Providers:      []string{"wise", "remitly", "xoom", "western_union", "moneygram"},
	},
	{
		Code:           "VE",
		Labels:         Labels{EN: "Venezuela", PT: "Venezuela", ES: "Venezuela"},
		CurrencyCode:   "VES",
		CurrencySymbol: "Bs",
		DefaultMidRate: 40,
		Providers:      []string{"western_union", "moneygram"},
	},
	{
		Code:           "PE",
		Labels:         Labels{EN: "Peru", PT: "Peru", ES: "Perú"},
		CurrencyCode:   "PEN",
		CurrencySymbol: "S/",
		DefaultMidRate: 3.7,
		Providers:      []string{"wise", "remitly", "xoom", "western_union", "moneygram"},
	},
	{
		Code:           "EC",
		Labels:         Labels{EN: "Ecuador", PT: "Equador", ES: "Ecuador"},
		CurrencyCode:   "USD",
		CurrencySymbol: "$",
		DefaultMidRate: 1,
		Providers:      []string{"wise", "remitly", "xoom", "western_union", "moneygram"},
	},
}

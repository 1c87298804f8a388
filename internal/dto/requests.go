package dto

// QuoteQuery are the /api/quotes inputs. Amount is a pointer so an absent
// amount (defaulted by the handler) is distinguishable from an explicit zero,
// which legitimately produces zero-receive quotes.
type QuoteQuery struct {
	Country string   `form:"country" binding:"required,len=2,alpha"`
	Method  string   `form:"method" binding:"omitempty,oneof=bank debit cash"`
	Amount  *float64 `form:"amount" binding:"omitempty,gte=0"`
	MidRate float64  `form:"mid_rate" binding:"omitempty,gt=0"`
	Weekend *bool    `form:"weekend"`
	Sort    string   `form:"sort" binding:"omitempty,oneof=cheapest fastest balanced"`
}

type FxQuery struct {
	From string `form:"from" binding:"omitempty,len=3,alpha"`
	To   string `form:"to" binding:"omitempty,len=3,alpha"`
}

type TickerQuery struct {
	Active string  `form:"active" binding:"omitempty,len=2,alpha"`
	Rate   float64 `form:"rate" binding:"omitempty,gt=0"`
}

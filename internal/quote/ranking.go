package quote

import "sort"

// Preference selects the ranking policy.
type Preference string

const (
	PrefCheapest Preference = "cheapest"
	PrefFastest  Preference = "fastest"
	PrefBalanced Preference = "balanced"
)

func (p Preference) Valid() bool {
	switch p {
	case PrefCheapest, PrefFastest, PrefBalanced:
		return true
	}
	return false
}

// Balanced weights: receive amount dominates, speed breaks the near-ties.
const (
	amountWeight = 0.65
	etaWeight    = 0.35
)

// Rank orders quotes best-first under pref and returns a new slice; the
// input is never mutated. All sorts are stable, so quotes that compare equal
// keep their input order.
func Rank(quotes []Quote, pref Preference) []Quote {
	ranked := make([]Quote, len(quotes))
	copy(ranked, quotes)

	if len(ranked) == 0 {
		return ranked
	}

	switch pref {
	case PrefCheapest:
		sort.SliceStable(ranked, func(i, j int) bool {
			return ranked[i].ReceiveAmount > ranked[j].ReceiveAmount
		})
	case PrefFastest:
		sort.SliceStable(ranked, func(i, j int) bool {
			return meanETA(ranked[i]) < meanETA(ranked[j])
		})
	default:
		scores := balancedScores(ranked)
		idx := make([]int, len(ranked))
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return scores[idx[a]] > scores[idx[b]]
		})
		out := make([]Quote, len(ranked))
		for i, j := range idx {
			out[i] = ranked[j]
		}
		ranked = out
	}

	return ranked
}

func meanETA(q Quote) float64 {
	return (q.ETAMinHours + q.ETAMaxHours) / 2
}

// balancedScores min-max normalizes receive amount and mean ETA over the
// candidate set, inverts ETA (faster is better), and combines them. A
// dimension where every candidate is equal carries no information and
// normalizes to a neutral 0.5, so it neither rewards nor punishes anyone.
func balancedScores(quotes []Quote) []float64 {
	minAmt, maxAmt := quotes[0].ReceiveAmount, quotes[0].ReceiveAmount
	minETA, maxETA := meanETA(quotes[0]), meanETA(quotes[0])
	for _, q := range quotes[1:] {
		if q.ReceiveAmount < minAmt {
			minAmt = q.ReceiveAmount
		}
		if q.ReceiveAmount > maxAmt {
			maxAmt = q.ReceiveAmount
		}
		eta := meanETA(q)
		if eta < minETA {
			minETA = eta
		}
		if eta > maxETA {
			maxETA = eta
		}
	}

	scores := make([]float64, len(quotes))
	for i, q := range quotes {
		amtNorm := 0.5
		if maxAmt != minAmt {
			amtNorm = (q.ReceiveAmount - minAmt) / (maxAmt - minAmt)
		}
		etaNorm := 0.5
		if maxETA != minETA {
			etaNorm = 1 - (meanETA(q)-minETA)/(maxETA-minETA)
		}
		scores[i] = amountWeight*amtNorm + etaWeight*etaNorm
	}
	return scores
}

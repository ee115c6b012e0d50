package comps

import (
	"math"

	"github.com/montanaflynn/stats"
)

// Summary condenses a set of comparable listings into a base-price
// suggestion. SuggestedBase is the median after trimming outliers more than
// two standard deviations from the mean; with too few samples it is the
// plain median.
type Summary struct {
	Query         string    `json:"query"`
	Count         int       `json:"count"`
	MedianPrice   float64   `json:"median_price"`
	Spread        float64   `json:"spread"`
	SuggestedBase float64   `json:"suggested_base"`
	Listings      []Listing `json:"listings"`
}

const minSamplesForTrim = 5

// Summarize computes robust price statistics over the listings.
func Summarize(query string, listings []Listing) *Summary {
	s := &Summary{Query: query, Count: len(listings), Listings: listings}
	if len(listings) == 0 {
		return s
	}

	prices := make([]float64, 0, len(listings))
	for _, l := range listings {
		if l.Price > 0 && !math.IsNaN(l.Price) && !math.IsInf(l.Price, 0) {
			prices = append(prices, l.Price)
		}
	}
	if len(prices) == 0 {
		return s
	}

	median, err := stats.Median(prices)
	if err != nil {
		return s
	}
	s.MedianPrice = round2(median)

	spread, err := stats.StandardDeviation(prices)
	if err != nil {
		spread = 0
	}
	s.Spread = round2(spread)

	s.SuggestedBase = s.MedianPrice
	if len(prices) >= minSamplesForTrim && spread > 0 {
		mean, err := stats.Mean(prices)
		if err == nil {
			trimmed := prices[:0:0]
			for _, p := range prices {
				if math.Abs(p-mean) <= 2*spread {
					trimmed = append(trimmed, p)
				}
			}
			if len(trimmed) > 0 {
				if tm, err := stats.Median(trimmed); err == nil {
					s.SuggestedBase = round2(tm)
				}
			}
		}
	}

	return s
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

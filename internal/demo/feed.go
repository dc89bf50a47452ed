package demo

import (
	"math"
	"math/rand"
)

// Update is the chart data pushed to the page; Chartist's chart.update
// accepts it as is.
type Update struct {
	Labels []string    `json:"labels"`
	Series [][]float64 `json:"series"`
}

// Feed produces a random walk per series. The same seed gives the same
// sequence of updates.
type Feed struct {
	rng    *rand.Rand
	labels []string
	series [][]float64
}

// NewFeed returns a feed of len(start) series over the given labels.
func NewFeed(seed int64, labels []string, start [][]float64) *Feed {
	f := &Feed{
		rng:    rand.New(rand.NewSource(seed)),
		labels: append([]string(nil), labels...),
	}
	for _, s := range start {
		f.series = append(f.series, append([]float64(nil), s...))
	}
	return f
}

// DefaultFeed returns the two-series weekday feed the demo page starts with.
func DefaultFeed(seed int64) *Feed {
	return NewFeed(seed,
		[]string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		[][]float64{{12, 9, 7, 8, 5}, {2, 1, 3.5, 7, 3}},
	)
}

// Next advances every point by a step in [-1, 1), keeping values at or
// above zero, and returns a copy of the new data.
func (f *Feed) Next() Update {
	u := Update{Labels: append([]string(nil), f.labels...)}
	for _, s := range f.series {
		for i := range s {
			s[i] = math.Max(0, math.Round((s[i]+f.rng.Float64()*2-1)*10)/10)
		}
		u.Series = append(u.Series, append([]float64(nil), s...))
	}
	return u
}

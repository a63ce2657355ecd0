package entity

import "time"

// DashaPeriod is one node of the Vimshottari period tree.
// Level 1 is a Mahadasha, level 2 an Antardasha, level 3 a Pratyantardasha.
//
// When SubPeriods is non-empty the children tile [Start, End) exactly.
type DashaPeriod struct {
	Planet        string        `json:"planet" yaml:"planet"`
	Start         time.Time     `json:"start_date" yaml:"start_date"`
	End           time.Time     `json:"end_date" yaml:"end_date"`
	DurationYears float64       `json:"duration_years" yaml:"duration_years"`
	Level         int           `json:"level" yaml:"level"`
	SubPeriods    []DashaPeriod `json:"sub_periods" yaml:"sub_periods,omitempty"`
}

// Contains reports whether t falls in [Start, End).
func (p DashaPeriod) Contains(t time.Time) bool {
	return !t.Before(p.Start) && t.Before(p.End)
}

// Walk visits p and every descendant depth first. Returning false from fn
// stops the descent below the current node.
func (p DashaPeriod) Walk(fn func(DashaPeriod) bool) {
	if !fn(p) {
		return
	}
	for _, sub := range p.SubPeriods {
		sub.Walk(fn)
	}
}

// DashaTimeline is the ordered sequence of Mahadashas starting at birth.
type DashaTimeline struct {
	Mahadashas []DashaPeriod `json:"mahadashas" yaml:"mahadashas"`
}

// Start returns the birth instant the timeline begins at.
func (tl DashaTimeline) Start() time.Time {
	if len(tl.Mahadashas) == 0 {
		return time.Time{}
	}
	return tl.Mahadashas[0].Start
}

// End returns the end of the last Mahadasha.
func (tl DashaTimeline) End() time.Time {
	if len(tl.Mahadashas) == 0 {
		return time.Time{}
	}
	return tl.Mahadashas[len(tl.Mahadashas)-1].End
}

// Current returns the chain of periods running at t, outermost first.
// It returns nil when t lies outside the timeline.
func (tl DashaTimeline) Current(t time.Time) []DashaPeriod {
	var chain []DashaPeriod
	periods := tl.Mahadashas
	for len(periods) > 0 {
		found := false
		for _, p := range periods {
			if p.Contains(t) {
				leaf := p
				leaf.SubPeriods = nil
				chain = append(chain, leaf)
				periods = p.SubPeriods
				found = true
				break
			}
		}
		if !found {
			break
		}
	}
	return chain
}

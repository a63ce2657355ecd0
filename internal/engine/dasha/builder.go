// Package dasha builds the Vimshottari Dasha timeline: a tree of planetary
// periods whose children exactly tile their parent, starting at birth with the
// unexpired balance of the moon's nakshatra lord.
package dasha

import (
	"time"

	"jyotish/internal/domain/entity"
)

const (
	// DefaultFollowingPeriods is the number of full Mahadashas generated after the birth balance.
	DefaultFollowingPeriods = 9
	// DefaultDepth generates Mahadashas and Antardashas.
	DefaultDepth = 2
)

// Builder generates Dasha timelines. The zero value uses the defaults.
type Builder struct {
	// FollowingPeriods is the number of full Mahadashas after the birth period.
	FollowingPeriods int
	// Depth is the number of levels generated: 1 Mahadasha, 2 Antardasha, 3 Pratyantardasha.
	Depth int
}

func (b Builder) following() int {
	if b.FollowingPeriods <= 0 {
		return DefaultFollowingPeriods
	}
	return b.FollowingPeriods
}

func (b Builder) depth() int {
	if b.Depth <= 0 {
		return DefaultDepth
	}
	return b.Depth
}

// Build returns the timeline for a moon longitude in [0,360) and a birth instant.
// The result is a pure function of its inputs.
func (b Builder) Build(moonLongitude float64, birth time.Time) entity.DashaTimeline {
	lordIdx, remaining := Balance(moonLongitude)
	depth := b.depth()
	count := 1 + b.following()
	mahadashas := make([]entity.DashaPeriod, 0, count)

	lord := Sequence[lordIdx]
	balance := lord.Years * remaining
	start := birth
	end := AddYears(start, balance)
	md := entity.DashaPeriod{
		Planet:        lord.Planet,
		Start:         start,
		End:           end,
		DurationYears: balance,
		Level:         1,
	}
	Subdivide(&md, lordIdx, lord.Years, depth)
	mahadashas = append(mahadashas, md)

	for i := 1; i < count; i++ {
		idx := (lordIdx + i) % len(Sequence)
		lord := Sequence[idx]
		start = end
		end = AddYears(start, lord.Years)
		md := entity.DashaPeriod{
			Planet:        lord.Planet,
			Start:         start,
			End:           end,
			DurationYears: lord.Years,
			Level:         1,
		}
		Subdivide(&md, idx, lord.Years, depth)
		mahadashas = append(mahadashas, md)
	}

	return entity.DashaTimeline{Mahadashas: mahadashas}
}

// Subdivide fills parent.SubPeriods down to the given depth.
//
// lordIdx is the parent's position in Sequence and fullYears the parent's full
// nominal duration, which may exceed its actual window when the parent was cut
// short at birth. The nine children are laid out from the theoretical full
// start (parent.End - fullYears); children ending at or before parent.Start are
// dropped and the survivors are clipped to the parent's window.
func Subdivide(parent *entity.DashaPeriod, lordIdx int, fullYears float64, depth int) {
	if parent.Level >= depth {
		return
	}

	cursor := AddYears(parent.End, -fullYears)
	subs := make([]entity.DashaPeriod, 0, len(Sequence))
	fulls := make([]float64, 0, len(Sequence))
	idxs := make([]int, 0, len(Sequence))

	for i := range Sequence {
		idx := (lordIdx + i) % len(Sequence)
		sub := Sequence[idx]
		years := fullYears * sub.Years / CycleYears
		next := AddYears(cursor, years)

		if next.After(parent.Start) && cursor.Before(parent.End) {
			subs = append(subs, entity.DashaPeriod{
				Planet:        sub.Planet,
				Start:         maxTime(cursor, parent.Start),
				End:           minTime(next, parent.End),
				DurationYears: years,
				Level:         parent.Level + 1,
			})
			fulls = append(fulls, years)
			idxs = append(idxs, idx)
		}
		cursor = next
	}

	if len(subs) == 0 {
		return
	}
	// The theoretical layout can drift from the parent window by a few
	// nanoseconds of float rounding; pin the outer edges to the parent.
	subs[0].Start = parent.Start
	subs[len(subs)-1].End = parent.End

	for i := range subs {
		Subdivide(&subs[i], idxs[i], fulls[i], depth)
	}
	parent.SubPeriods = subs
}

func maxTime(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func minTime(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

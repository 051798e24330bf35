package autosplit

import "time"

// closeThreshold separates a close delta from a behind one.
const closeThreshold = time.Second

// Comparison classifies a segment delta against the best recorded segment.
type Comparison int

const (
	// Ahead means the segment beat its best time.
	Ahead Comparison = iota
	// Close means the segment was at or within a second of its best.
	Close
	// Behind means the segment lost a second or more.
	Behind
)

// String returns the comparison name for rendering and logs.
func (c Comparison) String() string {
	switch c {
	case Ahead:
		return "ahead"
	case Close:
		return "close"
	case Behind:
		return "behind"
	default:
		return "unknown"
	}
}

// SegmentTime derives the duration of one segment from cumulative split
// times. The first segment (previous == nil) is the split time itself;
// otherwise it is the difference of consecutive cumulative times. Returns
// nil when the split has not been reached yet.
func SegmentTime(cumulative, previous *time.Duration) *time.Duration {
	if cumulative == nil {
		return nil
	}
	if previous == nil {
		d := *cumulative
		return &d
	}
	d := *cumulative - *previous
	return &d
}

// Delta compares a segment time against the best recorded segment. Defined
// only when both inputs are: no best time or an uncompleted segment yields
// nil. Negative means ahead of best, positive behind.
func Delta(segment, best *time.Duration) *time.Duration {
	if segment == nil || best == nil {
		return nil
	}
	d := *segment - *best
	return &d
}

// Classify buckets a delta three ways for display. A delta of exactly zero
// is Close, not Ahead.
func Classify(delta time.Duration) Comparison {
	switch {
	case delta < 0:
		return Ahead
	case delta < closeThreshold:
		return Close
	default:
		return Behind
	}
}

// SegmentRecord is one display-ready row of run progress. Nil fields mean
// the value is undefined (split not reached, or no best time recorded).
type SegmentRecord struct {
	// Name is the split's display name.
	Name string

	// SplitTime is the cumulative time at which the split was recorded.
	SplitTime *time.Duration

	// BestSegment is the fastest recorded time for this segment.
	BestSegment *time.Duration

	// Segment is the duration of this segment in the current attempt.
	Segment *time.Duration

	// Delta is Segment minus BestSegment when both are defined.
	Delta *time.Duration
}

// Comparison classifies the record's delta. ok is false when the delta is
// undefined.
func (r SegmentRecord) Comparison() (Comparison, bool) {
	if r.Delta == nil {
		return 0, false
	}
	return Classify(*r.Delta), true
}

// BuildSegments assembles display rows from parallel slices of split names,
// cumulative split times, and best-segment times. splitTimes and bests may
// be shorter than names; missing entries are treated as undefined.
func BuildSegments(names []string, splitTimes, bests []*time.Duration) []SegmentRecord {
	records := make([]SegmentRecord, len(names))
	var previous *time.Duration

	for i, name := range names {
		var cumulative, best *time.Duration
		if i < len(splitTimes) {
			cumulative = splitTimes[i]
		}
		if i < len(bests) {
			best = bests[i]
		}

		segment := SegmentTime(cumulative, previous)
		records[i] = SegmentRecord{
			Name:        name,
			SplitTime:   cumulative,
			BestSegment: best,
			Segment:     segment,
			Delta:       Delta(segment, best),
		}

		// A skipped split leaves previous at the last recorded time, so the
		// next completed segment spans the gap.
		if cumulative != nil {
			previous = cumulative
		}
	}

	return records
}

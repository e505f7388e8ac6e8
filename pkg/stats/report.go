package stats

import "strconv"

// ModeKind tells which of the mode outcomes a Mode holds.
type ModeKind string

const (
	// ModeAbsent is the zero Mode: there were no observations to look at.
	ModeAbsent ModeKind = ""
	// ModeValue means a single value occurs more often than any other, or first among equals.
	ModeValue ModeKind = "value"
	// ModeNone means every observation occurs exactly once.
	ModeNone ModeKind = "none"
)

// Mode is the outcome of the mode computation.
type Mode struct {
	Kind  ModeKind `json:"kind"  msgpack:"kind"`
	Value float64  `json:"value" msgpack:"value"`
}

// ValueMode returns a Mode holding v.
func ValueMode(v float64) Mode {
	return Mode{Kind: ModeValue, Value: v}
}

// NoMode returns the no-repeated-value sentinel.
func NoMode() Mode {
	return Mode{Kind: ModeNone}
}

// Float returns the mode value; ok is false for the sentinel and the absent mode.
func (m Mode) Float() (float64, bool) {
	if m.Kind != ModeValue {
		return 0, false
	}

	return m.Value, true
}

// HasValue reports whether the mode holds a numeric value.
func (m Mode) HasValue() bool {
	return m.Kind == ModeValue
}

// String returns the full mode value, "no mode" for the sentinel and "" when absent.
func (m Mode) String() string {
	switch m.Kind {
	case ModeValue:
		return FormatNumber(m.Value)
	case ModeNone:
		return "no mode"
	default:
		return ""
	}
}

// FormatNumber renders v in plain decimal notation with the fewest digits that round-trip.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Report holds the six statistics of a non-empty observation set.
// The absent report is a nil *Report.
type Report struct {
	Count    int     `json:"count"    msgpack:"count"`
	Mean     float64 `json:"mean"     msgpack:"mean"`
	Median   float64 `json:"median"   msgpack:"median"`
	Mode     Mode    `json:"mode"     msgpack:"mode"`
	StdDev   float64 `json:"std_dev"  msgpack:"std_dev"`
	Variance float64 `json:"variance" msgpack:"variance"`
}

// Package domain defines the block model produced by test-structure extraction.
package domain

// Position is a point in source text.
// Lines are 1-based, columns are 0-based byte offsets within the line.
// The convention is fixed and shared by every range in one ParseResult.
type Position struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// Before reports whether p comes before other in source order.
func (p Position) Before(other Position) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Column < other.Column
}

// Range is a span of source text, inclusive of Start and exclusive of End.
type Range struct {
	Start Position `json:"start"`
	End   Position `json:"end"`
}

// Contains reports whether pos falls inside the range.
func (r Range) Contains(pos Position) bool {
	if pos.Before(r.Start) {
		return false
	}
	return pos.Before(r.End)
}

// ContainsRange reports whether other lies entirely inside r.
func (r Range) ContainsRange(other Range) bool {
	if other.Start.Before(r.Start) {
		return false
	}
	return !r.End.Before(other.End)
}

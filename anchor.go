package tooltip

import "math"

// AnchorID identifies one anchor of one render pass. IDs are never reused,
// so an ID from an earlier pass never matches an anchor of the current one.
type AnchorID uint64

// Anchor is a drawn data point that can trigger the tooltip.
type Anchor struct {
	ID    AnchorID
	X     float64
	Y     float64
	Name  string
	Value any

	// Node is the rendered element behind the anchor, opaque to this package.
	Node any
}

// DrawEventType is the kind of element a draw notification reports.
type DrawEventType string

const (
	DrawPoint DrawEventType = "point"
	DrawBar   DrawEventType = "bar"
	DrawSlice DrawEventType = "slice"
)

// DrawEvent is one notification of the chart's render stream.
type DrawEvent struct {
	Type  DrawEventType
	X     float64
	Y     float64
	Name  string
	Value any
	Node  any
}

// AnchorSet collects the anchors of a single render pass in draw order.
type AnchorSet struct {
	ids     *Sequence
	sealed  bool
	anchors []Anchor
	byID    map[AnchorID]int
	xs      []float64
	atX     map[float64][]int
}

// NewAnchorSet returns an empty set drawing IDs from ids.
func NewAnchorSet(ids *Sequence) *AnchorSet {
	if ids == nil {
		ids = anchorIDs
	}
	s := &AnchorSet{ids: ids}
	s.Reset()
	return s
}

// Add registers the element of a draw event. Event types other than point,
// bar and slice are ignored, as are points without finite coordinates.
// Only points become locator candidates.
func (s *AnchorSet) Add(ev DrawEvent) (Anchor, bool) {
	switch ev.Type {
	case DrawPoint:
		if !finite(ev.X) || !finite(ev.Y) {
			return Anchor{}, false
		}
	case DrawBar, DrawSlice:
	default:
		return Anchor{}, false
	}

	a := Anchor{
		ID:    AnchorID(s.ids.Next()),
		X:     ev.X,
		Y:     ev.Y,
		Name:  ev.Name,
		Value: ev.Value,
		Node:  ev.Node,
	}
	s.byID[a.ID] = len(s.anchors)
	if ev.Type == DrawPoint {
		if _, seen := s.atX[ev.X]; !seen {
			s.xs = append(s.xs, ev.X)
		}
		s.atX[ev.X] = append(s.atX[ev.X], len(s.anchors))
	}
	s.anchors = append(s.anchors, a)
	return a, true
}

// Seal marks the end of the render pass.
func (s *AnchorSet) Seal() { s.sealed = true }

// Sealed reports whether the current pass has completed.
func (s *AnchorSet) Sealed() bool { return s.sealed }

// Reset discards every anchor and starts a new pass.
func (s *AnchorSet) Reset() {
	s.sealed = false
	s.anchors = nil
	s.byID = make(map[AnchorID]int)
	s.xs = nil
	s.atX = make(map[float64][]int)
}

// Len returns the number of anchors in the pass.
func (s *AnchorSet) Len() int { return len(s.anchors) }

// Xs returns the distinct x coordinates of point anchors in draw order.
func (s *AnchorSet) Xs() []float64 { return s.xs }

// AtX returns the point anchors drawn at x, in draw order.
func (s *AnchorSet) AtX(x float64) []Anchor {
	idx := s.atX[x]
	out := make([]Anchor, 0, len(idx))
	for _, i := range idx {
		out = append(out, s.anchors[i])
	}
	return out
}

// Lookup returns the anchor with the given id if it belongs to this pass.
func (s *AnchorSet) Lookup(id AnchorID) (Anchor, bool) {
	i, ok := s.byID[id]
	if !ok {
		return Anchor{}, false
	}
	return s.anchors[i], true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

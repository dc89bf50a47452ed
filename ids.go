package tooltip

import (
	"strconv"
	"sync/atomic"
)

// Sequence is a monotonic counter. The zero value starts at 1.
type Sequence struct {
	n atomic.Uint64
}

// Next returns the next value of the sequence.
func (s *Sequence) Next() uint64 {
	return s.n.Add(1)
}

var (
	tooltipIDs = new(Sequence)
	anchorIDs  = new(Sequence)
)

// NewTooltipID allocates a unique element id for a tooltip instance.
func NewTooltipID() string {
	return "charttooltip-" + strconv.FormatUint(tooltipIDs.Next(), 10)
}

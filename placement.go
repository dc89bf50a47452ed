package tooltip

// Alignment is the horizontal collision state of a placed tooltip.
type Alignment int

const (
	AlignCenter Alignment = iota
	AlignLeft
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignRight:
		return "right"
	default:
		return "center"
	}
}

// Modifier returns the CSS class suffix for the alignment, empty for center.
func (a Alignment) Modifier() string {
	switch a {
	case AlignLeft:
		return "--left"
	case AlignRight:
		return "--right"
	default:
		return ""
	}
}

// Placement is the computed document offset of the tooltip.
type Placement struct {
	Left      float64
	Top       float64
	Alignment Alignment
}

// Solve places a tooltip of the given size centred above anchorBox, then
// moves it away from the left or right viewport edge if it would overflow.
//
// Only horizontal collisions are handled. A tooltip above the top of the
// viewport stays there; offset.Y is applied as is.
func Solve(anchorBox Rect, tooltip Size, viewport Size, scroll, offset, collision Point) Placement {
	p := Placement{
		Left:      anchorBox.Left + scroll.X - tooltip.Width/2 + offset.X,
		Top:       anchorBox.Top + scroll.Y - tooltip.Height + offset.Y,
		Alignment: AlignCenter,
	}

	switch {
	case p.Left+tooltip.Width > viewport.Width:
		p.Left = p.Left - tooltip.Width/2 + collision.X
		p.Alignment = AlignRight
	case p.Left < 0:
		p.Left = anchorBox.Left + scroll.X - collision.X
		p.Alignment = AlignLeft
	}
	return p
}

package tooltip

// ChartKind selects the trigger class and the hit-testing strategy of a
// chart. It is one of Line, Bar or Pie.
type ChartKind interface {
	triggerClass(ClassNames) string
	// locatable reports whether anchors are found by coordinate search
	// rather than by delegation from the hovered element.
	locatable() bool
	String() string
}

// Line is a continuous chart; anchors are found with Locate.
type Line struct{}

// Bar is a discrete chart of bars.
type Bar struct{}

// Pie is a discrete chart of slices, drawn as a ring when Donut is set.
type Pie struct {
	Donut bool
}

func (Line) triggerClass(c ClassNames) string { return c.Point }
func (Line) locatable() bool                  { return true }
func (Line) String() string                   { return "line" }

func (Bar) triggerClass(c ClassNames) string { return c.Bar }
func (Bar) locatable() bool                  { return false }
func (Bar) String() string                   { return "bar" }

func (p Pie) triggerClass(c ClassNames) string {
	if p.Donut {
		return c.SliceDonut
	}
	return c.SlicePie
}
func (Pie) locatable() bool { return false }
func (p Pie) String() string {
	if p.Donut {
		return "donut"
	}
	return "pie"
}

// ClassNames are the CSS classes the chart puts on its anchor elements.
type ClassNames struct {
	Point      string
	Bar        string
	SlicePie   string
	SliceDonut string
}

// DefaultClassNames returns Chartist's default class names.
func DefaultClassNames() ClassNames {
	return ClassNames{
		Point:      "ct-point",
		Bar:        "ct-bar",
		SlicePie:   "ct-slice-pie",
		SliceDonut: "ct-slice-donut",
	}
}

// withDefaults fills empty class names from DefaultClassNames.
func (c ClassNames) withDefaults() ClassNames {
	d := DefaultClassNames()
	if c.Point == "" {
		c.Point = d.Point
	}
	if c.Bar == "" {
		c.Bar = d.Bar
	}
	if c.SlicePie == "" {
		c.SlicePie = d.SlicePie
	}
	if c.SliceDonut == "" {
		c.SliceDonut = d.SliceDonut
	}
	return c
}

// Chart is what the tooltip needs to know about the chart it decorates.
type Chart interface {
	Kind() ChartKind
	ClassNames() ClassNames
}

// TriggerClass returns the class of the elements that trigger the tooltip
// on a chart of the given kind.
func TriggerClass(kind ChartKind, classes ClassNames) string {
	return kind.triggerClass(classes.withDefaults())
}

// HoverClass returns the class marking the active anchor.
func HoverClass(kind ChartKind, classes ClassNames) string {
	return TriggerClass(kind, classes) + "--hover"
}

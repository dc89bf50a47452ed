package tooltip

import (
	"fmt"
	"log/slog"
)

// Tooltip decorates one chart instance. It collects the anchors of each
// render pass and turns pointer input into Tracker transitions. Instances
// share nothing; every chart gets its own.
type Tooltip struct {
	id      string
	kind    ChartKind
	classes ClassNames
	opts    Options
	log     *slog.Logger

	anchors *AnchorSet
	tracker *Tracker
}

// New validates opts and returns a hidden tooltip for chart. A nil sched
// uses time.AfterFunc for the hide delay.
func New(chart Chart, host Host, opts Options, sched Scheduler) (*Tooltip, error) {
	if chart == nil || chart.Kind() == nil {
		return nil, ErrUnknownChart
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	if host == nil {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidOptions)
	}

	id := opts.ID
	if id == "" {
		id = NewTooltipID()
	}
	t := &Tooltip{
		id:      id,
		kind:    chart.Kind(),
		classes: chart.ClassNames().withDefaults(),
		opts:    opts,
		log:     opts.logger().With("tooltip", id),
		anchors: NewAnchorSet(nil),
	}
	t.tracker = NewTracker(host, opts, id, sched)
	t.log.Debug("tooltip attached", "chart", t.kind.String(), "trigger", t.TriggerSelector())
	return t, nil
}

// ID returns the tooltip element id.
func (t *Tooltip) ID() string { return t.id }

// TriggerSelector returns the selector of the elements that trigger the
// tooltip by delegation.
func (t *Tooltip) TriggerSelector() string {
	if t.opts.TriggerSelector != "" {
		return t.opts.TriggerSelector
	}
	return "." + TriggerClass(t.kind, t.classes)
}

// HoverClass returns the class marking the active anchor.
func (t *Tooltip) HoverClass() string { return HoverClass(t.kind, t.classes) }

// Locatable reports whether anchors are hit-tested by pointer position.
func (t *Tooltip) Locatable() bool { return t.kind.locatable() }

// Anchors returns the anchor set of the current render pass.
func (t *Tooltip) Anchors() *AnchorSet { return t.anchors }

// State returns the tracker state.
func (t *Tooltip) State() State { return t.tracker.State() }

// Draw registers a draw notification of any type. The first one after
// Created starts a new render pass, dropping the old anchors and any
// tooltip showing one.
func (t *Tooltip) Draw(ev DrawEvent) (Anchor, bool) {
	if t.anchors.Sealed() {
		t.startPass()
	}
	return t.anchors.Add(ev)
}

// Created marks the end of a render pass. A pass with no draw
// notifications at all still replaces the previous one.
func (t *Tooltip) Created() {
	if t.anchors.Sealed() {
		t.startPass()
	}
	t.anchors.Seal()
}

func (t *Tooltip) startPass() {
	t.log.Debug("chart redrawn", "anchors", t.anchors.Len())
	t.anchors.Reset()
	t.tracker.Invalidate()
}

// PointerMove hit-tests a container-relative pointer position on a line
// chart. Pointer movement is ignored on other charts and when nothing has
// been drawn yet.
func (t *Tooltip) PointerMove(p Point) error {
	if !t.kind.locatable() {
		return nil
	}
	a, ok := Locate(p, t.anchors.Xs(), t.anchors.AtX)
	if !ok || t.tracker.isShowing(a.ID) {
		return nil
	}
	return t.tracker.Hit(a)
}

// PointerLeave starts the hide delay when the pointer leaves the chart.
func (t *Tooltip) PointerLeave() {
	t.tracker.Miss()
}

// Enter shows the tooltip for a delegated trigger element. Anchors that
// are not part of the current render pass are ignored.
func (t *Tooltip) Enter(id AnchorID) error {
	a, ok := t.anchors.Lookup(id)
	if !ok {
		return nil
	}
	return t.tracker.Hit(a)
}

// Leave starts the hide delay when the pointer leaves a trigger element.
func (t *Tooltip) Leave() {
	t.tracker.Miss()
}

// Close cancels a pending hide and hides the tooltip at once.
func (t *Tooltip) Close() {
	t.tracker.Invalidate()
}

package tooltip

import (
	"fmt"
	"log/slog"
	"sync"
	"time"
)

// Content is the text shown in the tooltip's name and value regions.
type Content struct {
	Name  string
	Value string
}

// Host is the rendering side of a tooltip: the anchor elements, the
// tooltip element and the geometry needed to place it.
type Host interface {
	// SetActiveMarker marks a as the active anchor and relates it to the
	// tooltip element with the given id.
	SetActiveMarker(a Anchor, tooltipID string)
	// ClearActiveMarker undoes SetActiveMarker.
	ClearActiveMarker(a Anchor)

	SetContent(c Content)
	Reveal()
	Conceal()
	Place(p Placement)

	// AnchorBox returns the anchor's bounding box relative to the viewport.
	AnchorBox(a Anchor) Rect
	// TooltipSize measures the tooltip element as currently rendered.
	TooltipSize() Size
	// Viewport returns the viewport size and its scroll offset.
	Viewport() (Size, Point)
}

// Timer is a pending deferred call.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type timeScheduler struct{}

func (timeScheduler) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

// State is a snapshot of the tracker.
type State struct {
	Active      AnchorID
	HasActive   bool
	Visible     bool
	PendingHide bool
}

// Tracker keeps the single active anchor of a tooltip and drives show and
// delayed hide transitions on its Host.
type Tracker struct {
	mu sync.Mutex

	host      Host
	sched     Scheduler
	log       *slog.Logger
	tooltipID string
	delay     time.Duration
	offset    Point
	collision Point
	format    ValueFormatter

	active  *Anchor
	visible bool
	pending Timer
	// hideSeq invalidates hide callbacks scheduled before the last change.
	hideSeq uint64
}

// NewTracker returns a hidden tracker. A nil sched uses time.AfterFunc.
func NewTracker(host Host, opts Options, tooltipID string, sched Scheduler) *Tracker {
	if sched == nil {
		sched = timeScheduler{}
	}
	return &Tracker{
		host:      host,
		sched:     sched,
		log:       opts.logger(),
		tooltipID: tooltipID,
		delay:     opts.HideDelayDuration(),
		offset:    opts.Offset,
		collision: opts.OffsetCollision,
		format:    opts.ValueTransform,
	}
}

// Hit shows the tooltip for a. A pending hide is cancelled and the previous
// anchor, if different, is deactivated first. A formatter error is returned
// before any state changes.
func (t *Tracker) Hit(a Anchor) error {
	value, err := t.formatValue(a)
	if err != nil {
		return err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelHideLocked()
	if t.active != nil && t.active.ID != a.ID {
		t.host.ClearActiveMarker(*t.active)
	}
	t.active = &a
	t.host.SetActiveMarker(a, t.tooltipID)
	t.host.SetContent(Content{Name: a.Name, Value: value})
	t.host.Reveal()
	t.visible = true

	viewport, scroll := t.host.Viewport()
	p := Solve(t.host.AnchorBox(a), t.host.TooltipSize(), viewport, scroll, t.offset, t.collision)
	t.host.Place(p)

	t.log.Debug("tooltip shown", "tooltip", t.tooltipID, "anchor", a.ID, "alignment", p.Alignment.String())
	return nil
}

// Miss schedules the active anchor to be hidden after the hide delay,
// restarting the delay if a hide is already pending.
func (t *Tracker) Miss() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.active == nil {
		return
	}
	t.cancelHideLocked()

	id, seq := t.active.ID, t.hideSeq
	t.pending = t.sched.AfterFunc(t.delay, func() { t.hide(id, seq) })
}

// Invalidate drops the active anchor without waiting for the delay. It is
// called when the chart redraws and the anchor no longer exists.
func (t *Tracker) Invalidate() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.cancelHideLocked()
	if t.active == nil {
		return
	}
	t.host.ClearActiveMarker(*t.active)
	t.host.Conceal()
	t.log.Debug("tooltip invalidated", "tooltip", t.tooltipID, "anchor", t.active.ID)
	t.active = nil
	t.visible = false
}

// State returns the current state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	s := State{Visible: t.visible, PendingHide: t.pending != nil}
	if t.active != nil {
		s.Active, s.HasActive = t.active.ID, true
	}
	return s
}

// isShowing reports whether the anchor is active and visible with no hide
// pending.
func (t *Tracker) isShowing(id AnchorID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active != nil && t.active.ID == id && t.visible && t.pending == nil
}

func (t *Tracker) hide(id AnchorID, seq uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if seq != t.hideSeq || t.active == nil || t.active.ID != id {
		return
	}
	t.host.ClearActiveMarker(*t.active)
	t.host.Conceal()
	t.active = nil
	t.visible = false
	t.pending = nil
	t.log.Debug("tooltip hidden", "tooltip", t.tooltipID, "anchor", id)
}

func (t *Tracker) cancelHideLocked() {
	t.hideSeq++
	if t.pending != nil {
		t.pending.Stop()
		t.pending = nil
	}
}

func (t *Tracker) formatValue(a Anchor) (string, error) {
	if t.format == nil {
		if a.Value == nil {
			return "", nil
		}
		return fmt.Sprint(a.Value), nil
	}
	s, err := t.format(a.Value)
	if err != nil {
		return "", &FormatError{Anchor: a.ID, Value: a.Value, Wrapped: err}
	}
	return s, nil
}

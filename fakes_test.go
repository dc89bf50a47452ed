package tooltip

import (
	"fmt"
	"sort"
	"time"
)

// recordingHost is a Host that records every call.
type recordingHost struct {
	calls     []string
	active    map[AnchorID]string
	visible   bool
	content   Content
	placement Placement
	placed    int

	box      Rect
	size     Size
	viewport Size
	scroll   Point
}

func newRecordingHost() *recordingHost {
	return &recordingHost{
		active:   make(map[AnchorID]string),
		box:      Rect{Left: 400, Top: 300, Width: 10, Height: 10},
		size:     Size{Width: 100, Height: 40},
		viewport: Size{Width: 800, Height: 600},
	}
}

func (h *recordingHost) SetActiveMarker(a Anchor, id string) {
	h.calls = append(h.calls, fmt.Sprintf("mark %d", a.ID))
	h.active[a.ID] = id
}

func (h *recordingHost) ClearActiveMarker(a Anchor) {
	h.calls = append(h.calls, fmt.Sprintf("clear %d", a.ID))
	delete(h.active, a.ID)
}

func (h *recordingHost) SetContent(c Content) {
	h.calls = append(h.calls, "content")
	h.content = c
}

func (h *recordingHost) Reveal() {
	h.calls = append(h.calls, "reveal")
	h.visible = true
}

func (h *recordingHost) Conceal() {
	h.calls = append(h.calls, "conceal")
	h.visible = false
}

func (h *recordingHost) Place(p Placement) {
	h.placement = p
	h.placed++
}

func (h *recordingHost) AnchorBox(Anchor) Rect   { return h.box }
func (h *recordingHost) TooltipSize() Size       { return h.size }
func (h *recordingHost) Viewport() (Size, Point) { return h.viewport, h.scroll }

func (h *recordingHost) activeIDs() []AnchorID {
	ids := make([]AnchorID, 0, len(h.active))
	for id := range h.active {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// manualScheduler fires callbacks only when Advance moves its clock past
// their deadline.
type manualScheduler struct {
	now    time.Duration
	timers []*manualTimer
}

type manualTimer struct {
	at      time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *manualTimer) Stop() bool {
	active := !t.stopped && !t.fired
	t.stopped = true
	return active
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) Timer {
	t := &manualTimer{at: s.now + d, f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) Advance(d time.Duration) {
	s.now += d
	for _, t := range s.timers {
		if !t.stopped && !t.fired && t.at <= s.now {
			t.fired = true
			t.f()
		}
	}
}

// fire runs a timer's callback regardless of whether it was stopped, as a
// real timer may when Stop races with expiry.
func (t *manualTimer) fire() {
	t.fired = true
	t.f()
}

type fakeChart struct {
	kind    ChartKind
	classes ClassNames
}

func (c fakeChart) Kind() ChartKind        { return c.kind }
func (c fakeChart) ClassNames() ClassNames { return c.classes }

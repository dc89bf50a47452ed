package tooltip

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"
)

func newLineTooltip(t *testing.T) (*Tooltip, *recordingHost, *manualScheduler) {
	t.Helper()
	host := newRecordingHost()
	sched := &manualScheduler{}
	tt, err := New(fakeChart{kind: Line{}}, host, DefaultOptions(), sched)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tt, host, sched
}

func drawPoints(tt *Tooltip, xs ...float64) []Anchor {
	var out []Anchor
	for i, x := range xs {
		a, _ := tt.Draw(DrawEvent{Type: DrawPoint, X: x, Y: 100, Name: "p" + string(rune('a'+i)), Value: x})
		out = append(out, a)
	}
	tt.Created()
	return out
}

func TestTooltipLineEndToEnd(t *testing.T) {
	tt, host, sched := newLineTooltip(t)
	anchors := drawPoints(tt, 10, 50, 90)

	if err := tt.PointerMove(Point{X: 48, Y: 90}); err != nil {
		t.Fatalf("PointerMove: %v", err)
	}
	if s := tt.State(); s.Active != anchors[1].ID || !s.Visible {
		t.Fatalf("state = %+v, want anchor at x=50 visible", s)
	}
	if host.content.Name != "pb" || host.content.Value != "50" {
		t.Fatalf("content = %+v", host.content)
	}

	tt.PointerLeave()
	sched.Advance(499 * time.Millisecond)
	if !host.visible {
		t.Fatalf("hidden too early")
	}
	sched.Advance(time.Millisecond)
	if host.visible {
		t.Fatalf("still visible after hide delay")
	}
}

func TestTooltipPointerMoveBeforeDraw(t *testing.T) {
	tt, host, _ := newLineTooltip(t)
	if err := tt.PointerMove(Point{X: 5, Y: 5}); err != nil {
		t.Fatalf("PointerMove: %v", err)
	}
	if len(host.calls) != 0 {
		t.Fatalf("no anchors drawn, yet host was called: %v", host.calls)
	}
}

func TestTooltipPointerMoveSameAnchorIsNoop(t *testing.T) {
	tt, host, _ := newLineTooltip(t)
	drawPoints(tt, 10, 50)

	_ = tt.PointerMove(Point{X: 49})
	_ = tt.PointerMove(Point{X: 51})
	if host.placed != 1 {
		t.Fatalf("placed %d times, want 1", host.placed)
	}
}

func TestTooltipPointerReturnsDuringHideDelay(t *testing.T) {
	tt, host, sched := newLineTooltip(t)
	drawPoints(tt, 10, 50)

	_ = tt.PointerMove(Point{X: 49})
	tt.PointerLeave()
	sched.Advance(200 * time.Millisecond)
	_ = tt.PointerMove(Point{X: 49})
	sched.Advance(time.Second)
	if !host.visible {
		t.Fatalf("returning to the same anchor must cancel the hide")
	}
}

func TestTooltipRedrawInvalidatesActiveAnchor(t *testing.T) {
	tt, host, _ := newLineTooltip(t)
	old := drawPoints(tt, 10, 50)
	_ = tt.PointerMove(Point{X: 10})

	fresh := drawPoints(tt, 20, 60, 100)

	if s := tt.State(); s.HasActive || s.Visible {
		t.Fatalf("stale anchor survived redraw: %+v", s)
	}
	if host.visible {
		t.Fatalf("tooltip still revealed after redraw")
	}
	if _, ok := tt.Anchors().Lookup(old[0].ID); ok {
		t.Fatalf("old anchor still in set")
	}
	if tt.Anchors().Len() != len(fresh) {
		t.Fatalf("anchor set has %d anchors, want %d", tt.Anchors().Len(), len(fresh))
	}
	if err := tt.Enter(old[0].ID); err != nil || tt.State().HasActive {
		t.Fatalf("entering a stale anchor must be a no-op")
	}
}

func TestTooltipDiscreteDelegation(t *testing.T) {
	host := newRecordingHost()
	sched := &manualScheduler{}
	tt, err := New(fakeChart{kind: Bar{}}, host, DefaultOptions(), sched)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	a, ok := tt.Draw(DrawEvent{Type: DrawBar, X: 5, Y: 5, Name: "Q1", Value: 7})
	if !ok {
		t.Fatalf("bar not registered")
	}
	tt.Created()

	if err := tt.PointerMove(Point{X: 5, Y: 5}); err != nil || len(host.calls) != 0 {
		t.Fatalf("pointer search must not run on bar charts")
	}
	if err := tt.Enter(a.ID); err != nil {
		t.Fatalf("Enter: %v", err)
	}
	if !host.visible || host.content.Name != "Q1" {
		t.Fatalf("bar tooltip not shown: %+v", host.content)
	}
	tt.Leave()
	sched.Advance(500 * time.Millisecond)
	if host.visible {
		t.Fatalf("bar tooltip not hidden")
	}
}

func TestTooltipSelectors(t *testing.T) {
	tests := []struct {
		kind    ChartKind
		opts    func(*Options)
		trigger string
		hover   string
	}{
		{kind: Line{}, trigger: ".ct-point", hover: "ct-point--hover"},
		{kind: Bar{}, trigger: ".ct-bar", hover: "ct-bar--hover"},
		{kind: Pie{}, trigger: ".ct-slice-pie", hover: "ct-slice-pie--hover"},
		{kind: Pie{Donut: true}, trigger: ".ct-slice-donut", hover: "ct-slice-donut--hover"},
		{kind: Bar{}, opts: func(o *Options) { o.TriggerSelector = "rect.custom" }, trigger: "rect.custom", hover: "ct-bar--hover"},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			opts := DefaultOptions()
			if tc.opts != nil {
				tc.opts(&opts)
			}
			tt, err := New(fakeChart{kind: tc.kind}, newRecordingHost(), opts, &manualScheduler{})
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := tt.TriggerSelector(); got != tc.trigger {
				t.Fatalf("trigger = %q want %q", got, tc.trigger)
			}
			if got := tt.HoverClass(); got != tc.hover {
				t.Fatalf("hover = %q want %q", got, tc.hover)
			}
		})
	}
}

func TestTooltipIDs(t *testing.T) {
	a, _ := New(fakeChart{kind: Line{}}, newRecordingHost(), DefaultOptions(), nil)
	b, _ := New(fakeChart{kind: Line{}}, newRecordingHost(), DefaultOptions(), nil)
	if a.ID() == b.ID() || !strings.HasPrefix(a.ID(), "charttooltip-") {
		t.Fatalf("ids not unique: %q %q", a.ID(), b.ID())
	}

	opts := DefaultOptions()
	opts.ID = "sales-tip"
	c, _ := New(fakeChart{kind: Line{}}, newRecordingHost(), opts, nil)
	if c.ID() != "sales-tip" {
		t.Fatalf("explicit id ignored: %q", c.ID())
	}
}

func TestNewRejects(t *testing.T) {
	if _, err := New(fakeChart{}, newRecordingHost(), DefaultOptions(), nil); !errors.Is(err, ErrUnknownChart) {
		t.Fatalf("err = %v, want ErrUnknownChart", err)
	}
	if _, err := New(fakeChart{kind: Line{}}, newRecordingHost(), Options{}, nil); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("err = %v, want ErrInvalidOptions", err)
	}
	if _, err := New(fakeChart{kind: Line{}}, nil, DefaultOptions(), nil); !errors.Is(err, ErrInvalidOptions) {
		t.Fatalf("err = %v, want ErrInvalidOptions", err)
	}
}

func TestAnchorSetIgnoresOtherEvents(t *testing.T) {
	s := NewAnchorSet(new(Sequence))
	if _, ok := s.Add(DrawEvent{Type: "grid"}); ok {
		t.Fatalf("grid event registered")
	}
	s.Add(DrawEvent{Type: DrawBar, X: 3})
	if len(s.Xs()) != 0 {
		t.Fatalf("bars must not become locator candidates")
	}
	if s.Len() != 1 {
		t.Fatalf("len = %d", s.Len())
	}
}

func TestTooltipRedrawWithoutAnchors(t *testing.T) {
	tt, host, _ := newLineTooltip(t)
	drawPoints(tt, 10, 50)
	_ = tt.PointerMove(Point{X: 10})

	// a redraw that only draws grid lines, or nothing at all
	tt.Draw(DrawEvent{Type: "grid"})
	tt.Created()

	if s := tt.State(); s.HasActive || s.Visible {
		t.Fatalf("stale anchor survived empty redraw: %+v", s)
	}
	if host.visible {
		t.Fatalf("tooltip still revealed after empty redraw")
	}
	if n := tt.Anchors().Len(); n != 0 {
		t.Fatalf("anchor set has %d anchors, want 0", n)
	}

	tt.Created()
	if err := tt.PointerMove(Point{X: 50}); err != nil || tt.State().HasActive {
		t.Fatalf("pointer move after empty redraw must be a no-op")
	}
}

func TestTooltipClose(t *testing.T) {
	tt, host, sched := newLineTooltip(t)
	drawPoints(tt, 10, 50)
	_ = tt.PointerMove(Point{X: 10})
	tt.PointerLeave()
	pending := sched.timers[len(sched.timers)-1]

	tt.Close()
	if s := tt.State(); s.HasActive || s.Visible || s.PendingHide {
		t.Fatalf("state after Close = %+v", s)
	}
	if host.visible || len(host.activeIDs()) != 0 {
		t.Fatalf("tooltip or marker left on the page after Close")
	}

	_ = tt.PointerMove(Point{X: 50})
	pending.fire()
	if !host.visible {
		t.Fatalf("hide scheduled before Close hid a later tooltip")
	}
}

func TestTooltipNonFinitePoints(t *testing.T) {
	tt, host, _ := newLineTooltip(t)
	for _, p := range []Point{{X: math.NaN(), Y: 1}, {X: math.Inf(1), Y: 1}, {X: 1, Y: math.Inf(-1)}} {
		if _, ok := tt.Draw(DrawEvent{Type: DrawPoint, X: p.X, Y: p.Y}); ok {
			t.Fatalf("point %+v registered", p)
		}
	}
	if len(tt.Anchors().Xs()) != 0 {
		t.Fatalf("non-finite points became locator candidates: %v", tt.Anchors().Xs())
	}

	a, ok := tt.Draw(DrawEvent{Type: DrawPoint, X: 30, Y: 1, Name: "ok"})
	if !ok {
		t.Fatalf("finite point rejected")
	}
	tt.Created()
	if err := tt.PointerMove(Point{X: 0}); err != nil {
		t.Fatalf("PointerMove: %v", err)
	}
	if s := tt.State(); s.Active != a.ID || host.content.Name != "ok" {
		t.Fatalf("state = %+v, want finite point active", s)
	}
}

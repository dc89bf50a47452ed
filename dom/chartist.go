// Package dom attaches tooltips to Chartist charts in the browser. It is
// compiled with GopherJS.
package dom

import (
	"fmt"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	tooltip "github.com/siongui/gopherjs-charttooltip"
)

// anchorAttr carries the anchor id on each drawn element so a delegated
// event target can be mapped back to its anchor.
const anchorAttr = "data-tooltip-anchor"

// chart adapts a Chartist chart object to tooltip.Chart.
type chart struct {
	self *js.Object
	kind tooltip.ChartKind
}

func (c chart) Kind() tooltip.ChartKind { return c.kind }

func (c chart) ClassNames() tooltip.ClassNames {
	names := c.self.Get("options").Get("classNames")
	if isNullish(names) {
		return tooltip.DefaultClassNames()
	}
	str := func(key string) string {
		v := names.Get(key)
		if isNullish(v) {
			return ""
		}
		return v.String()
	}
	return tooltip.ClassNames{
		Point:      str("point"),
		Bar:        str("bar"),
		SlicePie:   str("slicePie"),
		SliceDonut: str("sliceDonut"),
	}
}

// kindOf classifies a Chartist chart, or returns nil.
func kindOf(c *js.Object) tooltip.ChartKind {
	chartist := js.Global.Get("Chartist")
	if isNullish(chartist) {
		return nil
	}
	switch {
	case instanceOf(c, chartist.Get("Line")):
		return tooltip.Line{}
	case instanceOf(c, chartist.Get("Bar")):
		return tooltip.Bar{}
	case instanceOf(c, chartist.Get("Pie")):
		return tooltip.Pie{Donut: c.Get("options").Get("donut").Bool()}
	}
	return nil
}

func instanceOf(o, ctor *js.Object) bool {
	if isNullish(ctor) {
		return false
	}
	return ctor.Get("prototype").Call("isPrototypeOf", o).Bool()
}

// Attachment is a tooltip attached to a chart. Detach undoes Attach.
type Attachment struct {
	*tooltip.Tooltip

	listeners []listener
	detached  bool
}

type listener struct {
	target *js.Object
	event  string
	fn     *js.Object
	// chartist listeners are removed with off, DOM ones with
	// removeEventListener.
	chartist bool
}

// Attach decorates a Chartist chart with a tooltip. It must be called
// before the chart's first render so every draw event is seen. Nothing is
// added to the page unless the options are valid.
func Attach(c *js.Object, opts tooltip.Options) (*Attachment, error) {
	kind := kindOf(c)
	if kind == nil {
		return nil, tooltip.ErrUnknownChart
	}
	if opts.Logger == nil {
		opts.Logger = defaultLogger()
	}

	ch := chart{self: c, kind: kind}
	host := newHost(opts.CSSClass, tooltip.HoverClass(kind, ch.ClassNames()))
	t, err := tooltip.New(ch, host, opts, nil)
	if err != nil {
		return nil, fmt.Errorf("attach tooltip: %w", err)
	}
	host.mount(opts, t.ID())
	log := opts.Logger.With("tooltip", t.ID())

	a := &Attachment{Tooltip: t}
	a.onChart(c, "draw", func(data *js.Object) {
		onDraw(t, data)
	})
	a.onChart(c, "created", func(*js.Object) {
		t.Created()
	})

	container := c.Get("container")
	placeOverContainer(host, container, opts)

	// failed reports an error back to the page; a broken value
	// transform is a bug the page has to see.
	failed := func(err error) {
		if err == nil {
			return
		}
		log.Error("tooltip update failed", "error", err)
		panic(err)
	}

	if t.Locatable() {
		a.onElement(container, "mousemove", func(e *js.Object) {
			box := boundingRect(container)
			p := tooltip.Point{
				X: e.Get("clientX").Float() - box.Left,
				Y: e.Get("clientY").Float() - box.Top,
			}
			failed(t.PointerMove(p))
		})
		a.onElement(container, "mouseleave", func(*js.Object) {
			t.PointerLeave()
		})
		return a, nil
	}

	selector := t.TriggerSelector()
	a.onElement(container, "mouseover", func(e *js.Object) {
		id, ok := delegateAnchor(e.Get("target"), selector)
		if !ok {
			return
		}
		failed(t.Enter(id))
	})
	a.onElement(container, "mouseout", func(e *js.Object) {
		if _, ok := delegateAnchor(e.Get("target"), selector); !ok {
			return
		}
		t.Leave()
	})
	return a, nil
}

// Detach removes every listener added by Attach and hides the tooltip.
// The tooltip element stays in the page for a later Attach with the same
// id.
func (a *Attachment) Detach() {
	if a.detached {
		return
	}
	a.detached = true
	for _, l := range a.listeners {
		if l.chartist {
			l.target.Call("off", l.event, l.fn)
		} else {
			l.target.Call("removeEventListener", l.event, l.fn)
		}
	}
	a.listeners = nil
	a.Close()
}

func (a *Attachment) onChart(c *js.Object, event string, f func(*js.Object)) {
	fn := handler(f)
	c.Call("on", event, fn)
	a.listeners = append(a.listeners, listener{target: c, event: event, fn: fn, chartist: true})
}

func (a *Attachment) onElement(el *js.Object, event string, f func(*js.Object)) {
	if isNullish(el) {
		return
	}
	fn := handler(f)
	el.Call("addEventListener", event, fn)
	a.listeners = append(a.listeners, listener{target: el, event: event, fn: fn})
}

// handler wraps f in a single JavaScript function so the same value can be
// passed to both the add and the remove call.
func handler(f func(*js.Object)) *js.Object {
	return js.MakeFunc(func(this *js.Object, args []*js.Object) interface{} {
		var arg *js.Object
		if len(args) > 0 {
			arg = args[0]
		}
		f(arg)
		return nil
	})
}

// onDraw forwards every draw notification, so a redraw is noticed even
// when it draws no anchors, and stamps the anchor id on drawn anchors.
func onDraw(t *tooltip.Tooltip, data *js.Object) {
	ev := tooltip.DrawEvent{Type: tooltip.DrawEventType(data.Get("type").String())}
	switch ev.Type {
	case tooltip.DrawPoint:
		ev.X = data.Get("x").Float()
		ev.Y = data.Get("y").Float()
		fallthrough
	case tooltip.DrawBar, tooltip.DrawSlice:
		if el := data.Get("element"); !isNullish(el) {
			if n := el.Get("_node"); !isNullish(n) {
				ev.Node = n
				ev.Name = attr(n, "ct:name")
				ev.Value = attr(n, "ct:value")
			}
		}
	}

	a, ok := t.Draw(ev)
	if !ok || ev.Node == nil {
		return
	}
	ev.Node.(*js.Object).Call("setAttribute", anchorAttr, strconv.FormatUint(uint64(a.ID), 10))
}

// placeOverContainer puts the hidden tooltip at the chart container so its
// first reveal does not start from the page origin.
func placeOverContainer(h *Host, container *js.Object, opts tooltip.Options) {
	if isNullish(container) {
		return
	}
	viewport, scroll := h.Viewport()
	h.Place(tooltip.Solve(boundingRect(container), h.TooltipSize(), viewport, scroll, opts.Offset, opts.OffsetCollision))
}

func attr(el *js.Object, name string) string {
	v := el.Call("getAttribute", name)
	if isNullish(v) {
		return ""
	}
	return v.String()
}

package dom

import (
	"strconv"
	"strings"

	"github.com/gopherjs/gopherjs/js"
	tooltip "github.com/siongui/gopherjs-charttooltip"
)

// Host renders a tooltip into the page. It implements tooltip.Host.
type Host struct {
	self       *js.Object
	name       *js.Object
	value      *js.Object
	cssClass   string
	hoverClass string
}

var _ tooltip.Host = (*Host)(nil)

// newHost returns a Host that touches the page only once mounted.
func newHost(cssClass, hoverClass string) *Host {
	return &Host{cssClass: cssClass, hoverClass: hoverClass}
}

// mount finds the tooltip element with the given id, reusing an element
// already on the page or building one from the template.
func (h *Host) mount(opts tooltip.Options, id string) *Host {
	h.appendCSSToHeadElement()

	h.self = document().Call("getElementById", id)
	if isNullish(h.self) {
		h.createTooltipInstance(opts, id)
		h.appendToBodyElement()
	}
	h.name = h.self.Call("querySelector", "."+h.cssClass+"-name")
	h.value = h.self.Call("querySelector", "."+h.cssClass+"-value")
	return h
}

func (h *Host) SetActiveMarker(a tooltip.Anchor, tooltipID string) {
	n := node(a)
	if n == nil {
		return
	}
	n.Get("classList").Call("add", h.hoverClass)
	n.Call("setAttribute", "aria-describedby", tooltipID)
}

func (h *Host) ClearActiveMarker(a tooltip.Anchor) {
	n := node(a)
	if n == nil {
		return
	}
	n.Get("classList").Call("remove", h.hoverClass)
	n.Call("removeAttribute", "aria-describedby")
}

func (h *Host) SetContent(c tooltip.Content) {
	if !isNullish(h.name) {
		h.name.Set("textContent", c.Name)
	}
	if !isNullish(h.value) {
		h.value.Set("textContent", c.Value)
	}
}

func (h *Host) Reveal() {
	h.self.Call("removeAttribute", "hidden")
}

func (h *Host) Conceal() {
	h.self.Call("setAttribute", "hidden", "true")
}

func (h *Host) Place(p tooltip.Placement) {
	h.self.Get("style").Set("transform",
		"translate("+px(p.Left)+", "+px(p.Top)+")")

	classList := h.self.Get("classList")
	classList.Call("remove", h.cssClass+tooltip.AlignLeft.Modifier())
	classList.Call("remove", h.cssClass+tooltip.AlignRight.Modifier())
	if m := p.Alignment.Modifier(); m != "" {
		classList.Call("add", h.cssClass+m)
	}
}

func (h *Host) AnchorBox(a tooltip.Anchor) tooltip.Rect {
	n := node(a)
	if n == nil {
		return tooltip.Rect{}
	}
	return boundingRect(n)
}

func (h *Host) TooltipSize() tooltip.Size {
	return tooltip.Size{
		Width:  h.self.Get("offsetWidth").Float(),
		Height: h.self.Get("offsetHeight").Float(),
	}
}

func (h *Host) Viewport() (tooltip.Size, tooltip.Point) {
	size := tooltip.Size{
		Width:  document().Get("body").Get("clientWidth").Float(),
		Height: js.Global.Get("innerHeight").Float(),
	}
	scroll := tooltip.Point{
		X: js.Global.Get("scrollX").Float(),
		Y: js.Global.Get("scrollY").Float(),
	}
	return size, scroll
}

// createTooltipInstance builds the tooltip element. Without a template it
// gets a name and a value paragraph.
func (h *Host) createTooltipInstance(opts tooltip.Options, id string) {
	h.self = document().Call("createElement", "div")

	var tmpl *js.Object
	if opts.ElementTemplateSelector != "" {
		tmpl = document().Call("querySelector", opts.ElementTemplateSelector)
	}
	switch {
	case isNullish(tmpl):
		for _, part := range []string{"name", "value"} {
			p := document().Call("createElement", "p")
			p.Set("className", h.cssClass+"-"+part)
			h.self.Call("appendChild", p)
		}
	case strings.EqualFold(tmpl.Get("nodeName").String(), "template"):
		h.self.Set("innerHTML", tmpl.Get("innerHTML"))
	default:
		h.self = tmpl.Call("cloneNode", true)
	}

	h.self.Get("classList").Call("add", h.cssClass)
	h.self.Set("id", id)
	h.self.Call("setAttribute", "role", "tooltip")
	h.self.Call("setAttribute", "hidden", "true")
}

func (h *Host) appendToBodyElement() {
	// insert tooltip at the end of body element
	document().Get("body").Call("appendChild", h.self)
}

// appendCSSToHeadElement adds the base style of the tooltip class once.
func (h *Host) appendCSSToHeadElement() {
	styleID := h.cssClass + "-style"
	if !isNullish(document().Call("getElementById", styleID)) {
		return
	}
	css := `.` + h.cssClass + ` {
		position: absolute;
		top: 0;
		left: 0;
		pointer-events: none;
		white-space: nowrap;
	}
	.` + h.cssClass + `[hidden] {
		display: none;
	}`
	s := document().Call("createElement", "style")
	s.Set("id", styleID)
	s.Set("innerHTML", css)
	// insert style of tooltip at the end of head element
	document().Get("head").Call("appendChild", s)
}

func node(a tooltip.Anchor) *js.Object {
	n, ok := a.Node.(*js.Object)
	if !ok || isNullish(n) {
		return nil
	}
	return n
}

func boundingRect(el *js.Object) tooltip.Rect {
	box := el.Call("getBoundingClientRect")
	return tooltip.Rect{
		Left:   box.Get("left").Float(),
		Top:    box.Get("top").Float(),
		Width:  box.Get("width").Float(),
		Height: box.Get("height").Float(),
	}
}

func document() *js.Object {
	return js.Global.Get("document")
}

func isNullish(o *js.Object) bool {
	return o == nil || o == js.Undefined
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

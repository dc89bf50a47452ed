package dom

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	tooltip "github.com/siongui/gopherjs-charttooltip"
)

const anchorSelector = "[" + anchorAttr + "]"

// element is the part of a DOM element needed to map a delegated trigger
// back to its anchor.
type element interface {
	Attr(name string) string
	// Descendant returns the first descendant matching sel.
	Descendant(sel string) (element, bool)
	// Ancestor returns the nearest proper ancestor matching sel.
	Ancestor(sel string) (element, bool)
}

// resolveAnchor returns the anchor id of a trigger element. A trigger
// without its own id is a wrapper or a part of the drawn element: the id
// is taken from the first stamped descendant, else the nearest stamped
// ancestor.
func resolveAnchor(el element) (tooltip.AnchorID, bool) {
	if id, ok := parseAnchorID(el.Attr(anchorAttr)); ok {
		return id, true
	}
	if d, ok := el.Descendant(anchorSelector); ok {
		if id, ok := parseAnchorID(d.Attr(anchorAttr)); ok {
			return id, true
		}
	}
	if a, ok := el.Ancestor(anchorSelector); ok {
		return parseAnchorID(a.Attr(anchorAttr))
	}
	return 0, false
}

func parseAnchorID(s string) (tooltip.AnchorID, bool) {
	if s == "" {
		return 0, false
	}
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return tooltip.AnchorID(id), true
}

// delegateAnchor finds the first ancestor-or-self of target matching
// selector and resolves its anchor id.
func delegateAnchor(target *js.Object, selector string) (tooltip.AnchorID, bool) {
	if isNullish(target) || isNullish(target.Get("closest")) {
		return 0, false
	}
	el := target.Call("closest", selector)
	if isNullish(el) {
		return 0, false
	}
	return resolveAnchor(jsElement{el})
}

type jsElement struct{ o *js.Object }

func (e jsElement) Attr(name string) string { return attr(e.o, name) }

func (e jsElement) Descendant(sel string) (element, bool) {
	d := e.o.Call("querySelector", sel)
	if isNullish(d) {
		return nil, false
	}
	return jsElement{d}, true
}

func (e jsElement) Ancestor(sel string) (element, bool) {
	p := e.o.Get("parentElement")
	if isNullish(p) {
		return nil, false
	}
	a := p.Call("closest", sel)
	if isNullish(a) {
		return nil, false
	}
	return jsElement{a}, true
}

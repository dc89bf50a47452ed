package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	tooltip "github.com/siongui/gopherjs-charttooltip"
	"github.com/siongui/gopherjs-charttooltip/dom"
)

// options reads the YAML block the page embeds as
// <pre id="tooltip-config" hidden>.
func options(doc *js.Object) (tooltip.Options, error) {
	el := doc.Call("getElementById", "tooltip-config")
	if el == nil || el == js.Undefined {
		return tooltip.DefaultOptions(), nil
	}
	return tooltip.ParseOptions([]byte(el.Get("textContent").String()), "#tooltip-config")
}

func main() {
	doc := js.Global.Get("document")
	log := dom.NewConsoleLogger(slog.LevelDebug)

	opts, err := options(doc)
	if err != nil {
		log.Error("tooltip options", "error", err)
		return
	}
	opts.Logger = log
	opts.ValueTransform = func(v any) (string, error) {
		s, _ := v.(string)
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return "", fmt.Errorf("value %q is not a number: %w", s, err)
		}
		return strconv.FormatFloat(f, 'f', 1, 64), nil
	}

	data := js.M{
		"labels": []string{"Mon", "Tue", "Wed", "Thu", "Fri"},
		"series": [][]float64{{12, 9, 7, 8, 5}, {2, 1, 3.5, 7, 3}},
	}
	chart := js.Global.Get("Chartist").Get("Line").New("#chart", data)

	tip, err := dom.Attach(chart, opts)
	if err != nil {
		log.Error("attach tooltip", "error", err)
		return
	}

	// live series replace the chart data and trigger a redraw
	ws := js.Global.Get("WebSocket").New(feedURL())
	ws.Set("onmessage", func(e *js.Object) {
		update := js.Global.Get("JSON").Call("parse", e.Get("data"))
		chart.Call("update", update)
	})
	ws.Set("onclose", func(*js.Object) {
		log.Info("series feed closed")
	})

	js.Global.Call("addEventListener", "pagehide", func(*js.Object) {
		ws.Call("close")
		tip.Detach()
	})
}

func feedURL() string {
	loc := js.Global.Get("location")
	scheme := "ws:"
	if loc.Get("protocol").String() == "https:" {
		scheme = "wss:"
	}
	return scheme + "//" + loc.Get("host").String() + "/ws"
}

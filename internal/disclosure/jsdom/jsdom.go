//go:build js && wasm

// Package jsdom binds the disclosure controller to a browser DOM.
package jsdom

import (
	"sync"
	"syscall/js"

	"github.com/Zachkp/portfolio/internal/disclosure"
)

// ToggleClass is the class of the injected toggle button.
const ToggleClass = "show-more-btn"

// Container is a DOM element holding a disclosure grid.
type Container struct {
	el  js.Value
	doc js.Value
}

// ByID looks up the container element with the given id.
func ByID(id string) (*Container, bool) {
	doc := js.Global().Get("document")
	el := doc.Call("getElementById", id)
	if el.IsNull() || el.IsUndefined() {
		return nil, false
	}
	return &Container{el: el, doc: doc}, true
}

// Element returns the underlying DOM element.
func (c *Container) Element() js.Value {
	return c.el
}

func (c *Container) Locate(gridSelector, wrapperSelector string) (disclosure.Grid, disclosure.Wrapper, bool) {
	grid := c.el.Call("querySelector", gridSelector)
	wrapper := c.el.Call("querySelector", wrapperSelector)
	if grid.IsNull() || wrapper.IsNull() {
		return nil, nil, false
	}
	return &Grid{el: grid}, &Wrapper{el: wrapper}, true
}

func (c *Container) NewToggle(onActivate func()) disclosure.Toggle {
	btn := c.doc.Call("createElement", "button")
	btn.Set("className", ToggleClass)
	btn.Set("type", "button")
	click := js.FuncOf(func(js.Value, []js.Value) any {
		onActivate()
		return nil
	})
	btn.Call("addEventListener", "click", click)
	return &Toggle{el: btn, click: click}
}

func (c *Container) HasToggle(t disclosure.Toggle) bool {
	tg, ok := t.(*Toggle)
	return ok && c.el.Call("contains", tg.el).Bool()
}

func (c *Container) AppendToggle(t disclosure.Toggle) {
	if tg, ok := t.(*Toggle); ok {
		c.el.Call("appendChild", tg.el)
	}
}

func (c *Container) RemoveToggle(t disclosure.Toggle) {
	if tg, ok := t.(*Toggle); ok {
		tg.el.Call("remove")
	}
}

// Grid measures a CSS grid element.
type Grid struct {
	el       js.Value
	observer js.Value
	onResize js.Func
}

func (g *Grid) ItemCount() int {
	return g.el.Get("children").Length()
}

// Columns counts the tracks of the computed grid-template-columns.
func (g *Grid) Columns() int {
	cols := computedStyle(g.el).Get("gridTemplateColumns").String()
	return columnTracks(cols)
}

// ItemHeight is the first item's offset height plus its vertical margins.
func (g *Grid) ItemHeight() float64 {
	first := g.el.Get("firstElementChild")
	if first.IsNull() {
		return 0
	}
	style := computedStyle(first)
	return first.Get("offsetHeight").Float() +
		cssPixels(style.Get("marginTop").String()) +
		cssPixels(style.Get("marginBottom").String())
}

func (g *Grid) ContentHeight() float64 {
	return g.el.Get("scrollHeight").Float()
}

// OnResize observes the grid with a ResizeObserver.
func (g *Grid) OnResize(fn func()) {
	ctor := js.Global().Get("ResizeObserver")
	if ctor.IsUndefined() {
		return
	}
	g.onResize = js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	g.observer = ctor.New(g.onResize)
	g.observer.Call("observe", g.el)
}

// Wrapper is the height-clamped element around the grid.
type Wrapper struct {
	el js.Value
}

func (w *Wrapper) SetMaxHeight(css string) {
	w.el.Get("style").Set("maxHeight", css)
}

func (w *Wrapper) OnceTransitionEnd(fn func()) func() {
	var (
		once sync.Once
		cb   js.Func
	)
	release := func() {
		once.Do(func() {
			w.el.Call("removeEventListener", "transitionend", cb)
			cb.Release()
		})
	}
	cb = js.FuncOf(func(_ js.Value, args []js.Value) any {
		// transitionend bubbles; item hover transitions must not count.
		if len(args) > 0 {
			ev := args[0]
			if !ev.Get("target").Equal(w.el) || !clampTransition(ev.Get("propertyName").String()) {
				return nil
			}
		}
		release()
		fn()
		return nil
	})
	w.el.Call("addEventListener", "transitionend", cb)
	return release
}

// Toggle is the injected show more / show less button.
type Toggle struct {
	el    js.Value
	click js.Func
}

func (t *Toggle) SetContent(label, icon string) {
	t.el.Set("textContent", label+" ")
	i := t.el.Get("ownerDocument").Call("createElement", "i")
	i.Set("className", icon)
	t.el.Call("appendChild", i)
}

func (t *Toggle) SetActive(active bool) {
	t.el.Get("classList").Call("toggle", "active", active)
}

func (t *Toggle) ScrollIntoView() {
	t.el.Call("scrollIntoView", map[string]any{
		"behavior": "smooth",
		"block":    "nearest",
	})
}

func computedStyle(el js.Value) js.Value {
	return js.Global().Call("getComputedStyle", el)
}

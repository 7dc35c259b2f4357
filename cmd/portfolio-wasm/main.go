//go:build js && wasm

// Command portfolio-wasm is the page's client: show more/less grids, the theme
// toggle, the navbar, portfolio tabs and the typing effect.
//
// Build it into static/ with "go generate" from the module root.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"syscall/js"
	"time"

	"github.com/Zachkp/portfolio/internal/content"
	"github.com/Zachkp/portfolio/internal/disclosure"
	"github.com/Zachkp/portfolio/internal/disclosure/jsdom"
	"github.com/Zachkp/portfolio/internal/nav"
	"github.com/Zachkp/portfolio/internal/theme"
	"github.com/Zachkp/portfolio/internal/typing"
)

func main() {
	doc := js.Global().Get("document")

	var controllers []*disclosure.Controller
	for _, section := range content.Sections() {
		c, ok := jsdom.ByID(section.ID)
		if !ok {
			continue
		}
		ctl := disclosure.New(c, disclosure.WithRowLimit(rowLimit(c.Element())))
		if ctl != nil {
			controllers = append(controllers, ctl)
		}
	}
	slog.Debug("disclosure controllers bound", "count", len(controllers))

	bindNav(doc)
	bindTabs(doc)
	bindTheme(doc)
	go typeRoles(doc.Call("getElementById", "typing-text"))

	select {}
}

// rowLimit reads data-row-limit, falling back to the default.
func rowLimit(el js.Value) int {
	v := el.Call("getAttribute", "data-row-limit")
	if v.IsNull() {
		return disclosure.DefaultRowLimit
	}
	n, err := strconv.Atoi(v.String())
	if err != nil || n < 1 {
		return disclosure.DefaultRowLimit
	}
	return n
}

// bindNav wires the mobile menu, the navbar's scrolled style and the
// active link for the section in view.
func bindNav(doc js.Value) {
	window := js.Global()
	navbar := doc.Call("getElementById", "navbar")
	hamburger := doc.Call("getElementById", "hamburger")
	center := doc.Call("querySelector", ".nav-center")
	links := doc.Call("querySelectorAll", ".nav-link")

	setMenu := func(open bool) {
		if hamburger.IsNull() || center.IsNull() {
			return
		}
		hamburger.Get("classList").Call("toggle", "active", open)
		center.Get("classList").Call("toggle", "active", open)
		icon := hamburger.Call("querySelector", "i")
		if !icon.IsNull() {
			icon.Get("classList").Call("replace", nav.MenuIcon(!open), nav.MenuIcon(open))
		}
	}

	if !hamburger.IsNull() {
		hamburger.Call("addEventListener", "click", js.FuncOf(func(js.Value, []js.Value) any {
			setMenu(!hamburger.Get("classList").Call("contains", "active").Bool())
			return nil
		}))
	}
	for i := 0; i < links.Length(); i++ {
		links.Index(i).Call("addEventListener", "click", js.FuncOf(func(js.Value, []js.Value) any {
			setMenu(false)
			return nil
		}))
	}

	highlight := func() {
		nodes := doc.Call("querySelectorAll", "section[id]")
		sections := make([]nav.Section, nodes.Length())
		for i := range sections {
			el := nodes.Index(i)
			sections[i] = nav.Section{
				ID:     el.Get("id").String(),
				Top:    el.Get("offsetTop").Float(),
				Height: el.Get("offsetHeight").Float(),
			}
		}
		active := nav.ActiveSection(window.Get("scrollY").Float(), sections)
		for i := 0; i < links.Length(); i++ {
			link := links.Index(i)
			link.Get("classList").Call("toggle", "active", active != "" && link.Call("getAttribute", "href").String() == "#"+active)
		}
	}
	debounced := nav.Debounce(nav.ScrollDebounce, highlight)

	window.Call("addEventListener", "scroll", js.FuncOf(func(js.Value, []js.Value) any {
		if !navbar.IsNull() {
			navbar.Get("classList").Call("toggle", "scrolled", nav.Scrolled(window.Get("scrollY").Float()))
		}
		debounced()
		return nil
	}))
	highlight()
}

func bindTabs(doc js.Value) {
	buttons := doc.Call("querySelectorAll", ".tab-btn")
	contents := doc.Call("querySelectorAll", ".tab-content")
	for i := 0; i < buttons.Length(); i++ {
		btn := buttons.Index(i)
		btn.Call("addEventListener", "click", js.FuncOf(func(js.Value, []js.Value) any {
			for j := 0; j < buttons.Length(); j++ {
				buttons.Index(j).Get("classList").Call("remove", "active")
			}
			for j := 0; j < contents.Length(); j++ {
				contents.Index(j).Get("classList").Call("remove", "active")
			}
			btn.Get("classList").Call("add", "active")
			target := doc.Call("getElementById", btn.Call("getAttribute", "data-tab").String())
			if !target.IsNull() {
				target.Get("classList").Call("add", "active")
			}
			return nil
		}))
	}
}

func bindTheme(doc js.Value) {
	toggle := doc.Call("getElementById", "theme-toggle")
	icon := doc.Call("querySelector", ".theme-icon")
	if toggle.IsNull() || icon.IsNull() {
		return
	}
	body := doc.Get("body")

	toggle.Call("addEventListener", "click", js.FuncOf(func(js.Value, []js.Value) any {
		current := theme.Parse(body.Call("getAttribute", "data-theme").String())
		next := current.Toggle()

		body.Call("setAttribute", "data-theme", next.String())
		icon.Get("classList").Call("replace", current.Icon(), next.Icon())

		// fetch blocks, so it must not run on the event callback.
		go saveTheme(next)
		return nil
	}))
}

func saveTheme(t theme.Theme) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	form := url.Values{theme.Key: {t.String()}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, "/theme", strings.NewReader(form.Encode()))
	if err != nil {
		slog.Error("build theme request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		slog.Warn("save theme", "error", err)
		return
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		slog.Warn("save theme", "status", resp.StatusCode)
	}
}

func typeRoles(el js.Value) {
	if el.IsNull() {
		return
	}
	tw := typing.New(content.Roles, typing.DefaultTiming)
	for {
		text, delay := tw.Next()
		el.Set("textContent", text)
		time.Sleep(delay)
	}
}

package disclosure

type fakeGrid struct {
	items         int
	columns       int
	itemHeight    float64
	contentHeight float64
	onResize      []func()
}

func (g *fakeGrid) Columns() int           { return g.columns }
func (g *fakeGrid) ItemHeight() float64    { return g.itemHeight }
func (g *fakeGrid) ContentHeight() float64 { return g.contentHeight }
func (g *fakeGrid) ItemCount() int         { return g.items }
func (g *fakeGrid) OnResize(fn func())     { g.onResize = append(g.onResize, fn) }

func (g *fakeGrid) resize() {
	for _, fn := range g.onResize {
		fn()
	}
}

type fakeListener struct {
	fn       func()
	canceled bool
	fired    bool
}

type fakeWrapper struct {
	maxHeight string
	writes    int
	listeners []*fakeListener
}

func (w *fakeWrapper) SetMaxHeight(css string) {
	w.maxHeight = css
	w.writes++
}

func (w *fakeWrapper) OnceTransitionEnd(fn func()) func() {
	l := &fakeListener{fn: fn}
	w.listeners = append(w.listeners, l)
	return func() { l.canceled = true }
}

// transitionEnd dispatches one transitionend event.
func (w *fakeWrapper) transitionEnd() {
	for _, l := range w.listeners {
		if l.canceled || l.fired {
			continue
		}
		l.fired = true
		l.fn()
	}
}

type fakeToggle struct {
	label    string
	icon     string
	active   bool
	scrolls  int
	activate func()
}

func (t *fakeToggle) SetContent(label, icon string) { t.label, t.icon = label, icon }
func (t *fakeToggle) SetActive(active bool)         { t.active = active }
func (t *fakeToggle) ScrollIntoView()               { t.scrolls++ }

func (t *fakeToggle) click() { t.activate() }

type fakeContainer struct {
	grid    *fakeGrid
	wrapper *fakeWrapper

	toggles  []*fakeToggle
	attached map[Toggle]int

	gridSelector    string
	wrapperSelector string
}

func newFakeContainer(items, columns int, itemHeight, contentHeight float64) *fakeContainer {
	return &fakeContainer{
		grid: &fakeGrid{
			items:         items,
			columns:       columns,
			itemHeight:    itemHeight,
			contentHeight: contentHeight,
		},
		wrapper:  &fakeWrapper{},
		attached: make(map[Toggle]int),
	}
}

func (c *fakeContainer) Locate(gridSelector, wrapperSelector string) (Grid, Wrapper, bool) {
	c.gridSelector, c.wrapperSelector = gridSelector, wrapperSelector
	if c.grid == nil || c.wrapper == nil {
		return nil, nil, false
	}
	return c.grid, c.wrapper, true
}

func (c *fakeContainer) NewToggle(onActivate func()) Toggle {
	t := &fakeToggle{activate: onActivate}
	c.toggles = append(c.toggles, t)
	return t
}

func (c *fakeContainer) HasToggle(t Toggle) bool { return c.attached[t] > 0 }
func (c *fakeContainer) AppendToggle(t Toggle)   { c.attached[t]++ }
func (c *fakeContainer) RemoveToggle(t Toggle)   { delete(c.attached, t) }

// togglesInDOM counts attached toggle elements, duplicates included.
func (c *fakeContainer) togglesInDOM() int {
	n := 0
	for _, count := range c.attached {
		n += count
	}
	return n
}

func (c *fakeContainer) toggle() *fakeToggle {
	if len(c.toggles) == 0 {
		return nil
	}
	return c.toggles[0]
}

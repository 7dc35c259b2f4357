// Package disclosure implements the "show more / show less" controller for
// uniform grids: a container shows a fixed number of rows until the user asks
// for the rest, and stays correct as the grid's column count changes.
//
// The package does not touch a DOM. Browsers plug in through the Container,
// Grid, Wrapper and Toggle interfaces (see the jsdom subpackage); tests plug
// in fakes.
package disclosure

// DefaultRowLimit is the number of rows visible while collapsed.
const DefaultRowLimit = 2

// Default selectors matching the page markup.
const (
	DefaultGridSelector    = ".projects-grid, .certificates-grid, .skills-grid"
	DefaultWrapperSelector = ".grid-wrapper"
)

// LayoutMeasurer reads the current layout of a grid.
type LayoutMeasurer interface {
	Columns() int
	ItemHeight() float64
	ContentHeight() float64
}

// Grid is the element holding the items.
type Grid interface {
	LayoutMeasurer
	// ItemCount returns the number of child items right now.
	ItemCount() int
	// OnResize registers fn to run whenever the grid's observed size changes.
	OnResize(fn func())
}

// Wrapper is the element whose max-height clamps the grid.
type Wrapper interface {
	SetMaxHeight(css string)
	// OnceTransitionEnd runs fn after the next height transition completes.
	// The returned cancel func removes the listener if it has not fired yet.
	OnceTransitionEnd(fn func()) (cancel func())
}

// Toggle is the show more / show less control.
type Toggle interface {
	SetContent(label, icon string)
	SetActive(active bool)
	ScrollIntoView()
}

// Container owns the grid, the wrapper and the toggle.
type Container interface {
	Locate(gridSelector, wrapperSelector string) (Grid, Wrapper, bool)
	NewToggle(onActivate func()) Toggle
	HasToggle(t Toggle) bool
	AppendToggle(t Toggle)
	RemoveToggle(t Toggle)
}

// ResizePolicy decides what a layout change does to a user-expanded container.
type ResizePolicy int

const (
	// PreserveOnResize keeps the current state across resizes.
	PreserveOnResize ResizePolicy = iota
	// CollapseOnResize collapses the container on every resize.
	CollapseOnResize
)

type options struct {
	rowLimit        int
	gridSelector    string
	wrapperSelector string
	resize          ResizePolicy
}

// Option configures a Controller.
type Option func(*options)

// WithRowLimit sets the number of rows shown while collapsed. Values below 1
// are ignored.
func WithRowLimit(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.rowLimit = n
		}
	}
}

// WithSelectors overrides how the grid and the wrapper are located.
func WithSelectors(grid, wrapper string) Option {
	return func(o *options) {
		o.gridSelector = grid
		o.wrapperSelector = wrapper
	}
}

// WithResizePolicy sets the resize behavior.
func WithResizePolicy(p ResizePolicy) Option {
	return func(o *options) {
		o.resize = p
	}
}

// Controller drives the disclosure of a single container. It is meant to be
// called from one event loop and is not safe for concurrent use.
type Controller struct {
	container Container
	grid      Grid
	wrapper   Wrapper
	toggle    Toggle
	opts      options

	state   State
	pending func()
}

// New binds a controller to c and evaluates it once. It returns nil when the
// container has no grid or no wrapper; the feature then simply does not apply.
func New(c Container, opts ...Option) *Controller {
	o := options{
		rowLimit:        DefaultRowLimit,
		gridSelector:    DefaultGridSelector,
		wrapperSelector: DefaultWrapperSelector,
	}
	for _, opt := range opts {
		opt(&o)
	}

	grid, wrapper, ok := c.Locate(o.gridSelector, o.wrapperSelector)
	if !ok {
		return nil
	}

	ctl := &Controller{
		container: c,
		grid:      grid,
		wrapper:   wrapper,
		opts:      o,
		state:     Collapsed,
	}
	ctl.toggle = c.NewToggle(ctl.Activate)
	ctl.Evaluate()
	grid.OnResize(ctl.resized)
	return ctl
}

// State reports the current disclosure state.
func (c *Controller) State() State {
	return c.state
}

// RowLimit reports the configured row limit.
func (c *Controller) RowLimit() int {
	return c.opts.rowLimit
}

// Evaluate re-reads the items and the layout and applies the result. The
// state is left alone unless the container turns out to be inert.
func (c *Controller) Evaluate() {
	m := Metrics{
		Columns:       c.grid.Columns(),
		ItemHeight:    c.grid.ItemHeight(),
		ContentHeight: c.grid.ContentHeight(),
	}
	v := Resolve(c.grid.ItemCount(), c.opts.rowLimit, c.state, m)
	if v.Deferred && !v.ShowToggle {
		return
	}

	if !v.ShowToggle {
		c.state = Collapsed
		c.cancelPending()
		if c.container.HasToggle(c.toggle) {
			c.container.RemoveToggle(c.toggle)
		}
		c.wrapper.SetMaxHeight(v.MaxHeight)
		return
	}

	if !c.container.HasToggle(c.toggle) {
		c.container.AppendToggle(c.toggle)
	}
	c.apply(v)
}

// Activate flips the state, as a click on the toggle does.
func (c *Controller) Activate() {
	c.state = c.state.Flip()
	c.cancelPending()
	c.Evaluate()

	if c.state == Collapsed && c.container.HasToggle(c.toggle) {
		c.pending = c.wrapper.OnceTransitionEnd(func() {
			c.pending = nil
			c.toggle.ScrollIntoView()
		})
	}
}

func (c *Controller) resized() {
	if c.opts.resize == CollapseOnResize {
		c.state = Collapsed
	}
	c.Evaluate()
}

func (c *Controller) apply(v View) {
	c.toggle.SetContent(v.Label, v.Icon)
	c.toggle.SetActive(v.Active)
	if !v.Deferred {
		c.wrapper.SetMaxHeight(v.MaxHeight)
	}
}

func (c *Controller) cancelPending() {
	if c.pending != nil {
		c.pending()
		c.pending = nil
	}
}

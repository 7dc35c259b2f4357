package disclosure

import "strconv"

// State is the visual state of one disclosure.
type State int

const (
	Collapsed State = iota
	Expanded
)

func (s State) String() string {
	if s == Expanded {
		return "expanded"
	}
	return "collapsed"
}

// Flip returns the opposite state.
func (s State) Flip() State {
	if s == Expanded {
		return Collapsed
	}
	return Expanded
}

// Toggle labels and icon classes.
const (
	LabelMore = "Show More"
	LabelLess = "Show Less"
	IconMore  = "ri-arrow-down-s-line"
	IconLess  = "ri-arrow-up-s-line"
)

// Unconstrained is the max-height written when the wrapper is not clamped.
const Unconstrained = "none"

// Metrics is one snapshot of the grid layout.
type Metrics struct {
	Columns       int     // column tracks in the effective grid layout
	ItemHeight    float64 // one item's height including vertical margins
	ContentHeight float64 // natural (scroll) height of the grid
}

// View is the concrete output of a disclosure for a given state and layout.
type View struct {
	ShowToggle bool
	// MaxHeight is a CSS length, or Unconstrained. Empty when Deferred.
	MaxHeight string
	Label     string
	Icon      string
	Active    bool
	// Deferred is set when the layout could not be measured; the height
	// constraint must be left untouched until the next evaluation.
	Deferred bool
}

// Resolve maps an item count, row limit, state and layout snapshot to a View.
// It has no side effects.
func Resolve(items, rowLimit int, state State, m Metrics) View {
	if m.Columns < 1 {
		return View{Deferred: true}
	}
	if items <= m.Columns*rowLimit {
		return View{MaxHeight: Unconstrained}
	}

	v := View{ShowToggle: true}
	var height float64
	if state == Expanded {
		v.Label, v.Icon, v.Active = LabelLess, IconLess, true
		height = m.ContentHeight
	} else {
		v.Label, v.Icon = LabelMore, IconMore
		height = m.ItemHeight * float64(rowLimit)
	}
	if height <= 0 {
		v.Deferred = true
		return v
	}
	v.MaxHeight = pixels(height)
	return v
}

func pixels(h float64) string {
	return strconv.FormatFloat(h, 'f', -1, 64) + "px"
}

// Package nav decides the navbar's state from the scroll position.
package nav

import (
	"sync"
	"time"
)

const (
	// ScrolledOffset is how far the page scrolls before the navbar gets
	// its "scrolled" background.
	ScrolledOffset = 50
	// NavbarHeight is subtracted from section tops so a section counts as
	// current once it reaches the bottom of the fixed navbar.
	NavbarHeight = 100
	// ScrollDebounce delays active-link updates while the page scrolls.
	ScrollDebounce = 10 * time.Millisecond
)

// Menu icon classes.
const (
	IconMenu  = "ri-menu-line"
	IconClose = "ri-close-line"
)

// Section is a page section's position in document coordinates.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

// Scrolled reports whether the navbar should show its scrolled style.
func Scrolled(scrollY float64) bool {
	return scrollY > ScrolledOffset
}

// ActiveSection returns the id of the section under the navbar, or "" when
// none is. Later sections win when ranges overlap.
func ActiveSection(scrollY float64, sections []Section) string {
	var current string
	for _, s := range sections {
		top := s.Top - NavbarHeight
		if scrollY >= top && scrollY < top+s.Height {
			current = s.ID
		}
	}
	return current
}

// MenuIcon is the hamburger button's icon for the given menu state.
func MenuIcon(open bool) string {
	if open {
		return IconClose
	}
	return IconMenu
}

// Debounce returns a func that runs fn once calls have stopped for wait.
func Debounce(wait time.Duration, fn func()) func() {
	var (
		mu    sync.Mutex
		timer *time.Timer
	)
	return func() {
		mu.Lock()
		defer mu.Unlock()
		if timer != nil {
			timer.Stop()
		}
		timer = time.AfterFunc(wait, fn)
	}
}

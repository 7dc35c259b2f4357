// Package typing drives the hero section's typewriter effect.
package typing

import "time"

// Timing controls the pace of the effect.
type Timing struct {
	Type   time.Duration // per typed rune
	Delete time.Duration // per deleted rune
	Hold   time.Duration // on a fully typed role
	Pause  time.Duration // on an empty line before the next role
}

// DefaultTiming is the pace the page uses.
var DefaultTiming = Timing{
	Type:   100 * time.Millisecond,
	Delete: 50 * time.Millisecond,
	Hold:   2 * time.Second,
	Pause:  500 * time.Millisecond,
}

// Typewriter types each role, holds it, deletes it and moves to the next one,
// wrapping around forever.
type Typewriter struct {
	roles    [][]rune
	timing   Timing
	role     int
	chars    int
	deleting bool
}

// New returns a typewriter over roles. Empty roles are skipped.
func New(roles []string, timing Timing) *Typewriter {
	tw := &Typewriter{timing: timing}
	for _, r := range roles {
		if r != "" {
			tw.roles = append(tw.roles, []rune(r))
		}
	}
	return tw
}

// Next advances one step and returns the text to show and how long to wait
// before the following step.
func (tw *Typewriter) Next() (string, time.Duration) {
	if len(tw.roles) == 0 {
		return "", tw.timing.Pause
	}

	current := tw.roles[tw.role]
	delay := tw.timing.Type
	if tw.deleting {
		tw.chars--
		delay = tw.timing.Delete
	} else {
		tw.chars++
	}
	text := string(current[:tw.chars])

	switch {
	case !tw.deleting && tw.chars == len(current):
		tw.deleting = true
		delay = tw.timing.Hold
	case tw.deleting && tw.chars == 0:
		tw.deleting = false
		tw.role = (tw.role + 1) % len(tw.roles)
		delay = tw.timing.Pause
	}
	return text, delay
}

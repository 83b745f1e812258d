package trainer

import (
	"fmt"
	"math/rand/v2"
)

// Screen identifies one view of the training page.
type Screen string

const (
	ScreenHome  Screen = "home"
	ScreenKihon Screen = "kihon"
	ScreenKata  Screen = "kata"
)

// Navigator models the page's home / kihon / kata views. Entering a list
// view, or reshuffling it, always draws a fresh selection.
type Navigator struct {
	r       *rand.Rand
	current Screen
	kihon   []Combination
	kata    []KataSuggestion
}

// NewNavigator starts on the home screen.
func NewNavigator(r *rand.Rand) *Navigator {
	return &Navigator{r: r, current: ScreenHome}
}

// Current returns the active screen.
func (n *Navigator) Current() Screen { return n.current }

// BackVisible reports whether the back button is shown.
func (n *Navigator) BackVisible() bool { return n.current != ScreenHome }

// Show switches to screen and renders it.
func (n *Navigator) Show(screen Screen) error {
	switch screen {
	case ScreenHome, ScreenKihon, ScreenKata:
	default:
		return fmt.Errorf("unknown screen %q", screen)
	}
	n.current = screen
	n.render()
	return nil
}

// Reshuffle redraws the active list screen. It is a no-op on home.
func (n *Navigator) Reshuffle() { n.render() }

// Back returns to the home screen.
func (n *Navigator) Back() {
	n.current = ScreenHome
	n.render()
}

// Kihon returns the combinations shown on the kihon screen.
func (n *Navigator) Kihon() []Combination { return n.kihon }

// Kata returns the suggestions shown on the kata screen.
func (n *Navigator) Kata() []KataSuggestion { return n.kata }

func (n *Navigator) render() {
	switch n.current {
	case ScreenKihon:
		n.kihon = DrawKihon(n.r)
	case ScreenKata:
		n.kata = DrawKata(n.r)
	}
}

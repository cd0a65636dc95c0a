package tui

import (
	"strings"

	"recipedex/cmd/recipedex/ui"
)

// Selector is a horizontal option picker. Single-select mode cycles with
// left/right; multi-select mode additionally toggles the highlighted option
// with space. It stands in for the page's <select> elements.
type Selector struct {
	Label      string
	Options    []string
	Multi      bool
	AllowEmpty bool

	index  int
	chosen map[int]bool
}

// NewSelector creates a single-select picker. With allowEmpty the first
// position means "no filter".
func NewSelector(label string, options []string, allowEmpty bool) *Selector {
	return &Selector{
		Label:      label,
		Options:    options,
		AllowEmpty: allowEmpty,
		chosen:     make(map[int]bool),
	}
}

// NewMultiSelector creates a multi-select picker.
func NewMultiSelector(label string, options []string) *Selector {
	return &Selector{
		Label:   label,
		Options: options,
		Multi:   true,
		chosen:  make(map[int]bool),
	}
}

// size is the option count including the empty slot.
func (s *Selector) size() int {
	n := len(s.Options)
	if s.AllowEmpty {
		n++
	}
	return n
}

// Next moves the highlight right.
func (s *Selector) Next() {
	s.index = (s.index + 1) % s.size()
}

// Prev moves the highlight left.
func (s *Selector) Prev() {
	s.index = (s.index + s.size() - 1) % s.size()
}

// Toggle flips the highlighted option in multi-select mode.
func (s *Selector) Toggle() {
	if !s.Multi {
		return
	}
	s.chosen[s.index] = !s.chosen[s.index]
}

// Value returns the selected option in single-select mode; empty string
// means no selection.
func (s *Selector) Value() string {
	if s.Multi {
		return ""
	}
	if s.AllowEmpty {
		if s.index == 0 {
			return ""
		}
		return s.Options[s.index-1]
	}
	return s.Options[s.index]
}

// Values returns the toggled options in multi-select mode, in option order.
func (s *Selector) Values() []string {
	if !s.Multi {
		if v := s.Value(); v != "" {
			return []string{v}
		}
		return nil
	}
	var out []string
	for i, opt := range s.Options {
		if s.chosen[i] {
			out = append(out, opt)
		}
	}
	return out
}

// Reset clears the selection.
func (s *Selector) Reset() {
	s.index = 0
	s.chosen = make(map[int]bool)
}

// View renders the picker. The highlighted option is bracketed when the
// selector has focus.
func (s *Selector) View(styles ui.Styles, focused bool) string {
	var parts []string
	render := func(i int, label string) {
		marker := ""
		if s.Multi && s.chosen[i] {
			marker = "✓"
		}
		text := marker + label
		switch {
		case i == s.index && focused:
			parts = append(parts, styles.Bold.Foreground(styles.Theme.Primary).Render("["+text+"]"))
		case s.Multi && s.chosen[i]:
			parts = append(parts, styles.Label.Render(" "+text+" "))
		case !s.Multi && i == s.index:
			parts = append(parts, styles.Label.Render(" "+text+" "))
		default:
			parts = append(parts, styles.Muted.Render(" "+text+" "))
		}
	}

	if s.AllowEmpty {
		render(0, "any")
		for i, opt := range s.Options {
			render(i+1, opt)
		}
	} else {
		for i, opt := range s.Options {
			render(i, opt)
		}
	}

	return strings.Join(parts, " ")
}

// Package tagfield implements a chip-style tag input with debounced
// autosuggest. One Model owns an ordered, de-duplicated tag set, a free-text
// entry box and a suggestion dropdown. The component is driven entirely by
// bubbletea messages, so commit, debounce and stale-response discard are all
// testable without a terminal.
//
// The controller moves through four informal states: idle, debouncing
// (a quiet-window timer is pending), suggestions open, and back to idle on
// commit, blur, escape or selection. A monotonically increasing sequence
// number tags every scheduled fetch; a response is rendered only while its
// sequence is still the latest, which logically cancels anything stale.
package tagfield

import (
	"context"
	"strings"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"recipedex/internal/ingredient"
)

const (
	// DefaultDebounce is the quiet window before a suggestion fetch fires.
	DefaultDebounce = 250 * time.Millisecond
	// DefaultMinQuery is the minimum trimmed entry length that triggers a
	// fetch; shorter queries clear the dropdown without a network call.
	DefaultMinQuery = 2
	// DefaultLimit is the suggestion count requested per fetch.
	DefaultLimit = 8
)

// Fetcher retrieves suggestion candidates for a query prefix. exclude lists
// tokens already held so the collaborator can skip them.
type Fetcher func(ctx context.Context, query string, exclude []string, limit int) ([]string, error)

// Options configure a tag field.
type Options struct {
	Placeholder string
	Debounce    time.Duration
	MinQuery    int
	Limit       int
	Fetch       Fetcher
}

// lastID distinguishes message streams when several tag fields live in one
// program.
var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// debounceElapsedMsg fires when the quiet window for one scheduled fetch
// ends.
type debounceElapsedMsg struct {
	id  int
	seq int
}

// suggestionsMsg carries fetched candidates back into the update loop.
type suggestionsMsg struct {
	id    int
	seq   int
	items []string
}

// Model is one tag input instance.
type Model struct {
	id    int
	input textinput.Model
	tags  *ingredient.TagSet

	// value mirrors the tag set as its comma-joined serialization. It is
	// resynced on every mutation and is what form submission reads.
	value string

	suggestions []string
	cursor      int

	seq  int
	opts Options

	Styles Styles
}

// New creates a tag field with the given options. Zero option values fall
// back to the package defaults.
func New(opts Options) Model {
	if opts.Debounce <= 0 {
		opts.Debounce = DefaultDebounce
	}
	if opts.MinQuery <= 0 {
		opts.MinQuery = DefaultMinQuery
	}
	if opts.Limit <= 0 {
		opts.Limit = DefaultLimit
	}

	input := textinput.New()
	input.Placeholder = opts.Placeholder
	input.Prompt = ""

	return Model{
		id:     nextID(),
		input:  input,
		tags:   ingredient.NewTagSet(),
		opts:   opts,
		Styles: DefaultStyles(),
	}
}

// Update handles one message and returns the next model state.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !m.input.Focused() {
			return m, nil
		}
		return m.handleKey(msg)

	case debounceElapsedMsg:
		if msg.id != m.id || msg.seq != m.seq {
			// A newer trigger restarted the window; this timer is dead.
			return m, nil
		}
		return m, m.fetchCmd(strings.TrimSpace(m.input.Value()), msg.seq)

	case suggestionsMsg:
		if msg.id != m.id || msg.seq != m.seq {
			// Stale response, superseded by a newer request.
			return m, nil
		}
		m.suggestions = m.filterKnown(msg.items)
		m.cursor = 0
		return m, nil
	}

	return m.passToInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyRunes && len(msg.Runes) == 1 && msg.Runes[0] == ',':
		// Comma commits immediately; the character itself is suppressed.
		m.commit()
		return m, nil

	case msg.Type == tea.KeyEnter:
		if len(m.suggestions) > 0 {
			m.choose(m.cursor)
			return m, nil
		}
		if strings.TrimSpace(m.input.Value()) != "" {
			m.commit()
		}
		return m, nil

	case msg.Type == tea.KeyBackspace && m.input.Value() == "":
		m.tags.RemoveLast()
		m.syncValue()
		return m, nil

	case msg.Type == tea.KeyEsc:
		m.closeSuggestions()
		return m, nil

	case msg.Type == tea.KeyDown && len(m.suggestions) > 0:
		m.cursor = (m.cursor + 1) % len(m.suggestions)
		return m, nil

	case msg.Type == tea.KeyUp && len(m.suggestions) > 0:
		m.cursor = (m.cursor + len(m.suggestions) - 1) % len(m.suggestions)
		return m, nil
	}

	return m.passToInput(msg)
}

func (m Model) passToInput(msg tea.Msg) (Model, tea.Cmd) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.schedule())
}

// schedule arms the debounce window for the current entry text. Arming a new
// window advances the sequence number, which implicitly cancels any pending
// timer and orphans any in-flight fetch.
func (m *Model) schedule() tea.Cmd {
	m.seq++
	query := strings.TrimSpace(m.input.Value())
	if len([]rune(query)) < m.opts.MinQuery {
		m.suggestions = nil
		m.cursor = 0
		return nil
	}
	seq := m.seq
	id := m.id
	return tea.Tick(m.opts.Debounce, func(time.Time) tea.Msg {
		return debounceElapsedMsg{id: id, seq: seq}
	})
}

// fetchCmd performs the suggestion fetch for one sequence number. Failures
// degrade to an empty candidate list; the dropdown simply stays closed.
func (m Model) fetchCmd(query string, seq int) tea.Cmd {
	if m.opts.Fetch == nil {
		return nil
	}
	id := m.id
	fetch := m.opts.Fetch
	exclude := m.tags.Tokens()
	limit := m.opts.Limit
	return func() tea.Msg {
		items, err := fetch(context.Background(), query, exclude, limit)
		if err != nil {
			items = nil
		}
		return suggestionsMsg{id: id, seq: seq, items: items}
	}
}

// filterKnown drops candidates already present in the tag set, comparing
// case-insensitively.
func (m Model) filterKnown(items []string) []string {
	var out []string
	for _, item := range items {
		if tok := ingredient.CleanToken(item); tok != "" && !m.tags.Contains(tok) {
			out = append(out, tok)
		}
	}
	return out
}

// commit turns the current entry text into chips. When the text parses to at
// least one token the entry is cleared; otherwise the trimmed text stays in
// place. Either way the dropdown closes and any pending fetch is orphaned.
func (m *Model) commit() {
	raw := m.input.Value()
	var tokens []string
	for _, piece := range ingredient.ParseDelimited(raw) {
		if tok := ingredient.CleanToken(piece); tok != "" {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) > 0 {
		m.tags.AddAll(tokens)
		m.input.SetValue("")
	} else {
		m.input.SetValue(strings.TrimSpace(raw))
	}
	m.closeSuggestions()
	m.syncValue()
}

// choose adds a single suggestion, clears the entry and closes the dropdown.
// Focus stays on the entry field.
func (m *Model) choose(i int) {
	if i < 0 || i >= len(m.suggestions) {
		return
	}
	m.tags.Add(m.suggestions[i])
	m.input.SetValue("")
	m.closeSuggestions()
	m.syncValue()
}

func (m *Model) closeSuggestions() {
	m.suggestions = nil
	m.cursor = 0
	m.seq++ // orphan pending timers and in-flight fetches
}

func (m *Model) syncValue() {
	m.value = m.tags.String()
}

// Commit commits any pending entry text into chips without changing focus.
// Form submission uses it to flush what the user typed but never confirmed.
func (m *Model) Commit() {
	m.commit()
}

// Focus gives the entry box focus. Focus counts as a suggestion trigger for
// whatever text is already present.
func (m *Model) Focus() tea.Cmd {
	return tea.Batch(m.input.Focus(), m.schedule())
}

// Blur commits pending entry text and removes focus.
func (m *Model) Blur() {
	m.commit()
	m.input.Blur()
}

// Focused reports whether the entry box has focus.
func (m Model) Focused() bool { return m.input.Focused() }

// Value returns the comma-joined serialization of the tag set, the
// authoritative form submission value.
func (m Model) Value() string { return m.value }

// Tokens returns the tags in entry order.
func (m Model) Tokens() []string { return m.tags.Tokens() }

// EntryText returns the uncommitted entry text.
func (m Model) EntryText() string { return m.input.Value() }

// Suggesting returns the candidates currently shown in the dropdown.
func (m Model) Suggesting() []string {
	out := make([]string, len(m.suggestions))
	copy(out, m.suggestions)
	return out
}

// SetTokens replaces the tag set, normalizing and de-duplicating the given
// values.
func (m *Model) SetTokens(tokens []string) {
	m.tags = ingredient.NewTagSet()
	m.tags.AddAll(ingredient.NormalizeList(tokens))
	m.syncValue()
}

// Reset clears tags, entry text and dropdown.
func (m *Model) Reset() {
	m.tags = ingredient.NewTagSet()
	m.input.SetValue("")
	m.closeSuggestions()
	m.syncValue()
}

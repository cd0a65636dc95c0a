package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Update is the root message loop.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case resultsMsg:
		m.loading = false
		if msg.err != nil {
			// Transport failures and service rejections both land here; the
			// action is over, the UI stays usable.
			m.setStatus(statusError, "Search failed: "+msg.err.Error())
			return m, nil
		}
		m.results = msg.rows
		m.cursor = 0
		if len(msg.rows) == 0 {
			m.browsing = false
			m.setStatus(statusInfo, "No recipes found.")
		} else {
			m.browsing = true
			m.setStatus(statusInfo, fmt.Sprintf("%d recipes. Up/Down to browse, Enter for details.", len(msg.rows)))
		}
		return m, nil

	case addDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.setStatus(statusError, "Add failed: "+msg.err.Error())
			return m, nil
		}
		m.add.reset()
		m.setStatus(statusSuccess, fmt.Sprintf("Recipe added (id %d).", msg.id))
		return m, nil
	}

	return m.routeToForm(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	if m.detailOpen {
		switch msg.String() {
		case "esc", "q", "enter":
			m.detailOpen = false
		}
		return m, nil
	}

	// View switching.
	switch msg.String() {
	case "f1":
		return m.switchView(viewIngredients)
	case "f2":
		return m.switchView(viewName)
	case "f3":
		return m.switchView(viewAdd)
	}

	if m.browsing {
		return m.handleBrowseKey(msg)
	}

	switch msg.Type {
	case tea.KeyTab:
		return m.cycleFocus(1)
	case tea.KeyShiftTab:
		return m.cycleFocus(-1)
	case tea.KeyEnter:
		if handled, next, cmd := m.maybeSubmit(msg); handled {
			return next, cmd
		}
	}

	return m.routeToForm(msg)
}

// handleBrowseKey navigates the results table.
func (m Model) handleBrowseKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.results)-1 {
			m.cursor++
		}
	case "enter":
		m.openDetail()
	case "esc", "tab":
		// Back to the form.
		m.browsing = false
	}
	return m, nil
}

func (m Model) switchView(v view) (tea.Model, tea.Cmd) {
	if v == m.view {
		return m, nil
	}
	// Leaving a view blurs (and thereby commits) its focused field.
	if f := m.activeForm(); f != nil {
		f.blurFocused()
	} else {
		m.add.blurFocused()
	}

	m.view = v
	m.browsing = false
	m.detailOpen = false
	m.setStatus(statusNone, "")

	if f := m.activeForm(); f != nil {
		return m, f.focusFocused()
	}
	return m, m.add.focusFocused()
}

func (m Model) cycleFocus(delta int) (tea.Model, tea.Cmd) {
	if f := m.activeForm(); f != nil {
		return m, f.cycle(delta)
	}
	return m, m.add.cycle(delta)
}

// maybeSubmit decides whether Enter means "submit the form". Tag fields and
// the instructions textarea own their Enter key; the remaining fields and
// the submit affordance trigger the request.
func (m Model) maybeSubmit(msg tea.KeyMsg) (bool, tea.Model, tea.Cmd) {
	if f := m.activeForm(); f != nil {
		switch f.focus {
		case searchFieldIngredients:
			// Enter commits inside the tag field unless there is nothing to
			// commit; then it submits the search, like the page form.
			if f.ingredients.EntryText() != "" || len(f.ingredients.Suggesting()) > 0 {
				return false, m, nil
			}
			next, cmd := m.submitSearch()
			return true, next, cmd
		case searchFieldName, searchFieldLimit, searchFieldSubmit,
			searchFieldCategory, searchFieldCuisine:
			next, cmd := m.submitSearch()
			return true, next, cmd
		}
		return false, m, nil
	}

	if m.add.focus == addFieldSubmit {
		next, cmd := m.submitAdd()
		return true, next, cmd
	}
	return false, m, nil
}

func (m Model) submitSearch() (tea.Model, tea.Cmd) {
	f := m.activeForm()
	f.ingredients.Commit()

	if f.byName {
		if strings.TrimSpace(f.name.Value()) == "" {
			m.setStatus(statusError, "Please enter a recipe name.")
			return m, nil
		}
	} else if len(f.ingredients.Tokens()) == 0 {
		m.setStatus(statusError, "Please add at least one ingredient.")
		return m, nil
	}

	if _, ok := f.limitValue(m.cfg.Query.Limit); !ok {
		m.setStatus(statusError, "Result count must be a positive number.")
		return m, nil
	}

	m.loading = true
	m.setStatus(statusInfo, "Searching...")
	return m, m.searchCmd(m.view, f)
}

func (m Model) submitAdd() (tea.Model, tea.Cmd) {
	draft, err := m.add.draft()
	if err != nil {
		// Local rejection: the request is never sent.
		m.setStatus(statusError, capitalize(err.Error())+".")
		return m, nil
	}

	m.loading = true
	m.setStatus(statusInfo, "Submitting recipe...")
	return m, m.addCmd(draft)
}

func (m Model) routeToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if f := m.activeForm(); f != nil {
		return m, f.update(msg)
	}
	return m, m.add.update(msg)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

package tui

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"recipedex/internal/api"
	"recipedex/internal/tagfield"
)

// searchField indexes the focusable parts of a search form, in tab order.
type searchField int

const (
	searchFieldName searchField = iota // name-mode only
	searchFieldIngredients
	searchFieldLimit
	searchFieldCategory
	searchFieldCuisine
	searchFieldSubmit
	searchFieldCount
)

// searchForm backs both search views. byName switches between the
// name-primary form (ingredients as an extra filter) and the
// ingredients-primary one.
type searchForm struct {
	byName bool

	name        textinput.Model
	ingredients tagfield.Model
	limit       textinput.Model
	category    *Selector
	cuisine     *Selector

	focus searchField
}

func newSearchForm(byName bool, fetch tagfield.Fetcher, debounce searchFormTiming) searchForm {
	name := textinput.New()
	name.Placeholder = "recipe name"
	name.Prompt = ""

	limit := textinput.New()
	limit.Placeholder = strconv.Itoa(debounce.queryLimit)
	limit.Prompt = ""
	limit.CharLimit = 3

	placeholder := "type an ingredient, comma or Enter adds it"

	f := searchForm{
		byName: byName,
		name:   name,
		ingredients: tagfield.New(tagfield.Options{
			Placeholder: placeholder,
			Debounce:    debounce.debounce,
			MinQuery:    debounce.minQuery,
			Limit:       debounce.suggestLimit,
			Fetch:       fetch,
		}),
		limit:    limit,
		category: NewSelector("Category", api.Categories, true),
		cuisine:  NewSelector("Cuisine", api.Cuisines, true),
	}
	f.focus = f.firstField()
	return f
}

// searchFormTiming bundles the configurable knobs a search form needs.
type searchFormTiming struct {
	debounce     time.Duration
	minQuery     int
	suggestLimit int
	queryLimit   int
}

func (f *searchForm) firstField() searchField {
	if f.byName {
		return searchFieldName
	}
	return searchFieldIngredients
}

// cycle moves focus by delta, skipping the name field in ingredients mode.
func (f *searchForm) cycle(delta int) tea.Cmd {
	f.blurFocused()
	for {
		f.focus = searchField((int(f.focus) + delta + int(searchFieldCount)) % int(searchFieldCount))
		if f.focus == searchFieldName && !f.byName {
			continue
		}
		break
	}
	return f.focusFocused()
}

func (f *searchForm) blurFocused() {
	switch f.focus {
	case searchFieldName:
		f.name.Blur()
	case searchFieldIngredients:
		f.ingredients.Blur()
	case searchFieldLimit:
		f.limit.Blur()
	}
}

func (f *searchForm) focusFocused() tea.Cmd {
	switch f.focus {
	case searchFieldName:
		return f.name.Focus()
	case searchFieldIngredients:
		return f.ingredients.Focus()
	case searchFieldLimit:
		return f.limit.Focus()
	}
	return nil
}

// update routes a message to the focused field. Selector fields consume
// left/right/space themselves.
func (f *searchForm) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch f.focus {
		case searchFieldCategory:
			return f.updateSelector(f.category, keyMsg)
		case searchFieldCuisine:
			return f.updateSelector(f.cuisine, keyMsg)
		case searchFieldSubmit:
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case searchFieldName:
		f.name, cmd = f.name.Update(msg)
	case searchFieldIngredients:
		f.ingredients, cmd = f.ingredients.Update(msg)
	case searchFieldLimit:
		f.limit, cmd = f.limit.Update(msg)
	}
	return cmd
}

func (f *searchForm) updateSelector(s *Selector, msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyLeft:
		s.Prev()
	case tea.KeyRight:
		s.Next()
	case tea.KeySpace:
		s.Toggle()
	}
	return nil
}

// limitValue parses the k field. An empty field falls back to def; a
// non-numeric one is a local validation error.
func (f *searchForm) limitValue(def int) (int, bool) {
	text := strings.TrimSpace(f.limit.Value())
	if text == "" {
		return def, true
	}
	n, err := strconv.Atoi(text)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// reset clears every field back to its initial state.
func (f *searchForm) reset() {
	f.name.SetValue("")
	f.ingredients.Reset()
	f.limit.SetValue("")
	f.category.Reset()
	f.cuisine.Reset()
}

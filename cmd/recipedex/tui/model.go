// Package tui is the interactive recipedex client: two search views and a
// recipe submission form over the recipe service API, with tag-style
// ingredient entry and live autosuggest.
package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"

	"recipedex/cmd/recipedex/ui"
	"recipedex/internal/api"
	"recipedex/internal/config"
	"recipedex/internal/tagfield"
)

// view identifies the active screen.
type view int

const (
	viewIngredients view = iota
	viewName
	viewAdd
)

var viewTitles = map[view]string{
	viewIngredients: "Find by Ingredients",
	viewName:        "Find by Name",
	viewAdd:         "Add Recipe",
}

// statusKind colors the status line.
type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusSuccess
	statusError
)

// resultsMsg delivers the outcome of a search request.
type resultsMsg struct {
	origin view
	rows   []api.Recipe
	err    error
}

// addDoneMsg delivers the outcome of a recipe submission.
type addDoneMsg struct {
	id  int64
	err error
}

// Model is the root application model.
type Model struct {
	cfg    *config.Config
	client *api.Client
	styles ui.Styles

	width  int
	height int

	view       view
	searchIng  searchForm
	searchName searchForm
	add        addForm

	results  []api.Recipe
	cursor   int
	browsing bool

	detailOpen bool
	detail     string

	loading    bool
	statusKind statusKind
	statusText string

	initCmd tea.Cmd
}

// New builds the application model around a configured API client.
func New(cfg *config.Config, client *api.Client) Model {
	fetch := tagfield.Fetcher(api.NewSuggestionSource(client).Suggest)

	timing := searchFormTiming{
		debounce:     cfg.Debounce(),
		minQuery:     cfg.Suggest.MinQuery,
		suggestLimit: cfg.Suggest.Limit,
		queryLimit:   cfg.Query.Limit,
	}

	m := Model{
		cfg:        cfg,
		client:     client,
		styles:     ui.DefaultStyles(),
		searchIng:  newSearchForm(false, fetch, timing),
		searchName: newSearchForm(true, fetch, timing),
		add:        newAddForm(fetch, cfg.Debounce(), cfg.Suggest.MinQuery, cfg.Suggest.Limit),
	}
	m.initCmd = m.searchIng.focusFocused()
	return m
}

// Init starts the cursor blink of the first focused field.
func (m Model) Init() tea.Cmd {
	return m.initCmd
}

// activeForm returns the search form for the current view, or nil on the add
// view.
func (m *Model) activeForm() *searchForm {
	switch m.view {
	case viewIngredients:
		return &m.searchIng
	case viewName:
		return &m.searchName
	}
	return nil
}

// searchCmd issues the query for the given form in the background.
func (m *Model) searchCmd(origin view, f *searchForm) tea.Cmd {
	client := m.client
	k, _ := f.limitValue(m.cfg.Query.Limit)

	if f.byName {
		q := api.NameQuery{
			Name:        f.name.Value(),
			K:           k,
			Category:    f.category.Value(),
			Cuisine:     f.cuisine.Value(),
			Ingredients: f.ingredients.Tokens(),
		}
		return func() tea.Msg {
			rows, err := client.QueryByName(context.Background(), q)
			return resultsMsg{origin: origin, rows: rows, err: err}
		}
	}

	q := api.IngredientQuery{
		Ingredients: f.ingredients.Tokens(),
		K:           k,
		Category:    f.category.Value(),
		Cuisine:     f.cuisine.Value(),
	}
	return func() tea.Msg {
		rows, err := client.QueryByIngredients(context.Background(), q)
		return resultsMsg{origin: origin, rows: rows, err: err}
	}
}

// addCmd submits the draft in the background.
func (m *Model) addCmd(draft api.Draft) tea.Cmd {
	client := m.client
	return func() tea.Msg {
		id, err := client.AddRecipe(context.Background(), draft)
		return addDoneMsg{id: id, err: err}
	}
}

// openDetail renders the selected recipe into the detail pane.
func (m *Model) openDetail() {
	if m.cursor < 0 || m.cursor >= len(m.results) {
		return
	}
	md := recipeMarkdown(m.results[m.cursor])

	width := m.width - 8
	if width < 40 {
		width = 40
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		m.detail = md
	} else if rendered, err := renderer.Render(md); err != nil {
		m.detail = md
	} else {
		m.detail = rendered
	}
	m.detailOpen = true
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.statusText = text
}

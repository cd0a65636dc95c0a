package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"recipedex/internal/api"
	"recipedex/internal/tagfield"
)

// addField indexes the focusable parts of the add form, in tab order.
type addField int

const (
	addFieldName addField = iota
	addFieldIngredients
	addFieldIngredientsRaw
	addFieldInstructions
	addFieldCategory
	addFieldCuisine
	addFieldPrepTime
	addFieldCookTime
	addFieldSteps
	addFieldMethods
	addFieldImplements
	addFieldURL
	addFieldNutrition
	addFieldSubmit
	addFieldCount
)

// addForm backs the recipe submission view.
type addForm struct {
	name           textinput.Model
	ingredients    tagfield.Model
	ingredientsRaw tagfield.Model
	instructions   textarea.Model
	category       *Selector
	cuisine        *Selector
	prepTime       textinput.Model
	cookTime       textinput.Model
	steps          textinput.Model
	methods        tagfield.Model
	implements     tagfield.Model
	url            textinput.Model
	nutrition      textinput.Model

	focus addField
}

func newAddForm(fetch tagfield.Fetcher, debounce time.Duration, minQuery, suggestLimit int) addForm {
	text := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.Prompt = ""
		return in
	}

	tags := func(placeholder string, withFetch bool) tagfield.Model {
		opts := tagfield.Options{
			Placeholder: placeholder,
			Debounce:    debounce,
			MinQuery:    minQuery,
			Limit:       suggestLimit,
		}
		if withFetch {
			opts.Fetch = fetch
		}
		return tagfield.New(opts)
	}

	instructions := textarea.New()
	instructions.Placeholder = "one step per line"
	instructions.SetHeight(4)

	return addForm{
		name:           text("recipe name"),
		ingredients:    tags("clean ingredient names", true),
		ingredientsRaw: tags("as written: 3 eggs / a knob of butter", false),
		instructions:   instructions,
		category:       NewMultiSelector("Category", api.Categories),
		cuisine:        NewSelector("Cuisine", api.Cuisines, true),
		prepTime:       text("minutes"),
		cookTime:       text("minutes"),
		steps:          text("count"),
		methods:        tags("bake, fry, ...", false),
		implements:     tags("skillet, whisk, ...", false),
		url:            text("https://..."),
		nutrition:      text(`{"calories": 250}`),
	}
}

// cycle moves focus by delta through the tab order.
func (f *addForm) cycle(delta int) tea.Cmd {
	f.blurFocused()
	f.focus = addField((int(f.focus) + delta + int(addFieldCount)) % int(addFieldCount))
	return f.focusFocused()
}

func (f *addForm) blurFocused() {
	switch f.focus {
	case addFieldName:
		f.name.Blur()
	case addFieldIngredients:
		f.ingredients.Blur()
	case addFieldIngredientsRaw:
		f.ingredientsRaw.Blur()
	case addFieldInstructions:
		f.instructions.Blur()
	case addFieldPrepTime:
		f.prepTime.Blur()
	case addFieldCookTime:
		f.cookTime.Blur()
	case addFieldSteps:
		f.steps.Blur()
	case addFieldMethods:
		f.methods.Blur()
	case addFieldImplements:
		f.implements.Blur()
	case addFieldURL:
		f.url.Blur()
	case addFieldNutrition:
		f.nutrition.Blur()
	}
}

func (f *addForm) focusFocused() tea.Cmd {
	switch f.focus {
	case addFieldName:
		return f.name.Focus()
	case addFieldIngredients:
		return f.ingredients.Focus()
	case addFieldIngredientsRaw:
		return f.ingredientsRaw.Focus()
	case addFieldInstructions:
		return f.instructions.Focus()
	case addFieldPrepTime:
		return f.prepTime.Focus()
	case addFieldCookTime:
		return f.cookTime.Focus()
	case addFieldSteps:
		return f.steps.Focus()
	case addFieldMethods:
		return f.methods.Focus()
	case addFieldImplements:
		return f.implements.Focus()
	case addFieldURL:
		return f.url.Focus()
	case addFieldNutrition:
		return f.nutrition.Focus()
	}
	return nil
}

// update routes a message to the focused field.
func (f *addForm) update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch f.focus {
		case addFieldCategory:
			return f.updateSelector(f.category, keyMsg)
		case addFieldCuisine:
			return f.updateSelector(f.cuisine, keyMsg)
		case addFieldSubmit:
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.focus {
	case addFieldName:
		f.name, cmd = f.name.Update(msg)
	case addFieldIngredients:
		f.ingredients, cmd = f.ingredients.Update(msg)
	case addFieldIngredientsRaw:
		f.ingredientsRaw, cmd = f.ingredientsRaw.Update(msg)
	case addFieldInstructions:
		f.instructions, cmd = f.instructions.Update(msg)
	case addFieldPrepTime:
		f.prepTime, cmd = f.prepTime.Update(msg)
	case addFieldCookTime:
		f.cookTime, cmd = f.cookTime.Update(msg)
	case addFieldSteps:
		f.steps, cmd = f.steps.Update(msg)
	case addFieldMethods:
		f.methods, cmd = f.methods.Update(msg)
	case addFieldImplements:
		f.implements, cmd = f.implements.Update(msg)
	case addFieldURL:
		f.url, cmd = f.url.Update(msg)
	case addFieldNutrition:
		f.nutrition, cmd = f.nutrition.Update(msg)
	}
	return cmd
}

func (f *addForm) updateSelector(s *Selector, msg tea.KeyMsg) tea.Cmd {
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

// draft collects the form into a submission body, reporting the first local
// validation problem. A draft that comes back with a nil error is safe to
// send.
func (f *addForm) draft() (api.Draft, error) {
	// Flush whatever is still sitting in the tag entries.
	f.ingredients.Commit()
	f.ingredientsRaw.Commit()
	f.methods.Commit()
	f.implements.Commit()

	var instructions []string
	for _, line := range strings.Split(f.instructions.Value(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			instructions = append(instructions, line)
		}
	}

	d := api.Draft{
		Name:           strings.TrimSpace(f.name.Value()),
		Ingredients:    f.ingredients.Tokens(),
		IngredientsRaw: f.ingredientsRaw.Tokens(),
		Instructions:   instructions,
		Category:       f.category.Values(),
		Cuisine:        f.cuisine.Value(),
		CookingMethods: f.methods.Tokens(),
		Implements:     f.implements.Tokens(),
		URL:            strings.TrimSpace(f.url.Value()),
		Nutrition:      api.RawJSON(strings.TrimSpace(f.nutrition.Value())),
	}

	// Raw lines default to the clean names when the field was left empty.
	if len(d.IngredientsRaw) == 0 {
		d.IngredientsRaw = d.Ingredients
	}

	var err error
	if d.PreparationTime, err = optionalInt("preparation time", f.prepTime.Value()); err != nil {
		return d, err
	}
	if d.CookingTime, err = optionalInt("cooking time", f.cookTime.Value()); err != nil {
		return d, err
	}
	if d.NumberOfSteps, err = optionalInt("number of steps", f.steps.Value()); err != nil {
		return d, err
	}

	if d.Cuisine == "" {
		return d, fmt.Errorf("%w: select a cuisine", api.ErrValidation)
	}
	return d, d.Validate()
}

// optionalInt parses a numeric optional field; empty means unset and
// anything non-numeric is a local validation error.
func optionalInt(field, text string) (*int, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be a number", api.ErrValidation, field)
	}
	return &n, nil
}

// reset clears the form after a successful submission.
func (f *addForm) reset() {
	f.name.SetValue("")
	f.ingredients.Reset()
	f.ingredientsRaw.Reset()
	f.instructions.SetValue("")
	f.category.Reset()
	f.cuisine.Reset()
	f.prepTime.SetValue("")
	f.cookTime.SetValue("")
	f.steps.SetValue("")
	f.methods.Reset()
	f.implements.Reset()
	f.url.SetValue("")
	f.nutrition.SetValue("")
}

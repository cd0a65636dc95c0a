package tui

import (
	"fmt"
	"strings"

	"recipedex/cmd/recipedex/ui"
)

// View renders the whole screen: header tabs, the active view, the status
// line and the key hints.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.viewHeader())
	b.WriteString("\n\n")

	if m.detailOpen {
		b.WriteString(m.detail)
		b.WriteString("\n")
		b.WriteString(m.styles.Footer.Render("esc: back"))
		return b.String()
	}

	switch m.view {
	case viewIngredients:
		b.WriteString(m.viewSearch(&m.searchIng))
	case viewName:
		b.WriteString(m.viewSearch(&m.searchName))
	case viewAdd:
		b.WriteString(m.viewAdd())
	}

	if m.view != viewAdd && len(m.results) > 0 {
		b.WriteString("\n")
		b.WriteString(m.viewResults())
	}

	if m.statusText != "" {
		b.WriteString("\n")
		b.WriteString(m.statusLine())
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Footer.Render(m.hints()))
	return b.String()
}

func (m Model) viewHeader() string {
	var tabs []string
	for _, v := range []view{viewIngredients, viewName, viewAdd} {
		title := fmt.Sprintf(" %s [F%d] ", viewTitles[v], int(v)+1)
		if v == m.view {
			tabs = append(tabs, m.styles.Header.Render(title))
		} else {
			tabs = append(tabs, m.styles.Muted.Render(title))
		}
	}
	return strings.Join(tabs, " ")
}

func (m Model) viewSearch(f *searchForm) string {
	var rows []string

	if f.byName {
		rows = append(rows, m.field("Name", f.name.View(), f.focus == searchFieldName))
		rows = append(rows, m.field("Ingredients (filter)", f.ingredients.View(), f.focus == searchFieldIngredients))
	} else {
		rows = append(rows, m.field("Ingredients", f.ingredients.View(), f.focus == searchFieldIngredients))
	}
	rows = append(rows, m.field("Results (k)", f.limit.View(), f.focus == searchFieldLimit))
	rows = append(rows, m.field("Category", f.category.View(m.styles, f.focus == searchFieldCategory), f.focus == searchFieldCategory))
	rows = append(rows, m.field("Cuisine", f.cuisine.View(m.styles, f.focus == searchFieldCuisine), f.focus == searchFieldCuisine))
	rows = append(rows, m.submitAffordance("Search", f.focus == searchFieldSubmit))

	return strings.Join(rows, "\n")
}

func (m Model) viewAdd() string {
	f := &m.add
	var rows []string

	rows = append(rows, m.field("Name", f.name.View(), f.focus == addFieldName))
	rows = append(rows, m.field("Ingredients", f.ingredients.View(), f.focus == addFieldIngredients))
	rows = append(rows, m.field("Ingredients as written", f.ingredientsRaw.View(), f.focus == addFieldIngredientsRaw))
	rows = append(rows, m.field("Instructions", f.instructions.View(), f.focus == addFieldInstructions))
	rows = append(rows, m.field("Category (space toggles)", f.category.View(m.styles, f.focus == addFieldCategory), f.focus == addFieldCategory))
	rows = append(rows, m.field("Cuisine", f.cuisine.View(m.styles, f.focus == addFieldCuisine), f.focus == addFieldCuisine))
	rows = append(rows, m.field("Preparation time", f.prepTime.View(), f.focus == addFieldPrepTime))
	rows = append(rows, m.field("Cooking time", f.cookTime.View(), f.focus == addFieldCookTime))
	rows = append(rows, m.field("Number of steps", f.steps.View(), f.focus == addFieldSteps))
	rows = append(rows, m.field("Cooking methods", f.methods.View(), f.focus == addFieldMethods))
	rows = append(rows, m.field("Implements", f.implements.View(), f.focus == addFieldImplements))
	rows = append(rows, m.field("URL", f.url.View(), f.focus == addFieldURL))
	rows = append(rows, m.field("Nutrition (JSON)", f.nutrition.View(), f.focus == addFieldNutrition))
	rows = append(rows, m.submitAffordance("Add Recipe", f.focus == addFieldSubmit))

	return strings.Join(rows, "\n")
}

// field renders one labeled form row, marking the focused one.
func (m Model) field(label, body string, active bool) string {
	style := m.styles.FieldInactive
	if active {
		style = m.styles.FieldActive
	}
	return style.Render(m.styles.Label.Render(label) + "\n" + body)
}

func (m Model) submitAffordance(label string, active bool) string {
	if active {
		return m.styles.Bold.Foreground(m.styles.Theme.Primary).Render("▶ " + label + " (Enter)")
	}
	return m.styles.Muted.Render("  " + label)
}

func (m Model) viewResults() string {
	table := ui.NewTable("Results", []string{"Name", "Rating", "Cuisine", "Prep", "Ingredients"})
	if m.browsing {
		table.Selected = m.cursor
	}
	for _, r := range m.results {
		table.AddRow(
			clip(r.Name, 32),
			formatRating(r.RatingValue, r.RatingCount),
			r.Cuisine,
			formatMinutes(r.PreparationTime),
			clip(strings.Join(r.Ingredients, ", "), 48),
		)
	}
	return table.View(m.styles)
}

func (m Model) statusLine() string {
	switch m.statusKind {
	case statusError:
		return m.styles.Error.Render(m.statusText)
	case statusSuccess:
		return m.styles.Success.Render(m.statusText)
	default:
		return m.styles.Muted.Render(m.statusText)
	}
}

func (m Model) hints() string {
	if m.browsing {
		return "up/down: browse  enter: details  esc: back to form  ctrl+c: quit"
	}
	return "tab: next field  enter: commit/submit  f1-f3: views  ctrl+c: quit"
}

func formatRating(value float64, count int) string {
	if count == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f (%d)", value, count)
}

func formatMinutes(minutes int) string {
	if minutes <= 0 {
		return "-"
	}
	return fmt.Sprintf("%d min", minutes)
}

func clip(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

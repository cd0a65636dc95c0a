package tui

import (
	"fmt"
	"strings"

	"recipedex/internal/api"
)

// recipeMarkdown builds the detail pane content for one recipe.
func recipeMarkdown(r api.Recipe) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", r.Name)

	var facts []string
	if r.RatingCount > 0 {
		facts = append(facts, fmt.Sprintf("**Rating:** %.1f (%d votes)", r.RatingValue, r.RatingCount))
	}
	if r.Cuisine != "" {
		facts = append(facts, "**Cuisine:** "+r.Cuisine)
	}
	if len(r.Category) > 0 {
		facts = append(facts, "**Category:** "+strings.Join(r.Category, ", "))
	}
	if r.PreparationTime > 0 {
		facts = append(facts, fmt.Sprintf("**Prep:** %d min", r.PreparationTime))
	}
	if r.CookingTime > 0 {
		facts = append(facts, fmt.Sprintf("**Cook:** %d min", r.CookingTime))
	}
	if len(facts) > 0 {
		b.WriteString(strings.Join(facts, " · "))
		b.WriteString("\n\n")
	}

	if len(r.IngredientsRaw) > 0 {
		b.WriteString("## Ingredients\n\n")
		for _, ing := range r.IngredientsRaw {
			b.WriteString("- " + ing + "\n")
		}
		b.WriteString("\n")
	} else if len(r.Ingredients) > 0 {
		b.WriteString("## Ingredients\n\n")
		for _, ing := range r.Ingredients {
			b.WriteString("- " + ing + "\n")
		}
		b.WriteString("\n")
	}

	if len(r.Instructions) > 0 {
		b.WriteString("## Instructions\n\n")
		if len(r.Instructions) == 1 {
			b.WriteString(r.Instructions[0] + "\n")
		} else {
			for i, step := range r.Instructions {
				fmt.Fprintf(&b, "%d. %s\n", i+1, step)
			}
		}
		b.WriteString("\n")
	}

	if r.URL != "" {
		b.WriteString("Source: " + r.URL + "\n")
	}

	return b.String()
}

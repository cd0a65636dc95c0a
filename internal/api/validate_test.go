package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDraft() Draft {
	return Draft{
		Name:           "Omelette",
		Ingredients:    []string{"egg", "butter"},
		IngredientsRaw: []string{"3 eggs", "a knob of butter"},
		Instructions:   []string{"Whisk.", "Fry."},
		Category:       []string{"Breakfast & Brunch"},
		Cuisine:        "European",
	}
}

func TestValidateAcceptsCompleteDraft(t *testing.T) {
	require.NoError(t, validDraft().Validate())
}

func TestValidateRejections(t *testing.T) {
	neg := -1

	cases := []struct {
		name   string
		mutate func(*Draft)
	}{
		{"missing name", func(d *Draft) { d.Name = "" }},
		{"no ingredients", func(d *Draft) { d.Ingredients = nil }},
		{"no instructions", func(d *Draft) { d.Instructions = nil }},
		{"no category", func(d *Draft) { d.Category = nil }},
		{"unknown category", func(d *Draft) { d.Category = []string{"Midnight Snacks"} }},
		{"unknown cuisine", func(d *Draft) { d.Cuisine = "Martian" }},
		{"negative prep time", func(d *Draft) { d.PreparationTime = &neg }},
		{"negative cooking time", func(d *Draft) { d.CookingTime = &neg }},
		{"negative steps", func(d *Draft) { d.NumberOfSteps = &neg }},
		{"broken nutrition json", func(d *Draft) { d.Nutrition = `{"calories": ` }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := validDraft()
			tc.mutate(&d)
			err := d.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
		})
	}
}

func TestValidateAllowsEmptyNutrition(t *testing.T) {
	d := validDraft()
	d.Nutrition = ""
	require.NoError(t, d.Validate())
}

func TestVocabularies(t *testing.T) {
	assert.True(t, ValidCuisine("Middle Eastern"))
	assert.False(t, ValidCuisine("middle eastern"), "vocabulary match is exact")
	assert.True(t, ValidCategory("Side Dish"))
	assert.False(t, ValidCategory(""))
}

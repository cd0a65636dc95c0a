package api

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

// ErrValidation marks a draft rejected locally; the request was never sent.
var ErrValidation = errors.New("invalid recipe")

// Validate checks a draft before submission. Failures are user-input errors:
// they wrap ErrValidation and the draft must not be sent.
func (d Draft) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if len(d.Ingredients) == 0 {
		return fmt.Errorf("%w: at least one ingredient is required", ErrValidation)
	}
	if len(d.Instructions) == 0 {
		return fmt.Errorf("%w: instructions are required", ErrValidation)
	}
	if len(d.Category) == 0 {
		return fmt.Errorf("%w: select at least one category", ErrValidation)
	}
	for _, cat := range d.Category {
		if !ValidCategory(cat) {
			return fmt.Errorf("%w: unknown category %q", ErrValidation, cat)
		}
	}
	if !ValidCuisine(d.Cuisine) {
		return fmt.Errorf("%w: unknown cuisine %q", ErrValidation, d.Cuisine)
	}
	if err := nonNegative("preparation_time", d.PreparationTime); err != nil {
		return err
	}
	if err := nonNegative("cooking_time", d.CookingTime); err != nil {
		return err
	}
	if err := nonNegative("number_of_steps", d.NumberOfSteps); err != nil {
		return err
	}
	if d.Nutrition != "" && !gjson.Valid(string(d.Nutrition)) {
		return fmt.Errorf("%w: nutrition must be valid JSON", ErrValidation)
	}
	return nil
}

func nonNegative(field string, v *int) error {
	if v != nil && *v < 0 {
		return fmt.Errorf("%w: %s must not be negative", ErrValidation, field)
	}
	return nil
}

// Package api is the typed client for the recipe service HTTP endpoints:
// ingredient and name queries, ingredient autosuggest, and recipe submission.
// The service itself (storage, ranking, business rules) is an external
// collaborator; only its wire contract lives here.
package api

import (
	"encoding/json"

	"recipedex/internal/ingredient"
)

// FlexList is a string slice that tolerates the shapes ingredient-like
// fields arrive in: a real JSON array, a plain delimited string, or a
// stringified Python list literal left over from dataset exports. Whatever
// comes off the wire is run through the ingredient normalizer.
type FlexList []string

func (l *FlexList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*l = ingredient.NormalizeList(raw)
	return nil
}

func (l FlexList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(l))
}

// TextList holds prose fields (instructions) that may arrive as a single
// string or as a list of steps. Unlike FlexList it never splits on commas;
// prose keeps its punctuation.
type TextList []string

func (t *TextList) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	switch v := raw.(type) {
	case nil:
		*t = nil
	case string:
		if v == "" {
			*t = nil
		} else {
			*t = TextList{v}
		}
	case []any:
		out := make(TextList, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}
		*t = out
	}
	return nil
}

func (t TextList) MarshalJSON() ([]byte, error) {
	return json.Marshal([]string(t))
}

// RawJSON carries user-supplied JSON text (the nutrition blob) verbatim into
// the request body. The empty value is omitted.
type RawJSON string

func (r RawJSON) MarshalJSON() ([]byte, error) {
	if r == "" {
		return []byte("null"), nil
	}
	return []byte(r), nil
}

func (r *RawJSON) UnmarshalJSON(data []byte) error {
	*r = RawJSON(data)
	return nil
}

// Recipe is one result row as returned by the query endpoints. Display-only;
// every field is sourced from the response.
type Recipe struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	RatingValue     float64  `json:"rating_value"`
	RatingCount     int      `json:"rating_count"`
	Cuisine         string   `json:"cuisine"`
	Category        FlexList `json:"category"`
	PreparationTime int      `json:"preparation_time"`
	CookingTime     int      `json:"cooking_time"`
	NumberOfSteps   int      `json:"number_of_steps"`
	Ingredients     FlexList `json:"ingredients"`
	IngredientsRaw  FlexList `json:"ingredients_raw"`
	Instructions    TextList `json:"instructions"`
	URL             string   `json:"url"`
	CreatedAt       string   `json:"created_at"`
}

// Draft is the body of a recipe submission (POST /add).
type Draft struct {
	Name            string   `json:"name" yaml:"name"`
	PreparationTime *int     `json:"preparation_time,omitempty" yaml:"preparation_time"`
	CookingTime     *int     `json:"cooking_time,omitempty" yaml:"cooking_time"`
	Category        []string `json:"category" yaml:"category"`
	Ingredients     []string `json:"ingredients" yaml:"ingredients"`
	IngredientsRaw  []string `json:"ingredients_raw" yaml:"ingredients_raw"`
	Instructions    []string `json:"instructions" yaml:"instructions"`
	CookingMethods  []string `json:"cooking_methods,omitempty" yaml:"cooking_methods"`
	Implements      []string `json:"implements,omitempty" yaml:"implements"`
	Nutrition       RawJSON  `json:"nutrition,omitempty" yaml:"nutrition"`
	Cuisine         string   `json:"cuisine" yaml:"cuisine"`
	NumberOfSteps   *int     `json:"number_of_steps,omitempty" yaml:"number_of_steps"`
	URL             string   `json:"url,omitempty" yaml:"url"`
}

// IngredientQuery are the parameters of GET /query_by_ingredients.
type IngredientQuery struct {
	Ingredients []string
	K           int
	Category    string
	Cuisine     string
}

// NameQuery are the parameters of GET /query_by_name.
type NameQuery struct {
	Name        string
	K           int
	Category    string
	Cuisine     string
	Ingredients []string
}

package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryByIngredients(t *testing.T) {
	var gotQuery map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/query_by_ingredients", r.URL.Path)
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [
			{"id": 7, "name": "Shakshuka", "rating_value": 4.5, "rating_count": 12,
			 "cuisine": "Middle Eastern", "preparation_time": 15,
			 "ingredients": "['egg', 'tomato']",
			 "ingredients_raw": ["2 eggs", "3 ripe tomatoes"],
			 "instructions": "Simmer tomatoes, then crack in the eggs."}
		]}`))
	}))
	defer srv.Close()

	client := NewClient(srv.URL, nil)
	results, err := client.QueryByIngredients(context.Background(), IngredientQuery{
		Ingredients: []string{"egg", "tomato"},
		K:           3,
		Cuisine:     "Middle Eastern",
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"egg, tomato"}, gotQuery["ingredients"])
	assert.Equal(t, []string{"3"}, gotQuery["k"])
	assert.Equal(t, []string{"Middle Eastern"}, gotQuery["cuisine"])
	assert.NotContains(t, gotQuery, "category")

	require.Len(t, results, 1)
	r := results[0]
	assert.Equal(t, "Shakshuka", r.Name)
	assert.Equal(t, 4.5, r.RatingValue)
	assert.Equal(t, 12, r.RatingCount)
	// Stringified list values decode to clean tokens.
	assert.Equal(t, FlexList{"egg", "tomato"}, r.Ingredients)
	assert.Equal(t, FlexList{"2 eggs", "3 ripe tomatoes"}, r.IngredientsRaw)
	// Prose keeps its punctuation.
	assert.Equal(t, TextList{"Simmer tomatoes, then crack in the eggs."}, r.Instructions)
}

func TestQueryByIngredientsDefaultLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("k"))
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).QueryByIngredients(context.Background(), IngredientQuery{
		Ingredients: []string{"egg"},
	})
	require.NoError(t, err)
}

func TestQueryByNameRepeatsIngredients(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/query_by_name", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "pancakes", q.Get("name"))
		assert.Equal(t, []string{"milk", "eggs"}, q["ingredients"])
		w.Write([]byte(`{"results": []}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).QueryByName(context.Background(), NameQuery{
		Name:        "pancakes",
		Ingredients: []string{"milk", "eggs"},
	})
	require.NoError(t, err)
}

func TestSuggest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/ingredients/suggestions", r.URL.Path)
		q := r.URL.Query()
		assert.Equal(t, "to", q.Get("q"))
		assert.Equal(t, "8", q.Get("limit"))
		assert.Equal(t, "tofu,tomato", q.Get("exclude"))
		w.Write([]byte(`{"suggestions": ["toast", "tortilla"]}`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, nil).Suggest(context.Background(), "to", []string{"tofu", "tomato"}, 8)
	require.NoError(t, err)
	assert.Equal(t, []string{"toast", "tortilla"}, got)
}

func TestAddRecipe(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/add", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Write([]byte(`{"recipe_id": 42}`))
	}))
	defer srv.Close()

	prep := 10
	id, err := NewClient(srv.URL, nil).AddRecipe(context.Background(), Draft{
		Name:            "Omelette",
		Ingredients:     []string{"egg", "butter"},
		IngredientsRaw:  []string{"3 eggs", "a knob of butter"},
		Instructions:    []string{"Whisk.", "Fry."},
		Category:        []string{"Breakfast & Brunch"},
		Cuisine:         "European",
		PreparationTime: &prep,
		Nutrition:       RawJSON(`{"calories": 250}`),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	assert.Equal(t, "Omelette", gotBody["name"])
	assert.Equal(t, float64(10), gotBody["preparation_time"])
	// Nutrition text must pass through as a JSON object, not a string.
	assert.Equal(t, map[string]any{"calories": float64(250)}, gotBody["nutrition"])
	_, hasCookingTime := gotBody["cooking_time"]
	assert.False(t, hasCookingTime, "unset optional fields must be omitted")
}

func TestAddRecipeErrorDetail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"detail": "Error adding recipe: duplicate name"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).AddRecipe(context.Background(), Draft{Name: "x"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
	assert.Equal(t, "Error adding recipe: duplicate name", apiErr.Error())
}

func TestErrorWithoutDetailFallsBack(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(`upstream exploded`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, nil).QueryByName(context.Background(), NameQuery{Name: "x"})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "request failed with status 502", apiErr.Error())
}

func TestSuggestionSourceCollapsesIdenticalCalls(t *testing.T) {
	// The singleflight wrapper must still return results; collapsing is only
	// observable under concurrency, so here we check transparency.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"suggestions": ["tomato"]}`))
	}))
	defer srv.Close()

	src := NewSuggestionSource(NewClient(srv.URL, nil))
	got, err := src.Suggest(context.Background(), "to", nil, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"tomato"}, got)
}

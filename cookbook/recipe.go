package cookbook

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/petal-labs/sous/tools"
)

// RecipeTool searches the built-in recipe book.
//
// The query string selects the search mode: a comma-bearing query is treated
// as an ingredient list and matches recipes sharing at least half the listed
// ingredients; a query without commas is matched against recipe names by
// case-insensitive substring.
type RecipeTool struct {
	recipes []Recipe
}

// NewRecipeTool creates a recipe search tool over the built-in recipe book.
func NewRecipeTool() *RecipeTool {
	return &RecipeTool{recipes: recipes}
}

func (t *RecipeTool) Name() string {
	return "lookupRecipe"
}

func (t *RecipeTool) Description() string {
	return "Search recipes by name, or by a comma-separated list of ingredients (e.g. \"eggs, bacon, pasta\")"
}

func (t *RecipeTool) Schema() tools.ToolSchema {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"query": map[string]any{
				"type":        "string",
				"description": "Recipe name to search for, or a comma-separated ingredient list",
			},
		},
		"required": []string{"query"},
	}
	schemaJSON, _ := json.Marshal(schema)
	return tools.ToolSchema{JSONSchema: schemaJSON}
}

func (t *RecipeTool) Call(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		Query string `json:"query"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, err
	}

	query := strings.TrimSpace(params.Query)
	if query == "" {
		return nil, fmt.Errorf("query must not be empty")
	}

	var matches []Recipe
	if strings.Contains(query, ",") {
		matches = t.matchByIngredients(query)
	} else {
		matches = t.matchByName(query)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("no recipes found matching %q; search by recipe name (e.g. \"stir fry\") or by a comma-separated ingredient list (e.g. \"eggs, bacon, pasta\")", query)
	}

	return map[string]any{
		"query":   query,
		"recipes": matches,
	}, nil
}

func (t *RecipeTool) matchByName(query string) []Recipe {
	needle := strings.ToLower(query)

	var matches []Recipe
	for _, r := range t.recipes {
		if strings.Contains(strings.ToLower(r.Name), needle) {
			matches = append(matches, r)
		}
	}
	return matches
}

// matchByIngredients matches a recipe when at least half of the queried
// ingredients appear in its ingredient list.
func (t *RecipeTool) matchByIngredients(query string) []Recipe {
	var wanted []string
	for _, part := range strings.Split(query, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			wanted = append(wanted, part)
		}
	}
	if len(wanted) == 0 {
		return nil
	}

	var matches []Recipe
	for _, r := range t.recipes {
		hits := 0
		for _, want := range wanted {
			for _, have := range r.Ingredients {
				if strings.Contains(strings.ToLower(have), want) || strings.Contains(want, strings.ToLower(have)) {
					hits++
					break
				}
			}
		}
		if hits*2 >= len(wanted) {
			matches = append(matches, r)
		}
	}
	return matches
}

package cookbook_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/petal-labs/sous/cookbook"
	"github.com/petal-labs/sous/tools"
)

func TestAllConstructsEveryTool(t *testing.T) {
	all := cookbook.All()
	if len(all) != 2 {
		t.Fatalf("All() returned %d tools, want 2", len(all))
	}

	names := make(map[string]bool)
	for _, tool := range all {
		names[tool.Name()] = true
	}
	for _, want := range []string{"lookupRecipe", "lookupNutrition"} {
		if !names[want] {
			t.Errorf("All() missing tool %q", want)
		}
	}
}

func TestAllRegistersCleanly(t *testing.T) {
	registry := tools.NewRegistry()
	for _, tool := range cookbook.All() {
		if err := registry.Register(tool); err != nil {
			t.Fatalf("Register(%s) error = %v", tool.Name(), err)
		}
	}
	if len(registry.List()) != 2 {
		t.Errorf("registry has %d tools, want 2", len(registry.List()))
	}
}

func TestToolSchemasAreValidJSON(t *testing.T) {
	for _, tool := range cookbook.All() {
		schema := tool.Schema()
		if !json.Valid(schema.JSONSchema) {
			t.Errorf("tool %q schema is not valid JSON: %s", tool.Name(), schema.JSONSchema)
		}
		if tool.Description() == "" {
			t.Errorf("tool %q has no description", tool.Name())
		}
	}
}

func TestRecipeNameSearch(t *testing.T) {
	tool := cookbook.NewRecipeTool()

	result, err := tool.Call(context.Background(), json.RawMessage(`{"query": "stir fry"}`))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	recipes := recipesFromResult(t, result)
	if len(recipes) != 1 {
		t.Fatalf("got %d recipes, want 1", len(recipes))
	}
	if recipes[0].Name != "Veggie Stir Fry" {
		t.Errorf("matched %q, want %q", recipes[0].Name, "Veggie Stir Fry")
	}
}

func TestRecipeNameSearchCaseInsensitive(t *testing.T) {
	tool := cookbook.NewRecipeTool()

	result, err := tool.Call(context.Background(), json.RawMessage(`{"query": "CARBONARA"}`))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	recipes := recipesFromResult(t, result)
	if len(recipes) != 1 || recipes[0].Name != "Pasta Carbonara" {
		t.Errorf("matched %v, want Pasta Carbonara", recipeNames(recipes))
	}
}

func TestRecipeIngredientSearch(t *testing.T) {
	tool := cookbook.NewRecipeTool()

	// A comma in the query switches to ingredient-search mode.
	result, err := tool.Call(context.Background(), json.RawMessage(`{"query": "eggs, bacon, pasta"}`))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	recipes := recipesFromResult(t, result)
	found := false
	for _, r := range recipes {
		if r.Name == "Pasta Carbonara" {
			found = true
		}
	}
	if !found {
		t.Errorf("ingredient search matched %v, want Pasta Carbonara included", recipeNames(recipes))
	}
}

func TestRecipeIngredientSearchRequiresHalf(t *testing.T) {
	tool := cookbook.NewRecipeTool()

	// Only one of four listed ingredients is in the carbonara; below the
	// half threshold, so carbonara must not match.
	result, err := tool.Call(context.Background(), json.RawMessage(`{"query": "pasta, tofu, kimchi, seaweed"}`))
	if err == nil {
		for _, r := range recipesFromResult(t, result) {
			if r.Name == "Pasta Carbonara" {
				t.Error("carbonara matched below the half-ingredient threshold")
			}
		}
	}
}

func TestRecipeNoMatch(t *testing.T) {
	tool := cookbook.NewRecipeTool()

	_, err := tool.Call(context.Background(), json.RawMessage(`{"query": "bouillabaisse"}`))
	if err == nil {
		t.Fatal("Call() error = nil for a query with no matches")
	}
	if !strings.Contains(err.Error(), "bouillabaisse") {
		t.Errorf("Call() error = %q, should echo the query", err)
	}
	if !strings.Contains(err.Error(), "recipe name") || !strings.Contains(err.Error(), "comma-separated ingredient list") {
		t.Errorf("Call() error = %q, should hint at both search modes", err)
	}
}

func TestRecipeEmptyQuery(t *testing.T) {
	tool := cookbook.NewRecipeTool()

	if _, err := tool.Call(context.Background(), json.RawMessage(`{"query": "  "}`)); err == nil {
		t.Error("Call() error = nil for empty query, want error")
	}
}

func TestNutritionLookup(t *testing.T) {
	tool := cookbook.NewNutritionTool()

	result, err := tool.Call(context.Background(), json.RawMessage(`{"food": "apple"}`))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}

	facts, ok := result.(cookbook.NutritionFacts)
	if !ok {
		t.Fatalf("Call() returned %T, want NutritionFacts", result)
	}
	if facts.Calories != 95 {
		t.Errorf("Calories = %d, want 95", facts.Calories)
	}
	if facts.ServingSize != "1 medium apple (182g)" {
		t.Errorf("ServingSize = %q, want %q", facts.ServingSize, "1 medium apple (182g)")
	}
}

func TestNutritionLookupNormalizesFood(t *testing.T) {
	tool := cookbook.NewNutritionTool()

	result, err := tool.Call(context.Background(), json.RawMessage(`{"food": "  Apple "}`))
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	if facts := result.(cookbook.NutritionFacts); facts.Food != "apple" {
		t.Errorf("Food = %q, want %q", facts.Food, "apple")
	}
}

func TestNutritionUnknownFood(t *testing.T) {
	tool := cookbook.NewNutritionTool()

	_, err := tool.Call(context.Background(), json.RawMessage(`{"food": "kiwi"}`))
	if err == nil {
		t.Fatal("Call() error = nil for unknown food, want error")
	}
	if !strings.Contains(err.Error(), "availableFoods") {
		t.Errorf("Call() error = %q, should list available foods", err)
	}
	if !strings.Contains(err.Error(), "apple") {
		t.Errorf("Call() error = %q, should include %q among available foods", err, "apple")
	}
}

func recipesFromResult(t *testing.T, result any) []cookbook.Recipe {
	t.Helper()
	m, ok := result.(map[string]any)
	if !ok {
		t.Fatalf("result is %T, want map", result)
	}
	recipes, ok := m["recipes"].([]cookbook.Recipe)
	if !ok {
		t.Fatalf("result[\"recipes\"] is %T, want []Recipe", m["recipes"])
	}
	return recipes
}

func recipeNames(recipes []cookbook.Recipe) []string {
	names := make([]string, 0, len(recipes))
	for _, r := range recipes {
		names = append(names, r.Name)
	}
	return names
}

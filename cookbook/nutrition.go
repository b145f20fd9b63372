package cookbook

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/petal-labs/sous/tools"
)

// NutritionTool reports per-serving nutrition facts for foods in the
// built-in dataset. An unknown food is an error that names the foods the
// dataset does cover, so the model can steer the user.
type NutritionTool struct {
	facts map[string]NutritionFacts
}

// NewNutritionTool creates a nutrition lookup tool over the built-in dataset.
func NewNutritionTool() *NutritionTool {
	return &NutritionTool{facts: nutrition}
}

func (t *NutritionTool) Name() string {
	return "lookupNutrition"
}

func (t *NutritionTool) Description() string {
	return "Get nutrition facts (calories, protein, carbs, fat, fiber) for a single food"
}

func (t *NutritionTool) Schema() tools.ToolSchema {
	schema := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"food": map[string]any{
				"type":        "string",
				"description": "The food to look up, e.g. \"apple\"",
			},
		},
		"required": []string{"food"},
	}
	schemaJSON, _ := json.Marshal(schema)
	return tools.ToolSchema{JSONSchema: schemaJSON}
}

func (t *NutritionTool) Call(ctx context.Context, args json.RawMessage) (any, error) {
	var params struct {
		Food string `json:"food"`
	}
	if err := json.Unmarshal(args, &params); err != nil {
		return nil, err
	}

	key := strings.ToLower(strings.TrimSpace(params.Food))
	if key == "" {
		return nil, fmt.Errorf("food must not be empty")
	}

	facts, ok := t.facts[key]
	if !ok {
		return nil, fmt.Errorf("no nutrition data for %q; availableFoods: %s", params.Food, strings.Join(t.availableFoods(), ", "))
	}
	return facts, nil
}

func (t *NutritionTool) availableFoods() []string {
	foods := make([]string, 0, len(t.facts))
	for name := range t.facts {
		foods = append(foods, name)
	}
	sort.Strings(foods)
	return foods
}

package tools

import (
	"encoding/json"

	"github.com/petal-labs/sous/core"
)

// ParseArgs parses tool call arguments into a typed struct.
// It unmarshals the JSON arguments from the ToolCall into the target type T.
//
// Example:
//
//	type NutritionArgs struct {
//	    Food string `json:"food"`
//	}
//
//	args, err := tools.ParseArgs[NutritionArgs](toolCall)
//	if err != nil {
//	    return nil, err
//	}
//	// Use args.Food
func ParseArgs[T any](call core.ToolCall) (*T, error) {
	var result T
	if err := json.Unmarshal(call.Arguments, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

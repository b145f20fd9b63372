// Package cookbook implements the lookup tools the sous assistant can call:
// recipe search over a small built-in recipe book and nutrition facts for
// common foods. The data is embedded; there is no external datastore.
//
// Tools are constructed explicitly via Constructors or All, never registered
// as an import side effect. A deployment builds its registry at startup:
//
//	registry := tools.NewRegistry()
//	for _, t := range cookbook.All() {
//	    if err := registry.Register(t); err != nil {
//	        log.Fatal(err)
//	    }
//	}
package cookbook

import "github.com/petal-labs/sous/tools"

// Constructors returns one constructor per cookbook tool. The list is static:
// adding a tool to the package means adding its constructor here.
func Constructors() []func() tools.Tool {
	return []func() tools.Tool{
		func() tools.Tool { return NewRecipeTool() },
		func() tools.Tool { return NewNutritionTool() },
	}
}

// All constructs every cookbook tool.
func All() []tools.Tool {
	ctors := Constructors()
	out := make([]tools.Tool, 0, len(ctors))
	for _, ctor := range ctors {
		out = append(out, ctor())
	}
	return out
}

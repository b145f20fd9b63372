// Package openai provides an OpenAI API provider implementation for sous.
//
// The provider speaks both upstream call conventions: the Chat Completions
// API and the Responses API. Which one a request uses is decided per model
// (see the model table below) and can be forced with WithConvention.
package openai

import "github.com/petal-labs/sous/core"

// Model constants for OpenAI models.
const (
	// GPT-5 series (Responses API)
	ModelGPT5     core.ModelID = "gpt-5"
	ModelGPT5Mini core.ModelID = "gpt-5-mini"
	ModelGPT5Nano core.ModelID = "gpt-5-nano"

	// GPT-4.1 series
	ModelGPT41     core.ModelID = "gpt-4.1"
	ModelGPT41Mini core.ModelID = "gpt-4.1-mini"
	ModelGPT41Nano core.ModelID = "gpt-4.1-nano"

	// GPT-4o series
	ModelGPT4o     core.ModelID = "gpt-4o"
	ModelGPT4oMini core.ModelID = "gpt-4o-mini"

	// Reasoning models (o-series, Responses API)
	ModelO4Mini core.ModelID = "o4-mini"
	ModelO3     core.ModelID = "o3"
	ModelO3Mini core.ModelID = "o3-mini"
)

// models is the static list of supported models.
var models = []core.ModelInfo{
	// GPT-5 series
	{ID: ModelGPT5, DisplayName: "GPT-5", Convention: core.ConventionResponses},
	{ID: ModelGPT5Mini, DisplayName: "GPT-5 Mini", Convention: core.ConventionResponses},
	{ID: ModelGPT5Nano, DisplayName: "GPT-5 Nano", Convention: core.ConventionResponses},

	// GPT-4.1 series
	{ID: ModelGPT41, DisplayName: "GPT-4.1", Convention: core.ConventionCompletions},
	{ID: ModelGPT41Mini, DisplayName: "GPT-4.1 Mini", Convention: core.ConventionCompletions},
	{ID: ModelGPT41Nano, DisplayName: "GPT-4.1 Nano", Convention: core.ConventionCompletions},

	// GPT-4o series
	{ID: ModelGPT4o, DisplayName: "GPT-4o", Convention: core.ConventionCompletions},
	{ID: ModelGPT4oMini, DisplayName: "GPT-4o Mini", Convention: core.ConventionCompletions},

	// o-series
	{ID: ModelO4Mini, DisplayName: "o4-mini", Convention: core.ConventionResponses},
	{ID: ModelO3, DisplayName: "o3", Convention: core.ConventionResponses},
	{ID: ModelO3Mini, DisplayName: "o3-mini", Convention: core.ConventionResponses},
}

// GetModelInfo returns info for the given model ID, or nil if unknown.
func GetModelInfo(id core.ModelID) *core.ModelInfo {
	for i := range models {
		if models[i].ID == id {
			return &models[i]
		}
	}
	return nil
}

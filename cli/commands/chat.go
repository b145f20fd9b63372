package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/petal-labs/sous/chat"
	"github.com/petal-labs/sous/core"
)

func (a *App) newChatCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chat",
		Short: "Run a one-shot chat turn",
		Long: `Run a single chat turn from the terminal, including any tool round
the model requests.

Examples:
  sous chat --prompt "What's in a carbonara?"
  sous chat --prompt "How many calories in an apple?" --json`,
		RunE: a.runChat,
	}

	cmd.Flags().StringVar(&a.chatPrompt, "prompt", "", "user message (required)")
	cmd.Flags().StringVar(&a.chatSystem, "system", "", "system message")

	_ = cmd.MarkFlagRequired("prompt")

	return cmd
}

func (a *App) runChat(cmd *cobra.Command, args []string) error {
	orchestrator, err := a.buildOrchestrator(a.logger())
	if err != nil {
		return exitWithCode(ExitValidation, err)
	}

	var history []core.Message
	if a.chatSystem != "" {
		history = append(history, core.Message{Role: core.RoleSystem, Content: a.chatSystem})
	}
	history = append(history, core.Message{Role: core.RoleUser, Content: a.chatPrompt})

	result, err := orchestrator.Turn(cmd.Context(), history)
	if err != nil {
		return a.handleTurnError(err)
	}

	if a.jsonOutput {
		return a.outputTurnJSON(result)
	}

	fmt.Fprintf(a.stdout, "> %s\n", a.chatPrompt)
	fmt.Fprintln(a.stdout, result.Message.Content)

	if a.verbose {
		fmt.Fprintf(a.stderr, "Usage: %d prompt + %d completion = %d total tokens\n",
			result.Usage.PromptTokens,
			result.Usage.CompletionTokens,
			result.Usage.TotalTokens)
	}

	return nil
}

func (a *App) handleTurnError(err error) error {
	var turnErr *chat.TurnError
	if errors.As(err, &turnErr) {
		if a.jsonOutput {
			a.outputErrorJSON(string(turnErr.Kind), turnErr.Message)
		} else {
			fmt.Fprintf(a.stderr, "Error: %s\n", turnErr.Message)
		}

		switch turnErr.Kind {
		case chat.KindBadRequest:
			return exitWithCode(ExitValidation, err)
		case chat.KindUpstreamUnavailable:
			return exitWithCode(ExitNetwork, err)
		default:
			return exitWithCode(ExitProvider, err)
		}
	}

	if a.jsonOutput {
		a.outputErrorJSON("error", err.Error())
	} else {
		fmt.Fprintf(a.stderr, "Error: %v\n", err)
	}
	return exitWithCode(ExitProvider, err)
}

func (a *App) outputTurnJSON(result *chat.TurnResult) error {
	output := map[string]any{
		"message":    result.Message,
		"tool_round": result.ToolRound,
		"usage": map[string]int{
			"prompt_tokens":     result.Usage.PromptTokens,
			"completion_tokens": result.Usage.CompletionTokens,
			"total_tokens":      result.Usage.TotalTokens,
		},
	}

	enc := json.NewEncoder(a.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

func (a *App) outputErrorJSON(errType, message string) {
	output := map[string]any{
		"error": map[string]any{
			"type":    errType,
			"message": message,
		},
	}

	enc := json.NewEncoder(a.stderr)
	enc.SetIndent("", "  ")
	_ = enc.Encode(output)
}

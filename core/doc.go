// Package core provides the canonical types the sous chat backend is built on.
//
// A turn flows through one shape regardless of which upstream call convention
// serves it: the orchestrator assembles a [ChatRequest], a [Provider] adapter
// translates it to the wire convention it speaks, and every reply is
// normalized into a [ChatResponse] before anything else sees it.
//
// # Client and Provider
//
// [Client] wraps a [Provider] and adds request validation and telemetry:
//
//	provider := openai.New(os.Getenv("OPENAI_API_KEY"))
//	client := core.NewClient(provider, core.WithTelemetry(hook))
//	resp, err := client.Chat(ctx, &core.ChatRequest{
//	    Model:    "gpt-4o-mini",
//	    Messages: history,
//	    Tools:    exposed,
//	})
//
// # Conversation invariants
//
// [ValidateHistory] enforces the structural contract on inbound histories: a
// tool message must carry the tool-call ID it answers, and every other message
// must carry text content or a tool-call list. Validation happens before any
// provider call.
//
// # Secrets
//
// API keys are held in [Secret], which redacts itself in logs, %#v output, and
// JSON. Call [Secret.Expose] only at the point the value goes on the wire.
package core

package chat

import (
	"errors"
	"net/http"

	"github.com/petal-labs/sous/core"
)

// TurnErrorKind classifies how a chat turn failed.
type TurnErrorKind string

const (
	// KindBadRequest means the inbound history failed validation.
	// No provider call was made.
	KindBadRequest TurnErrorKind = "bad_request"

	// KindUpstreamUnavailable means the provider could not be reached or
	// refused the request.
	KindUpstreamUnavailable TurnErrorKind = "upstream_unavailable"

	// KindUpstreamMalformed means the provider replied but the reply could
	// not be normalized into an assistant message.
	KindUpstreamMalformed TurnErrorKind = "upstream_malformed"

	// KindConfig means the orchestrator itself is misconfigured, such as a
	// missing provider credential. Distinct from per-request failures.
	KindConfig TurnErrorKind = "config"
)

// TurnError is a turn-level failure. Tool-level failures never become a
// TurnError; they are folded into history as data.
type TurnError struct {
	Kind    TurnErrorKind
	Message string
	Err     error
}

func (e *TurnError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *TurnError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to the status code the server responds with.
func (e *TurnError) HTTPStatus() int {
	switch e.Kind {
	case KindBadRequest:
		return http.StatusBadRequest
	case KindUpstreamUnavailable, KindUpstreamMalformed:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage is the generic, non-sensitive message surfaced to the caller.
// Validation complaints are specific; upstream failures are not.
func (e *TurnError) ClientMessage() string {
	switch e.Kind {
	case KindBadRequest:
		return e.Message
	case KindUpstreamUnavailable:
		return "could not reach the assistant service"
	case KindUpstreamMalformed:
		return "the assistant service returned an unusable reply"
	default:
		return "server configuration error"
	}
}

// badRequest wraps a validation failure.
func badRequest(err error) *TurnError {
	return &TurnError{Kind: KindBadRequest, Message: err.Error(), Err: err}
}

// classifyCompletionError turns a provider failure from the first completion
// into a turn error. Empty or undecodable replies are malformed; everything
// else means the upstream was unavailable.
func classifyCompletionError(err error) *TurnError {
	switch {
	case errors.Is(err, core.ErrDecode), errors.Is(err, core.ErrEmptyReply):
		return &TurnError{Kind: KindUpstreamMalformed, Message: "provider reply could not be normalized", Err: err}
	default:
		return &TurnError{Kind: KindUpstreamUnavailable, Message: "provider call failed", Err: err}
	}
}

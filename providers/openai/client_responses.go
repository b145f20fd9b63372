package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/petal-labs/sous/core"
)

// responsesPath is the API endpoint for the Responses API.
const responsesPath = "/responses"

// doResponsesChat performs a request to the Responses API.
func (p *OpenAI) doResponsesChat(ctx context.Context, req *core.ChatRequest) (*core.ChatResponse, error) {
	respReq := buildResponsesRequest(req)

	body, err := json.Marshal(respReq)
	if err != nil {
		return nil, newDecodeError(err)
	}

	url := p.config.BaseURL + responsesPath
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, newNetworkError(err)
	}

	for key, values := range p.buildHeaders() {
		for _, v := range values {
			httpReq.Header.Add(key, v)
		}
	}

	resp, err := p.config.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, newNetworkError(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, newNetworkError(err)
	}

	requestID := resp.Header.Get("x-request-id")

	if resp.StatusCode >= 400 {
		return nil, normalizeError(resp.StatusCode, respBody, requestID)
	}

	var respResp responsesResponse
	if err := json.Unmarshal(respBody, &respResp); err != nil {
		return nil, newDecodeError(err)
	}

	return mapResponsesResponse(&respResp), nil
}

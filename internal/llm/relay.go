package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// RelayClient sends the conversation to the proxy's /api/chat endpoint.
// It is the network collaborator of the chat core: a completed request with
// an error payload surfaces as *APIError, a request that never completed
// surfaces as a plain error.
type RelayClient struct {
	baseURL    string
	model      string
	httpClient *http.Client
}

type relayRequest struct {
	Messages []Message `json:"messages"`
	Model    string    `json:"model"`
}

type relayResponse struct {
	Reply  string `json:"reply"`
	Error  string `json:"error"`
	Detail string `json:"detail"`
}

func NewRelay(baseURL, model string, httpClient *http.Client) *RelayClient {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 60 * time.Second}
	}
	return &RelayClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		model:      model,
		httpClient: httpClient,
	}
}

func (c *RelayClient) Generate(ctx context.Context, messages []Message) (Response, error) {
	body, err := json.Marshal(relayRequest{Messages: messages, Model: c.model})
	if err != nil {
		return Response{}, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/chat", bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return Response{}, fmt.Errorf("relay request: %w", err)
	}
	defer func() { _ = res.Body.Close() }()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return Response{}, fmt.Errorf("read response: %w", err)
	}

	var payload relayResponse
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		detail := fmt.Sprintf("server returned status %d", res.StatusCode)
		if json.Unmarshal(raw, &payload) == nil {
			if payload.Detail != "" {
				detail = payload.Detail
			} else if payload.Error != "" {
				detail = payload.Error
			}
		}
		return Response{}, &APIError{Detail: detail}
	}

	if err := json.Unmarshal(raw, &payload); err != nil {
		return Response{}, &APIError{Detail: "malformed server response"}
	}
	return Response{Content: payload.Reply, Model: c.model}, nil
}

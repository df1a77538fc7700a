package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
	"github.com/LlamaEdge/llamaedge-go/pkg/debug"
	"github.com/LlamaEdge/llamaedge-go/pkg/observability"
	"github.com/LlamaEdge/llamaedge-go/pkg/params"
)

// StreamEvent is one element of a streaming chat reply. Exactly one of
// Content and Err is meaningful: a transport failure mid-stream surfaces
// as a final event with Err set, after which the channel is closed.
// Concatenating the Content of every event yields the full reply.
type StreamEvent struct {
	Content string
	Err     error
}

// ChatStream sends a chat completion request in streaming mode and
// returns a channel of reply fragments. The channel is closed when the
// server signals the end of the stream, the response body is exhausted,
// a transport error occurs, or ctx is cancelled. The sequence is finite
// and not restartable.
func (c *Client) ChatStream(ctx context.Context, chatHistory []api.Message, p params.Chat) (<-chan StreamEvent, error) {
	req, err := buildChatRequest(chatHistory, p, true)
	if err != nil {
		observability.ObserveRequest("chat_stream", 0, err)
		return nil, err
	}
	return c.openStream(ctx, "chat_stream", req)
}

// openStream issues a streaming chat completion request and spawns the
// decode goroutine. Shared by ChatStream and RagChatStream.
func (c *Client) openStream(ctx context.Context, operation string, req *api.ChatCompletionRequest) (ch <-chan StreamEvent, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			observability.ObserveRequest(operation, time.Since(start).Seconds(), err)
		}
	}()

	payload, err := json.Marshal(req)
	if err != nil {
		return nil, api.NewOperationError("failed to marshal request: "+err.Error(), err)
	}

	endpoint, err := c.endpoint(pathChatCompletions)
	if err != nil {
		return nil, err
	}

	debug.Log("streaming", "opening stream", "url", endpoint)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, api.NewOperationError("failed to create HTTP request: "+err.Error(), err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "text/event-stream")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, api.NewOperationError("request failed: "+err.Error(), err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		defer resp.Body.Close()
		return nil, responseError(resp)
	}

	events := make(chan StreamEvent, 16)
	observability.StreamsActive.Inc()

	go func() {
		defer close(events)
		defer resp.Body.Close()
		defer observability.StreamsActive.Dec()
		defer func() {
			observability.ObserveRequest(operation, time.Since(start).Seconds(), nil)
		}()
		decodeStream(ctx, resp.Body, events)
	}()

	return events, nil
}

// decodeStream reads the response body chunk by chunk and emits reply
// fragments on events. Each received chunk is split on the "data: "
// prefix into event payloads; a "[DONE]" payload ends the stream
// immediately, discarding any payloads remaining in the same chunk.
// Malformed payloads are skipped. A read error is surfaced as a terminal
// error event unless the context was cancelled.
func decodeStream(ctx context.Context, body io.Reader, events chan<- StreamEvent) {
	buf := make([]byte, 4096)
	for {
		if ctx.Err() != nil {
			return
		}

		n, err := body.Read(buf)
		if n > 0 {
			if done := emitPayloads(ctx, string(buf[:n]), events); done {
				return
			}
		}

		if err == io.EOF {
			return
		}
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			sendEvent(ctx, events, StreamEvent{
				Err: api.NewOperationError("stream read error: "+err.Error(), err),
			})
			return
		}
	}
}

// emitPayloads processes one received chunk. It reports true when the
// stream is finished, i.e. the chunk contained the "[DONE]" sentinel or
// the context was cancelled.
func emitPayloads(ctx context.Context, chunk string, events chan<- StreamEvent) bool {
	for _, part := range strings.Split(chunk, "data: ") {
		payload := strings.TrimSpace(part)
		if payload == "" {
			continue
		}

		// The sentinel ends the stream; payloads after it in the same
		// chunk are not processed.
		if payload == "[DONE]" {
			return true
		}

		var chatChunk api.ChatCompletionChunk
		if err := json.Unmarshal([]byte(payload), &chatChunk); err != nil {
			debug.Log("streaming", "skipping malformed chunk",
				"error", err.Error(),
				"data", debug.Truncate(payload, 200),
			)
			continue
		}

		// The final chunk carries usage accounting and no choices.
		if chatChunk.Usage != nil {
			observability.ObserveUsage(chatChunk.Usage.PromptTokens, chatChunk.Usage.CompletionTokens)
		}

		if len(chatChunk.Choices) == 0 {
			continue
		}
		content := chatChunk.Choices[0].Delta.Content
		if content == nil {
			continue
		}
		if fragment := strings.TrimSpace(*content); fragment != "" {
			if !sendEvent(ctx, events, StreamEvent{Content: fragment}) {
				return true
			}
		}
	}
	return false
}

// sendEvent delivers an event unless the context is cancelled first.
// Reports whether the event was sent.
func sendEvent(ctx context.Context, events chan<- StreamEvent, ev StreamEvent) bool {
	select {
	case events <- ev:
		return true
	case <-ctx.Done():
		return false
	}
}

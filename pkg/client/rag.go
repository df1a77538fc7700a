package client

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"time"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
	"github.com/LlamaEdge/llamaedge-go/pkg/observability"
	"github.com/LlamaEdge/llamaedge-go/pkg/params"
)

// RagChat sends a chat completion request with retrieval enabled and
// returns the generated reply. The server performs the context retrieval
// against the configured vector database before generating.
func (c *Client) RagChat(ctx context.Context, chatHistory []api.Message, p params.RagChat) (reply string, err error) {
	defer observe("rag_chat", time.Now(), &err)

	req, err := buildRagChatRequest(chatHistory, p, false)
	if err != nil {
		return "", err
	}

	var completion api.ChatCompletionObject
	if err := c.postJSON(ctx, pathChatCompletions, req, &completion); err != nil {
		return "", err
	}

	return completionContent(&completion), nil
}

// RagChatStream is the streaming variant of RagChat. The returned channel
// behaves like the one from ChatStream.
func (c *Client) RagChatStream(ctx context.Context, chatHistory []api.Message, p params.RagChat) (<-chan StreamEvent, error) {
	req, err := buildRagChatRequest(chatHistory, p, true)
	if err != nil {
		observability.ObserveRequest("rag_chat_stream", 0, err)
		return nil, err
	}
	return c.openStream(ctx, "rag_chat_stream", req)
}

// buildRagChatRequest assembles a chat completion request carrying the
// retrieval pass-through fields. The RagChat sampling fields are plain
// values and always sent.
func buildRagChatRequest(chatHistory []api.Message, p params.RagChat, stream bool) (*api.ChatCompletionRequest, error) {
	if len(chatHistory) == 0 {
		return nil, api.NewInvalidArgumentError("chat history cannot be empty")
	}

	temperature := p.Temperature
	topP := p.TopP
	nChoice := p.NChoice
	maxTokens := p.MaxTokens
	presencePenalty := p.PresencePenalty
	frequencyPenalty := p.FrequencyPenalty
	contextWindow := p.ContextWindow

	req := &api.ChatCompletionRequest{
		Model:            p.Model,
		Messages:         chatHistory,
		Temperature:      &temperature,
		TopP:             &topP,
		NChoice:          &nChoice,
		Stop:             p.Stop,
		MaxTokens:        &maxTokens,
		PresencePenalty:  &presencePenalty,
		FrequencyPenalty: &frequencyPenalty,
		User:             p.User,
		ResponseFormat:   p.ResponseFormat,
		Tools:            p.Tools,
		ToolChoice:       p.ToolChoice,
		ContextWindow:    &contextWindow,
	}
	if p.Vdb != nil {
		req.VdbServerURL = &p.Vdb.ServerURL
		req.VdbCollectionName = p.Vdb.CollectionName
		req.Limit = p.Vdb.Limit
		req.ScoreThreshold = p.Vdb.ScoreThreshold
		req.VdbAPIKey = p.Vdb.APIKey
	}
	if stream {
		req.Stream = true
		req.StreamOptions = &api.StreamOptions{IncludeUsage: true}
	}
	return req, nil
}

// RetrieveContext asks the server to retrieve context for the last user
// message without generating a reply. The server returns one retrieval
// result per configured collection; a single-collection server may return
// a bare object instead of an array, which is normalized to a one-element
// slice.
func (c *Client) RetrieveContext(ctx context.Context, chatHistory []api.Message, p params.RagChat) (results []api.RetrieveObject, err error) {
	defer observe("retrieve_context", time.Now(), &err)

	req, err := buildRagChatRequest(chatHistory, p, false)
	if err != nil {
		return nil, err
	}

	var raw json.RawMessage
	if err := c.postJSON(ctx, pathRetrieve, req, &raw); err != nil {
		return nil, err
	}
	return decodeRetrieveResponse(raw)
}

// decodeRetrieveResponse accepts both response shapes of /v1/retrieve.
func decodeRetrieveResponse(raw json.RawMessage) ([]api.RetrieveObject, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var objects []api.RetrieveObject
		if err := json.Unmarshal(raw, &objects); err != nil {
			return nil, api.NewOperationError("failed to deserialize response: "+err.Error(), err)
		}
		return objects, nil
	}

	var object api.RetrieveObject
	if err := json.Unmarshal(raw, &object); err != nil {
		return nil, api.NewOperationError("failed to deserialize response: "+err.Error(), err)
	}
	return []api.RetrieveObject{object}, nil
}

// ChunkFile uploads the local file at path and asks the server to segment
// it into chunks of at most chunkCapacity characters for later embedding.
func (c *Client) ChunkFile(ctx context.Context, path string, chunkCapacity int) (chunks *api.ChunksResponse, err error) {
	defer observe("chunk_file", time.Now(), &err)

	if chunkCapacity <= 0 {
		return nil, api.NewInvalidArgumentError("chunk capacity must be positive")
	}

	file, err := c.uploadFile(ctx, path)
	if err != nil {
		return nil, err
	}

	req := &api.ChunksRequest{
		ID:            file.ID,
		Filename:      filepath.Base(file.Filename),
		ChunkCapacity: chunkCapacity,
	}

	var resp api.ChunksResponse
	if err := c.postJSON(ctx, pathChunks, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

package client

import (
	"context"
	"time"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
	"github.com/LlamaEdge/llamaedge-go/pkg/observability"
	"github.com/LlamaEdge/llamaedge-go/pkg/params"
)

// Chat sends a chat completion request and returns the generated reply.
// A completion without content is a valid empty string, not an error.
func (c *Client) Chat(ctx context.Context, chatHistory []api.Message, p params.Chat) (reply string, err error) {
	defer observe("chat", time.Now(), &err)

	req, err := buildChatRequest(chatHistory, p, false)
	if err != nil {
		return "", err
	}

	var completion api.ChatCompletionObject
	if err := c.postJSON(ctx, pathChatCompletions, req, &completion); err != nil {
		return "", err
	}

	return completionContent(&completion), nil
}

// buildChatRequest assembles the request body from the message history and
// a chat parameter bundle. Nil bundle fields are omitted from the body;
// streaming requests additionally ask for usage accounting in the final
// chunk.
func buildChatRequest(chatHistory []api.Message, p params.Chat, stream bool) (*api.ChatCompletionRequest, error) {
	if len(chatHistory) == 0 {
		return nil, api.NewInvalidArgumentError("chat history cannot be empty")
	}

	req := &api.ChatCompletionRequest{
		Model:            p.Model,
		Messages:         chatHistory,
		Temperature:      p.Temperature,
		TopP:             p.TopP,
		NChoice:          p.NChoice,
		Stop:             p.Stop,
		MaxTokens:        p.MaxTokens,
		PresencePenalty:  p.PresencePenalty,
		FrequencyPenalty: p.FrequencyPenalty,
		User:             p.User,
		ResponseFormat:   p.ResponseFormat,
		Tools:            p.Tools,
		ToolChoice:       p.ToolChoice,
	}
	if stream {
		req.Stream = true
		req.StreamOptions = &api.StreamOptions{IncludeUsage: true}
	}
	return req, nil
}

// completionContent extracts the first choice's content. A completion
// without choices or without content yields the empty string.
func completionContent(completion *api.ChatCompletionObject) string {
	if completion.Usage != nil {
		observability.ObserveUsage(completion.Usage.PromptTokens, completion.Usage.CompletionTokens)
	}
	if len(completion.Choices) == 0 {
		return ""
	}
	content := completion.Choices[0].Message.Content
	if content == nil {
		return ""
	}
	return *content
}

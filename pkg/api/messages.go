package api

import "encoding/json"

// Role names used on the wire.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
	RoleTool      = "tool"
)

// Message is one turn in a conversation history, tagged by role. Each role
// carries only the fields valid for it, so invalid role/content combinations
// cannot be constructed. Implementations marshal themselves into the wire
// format expected by /v1/chat/completions.
type Message interface {
	json.Marshaler

	// Role returns the wire role name of the message.
	Role() string
}

// SystemMessage sets the assistant's behavior for the conversation.
type SystemMessage struct {
	Content string
	// Name optionally identifies the participant.
	Name string
}

// NewSystemMessage creates a system message with the given content.
func NewSystemMessage(content string) SystemMessage {
	return SystemMessage{Content: content}
}

// Role returns "system".
func (m SystemMessage) Role() string { return RoleSystem }

// MarshalJSON implements json.Marshaler.
func (m SystemMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireMessage{
		Role:    RoleSystem,
		Content: m.Content,
		Name:    m.Name,
	})
}

// UserMessage carries the caller's input. Content is either plain text or,
// for multimodal input, a sequence of content parts. When Parts is non-empty
// it takes precedence over Text.
type UserMessage struct {
	Text  string
	Parts []ContentPart
	Name  string
}

// NewUserMessage creates a user message with plain text content.
func NewUserMessage(text string) UserMessage {
	return UserMessage{Text: text}
}

// NewUserPartsMessage creates a multimodal user message from content parts.
func NewUserPartsMessage(parts ...ContentPart) UserMessage {
	return UserMessage{Parts: parts}
}

// Role returns "user".
func (m UserMessage) Role() string { return RoleUser }

// MarshalJSON implements json.Marshaler.
func (m UserMessage) MarshalJSON() ([]byte, error) {
	var content any = m.Text
	if len(m.Parts) > 0 {
		content = m.Parts
	}
	return json.Marshal(wireMessage{
		Role:    RoleUser,
		Content: content,
		Name:    m.Name,
	})
}

// AssistantMessage is a prior model reply fed back as history. ToolCalls
// carries the tool invocations the model requested, if any.
type AssistantMessage struct {
	Content   string
	Name      string
	ToolCalls []ToolCall
}

// NewAssistantMessage creates an assistant message with text content.
func NewAssistantMessage(content string) AssistantMessage {
	return AssistantMessage{Content: content}
}

// Role returns "assistant".
func (m AssistantMessage) Role() string { return RoleAssistant }

// MarshalJSON implements json.Marshaler.
func (m AssistantMessage) MarshalJSON() ([]byte, error) {
	// The content field stays present (possibly empty) unless the message
	// is a pure tool-call turn, where the server expects it absent.
	w := wireMessage{
		Role:      RoleAssistant,
		Content:   m.Content,
		Name:      m.Name,
		ToolCalls: m.ToolCalls,
	}
	if m.Content == "" && len(m.ToolCalls) > 0 {
		w.Content = nil
	}
	return json.Marshal(w)
}

// ToolMessage is the result of a tool invocation, answering a prior
// assistant tool call.
type ToolMessage struct {
	Content    string
	ToolCallID string
}

// NewToolMessage creates a tool message answering the given tool call.
func NewToolMessage(content, toolCallID string) ToolMessage {
	return ToolMessage{Content: content, ToolCallID: toolCallID}
}

// Role returns "tool".
func (m ToolMessage) Role() string { return RoleTool }

// MarshalJSON implements json.Marshaler.
func (m ToolMessage) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireMessage{
		Role:       RoleTool,
		Content:    m.Content,
		ToolCallID: m.ToolCallID,
	})
}

// wireMessage is the flat message shape sent on the wire.
type wireMessage struct {
	Role       string     `json:"role"`
	Content    any        `json:"content,omitempty"`
	Name       string     `json:"name,omitempty"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
}

// ContentPart is one element of a multimodal user message.
type ContentPart struct {
	Type     string    `json:"type"` // "text" or "image_url"
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL wraps an image reference in a content part.
type ImageURL struct {
	URL string `json:"url"`
}

// TextPart creates a text content part.
func TextPart(text string) ContentPart {
	return ContentPart{Type: "text", Text: text}
}

// ImagePart creates an image content part referencing the given URL or
// data URI.
func ImagePart(url string) ContentPart {
	return ContentPart{Type: "image_url", ImageURL: &ImageURL{URL: url}}
}

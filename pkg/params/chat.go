package params

import "github.com/LlamaEdge/llamaedge-go/pkg/api"

// Chat holds the options for a chat completion call. Nil pointer fields
// are omitted from the request body.
type Chat struct {
	// Model to use for generating completions. Empty selects the server's
	// loaded model.
	Model string
	// Temperature adjusts the randomness of the generated text, between
	// 0.0 and 2.0. Alter this or TopP but not both. Defaults to 1.0.
	Temperature *float64
	// TopP limits next-token selection to tokens with cumulative
	// probability above the threshold, between 0.0 and 1.0. Defaults to 1.0.
	TopP *float64
	// NChoice is how many completion choices to generate. Defaults to 1.
	NChoice *int
	// Stop lists up to 4 sequences at which generation stops.
	Stop []string
	// MaxTokens is the maximum number of tokens to generate, no less
	// than 1. Defaults to 1024.
	MaxTokens *int64
	// PresencePenalty, between -2.0 and 2.0, penalizes tokens that have
	// appeared so far. Defaults to 0.0.
	PresencePenalty *float64
	// FrequencyPenalty, between -2.0 and 2.0, penalizes tokens by their
	// frequency so far. Defaults to 0.0.
	FrequencyPenalty *float64
	// User is a unique identifier representing the end-user.
	User *string
	// ResponseFormat constrains the output format the model must produce.
	ResponseFormat *api.ResponseFormat
	// Tools the model may call. Only functions are supported.
	Tools []api.Tool
	// ToolChoice controls which (if any) function is called by the model.
	ToolChoice any
}

// DefaultChat returns a Chat bundle with the documented defaults.
func DefaultChat() Chat {
	return Chat{
		Temperature:      floatPtr(1.0),
		TopP:             floatPtr(1.0),
		NChoice:          intPtr(1),
		MaxTokens:        int64Ptr(1024),
		PresencePenalty:  floatPtr(0.0),
		FrequencyPenalty: floatPtr(0.0),
	}
}

// RagChat holds the options for a RAG chat completion call. Unlike Chat,
// the sampling fields are plain values and always sent.
type RagChat struct {
	// Model to use for generating completions.
	Model string
	// Temperature adjusts the randomness of the generated text. Defaults to 0.8.
	Temperature float64
	// TopP limits next-token selection by cumulative probability.
	// Defaults to 0.9; 1.0 disables top-p sampling.
	TopP float64
	// NChoice is how many completion choices to generate. Defaults to 1.
	NChoice int
	// Stop lists up to 4 sequences at which generation stops.
	Stop []string
	// MaxTokens is the maximum number of tokens to generate. Defaults to 1024.
	MaxTokens int64
	// PresencePenalty penalizes tokens that have appeared so far. Defaults to 0.0.
	PresencePenalty float64
	// FrequencyPenalty penalizes tokens by their frequency so far. Defaults to 0.0.
	FrequencyPenalty float64
	// User is a unique identifier representing the end-user.
	User *string
	// ResponseFormat constrains the output format the model must produce.
	ResponseFormat *api.ResponseFormat
	// Tools the model may call.
	Tools []api.Tool
	// ToolChoice controls which (if any) function is called by the model.
	ToolChoice any
	// ContextWindow is the number of user messages used for context
	// retrieval. Defaults to 1.
	ContextWindow uint64
	// Vdb configures the external vector database the server retrieves
	// from. Forwarded as-is; the client never talks to the database.
	Vdb *VdbConfig
}

// VdbConfig names the VectorDB server the inference server retrieves
// context from. Limit and ScoreThreshold must carry one value per
// collection in CollectionName.
type VdbConfig struct {
	ServerURL      string
	CollectionName []string
	Limit          []uint64
	ScoreThreshold []float32
	APIKey         *string
}

// DefaultRagChat returns a RagChat bundle with the documented defaults.
func DefaultRagChat() RagChat {
	return RagChat{
		Temperature:   0.8,
		TopP:          0.9,
		NChoice:       1,
		MaxTokens:     1024,
		ContextWindow: 1,
	}
}

func floatPtr(f float64) *float64 { return &f }
func intPtr(i int) *int           { return &i }
func int64Ptr(i int64) *int64     { return &i }

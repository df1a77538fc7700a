package params

import "github.com/LlamaEdge/llamaedge-go/pkg/api"

// Transcription holds the options for an audio transcription call. Every
// scalar field is always sent as a form part; Model and Prompt are only
// sent when non-nil.
type Transcription struct {
	// Model is the ID of the model to use.
	Model *string
	// Prompt optionally guides the model's style or continues a previous
	// audio segment. It should match the audio language.
	Prompt *string
	// ResponseFormat is one of "json", "text", "srt", "verbose_json",
	// or "vtt". Defaults to "json".
	ResponseFormat string
	// Temperature is the sampling temperature, between 0 and 1.
	// Defaults to 0.0.
	Temperature float64
	// TimestampGranularities selects timestamp detail for verbose_json
	// output: "word", "segment", or both.
	TimestampGranularities []api.TimestampGranularity
	// DetectLanguage automatically detects the spoken language.
	// Defaults to false.
	DetectLanguage bool
	// OffsetTime is the time offset in milliseconds. Defaults to 0.
	OffsetTime uint64
	// Duration is the length of audio in seconds to process starting at
	// OffsetTime. Defaults to 0.
	Duration uint64
	// MaxContext is the maximum text context in tokens used when
	// processing long audio incrementally. Defaults to -1.
	MaxContext int
	// MaxLen is the maximum number of tokens per transcription segment.
	// Defaults to 0.
	MaxLen uint64
	// SplitOnWord splits audio chunks on word rather than on token.
	// Defaults to false.
	SplitOnWord bool
	// UseNewContext uses the new computation context. Defaults to false.
	UseNewContext bool
}

// DefaultTranscription returns a Transcription bundle with the documented
// defaults.
func DefaultTranscription() Transcription {
	return Transcription{
		ResponseFormat:         "json",
		TimestampGranularities: []api.TimestampGranularity{api.TimestampGranularitySegment},
		MaxContext:             -1,
	}
}

// Translation holds the options for an audio translation call. The prompt,
// if set, should be in English.
type Translation struct {
	// Model is the ID of the model to use.
	Model *string
	// Prompt optionally guides the model's style.
	Prompt *string
	// ResponseFormat is one of "json", "text", "srt", "verbose_json",
	// or "vtt". Defaults to "json".
	ResponseFormat string
	// Temperature is the sampling temperature, between 0 and 1.
	// Defaults to 0.0.
	Temperature float64
	// DetectLanguage automatically detects the spoken language.
	// Defaults to false.
	DetectLanguage bool
	// OffsetTime is the time offset in milliseconds. Defaults to 0.
	OffsetTime uint64
	// Duration is the length of audio in seconds to process starting at
	// OffsetTime. Defaults to 0.
	Duration uint64
	// MaxContext is the maximum text context in tokens used when
	// processing long audio incrementally. Defaults to -1.
	MaxContext int
	// MaxLen is the maximum number of tokens per segment. Defaults to 0.
	MaxLen uint64
	// SplitOnWord splits audio chunks on word rather than on token.
	// Defaults to false.
	SplitOnWord bool
	// UseNewContext uses the new computation context. Defaults to false.
	UseNewContext bool
}

// DefaultTranslation returns a Translation bundle with the documented
// defaults.
func DefaultTranslation() Translation {
	return Translation{
		ResponseFormat: "json",
		MaxContext:     -1,
	}
}

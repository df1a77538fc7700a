package api

// TimestampGranularity selects the level of timestamp detail in a
// verbose_json transcription.
type TimestampGranularity string

const (
	TimestampGranularityWord    TimestampGranularity = "word"
	TimestampGranularitySegment TimestampGranularity = "segment"
)

// TranscriptionObject is the response from /v1/audio/transcriptions.
// The optional fields are only present for verbose_json output.
type TranscriptionObject struct {
	Text     string          `json:"text"`
	Task     string          `json:"task,omitempty"`
	Language string          `json:"language,omitempty"`
	Duration float64         `json:"duration,omitempty"`
	Segments []SegmentObject `json:"segments,omitempty"`
	Words    []WordObject    `json:"words,omitempty"`
}

// TranslationObject is the response from /v1/audio/translations.
type TranslationObject struct {
	Text     string          `json:"text"`
	Task     string          `json:"task,omitempty"`
	Language string          `json:"language,omitempty"`
	Duration float64         `json:"duration,omitempty"`
	Segments []SegmentObject `json:"segments,omitempty"`
}

// SegmentObject is one transcribed segment in a verbose_json response.
type SegmentObject struct {
	ID               int     `json:"id"`
	Seek             int     `json:"seek"`
	Start            float64 `json:"start"`
	End              float64 `json:"end"`
	Text             string  `json:"text"`
	Tokens           []int   `json:"tokens,omitempty"`
	Temperature      float64 `json:"temperature"`
	AvgLogprob       float64 `json:"avg_logprob"`
	CompressionRatio float64 `json:"compression_ratio"`
	NoSpeechProb     float64 `json:"no_speech_prob"`
}

// WordObject is one word-level timestamp in a verbose_json response.
type WordObject struct {
	Word  string  `json:"word"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

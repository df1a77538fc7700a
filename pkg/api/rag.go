package api

// ChunksRequest is the JSON request body for /v1/chunks, referring to a
// previously uploaded file by ID.
type ChunksRequest struct {
	ID            string `json:"id"`
	Filename      string `json:"filename"`
	ChunkCapacity int    `json:"chunk_capacity"`
}

// ChunksResponse is the response from /v1/chunks.
type ChunksResponse struct {
	ID       string   `json:"id"`
	Filename string   `json:"filename"`
	Chunks   []string `json:"chunks"`
}

// RetrieveObject is the retrieval result for one collection from
// /v1/retrieve.
type RetrieveObject struct {
	Points         []RagScoredPoint `json:"points,omitempty"`
	Limit          uint64           `json:"limit"`
	ScoreThreshold float32          `json:"score_threshold"`
}

// RagScoredPoint is one retrieved context snippet with its similarity score.
type RagScoredPoint struct {
	Score  float32 `json:"score"`
	Source string  `json:"source"`
}

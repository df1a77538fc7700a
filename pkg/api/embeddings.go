package api

// EmbeddingRequest is the request body for /v1/embeddings. The vdb fields
// name an external vector database; the client forwards them without
// interpretation.
type EmbeddingRequest struct {
	Model             string   `json:"model,omitempty"`
	Input             []string `json:"input"`
	EncodingFormat    string   `json:"encoding_format,omitempty"`
	User              *string  `json:"user,omitempty"`
	VdbServerURL      *string  `json:"vdb_server_url,omitempty"`
	VdbCollectionName *string  `json:"vdb_collection_name,omitempty"`
	VdbAPIKey         *string  `json:"vdb_api_key,omitempty"`
}

// EmbeddingsResponse is the response from /v1/embeddings.
type EmbeddingsResponse struct {
	Object string            `json:"object"`
	Data   []EmbeddingObject `json:"data"`
	Model  string            `json:"model"`
	Usage  *Usage            `json:"usage,omitempty"`
}

// EmbeddingObject is one embedding vector in an embeddings response.
type EmbeddingObject struct {
	Index     int       `json:"index"`
	Object    string    `json:"object"`
	Embedding []float64 `json:"embedding"`
}

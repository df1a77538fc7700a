package api

// FileObject is the metadata the server returns for an uploaded file.
type FileObject struct {
	ID        string `json:"id"`
	Bytes     int64  `json:"bytes"`
	CreatedAt int64  `json:"created_at"`
	Filename  string `json:"filename"`
	Object    string `json:"object"`
	Purpose   string `json:"purpose"`
}

// ListFilesResponse is the response from GET /v1/files.
type ListFilesResponse struct {
	Object string       `json:"object"`
	Data   []FileObject `json:"data"`
}

// Model describes one model hosted by the server.
type Model struct {
	ID      string `json:"id"`
	Created int64  `json:"created"`
	Object  string `json:"object"`
	OwnedBy string `json:"owned_by"`
}

// ListModelsResponse is the response from GET /v1/models.
type ListModelsResponse struct {
	Object string  `json:"object"`
	Data   []Model `json:"data"`
}

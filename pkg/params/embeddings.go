package params

// Embeddings holds the options for an embeddings call. The Vdb* fields
// name an external vector database and are forwarded to the server
// uninterpreted.
type Embeddings struct {
	// Model is the ID of the model to use.
	Model string
	// EncodingFormat is "float" or "base64". Defaults to "float".
	EncodingFormat string
	// User is a unique identifier representing the end-user.
	User *string
	// VdbServerURL is the URL of the VectorDB server.
	VdbServerURL *string
	// VdbCollectionName is the name of the collection in VectorDB.
	VdbCollectionName *string
	// VdbAPIKey is the API key for the VectorDB server.
	VdbAPIKey *string
}

// DefaultEmbeddings returns an Embeddings bundle with the documented
// defaults.
func DefaultEmbeddings() Embeddings {
	return Embeddings{
		EncodingFormat: "float",
	}
}

// Package client provides typed access to the REST API of a LlamaEdge
// inference server: chat completions (buffered and streaming), embeddings,
// image generation and editing, audio transcription and translation, file
// upload, model listing, and the RAG chunk/retrieve operations.
//
// Every operation is a single request/response mapping. The client keeps
// no state between calls beyond the immutable server base URL, so a single
// Client is safe for concurrent use. It imposes no timeouts and performs
// no retries; request lifecycle is controlled through the caller's
// context.Context.
package client

// Package api defines the wire types for the LlamaEdge REST API.
//
// This package provides all data types exchanged with a LlamaEdge API
// server: chat messages and completion objects, streaming chunks,
// embeddings, images, audio transcription/translation results, file
// metadata, model listings, RAG chunk/retrieve objects, and the error
// taxonomy used throughout the client.
//
// The package has zero external dependencies (Go standard library only)
// and performs no I/O. All types produce JSON compatible with the
// OpenAI-style wire format the LlamaEdge server speaks.
//
// Core types:
//   - [Message]: One conversation turn, tagged by role (system, user, assistant, tool)
//   - [ChatCompletionRequest]: Request body for /v1/chat/completions
//   - [ChatCompletionObject]: Non-streaming chat completion response
//   - [ChatCompletionChunk]: One SSE chunk of a streaming chat completion
//   - [Error]: Typed client error with kind (invalid_address, invalid_argument, operation)
package api

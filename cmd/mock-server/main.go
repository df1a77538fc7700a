// Command mock-server runs a deterministic LlamaEdge API server for
// manual testing of the client and the llamaedge CLI. It returns
// predictable responses without any model behind it.
//
// Configuration:
//
//	MOCK_PORT - Listen port (default: 9090)
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
)

func main() {
	port := os.Getenv("MOCK_PORT")
	if port == "" {
		port = "9090"
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chat/completions", handleChatCompletions)
	mux.HandleFunc("POST /v1/embeddings", handleEmbeddings)
	mux.HandleFunc("POST /v1/files", handleUpload)
	mux.HandleFunc("GET /v1/files", handleListFiles)
	mux.HandleFunc("POST /v1/chunks", handleChunks)
	mux.HandleFunc("POST /v1/retrieve", handleRetrieve)
	mux.HandleFunc("POST /v1/audio/transcriptions", handleTranscription)
	mux.HandleFunc("POST /v1/audio/translations", handleTranslation)
	mux.HandleFunc("POST /v1/images/generations", handleImages)
	mux.HandleFunc("POST /v1/images/edits", handleImages)
	mux.HandleFunc("GET /v1/models", handleModels)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok\n"))
	})

	srv := &http.Server{Addr: ":" + port, Handler: mux}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		slog.Info("mock server starting", "port", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("mock server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("mock server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	srv.Shutdown(shutdownCtx)
}

// chatRequest is the subset of the request body the mock inspects.
type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content any    `json:"content"`
	} `json:"messages"`
	Stream bool `json:"stream"`
}

func (r *chatRequest) lastUserMessage() string {
	for i := len(r.Messages) - 1; i >= 0; i-- {
		if r.Messages[i].Role != "user" {
			continue
		}
		if text, ok := r.Messages[i].Content.(string); ok {
			return text
		}
	}
	return ""
}

func (r *chatRequest) modelOrDefault() string {
	if r.Model != "" {
		return r.Model
	}
	return "mock-model"
}

// replyFor returns a canned reply for a handful of known prompts.
func replyFor(prompt string) string {
	if strings.Contains(strings.ToLower(prompt), "capital of france") {
		return "Paris"
	}
	return "Hello, nice day!"
}

func handleChatCompletions(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Messages) == 0 {
		writeError(w, http.StatusBadRequest, "messages must not be empty")
		return
	}

	if req.Stream {
		handleStreaming(w, &req)
		return
	}

	reply := replyFor(req.lastUserMessage())
	writeJSON(w, api.ChatCompletionObject{
		ID:      "chatcmpl-mock",
		Object:  "chat.completion",
		Created: time.Now().Unix(),
		Model:   req.modelOrDefault(),
		Choices: []api.ChatCompletionChoice{
			{
				Index:        0,
				Message:      api.ChatCompletionMessage{Role: "assistant", Content: &reply},
				FinishReason: "stop",
			},
		},
		Usage: &api.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	})
}

func handleStreaming(w http.ResponseWriter, req *chatRequest) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")

	reply := replyFor(req.lastUserMessage())
	model := req.modelOrDefault()

	for _, token := range strings.Fields(reply) {
		content := token
		writeSSE(w, api.ChatCompletionChunk{
			ID:      "chatcmpl-mock",
			Object:  "chat.completion.chunk",
			Created: time.Now().Unix(),
			Model:   model,
			Choices: []api.ChunkChoice{
				{Index: 0, Delta: api.ChunkDelta{Content: &content}},
			},
		})
		flusher.Flush()
	}

	// Final chunk: usage accounting, no choices.
	writeSSE(w, api.ChatCompletionChunk{
		ID:      "chatcmpl-mock",
		Object:  "chat.completion.chunk",
		Created: time.Now().Unix(),
		Model:   model,
		Choices: []api.ChunkChoice{},
		Usage:   &api.Usage{PromptTokens: 10, CompletionTokens: 5, TotalTokens: 15},
	})
	flusher.Flush()

	fmt.Fprint(w, "data: [DONE]\n\n")
	flusher.Flush()
}

func handleEmbeddings(w http.ResponseWriter, r *http.Request) {
	var req api.EmbeddingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	data := make([]api.EmbeddingObject, len(req.Input))
	for i := range req.Input {
		data[i] = api.EmbeddingObject{
			Index:     i,
			Object:    "embedding",
			Embedding: []float64{0.1, 0.2, 0.3},
		}
	}
	writeJSON(w, api.EmbeddingsResponse{
		Object: "list",
		Data:   data,
		Model:  req.Model,
	})
}

func handleUpload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	fh := r.MultipartForm.File["file"]
	if len(fh) != 1 {
		writeError(w, http.StatusBadRequest, "exactly one file part required")
		return
	}
	writeJSON(w, api.FileObject{
		ID:        "file-mock",
		Bytes:     fh[0].Size,
		CreatedAt: time.Now().Unix(),
		Filename:  fh[0].Filename,
		Object:    "file",
		Purpose:   "assistants",
	})
}

func handleListFiles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, api.ListFilesResponse{
		Object: "list",
		Data: []api.FileObject{
			{ID: "file-mock", Bytes: 42, CreatedAt: time.Now().Unix(), Filename: "mock.txt", Object: "file", Purpose: "assistants"},
		},
	})
}

func handleChunks(w http.ResponseWriter, r *http.Request) {
	var req api.ChunksRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, api.ChunksResponse{
		ID:       req.ID,
		Filename: req.Filename,
		Chunks:   []string{"first chunk", "second chunk"},
	})
}

func handleRetrieve(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, []api.RetrieveObject{
		{
			Points: []api.RagScoredPoint{
				{Score: 0.91, Source: "Paris is the capital of France."},
			},
			Limit:          3,
			ScoreThreshold: 0.5,
		},
	})
}

func handleTranscription(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	writeJSON(w, api.TranscriptionObject{Text: "This is a mock transcription."})
}

func handleTranslation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	writeJSON(w, api.TranslationObject{Text: "This is a mock translation."})
}

func handleImages(w http.ResponseWriter, r *http.Request) {
	url := "http://localhost:9090/v1/files/download/file-img-mock"
	writeJSON(w, api.ListImagesResponse{
		Created: time.Now().Unix(),
		Data:    []api.ImageObject{{URL: &url}},
	})
}

func handleModels(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, api.ListModelsResponse{
		Object: "list",
		Data: []api.Model{
			{ID: "mock-model", Created: time.Now().Unix(), Object: "model", OwnedBy: "Not specified"},
		},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

func writeSSE(w http.ResponseWriter, chunk api.ChatCompletionChunk) {
	data, _ := json.Marshal(chunk)
	fmt.Fprintf(w, "data: %s\n\n", data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":{"message":%q,"type":"invalid_request_error","code":null}}`, message)
}

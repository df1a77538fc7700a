package client

import (
	"context"
	"time"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
	"github.com/LlamaEdge/llamaedge-go/pkg/params"
)

// Embeddings computes embedding vectors for the given input chunks.
func (c *Client) Embeddings(ctx context.Context, input []string, p params.Embeddings) (resp *api.EmbeddingsResponse, err error) {
	defer observe("embeddings", time.Now(), &err)

	if len(input) == 0 {
		return nil, api.NewInvalidArgumentError("input must not be empty")
	}

	req := &api.EmbeddingRequest{
		Model:             p.Model,
		Input:             input,
		EncodingFormat:    p.EncodingFormat,
		User:              p.User,
		VdbServerURL:      p.VdbServerURL,
		VdbCollectionName: p.VdbCollectionName,
		VdbAPIKey:         p.VdbAPIKey,
	}

	var out api.EmbeddingsResponse
	if err := c.postJSON(ctx, pathEmbeddings, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

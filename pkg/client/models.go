package client

import (
	"context"
	"time"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
)

// ListModels lists the models hosted by the server.
func (c *Client) ListModels(ctx context.Context) (models []api.Model, err error) {
	defer observe("list_models", time.Now(), &err)

	var resp api.ListModelsResponse
	if err := c.getJSON(ctx, pathModels, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

package client

import (
	"bytes"
	"context"
	"mime/multipart"
	"time"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
)

// UploadFile uploads the local file at path to the server and returns the
// file object the server assigned to it.
func (c *Client) UploadFile(ctx context.Context, path string) (file *api.FileObject, err error) {
	defer observe("upload_file", time.Now(), &err)
	return c.uploadFile(ctx, path)
}

// uploadFile is the unmetered upload used by both UploadFile and
// ChunkFile.
func (c *Client) uploadFile(ctx context.Context, path string) (*api.FileObject, error) {
	abs, err := resolveExistingFile(path)
	if err != nil {
		return nil, err
	}

	var form bytes.Buffer
	w := multipart.NewWriter(&form)
	if err := writeFilePart(w, "file", abs, ""); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, api.NewOperationError("failed to finalize form: "+err.Error(), err)
	}

	var file api.FileObject
	if err := c.postForm(ctx, pathFiles, w.FormDataContentType(), &form, &file); err != nil {
		return nil, err
	}
	return &file, nil
}

// ListFiles lists the files previously uploaded to the server.
func (c *Client) ListFiles(ctx context.Context) (files []api.FileObject, err error) {
	defer observe("list_files", time.Now(), &err)

	var resp api.ListFilesResponse
	if err := c.getJSON(ctx, pathFiles, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

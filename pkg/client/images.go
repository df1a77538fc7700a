package client

import (
	"bytes"
	"context"
	"mime/multipart"
	"time"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
	"github.com/LlamaEdge/llamaedge-go/pkg/params"
)

// CreateImage generates images from a text prompt and returns the image
// objects from the server response.
func (c *Client) CreateImage(ctx context.Context, prompt string, p params.ImageCreate) (images []api.ImageObject, err error) {
	defer observe("create_image", time.Now(), &err)

	req := &api.ImageCreateRequest{
		Prompt:                 prompt,
		NegativePrompt:         p.NegativePrompt,
		Model:                  p.Model,
		N:                      p.N,
		ResponseFormat:         p.ResponseFormat,
		User:                   p.User,
		CfgScale:               p.CfgScale,
		SampleMethod:           p.SampleMethod,
		Steps:                  p.Steps,
		Height:                 p.Height,
		Width:                  p.Width,
		ControlStrength:        p.ControlStrength,
		ControlImage:           p.ControlImage,
		Seed:                   p.Seed,
		Strength:               p.Strength,
		Scheduler:              p.Scheduler,
		ApplyCannyPreprocessor: p.ApplyCannyPreprocessor,
		StyleRatio:             p.StyleRatio,
	}

	var resp api.ListImagesResponse
	if err := c.postJSON(ctx, pathImageCreate, req, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// EditImage edits the image file at imageFile following prompt. The image,
// and the mask and control image when set, must exist locally; a missing
// file fails before any network call.
func (c *Client) EditImage(ctx context.Context, imageFile, prompt string, p params.ImageEdit) (images []api.ImageObject, err error) {
	defer observe("edit_image", time.Now(), &err)

	absImage, err := resolveExistingFile(imageFile)
	if err != nil {
		return nil, err
	}
	var absMask, absControl string
	if p.Mask != "" {
		if absMask, err = resolveExistingFile(p.Mask); err != nil {
			return nil, err
		}
	}
	if p.ControlImage != "" {
		if absControl, err = resolveExistingFile(p.ControlImage); err != nil {
			return nil, err
		}
	}

	var form bytes.Buffer
	w := multipart.NewWriter(&form)
	if err := buildImageEditForm(w, absImage, prompt, absMask, absControl, p); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, api.NewOperationError("failed to finalize form: "+err.Error(), err)
	}

	var resp api.ListImagesResponse
	if err := c.postForm(ctx, pathImageEdit, w.FormDataContentType(), &form, &resp); err != nil {
		return nil, err
	}
	return resp.Data, nil
}

// buildImageEditForm writes the multipart parts for an image edit request
// in a fixed order. The mask and control image parts are only written when
// a path was resolved for them.
func buildImageEditForm(w *multipart.Writer, imageFile, prompt, maskFile, controlFile string, p params.ImageEdit) error {
	if err := writeFilePart(w, "image", imageFile, "image"); err != nil {
		return err
	}
	if err := writeField(w, "prompt", prompt); err != nil {
		return err
	}
	if p.NegativePrompt != nil {
		if err := writeField(w, "negative_prompt", *p.NegativePrompt); err != nil {
			return err
		}
	}
	if maskFile != "" {
		if err := writeFilePart(w, "mask", maskFile, "image"); err != nil {
			return err
		}
	}
	if err := writeField(w, "model", p.Model); err != nil {
		return err
	}
	if err := writeField(w, "n", formatUint(p.N)); err != nil {
		return err
	}
	if err := writeField(w, "response_format", string(p.ResponseFormat)); err != nil {
		return err
	}
	if p.User != nil {
		if err := writeField(w, "user", *p.User); err != nil {
			return err
		}
	}
	if err := writeField(w, "cfg_scale", formatFloat32(p.CfgScale)); err != nil {
		return err
	}
	if err := writeField(w, "sample_method", string(p.SampleMethod)); err != nil {
		return err
	}
	if err := writeField(w, "steps", formatInt(int64(p.Steps))); err != nil {
		return err
	}
	if err := writeField(w, "height", formatInt(int64(p.Height))); err != nil {
		return err
	}
	if err := writeField(w, "width", formatInt(int64(p.Width))); err != nil {
		return err
	}
	if err := writeField(w, "control_strength", formatFloat32(p.ControlStrength)); err != nil {
		return err
	}
	if controlFile != "" {
		if err := writeFilePart(w, "control_image", controlFile, "image"); err != nil {
			return err
		}
	}
	if err := writeField(w, "seed", formatInt(int64(p.Seed))); err != nil {
		return err
	}
	if err := writeField(w, "strength", formatFloat32(p.Strength)); err != nil {
		return err
	}
	if err := writeField(w, "scheduler", string(p.Scheduler)); err != nil {
		return err
	}
	if err := writeField(w, "apply_canny_preprocessor", formatBool(p.ApplyCannyPreprocessor)); err != nil {
		return err
	}
	return writeField(w, "style_ratio", formatFloat32(p.StyleRatio))
}

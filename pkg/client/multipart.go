package client

import (
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/textproto"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
)

// resolveExistingFile resolves path to an absolute location and verifies
// the file exists. A missing or unreadable file is an invalid argument,
// reported before any network I/O.
func resolveExistingFile(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", api.NewInvalidArgumentError(fmt.Sprintf("invalid file path %q: %s", path, err))
	}
	if _, err := os.Stat(abs); err != nil {
		return "", api.NewInvalidArgumentError(fmt.Sprintf("file not found: %s", abs))
	}
	return abs, nil
}

// writeFilePart attaches the file at path as a binary form part. kind is
// the MIME type prefix ("audio" or "image"); the subtype is derived from
// the file extension. An empty kind falls back to the extension's
// registered MIME type, or application/octet-stream.
func writeFilePart(w *multipart.Writer, field, path, kind string) error {
	f, err := os.Open(path)
	if err != nil {
		return api.NewOperationError("failed to open file: "+err.Error(), err)
	}
	defer f.Close()

	filename := filepath.Base(path)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition",
		fmt.Sprintf(`form-data; name=%q; filename=%q`, field, filename))
	header.Set("Content-Type", fileContentType(filename, kind))

	part, err := w.CreatePart(header)
	if err != nil {
		return api.NewOperationError("failed to create form part: "+err.Error(), err)
	}
	if _, err := io.Copy(part, f); err != nil {
		return api.NewOperationError("failed to encode file part: "+err.Error(), err)
	}
	return nil
}

// fileContentType derives the part content type from the filename
// extension. For audio and image parts the server expects the
// "<kind>/<extension>" form.
func fileContentType(filename, kind string) string {
	ext := strings.TrimPrefix(filepath.Ext(filename), ".")
	if kind != "" && ext != "" {
		return kind + "/" + ext
	}
	if t := mime.TypeByExtension(filepath.Ext(filename)); t != "" {
		return t
	}
	return "application/octet-stream"
}

// writeField adds one text form part.
func writeField(w *multipart.Writer, name, value string) error {
	if err := w.WriteField(name, value); err != nil {
		return api.NewOperationError("failed to encode form field: "+err.Error(), err)
	}
	return nil
}

// Multipart form fields are text-only, so scalar values are sent in their
// canonical textual form: booleans as "true"/"false", integers in
// decimal, floats with the shortest exact representation.

func formatBool(v bool) string {
	return strconv.FormatBool(v)
}

func formatUint(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func formatInt(v int64) string {
	return strconv.FormatInt(v, 10)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'f', -1, 32)
}

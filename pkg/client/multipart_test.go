package client

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
	"github.com/LlamaEdge/llamaedge-go/pkg/params"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	return path
}

func TestResolveExistingFile(t *testing.T) {
	path := writeTempFile(t, "audio.wav", "RIFF")

	abs, err := resolveExistingFile(path)
	if err != nil {
		t.Fatalf("resolveExistingFile: %v", err)
	}
	if !filepath.IsAbs(abs) {
		t.Errorf("resolved path %q is not absolute", abs)
	}
}

func TestResolveExistingFile_Missing(t *testing.T) {
	_, err := resolveExistingFile(filepath.Join(t.TempDir(), "nope.wav"))
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Kind != api.ErrorKindInvalidArgument {
		t.Fatalf("error = %v, want invalid argument", err)
	}
	if !strings.Contains(apiErr.Message, "file not found") {
		t.Errorf("message = %q, should name the missing file", apiErr.Message)
	}
}

func TestFileContentType(t *testing.T) {
	tests := []struct {
		filename string
		kind     string
		want     string
	}{
		{"speech.wav", "audio", "audio/wav"},
		{"speech.mp3", "audio", "audio/mp3"},
		{"photo.png", "image", "image/png"},
		{"photo.jpg", "image", "image/jpg"},
		{"noext", "audio", "application/octet-stream"},
		{"doc.json", "", "application/json"},
		{"blob.unknownext", "", "application/octet-stream"},
	}

	for _, tt := range tests {
		got := fileContentType(tt.filename, tt.kind)
		// mime.TypeByExtension may append a charset parameter.
		if got != tt.want && !strings.HasPrefix(got, tt.want+";") {
			t.Errorf("fileContentType(%q, %q) = %q, want %q", tt.filename, tt.kind, got, tt.want)
		}
	}
}

// buildForm renders a transcription form with a fixed boundary so bodies
// can be compared byte for byte.
func buildForm(t *testing.T, audioFile, language string, p params.Transcription) []byte {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.SetBoundary("testboundary"); err != nil {
		t.Fatalf("SetBoundary: %v", err)
	}
	if err := buildTranscriptionForm(w, audioFile, language, p); err != nil {
		t.Fatalf("buildTranscriptionForm: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	return buf.Bytes()
}

func TestBuildTranscriptionForm_Deterministic(t *testing.T) {
	path := writeTempFile(t, "speech.wav", "RIFF....WAVE")
	p := params.DefaultTranscription()

	first := buildForm(t, path, "en", p)
	second := buildForm(t, path, "en", p)

	if !bytes.Equal(first, second) {
		t.Error("identical inputs should produce identical form bodies")
	}
}

func TestBuildTranscriptionForm_FieldOrder(t *testing.T) {
	path := writeTempFile(t, "speech.wav", "RIFF....WAVE")
	p := params.DefaultTranscription()
	model := "whisper-large"
	p.Model = &model

	body := string(buildForm(t, path, "en", p))

	order := []string{
		`name="file"`,
		`name="language"`,
		`name="model"`,
		`name="response_format"`,
		`name="temperature"`,
		`name="timestamp_granularities[]"`,
		`name="detect_language"`,
		`name="offset_time"`,
		`name="duration"`,
		`name="max_context"`,
		`name="max_len"`,
		`name="split_on_word"`,
		`name="use_new_context"`,
	}
	last := -1
	for _, field := range order {
		idx := strings.Index(body, field)
		if idx < 0 {
			t.Fatalf("form body missing %s:\n%s", field, body)
		}
		if idx < last {
			t.Errorf("%s appears out of order", field)
		}
		last = idx
	}
}

func TestScalarFormatting(t *testing.T) {
	if got := formatBool(true); got != "true" {
		t.Errorf("formatBool(true) = %q", got)
	}
	if got := formatInt(-1); got != "-1" {
		t.Errorf("formatInt(-1) = %q", got)
	}
	if got := formatUint(42); got != "42" {
		t.Errorf("formatUint(42) = %q", got)
	}
	if got := formatFloat(0.8); got != "0.8" {
		t.Errorf("formatFloat(0.8) = %q", got)
	}
	if got := formatFloat(0); got != "0" {
		t.Errorf("formatFloat(0) = %q", got)
	}
	if got := formatFloat32(7.0); got != "7" {
		t.Errorf("formatFloat32(7.0) = %q", got)
	}
	if got := formatFloat32(0.75); got != "0.75" {
		t.Errorf("formatFloat32(0.75) = %q", got)
	}
}

package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"testing"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
	"github.com/LlamaEdge/llamaedge-go/pkg/params"
)

func TestTranscribe(t *testing.T) {
	path := writeTempFile(t, "speech.wav", "RIFF....WAVE")

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != pathTranscriptions {
			t.Errorf("path = %q, want %q", r.URL.Path, pathTranscriptions)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}

		fh := r.MultipartForm.File["file"]
		if len(fh) != 1 {
			t.Fatal("form should carry exactly one file part")
		}
		if fh[0].Filename != "speech.wav" {
			t.Errorf("filename = %q, want speech.wav", fh[0].Filename)
		}
		if got := fh[0].Header.Get("Content-Type"); got != "audio/wav" {
			t.Errorf("file part Content-Type = %q, want audio/wav", got)
		}

		// Language and detect_language are both sent; the server decides
		// how they interact.
		for field, want := range map[string]string{
			"language":        "en",
			"detect_language": "true",
			"response_format": "json",
			"temperature":     "0",
			"max_context":     "-1",
			"max_len":         "0",
			"split_on_word":   "false",
		} {
			if got := r.FormValue(field); got != want {
				t.Errorf("field %s = %q, want %q", field, got, want)
			}
		}
		if got := r.MultipartForm.Value["timestamp_granularities[]"]; len(got) != 1 || got[0] != "segment" {
			t.Errorf("timestamp_granularities[] = %v, want [segment]", got)
		}

		fmt.Fprint(w, `{"text":"Hello, world."}`)
	})

	p := params.DefaultTranscription()
	p.DetectLanguage = true
	result, err := c.Transcribe(context.Background(), path, "en", p)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if result.Text != "Hello, world." {
		t.Errorf("text = %q, want %q", result.Text, "Hello, world.")
	}
}

func TestTranscribe_MissingFile(t *testing.T) {
	called := false
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	_, err := c.Transcribe(context.Background(), filepath.Join(t.TempDir(), "missing.wav"), "en", params.DefaultTranscription())
	var apiErr *api.Error
	if !errors.As(err, &apiErr) || apiErr.Kind != api.ErrorKindInvalidArgument {
		t.Fatalf("error = %v, want invalid argument", err)
	}
	if called {
		t.Error("missing file should fail before any network I/O")
	}
}

func TestTranscribe_VerboseJSON(t *testing.T) {
	path := writeTempFile(t, "speech.wav", "RIFF....WAVE")

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		if got := r.FormValue("response_format"); got != "verbose_json" {
			t.Errorf("response_format = %q, want verbose_json", got)
		}
		got := r.MultipartForm.Value["timestamp_granularities[]"]
		if len(got) != 2 || got[0] != "word" || got[1] != "segment" {
			t.Errorf("timestamp_granularities[] = %v, want [word segment]", got)
		}
		fmt.Fprint(w, `{"task":"transcribe","language":"en","duration":1.5,"text":"Hi","segments":[{"id":0,"seek":0,"start":0,"end":1.5,"text":"Hi","temperature":0,"avg_logprob":-0.2,"compression_ratio":1,"no_speech_prob":0.01}],"words":[{"word":"Hi","start":0,"end":1.5}]}`)
	})

	p := params.DefaultTranscription()
	p.ResponseFormat = "verbose_json"
	p.TimestampGranularities = []api.TimestampGranularity{
		api.TimestampGranularityWord,
		api.TimestampGranularitySegment,
	}

	result, err := c.Transcribe(context.Background(), path, "en", p)
	if err != nil {
		t.Fatalf("Transcribe: %v", err)
	}
	if len(result.Segments) != 1 || len(result.Words) != 1 {
		t.Errorf("segments = %d, words = %d, want 1 and 1", len(result.Segments), len(result.Words))
	}
	if result.Duration != 1.5 {
		t.Errorf("duration = %v, want 1.5", result.Duration)
	}
}

func TestTranslate(t *testing.T) {
	path := writeTempFile(t, "speech.mp3", "ID3")

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != pathTranslations {
			t.Errorf("path = %q, want %q", r.URL.Path, pathTranslations)
		}
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("ParseMultipartForm: %v", err)
		}
		fh := r.MultipartForm.File["file"]
		if len(fh) != 1 {
			t.Fatal("form should carry exactly one file part")
		}
		if got := fh[0].Header.Get("Content-Type"); got != "audio/mp3" {
			t.Errorf("file part Content-Type = %q, want audio/mp3", got)
		}
		if got := r.FormValue("language"); got != "de" {
			t.Errorf("language = %q, want de", got)
		}
		if _, ok := r.MultipartForm.Value["timestamp_granularities[]"]; ok {
			t.Error("translation form should not carry timestamp granularities")
		}
		fmt.Fprint(w, `{"text":"Hello."}`)
	})

	result, err := c.Translate(context.Background(), path, "de", params.DefaultTranslation())
	if err != nil {
		t.Fatalf("Translate: %v", err)
	}
	if result.Text != "Hello." {
		t.Errorf("text = %q, want %q", result.Text, "Hello.")
	}
}

func TestTranslate_ServerError(t *testing.T) {
	path := writeTempFile(t, "speech.wav", "RIFF")

	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		fmt.Fprint(w, `{"error":{"message":"audio model not loaded","type":"server_error","code":null}}`)
	})

	_, err := c.Translate(context.Background(), path, "de", params.DefaultTranslation())
	if err == nil {
		t.Fatal("Translate should fail on a 500 response")
	}
	if !strings.Contains(err.Error(), "audio model not loaded") {
		t.Errorf("error = %q, should contain the server message", err)
	}
}

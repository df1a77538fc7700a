package client

import (
	"bytes"
	"context"
	"mime/multipart"
	"time"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
	"github.com/LlamaEdge/llamaedge-go/pkg/params"
)

// Transcribe transcribes the audio file at audioFile. language is the
// ISO-639-1 code of the spoken language; it is sent alongside
// DetectLanguage as-is, and the server decides how the two interact.
// The file must exist locally; a missing file fails before any network
// call.
func (c *Client) Transcribe(ctx context.Context, audioFile, language string, p params.Transcription) (result *api.TranscriptionObject, err error) {
	defer observe("transcribe", time.Now(), &err)

	abs, err := resolveExistingFile(audioFile)
	if err != nil {
		return nil, err
	}

	var form bytes.Buffer
	w := multipart.NewWriter(&form)
	if err := buildTranscriptionForm(w, abs, language, p); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, api.NewOperationError("failed to finalize form: "+err.Error(), err)
	}

	var transcription api.TranscriptionObject
	if err := c.postForm(ctx, pathTranscriptions, w.FormDataContentType(), &form, &transcription); err != nil {
		return nil, err
	}
	return &transcription, nil
}

// buildTranscriptionForm writes the multipart parts for a transcription
// request in a fixed order, so identical inputs produce identical bodies.
// Every scalar bundle field is always included in its textual form;
// model and prompt only when present.
func buildTranscriptionForm(w *multipart.Writer, audioFile, language string, p params.Transcription) error {
	if err := writeFilePart(w, "file", audioFile, "audio"); err != nil {
		return err
	}
	if err := writeField(w, "language", language); err != nil {
		return err
	}
	if p.Model != nil {
		if err := writeField(w, "model", *p.Model); err != nil {
			return err
		}
	}
	if p.Prompt != nil {
		if err := writeField(w, "prompt", *p.Prompt); err != nil {
			return err
		}
	}
	if err := writeField(w, "response_format", p.ResponseFormat); err != nil {
		return err
	}
	if err := writeField(w, "temperature", formatFloat(p.Temperature)); err != nil {
		return err
	}
	for _, granularity := range p.TimestampGranularities {
		if err := writeField(w, "timestamp_granularities[]", string(granularity)); err != nil {
			return err
		}
	}
	return writeAudioCommonFields(w, audioCommonFields{
		DetectLanguage: p.DetectLanguage,
		OffsetTime:     p.OffsetTime,
		Duration:       p.Duration,
		MaxContext:     p.MaxContext,
		MaxLen:         p.MaxLen,
		SplitOnWord:    p.SplitOnWord,
		UseNewContext:  p.UseNewContext,
	})
}

// Translate translates the audio file at audioFile into English.
// language is the code of the spoken source language.
func (c *Client) Translate(ctx context.Context, audioFile, language string, p params.Translation) (result *api.TranslationObject, err error) {
	defer observe("translate", time.Now(), &err)

	abs, err := resolveExistingFile(audioFile)
	if err != nil {
		return nil, err
	}

	var form bytes.Buffer
	w := multipart.NewWriter(&form)
	if err := buildTranslationForm(w, abs, language, p); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, api.NewOperationError("failed to finalize form: "+err.Error(), err)
	}

	var translation api.TranslationObject
	if err := c.postForm(ctx, pathTranslations, w.FormDataContentType(), &form, &translation); err != nil {
		return nil, err
	}
	return &translation, nil
}

// buildTranslationForm writes the multipart parts for a translation
// request, mirroring the transcription form without timestamp
// granularities.
func buildTranslationForm(w *multipart.Writer, audioFile, language string, p params.Translation) error {
	if err := writeFilePart(w, "file", audioFile, "audio"); err != nil {
		return err
	}
	if err := writeField(w, "language", language); err != nil {
		return err
	}
	if p.Model != nil {
		if err := writeField(w, "model", *p.Model); err != nil {
			return err
		}
	}
	if p.Prompt != nil {
		if err := writeField(w, "prompt", *p.Prompt); err != nil {
			return err
		}
	}
	if err := writeField(w, "response_format", p.ResponseFormat); err != nil {
		return err
	}
	if err := writeField(w, "temperature", formatFloat(p.Temperature)); err != nil {
		return err
	}
	return writeAudioCommonFields(w, audioCommonFields{
		DetectLanguage: p.DetectLanguage,
		OffsetTime:     p.OffsetTime,
		Duration:       p.Duration,
		MaxContext:     p.MaxContext,
		MaxLen:         p.MaxLen,
		SplitOnWord:    p.SplitOnWord,
		UseNewContext:  p.UseNewContext,
	})
}

// audioCommonFields are the whisper tuning fields shared by
// transcription and translation.
type audioCommonFields struct {
	DetectLanguage bool
	OffsetTime     uint64
	Duration       uint64
	MaxContext     int
	MaxLen         uint64
	SplitOnWord    bool
	UseNewContext  bool
}

func writeAudioCommonFields(w *multipart.Writer, f audioCommonFields) error {
	fields := []struct {
		name  string
		value string
	}{
		{"detect_language", formatBool(f.DetectLanguage)},
		{"offset_time", formatUint(f.OffsetTime)},
		{"duration", formatUint(f.Duration)},
		{"max_context", formatInt(int64(f.MaxContext))},
		{"max_len", formatUint(f.MaxLen)},
		{"split_on_word", formatBool(f.SplitOnWord)},
		{"use_new_context", formatBool(f.UseNewContext)},
	}
	for _, field := range fields {
		if err := writeField(w, field.name, field.value); err != nil {
			return err
		}
	}
	return nil
}

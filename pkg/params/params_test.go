package params

import (
	"testing"

	"github.com/LlamaEdge/llamaedge-go/pkg/api"
)

func TestDefaultChat(t *testing.T) {
	p := DefaultChat()

	if p.Model != "" {
		t.Errorf("Model = %q, want empty", p.Model)
	}
	if p.Temperature == nil || *p.Temperature != 1.0 {
		t.Errorf("Temperature = %v, want 1.0", p.Temperature)
	}
	if p.TopP == nil || *p.TopP != 1.0 {
		t.Errorf("TopP = %v, want 1.0", p.TopP)
	}
	if p.NChoice == nil || *p.NChoice != 1 {
		t.Errorf("NChoice = %v, want 1", p.NChoice)
	}
	if p.MaxTokens == nil || *p.MaxTokens != 1024 {
		t.Errorf("MaxTokens = %v, want 1024", p.MaxTokens)
	}
	if p.PresencePenalty == nil || *p.PresencePenalty != 0.0 {
		t.Errorf("PresencePenalty = %v, want 0.0", p.PresencePenalty)
	}
	if p.FrequencyPenalty == nil || *p.FrequencyPenalty != 0.0 {
		t.Errorf("FrequencyPenalty = %v, want 0.0", p.FrequencyPenalty)
	}
	if p.Stop != nil || p.User != nil || p.ResponseFormat != nil || p.Tools != nil || p.ToolChoice != nil {
		t.Error("optional fields should default to nil")
	}
}

func TestDefaultRagChat(t *testing.T) {
	p := DefaultRagChat()

	if p.Temperature != 0.8 {
		t.Errorf("Temperature = %v, want 0.8", p.Temperature)
	}
	if p.TopP != 0.9 {
		t.Errorf("TopP = %v, want 0.9", p.TopP)
	}
	if p.NChoice != 1 {
		t.Errorf("NChoice = %d, want 1", p.NChoice)
	}
	if p.MaxTokens != 1024 {
		t.Errorf("MaxTokens = %d, want 1024", p.MaxTokens)
	}
	if p.PresencePenalty != 0.0 || p.FrequencyPenalty != 0.0 {
		t.Error("penalties should default to 0.0")
	}
	if p.ContextWindow != 1 {
		t.Errorf("ContextWindow = %d, want 1", p.ContextWindow)
	}
	if p.Vdb != nil {
		t.Error("Vdb should default to nil")
	}
}

func TestDefaultEmbeddings(t *testing.T) {
	p := DefaultEmbeddings()

	if p.EncodingFormat != "float" {
		t.Errorf("EncodingFormat = %q, want \"float\"", p.EncodingFormat)
	}
	if p.Model != "" || p.User != nil || p.VdbServerURL != nil || p.VdbCollectionName != nil || p.VdbAPIKey != nil {
		t.Error("optional fields should default to empty")
	}
}

func TestDefaultTranscription(t *testing.T) {
	p := DefaultTranscription()

	if p.ResponseFormat != "json" {
		t.Errorf("ResponseFormat = %q, want \"json\"", p.ResponseFormat)
	}
	if p.Temperature != 0.0 {
		t.Errorf("Temperature = %v, want 0.0", p.Temperature)
	}
	if len(p.TimestampGranularities) != 1 || p.TimestampGranularities[0] != api.TimestampGranularitySegment {
		t.Errorf("TimestampGranularities = %v, want [segment]", p.TimestampGranularities)
	}
	if p.DetectLanguage || p.SplitOnWord || p.UseNewContext {
		t.Error("boolean options should default to false")
	}
	if p.OffsetTime != 0 || p.Duration != 0 || p.MaxLen != 0 {
		t.Error("offset, duration, and max_len should default to 0")
	}
	if p.MaxContext != -1 {
		t.Errorf("MaxContext = %d, want -1", p.MaxContext)
	}
}

func TestDefaultTranslation(t *testing.T) {
	p := DefaultTranslation()

	if p.ResponseFormat != "json" {
		t.Errorf("ResponseFormat = %q, want \"json\"", p.ResponseFormat)
	}
	if p.MaxContext != -1 {
		t.Errorf("MaxContext = %d, want -1", p.MaxContext)
	}
	if p.DetectLanguage {
		t.Error("DetectLanguage should default to false")
	}
}

func TestDefaultImageParams(t *testing.T) {
	create := DefaultImageCreate()
	edit := DefaultImageEdit()

	for name, p := range map[string]struct {
		n               uint64
		format          api.ImageResponseFormat
		cfgScale        float32
		sampler         api.SamplingMethod
		steps           int
		height, width   int
		controlStrength float32
		seed            int32
		strength        float32
		scheduler       api.Scheduler
		canny           bool
		styleRatio      float32
	}{
		"create": {create.N, create.ResponseFormat, create.CfgScale, create.SampleMethod, create.Steps, create.Height, create.Width, create.ControlStrength, create.Seed, create.Strength, create.Scheduler, create.ApplyCannyPreprocessor, create.StyleRatio},
		"edit":   {edit.N, edit.ResponseFormat, edit.CfgScale, edit.SampleMethod, edit.Steps, edit.Height, edit.Width, edit.ControlStrength, edit.Seed, edit.Strength, edit.Scheduler, edit.ApplyCannyPreprocessor, edit.StyleRatio},
	} {
		if p.n != 1 {
			t.Errorf("%s: N = %d, want 1", name, p.n)
		}
		if p.format != api.ImageResponseFormatURL {
			t.Errorf("%s: ResponseFormat = %q, want url", name, p.format)
		}
		if p.cfgScale != 7.0 {
			t.Errorf("%s: CfgScale = %v, want 7.0", name, p.cfgScale)
		}
		if p.sampler != api.SamplingMethodEulerA {
			t.Errorf("%s: SampleMethod = %q, want euler_a", name, p.sampler)
		}
		if p.steps != 20 {
			t.Errorf("%s: Steps = %d, want 20", name, p.steps)
		}
		if p.height != 512 || p.width != 512 {
			t.Errorf("%s: size = %dx%d, want 512x512", name, p.width, p.height)
		}
		if p.controlStrength != 0.9 {
			t.Errorf("%s: ControlStrength = %v, want 0.9", name, p.controlStrength)
		}
		if p.seed != 42 {
			t.Errorf("%s: Seed = %d, want 42", name, p.seed)
		}
		if p.strength != 0.75 {
			t.Errorf("%s: Strength = %v, want 0.75", name, p.strength)
		}
		if p.scheduler != api.SchedulerDiscrete {
			t.Errorf("%s: Scheduler = %q, want discrete", name, p.scheduler)
		}
		if p.canny {
			t.Errorf("%s: ApplyCannyPreprocessor should default to false", name)
		}
		if p.styleRatio != 0.2 {
			t.Errorf("%s: StyleRatio = %v, want 0.2", name, p.styleRatio)
		}
	}
	if edit.Mask != "" || edit.ControlImage != "" {
		t.Error("edit file paths should default to empty")
	}
}

package params

import "github.com/LlamaEdge/llamaedge-go/pkg/api"

// ImageCreate holds the options for an image generation call.
type ImageCreate struct {
	// NegativePrompt describes what the image should not contain.
	NegativePrompt *string
	// Model is the name of the model to use for image generation.
	Model string
	// N is the number of images to generate. Defaults to 1.
	N uint64
	// ResponseFormat is "url" or "b64_json". Defaults to "url".
	ResponseFormat api.ImageResponseFormat
	// User is a unique identifier representing the end-user.
	User *string
	// CfgScale is the unconditional guidance scale. Defaults to 7.0.
	CfgScale float32
	// SampleMethod is the diffusion sampler. Defaults to "euler_a".
	SampleMethod api.SamplingMethod
	// Steps is the number of sample steps. Defaults to 20.
	Steps int
	// Height is the image height in pixels. Defaults to 512.
	Height int
	// Width is the image width in pixels. Defaults to 512.
	Width int
	// ControlStrength is the strength applied to Control Net. Defaults to 0.9.
	ControlStrength float32
	// ControlImage is a previously uploaded image controlling the
	// generation.
	ControlImage *api.FileObject
	// Seed is the RNG seed; negative selects a random seed. Defaults to 42.
	Seed int32
	// Strength controls noising/unnoising. Defaults to 0.75.
	Strength float32
	// Scheduler is the denoiser sigma scheduler. Defaults to "discrete".
	Scheduler api.Scheduler
	// ApplyCannyPreprocessor applies the canny preprocessor. Defaults to false.
	ApplyCannyPreprocessor bool
	// StyleRatio is the strength for keeping input identity. Defaults to 0.2.
	StyleRatio float32
}

// DefaultImageCreate returns an ImageCreate bundle with the documented
// defaults.
func DefaultImageCreate() ImageCreate {
	return ImageCreate{
		N:               1,
		ResponseFormat:  api.ImageResponseFormatURL,
		CfgScale:        7.0,
		SampleMethod:    api.SamplingMethodEulerA,
		Steps:           20,
		Height:          512,
		Width:           512,
		ControlStrength: 0.9,
		Seed:            42,
		Strength:        0.75,
		Scheduler:       api.SchedulerDiscrete,
		StyleRatio:      0.2,
	}
}

// ImageEdit holds the options for an image edit call. Mask and
// ControlImage are local file paths attached to the multipart form when
// non-empty; both must exist if set.
type ImageEdit struct {
	// NegativePrompt describes what the image should not contain.
	NegativePrompt *string
	// Mask is a path to an image whose fully transparent areas indicate
	// where the input image should be edited. Must have the same
	// dimensions as the input image.
	Mask string
	// Model is the name of the model to use for image generation.
	Model string
	// N is the number of images to generate. Defaults to 1.
	N uint64
	// ResponseFormat is "url" or "b64_json". Defaults to "url".
	ResponseFormat api.ImageResponseFormat
	// User is a unique identifier representing the end-user.
	User *string
	// CfgScale is the unconditional guidance scale. Defaults to 7.0.
	CfgScale float32
	// SampleMethod is the diffusion sampler. Defaults to "euler_a".
	SampleMethod api.SamplingMethod
	// Steps is the number of sample steps. Defaults to 20.
	Steps int
	// Height is the image height in pixels. Defaults to 512.
	Height int
	// Width is the image width in pixels. Defaults to 512.
	Width int
	// ControlStrength is the strength applied to Control Net. Defaults to 0.9.
	ControlStrength float32
	// ControlImage is a path to an image controlling the generation.
	ControlImage string
	// Seed is the RNG seed; negative selects a random seed. Defaults to 42.
	Seed int32
	// Strength controls noising/unnoising. Defaults to 0.75.
	Strength float32
	// Scheduler is the denoiser sigma scheduler. Defaults to "discrete".
	Scheduler api.Scheduler
	// ApplyCannyPreprocessor applies the canny preprocessor. Defaults to false.
	ApplyCannyPreprocessor bool
	// StyleRatio is the strength for keeping input identity. Defaults to 0.2.
	StyleRatio float32
}

// DefaultImageEdit returns an ImageEdit bundle with the documented defaults.
func DefaultImageEdit() ImageEdit {
	return ImageEdit{
		N:               1,
		ResponseFormat:  api.ImageResponseFormatURL,
		CfgScale:        7.0,
		SampleMethod:    api.SamplingMethodEulerA,
		Steps:           20,
		Height:          512,
		Width:           512,
		ControlStrength: 0.9,
		Seed:            42,
		Strength:        0.75,
		Scheduler:       api.SchedulerDiscrete,
		StyleRatio:      0.2,
	}
}

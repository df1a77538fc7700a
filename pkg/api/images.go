package api

// SamplingMethod selects the diffusion sampler for image generation.
type SamplingMethod string

const (
	SamplingMethodEuler    SamplingMethod = "euler"
	SamplingMethodEulerA   SamplingMethod = "euler_a"
	SamplingMethodHeun     SamplingMethod = "heun"
	SamplingMethodDPM2     SamplingMethod = "dpm2"
	SamplingMethodDPMPP2SA SamplingMethod = "dpm++2s_a"
	SamplingMethodDPMPP2M  SamplingMethod = "dpm++2m"
	SamplingMethodIPNDM    SamplingMethod = "ipndm"
	SamplingMethodLCM      SamplingMethod = "lcm"
)

// Scheduler selects the denoiser sigma scheduler.
type Scheduler string

const (
	SchedulerDiscrete    Scheduler = "discrete"
	SchedulerKarras      Scheduler = "karras"
	SchedulerExponential Scheduler = "exponential"
	SchedulerAYS         Scheduler = "ays"
	SchedulerGITS        Scheduler = "gits"
)

// ImageResponseFormat selects how generated images are returned.
type ImageResponseFormat string

const (
	ImageResponseFormatURL     ImageResponseFormat = "url"
	ImageResponseFormatB64JSON ImageResponseFormat = "b64_json"
)

// ImageCreateRequest is the JSON request body for /v1/images/generations.
type ImageCreateRequest struct {
	Prompt                  string              `json:"prompt"`
	NegativePrompt          *string             `json:"negative_prompt,omitempty"`
	Model                   string              `json:"model"`
	N                       uint64              `json:"n"`
	ResponseFormat          ImageResponseFormat `json:"response_format"`
	User                    *string             `json:"user,omitempty"`
	CfgScale                float32             `json:"cfg_scale"`
	SampleMethod            SamplingMethod      `json:"sample_method"`
	Steps                   int                 `json:"steps"`
	Height                  int                 `json:"height"`
	Width                   int                 `json:"width"`
	ControlStrength         float32             `json:"control_strength"`
	ControlImage            *FileObject         `json:"control_image,omitempty"`
	Seed                    int32               `json:"seed"`
	Strength                float32             `json:"strength"`
	Scheduler               Scheduler           `json:"scheduler"`
	ApplyCannyPreprocessor  bool                `json:"apply_canny_preprocessor"`
	StyleRatio              float32             `json:"style_ratio"`
}

// ListImagesResponse is the response from the image generation and edit
// endpoints.
type ListImagesResponse struct {
	Created int64         `json:"created"`
	Data    []ImageObject `json:"data"`
}

// ImageObject is one generated image, returned either as a URL or as
// base64-encoded data depending on the requested response format.
type ImageObject struct {
	B64JSON *string `json:"b64_json,omitempty"`
	URL     *string `json:"url,omitempty"`
	Prompt  *string `json:"prompt,omitempty"`
}

package imagegen

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"coloring-api/internal/pkg/config"
	"coloring-api/internal/pkg/errs"
	"coloring-api/internal/usecase"

	"google.golang.org/genai"
)

const basePrompt = `Create a coloring page illustration.

Requirements:
- Black line art on pure white background
- Clean, bold outlines (like a coloring book)
- No filled areas, shading, or gradients
- Clear, distinct shapes that are easy to color inside the lines

Style: Traditional coloring book line drawing`

const editBasePrompt = `Edit this coloring page illustration based on the instruction below.

Requirements:
- Keep it as black line art on pure white background
- Maintain clean, bold outlines (like a coloring book)
- No filled areas, shading, or gradients
- Ensure clear, distinct shapes that are easy to color inside the lines

Style: Traditional coloring book line drawing

Edit instruction:`

const kidFriendlyAdditions = `
- Child-friendly and age-appropriate content
- Simple shapes suitable for young children
- Medium level of detail - not too intricate`

var (
	ErrNoImage                = errs.New("no image data in response")
	ErrUpstreamRejected       = errs.New("image generation request rejected")
	ErrGeneratorNotConfigured = errs.New("gemini api key not configured")
)

var aspectRatios = map[usecase.ImageFormat]string{
	usecase.FormatPortrait:  "3:4",
	usecase.FormatLandscape: "4:3",
}

type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient leaves the client unconfigured when no API key is set; Generate then
// fails with ErrGeneratorNotConfigured. Deadlines come from the caller's context.
func NewGeminiClient(ctx context.Context, cfg config.ImageGenConfig, httpClient *http.Client) (*GeminiClient, error) {
	if cfg.APIKey == "" {
		return &GeminiClient{model: cfg.Model}, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to create gemini client")
	}
	return &GeminiClient{client: client, model: cfg.Model}, nil
}

func (c *GeminiClient) Generate(ctx context.Context, req usecase.ImageRequest) (*usecase.GeneratedImage, error) {
	if c.client == nil {
		return nil, ErrGeneratorNotConfigured
	}

	parts, err := buildParts(req)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)},
		generationConfig(req.Format))
	if err != nil {
		var apiErr genai.APIError
		if errors.As(err, &apiErr) {
			return nil, errs.Mark(errs.Wrap(err, "gemini rejected the request"), ErrUpstreamRejected)
		}
		return nil, errs.Wrap(err, "generation request failed")
	}

	if resp.PromptFeedback != nil && resp.PromptFeedback.BlockReason != "" {
		return nil, errs.Mark(errs.New("prompt blocked: "+string(resp.PromptFeedback.BlockReason)), ErrUpstreamRejected)
	}
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, p := range cand.Content.Parts {
			if p == nil || p.InlineData == nil || len(p.InlineData.Data) == 0 {
				continue
			}
			mime := p.InlineData.MIMEType
			if mime == "" {
				mime = "image/png"
			}
			return &usecase.GeneratedImage{
				MimeType: mime,
				Data:     base64.StdEncoding.EncodeToString(p.InlineData.Data),
			}, nil
		}
	}
	return nil, ErrNoImage
}

func generationConfig(format usecase.ImageFormat) *genai.GenerateContentConfig {
	ratio, ok := aspectRatios[format]
	if !ok {
		ratio = aspectRatios[usecase.FormatPortrait]
	}
	return &genai.GenerateContentConfig{
		ResponseModalities: []string{"TEXT", "IMAGE"},
		ImageConfig:        &genai.ImageConfig{AspectRatio: ratio},
	}
}

func buildParts(req usecase.ImageRequest) ([]*genai.Part, error) {
	if !req.EditMode {
		prompt := basePrompt
		if req.KidFriendly {
			prompt += kidFriendlyAdditions
		}
		return []*genai.Part{genai.NewPartFromText(prompt + "\n\nSubject: " + req.Prompt)}, nil
	}

	prompt := editBasePrompt + " " + req.Prompt
	if req.KidFriendly {
		prompt += kidFriendlyAdditions
	}
	mime, data := splitDataURL(req.SourceImageData)
	raw, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, errs.Wrap(err, "source image is not valid base64")
	}
	return []*genai.Part{
		genai.NewPartFromText(prompt),
		genai.NewPartFromBytes(raw, mime),
	}, nil
}

// splitDataURL accepts either bare base64 or a data:<mime>;base64,<payload> URL.
func splitDataURL(s string) (string, string) {
	const mime = "image/png"
	if !strings.HasPrefix(s, "data:") {
		return mime, s
	}
	header, payload, found := strings.Cut(s, ",")
	if !found {
		return mime, s
	}
	header = strings.TrimPrefix(header, "data:")
	header = strings.TrimSuffix(header, ";base64")
	if header == "" {
		return mime, payload
	}
	return header, payload
}

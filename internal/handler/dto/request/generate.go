package request

import (
	"coloring-api/internal/pkg/patch"
	"coloring-api/internal/usecase"
)

type GenerateRequest struct {
	Prompt          string   `json:"prompt" binding:"required"`
	Codes           []string `json:"codes" binding:"omitempty,max=50"`
	KidFriendly     *bool    `json:"kidFriendly,omitempty"`
	Format          string   `json:"format,omitempty"`
	EditMode        bool     `json:"editMode,omitempty"`
	SourceImageData string   `json:"sourceImageData,omitempty"`
	SourcePrompt    string   `json:"sourcePrompt,omitempty" binding:"omitempty,max=2000"`
}

func (r GenerateRequest) ToUseCase(fingerprint string) usecase.GenerateRequest {
	return usecase.GenerateRequest{
		Fingerprint:     fingerprint,
		Codes:           r.Codes,
		Prompt:          r.Prompt,
		KidFriendly:     patch.Coalesce(r.KidFriendly, false),
		Format:          usecase.ParseImageFormat(r.Format),
		EditMode:        r.EditMode,
		SourceImageData: r.SourceImageData,
		SourcePrompt:    r.SourcePrompt,
	}
}

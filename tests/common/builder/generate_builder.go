//go:build unit || e2e

package builder

import (
	reqdto "coloring-api/internal/handler/dto/request"
)

type GenerateBuilder struct {
	Prompt          string
	Codes           []string
	KidFriendly     *bool
	Format          string
	EditMode        bool
	SourceImageData string
	SourcePrompt    string
}

func NewGenerateBuilder() *GenerateBuilder {
	kid := true
	return &GenerateBuilder{
		Prompt:      "a friendly dragon reading a book",
		Codes:       []string{},
		KidFriendly: &kid,
		Format:      "portrait",
	}
}

func (b *GenerateBuilder) With(mutate func(*GenerateBuilder)) *GenerateBuilder {
	mutate(b)
	return b
}

func (b *GenerateBuilder) WithCodes(codes ...string) *GenerateBuilder {
	b.Codes = codes
	return b
}

func (b *GenerateBuilder) AsEdit(sourcePrompt, sourceImage string) *GenerateBuilder {
	b.EditMode = true
	b.SourcePrompt = sourcePrompt
	b.SourceImageData = sourceImage
	return b
}

func (b *GenerateBuilder) BuildDTO() reqdto.GenerateRequest {
	return reqdto.GenerateRequest{
		Prompt:          b.Prompt,
		Codes:           b.Codes,
		KidFriendly:     b.KidFriendly,
		Format:          b.Format,
		EditMode:        b.EditMode,
		SourceImageData: b.SourceImageData,
		SourcePrompt:    b.SourcePrompt,
	}
}

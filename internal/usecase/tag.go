package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/ligue-crm/internal/entity"
)

type TagUseCase struct {
	Tags entity.TagRepository
}

func NewTagUseCase(tags entity.TagRepository) *TagUseCase {
	return &TagUseCase{Tags: tags}
}

func (uc *TagUseCase) Create(ctx context.Context, input CreateTagInput) (*entity.Tag, error) {
	if errs := ValidateCreateTagInput(input); len(errs) > 0 {
		return nil, errs
	}

	tag := entity.NewTag(strings.TrimSpace(input.Name))
	if err := uc.Tags.Create(ctx, tag); err != nil {
		return nil, err
	}

	return tag, nil
}

func (uc *TagUseCase) List(ctx context.Context) ([]*entity.Tag, error) {
	return uc.Tags.FindAll(ctx)
}

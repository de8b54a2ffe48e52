package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/xavierca1/ligue-crm/internal/entity"
	"github.com/xavierca1/ligue-crm/internal/usecase"
)

func TestCreateTagTrimsName(t *testing.T) {
	ctx := context.Background()
	tagRepo := new(MockTagRepository)
	uc := usecase.NewTagUseCase(tagRepo)

	tagRepo.On("Create", ctx, mock.MatchedBy(func(tag *entity.Tag) bool {
		return tag.Name == "vip" && tag.ID != ""
	})).Return(nil)

	tag, err := uc.Create(ctx, usecase.CreateTagInput{Name: "  vip  "})

	assert.NoError(t, err)
	assert.Equal(t, "vip", tag.Name)
}

func TestCreateTagDuplicateName(t *testing.T) {
	ctx := context.Background()
	tagRepo := new(MockTagRepository)
	uc := usecase.NewTagUseCase(tagRepo)

	tagRepo.On("Create", ctx, mock.Anything).Return(entity.ErrTagAlreadyExists)

	_, err := uc.Create(ctx, usecase.CreateTagInput{Name: "vip"})
	assert.ErrorIs(t, err, entity.ErrTagAlreadyExists)
}

func TestCreateTagEmptyName(t *testing.T) {
	ctx := context.Background()
	tagRepo := new(MockTagRepository)
	uc := usecase.NewTagUseCase(tagRepo)

	_, err := uc.Create(ctx, usecase.CreateTagInput{Name: "  "})

	var validationErrs usecase.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
	tagRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

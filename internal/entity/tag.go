package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrTagAlreadyExists = errors.New("a tag with this name already exists")

type Tag struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type TagRepository interface {
	Create(ctx context.Context, tag *Tag) error
	FindAll(ctx context.Context) ([]*Tag, error)
	// EnsureAll registra os nomes que ainda não existem (upsert)
	EnsureAll(ctx context.Context, names []string) error
}

func NewTag(name string) *Tag {
	return &Tag{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

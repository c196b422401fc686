package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"boardCPT/internal/models"
)

type PostRepository interface {
	List(ctx context.Context) ([]models.Post, error)
	GetByID(ctx context.Context, postID int64) (*models.Post, error)
	Insert(ctx context.Context, title, content string) (int64, error)
	UpdateByID(ctx context.Context, postID int64, title, content string) error
	DeleteByID(ctx context.Context, postID int64) error
}

type Repository struct {
	Post PostRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Post: NewPostRepository(db),
	}
}

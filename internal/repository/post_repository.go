package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"boardCPT/internal/models"
)

// ErrPostNotFound - запрошенный пост не существует, это не инфраструктурная ошибка
var ErrPostNotFound = errors.New("пост не найден")

type PostRepositoryImpl struct {
	DB *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) *PostRepositoryImpl {
	return &PostRepositoryImpl{DB: db}
}

func (r *PostRepositoryImpl) List(ctx context.Context) ([]models.Post, error) {
	query := `
        SELECT id, title, content, created_at FROM posts
        ORDER BY created_at DESC
    `

	posts := []models.Post{}
	err := r.DB.SelectContext(ctx, &posts, query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении списка постов: %w", err)
	}

	// пустая таблица - это пустой список, а не ошибка
	return posts, nil
}

func (r *PostRepositoryImpl) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	query := `
        SELECT id, title, content, created_at FROM posts
        WHERE id = $1
    `

	var post models.Post
	err := r.DB.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPostNotFound
		}
		return nil, fmt.Errorf("ошибка при получении поста: %w", err)
	}

	return &post, nil
}

func (r *PostRepositoryImpl) Insert(ctx context.Context, title, content string) (int64, error) {
	// created_at выставляется колонкой по умолчанию
	query := `
        INSERT INTO posts (title, content)
        VALUES ($1, $2)
        RETURNING id
    `

	var postID int64
	err := r.DB.GetContext(ctx, &postID, query, title, content)
	if err != nil {
		return 0, fmt.Errorf("ошибка при создании поста: %w", err)
	}

	return postID, nil
}

func (r *PostRepositoryImpl) UpdateByID(ctx context.Context, postID int64, title, content string) error {
	// id и created_at никогда не перезаписываются
	query := `
        UPDATE posts SET title = $1, content = $2
        WHERE id = $3
    `

	result, err := r.DB.ExecContext(ctx, query, title, content, postID)
	if err != nil {
		return fmt.Errorf("ошибка при обновлении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке обновленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

func (r *PostRepositoryImpl) DeleteByID(ctx context.Context, postID int64) error {
	query := `DELETE FROM posts WHERE id = $1`

	result, err := r.DB.ExecContext(ctx, query, postID)
	if err != nil {
		return fmt.Errorf("ошибка при удалении поста: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("ошибка при проверке удаленных строк: %w", err)
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

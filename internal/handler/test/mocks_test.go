package test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"boardCPT/internal/models"
	"boardCPT/internal/repository"
)

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) List(ctx context.Context) ([]models.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) Insert(ctx context.Context, title, content string) (int64, error) {
	args := m.Called(ctx, title, content)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockPostRepository) UpdateByID(ctx context.Context, postID int64, title, content string) error {
	args := m.Called(ctx, postID, title, content)
	return args.Error(0)
}

func (m *MockPostRepository) DeleteByID(ctx context.Context, postID int64) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

// fakePostRepository - репозиторий в памяти для сквозного сценария
type fakePostRepository struct {
	mu     sync.Mutex
	nextID int64
	posts  map[int64]models.Post
}

func newFakePostRepository() *fakePostRepository {
	return &fakePostRepository{nextID: 1, posts: map[int64]models.Post{}}
}

func (f *fakePostRepository) List(ctx context.Context) ([]models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	posts := []models.Post{}
	for _, p := range f.posts {
		posts = append(posts, p)
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].CreatedAt.After(posts[j].CreatedAt)
	})
	return posts, nil
}

func (f *fakePostRepository) GetByID(ctx context.Context, postID int64) (*models.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[postID]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	return &post, nil
}

func (f *fakePostRepository) Insert(ctx context.Context, title, content string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	postID := f.nextID
	f.nextID++ // id не переиспользуются после удаления
	f.posts[postID] = models.Post{
		ID:        postID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
	}
	return postID, nil
}

func (f *fakePostRepository) UpdateByID(ctx context.Context, postID int64, title, content string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	post, ok := f.posts[postID]
	if !ok {
		return repository.ErrPostNotFound
	}
	post.Title = title
	post.Content = content
	f.posts[postID] = post
	return nil
}

func (f *fakePostRepository) DeleteByID(ctx context.Context, postID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.posts[postID]; !ok {
		return repository.ErrPostNotFound
	}
	delete(f.posts, postID)
	return nil
}

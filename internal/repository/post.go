// Package repository provides data access layer implementations for the
// application. Collections are persisted as whole JSON blobs: every mutation
// re-reads the full collection, applies the change, and re-serializes it.
package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"

	"postdeck/internal/blob"
	"postdeck/internal/models"
	"postdeck/internal/observability"
)

// PostsKey is the fixed blob key the post collection lives under.
const PostsKey = "social-scheduler-posts"

// PostRepository defines the interface for post data operations.
type PostRepository interface {
	List(ctx context.Context) ([]*models.Post, error)
	GetByID(ctx context.Context, id string) (*models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id string) error
}

// postRepository implements PostRepository over a blob.Store.
type postRepository struct {
	mu       sync.Mutex
	store    blob.Store
	fallback func() []*models.Post
}

// NewPostRepository creates a post repository on top of the given blob
// store. fallback supplies the seed collection returned when the blob is
// missing or the backend is unavailable; it may be nil.
func NewPostRepository(store blob.Store, fallback func() []*models.Post) PostRepository {
	return &postRepository{store: store, fallback: fallback}
}

// load reads the full collection. A missing blob or an unavailable backend
// resolves to the seed set rather than an error; reads never fail.
func (r *postRepository) load(ctx context.Context) []*models.Post {
	data, err := r.store.Get(ctx, PostsKey)
	if err != nil {
		if err != blob.ErrNotFound {
			slog.WarnContext(ctx, "post blob unavailable, serving seed data", "error", err)
		}
		observability.SeedFallbacks.WithLabelValues("posts").Inc()
		return r.seed()
	}
	var posts []*models.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		slog.WarnContext(ctx, "post blob corrupt, serving seed data", "error", err)
		return r.seed()
	}
	return posts
}

func (r *postRepository) seed() []*models.Post {
	if r.fallback == nil {
		return nil
	}
	return r.fallback()
}

func (r *postRepository) save(ctx context.Context, posts []*models.Post) error {
	data, err := json.Marshal(posts)
	if err != nil {
		return fmt.Errorf("marshal posts: %w", err)
	}
	if err := r.store.Set(ctx, PostsKey, data); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *postRepository) List(ctx context.Context) ([]*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx), nil
}

func (r *postRepository) GetByID(ctx context.Context, id string) (*models.Post, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.load(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.NewNotFoundError("Post", id)
}

// Create prepends the post so the collection stays most-recently-created
// first.
func (r *postRepository) Create(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := append([]*models.Post{post}, r.load(ctx)...)
	return r.save(ctx, posts)
}

func (r *postRepository) Update(ctx context.Context, post *models.Post) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := r.load(ctx)
	for i, p := range posts {
		if p.ID == post.ID {
			posts[i] = post
			return r.save(ctx, posts)
		}
	}
	return models.NewNotFoundError("Post", post.ID)
}

func (r *postRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	posts := r.load(ctx)
	for i, p := range posts {
		if p.ID == id {
			posts = append(posts[:i], posts[i+1:]...)
			return r.save(ctx, posts)
		}
	}
	// The collection is left untouched; unknown ids surface as NOT_FOUND.
	return models.NewNotFoundError("Post", id)
}

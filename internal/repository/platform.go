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

// PlatformsKey is the fixed blob key the platform collection lives under.
const PlatformsKey = "social-scheduler-platforms"

// PlatformRepository defines the interface for platform registry operations.
type PlatformRepository interface {
	List(ctx context.Context) ([]*models.Platform, error)
	GetByID(ctx context.Context, id string) (*models.Platform, error)
	ToggleConnection(ctx context.Context, id string) (*models.Platform, error)
}

type platformRepository struct {
	mu       sync.Mutex
	store    blob.Store
	registry func() []*models.Platform
}

// NewPlatformRepository creates a platform repository. registry supplies the
// seed registry in fixed order; it is used both before any blob exists and
// when the backend is unavailable.
func NewPlatformRepository(store blob.Store, registry func() []*models.Platform) PlatformRepository {
	return &platformRepository{store: store, registry: registry}
}

func (r *platformRepository) load(ctx context.Context) []*models.Platform {
	data, err := r.store.Get(ctx, PlatformsKey)
	if err != nil {
		if err != blob.ErrNotFound {
			slog.WarnContext(ctx, "platform blob unavailable, serving registry", "error", err)
		}
		observability.SeedFallbacks.WithLabelValues("platforms").Inc()
		return r.registry()
	}
	var platforms []*models.Platform
	if err := json.Unmarshal(data, &platforms); err != nil {
		slog.WarnContext(ctx, "platform blob corrupt, serving registry", "error", err)
		return r.registry()
	}
	return platforms
}

func (r *platformRepository) save(ctx context.Context, platforms []*models.Platform) error {
	data, err := json.Marshal(platforms)
	if err != nil {
		return fmt.Errorf("marshal platforms: %w", err)
	}
	if err := r.store.Set(ctx, PlatformsKey, data); err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *platformRepository) List(ctx context.Context) ([]*models.Platform, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load(ctx), nil
}

func (r *platformRepository) GetByID(ctx context.Context, id string) (*models.Platform, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.load(ctx) {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, models.NewNotFoundError("Platform", id)
}

// ToggleConnection flips the connected flag for the matching platform and
// persists the whole registry. Unknown ids surface as NOT_FOUND.
func (r *platformRepository) ToggleConnection(ctx context.Context, id string) (*models.Platform, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	platforms := r.load(ctx)
	for _, p := range platforms {
		if p.ID == id {
			p.Connected = !p.Connected
			if err := r.save(ctx, platforms); err != nil {
				return nil, err
			}
			return p, nil
		}
	}
	return nil, models.NewNotFoundError("Platform", id)
}

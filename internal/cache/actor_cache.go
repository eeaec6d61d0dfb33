package cache

import (
	"context"
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/logibee/backoffice/internal/audit"
	"github.com/logibee/backoffice/internal/repository"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*repository.User, error)
}

// ActorCache keeps user display data (name, email, access level) in memory
// for history enrichment, loading lazily from the users table.
type ActorCache struct {
	mu    sync.RWMutex
	cache map[string]audit.Actor
	repo  UserRepository
}

func NewActorCache(repo UserRepository) *ActorCache {
	return &ActorCache{
		cache: make(map[string]audit.Actor),
		repo:  repo,
	}
}

// DisplayData returns display data for an actor id. Unknown and removed
// accounts report false; the denormalized copy on the record stays
// authoritative then.
func (c *ActorCache) DisplayData(ctx context.Context, actorID string) (audit.Actor, bool) {
	c.mu.RLock()
	actor, found := c.cache[actorID]
	c.mu.RUnlock()
	if found {
		return actor, true
	}

	user, err := c.repo.GetByID(ctx, actorID)
	if err != nil {
		if !errors.Is(err, repository.ErrObjectNotFound) {
			zap.L().Warn("failed to load actor display data", zap.String("actor_id", actorID), zap.Error(err))
		}
		return audit.Actor{}, false
	}

	actor = audit.Actor{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		AccessLevel: user.AccessLevel,
		Role:        user.Role,
	}

	c.mu.Lock()
	c.cache[actorID] = actor
	c.mu.Unlock()
	return actor, true
}

// Invalidate drops a cached actor, e.g. after the account was updated.
func (c *ActorCache) Invalidate(actorID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.cache, actorID)
}

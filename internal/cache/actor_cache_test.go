package cache

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/logibee/backoffice/internal/repository"
)

type stubUserRepo struct {
	users map[string]*repository.User
	calls int
	err   error
}

func (s *stubUserRepo) GetByID(_ context.Context, id string) (*repository.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrObjectNotFound
	}
	return user, nil
}

func TestActorCache_DisplayData(t *testing.T) {
	ctx := context.Background()

	t.Run("loads once then serves from cache", func(t *testing.T) {
		repo := &stubUserRepo{users: map[string]*repository.User{
			"usr-1": {ID: "usr-1", Name: "김철수", Email: "kim@logibee.io", AccessLevel: "manager"},
		}}
		c := NewActorCache(repo)

		actor, ok := c.DisplayData(ctx, "usr-1")
		require.True(t, ok)
		assert.Equal(t, "김철수", actor.Name)

		_, ok = c.DisplayData(ctx, "usr-1")
		require.True(t, ok)
		assert.Equal(t, 1, repo.calls)
	})

	t.Run("unknown account reports false", func(t *testing.T) {
		repo := &stubUserRepo{users: map[string]*repository.User{}}
		c := NewActorCache(repo)

		_, ok := c.DisplayData(ctx, "usr-gone")
		assert.False(t, ok)
	})

	t.Run("repo error reports false without caching", func(t *testing.T) {
		repo := &stubUserRepo{err: errors.New("database error")}
		c := NewActorCache(repo)

		_, ok := c.DisplayData(ctx, "usr-1")
		assert.False(t, ok)

		_, ok = c.DisplayData(ctx, "usr-1")
		assert.False(t, ok)
		assert.Equal(t, 2, repo.calls)
	})

	t.Run("invalidate forces reload", func(t *testing.T) {
		repo := &stubUserRepo{users: map[string]*repository.User{
			"usr-1": {ID: "usr-1", Name: "김철수"},
		}}
		c := NewActorCache(repo)

		_, ok := c.DisplayData(ctx, "usr-1")
		require.True(t, ok)

		repo.users["usr-1"].Name = "김영희"
		c.Invalidate("usr-1")

		actor, ok := c.DisplayData(ctx, "usr-1")
		require.True(t, ok)
		assert.Equal(t, "김영희", actor.Name)
		assert.Equal(t, 2, repo.calls)
	})
}

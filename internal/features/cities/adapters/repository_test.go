package adapters

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"freight-cost/internal/core/cache"
	"freight-cost/internal/features/cities/domain"
	"freight-cost/internal/features/cities/ports"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *domain.Catalog {
	t.Helper()
	catalog, err := domain.NewCatalog([]domain.City{
		{ID: 1, Name: "Delhi", Latitude: 28.7041, Longitude: 77.1025, Population: 11034555},
		{ID: 2, Name: "Mumbai", Latitude: 19.0760, Longitude: 72.8777, Population: 12442373},
	})
	require.NoError(t, err)
	return catalog
}

func newRedisRepo(t *testing.T) *RedisCityRepository {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := cache.NewRedisAdapter("redis://"+mr.Addr(), "test:")
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return NewRedisCityRepository(c)
}

func newSQLiteRepo(t *testing.T) *SQLiteCityRepository {
	t.Helper()
	repo, err := OpenSQLiteCityRepository(context.Background(), filepath.Join(t.TempDir(), "cities.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

// TestRepositories exercises both backends against the same contract.
func TestRepositories(t *testing.T) {
	backends := map[string]func(t *testing.T) ports.CityRepository{
		"Redis":  func(t *testing.T) ports.CityRepository { return newRedisRepo(t) },
		"SQLite": func(t *testing.T) ports.CityRepository { return newSQLiteRepo(t) },
	}

	for name, factory := range backends {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()

			t.Run("EmptyLoad", func(t *testing.T) {
				repo := factory(t)
				catalog, err := repo.Load(ctx)
				require.NoError(t, err)
				assert.Equal(t, 0, catalog.Len())
			})

			t.Run("RoundTrip", func(t *testing.T) {
				repo := factory(t)
				want := testCatalog(t)

				require.NoError(t, repo.Replace(ctx, want))

				got, err := repo.Load(ctx)
				require.NoError(t, err)
				assert.Equal(t, want.Cities, got.Cities)
				assert.Equal(t, want.Fingerprint(), got.Fingerprint())
			})

			t.Run("ReplaceDropsOldRows", func(t *testing.T) {
				repo := factory(t)
				require.NoError(t, repo.Replace(ctx, testCatalog(t)))

				smaller, err := domain.NewCatalog([]domain.City{{ID: 9, Name: "Pune", Latitude: 18.5204, Longitude: 73.8567, Population: 3124458}})
				require.NoError(t, err)
				require.NoError(t, repo.Replace(ctx, smaller))

				got, err := repo.Load(ctx)
				require.NoError(t, err)
				require.Equal(t, 1, got.Len())
				assert.Equal(t, 9, got.Cities[0].ID)
			})
		})
	}
}

// failingCache always fails, to check error wrapping in the Redis repository.
type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("connection refused")
}
func (failingCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.New("connection refused")
}
func (failingCache) Delete(ctx context.Context, key string) error        { return nil }
func (failingCache) Exists(ctx context.Context, key string) (bool, error) { return false, nil }
func (failingCache) Ping(ctx context.Context) error                       { return nil }
func (failingCache) Close() error                                         { return nil }

func TestRedisCityRepository_CacheErrors(t *testing.T) {
	repo := NewRedisCityRepository(failingCache{})
	ctx := context.Background()

	_, err := repo.Load(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to get catalog from cache")

	err = repo.Replace(ctx, testCatalog(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save catalog to cache")
}

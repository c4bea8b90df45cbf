package memory

import (
	"context"

	"github.com/patrickmn/go-cache"

	"github.com/jubyaid123/hemovita/internal/model"
)

const latestKey = "snapshot:latest"

// SnapshotRepository is the in-process snapshot store, used when no Redis is
// configured. Snapshots do not expire; a new one simply replaces the latest.
type SnapshotRepository struct {
	cache *cache.Cache
}

func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{
		cache: cache.New(cache.NoExpiration, 0),
	}
}

func (r *SnapshotRepository) Save(_ context.Context, snapshot *model.RecommendationSnapshot) error {
	r.cache.Set(latestKey, snapshot, cache.NoExpiration)
	r.cache.Set("snapshot:"+snapshot.ID, snapshot, cache.NoExpiration)
	return nil
}

func (r *SnapshotRepository) Latest(_ context.Context) (*model.RecommendationSnapshot, error) {
	if x, found := r.cache.Get(latestKey); found {
		return x.(*model.RecommendationSnapshot), nil
	}
	return nil, nil
}

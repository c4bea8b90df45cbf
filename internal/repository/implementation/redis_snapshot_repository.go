package implementation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/jubyaid123/hemovita/internal/model"
)

const latestKey = "hemovita:snapshot:latest"

// SnapshotRepository persists snapshots in Redis so they survive process
// restarts. Only the latest snapshot is kept.
type SnapshotRepository struct {
	client *redis.Client
}

func NewSnapshotRepository(client *redis.Client) *SnapshotRepository {
	return &SnapshotRepository{client: client}
}

func (r *SnapshotRepository) Save(ctx context.Context, snapshot *model.RecommendationSnapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	if err := r.client.Set(ctx, latestKey, raw, 0).Err(); err != nil {
		return fmt.Errorf("store snapshot: %w", err)
	}
	return nil
}

func (r *SnapshotRepository) Latest(ctx context.Context) (*model.RecommendationSnapshot, error) {
	raw, err := r.client.Get(ctx, latestKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load snapshot: %w", err)
	}

	var snapshot model.RecommendationSnapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &snapshot, nil
}

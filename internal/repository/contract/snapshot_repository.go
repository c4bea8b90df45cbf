package contract

import (
	"context"

	"github.com/jubyaid123/hemovita/internal/model"
)

// ISnapshotRepository stores recommendation snapshots for later
// cross-referencing with the interaction graph. The storage mechanism is an
// implementation detail; only the latest snapshot is required to be
// retrievable. Latest returns (nil, nil) when nothing has been stored.
type ISnapshotRepository interface {
	Save(ctx context.Context, snapshot *model.RecommendationSnapshot) error
	Latest(ctx context.Context) (*model.RecommendationSnapshot, error)
}

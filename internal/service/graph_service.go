package service

import (
	"context"
	"crypto/md5"
	"encoding/hex"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"

	"github.com/jubyaid123/hemovita/internal/dto"
	"github.com/jubyaid123/hemovita/internal/mapper"
	"github.com/jubyaid123/hemovita/internal/model"
	"github.com/jubyaid123/hemovita/internal/pkg/logger"
	"github.com/jubyaid123/hemovita/internal/repository/contract"
	"github.com/jubyaid123/hemovita/pkg/graph"
)

type IGraphService interface {
	GetGraph(ctx context.Context) (*dto.GetGraphResponse, error)
	Highlight(ctx context.Context, req *dto.HighlightRequest) (*dto.HighlightResponse, error)
	SaveSnapshot(ctx context.Context, req *dto.SaveSnapshotRequest) (*dto.SnapshotResponse, error)
	LatestSnapshot(ctx context.Context) (*dto.SnapshotResponse, error)

	// LoadNetwork exposes the cached parse+build result to sibling services
	// (the report service derives interaction rules and path chains from it).
	LoadNetwork(ctx context.Context) (*NetworkData, error)
}

// NetworkData is one cached parse+build result. Treated as immutable once
// stored; concurrent requests share it read-only.
type NetworkData struct {
	Records []model.EdgeRecord
	Graph   model.Graph
}

type graphService struct {
	relationshipsPath string
	cacheTTL          time.Duration
	builder           *graph.Builder
	cache             *cache.Cache
	snapshots         contract.ISnapshotRepository
	logger            logger.ILogger
}

func NewGraphService(
	relationshipsPath string,
	cacheTTL time.Duration,
	builder *graph.Builder,
	snapshots contract.ISnapshotRepository,
	log logger.ILogger,
) IGraphService {
	return &graphService{
		relationshipsPath: relationshipsPath,
		cacheTTL:          cacheTTL,
		builder:           builder,
		cache:             cache.New(cacheTTL, 2*cacheTTL),
		snapshots:         snapshots,
		logger:            log,
	}
}

// LoadNetwork reads the relationship table and returns the built graph,
// reusing the cached build when the file content is unchanged. The cache key
// is a content hash, so edits to the table invalidate naturally.
func (s *graphService) LoadNetwork(ctx context.Context) (*NetworkData, error) {
	raw, err := os.ReadFile(s.relationshipsPath)
	if err != nil {
		s.logger.Error("graph", "relationship table unreadable", map[string]interface{}{
			"path":  s.relationshipsPath,
			"error": err.Error(),
		})
		return nil, graph.ErrSourceMissing
	}

	sum := md5.Sum(raw)
	key := "graph:" + hex.EncodeToString(sum[:])
	if cached, found := s.cache.Get(key); found {
		return cached.(*NetworkData), nil
	}

	parsed := graph.ParseRelationships(raw)
	for _, skipped := range parsed.Skipped {
		s.logger.Warn("graph", "skipping malformed relationship row", map[string]interface{}{
			"line":   skipped.Line,
			"fields": skipped.Fields,
			"raw":    skipped.Raw,
		})
	}
	if len(parsed.Records) == 0 {
		s.logger.Error("graph", "relationship table has no data rows", map[string]interface{}{
			"path": s.relationshipsPath,
		})
		return nil, graph.ErrSourceEmpty
	}

	data := &NetworkData{
		Records: parsed.Records,
		Graph:   s.builder.Build(parsed.Records),
	}
	s.cache.Set(key, data, s.cacheTTL)

	s.logger.Info("graph", "interaction graph rebuilt", map[string]interface{}{
		"nodes":   len(data.Graph.Nodes),
		"edges":   len(data.Graph.Edges),
		"skipped": len(parsed.Skipped),
	})
	return data, nil
}

func (s *graphService) GetGraph(ctx context.Context) (*dto.GetGraphResponse, error) {
	data, err := s.LoadNetwork(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToGraphResponse(data.Graph), nil
}

func (s *graphService) Highlight(ctx context.Context, req *dto.HighlightRequest) (*dto.HighlightResponse, error) {
	data, err := s.LoadNetwork(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(req.Deficiencies)+len(req.HighRisk))
	names = append(names, req.Deficiencies...)
	names = append(names, req.HighRisk...)

	// Empty request falls back to the latest stored snapshot.
	if len(names) == 0 {
		snapshot, err := s.snapshots.Latest(ctx)
		if err != nil {
			return nil, err
		}
		return &dto.HighlightResponse{
			NodeIds: graph.HighlightSnapshot(snapshot, data.Graph.Nodes),
		}, nil
	}

	return &dto.HighlightResponse{
		NodeIds: graph.Highlight(names, data.Graph.Nodes),
	}, nil
}

func (s *graphService) SaveSnapshot(ctx context.Context, req *dto.SaveSnapshotRequest) (*dto.SnapshotResponse, error) {
	createdAt := req.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().UnixMilli()
	}

	snapshot := &model.RecommendationSnapshot{
		ID:           uuid.NewString(),
		Deficiencies: emptyIfNil(req.Deficiencies),
		HighRisk:     emptyIfNil(req.HighRisk),
		NetworkNotes: emptyIfNil(req.NetworkNotes),
		CreatedAt:    createdAt,
	}
	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		return nil, err
	}

	s.logger.Info("graph", "recommendation snapshot stored", map[string]interface{}{
		"id":           snapshot.ID,
		"deficiencies": len(snapshot.Deficiencies),
		"high_risk":    len(snapshot.HighRisk),
	})
	return mapper.ToSnapshotResponse(snapshot), nil
}

func (s *graphService) LatestSnapshot(ctx context.Context) (*dto.SnapshotResponse, error) {
	snapshot, err := s.snapshots.Latest(ctx)
	if err != nil {
		return nil, err
	}
	return mapper.ToSnapshotResponse(snapshot), nil
}

func emptyIfNil(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}

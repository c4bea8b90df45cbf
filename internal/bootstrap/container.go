package bootstrap

import (
	"context"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jubyaid123/hemovita/internal/config"
	"github.com/jubyaid123/hemovita/internal/controller"
	"github.com/jubyaid123/hemovita/internal/pkg/logger"
	"github.com/jubyaid123/hemovita/internal/repository/contract"
	"github.com/jubyaid123/hemovita/internal/repository/implementation"
	"github.com/jubyaid123/hemovita/internal/repository/memory"
	"github.com/jubyaid123/hemovita/internal/service"
	"github.com/jubyaid123/hemovita/pkg/classifier"
	"github.com/jubyaid123/hemovita/pkg/foods"
	"github.com/jubyaid123/hemovita/pkg/graph"
	"github.com/jubyaid123/hemovita/pkg/reference"
	"github.com/jubyaid123/hemovita/pkg/report"
	"github.com/jubyaid123/hemovita/pkg/schedule"
)

type Container struct {
	ReportController  controller.IReportController
	NetworkController controller.INetworkController

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Reference cutoffs are the one hard requirement: without them no marker
	// can be classified, so a load failure is fatal.
	table, err := reference.LoadCutoffs(cfg.Data.CutoffsPath, reference.DefaultMarkerSpecs())
	if err != nil {
		log.Fatalf("[FATAL] Failed to load reference cutoffs from %s: %v", cfg.Data.CutoffsPath, err)
	}
	log.Printf("[INFO] Loaded reference ranges for %d markers", table.Len())

	cls := classifier.New(table)
	scheduleBuilder := schedule.NewBuilder(schedule.DefaultConfig())
	graphBuilder := graph.NewBuilder(graph.DefaultRules())
	generator := report.NewGenerator(report.DefaultHumanLabels())

	// Food table is optional; reports degrade to no food suggestions.
	var suggester *foods.Suggester
	if items, err := foods.Load(cfg.Data.FoodsPath); err != nil {
		log.Printf("[WARN] Food table unavailable (%v), reports will skip food suggestions", err)
	} else {
		suggester = foods.NewSuggester(items, foods.DefaultBundleMap())
		log.Printf("[INFO] Loaded %d food items", len(items))
	}

	snapshots := newSnapshotRepository(cfg)

	graphService := service.NewGraphService(
		cfg.Data.RelationshipsPath,
		time.Duration(cfg.Data.GraphCacheTTLSecs)*time.Second,
		graphBuilder,
		snapshots,
		sysLogger,
	)
	reportService := service.NewReportService(
		cls,
		scheduleBuilder,
		graphService,
		suggester,
		generator,
		snapshots,
		sysLogger,
	)

	return &Container{
		ReportController:  controller.NewReportController(reportService),
		NetworkController: controller.NewNetworkController(graphService),
		Logger:            sysLogger,
	}
}

// newSnapshotRepository prefers Redis when configured and reachable, and
// falls back to the in-memory store otherwise. Snapshots are convenience
// state, so an unreachable Redis degrades instead of failing startup.
func newSnapshotRepository(cfg *config.Config) contract.ISnapshotRepository {
	if cfg.App.RedisURL == "" {
		log.Printf("[INFO] REDIS_URL not set, using in-memory snapshot store")
		return memory.NewSnapshotRepository()
	}

	opts, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Invalid REDIS_URL (%v), using in-memory snapshot store", err)
		return memory.NewSnapshotRepository()
	}

	client := redis.NewClient(opts)
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		log.Printf("[WARN] Redis unreachable (%v), using in-memory snapshot store", err)
		return memory.NewSnapshotRepository()
	}

	log.Printf("[INFO] Using Redis snapshot store")
	return implementation.NewSnapshotRepository(client)
}

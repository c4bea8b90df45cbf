package service

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/jubyaid123/hemovita/internal/dto"
	"github.com/jubyaid123/hemovita/internal/mapper"
	"github.com/jubyaid123/hemovita/internal/model"
	"github.com/jubyaid123/hemovita/internal/pkg/logger"
	"github.com/jubyaid123/hemovita/internal/repository/contract"
	"github.com/jubyaid123/hemovita/pkg/classifier"
	"github.com/jubyaid123/hemovita/pkg/foods"
	"github.com/jubyaid123/hemovita/pkg/graph"
	"github.com/jubyaid123/hemovita/pkg/report"
	"github.com/jubyaid123/hemovita/pkg/schedule"
)

const foodSuggestionLimit = 5

type IReportService interface {
	Generate(ctx context.Context, req *dto.GenerateReportRequest) (*dto.GenerateReportResponse, error)
}

type reportService struct {
	classifier      *classifier.Classifier
	scheduleBuilder *schedule.Builder
	graphService    IGraphService
	suggester       *foods.Suggester
	generator       *report.Generator
	snapshots       contract.ISnapshotRepository
	logger          logger.ILogger
}

// NewReportService wires the classification/schedule pipeline. suggester may
// be nil when no food table is available; the report then simply carries no
// food suggestions.
func NewReportService(
	cls *classifier.Classifier,
	scheduleBuilder *schedule.Builder,
	graphService IGraphService,
	suggester *foods.Suggester,
	generator *report.Generator,
	snapshots contract.ISnapshotRepository,
	log logger.ILogger,
) IReportService {
	return &reportService{
		classifier:      cls,
		scheduleBuilder: scheduleBuilder,
		graphService:    graphService,
		suggester:       suggester,
		generator:       generator,
		snapshots:       snapshots,
		logger:          log,
	}
}

func (s *reportService) Generate(ctx context.Context, req *dto.GenerateReportRequest) (*dto.GenerateReportResponse, error) {
	// Map iteration order is random; sort marker names so the report, plan
	// and schedule are deterministic for a given panel.
	readings := orderedReadings(req.Labs)
	results := s.classifier.ClassifyAll(readings)

	labels := make(map[string]model.Status, len(results))
	for _, r := range results {
		labels[r.MarkerID] = r.Status
	}

	// The interaction network is optional for report generation: a missing
	// or empty table degrades to an empty plan ruleset, never to a failure.
	var records []model.EdgeRecord
	var builtGraph model.Graph
	networkAvailable := false
	if network, err := s.graphService.LoadNetwork(ctx); err != nil {
		s.logger.Warn("report", "interaction network unavailable, continuing without it", map[string]interface{}{
			"error": err.Error(),
		})
	} else {
		records = network.Records
		builtGraph = network.Graph
		networkAvailable = true
	}

	planKeys := schedule.DefaultPlanKeys()
	rules := schedule.BuildInteractionRules(records, planKeys)
	planner := schedule.NewPlanner(schedule.DefaultSlots(), schedule.DefaultSupplementProxy(), planKeys, rules, s.generator.Pretty)
	plan := planner.Plan(results)
	networkNotes := planner.NetworkNotes(plan, records)

	items := s.scheduleBuilder.Build(results)

	foodSuggestions := map[string][]foods.Item{}
	var foodOrder []string
	if s.suggester != nil {
		foodSuggestions, foodOrder = s.suggester.Suggest(results, foodSuggestionLimit, req.DietFilter)
	}

	chains := map[string][]string{}
	if networkAvailable {
		for _, r := range results {
			if r.Status != model.StatusLow {
				continue
			}
			if paths := graph.PathsTo(builtGraph, r.MarkerID, 2); len(paths) > 0 {
				chains[r.MarkerID] = paths
			}
		}
	}

	reportText := s.generator.Generate(report.Input{
		Patient: report.Patient{
			Age:      req.Patient.Age,
			Sex:      req.Patient.Sex,
			Pregnant: req.Patient.Pregnant,
			Country:  req.Patient.Country,
			Notes:    req.Patient.Notes,
		},
		Results:          results,
		Plan:             plan,
		Slots:            schedule.DefaultSlots(),
		Foods:            foodSuggestions,
		FoodOrder:        foodOrder,
		NetworkChains:    chains,
		NetworkAvailable: networkAvailable,
	})

	s.storeSnapshot(ctx, results, networkNotes)

	return &dto.GenerateReportResponse{
		Labels:         labels,
		SupplementPlan: plan,
		Schedule:       mapper.ToScheduleResponse(items),
		NetworkNotes:   networkNotes,
		Foods:          mapper.ToFoodsResponse(foodSuggestions),
		ReportText:     reportText,
		RiskProfile:    req.RiskProfile,
	}, nil
}

// storeSnapshot persists this run's flagged nutrients for the highlighter.
// Failures are logged and swallowed: snapshot storage must never fail a
// report request.
func (s *reportService) storeSnapshot(ctx context.Context, results []model.ClassificationResult, networkNotes []string) {
	snapshot := &model.RecommendationSnapshot{
		ID:           uuid.NewString(),
		Deficiencies: []string{},
		HighRisk:     []string{},
		NetworkNotes: networkNotes,
		CreatedAt:    time.Now().UnixMilli(),
	}
	for _, r := range results {
		switch r.Status {
		case model.StatusLow:
			snapshot.Deficiencies = append(snapshot.Deficiencies, s.generator.Pretty(r.MarkerID))
		case model.StatusHigh:
			snapshot.HighRisk = append(snapshot.HighRisk, s.generator.Pretty(r.MarkerID))
		}
	}

	if err := s.snapshots.Save(ctx, snapshot); err != nil {
		s.logger.Error("report", "failed to store recommendation snapshot", map[string]interface{}{
			"error": err.Error(),
		})
	}
}

func orderedReadings(labs map[string]*float64) []model.MarkerReading {
	markers := make([]string, 0, len(labs))
	for marker := range labs {
		markers = append(markers, marker)
	}
	sort.Strings(markers)

	readings := make([]model.MarkerReading, 0, len(markers))
	for _, marker := range markers {
		readings = append(readings, model.MarkerReading{MarkerID: marker, Value: labs[marker]})
	}
	return readings
}

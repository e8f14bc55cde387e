// Package engine wires the analysis pipeline: normalize, merge, score,
// classify, aggregate. The engine is stateless between calls and performs no
// I/O beyond the optional insight generation.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/rupam1998/clarity-ai-app/internal/classify"
	"github.com/rupam1998/clarity-ai-app/internal/config"
	"github.com/rupam1998/clarity-ai-app/internal/insight"
	"github.com/rupam1998/clarity-ai-app/internal/merge"
	"github.com/rupam1998/clarity-ai-app/internal/models"
	"github.com/rupam1998/clarity-ai-app/internal/normalize"
	"github.com/rupam1998/clarity-ai-app/internal/score"
)

// Request is the analysis invocation payload, shaped like the original
// webhook contract.
type Request struct {
	Mode   string      `json:"mode" validate:"omitempty,oneof=synthetic kaggle upload"`
	Goal   models.Goal `json:"goal" validate:"omitempty,oneof=roas conversions cpa traffic"`
	Budget float64     `json:"budget" validate:"gte=0"`
	Data   RequestData `json:"data"`
}

type RequestData struct {
	Ads []normalize.Row `json:"ads"`
	Seo []normalize.Row `json:"seo"`
	Crm []normalize.Row `json:"crm"`
}

// Engine runs analyses. Safe for concurrent use.
type Engine struct {
	th       config.Thresholds
	log      *slog.Logger
	insights insight.Generator
	validate *validator.Validate
}

func New(th config.Thresholds, log *slog.Logger, gen insight.Generator) *Engine {
	if gen == nil {
		gen = insight.Template{}
	}
	return &Engine{
		th:       th,
		log:      log,
		insights: gen,
		validate: validator.New(),
	}
}

// Analyze runs the full pipeline. Data-quality problems degrade the result
// instead of erroring; only an invalid request shape fails.
func (e *Engine) Analyze(ctx context.Context, req Request) (*models.AnalysisResult, error) {
	if err := e.validate.Struct(req); err != nil {
		return nil, fmt.Errorf("invalid analyze request: %w", err)
	}
	goal := req.Goal
	if goal == "" {
		goal = models.GoalROAS
	}

	ads := normalize.Ads(req.Data.Ads)
	seo := normalize.Seo(req.Data.Seo)
	crm := normalize.Crm(req.Data.Crm)

	records := merge.Records(ads, seo, crm)

	weights := score.WeightsFor(goal)
	cls := classify.New(e.th, req.Budget)
	for _, rec := range records {
		score.Compute(rec, weights, e.th)
		cls.Apply(rec)
	}

	stats, summary, recs := classify.Aggregate(records)
	result := &models.AnalysisResult{
		GeneratedAt:     time.Now().UTC(),
		Goal:            goal,
		Stats:           stats,
		Summary:         summary,
		Recommendations: recs,
	}

	if text, err := e.insights.Summary(ctx, result); err != nil {
		e.log.Warn("insight generation failed, using template fallback",
			slog.String("err", err.Error()))
		result.AIInsight, _ = insight.Template{}.Summary(ctx, result)
	} else {
		result.AIInsight = text
	}

	e.log.Info("analysis complete",
		slog.Int("keywords", stats.TotalUnits),
		slog.Int("stop", summary.Stop),
		slog.Int("fix", summary.Fix),
		slog.Int("invest", summary.Invest),
		slog.Int("observe", summary.Observe),
		slog.Float64("total_savings", stats.TotalSavings))
	return result, nil
}

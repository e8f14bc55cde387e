// Package insight produces the optional executive-summary narrative attached
// to an analysis result. The core pipeline never depends on it succeeding.
package insight

import (
	"context"
	"fmt"
	"strings"

	"github.com/rupam1998/clarity-ai-app/internal/models"
)

// Generator turns a finished analysis into a short narrative.
type Generator interface {
	Summary(ctx context.Context, result *models.AnalysisResult) (string, error)
}

// Template is the deterministic fallback generator. It never fails, so it
// also backs the engine when no LLM is configured.
type Template struct{}

func (Template) Summary(_ context.Context, result *models.AnalysisResult) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyzed %d keywords across your marketing data. ", result.Stats.TotalUnits)
	if result.Summary.Stop > 0 {
		fmt.Fprintf(&b, "%d keywords are burning budget with no return — pausing them recovers about $%.0f per month ($%.0f annually). ",
			result.Summary.Stop, result.Stats.TotalSavings, result.Stats.AnnualSavings)
	}
	if result.Summary.Invest > 0 {
		fmt.Fprintf(&b, "%d keywords show strong returns or untapped demand and deserve more budget. ", result.Summary.Invest)
	}
	if result.Summary.Fix > 0 {
		fmt.Fprintf(&b, "%d keywords have real signal but underperform and need optimization. ", result.Summary.Fix)
	}
	fmt.Fprintf(&b, "Average recommendation confidence: %d%%.", result.Stats.AvgConfidence)
	return b.String(), nil
}

// buildPrompt renders the stats and the top records per category for the LLM.
func buildPrompt(result *models.AnalysisResult) string {
	var b strings.Builder
	b.WriteString("You are a marketing analyst. Write a concise executive summary (3-5 sentences, plain text) of this keyword analysis. Be specific about money and actions, no fluff.\n\n")
	fmt.Fprintf(&b, "Goal: %s\n", result.Goal)
	fmt.Fprintf(&b, "Keywords analyzed: %d\n", result.Stats.TotalUnits)
	fmt.Fprintf(&b, "Monthly savings identified: $%.0f (annual $%.0f)\n", result.Stats.TotalSavings, result.Stats.AnnualSavings)
	fmt.Fprintf(&b, "Total tracked spend: $%.0f\n", result.Stats.TotalSpend)
	fmt.Fprintf(&b, "Counts: stop=%d fix=%d invest=%d observe=%d\n\n", result.Summary.Stop, result.Summary.Fix, result.Summary.Invest, result.Summary.Observe)

	writeTop := func(label string, recs []*models.KeywordRecord) {
		if len(recs) == 0 {
			return
		}
		fmt.Fprintf(&b, "Top %s:\n", label)
		for i, rec := range recs {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "- %q: %s (confidence %d%%)\n", rec.Keyword, rec.Classification.Reason, rec.Confidence.Score)
		}
	}
	writeTop("STOP", result.Recommendations.Stop)
	writeTop("FIX", result.Recommendations.Fix)
	writeTop("INVEST", result.Recommendations.Invest)
	return b.String()
}

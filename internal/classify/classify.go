// Package classify applies the decision policy: rules evaluated in a fixed
// priority order, first match wins, every record lands in exactly one of
// STOP / FIX / INVEST / OBSERVE.
package classify

import (
	"fmt"
	"math"

	"github.com/rupam1998/clarity-ai-app/internal/config"
	"github.com/rupam1998/clarity-ai-app/internal/models"
)

// Classifier evaluates records against named thresholds.
type Classifier struct {
	th            config.Thresholds
	monthlyBudget float64
}

func New(th config.Thresholds, monthlyBudget float64) *Classifier {
	if monthlyBudget < 0 {
		monthlyBudget = 0
	}
	return &Classifier{th: th, monthlyBudget: monthlyBudget}
}

// Apply fills Classification and Confidence on the record. Derived metrics
// must already be computed.
func (c *Classifier) Apply(rec *models.KeywordRecord) {
	rec.Confidence = c.confidence(rec)

	if cl, ok := c.stop(rec); ok {
		rec.Classification = cl
		return
	}
	if cl, ok := c.fix(rec); ok {
		rec.Classification = cl
		return
	}
	if cl, ok := c.invest(rec); ok {
		rec.Classification = cl
		return
	}
	rec.Classification = c.observe(rec)
}

// stop: confirmed budget burning with no return.
func (c *Classifier) stop(rec *models.KeywordRecord) (models.Classification, bool) {
	if rec.Ads == nil || rec.Ads.Spend == nil || rec.Ads.Conversions == nil {
		return models.Classification{}, false
	}
	spend := *rec.Ads.Spend
	roi := rec.Derived.ROI
	if spend <= c.th.StopMinSpend || *rec.Ads.Conversions != 0 {
		return models.Classification{}, false
	}
	if roi != nil && *roi >= c.th.StopMaxROI {
		return models.Classification{}, false
	}

	prio := 3
	switch {
	case spend >= 500:
		prio = 1
	case spend >= 250:
		prio = 2
	}
	return models.Classification{
		Action:   models.ActionStop,
		Priority: prio,
		Reason:   fmt.Sprintf("high spend ($%.0f), zero conversions", spend),
		Savings:  models.Ptr(round2(spend)),
	}, true
}

// fix: signal exists but underperforms on at least one engagement metric.
func (c *Classifier) fix(rec *models.KeywordRecord) (models.Classification, bool) {
	if rec.Ads == nil {
		return models.Classification{}, false
	}
	d := rec.Derived

	var reason string
	switch {
	case d.CTR != nil && *d.CTR < c.th.FixMinCTR:
		reason = fmt.Sprintf("low CTR (%.2f%%)", *d.CTR*100)
	case d.ConversionRate != nil && *d.ConversionRate < c.th.FixMinConversionRate:
		reason = fmt.Sprintf("low conversion rate (%.2f%%)", *d.ConversionRate*100)
	case d.QualificationRate != nil && *d.QualificationRate < c.th.FixMinQualificationRate:
		reason = fmt.Sprintf("low lead qualification (%.0f%%)", *d.QualificationRate*100)
	default:
		return models.Classification{}, false
	}

	cl := models.Classification{Action: models.ActionFix, Priority: 4, Reason: reason}
	if rec.Ads.Spend != nil {
		cl.Savings = models.Ptr(round2(*rec.Ads.Spend * c.th.FixRecoveryShare))
		cl.Priority = 3
		if *rec.Ads.Spend >= 500 {
			cl.Priority = 2
		}
	}
	return cl, true
}

// invest: strong return, or high untapped demand at low/no cost.
func (c *Classifier) invest(rec *models.KeywordRecord) (models.Classification, bool) {
	d := rec.Derived
	var spend float64
	hasSpend := rec.Ads != nil && rec.Ads.Spend != nil
	if hasSpend {
		spend = *rec.Ads.Spend
	}

	if d.ROI != nil && *d.ROI >= c.th.InvestMinROI {
		scaleUp := spend * c.th.ScaleUpSpendShare
		if limit := c.monthlyBudget * c.th.ScaleUpBudgetCap; limit > 0 && scaleUp > limit {
			scaleUp = limit
		}
		potential := (*d.ROI - 1) * scaleUp
		prio := 2
		if *d.ROI >= 5 {
			prio = 1
		}
		return models.Classification{
			Action:    models.ActionInvest,
			Priority:  prio,
			Reason:    fmt.Sprintf("strong return (%.1fx ROI)", *d.ROI),
			Potential: models.Ptr(round2(potential)),
		}, true
	}

	lowSpend := !hasSpend || spend < c.th.InvestMaxSpend
	if d.OpportunityScore != nil && *d.OpportunityScore >= c.th.InvestMinOpportunity && lowSpend {
		potential := c.monthlyBudget * c.th.OpportunityShare * (*d.OpportunityScore / 100)
		prio := 2
		if *d.OpportunityScore >= 90 {
			prio = 1
		}
		return models.Classification{
			Action:    models.ActionInvest,
			Priority:  prio,
			Reason:    fmt.Sprintf("high untapped demand (opportunity %.0f, low spend)", *d.OpportunityScore),
			Potential: models.Ptr(round2(potential)),
		}, true
	}
	return models.Classification{}, false
}

// observe is the terminal catch-all, so classification stays total.
func (c *Classifier) observe(rec *models.KeywordRecord) models.Classification {
	reason := "stable performance, no action needed"
	if len(rec.Sources()) < 2 {
		reason = "insufficient data for a confident call"
	}
	return models.Classification{
		Action:   models.ActionObserve,
		Priority: 5,
		Reason:   reason,
	}
}

// confidence derives the trust score from source coverage and sample size.
// One source caps at 60, two at 80, three at 100.
func (c *Classifier) confidence(rec *models.KeywordRecord) models.Confidence {
	sources := rec.Sources()

	var base, ceiling int
	switch len(sources) {
	case 1:
		base, ceiling = 55, 60
	case 2:
		base, ceiling = 75, 80
	default:
		base, ceiling = 95, 100
	}

	factors := make([]string, 0, len(sources)+1)
	for _, s := range sources {
		factors = append(factors, string(s))
	}

	score := base
	var clicks, leads *float64
	if rec.Ads != nil {
		clicks = rec.Ads.Clicks
	}
	if rec.Crm != nil {
		leads = rec.Crm.Leads
	}

	// small samples make the per-keyword rates unreliable
	lowSample := false
	if clicks != nil && *clicks < 30 {
		score -= 15
		lowSample = true
	}
	if leads != nil && *leads < 10 {
		score -= 10
		lowSample = true
	}
	if lowSample {
		factors = append(factors, "low-sample-size")
	} else if (clicks != nil && *clicks >= 100) || (leads != nil && *leads >= 30) {
		score += 5
		factors = append(factors, "sample-size")
	}

	if score > ceiling {
		score = ceiling
	}
	if score < 5 {
		score = 5
	}
	return models.Confidence{Score: score, Factors: factors}
}

// Aggregate reduces the classified records into the portfolio response:
// grouped recommendations in first-appearance order, counts, and totals.
func Aggregate(records []*models.KeywordRecord) (models.Stats, models.Summary, models.Recommendations) {
	var stats models.Stats
	var sum models.Summary
	recs := models.Recommendations{
		Stop:    []*models.KeywordRecord{},
		Fix:     []*models.KeywordRecord{},
		Invest:  []*models.KeywordRecord{},
		Observe: []*models.KeywordRecord{},
	}

	var confTotal int
	for _, rec := range records {
		confTotal += rec.Confidence.Score
		if rec.Ads != nil && rec.Ads.Spend != nil {
			stats.TotalSpend += *rec.Ads.Spend
		}
		switch rec.Classification.Action {
		case models.ActionStop:
			sum.Stop++
			recs.Stop = append(recs.Stop, rec)
		case models.ActionFix:
			sum.Fix++
			recs.Fix = append(recs.Fix, rec)
		case models.ActionInvest:
			sum.Invest++
			recs.Invest = append(recs.Invest, rec)
		default:
			sum.Observe++
			recs.Observe = append(recs.Observe, rec)
		}
		if rec.Classification.Action == models.ActionStop || rec.Classification.Action == models.ActionFix {
			if rec.Classification.Savings != nil {
				stats.TotalSavings += *rec.Classification.Savings
			}
		}
	}

	stats.TotalSavings = round2(stats.TotalSavings)
	stats.AnnualSavings = round2(stats.TotalSavings * 12)
	stats.TotalSpend = round2(stats.TotalSpend)
	stats.TotalUnits = len(records)
	if len(records) > 0 {
		stats.AvgConfidence = int(math.Round(float64(confTotal) / float64(len(records))))
	}
	return stats, sum, recs
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }

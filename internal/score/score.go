// Package score computes the derived metrics and sub-scores for unified
// keyword records. Missing inputs propagate as nil; a nil metric is never
// rewritten as zero because zero means confirmed-zero performance.
package score

import (
	"math"

	"github.com/rupam1998/clarity-ai-app/internal/config"
	"github.com/rupam1998/clarity-ai-app/internal/models"
)

// Weights combine the efficiency sub-inputs. They sum to 1; when a sub-input
// is nil its weight is dropped and the rest renormalize.
type Weights struct {
	ROI            float64
	CTR            float64
	ConversionRate float64
	CostPerLead    float64
}

// WeightsFor selects the efficiency weighting for the optimization goal.
// The classifier thresholds stay goal-independent; only the blend moves.
func WeightsFor(goal models.Goal) Weights {
	switch goal {
	case models.GoalConversions:
		return Weights{ROI: 0.20, CTR: 0.15, ConversionRate: 0.45, CostPerLead: 0.20}
	case models.GoalCPA:
		return Weights{ROI: 0.20, CTR: 0.10, ConversionRate: 0.25, CostPerLead: 0.45}
	case models.GoalTraffic:
		return Weights{ROI: 0.15, CTR: 0.45, ConversionRate: 0.25, CostPerLead: 0.15}
	default: // roas
		return Weights{ROI: 0.45, CTR: 0.15, ConversionRate: 0.20, CostPerLead: 0.20}
	}
}

// Compute fills rec.Derived in place.
func Compute(rec *models.KeywordRecord, w Weights, th config.Thresholds) {
	d := &rec.Derived

	var spend, clicks, impressions, conversions, adRevenue *float64
	if rec.Ads != nil {
		spend = rec.Ads.Spend
		clicks = rec.Ads.Clicks
		impressions = rec.Ads.Impressions
		conversions = rec.Ads.Conversions
		adRevenue = rec.Ads.Revenue
	}
	var leads, qualified, crmRevenue *float64
	if rec.Crm != nil {
		leads = rec.Crm.Leads
		qualified = rec.Crm.QualifiedLeads
		crmRevenue = rec.Crm.Revenue
	}

	d.CTR = ratio(clicks, impressions)
	d.ConversionRate = ratio(conversions, clicks)
	d.CostPerLead = ratio(spend, leads)
	d.CostPerAcquisition = ratio(spend, conversions)
	d.QualificationRate = ratio(qualified, leads)

	// revenue is the sum of both channels when both report it
	revenue := sumOpt(adRevenue, crmRevenue)
	d.ROI = ratio(revenue, spend)

	d.EfficiencyScore = efficiency(d, w, th)
	if rec.Seo != nil {
		d.OpportunityScore = opportunity(rec.Seo, th)
	}
	if rec.Crm != nil {
		d.QualityScore = quality(d.QualificationRate, crmRevenue, leads, th)
	}
}

// efficiency is the weighted blend of the normalized sub-scores. Nil inputs
// drop out with their weight; all-nil yields nil.
func efficiency(d *models.Derived, w Weights, th config.Thresholds) *float64 {
	var sum, weight float64
	add := func(score *float64, wt float64) {
		if score == nil {
			return
		}
		sum += *score * wt
		weight += wt
	}
	add(scaleUp(d.ROI, th.RefROI), w.ROI)
	add(scaleUp(d.CTR, th.RefCTR), w.CTR)
	add(scaleUp(d.ConversionRate, th.RefConversion), w.ConversionRate)
	add(scaleDown(d.CostPerLead, th.RefCPLBest, th.RefCPLWorst), w.CostPerLead)
	if weight == 0 {
		return nil
	}
	return models.Ptr(round1(sum / weight))
}

// opportunity scores untapped demand: log-scaled volume against the
// reference ceiling, boosted by low competition.
func opportunity(seo *models.SeoRecord, th config.Thresholds) *float64 {
	if seo.Volume == nil && seo.Competition == nil {
		return nil
	}
	var sum, weight float64
	if seo.Volume != nil {
		v := clamp01(math.Log10(*seo.Volume+1) / math.Log10(th.RefVolume))
		sum += v * 100 * 0.7
		weight += 0.7
	}
	if seo.Competition != nil {
		sum += (1 - clamp01(*seo.Competition)) * 100 * 0.3
		weight += 0.3
	}
	return models.Ptr(round1(sum / weight))
}

// quality scores lead value: qualification rate plus revenue per lead.
func quality(qualRate, crmRevenue, leads *float64, th config.Thresholds) *float64 {
	var sum, weight float64
	if qualRate != nil {
		sum += clamp01(*qualRate) * 100 * 0.6
		weight += 0.6
	}
	if rpl := ratio(crmRevenue, leads); rpl != nil {
		sum += clamp01(*rpl/th.RefRevenuePerLead) * 100 * 0.4
		weight += 0.4
	}
	if weight == 0 {
		return nil
	}
	return models.Ptr(round1(sum / weight))
}

// ratio divides a by b, nil when either side is missing or b is zero.
// Division by zero is absence of signal, not zero performance.
func ratio(a, b *float64) *float64 {
	if a == nil || b == nil || *b == 0 {
		return nil
	}
	return models.Ptr(*a / *b)
}

func sumOpt(a, b *float64) *float64 {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return models.Ptr(*a + *b)
}

// scaleUp maps v linearly onto [0,100] with full marks at ref.
func scaleUp(v *float64, ref float64) *float64 {
	if v == nil {
		return nil
	}
	return models.Ptr(clamp01(*v/ref) * 100)
}

// scaleDown maps a lower-is-better value onto [0,100]: best or below gets
// 100, worst or above gets 0.
func scaleDown(v *float64, best, worst float64) *float64 {
	if v == nil {
		return nil
	}
	return models.Ptr(clamp01((worst-*v)/(worst-best)) * 100)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func round1(f float64) float64 { return math.Round(f*10) / 10 }

// Package merge joins the three normalized source collections into one
// unified record per distinct keyword.
package merge

import (
	"github.com/rupam1998/clarity-ai-app/internal/models"
	"github.com/rupam1998/clarity-ai-app/internal/normalize"
)

// Records joins ads, seo and crm on the folded keyword/origin identity.
// Display casing is first-seen. Output preserves first-appearance order:
// ads keywords first, then seo-only, then crm-only. Duplicate keys inside a
// source merge by summation for additive fields; seo market fields keep the
// first non-nil value.
func Records(ads []models.AdRecord, seo []models.SeoRecord, crm []models.CrmRecord) []*models.KeywordRecord {
	byKey := make(map[string]*models.KeywordRecord)
	var order []string

	get := func(key, display string) *models.KeywordRecord {
		if rec, ok := byKey[key]; ok {
			return rec
		}
		rec := &models.KeywordRecord{Keyword: display}
		byKey[key] = rec
		order = append(order, key)
		return rec
	}

	for _, a := range ads {
		key := normalize.Key(a.Keyword)
		if key == "" {
			continue
		}
		rec := get(key, a.Keyword)
		if rec.Ads == nil {
			rec.Ads = &models.AdRecord{Keyword: rec.Keyword}
		}
		rec.Ads.Spend = addOpt(rec.Ads.Spend, a.Spend)
		rec.Ads.Clicks = addOpt(rec.Ads.Clicks, a.Clicks)
		rec.Ads.Impressions = addOpt(rec.Ads.Impressions, a.Impressions)
		rec.Ads.Conversions = addOpt(rec.Ads.Conversions, a.Conversions)
		rec.Ads.Revenue = addOpt(rec.Ads.Revenue, a.Revenue)
	}

	for _, s := range seo {
		key := normalize.Key(s.Keyword)
		if key == "" {
			continue
		}
		rec := get(key, s.Keyword)
		if rec.Seo == nil {
			rec.Seo = &models.SeoRecord{Keyword: rec.Keyword}
		}
		// market conditions, not spend: first non-nil wins
		rec.Seo.Volume = firstOpt(rec.Seo.Volume, s.Volume)
		rec.Seo.CPC = firstOpt(rec.Seo.CPC, s.CPC)
		rec.Seo.Competition = firstOpt(rec.Seo.Competition, s.Competition)
	}

	for _, c := range crm {
		key := normalize.Key(c.Origin)
		if key == "" {
			continue
		}
		rec := get(key, c.Origin)
		if rec.Crm == nil {
			rec.Crm = &models.CrmRecord{Origin: rec.Keyword}
		}
		rec.Crm.Leads = addOpt(rec.Crm.Leads, c.Leads)
		rec.Crm.QualifiedLeads = addOpt(rec.Crm.QualifiedLeads, c.QualifiedLeads)
		rec.Crm.Revenue = addOpt(rec.Crm.Revenue, c.Revenue)
	}

	out := make([]*models.KeywordRecord, 0, len(order))
	for _, key := range order {
		rec := byKey[key]
		// duplicate rows can split leads and qualified_leads across rows,
		// so the invariant has to be re-clamped after summation
		if c := rec.Crm; c != nil && c.Leads != nil && c.QualifiedLeads != nil && *c.QualifiedLeads > *c.Leads {
			c.QualifiedLeads = models.Ptr(*c.Leads)
		}
		out = append(out, rec)
	}
	return out
}

// addOpt sums two optional values; nil+nil stays nil so absence survives
// duplicate merging.
func addOpt(a, b *float64) *float64 {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return models.Ptr(*a + *b)
}

func firstOpt(a, b *float64) *float64 {
	if a != nil {
		return a
	}
	return b
}

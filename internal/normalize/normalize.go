// Package normalize canonicalizes loosely-typed upload rows into typed
// source records. Column aliases are kept as data: for every canonical field
// the first matching alias present in a row wins.
package normalize

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/rupam1998/clarity-ai-app/internal/models"
)

// Row is one loosely-keyed input record as handed over by the upload layer.
type Row map[string]any

type fieldAliases struct {
	field   string
	aliases []string
}

// Alias tables mirror the upload widget's column mappings. Order matters:
// the first alias found in the row is taken.
var (
	adsAliases = []fieldAliases{
		{"keyword", []string{"keyword", "keywords", "search_term", "query"}},
		{"spend", []string{"spend", "cost", "amount", "ad_spend"}},
		{"clicks", []string{"clicks", "click"}},
		{"impressions", []string{"impressions", "impr"}},
		{"conversions", []string{"conversions", "conv", "conversion"}},
		{"revenue", []string{"revenue", "value", "sale_amount"}},
	}
	seoAliases = []fieldAliases{
		{"keyword", []string{"keyword", "keywords", "text", "query"}},
		{"volume", []string{"volume", "vol", "search_volume", "searches"}},
		{"cpc", []string{"cpc", "cost_per_click"}},
		{"competition", []string{"competition", "comp", "difficulty"}},
	}
	crmAliases = []fieldAliases{
		{"origin", []string{"origin", "source", "keyword", "utm_source"}},
		{"leads", []string{"leads", "lead_count"}},
		{"qualified_leads", []string{"qualified_leads", "qualified", "sql"}},
		{"revenue", []string{"revenue", "value", "deal_value"}},
	}
)

// Ads normalizes advertising rows. Rows without a usable keyword are dropped:
// they can never join. Unparseable numerics are treated as absent, not zero.
func Ads(rows []Row) []models.AdRecord {
	out := make([]models.AdRecord, 0, len(rows))
	for _, row := range rows {
		f := pick(row, adsAliases)
		kw := str(f["keyword"])
		if kw == "" {
			continue
		}
		rec := models.AdRecord{
			Keyword:     kw,
			Spend:       num(f["spend"]),
			Clicks:      num(f["clicks"]),
			Impressions: num(f["impressions"]),
			Conversions: num(f["conversions"]),
			Revenue:     num(f["revenue"]),
		}
		out = append(out, rec)
	}
	return out
}

// Seo normalizes keyword market rows. Competition accepts a numeric in [0,1]
// (clamped) or a low/medium/high category.
func Seo(rows []Row) []models.SeoRecord {
	out := make([]models.SeoRecord, 0, len(rows))
	for _, row := range rows {
		f := pick(row, seoAliases)
		kw := str(f["keyword"])
		if kw == "" {
			continue
		}
		out = append(out, models.SeoRecord{
			Keyword:     kw,
			Volume:      num(f["volume"]),
			CPC:         num(f["cpc"]),
			Competition: competition(f["competition"]),
		})
	}
	return out
}

// Crm normalizes lead rows. qualified_leads above leads is clamped rather
// than failing the row.
func Crm(rows []Row) []models.CrmRecord {
	out := make([]models.CrmRecord, 0, len(rows))
	for _, row := range rows {
		f := pick(row, crmAliases)
		origin := str(f["origin"])
		if origin == "" {
			continue
		}
		rec := models.CrmRecord{
			Origin:         origin,
			Leads:          num(f["leads"]),
			QualifiedLeads: num(f["qualified_leads"]),
			Revenue:        num(f["revenue"]),
		}
		if rec.Leads != nil && rec.QualifiedLeads != nil && *rec.QualifiedLeads > *rec.Leads {
			rec.QualifiedLeads = models.Ptr(*rec.Leads)
		}
		out = append(out, rec)
	}
	return out
}

// Key folds a keyword/origin into its join identity.
func Key(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func pick(row Row, table []fieldAliases) map[string]any {
	// row keys are matched case-insensitively and trimmed, same as the
	// upload widget lower-cases CSV headers
	lowered := make(map[string]any, len(row))
	for k, v := range row {
		lowered[strings.ToLower(strings.TrimSpace(k))] = v
	}
	out := make(map[string]any, len(table))
	for _, fa := range table {
		for _, alias := range fa.aliases {
			if v, ok := lowered[alias]; ok && v != nil {
				out[fa.field] = v
				break
			}
		}
	}
	return out
}

func str(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}

// num coerces a loose value into a non-negative float. Anything that does
// not parse, or parses negative, is absent.
func num(v any) *float64 {
	var f float64
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		f = t
	case float32:
		f = float64(t)
	case int:
		f = float64(t)
	case int64:
		f = float64(t)
	case json.Number:
		p, err := t.Float64()
		if err != nil {
			return nil
		}
		f = p
	case string:
		s := strings.TrimSpace(t)
		s = strings.ReplaceAll(s, "$", "")
		s = strings.ReplaceAll(s, ",", "")
		if s == "" {
			return nil
		}
		p, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil
		}
		f = p
	default:
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return nil
	}
	return models.Ptr(f)
}

func competition(v any) *float64 {
	if s, ok := v.(string); ok {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "low":
			return models.Ptr(0.2)
		case "medium", "mid":
			return models.Ptr(0.5)
		case "high":
			return models.Ptr(0.8)
		}
	}
	f := num(v)
	if f == nil {
		return nil
	}
	if *f > 1 {
		return models.Ptr(1)
	}
	return f
}

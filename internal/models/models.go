package models

import "time"

// Source is one of the three input channels.
type Source string

const (
	SourceAds Source = "ads"
	SourceSeo Source = "seo"
	SourceCrm Source = "crm"
)

// Goal selects how the efficiency score is weighted.
type Goal string

const (
	GoalROAS        Goal = "roas"
	GoalConversions Goal = "conversions"
	GoalCPA         Goal = "cpa"
	GoalTraffic     Goal = "traffic"
)

// Action is the recommendation category assigned to every keyword.
type Action string

const (
	ActionStop    Action = "STOP"
	ActionFix     Action = "FIX"
	ActionInvest  Action = "INVEST"
	ActionObserve Action = "OBSERVE"
)

// AdRecord holds advertising performance for one keyword. Nil means the
// value was absent in the upload, which is different from a confirmed zero.
type AdRecord struct {
	Keyword     string   `json:"keyword"`
	Spend       *float64 `json:"spend,omitempty"`
	Clicks      *float64 `json:"clicks,omitempty"`
	Impressions *float64 `json:"impressions,omitempty"`
	Conversions *float64 `json:"conversions,omitempty"`
	Revenue     *float64 `json:"revenue,omitempty"`
}

// SeoRecord holds keyword market data. Volume/cpc/competition describe
// market conditions, not spend, so duplicates never sum.
type SeoRecord struct {
	Keyword     string   `json:"keyword"`
	Volume      *float64 `json:"volume,omitempty"`
	CPC         *float64 `json:"cpc,omitempty"`
	Competition *float64 `json:"competition,omitempty"` // normalized to [0,1]
}

// CrmRecord holds lead data attributed to an origin keyword.
type CrmRecord struct {
	Origin         string   `json:"origin"`
	Leads          *float64 `json:"leads,omitempty"`
	QualifiedLeads *float64 `json:"qualified_leads,omitempty"`
	Revenue        *float64 `json:"revenue,omitempty"`
}

// Derived are the computed metrics per keyword. Every field is nil when its
// required inputs are missing; a nil never collapses into a zero.
type Derived struct {
	CTR                *float64 `json:"ctr,omitempty"`
	ConversionRate     *float64 `json:"conversion_rate,omitempty"`
	CostPerLead        *float64 `json:"cost_per_lead,omitempty"`
	CostPerAcquisition *float64 `json:"cost_per_acquisition,omitempty"`
	ROI                *float64 `json:"roi,omitempty"`
	QualificationRate  *float64 `json:"qualification_rate,omitempty"`
	EfficiencyScore    *float64 `json:"efficiency_score,omitempty"`
	OpportunityScore   *float64 `json:"opportunity_score,omitempty"`
	QualityScore       *float64 `json:"quality_score,omitempty"`
}

// Classification is the decision attached to a keyword.
type Classification struct {
	Action    Action   `json:"action"`
	Priority  int      `json:"priority"` // 1 = most urgent
	Reason    string   `json:"reason"`
	Savings   *float64 `json:"savings"`
	Potential *float64 `json:"potential"`
}

// Confidence scores how much the classification should be trusted.
type Confidence struct {
	Score   int      `json:"score"` // 0-100
	Factors []string `json:"factors"`
}

// KeywordRecord is the unified per-keyword entity produced by the merge.
// At least one of Ads/Seo/Crm is always populated.
type KeywordRecord struct {
	Keyword        string         `json:"keyword"`
	Ads            *AdRecord      `json:"ads,omitempty"`
	Seo            *SeoRecord     `json:"seo,omitempty"`
	Crm            *CrmRecord     `json:"crm,omitempty"`
	Derived        Derived        `json:"derived"`
	Classification Classification `json:"classification"`
	Confidence     Confidence     `json:"confidence"`
}

// Sources lists which channels contributed to this record, in ads/seo/crm
// order.
func (r *KeywordRecord) Sources() []Source {
	var out []Source
	if r.Ads != nil {
		out = append(out, SourceAds)
	}
	if r.Seo != nil {
		out = append(out, SourceSeo)
	}
	if r.Crm != nil {
		out = append(out, SourceCrm)
	}
	return out
}

// Stats is the portfolio-level reduction over the classified records.
type Stats struct {
	TotalSavings  float64 `json:"total_savings"`
	AnnualSavings float64 `json:"annual_savings"`
	TotalUnits    int     `json:"total_units"`
	AvgConfidence int     `json:"avg_confidence"`
	TotalSpend    float64 `json:"total_spend"`
}

// Summary counts records per action.
type Summary struct {
	Stop    int `json:"stop"`
	Fix     int `json:"fix"`
	Invest  int `json:"invest"`
	Observe int `json:"observe"`
}

// Recommendations groups the classified records by action, preserving the
// merger's first-appearance order inside each group.
type Recommendations struct {
	Stop    []*KeywordRecord `json:"stop"`
	Fix     []*KeywordRecord `json:"fix"`
	Invest  []*KeywordRecord `json:"invest"`
	Observe []*KeywordRecord `json:"observe"`
}

// AnalysisResult is the full response for one analysis run.
type AnalysisResult struct {
	ReportID        string          `json:"report_id,omitempty"`
	GeneratedAt     time.Time       `json:"generated_at"`
	Goal            Goal            `json:"goal"`
	Stats           Stats           `json:"stats"`
	Summary         Summary         `json:"summary"`
	Recommendations Recommendations `json:"recommendations"`
	AIInsight       string          `json:"ai_insight,omitempty"`
}

// Ptr returns a pointer to v. Shorthand for building optional numerics.
func Ptr(v float64) *float64 { return &v }

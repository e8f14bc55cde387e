package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port         string
	LogLevel     slog.Level
	HTTPTimeout  time.Duration
	GeminiAPIKey string
	GeminiModel  string
	ReportCap    int
	Thresholds   Thresholds
}

// Thresholds are the named decision constants of the classifier and the
// reference scales of the metric engine. Every value can be overridden from
// the environment; the zero value is never used, start from
// DefaultThresholds.
type Thresholds struct {
	StopMinSpend float64 // STOP requires spend above this with zero conversions
	StopMaxROI   float64 // ROI below this (or unknown) still qualifies for STOP

	FixMinCTR               float64
	FixMinConversionRate    float64
	FixMinQualificationRate float64

	InvestMinROI         float64
	InvestMinOpportunity float64
	InvestMaxSpend       float64 // spend at or above this no longer counts as "low"

	// Reference scales for full marks on efficiency sub-scores.
	RefROI            float64
	RefCTR            float64
	RefConversion     float64
	RefCPLBest        float64
	RefCPLWorst       float64
	RefVolume         float64 // opportunity log ceiling
	RefRevenuePerLead float64 // quality revenue-per-lead full marks

	FixRecoveryShare  float64 // share of spend a FIX is assumed to recover
	ScaleUpSpendShare float64 // INVEST scale-up budget as share of current spend
	ScaleUpBudgetCap  float64 // cap as share of the monthly budget
	OpportunityShare  float64 // budget share behind opportunity-driven potential
}

func DefaultThresholds() Thresholds {
	return Thresholds{
		StopMinSpend:            100,
		StopMaxROI:              0.5,
		FixMinCTR:               0.015,
		FixMinConversionRate:    0.01,
		FixMinQualificationRate: 0.20,
		InvestMinROI:            3.0,
		InvestMinOpportunity:    70,
		InvestMaxSpend:          100,
		RefROI:                  3.0,
		RefCTR:                  0.05,
		RefConversion:           0.10,
		RefCPLBest:              25,
		RefCPLWorst:             250,
		RefVolume:               100000,
		RefRevenuePerLead:       500,
		FixRecoveryShare:        0.30,
		ScaleUpSpendShare:       0.50,
		ScaleUpBudgetCap:        0.25,
		OpportunityShare:        0.10,
	}
}

func FromEnv() Config {
	to := 30 * time.Second
	if v := os.Getenv("HTTP_TIMEOUT_SECONDS"); v != "" {
		if d, err := time.ParseDuration(v + "s"); err == nil {
			to = d
		}
	}
	lvl := slog.LevelInfo
	if os.Getenv("LOG_LEVEL") == "debug" {
		lvl = slog.LevelDebug
	}

	th := DefaultThresholds()
	th.StopMinSpend = envFloat("STOP_MIN_SPEND", th.StopMinSpend)
	th.StopMaxROI = envFloat("STOP_MAX_ROI", th.StopMaxROI)
	th.FixMinCTR = envFloat("FIX_MIN_CTR", th.FixMinCTR)
	th.FixMinConversionRate = envFloat("FIX_MIN_CONVERSION_RATE", th.FixMinConversionRate)
	th.FixMinQualificationRate = envFloat("FIX_MIN_QUALIFICATION_RATE", th.FixMinQualificationRate)
	th.InvestMinROI = envFloat("INVEST_MIN_ROI", th.InvestMinROI)
	th.InvestMinOpportunity = envFloat("INVEST_MIN_OPPORTUNITY", th.InvestMinOpportunity)
	th.InvestMaxSpend = envFloat("INVEST_MAX_SPEND", th.InvestMaxSpend)
	th.RefROI = envFloat("REF_ROI", th.RefROI)
	th.RefCTR = envFloat("REF_CTR", th.RefCTR)
	th.RefConversion = envFloat("REF_CONVERSION", th.RefConversion)
	th.RefCPLBest = envFloat("REF_CPL_BEST", th.RefCPLBest)
	th.RefCPLWorst = envFloat("REF_CPL_WORST", th.RefCPLWorst)
	th.RefVolume = envFloat("REF_VOLUME", th.RefVolume)
	th.RefRevenuePerLead = envFloat("REF_REVENUE_PER_LEAD", th.RefRevenuePerLead)
	th.FixRecoveryShare = envFloat("FIX_RECOVERY_SHARE", th.FixRecoveryShare)
	th.ScaleUpSpendShare = envFloat("SCALE_UP_SPEND_SHARE", th.ScaleUpSpendShare)
	th.ScaleUpBudgetCap = envFloat("SCALE_UP_BUDGET_CAP", th.ScaleUpBudgetCap)
	th.OpportunityShare = envFloat("OPPORTUNITY_SHARE", th.OpportunityShare)

	return Config{
		Port:         envOr("PORT", "8080"),
		LogLevel:     lvl,
		HTTPTimeout:  to,
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  envOr("GEMINI_MODEL", "gemini-1.5-flash"),
		ReportCap:    envInt("REPORT_CAP", 100),
		Thresholds:   th,
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envFloat(k string, def float64) float64 {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return i
}

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromEnvDefaultThresholds(t *testing.T) {
	cfg := FromEnv()
	assert.Equal(t, DefaultThresholds(), cfg.Thresholds)
}

func TestFromEnvOverridesEveryThresholdGroup(t *testing.T) {
	t.Setenv("STOP_MIN_SPEND", "250")
	t.Setenv("REF_ROI", "4.5")
	t.Setenv("REF_VOLUME", "50000")
	t.Setenv("FIX_RECOVERY_SHARE", "0.5")
	t.Setenv("SCALE_UP_BUDGET_CAP", "0.4")
	t.Setenv("OPPORTUNITY_SHARE", "0.2")

	th := FromEnv().Thresholds
	assert.Equal(t, 250.0, th.StopMinSpend)
	assert.Equal(t, 4.5, th.RefROI)
	assert.Equal(t, 50000.0, th.RefVolume)
	assert.Equal(t, 0.5, th.FixRecoveryShare)
	assert.Equal(t, 0.4, th.ScaleUpBudgetCap)
	assert.Equal(t, 0.2, th.OpportunityShare)
}

func TestFromEnvIgnoresUnparseableValues(t *testing.T) {
	t.Setenv("STOP_MIN_SPEND", "lots")
	t.Setenv("REF_CPL_WORST", "")
	th := FromEnv().Thresholds
	assert.Equal(t, DefaultThresholds().StopMinSpend, th.StopMinSpend)
	assert.Equal(t, DefaultThresholds().RefCPLWorst, th.RefCPLWorst)
}

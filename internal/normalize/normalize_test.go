package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdsAliasPriority(t *testing.T) {
	// both aliases present: the first alias in the table wins
	rows := []Row{{"keyword": "shoes", "spend": 100.0, "cost": 50.0}}
	out := Ads(rows)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Spend)
	assert.Equal(t, 100.0, *out[0].Spend)

	rows = []Row{{"keyword": "shoes", "cost": 50.0}}
	out = Ads(rows)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Spend)
	assert.Equal(t, 50.0, *out[0].Spend)
}

func TestAdsHeaderCaseAndWhitespace(t *testing.T) {
	rows := []Row{{" Keyword ": "boots", "SPEND": "250"}}
	out := Ads(rows)
	require.Len(t, out, 1)
	assert.Equal(t, "boots", out[0].Keyword)
	require.NotNil(t, out[0].Spend)
	assert.Equal(t, 250.0, *out[0].Spend)
}

func TestUnparseableNumberIsAbsentNotZero(t *testing.T) {
	rows := []Row{{"keyword": "shoes", "spend": "n/a", "clicks": "12"}}
	out := Ads(rows)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].Spend)
	require.NotNil(t, out[0].Clicks)
	assert.Equal(t, 12.0, *out[0].Clicks)
}

func TestZeroSurvivesAsZero(t *testing.T) {
	rows := []Row{{"keyword": "shoes", "conversions": 0.0}}
	out := Ads(rows)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Conversions)
	assert.Equal(t, 0.0, *out[0].Conversions)
}

func TestCurrencyAndThousandsSeparators(t *testing.T) {
	rows := []Row{{"keyword": "shoes", "spend": "$1,234.50"}}
	out := Ads(rows)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Spend)
	assert.Equal(t, 1234.50, *out[0].Spend)
}

func TestNegativeNumbersAreAbsent(t *testing.T) {
	rows := []Row{{"keyword": "shoes", "spend": -10.0}}
	out := Ads(rows)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].Spend)
}

func TestRowWithoutJoinKeyDropped(t *testing.T) {
	rows := []Row{
		{"spend": 100.0},
		{"keyword": "   "},
		{"keyword": "kept", "spend": 5.0},
	}
	out := Ads(rows)
	require.Len(t, out, 1)
	assert.Equal(t, "kept", out[0].Keyword)
}

func TestCrmQualifiedLeadsClamped(t *testing.T) {
	rows := []Row{{"origin": "boots", "leads": 10.0, "qualified_leads": 25.0}}
	out := Crm(rows)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].QualifiedLeads)
	assert.Equal(t, 10.0, *out[0].QualifiedLeads)
}

func TestCrmOriginAliases(t *testing.T) {
	rows := []Row{{"utm_source": "running shoes", "lead_count": 7.0}}
	out := Crm(rows)
	require.Len(t, out, 1)
	assert.Equal(t, "running shoes", out[0].Origin)
	require.NotNil(t, out[0].Leads)
	assert.Equal(t, 7.0, *out[0].Leads)
}

func TestSeoCompetition(t *testing.T) {
	cases := []struct {
		in   any
		want float64
	}{
		{"low", 0.2},
		{"Medium", 0.5},
		{"HIGH", 0.8},
		{0.35, 0.35},
		{1.7, 1.0}, // clamped into [0,1]
	}
	for _, tc := range cases {
		out := Seo([]Row{{"keyword": "x", "competition": tc.in}})
		require.Len(t, out, 1)
		require.NotNil(t, out[0].Competition, "competition %v", tc.in)
		assert.Equal(t, tc.want, *out[0].Competition)
	}

	out := Seo([]Row{{"keyword": "x", "competition": "unknownish"}})
	require.Len(t, out, 1)
	assert.Nil(t, out[0].Competition)
}

func TestKeyFolds(t *testing.T) {
	assert.Equal(t, "nike air max", Key("  Nike Air Max "))
}

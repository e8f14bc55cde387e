package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rupam1998/clarity-ai-app/internal/models"
)

func TestJoinIsCaseAndWhitespaceInsensitive(t *testing.T) {
	ads := []models.AdRecord{{Keyword: "Nike Air Max", Spend: models.Ptr(100)}}
	crm := []models.CrmRecord{{Origin: "nike air max", Leads: models.Ptr(5)}}

	out := Records(ads, nil, crm)
	require.Len(t, out, 1)
	assert.Equal(t, "Nike Air Max", out[0].Keyword) // first-seen casing
	require.NotNil(t, out[0].Ads)
	require.NotNil(t, out[0].Crm)
	assert.Nil(t, out[0].Seo)
}

func TestDuplicateRowsSumAdditiveFields(t *testing.T) {
	ads := []models.AdRecord{
		{Keyword: "socks", Spend: models.Ptr(50), Clicks: models.Ptr(10)},
		{Keyword: "socks", Spend: models.Ptr(75)},
	}
	out := Records(ads, nil, nil)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Ads.Spend)
	assert.Equal(t, 125.0, *out[0].Ads.Spend)
	// clicks present in only one duplicate: still 10, not forced to zero
	require.NotNil(t, out[0].Ads.Clicks)
	assert.Equal(t, 10.0, *out[0].Ads.Clicks)
	// impressions were absent everywhere and stay absent
	assert.Nil(t, out[0].Ads.Impressions)
}

func TestSeoMarketFieldsTakeFirstNonNil(t *testing.T) {
	seo := []models.SeoRecord{
		{Keyword: "boots", Volume: nil, CPC: models.Ptr(1.5)},
		{Keyword: "boots", Volume: models.Ptr(40000), CPC: models.Ptr(9.9)},
	}
	out := Records(nil, seo, nil)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Seo.Volume)
	assert.Equal(t, 40000.0, *out[0].Seo.Volume)
	require.NotNil(t, out[0].Seo.CPC)
	assert.Equal(t, 1.5, *out[0].Seo.CPC) // first non-nil, never summed
}

func TestCrmDuplicatesSumLeads(t *testing.T) {
	crm := []models.CrmRecord{
		{Origin: "boots", Leads: models.Ptr(10), QualifiedLeads: models.Ptr(4)},
		{Origin: "Boots", Leads: models.Ptr(6), QualifiedLeads: models.Ptr(2)},
	}
	out := Records(nil, nil, crm)
	require.Len(t, out, 1)
	assert.Equal(t, 16.0, *out[0].Crm.Leads)
	assert.Equal(t, 6.0, *out[0].Crm.QualifiedLeads)
}

func TestCrmDuplicatesReclampSplitQualifiedLeads(t *testing.T) {
	// one row carries only qualified leads, the other only leads; after
	// summation qualified must still not exceed leads
	crm := []models.CrmRecord{
		{Origin: "boots", QualifiedLeads: models.Ptr(5)},
		{Origin: "boots", Leads: models.Ptr(2)},
	}
	out := Records(nil, nil, crm)
	require.Len(t, out, 1)
	require.NotNil(t, out[0].Crm.Leads)
	require.NotNil(t, out[0].Crm.QualifiedLeads)
	assert.Equal(t, 2.0, *out[0].Crm.Leads)
	assert.LessOrEqual(t, *out[0].Crm.QualifiedLeads, *out[0].Crm.Leads)
}

func TestFirstAppearanceOrderAcrossSources(t *testing.T) {
	ads := []models.AdRecord{
		{Keyword: "b-ads", Spend: models.Ptr(1)},
		{Keyword: "a-ads", Spend: models.Ptr(1)},
	}
	seo := []models.SeoRecord{
		{Keyword: "a-ads", Volume: models.Ptr(10)}, // joins, keeps ads position
		{Keyword: "z-seo", Volume: models.Ptr(10)},
	}
	crm := []models.CrmRecord{
		{Origin: "m-crm", Leads: models.Ptr(3)},
	}
	out := Records(ads, seo, crm)
	require.Len(t, out, 4)
	keys := []string{out[0].Keyword, out[1].Keyword, out[2].Keyword, out[3].Keyword}
	assert.Equal(t, []string{"b-ads", "a-ads", "z-seo", "m-crm"}, keys)
}

func TestEveryRecordHasAtLeastOneSource(t *testing.T) {
	ads := []models.AdRecord{{Keyword: "x", Spend: models.Ptr(1)}}
	seo := []models.SeoRecord{{Keyword: "y", Volume: models.Ptr(1)}}
	crm := []models.CrmRecord{{Origin: "z", Leads: models.Ptr(1)}}
	for _, rec := range Records(ads, seo, crm) {
		assert.NotEmpty(t, rec.Sources(), "record %q", rec.Keyword)
	}
}

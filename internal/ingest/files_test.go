package ingest

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVLowercasesHeaders(t *testing.T) {
	csv := "Keyword, Spend ,Clicks\nshoes,542,120\nboots,100,50\n"
	rows, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "shoes", rows[0]["keyword"])
	assert.Equal(t, "542", rows[0]["spend"])
	assert.Equal(t, "120", rows[0]["clicks"])
}

func TestParseCSVToleratesRaggedRows(t *testing.T) {
	csv := "keyword,spend\nshoes,100,extra\nboots\n"
	rows, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "shoes", rows[0]["keyword"])
	_, hasSpend := rows[1]["spend"]
	assert.False(t, hasSpend)
}

func TestParseCSVEmptyFile(t *testing.T) {
	rows, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReadJSONKeepsNumbersLossless(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ads.json")
	body := `[{"keyword":"shoes","spend":542.5,"clicks":120}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	rows, err := ReadJSON(path)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "shoes", rows[0]["keyword"])
	assert.Equal(t, json.Number("542.5"), rows[0]["spend"])
}

func TestLoadDemoDir(t *testing.T) {
	dir := t.TempDir()
	write := func(name, body string) {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	write(DemoAdsFile, `[{"keyword":"shoes","spend":542,"clicks":120,"conversions":0}]`)
	write(DemoSeoFile, `[{"keyword":"shoes","volume":10000}]`)

	ads, seo, crm, err := LoadDemoDir(dir)
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, "shoes", ads[0]["keyword"])
	require.Len(t, seo, 1)
	assert.Nil(t, crm) // the crm dataset is optional
}

func TestLoadDemoDirRequiresAdsDataset(t *testing.T) {
	_, _, _, err := LoadDemoDir(t.TempDir())
	require.Error(t, err)
}

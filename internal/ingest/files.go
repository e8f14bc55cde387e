// Package ingest loads marketing data files into loose rows for the engine.
// It is a caller-side collaborator: the engine itself never touches files.
package ingest

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/rupam1998/clarity-ai-app/internal/normalize"
)

// File names of the bundled synthetic demo datasets.
const (
	DemoAdsFile = "synthetic_ads.json"
	DemoSeoFile = "synthetic_seo.json"
	DemoCrmFile = "synthetic_crm.json"
)

// ReadCSV parses a CSV export into loose rows. Headers are lower-cased and
// trimmed; cell values stay strings, numeric coercion happens downstream in
// the normalizer.
func ReadCSV(path string) ([]normalize.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ParseCSV(f)
}

func ParseCSV(r io.Reader) ([]normalize.Row, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.FieldsPerRecord = -1 // ragged exports are common, tolerate them

	header, err := cr.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	for i := range header {
		header[i] = strings.ToLower(strings.TrimSpace(header[i]))
	}

	var rows []normalize.Row
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			// one malformed line should not discard the rest of the file
			continue
		}
		row := make(normalize.Row, len(header))
		for i, v := range rec {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = v
		}
		if len(row) > 0 {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

// ReadJSON loads a demo dataset file: a JSON array of objects.
func ReadJSON(path string) ([]normalize.Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	dec := json.NewDecoder(f)
	dec.UseNumber()
	var rows []normalize.Row
	if err := dec.Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return rows, nil
}

// LoadDemoDir loads the synthetic demo datasets from dir. The ads dataset is
// required; the seo and crm files may be absent.
func LoadDemoDir(dir string) (ads, seo, crm []normalize.Row, err error) {
	ads, err = ReadJSON(filepath.Join(dir, DemoAdsFile))
	if err != nil {
		return nil, nil, nil, err
	}
	if seo, err = readJSONOptional(filepath.Join(dir, DemoSeoFile)); err != nil {
		return nil, nil, nil, err
	}
	if crm, err = readJSONOptional(filepath.Join(dir, DemoCrmFile)); err != nil {
		return nil, nil, nil, err
	}
	return ads, seo, crm, nil
}

func readJSONOptional(path string) ([]normalize.Row, error) {
	rows, err := ReadJSON(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return rows, err
}

// Package loader reads activity records from disk. It is a collaborator of
// the scheduling core: records are handed to the model store for validation,
// nothing here computes statistics.
package loader

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Record is one raw activity row before validation.
type Record struct {
	Name         string   `json:"name"`
	Optimistic   float64  `json:"optimistic"`
	MostLikely   float64  `json:"most_likely"`
	Pessimistic  float64  `json:"pessimistic"`
	Predecessors []string `json:"predecessors"`
}

type document struct {
	Activities []Record `json:"activities"`
}

// Load reads activity records from path. The format is selected by
// extension: .yaml/.yml, .json or .csv.
func Load(path string) ([]Record, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return loadKoanf(path, yaml.Parser())
	case ".json":
		return loadKoanf(path, json.Parser())
	case ".csv":
		return loadCSV(path)
	default:
		return nil, fmt.Errorf("unsupported activity file format: %s", path)
	}
}

func loadKoanf(path string, parser koanf.Parser) ([]Record, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	var doc document
	if err := k.UnmarshalWithConf("", &doc, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if len(doc.Activities) == 0 {
		return nil, fmt.Errorf("%s contains no activities", path)
	}
	return doc.Activities, nil
}

// loadCSV expects a header row followed by one activity per line:
// activity,optimistic,most_likely,pessimistic,predecessors. The predecessor
// cell lists names separated by ';' or ',' and may be empty.
func loadCSV(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.TrimLeadingSpace = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s contains no activities", path)
	}

	recs := make([]Record, 0, len(rows)-1)
	for i, row := range rows[1:] {
		if len(row) < 4 {
			return nil, fmt.Errorf("%s line %d: expected at least 4 columns, got %d", path, i+2, len(row))
		}
		rec := Record{Name: row[0]}
		for j, dst := range []*float64{&rec.Optimistic, &rec.MostLikely, &rec.Pessimistic} {
			v, err := strconv.ParseFloat(strings.TrimSpace(row[j+1]), 64)
			if err != nil {
				return nil, fmt.Errorf("%s line %d: bad estimate %q", path, i+2, row[j+1])
			}
			*dst = v
		}
		if len(row) > 4 {
			rec.Predecessors = splitPredecessors(row[4])
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func splitPredecessors(cell string) []string {
	var out []string
	for _, tok := range strings.FieldsFunc(cell, func(r rune) bool { return r == ',' || r == ';' }) {
		tok = strings.TrimSpace(tok)
		if tok == "" || strings.EqualFold(tok, "nan") || tok == "-" {
			continue
		}
		out = append(out, tok)
	}
	return out
}

package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/kilianp07/planpath/core/plan"
)

func samplePlan() *plan.Plan {
	return &plan.Plan{
		RunID:         "run-1",
		GeneratedAt:   time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		TotalDuration: 6,
		CriticalSet:   []string{"A", "B"},
		CriticalPath:  []string{"A", "B"},
		Rows: []plan.Row{
			{Name: "A", Expected: 2, EF: 2, LF: 2, Critical: true},
			{Name: "B", Predecessors: []string{"A"}, Expected: 4, ES: 2, EF: 6, LF: 6, Critical: true, Probability: 0.5},
		},
	}
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, samplePlan()); err != nil {
		t.Fatalf("write: %v", err)
	}
	var out plan.Plan
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if out.RunID != "run-1" || len(out.Rows) != 2 || out.TotalDuration != 6 {
		t.Fatalf("round trip: %+v", out)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, samplePlan()); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header + 2 rows, got %d", len(rows))
	}
	if rows[0][0] != "activity" {
		t.Fatalf("header: %v", rows[0])
	}
	if rows[2][0] != "B" || rows[2][1] != "A" || rows[2][13] != "true" {
		t.Fatalf("B row: %v", rows[2])
	}
	if !strings.Contains(rows[2][15], "0.5") {
		t.Fatalf("probability cell: %v", rows[2][15])
	}
}

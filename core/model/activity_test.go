package model

import (
	"errors"
	"math"
	"testing"
)

func TestNewActivityDerivedStats(t *testing.T) {
	a, err := NewActivity("a", 1, 2, 3, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if a.Name != "A" {
		t.Fatalf("name not normalized: %q", a.Name)
	}
	if math.Abs(a.Expected-2) > 1e-12 {
		t.Fatalf("expected TE 2 got %g", a.Expected)
	}
	if math.Abs(a.Variance-1.0/9) > 1e-12 {
		t.Fatalf("expected variance 1/9 got %g", a.Variance)
	}
	if math.Abs(a.StdDev-1.0/3) > 1e-12 {
		t.Fatalf("expected stddev 1/3 got %g", a.StdDev)
	}
}

func TestNewActivityRejectsBadEstimates(t *testing.T) {
	cases := []struct {
		name    string
		o, m, p float64
	}{
		{"", 1, 2, 3},
		{"  ", 1, 2, 3},
		{"X", 3, 2, 3},
		{"X", 1, 4, 3},
		{"X", -1, 2, 3},
	}
	for _, c := range cases {
		_, err := NewActivity(c.name, c.o, c.m, c.p, nil)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("case %q(%g,%g,%g): expected ValidationError got %v", c.name, c.o, c.m, c.p, err)
		}
	}
}

func TestNewActivityNormalizesPredecessors(t *testing.T) {
	a, err := NewActivity("B", 1, 1, 1, []string{" a ", "", "c"})
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if len(a.Predecessors) != 2 || a.Predecessors[0] != "A" || a.Predecessors[1] != "C" {
		t.Fatalf("predecessors not normalized: %#v", a.Predecessors)
	}
}

func TestZeroDurationMarker(t *testing.T) {
	a, err := NewActivity("START", 0, 0, 0, nil)
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if a.Expected != 0 || a.Variance != 0 || a.StdDev != 0 {
		t.Fatalf("marker activity should carry zero stats: %#v", a)
	}
}

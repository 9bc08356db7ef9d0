package model

import (
	"fmt"
	"math"
	"strings"
)

// Activity is a single unit of project work with a three-point duration
// estimate. Expected, Variance and StdDev are derived once at ingestion and
// never recomputed.
type Activity struct {
	Name         string   `json:"name"`
	Optimistic   float64  `json:"optimistic"`
	MostLikely   float64  `json:"most_likely"`
	Pessimistic  float64  `json:"pessimistic"`
	Predecessors []string `json:"predecessors"`

	Expected float64 `json:"expected"`
	Variance float64 `json:"variance"`
	StdDev   float64 `json:"std_dev"`
}

// ValidationError reports a malformed activity record.
type ValidationError struct {
	Activity string
	Reason   string
}

func (e *ValidationError) Error() string {
	if e.Activity == "" {
		return fmt.Sprintf("invalid activity: %s", e.Reason)
	}
	return fmt.Sprintf("invalid activity %q: %s", e.Activity, e.Reason)
}

// Normalize canonicalizes an activity name: surrounding whitespace is
// stripped and the name is upper-cased so "a " and "A" refer to the same
// activity.
func Normalize(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// NewActivity validates a three-point estimate and derives its PERT
// statistics. It fails with *ValidationError when the name is empty, an
// estimate is negative, or the optimistic/most-likely/pessimistic ordering
// is violated.
func NewActivity(name string, optimistic, mostLikely, pessimistic float64, predecessors []string) (Activity, error) {
	n := Normalize(name)
	if n == "" {
		return Activity{}, &ValidationError{Reason: "name must not be empty"}
	}
	if optimistic < 0 || mostLikely < 0 || pessimistic < 0 {
		return Activity{}, &ValidationError{Activity: n, Reason: "estimates must be non-negative"}
	}
	if optimistic > mostLikely {
		return Activity{}, &ValidationError{Activity: n, Reason: fmt.Sprintf("optimistic %g exceeds most likely %g", optimistic, mostLikely)}
	}
	if mostLikely > pessimistic {
		return Activity{}, &ValidationError{Activity: n, Reason: fmt.Sprintf("most likely %g exceeds pessimistic %g", mostLikely, pessimistic)}
	}

	preds := make([]string, 0, len(predecessors))
	for _, p := range predecessors {
		if np := Normalize(p); np != "" {
			preds = append(preds, np)
		}
	}

	variance := math.Pow((pessimistic-optimistic)/6, 2)
	return Activity{
		Name:         n,
		Optimistic:   optimistic,
		MostLikely:   mostLikely,
		Pessimistic:  pessimistic,
		Predecessors: preds,
		Expected:     (optimistic + 4*mostLikely + pessimistic) / 6,
		Variance:     variance,
		StdDev:       math.Sqrt(variance),
	}, nil
}

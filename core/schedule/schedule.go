package schedule

import (
	"errors"
	"math"
	"sort"

	"github.com/kilianp07/planpath/core/graph"
)

// Tolerance is the float slack threshold below which an activity counts as
// critical.
const Tolerance = 1e-9

// ErrEmptyGraph is returned when there are no activities to schedule.
var ErrEmptyGraph = errors.New("schedule: graph has no activities")

// Window holds the timing values of one activity.
type Window struct {
	ES       float64 `json:"es"`
	EF       float64 `json:"ef"`
	LS       float64 `json:"ls"`
	LF       float64 `json:"lf"`
	Slack    float64 `json:"slack"`
	Critical bool    `json:"critical"`
}

// Result is the immutable outcome of one forward/backward pass over a graph.
type Result struct {
	Windows       map[string]Window
	CriticalSet   []string
	CriticalPath  []string
	TotalDuration float64
	TopoOrder     []string
}

// Compute runs the forward and backward passes and derives slack, the
// critical set and one concrete critical path.
func Compute(g *graph.Graph) (*Result, error) {
	if g.Len() == 0 {
		return nil, ErrEmptyGraph
	}
	order := g.TopoOrder()
	windows := make(map[string]Window, len(order))

	// Forward pass: ES is the latest finish among predecessors, 0 for
	// sources.
	for _, name := range order {
		a, _ := g.Activity(name)
		es := 0.0
		for _, pred := range g.Predecessors(name) {
			if ef := windows[pred].EF; ef > es {
				es = ef
			}
		}
		windows[name] = Window{ES: es, EF: es + a.Expected}
	}

	total := 0.0
	for _, w := range windows {
		if w.EF > total {
			total = w.EF
		}
	}

	// Backward pass: sinks are anchored to the overall project finish, so
	// an early-finishing component shows positive slack rather than zero.
	for i := len(order) - 1; i >= 0; i-- {
		name := order[i]
		a, _ := g.Activity(name)
		w := windows[name]
		lf := total
		for _, succ := range g.Successors(name) {
			if ls := windows[succ].LS; ls < lf {
				lf = ls
			}
		}
		w.LF = lf
		w.LS = lf - a.Expected
		w.Slack = w.LF - w.EF
		w.Critical = math.Abs(w.Slack) <= Tolerance
		windows[name] = w
	}

	res := &Result{
		Windows:       windows,
		TotalDuration: total,
		TopoOrder:     order,
	}
	for name, w := range windows {
		if w.Critical {
			res.CriticalSet = append(res.CriticalSet, name)
		}
	}
	sort.Strings(res.CriticalSet)
	res.CriticalPath = extractPath(g, res)
	return res, nil
}

// extractPath walks zero-slack edges from the lexicographically smallest
// critical source, always choosing the smallest critical successor that
// starts exactly when the current activity finishes. The result is one
// concrete source-to-sink critical path; parallel critical chains remain
// visible through CriticalSet.
func extractPath(g *graph.Graph, res *Result) []string {
	var start string
	for _, name := range g.Sources() {
		if res.Windows[name].Critical {
			start = name
			break
		}
	}
	if start == "" {
		return nil
	}
	path := []string{start}
	cur := start
	for {
		next := ""
		for _, succ := range g.Successors(cur) {
			w := res.Windows[succ]
			if !w.Critical {
				continue
			}
			if math.Abs(w.ES-res.Windows[cur].EF) > Tolerance {
				continue
			}
			next = succ
			break
		}
		if next == "" {
			return path
		}
		path = append(path, next)
		cur = next
	}
}

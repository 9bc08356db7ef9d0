// Package plans exposes schedule computation over HTTP.
package plans

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/kilianp07/planpath/core/graph"
	"github.com/kilianp07/planpath/core/logger"
	"github.com/kilianp07/planpath/core/model"
	"github.com/kilianp07/planpath/core/plan"
	"github.com/kilianp07/planpath/core/schedule"
	"github.com/kilianp07/planpath/infra/loader"
)

// Planner computes a plan from raw activity records.
type Planner interface {
	ComputePlan(records []loader.Record) (*plan.Plan, error)
}

type computeRequest struct {
	Activities []loader.Record `json:"activities"`
}

// NewComputeHandler returns an HTTP handler computing a schedule from a JSON
// activity list via POST /api/plans.
func NewComputeHandler(p Planner, log logger.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		var req computeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
			return
		}
		out, err := p.ComputePlan(req.Activities)
		if err != nil {
			status := http.StatusInternalServerError
			if isInputError(err) {
				status = http.StatusUnprocessableEntity
			}
			log.Warnf("compute plan: %v", err)
			http.Error(w, err.Error(), status)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(out); err != nil {
			log.Errorf("encode plan: %v", err)
		}
	})
}

// isInputError distinguishes malformed input from internal faults.
func isInputError(err error) bool {
	var verr *model.ValidationError
	var uerr *graph.UnknownPredecessorError
	var cerr *graph.CycleError
	return errors.As(err, &verr) ||
		errors.As(err, &uerr) ||
		errors.As(err, &cerr) ||
		errors.Is(err, schedule.ErrEmptyGraph)
}

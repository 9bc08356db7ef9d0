// Package report renders a computed plan as plain text tables for terminal
// consumption.
package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/kilianp07/planpath/core/plan"
)

// WriteText renders the CPM table, the PERT table and the summary to w.
func WriteText(w io.Writer, p *plan.Plan) error {
	if _, err := fmt.Fprintf(w, "=== Critical Path Method (CPM) ===\n"); err != nil {
		return err
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Activity\tPredecessors\tES\tEF\tLS\tLF\tSlack\tCritical")
	for _, r := range p.Rows {
		fmt.Fprintf(tw, "%s\t%s\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%s\n",
			r.Name, join(r.Predecessors), r.ES, r.EF, r.LS, r.LF, r.Slack, yesNo(r.Critical))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(w, "\nCritical Path: %s\n", strings.Join(p.CriticalPath, " -> "))
	fmt.Fprintf(w, "Critical Set: %s\n", strings.Join(p.CriticalSet, ", "))
	fmt.Fprintf(w, "Total Project Duration: %.3f\n", p.TotalDuration)

	fmt.Fprintf(w, "\n=== Program Evaluation Review Technique (PERT) ===\n")
	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "Activity\tO\tM\tP\tTE\tVariance\tStdDev\tProbability\tCritical")
	for _, r := range p.Rows {
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%.3f\t%.3f\t%.3f\t%.2f%%\t%s\n",
			r.Name, r.Optimistic, r.MostLikely, r.Pessimistic,
			r.Expected, r.Variance, r.StdDev, r.Probability*100, yesNo(r.Critical))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\nProject Standard Deviation: %.3f\n", p.ProjectStdDev)

	if p.Subset != nil {
		fmt.Fprintf(w, "\n=== Subset Analysis (%s) ===\n", strings.Join(p.Subset.Activities, ", "))
		fmt.Fprintf(w, "Variance: %.3f\n", p.Subset.Variance)
		fmt.Fprintf(w, "Standard Deviation: %.3f\n", p.Subset.StdDev)
	}
	return nil
}

func join(names []string) string {
	if len(names) == 0 {
		return "-"
	}
	return strings.Join(names, ", ")
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}

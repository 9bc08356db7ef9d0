// Package graph builds the immutable precedence DAG consumed by the timing
// engine. Edges run predecessor to successor.
package graph

import (
	"fmt"
	"sort"

	"github.com/kilianp07/planpath/core/model"
)

// UnknownPredecessorError reports an edge whose predecessor was never
// ingested.
type UnknownPredecessorError struct {
	Activity    string
	Predecessor string
}

func (e *UnknownPredecessorError) Error() string {
	return fmt.Sprintf("activity %q references unknown predecessor %q", e.Activity, e.Predecessor)
}

// CycleError reports that the precedence relation is not acyclic. Node names
// at least one activity on a cycle.
type CycleError struct {
	Nodes []string
}

func (e *CycleError) Error() string {
	if len(e.Nodes) == 0 {
		return "precedence graph contains a cycle"
	}
	return fmt.Sprintf("precedence graph contains a cycle through %v", e.Nodes)
}

// Graph is a validated precedence DAG. It is read-only after Build.
type Graph struct {
	nodes  map[string]model.Activity
	adj    map[string][]string // predecessor -> successors
	revAdj map[string][]string // successor -> predecessors
	topo   []string
}

// Build constructs the DAG from ingested activities. It fails with
// *UnknownPredecessorError when a predecessor name has no matching activity
// and with *CycleError when the precedence relation is cyclic.
func Build(activities []model.Activity) (*Graph, error) {
	g := &Graph{
		nodes:  make(map[string]model.Activity, len(activities)),
		adj:    make(map[string][]string, len(activities)),
		revAdj: make(map[string][]string, len(activities)),
	}
	for _, a := range activities {
		g.nodes[a.Name] = a
	}
	for _, a := range activities {
		for _, pred := range a.Predecessors {
			if _, ok := g.nodes[pred]; !ok {
				return nil, &UnknownPredecessorError{Activity: a.Name, Predecessor: pred}
			}
			g.adj[pred] = append(g.adj[pred], a.Name)
			g.revAdj[a.Name] = append(g.revAdj[a.Name], pred)
		}
	}
	for n := range g.adj {
		sort.Strings(g.adj[n])
	}
	for n := range g.revAdj {
		sort.Strings(g.revAdj[n])
	}

	order, err := topoSort(g)
	if err != nil {
		return nil, err
	}
	g.topo = order
	return g, nil
}

// topoSort runs Kahn's algorithm with a lexicographically sorted ready queue
// so the resulting order is deterministic.
func topoSort(g *Graph) ([]string, error) {
	inDegree := make(map[string]int, len(g.nodes))
	var queue []string
	for name := range g.nodes {
		inDegree[name] = len(g.revAdj[name])
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}
	sort.Strings(queue)

	order := make([]string, 0, len(g.nodes))
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		order = append(order, node)

		var ready []string
		for _, succ := range g.adj[node] {
			inDegree[succ]--
			if inDegree[succ] == 0 {
				ready = append(ready, succ)
			}
		}
		sort.Strings(ready)
		queue = append(queue, ready...)
	}

	if len(order) != len(g.nodes) {
		var stuck []string
		for name, d := range inDegree {
			if d > 0 {
				stuck = append(stuck, name)
			}
		}
		sort.Strings(stuck)
		return nil, &CycleError{Nodes: stuck}
	}
	return order, nil
}

// Len reports the number of nodes.
func (g *Graph) Len() int { return len(g.nodes) }

// Activity returns the node with the given normalized name.
func (g *Graph) Activity(name string) (model.Activity, bool) {
	a, ok := g.nodes[name]
	return a, ok
}

// TopoOrder returns the cached deterministic topological ordering.
func (g *Graph) TopoOrder() []string {
	out := make([]string, len(g.topo))
	copy(out, g.topo)
	return out
}

// Successors returns the successor names of a node in sorted order.
func (g *Graph) Successors(name string) []string { return g.adj[name] }

// Predecessors returns the predecessor names of a node in sorted order.
func (g *Graph) Predecessors(name string) []string { return g.revAdj[name] }

// Sources returns all nodes with no predecessors, sorted by name.
func (g *Graph) Sources() []string {
	var res []string
	for name := range g.nodes {
		if len(g.revAdj[name]) == 0 {
			res = append(res, name)
		}
	}
	sort.Strings(res)
	return res
}

// Sinks returns all nodes with no successors, sorted by name.
func (g *Graph) Sinks() []string {
	var res []string
	for name := range g.nodes {
		if len(g.adj[name]) == 0 {
			res = append(res, name)
		}
	}
	sort.Strings(res)
	return res
}

package dijkstra

import (
	"fmt"
	"slices"

	"github.com/johnpfay/PatchConnect/core"
)

// MaxTiePaths bounds the simple paths enumerated inside one zero-cost group.
const MaxTiePaths = 1 << 16

// ErrTooManyTies indicates a zero-cost group with more than MaxTiePaths
// simple paths.
var ErrTooManyTies = fmt.Errorf("dijkstra: too many paths inside a zero-cost group: %w", core.ErrInvalidInput)

// segment is one simple path inside a tie group, nodes[0] == entry and
// nodes[len-1] == exit.
type segment struct {
	entry, exit int
	nodes       []int
}

// tieGroup is a set of settled slots joined by zero-cost arcs. All members
// share one distance, so a shortest path enters the group once, walks a
// simple path inside it and leaves over a positive arc.
type tieGroup struct {
	members  []int
	segments []segment
}

// countPaths fills Sigma and Preds once every distance is final.
//
// Steps:
//  1. Union settled slots over zero-cost arcs; groups follow settle order,
//     hence non-decreasing distance.
//  2. Enumerate each group's simple paths (one trivial path per singleton).
//  3. Per group: sigmaIn[w] sums Sigma over positive tight arcs into w
//     (1 for the source), then Sigma[exit] sums sigmaIn[entry] over segments.
//
// Without zero-cost arcs every group is a singleton and this is the usual
// Brandes count.
func (r *runner) countPaths() error {
	res := r.res
	n := len(res.Dist)

	// 1) Tie groups
	ds := core.NewDisjointSet(n)
	for _, u := range res.Order {
		for a := range r.view.Neighbors(u) {
			if a.Weight == 0 && r.visited[a.To] {
				ds.Union(u, a.To)
			}
		}
	}
	groupOf := make([]int, n)
	for i := range groupOf {
		groupOf[i] = -1
	}
	for _, u := range res.Order {
		root := ds.Find(u)
		if groupOf[root] < 0 {
			groupOf[root] = len(res.groups)
			res.groups = append(res.groups, tieGroup{})
		}
		k := groupOf[root]
		res.groups[k].members = append(res.groups[k].members, u)
	}

	// 2) Segments
	for k := range res.groups {
		segs, err := r.segments(res.groups[k].members)
		if err != nil {
			return err
		}
		res.groups[k].segments = segs
	}

	// 3) Forward counts
	res.sigmaIn = make([]float64, n)
	for _, grp := range res.groups {
		for _, w := range grp.members {
			if w == res.Source {
				res.sigmaIn[w] = 1
				continue
			}
			for a := range r.view.Neighbors(w) {
				u := a.To
				if !r.visited[u] || res.Dist[u]+a.Weight != res.Dist[w] {
					continue
				}
				res.Preds[w] = append(res.Preds[w], u)
				if a.Weight > 0 {
					res.sigmaIn[w] += res.Sigma[u]
				}
			}
		}
		for _, sg := range grp.segments {
			res.Sigma[sg.exit] += res.sigmaIn[sg.entry]
		}
	}

	return nil
}

// segments lists every simple path over zero-cost arcs inside one group,
// from every member.
func (r *runner) segments(members []int) ([]segment, error) {
	if len(members) == 1 {
		u := members[0]
		return []segment{{entry: u, exit: u, nodes: []int{u}}}, nil
	}

	var (
		out    []segment
		path   []int
		onPath = make(map[int]bool, len(members))
	)
	var walk func(entry, u int) error
	walk = func(entry, u int) error {
		if len(out) >= MaxTiePaths {
			return fmt.Errorf("%w: group of %d patches", ErrTooManyTies, len(members))
		}
		out = append(out, segment{entry: entry, exit: u, nodes: slices.Clone(path)})
		for a := range r.view.Neighbors(u) {
			if a.Weight != 0 || !r.visited[a.To] || onPath[a.To] {
				continue
			}
			onPath[a.To] = true
			path = append(path, a.To)
			if err := walk(entry, a.To); err != nil {
				return err
			}
			path = path[:len(path)-1]
			onPath[a.To] = false
		}

		return nil
	}
	for _, s := range members {
		onPath[s] = true
		path = append(path[:0], s)
		if err := walk(s, s); err != nil {
			return nil, err
		}
		onPath[s] = false
	}

	return out, nil
}

// Dependencies returns, per slot, the Brandes dependency of Source on that
// slot: the sum over targets t ≠ Source of the share of shortest Source→t
// paths passing through it as an inner node. Shortest paths are simple, so
// zero-cost ties count every distinct route once. It needs WithPathCounts
// and returns nil otherwise.
//
// Groups are walked in reverse. A segment carries sigmaIn[entry]/Sigma[exit]
// of the paths ending at exit plus that share of everything continuing past
// exit; every inner node of the segment collects both parts, the exit only
// the continuing part.
func (r *Result) Dependencies() []float64 {
	if r.Sigma == nil {
		return nil
	}
	n := len(r.Dist)
	dep := make([]float64, n)
	deltaIn := make([]float64, n)
	deltaOut := make([]float64, n)

	for k := len(r.groups) - 1; k >= 0; k-- {
		grp := r.groups[k]
		for _, b := range grp.members {
			for a := range r.view.Neighbors(b) {
				w := a.To
				if a.Weight == 0 || r.sigmaIn[w] == 0 || r.Dist[b]+a.Weight != r.Dist[w] {
					continue
				}
				deltaOut[b] += r.Sigma[b] / r.sigmaIn[w] * deltaIn[w]
			}
		}
		for _, sg := range grp.segments {
			in := r.sigmaIn[sg.entry]
			if in == 0 {
				continue
			}
			share := in / r.Sigma[sg.exit]
			through := share * deltaOut[sg.exit]
			var end float64
			if sg.exit != r.Source {
				end = share
			}
			deltaIn[sg.entry] += end + through
			for _, x := range sg.nodes {
				switch x {
				case r.Source:
				case sg.exit:
					dep[x] += through
				default:
					dep[x] += end + through
				}
			}
		}
	}

	return dep
}

package analysis

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/neurograph/assemblytopo/assembly"
	"github.com/neurograph/assemblytopo/topology"
)

// Feature is a named per-node scalar vector aligned to a gid ordering
// (normally the connectivity matrix's). ZeroBin marks count-like features
// whose zeros deserve a dedicated bin below the adaptive ones, so that
// "no simplex participation at all" is never merged with weak participation.
type Feature struct {
	Name    string
	Values  []float64
	ZeroBin bool
}

// AssemblyInDegrees derives one feature per assembly of the group: the
// in-degree every node of the full population receives from that assembly's
// members (recurrent innervation).
func AssemblyInDegrees(topo *topology.Topology, group assembly.Group) ([]Feature, error) {
	gids := topo.Matrix().GIDs()
	out := make([]Feature, 0, len(group.Assemblies))
	for _, a := range group.Assemblies {
		vals, err := topo.Degree(a.GIDs(), gids, topology.InDegree)
		if err != nil {
			return nil, fmt.Errorf("assembly %d: %w", a.ID, err)
		}
		out = append(out, Feature{
			Name:   fmt.Sprintf("assembly%d_indegree", a.ID),
			Values: vals,
		})
	}

	return out, nil
}

// PopulationInDegrees derives one feature per named pre-synaptic
// sub-population: the in-degree every node receives from that population
// (e.g. sensory projection fibers). Populations are processed in sorted
// name order for reproducible batch reports.
func PopulationInDegrees(topo *topology.Topology, pops map[string][]int64) ([]Feature, error) {
	gids := topo.Matrix().GIDs()
	names := make([]string, 0, len(pops))
	for name := range pops {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Feature, 0, len(names))
	for _, name := range names {
		vals, err := topo.Degree(pops[name], gids, topology.InDegree)
		if err != nil {
			return nil, fmt.Errorf("population %q: %w", name, err)
		}
		out = append(out, Feature{Name: name + "_indegree", Values: vals})
	}

	return out, nil
}

// SinkCountFeatures derives the generalized in-degree of one assembly: for
// each requested simplex dimension, how often every node of the population
// is the sink of a simplex whose non-sink members all belong to the
// assembly. Dimensions with no simplices at all are skipped. The returned
// features carry ZeroBin, giving nodes with zero sink participation their
// own bin.
func SinkCountFeatures(topo *topology.Topology, asm assembly.Assembly, dims []int) ([]Feature, error) {
	lists, err := topo.SimplexList(asm.GIDs(), nil)
	if err != nil {
		return nil, fmt.Errorf("assembly %d: %w", asm.ID, err)
	}

	out := make([]Feature, 0, len(dims))
	for _, dim := range dims {
		if dim < 0 || dim >= len(lists) {
			continue
		}
		sinks, err := topo.SinkCounts(lists[dim])
		if err != nil {
			return nil, fmt.Errorf("assembly %d dim %d: %w", asm.ID, dim, err)
		}
		if floats.Sum(sinks) == 0 {
			continue
		}
		out = append(out, Feature{
			Name:    fmt.Sprintf("assembly%d_dim%d_sinks", asm.ID, dim),
			Values:  sinks,
			ZeroBin: true,
		})
	}

	return out, nil
}

package connmat

import "fmt"

// NodeSet is an ordered set of unique gids with a bijective gid→position
// lookup. It is immutable after construction.
type NodeSet struct {
	ids []int64
	pos map[int64]int
}

// NewNodeSet builds a NodeSet from gids, preserving their order.
// Returns ErrDuplicateNodeID if any gid appears twice.
func NewNodeSet(gids []int64) (NodeSet, error) {
	pos := make(map[int64]int, len(gids))
	ids := make([]int64, len(gids))
	for i, gid := range gids {
		if _, dup := pos[gid]; dup {
			return NodeSet{}, fmt.Errorf("gid %d: %w", gid, ErrDuplicateNodeID)
		}
		pos[gid] = i
		ids[i] = gid
	}

	return NodeSet{ids: ids, pos: pos}, nil
}

// Len returns the number of gids in the set.
func (ns NodeSet) Len() int { return len(ns.ids) }

// IDs returns a copy of the gids in their stored order.
func (ns NodeSet) IDs() []int64 {
	out := make([]int64, len(ns.ids))
	copy(out, ns.ids)

	return out
}

// Contains reports whether gid is a member of the set.
func (ns NodeSet) Contains(gid int64) bool {
	_, ok := ns.pos[gid]

	return ok
}

// Position returns the index of gid within the set.
// Returns ErrUnknownNodeID if gid is absent.
func (ns NodeSet) Position(gid int64) (int, error) {
	p, ok := ns.pos[gid]
	if !ok {
		return 0, fmt.Errorf("gid %d: %w", gid, ErrUnknownNodeID)
	}

	return p, nil
}

// Positions maps every gid to its index, aligned to the query order.
// Returns ErrUnknownNodeID on the first absent gid.
func (ns NodeSet) Positions(gids []int64) ([]int, error) {
	out := make([]int, len(gids))
	for i, gid := range gids {
		p, ok := ns.pos[gid]
		if !ok {
			return nil, fmt.Errorf("gid %d: %w", gid, ErrUnknownNodeID)
		}
		out[i] = p
	}

	return out, nil
}
